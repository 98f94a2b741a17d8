// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/quoridor/pkg/common"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "quoridor",
		Short: "A decision engine for the wall-race board game",
		Long: heredoc.Doc(`quoridor plays the wall-race board game: each player races a
			token to the opposite side of the board while placing walls to
			lengthen the path of the opponent.

			Besides playing against the engine in the terminal, quoridor can
			review saved games, and measure the strength of different engine
			configurations with matches, tests and tournaments.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// If --trace flag is provided, set logging level to Trace.
			switch {
			case cmd.Flag("trace").Changed:
				logrus.SetLevel(logrus.TraceLevel)
			case cmd.Flag("debug").Changed:
				logrus.SetLevel(logrus.DebugLevel)
			}

			return common.EnsureDirectories()
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Quoridor's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().BoolP("debug", "d", false, "Show Debug Information")
	root.PersistentFlags().Bool("no-color", false, "Disable Colored Output")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(BestMove())
	root.AddCommand(Path())
	root.AddCommand(Play())
	root.AddCommand(Review())
	root.AddCommand(Match())
	root.AddCommand(SPRT())
	root.AddCommand(Tournament())
	root.AddCommand(Restart())

	return root
}
