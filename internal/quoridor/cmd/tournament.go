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
	"github.com/spf13/cobra"

	"laptudirm.com/x/quoridor/pkg/tournament"
)

// quoridor tournament
func Tournament() *cobra.Command {
	return &cobra.Command{
		Use:   "tournament config.yaml",
		Short: "Run a tournament between several engines",
		Long: heredoc.Doc(`tournament plays every game of a round-robin or gauntlet
			tournament between the engines of the given configuration
			and prints the standings every few games.

			The state of the tournament is saved under its name after
			every report and can be continued with restart tournament.`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			var config tournament.Config
			if err := readYAML(args[0], &config); err != nil {
				return err
			}

			tour, err := tournament.NewTournament(config)
			if err != nil {
				return err
			}

			tour.Out = cmd.OutOrStdout()
			return tour.Start()
		},
	}
}
