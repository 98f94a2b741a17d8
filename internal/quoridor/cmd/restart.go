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
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"laptudirm.com/x/quoridor/internal/util"
	"laptudirm.com/x/quoridor/pkg/common"
	"laptudirm.com/x/quoridor/pkg/sprt"
	"laptudirm.com/x/quoridor/pkg/tournament"
)

func Restart() *cobra.Command {
	cmd := cobra.Command{
		Use:   "restart",
		Short: "Restart a stopped test or tournament by name",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "sprt [test-name]",
		Short: "Restart a Sequential Probability Ratio Test",
		Args:  cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listPaused(cmd.OutOrStdout(), common.PausedSPRTs())
			}

			test, err := sprt.Resume(args[0])
			if err != nil {
				return err
			}

			test.Out = cmd.OutOrStdout()
			return runSPRT(test)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "tournament [tournament-name]",
		Short: "Restart a tournament",
		Args:  cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listPaused(cmd.OutOrStdout(), common.PausedTournaments())
			}

			tour, err := tournament.Resume(args[0])
			if err != nil {
				return err
			}

			tour.Out = cmd.OutOrStdout()
			return tour.Start()
		},
	})

	return &cmd
}

// listPaused prints the names of the paused runs saved in dir.
func listPaused(w io.Writer, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	if len(names) == 0 {
		fmt.Fprintln(w, "Nothing to restart.")
		return nil
	}

	util.SortNatural(names)
	for _, name := range names {
		fmt.Fprintln(w, "-", name)
	}

	return nil
}
