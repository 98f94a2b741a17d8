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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"laptudirm.com/x/quoridor/pkg/search"
)

// quoridor bestmove
func BestMove() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bestmove [log]",
		Short: "Print the engine's turn for a position",
		Long: heredoc.Doc(`bestmove searches the position reached by replaying the given
			turn log, or the initial position if no log is given, and
			prints the turn the engine would play in coordinate notation.

			With --json the whole search result is printed instead,
			including the score, the depth reached and the principal
			variation. A game which is already over has the turn 0000.`),
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}

			b, _, err := loadBoard(cmd, path)
			if err != nil {
				return err
			}

			engine, err := loadEngine(cmd)
			if err != nil {
				return err
			}

			result := engine.Engine().Search(b, engine.MaxDepth(), search.NewMemory())

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				data, err := sonic.Marshal(result)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Turn)
			return nil
		},
	}

	boardFlags(cmd)
	engineFlags(cmd)
	cmd.Flags().Bool("json", false, "Print the search result as JSON")

	return cmd
}
