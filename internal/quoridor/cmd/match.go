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
	"github.com/spf13/cobra"

	"laptudirm.com/x/quoridor/pkg/common"
	"laptudirm.com/x/quoridor/pkg/config"
	"laptudirm.com/x/quoridor/pkg/match"
)

// quoridor match
func Match() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [engine.yaml [engine.yaml]]",
		Short: "Play a single game between two engines",
		Long: heredoc.Doc(`match plays a game between the engines configured by the
			given files, the first one playing player 0. Engines without
			a configuration file use the default configuration.

			The game is adjudicated a draw after --max-plies turns. With
			--save the game's turn log is kept in the games directory.`),
		Args: cobra.MaximumNArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			var engines [2]config.EngineConfig
			for i := range engines {
				engines[i] = config.Default()
				if i < len(args) {
					var err error
					if engines[i], err = config.Load(args[i]); err != nil {
						return err
					}
				}
			}

			opening, _ := cmd.Flags().GetString("opening")
			startpos, err := match.ParseOpening(opening)
			if err != nil {
				return err
			}

			size, _ := cmd.Flags().GetInt("size")
			walls, _ := cmd.Flags().GetInt("walls")
			maxPlies, _ := cmd.Flags().GetInt("max-plies")

			rules := match.Rules{Size: size, Walls: walls, MaxPlies: maxPlies}
			if save, _ := cmd.Flags().GetBool("save"); save {
				rules.GamesDir = common.Games()
			}

			game, err := match.Run(&match.Config{
				Rules:   rules,
				Opening: startpos,
				Engines: engines,
			})
			if err != nil {
				return err
			}

			au := colors(cmd)
			fmt.Fprintf(cmd.OutOrStdout(), "%s vs %s: %s by %s after %d plies\n",
				au.Blue(engines[0].Name), au.Red(engines[1].Name),
				au.Bold(game.Result), game.Reason, game.Plies,
			)

			if rules.GamesDir != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Game %s saved to %s\n", game.ID, rules.GamesDir)
			}

			return nil
		},
	}

	boardFlags(cmd)
	cmd.Flags().Int("max-plies", match.DefaultMaxPlies, "Number of turns after which the game is drawn")
	cmd.Flags().String("opening", "", "Turns played before the engines take over")
	cmd.Flags().Bool("save", false, "Save the game's turn log")

	return cmd
}
