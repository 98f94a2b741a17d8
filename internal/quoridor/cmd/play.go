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
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/quoridor/internal/util"
	"laptudirm.com/x/quoridor/pkg/board"
	"laptudirm.com/x/quoridor/pkg/common"
	"laptudirm.com/x/quoridor/pkg/search"
	"laptudirm.com/x/quoridor/pkg/turnlog"
)

var modes = map[string]turnlog.Mode{
	"human":  turnlog.HumanVsHuman,
	"engine": turnlog.HumanVsEngine,
	"self":   turnlog.EngineVsEngine,
}

var errQuit = errors.New("player quit")

// quoridor play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Long: heredoc.Doc(`play starts a game on the terminal. Turns are entered in
			coordinate notation: c3 moves the token to column c of row 3,
			while c3h and c3v place a horizontal or vertical wall at the
			bottom right corner of that cell. Enter quit to abandon the
			game.

			The mode selects who plays: human for two humans, engine for
			a human as player 0 against the engine as player 1, and self
			for the engine against itself. The finished game is saved to
			the games directory and can be reviewed later.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			modeName, _ := cmd.Flags().GetString("mode")
			mode, found := modes[modeName]
			if !found {
				return fmt.Errorf("play: unknown mode %q", modeName)
			}

			b, err := newBoard(cmd)
			if err != nil {
				return err
			}

			engine, err := loadEngine(cmd)
			if err != nil {
				return err
			}

			log, err := play(cmd, &b, mode, engine.Engine(), engine.MaxDepth())
			if err != nil {
				return err
			}

			path := filepath.Join(common.Games(), uuid.NewString()+".log")
			if err := log.WriteFile(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Game saved to %s\n", path)
			return nil
		},
	}

	boardFlags(cmd)
	engineFlags(cmd)
	cmd.Flags().StringP("mode", "m", "engine", "Who plays: human, engine or self")

	return cmd
}

func play(cmd *cobra.Command, b *board.Board, mode turnlog.Mode, engine *search.Engine, depth int) (*turnlog.Log, error) {
	au := colors(cmd)
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	log := &turnlog.Log{}
	memories := [2]*search.Memory{search.NewMemory(), search.NewMemory()}

	for b.Outcome() == board.InProgress {
		fmt.Fprint(out, util.Render(au, b, nil))

		player := b.SideToMove()
		entry := turnlog.Entry{Player: player, Mode: mode}

		var turn board.Turn
		if entry.Automated() {
			result := util.Thinking(player.String()+" is thinking", func() search.Result {
				return engine.Search(*b, depth, memories[player])
			})

			logrus.WithFields(logrus.Fields{
				"depth": result.Depth,
				"score": result.Score,
				"nodes": result.Nodes,
			}).Debug("engine decided")

			if turn = result.Turn; turn.IsUndefined() {
				fmt.Fprintf(out, "%s found no turn\n", player)
				b.Abandon()
				break
			}

			fmt.Fprintf(out, "%s plays %s\n", player, au.Cyan(turn))
		} else {
			var err error
			turn, err = readTurn(in, out, b)
			if errors.Is(err, errQuit) {
				b.Abandon()
				break
			}

			if err != nil {
				return log, err
			}
		}

		b.ApplyTurn(turn)
		log.Append(player, turn, mode)
	}

	fmt.Fprint(out, util.Render(au, b, nil))
	fmt.Fprintln(out, au.Bold(b.Outcome()))
	return log, nil
}

// readTurn prompts until a legal turn is entered. errQuit is returned if
// the player quits or the input ends.
func readTurn(in *bufio.Scanner, out io.Writer, b *board.Board) (board.Turn, error) {
	for {
		player := b.SideToMove()
		fmt.Fprintf(out, "%s (%d walls) > ", player, b.WallsLeft(player))

		if !in.Scan() {
			if err := in.Err(); err != nil {
				return board.Turn{}, err
			}

			return board.Turn{}, errQuit
		}

		text := strings.TrimSpace(in.Text())
		switch text {
		case "":
			continue
		case "quit", "resign":
			return board.Turn{}, errQuit
		}

		turn, err := board.ParseTurn(text)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		if !b.Legal(turn) {
			fmt.Fprintf(out, "illegal turn %s\n", turn)
			continue
		}

		return turn, nil
	}
}
