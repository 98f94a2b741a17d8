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
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"laptudirm.com/x/quoridor/internal/util"
	"laptudirm.com/x/quoridor/pkg/board"
	"laptudirm.com/x/quoridor/pkg/search"
	"laptudirm.com/x/quoridor/pkg/turnlog"
)

// ReviewDepth is the search depth of reviews unless configured otherwise.
const ReviewDepth = 6

// quoridor review
func Review() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review log",
		Short: "Rate the turns of a saved game",
		Long: heredoc.Doc(`review steps through a saved game and compares every turn made
			by a human with the turn the engine would have played. Each
			turn is rated brilliant, very good, good, bad or very bad.

			The engine's suggestion is drawn on the board: a suggested
			move as +, a suggested wall in magenta, and the played move
			as x. The log remembers how far it has been reviewed, so a
			review continues where the previous one stopped.`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := turnlog.ReadFile(args[0])
			if err != nil {
				return err
			}

			b, err := newBoard(cmd)
			if err != nil {
				return err
			}

			if err := log.Replay(&b, log.Reviewed); err != nil {
				return err
			}

			engine, err := loadEngine(cmd)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("depth") && engine.Depth == 0 {
				engine.Depth = ReviewDepth
			}

			steps, _ := cmd.Flags().GetInt("steps")
			if err := review(cmd, &b, log, engine.Engine(), engine.MaxDepth(), steps); err != nil {
				return err
			}

			return log.WriteFile(args[0])
		},
	}

	boardFlags(cmd)
	engineFlags(cmd)
	cmd.Flags().IntP("steps", "n", 0, "Number of turns to review, all if zero")

	return cmd
}

// review rates the next steps entries of the log, starting at the first
// one which hasn't been reviewed. Turns made by the engine are only
// replayed.
func review(cmd *cobra.Command, b *board.Board, log *turnlog.Log, engine *search.Engine, depth, steps int) error {
	au := colors(cmd)
	out := cmd.OutOrStdout()
	mem := search.NewMemory()

	for reviewed := 0; log.Reviewed < len(log.Entries); reviewed++ {
		if steps > 0 && reviewed == steps {
			break
		}

		number := log.Reviewed + 1
		entry := log.Entries[log.Reviewed]
		if entry.Player != b.SideToMove() {
			return fmt.Errorf("entry %d: %w", number, turnlog.ErrWrongPlayer)
		}

		if !b.Legal(entry.Turn) {
			return fmt.Errorf("entry %d: %w: %s", number, turnlog.ErrIllegalTurn, entry.Turn)
		}

		if entry.Automated() {
			fmt.Fprintf(out, "%d. %s played %s (engine)\n", number, entry.Player, entry.Turn)
		} else {
			assessment := engine.Assess(*b, entry.Turn, depth, mem)
			preview, marks := suggestion(b, assessment)
			fmt.Fprint(out, util.Render(au, preview, marks))
			fmt.Fprintf(out, "%d. %s played %s: %s, engine suggests %s (%+.2f vs %+.2f)\n",
				number, entry.Player, entry.Turn,
				verdict(au, assessment.Rating), assessment.Best,
				assessment.PlayedScore, assessment.BestScore,
			)
		}

		b.ApplyTurn(entry.Turn)
		log.Reviewed++
	}

	if log.Reviewed == len(log.Entries) {
		fmt.Fprintln(out, au.Bold("Review complete"))
	}

	return nil
}

// suggestion returns a copy of b showing the engine's suggestion, and the
// marks of the suggested and the played moves.
func suggestion(b *board.Board, assessment search.Assessment) (*board.Board, map[board.Cell]rune) {
	preview := *b
	marks := make(map[board.Cell]rune)

	if best := assessment.Best; best.Action.IsWall() {
		preview.PreviewWall(best.Action.Orientation(), best.Row, best.Col)
	} else if best.Action == board.MoveTo {
		marks[best.Cell()] = '+'
	}

	if played := assessment.Played; played.Action == board.MoveTo && played != assessment.Best {
		marks[played.Cell()] = 'x'
	}

	return &preview, marks
}

func verdict(au aurora.Aurora, rating search.Rating) aurora.Value {
	switch rating {
	case search.Brilliant, search.Great:
		return au.Green(rating)
	case search.Good:
		return au.Blue(rating)
	case search.Mistake:
		return au.Yellow(rating)
	default:
		return au.Red(rating)
	}
}
