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

package search

import (
	"math"

	"laptudirm.com/x/quoridor/pkg/board"
)

// Evaluator statically scores positions.
type Evaluator struct {
	Weights Weights
	Jitter  Jitter
}

// Evaluate scores a position which is still in progress from the point of
// view of perspective: positive scores favour it, negative ones favour
// its opponent. last is the turn which led to the position, and is used
// to judge the wall it placed, if any.
//
// A player one step away from its goal yields ±NearWin instead of the
// usual linear score. If both are, the side to move gets the advantage.
func (e *Evaluator) Evaluate(b *board.Board, perspective board.Player, last board.Turn) float64 {
	opponent := perspective.Other()

	ownPath, ownLen := board.ShortestPath(b, perspective)
	oppPath, oppLen := board.ShortestPath(b, opponent)
	own, opp := ownLen-1, oppLen-1

	w := &e.Weights

	if b.SideToMove() == perspective {
		if own == 1 {
			return w.NearWin
		}
		if opp == 1 {
			return -w.NearWin
		}
	} else {
		if opp == 1 {
			return -w.NearWin
		}
		if own == 1 {
			return w.NearWin
		}
	}

	score := w.PathDelta*float64(opp-own) +
		w.OpponentPath*float64(opp) +
		w.WallsLeft*float64(b.WallsLeft(perspective)) +
		w.Centrality*math.Abs(float64(b.Position(opponent).Row-b.Size()/2))

	if last.Action.IsWall() {
		// the player who placed the wall is the one not to move now
		placer := b.SideToMove().Other()

		victim := oppPath
		if placer == opponent {
			victim = ownPath
		}

		var wall float64
		if n := touches(victim, last); n > 0 {
			wall += w.WallProximity * float64(n)
		} else {
			wall -= w.IdleWall
		}
		wall += w.WallLine * float64(line(b, last))

		if placer == perspective {
			score += wall
		} else {
			score -= wall
		}
	}

	if e.Jitter != nil {
		score += e.Jitter.Next()
	}

	return score
}

// Terminal scores a finished game from the point of view of perspective,
// ply turns away from the root of the search. Nearer wins score higher
// and nearer losses lower.
func (e *Evaluator) Terminal(o board.Outcome, perspective board.Player, ply int) float64 {
	score := e.Weights.Win - float64(ply)*e.Weights.DepthPenalty

	switch o {
	case board.WonBy(perspective):
		return score
	case board.WonBy(perspective.Other()):
		return -score
	default:
		return 0
	}
}

// IsForced reports whether score can only come from a finished game.
func (e *Evaluator) IsForced(score float64) bool {
	return math.Abs(score) > e.Weights.Forced()
}
