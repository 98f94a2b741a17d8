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

import "laptudirm.com/x/quoridor/pkg/board"

// Rating is a verdict on a played turn compared to the engine's choice.
type Rating int

const (
	Blunder   Rating = -2
	Mistake   Rating = -1
	Good      Rating = 1
	Great     Rating = 2
	Brilliant Rating = 3
)

func (r Rating) String() string {
	switch r {
	case Blunder:
		return "very bad"
	case Mistake:
		return "bad"
	case Good:
		return "good"
	case Great:
		return "very good"
	case Brilliant:
		return "brilliant"
	default:
		return "unrated"
	}
}

// Rate compares the score of a played turn with the score of the engine's
// turn, both from the point of view of the player who made them.
func Rate(played, best float64) Rating {
	switch {
	case played > 0 && best < 0:
		return Brilliant
	case played < 0 && best > 0:
		return Blunder
	case played > best+1:
		return Great
	case played < best-1:
		return Mistake
	default:
		return Good
	}
}

// Assessment is the review of a single turn.
type Assessment struct {
	Played, Best           board.Turn
	PlayedScore, BestScore float64
	Rating                 Rating
}

// Assess searches b for the best turn and compares it to the turn which
// was actually played. Both turns are scored statically on the position
// they lead to, from the point of view of the side to move of b. played
// must be legal on b.
func (e *Engine) Assess(b board.Board, played board.Turn, maxDepth int, mem *Memory) Assessment {
	mover := b.SideToMove()

	assessment := Assessment{
		Played: played,
		Best:   e.ComputeTurn(b, maxDepth, mem),
	}

	assessment.PlayedScore = e.scoreAfter(b, mover, played)
	assessment.BestScore = assessment.PlayedScore
	if !assessment.Best.IsUndefined() {
		assessment.BestScore = e.scoreAfter(b, mover, assessment.Best)
	}

	assessment.Rating = Rate(assessment.PlayedScore, assessment.BestScore)
	return assessment
}

func (e *Engine) scoreAfter(b board.Board, mover board.Player, turn board.Turn) float64 {
	b.ApplyTurn(turn)
	if outcome := b.Outcome(); outcome != board.InProgress {
		return e.Terminal(outcome, mover, 1)
	}

	return e.Evaluate(&b, mover, turn)
}
