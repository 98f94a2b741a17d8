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
	"testing"

	"github.com/stretchr/testify/assert"

	"laptudirm.com/x/quoridor/pkg/board"
)

func TestEvaluate(t *testing.T) {
	e := &Evaluator{Weights: DefaultWeights()}

	t.Run("opening", func(t *testing.T) {
		b := newBoard(t, 5, 0, board.Player0)

		// equal paths of 4 steps, no walls, opponent on the middle row
		assert.Equal(t, 4.0, e.Evaluate(&b, board.Player0, board.Turn{}))
		assert.Equal(t, 4.0, e.Evaluate(&b, board.Player1, board.Turn{}))
	})

	t.Run("path delta", func(t *testing.T) {
		b := newBoard(t, 5, 3, board.Player0, "b3", "e2")

		// player 0: 3 steps and 3 walls, player 1: 4 steps from row 1
		assert.Equal(t, 2*1+1*4+3+0.25*1, e.Evaluate(&b, board.Player0, board.Turn{}))
		assert.Equal(t, 2*-1+1*3+3+0.0, e.Evaluate(&b, board.Player1, board.Turn{}))
	})

	t.Run("near win", func(t *testing.T) {
		b := newBoard(t, 5, 1, board.Player1, "d3", "a2", "c3", "a1", "b3")

		assert.Equal(t, -e.Weights.NearWin, e.Evaluate(&b, board.Player0, board.Turn{}))
		assert.Equal(t, e.Weights.NearWin, e.Evaluate(&b, board.Player1, board.Turn{}))
	})

	t.Run("wall near the opponent's path", func(t *testing.T) {
		b := newBoard(t, 5, 2, board.Player0, "b3h")
		wall := board.Wall(board.Horizontal, 2, 1)

		diff := e.Evaluate(&b, board.Player0, wall) - e.Evaluate(&b, board.Player0, board.Turn{})
		assert.Equal(t, 2*e.Weights.WallProximity, diff)

		diff = e.Evaluate(&b, board.Player1, wall) - e.Evaluate(&b, board.Player1, board.Turn{})
		assert.Equal(t, -2*e.Weights.WallProximity, diff)
	})

	t.Run("idle wall", func(t *testing.T) {
		b := newBoard(t, 5, 2, board.Player0, "a1h")
		wall := board.Wall(board.Horizontal, 0, 0)

		diff := e.Evaluate(&b, board.Player0, wall) - e.Evaluate(&b, board.Player0, board.Turn{})
		assert.Equal(t, -e.Weights.IdleWall, diff)
	})

	t.Run("wall line", func(t *testing.T) {
		b := newBoard(t, 7, 2, board.Player0, "a1h", "f6v", "c1h")
		wall := board.Wall(board.Horizontal, 0, 2)

		diff := e.Evaluate(&b, board.Player0, wall) - e.Evaluate(&b, board.Player0, board.Turn{})
		assert.Equal(t, -e.Weights.IdleWall+e.Weights.WallLine, diff)
	})
}

func TestTerminal(t *testing.T) {
	e := &Evaluator{Weights: DefaultWeights()}

	assert.Equal(t, 9994.0, e.Terminal(board.Player0Won, board.Player0, 3))
	assert.Equal(t, -9994.0, e.Terminal(board.Player0Won, board.Player1, 3))
	assert.Equal(t, 9998.0, e.Terminal(board.Player1Won, board.Player1, 1))
	assert.Equal(t, 0.0, e.Terminal(board.Abandoned, board.Player1, 1))

	// nearer wins are better
	assert.Greater(t, e.Terminal(board.Player0Won, board.Player0, 1), e.Terminal(board.Player0Won, board.Player0, 5))
	assert.Less(t, e.Terminal(board.Player1Won, board.Player0, 1), e.Terminal(board.Player1Won, board.Player0, 5))

	assert.True(t, e.IsForced(9994))
	assert.True(t, e.IsForced(-9994))
	assert.False(t, e.IsForced(e.Weights.NearWin))
	assert.False(t, e.IsForced(e.Weights.Forced()))
	assert.True(t, e.IsForced(e.Weights.Forced()+1))
}

func TestJitter(t *testing.T) {
	assert.Equal(t, 0.0, NoJitter{}.Next())
	assert.Equal(t, NoJitter{}, NewJitter(1, 0))

	a, b := NewJitter(42, 0.5), NewJitter(42, 0.5)
	for i := 0; i < 100; i++ {
		x := a.Next()
		assert.Equal(t, x, b.Next())
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 0.5)
	}

	e := &Evaluator{Weights: DefaultWeights(), Jitter: NewJitter(7, 1)}
	plain := &Evaluator{Weights: DefaultWeights()}
	position := newBoard(t, 5, 0, board.Player0)

	score := e.Evaluate(&position, board.Player0, board.Turn{})
	base := plain.Evaluate(&position, board.Player0, board.Turn{})
	assert.GreaterOrEqual(t, score, base)
	assert.Less(t, score, base+1)
}

func TestRate(t *testing.T) {
	tests := []struct {
		played, best float64
		rating       Rating
	}{
		{5, -5, Brilliant},
		{-5, 5, Blunder},
		{10, 5, Great},
		{2, 5, Mistake},
		{5, 5, Good},
		{5.5, 5, Good},
		{-3, -2.5, Good},
	}

	for _, test := range tests {
		assert.Equal(t, test.rating, Rate(test.played, test.best), "%v vs %v", test.played, test.best)
	}

	assert.Equal(t, "brilliant", Brilliant.String())
	assert.Equal(t, "very bad", Blunder.String())
}

func TestAssess(t *testing.T) {
	e := testEngine()
	b := newBoard(t, 5, 0, board.Player0, "b3", "e2", "c3", "e1", "d3", "d1")

	win := board.Move(board.Cell{Row: 2, Col: 4})
	assessment := e.Assess(b, win, 3, nil)
	assert.Equal(t, win, assessment.Best)
	assert.Equal(t, Good, assessment.Rating)

	assessment = e.Assess(b, board.Move(board.Cell{Row: 1, Col: 3}), 3, nil)
	assert.Equal(t, win, assessment.Best)
	assert.Equal(t, e.Weights.NearWin, assessment.PlayedScore)
	assert.Equal(t, Mistake, assessment.Rating)
}
