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
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/quoridor/pkg/board"
)

func newBoard(t *testing.T, size, walls int, first board.Player, turns ...string) board.Board {
	t.Helper()

	b, err := board.New(size, walls, first)
	require.NoError(t, err)

	for _, str := range turns {
		turn, err := board.ParseTurn(str)
		require.NoError(t, err)
		require.True(t, b.Legal(turn), "turn %s should be legal\n%s", str, &b)
		b.ApplyTurn(turn)
	}

	return b
}

func testEngine() *Engine {
	e := NewEngine(DefaultWeights())
	e.Budget = 0
	return e
}

// fakeClock returns a clock which moves forward by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

// minimax is an exhaustive search over the same children as the engine.
func minimax(e *Engine, b *board.Board, root board.Player, ply, depth int, last board.Turn) (float64, board.Turn) {
	if outcome := b.Outcome(); outcome != board.InProgress {
		return e.Terminal(outcome, root, ply), board.Turn{}
	}

	if ply >= depth {
		return e.Evaluate(b, root, last), board.Turn{}
	}

	children := e.Children(b, board.Turn{}, nil)
	if len(children) == 0 {
		return e.Evaluate(b, root, last), board.Turn{}
	}

	maximizing := ply%2 == 0

	best, bestTurn := math.Inf(+1), board.Turn{}
	if maximizing {
		best = math.Inf(-1)
	}

	for _, child := range children {
		next := *b
		next.ApplyTurn(child)

		score, _ := minimax(e, &next, root, ply+1, depth, child)
		if (maximizing && score > best) || (!maximizing && score < best) {
			best, bestTurn = score, child
		}
	}

	return best, bestTurn
}

// fixedDepth runs a single alpha-beta search without move ordering.
func fixedDepth(e *Engine, b board.Board, depth int) (float64, board.Turn) {
	ctx := &searchContext{root: b.SideToMove()}
	for ply := range ctx.children {
		ctx.children[ply] = make([]board.Turn, 0, MaxChildren)
	}

	score, _ := e.alphaBeta(ctx, &b, 0, depth, math.Inf(-1), math.Inf(+1), board.Turn{})
	return score, ctx.pv[0][0]
}

// positions returns a few small positions with walls on the board.
func positions(t *testing.T) []board.Board {
	rng := rand.New(rand.NewSource(3))

	var boards []board.Board
	for i := 0; i < 6; i++ {
		b := newBoard(t, 5, 2, board.Player(i&1))
		b.RandomStart(rng)

		for ply := 0; ply < i && b.Outcome() == board.InProgress; ply++ {
			moves := b.LegalMoves()
			b.ApplyTurn(board.Move(moves[rng.Intn(len(moves))]))
		}

		if b.Outcome() == board.InProgress {
			boards = append(boards, b)
		}
	}

	return append(boards, newBoard(t, 5, 2, board.Player0))
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	e := testEngine()

	for _, b := range positions(t) {
		for depth := 1; depth <= 3; depth++ {
			want, wantTurn := minimax(e, &b, b.SideToMove(), 0, depth, board.Turn{})
			got, gotTurn := fixedDepth(e, b, depth)

			assert.Equal(t, want, got, "depth %d\n%s", depth, &b)
			assert.Equal(t, wantTurn, gotTurn, "depth %d\n%s", depth, &b)
		}
	}
}

func TestSearch(t *testing.T) {
	e := testEngine()

	for _, b := range positions(t) {
		before := b

		result := e.Search(b, 3, nil)
		want, _ := minimax(e, &b, b.SideToMove(), 0, 3, board.Turn{})

		assert.Equal(t, before, b)
		assert.False(t, result.TimedOut)
		assert.True(t, b.Legal(result.Turn), "%s\n%s", result.Turn, &b)
		require.NotEmpty(t, result.PV)
		assert.Equal(t, result.Turn, result.PV[0])
		assert.Positive(t, result.Nodes)

		if !e.IsForced(result.Score) {
			assert.Equal(t, 3, result.Depth)
			assert.Equal(t, want, result.Score)
		}
	}
}

func TestSearchDeterminism(t *testing.T) {
	e := testEngine()
	b := newBoard(t, 7, 4, board.Player0, "b4", "f4", "c4")

	first := e.Search(b, 3, NewMemory())
	second := e.Search(b, 3, NewMemory())

	assert.Equal(t, first.Turn, second.Turn)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.PV, second.PV)
	assert.Equal(t, first.Nodes, second.Nodes)
}

func TestSearchFindsWin(t *testing.T) {
	e := testEngine()

	// player 0 on d3, one step from its goal
	b := newBoard(t, 5, 0, board.Player0, "b3", "e2", "c3", "e1", "d3", "d1")

	mem := NewMemory()
	result := e.Search(b, 4, mem)

	assert.Equal(t, board.Move(board.Cell{Row: 2, Col: 4}), result.Turn)
	assert.Equal(t, e.Weights.Win-e.Weights.DepthPenalty, result.Score)
	assert.Equal(t, 1, result.Depth, "forced results stop the deepening")
	assert.Equal(t, result, mem.Last)
}

func TestSearchBlocksWin(t *testing.T) {
	e := testEngine()

	// player 1 on b3, one step from its goal, player 0 has a wall left
	b := newBoard(t, 5, 1, board.Player1, "d3", "a2", "c3", "a1", "b3")

	turn := e.ComputeTurn(b, 2, nil)
	assert.Equal(t, board.VerticalWall, turn.Action)
	assert.Equal(t, 0, turn.Col)
	assert.Contains(t, []int{1, 2}, turn.Row)
}

func TestSearchGameOver(t *testing.T) {
	e := testEngine()

	b := newBoard(t, 5, 0, board.Player0, "b3", "e2", "c3", "e1", "d3", "d1", "e3")
	require.Equal(t, board.Player0Won, b.Outcome())

	assert.True(t, e.ComputeTurn(b, 3, nil).IsUndefined())

	b = newBoard(t, 5, 0, board.Player0)
	b.Abandon()
	assert.True(t, e.ComputeTurn(b, 3, nil).IsUndefined())
}

func TestSearchTimeout(t *testing.T) {
	b := newBoard(t, 5, 2, board.Player0)

	t.Run("partial first depth", func(t *testing.T) {
		e := testEngine()
		e.Budget = 5 * time.Millisecond
		e.now = fakeClock(time.Millisecond)

		result := e.Search(b, 3, nil)
		assert.True(t, result.TimedOut)
		assert.Equal(t, 0, result.Depth)
		assert.False(t, result.Turn.IsUndefined())
		assert.True(t, b.Legal(result.Turn))
	})

	t.Run("no time at all", func(t *testing.T) {
		e := testEngine()
		e.Budget = time.Millisecond
		e.now = fakeClock(time.Hour)

		result := e.Search(b, 3, nil)
		assert.True(t, result.TimedOut)
		assert.Equal(t, 0, result.Depth)
		assert.True(t, result.Turn.IsUndefined())
	})

	t.Run("deeper depth interrupted", func(t *testing.T) {
		complete := testEngine().Search(b, 1, nil)

		e := testEngine()
		e.Budget = time.Duration(complete.Nodes+20) * time.Millisecond
		e.now = fakeClock(time.Millisecond)

		result := e.Search(b, 5, nil)
		assert.True(t, result.TimedOut)
		assert.Equal(t, 1, result.Depth)
		assert.Equal(t, complete.Turn, result.Turn)
		assert.Equal(t, complete.Score, result.Score)
	})
}

func TestSearchRealClock(t *testing.T) {
	e := NewEngine(DefaultWeights())
	b := newBoard(t, 9, 10, board.Player0)

	start := time.Now()
	result := e.Search(b, MaxPly, nil)

	assert.Less(t, time.Since(start), 5*e.Budget)
	assert.True(t, result.TimedOut)
	assert.GreaterOrEqual(t, result.Depth, 1)
	assert.True(t, b.Legal(result.Turn))
}
