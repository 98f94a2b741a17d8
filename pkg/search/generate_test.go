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
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/quoridor/pkg/board"
)

func move(row, col int) board.Turn {
	return board.Move(board.Cell{Row: row, Col: col})
}

func TestChildrenMoves(t *testing.T) {
	g := &Generator{Placement: DefaultWeights().Placement}
	b := newBoard(t, 5, 0, board.Player0)

	opening := []board.Turn{move(1, 0), move(2, 1), move(3, 0)}
	assert.Equal(t, opening, g.Children(&b, board.Turn{}, nil))

	t.Run("principal variation first", func(t *testing.T) {
		children := g.Children(&b, move(3, 0), nil)
		assert.Equal(t, []board.Turn{move(3, 0), move(1, 0), move(2, 1)}, children)
	})

	t.Run("illegal first turn", func(t *testing.T) {
		assert.Equal(t, opening, g.Children(&b, move(0, 0), nil))
		assert.Equal(t, opening, g.Children(&b, board.Wall(board.Vertical, 1, 1), nil))
	})

	t.Run("buffer reuse", func(t *testing.T) {
		buffer := make([]board.Turn, 0, MaxChildren)
		buffer = append(buffer, move(4, 4))

		children := g.Children(&b, board.Turn{}, buffer)
		assert.Equal(t, opening, children)
		assert.Equal(t, MaxChildren, cap(children))
	})

	t.Run("game over", func(t *testing.T) {
		b := b
		b.Abandon()
		assert.Empty(t, g.Children(&b, board.Turn{}, nil))
	})
}

func TestChildrenBreadth(t *testing.T) {
	b := newBoard(t, 5, 2, board.Player0)

	tests := []struct {
		breadth, walls int
	}{
		{0, DefaultBreadth},
		{3, 3},
		{DefaultBreadth, DefaultBreadth},
		{100, MaxBreadth},
	}

	for _, test := range tests {
		g := &Generator{Placement: DefaultWeights().Placement, Breadth: test.breadth}

		children := g.Children(&b, board.Turn{}, nil)
		require.Len(t, children, 3+test.walls, "breadth %d", test.breadth)

		for i, child := range children {
			assert.Equal(t, i >= 3, child.Action.IsWall(), "%s", child)
			assert.True(t, b.Legal(child), "%s", child)
		}
	}
}

func TestWallOrdering(t *testing.T) {
	g := &Generator{Placement: DefaultWeights().Placement}
	b := newBoard(t, 5, 2, board.Player0)

	walls := g.Walls(&b)
	require.Len(t, walls, DefaultBreadth)

	ownPath, _ := board.ShortestPath(&b, board.Player0)
	oppPath, _ := board.ShortestPath(&b, board.Player1)

	// the best walls cut the opponent's path through the middle
	assert.Equal(t, board.Wall(board.Vertical, 1, 1), walls[0])
	assert.Positive(t, cuts(oppPath, walls[0]))

	for i := 1; i < len(walls); i++ {
		assert.GreaterOrEqual(t,
			g.score(&b, walls[i-1], ownPath, oppPath),
			g.score(&b, walls[i], ownPath, oppPath),
		)
	}

	t.Run("no walls left", func(t *testing.T) {
		b := newBoard(t, 5, 0, board.Player0)
		assert.Empty(t, g.Walls(&b))
	})

	t.Run("skipped first turn", func(t *testing.T) {
		children := g.Children(&b, walls[0], nil)
		assert.Equal(t, walls[0], children[0])

		n := 0
		for _, child := range children {
			if child == walls[0] {
				n++
			}
		}
		assert.Equal(t, 1, n)
	})
}

func TestWallHelpers(t *testing.T) {
	path := board.Path{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}

	assert.Equal(t, 1, cuts(path, board.Wall(board.Vertical, 1, 0)))
	assert.Equal(t, 1, cuts(path, board.Wall(board.Vertical, 2, 1)))
	assert.Equal(t, 0, cuts(path, board.Wall(board.Vertical, 0, 0)))
	assert.Equal(t, 0, cuts(path, board.Wall(board.Horizontal, 2, 0)))

	assert.Equal(t, 2, touches(path, board.Wall(board.Horizontal, 1, 0)))
	assert.Equal(t, 0, touches(path, board.Wall(board.Horizontal, 3, 0)))

	assert.Equal(t, 0.0, centerDistance(6, board.Wall(board.Horizontal, 2, 2)))
	assert.Equal(t, 3.0, centerDistance(5, board.Wall(board.Vertical, 0, 0)))
}
