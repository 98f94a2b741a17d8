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

package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// wallBetween reports whether a wall separates the adjacent cells a and c,
// reading the segment grids directly.
func wallBetween(b *Board, a, c Cell) bool {
	blocks := func(s WallState) bool { return s == WallStart || s == WallEnd }

	switch {
	case c.Row == a.Row+1:
		return blocks(b.hWalls[a.Row][a.Col])
	case c.Row == a.Row-1:
		return blocks(b.hWalls[c.Row][c.Col])
	case c.Col == a.Col+1:
		return blocks(b.vWalls[a.Row][a.Col])
	default:
		return blocks(b.vWalls[c.Row][c.Col])
	}
}

// referenceDistance is a plain breadth first search over the grid graph,
// returning -1 if the goal column is unreachable.
func referenceDistance(b *Board, p Player) int {
	n := b.Size()
	goal := b.GoalColumn(p)
	start := b.Position(p)

	dist := map[Cell]int{start: 0}
	queue := []Cell{start}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		if cell.Col == goal {
			return dist[cell]
		}

		neighbours := []Cell{
			{cell.Row - 1, cell.Col}, {cell.Row + 1, cell.Col},
			{cell.Row, cell.Col - 1}, {cell.Row, cell.Col + 1},
		}

		for _, next := range neighbours {
			if next.Row < 0 || next.Row >= n || next.Col < 0 || next.Col >= n {
				continue
			}

			if _, seen := dist[next]; seen || wallBetween(b, cell, next) {
				continue
			}

			dist[next] = dist[cell] + 1
			queue = append(queue, next)
		}
	}

	return -1
}

// referenceCanPlace decides the legality of a wall without going through
// the tentative placement of CanPlaceWall.
func referenceCanPlace(b *Board, o Orientation, row, col int) bool {
	n := b.Size()
	if row < 0 || row >= n-1 || col < 0 || col >= n-1 {
		return false
	}

	if b.Outcome() != InProgress || b.WallsLeft(b.SideToMove()) == 0 {
		return false
	}

	occupied := func(s WallState) bool { return s == WallStart || s == WallEnd }

	after := *b
	if o == Horizontal {
		if occupied(b.hWalls[row][col]) || occupied(b.hWalls[row][col+1]) || b.vWalls[row][col] == WallStart {
			return false
		}

		after.hWalls[row][col], after.hWalls[row][col+1] = WallStart, WallEnd
	} else {
		if occupied(b.vWalls[row][col]) || occupied(b.vWalls[row+1][col]) || b.hWalls[row][col] == WallStart {
			return false
		}

		after.vWalls[row][col], after.vWalls[row+1][col] = WallStart, WallEnd
	}

	return referenceDistance(&after, Player0) >= 0 && referenceDistance(&after, Player1) >= 0
}

func TestShortestPath(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for game := 0; game < 30; game++ {
		size := []int{5, 7, 9}[game%3]

		b := newBoard(t, size, 10, Player(game&1))
		for ply := 0; ply < 60 && b.Outcome() == InProgress; ply++ {
			for _, p := range []Player{Player0, Player1} {
				path, length := ShortestPath(&b, p)

				assert.Equal(t, referenceDistance(&b, p)+1, length, "\n%s", &b)
				assert.Len(t, path, length)
				assert.Equal(t, length-1, path.Steps())
				assert.Equal(t, b.Position(p), path[0])
				assert.Equal(t, b.GoalColumn(p), path[len(path)-1].Col)

				for i := 1; i < len(path); i++ {
					prev, cell := path[i-1], path[i]
					dr, dc := cell.Row-prev.Row, cell.Col-prev.Col
					assert.Equal(t, 1, dr*dr+dc*dc, "path cells must be adjacent")
					assert.False(t, wallBetween(&b, prev, cell), "path crosses a wall")
				}
			}

			turn := randomTurn(&b, rng)
			if turn.IsUndefined() {
				break
			}

			b.ApplyTurn(turn)
		}
	}
}

func TestShortestPathDetour(t *testing.T) {
	b := newBoard(t, 5, 1, Player0)

	// the wall covers the rows 1 and 2, so the shortest detour goes down
	play(t, &b, "a2v")

	path, length := ShortestPath(&b, Player0)
	assert.Equal(t, 6, length)
	assert.Equal(t, Path{{2, 0}, {3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}}, path)
	assert.True(t, path.Contains(Cell{3, 2}))
	assert.False(t, path.Contains(Cell{2, 1}))

	again, _ := ShortestPath(&b, Player0)
	assert.Equal(t, path, again)
}

func TestShortestPathTieBreak(t *testing.T) {
	b := newBoard(t, 5, 1, Player0)

	// both b3 and a4 start a shortest detour around the wall; down is
	// expanded before right, so the path goes through a4
	play(t, &b, "b2v")

	path, length := ShortestPath(&b, Player0)
	assert.Equal(t, 6, length)
	assert.Equal(t, Path{{2, 0}, {3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}}, path)
}

func TestShortestPathPlayer1(t *testing.T) {
	b := newBoard(t, 5, 0, Player0)

	path, length := ShortestPath(&b, Player1)
	assert.Equal(t, 5, length)
	assert.Equal(t, Cell{2, 4}, path[0])
	assert.Equal(t, 0, path[4].Col)
	assert.Equal(t, 4, Distance(&b, Player1))
}
