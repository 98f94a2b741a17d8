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
	"fmt"
	"math/rand"
)

// Direction is one of the four orthogonal directions on the board.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in the order in which neighbours are
// expanded by the path oracle.
var Directions = [4]Direction{Up, Down, Left, Right}

// Step returns the cell next to c in the direction d.
func (d Direction) Step(c Cell) Cell {
	switch d {
	case Up:
		c.Row--
	case Down:
		c.Row++
	case Left:
		c.Col--
	case Right:
		c.Col++
	}

	return c
}

// Lateral returns the two directions perpendicular to d.
func (d Direction) Lateral() [2]Direction {
	if d == Up || d == Down {
		return [2]Direction{Left, Right}
	}

	return [2]Direction{Up, Down}
}

// Blocked reports whether a token on c can't step in the direction d,
// either because of a wall or because of the edge of the board.
func (b *Board) Blocked(c Cell, d Direction) bool {
	switch d {
	case Up:
		return c.Row == 0 || b.hWalls[c.Row-1][c.Col].Blocks()
	case Down:
		return c.Row == b.size-1 || b.hWalls[c.Row][c.Col].Blocks()
	case Left:
		return c.Col == 0 || b.vWalls[c.Row][c.Col-1].Blocks()
	default:
		return c.Col == b.size-1 || b.vWalls[c.Row][c.Col].Blocks()
	}
}

// updateLegal recomputes the legal destinations of the side to move.
func (b *Board) updateLegal() {
	b.legal = [MaxGridSize][MaxGridSize]bool{}

	curr := b.positions[b.sideToMove]
	other := b.positions[b.sideToMove.Other()]

	for _, d := range Directions {
		if b.Blocked(curr, d) {
			continue
		}

		next := d.Step(curr)
		if next != other {
			b.legal[next.Row][next.Col] = true
			continue
		}

		// The opponent is in the way: jump straight over it if nothing is
		// behind it, otherwise step to one of its sides.
		if !b.Blocked(other, d) {
			jump := d.Step(other)
			b.legal[jump.Row][jump.Col] = true
			continue
		}

		for _, side := range d.Lateral() {
			if !b.Blocked(other, side) {
				dest := side.Step(other)
				b.legal[dest.Row][dest.Col] = true
			}
		}
	}

	b.legal[curr.Row][curr.Col] = false
	b.legal[other.Row][other.Col] = false
}

// CanMoveTo reports whether the side to move may move its token to the
// given cell this turn.
func (b *Board) CanMoveTo(row, col int) bool {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return false
	}

	return b.outcome == InProgress && b.legal[row][col]
}

// LegalMoves returns every cell the side to move may move to, in row-major
// order. It is empty once the game is over.
func (b *Board) LegalMoves() []Cell {
	if b.outcome != InProgress {
		return nil
	}

	moves := make([]Cell, 0, 5)
	for i := 0; i < b.size; i++ {
		for j := 0; j < b.size; j++ {
			if b.legal[i][j] {
				moves = append(moves, Cell{i, j})
			}
		}
	}

	return moves
}

// Legal reports whether the given turn can be applied to the board.
func (b *Board) Legal(t Turn) bool {
	switch t.Action {
	case MoveTo:
		return b.CanMoveTo(t.Row, t.Col)
	case HorizontalWall:
		return b.CanPlaceWall(Horizontal, t.Row, t.Col)
	case VerticalWall:
		return b.CanPlaceWall(Vertical, t.Row, t.Col)
	default:
		return false
	}
}

// ApplyTurn commits the given turn for the side to move and passes the
// turn to the opponent. Applying an illegal turn is a programming error
// and causes a panic, so callers must check Legal beforehand.
func (b *Board) ApplyTurn(t Turn) {
	if !b.Legal(t) {
		panic(fmt.Sprintf("board: illegal turn %s for %s", t, b.sideToMove))
	}

	mover := b.sideToMove
	switch t.Action {
	case MoveTo:
		b.positions[mover] = Cell{t.Row, t.Col}
		if t.Col == b.GoalColumn(mover) {
			b.outcome = WonBy(mover)
		}

	case HorizontalWall:
		b.placeWall(Horizontal, t.Row, t.Col)
	case VerticalWall:
		b.placeWall(Vertical, t.Row, t.Col)
	}

	b.ClearPreview()
	b.sideToMove = mover.Other()
	b.updateLegal()
}

// RandomStart gives both players two extra walls and then places four
// random walls, alternating between the players, as an opening.
func (b *Board) RandomStart(rng *rand.Rand) {
	b.walls[Player0] += 2
	b.walls[Player1] += 2

	candidates := make([]Turn, 0, 2*(MaxGridSize-1)*(MaxGridSize-1))
	for n := 0; n < 4; n++ {
		candidates = candidates[:0]
		for i := 0; i < b.size-1; i++ {
			for j := 0; j < b.size-1; j++ {
				if b.CanPlaceWall(Horizontal, i, j) {
					candidates = append(candidates, Turn{HorizontalWall, i, j})
				}

				if b.CanPlaceWall(Vertical, i, j) {
					candidates = append(candidates, Turn{VerticalWall, i, j})
				}
			}
		}

		if len(candidates) == 0 {
			return
		}

		b.ApplyTurn(candidates[rng.Intn(len(candidates))])
	}
}
