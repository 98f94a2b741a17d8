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

// Package board implements the authoritative state of a game of quoridor:
// token positions, wall segments, remaining walls, the side to move and
// the outcome of the game, along with the legality checks and mutators
// that keep that state consistent.
//
// A Board is a flat value. Assigning it to another variable creates an
// independent snapshot, which is how the search explores hypothetical
// positions without ever touching the caller's board.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// MaxGridSize is the largest supported board size.
const MaxGridSize = 9

// MaxPathLength is an upper bound on the number of cells in any path.
const MaxPathLength = MaxGridSize * MaxGridSize

var (
	ErrGridSize  = errors.New("board: invalid grid size")
	ErrWallCount = errors.New("board: invalid wall count")
)

// Player identifies one of the two players.
type Player uint8

const (
	Player0 Player = iota
	Player1
)

// Other returns the opponent of the given player.
func (p Player) Other() Player {
	return p ^ 1
}

func (p Player) String() string {
	return fmt.Sprintf("player %d", p)
}

// Cell is a (row, column) coordinate on the board.
type Cell struct {
	Row, Col int
}

// Outcome represents the state of the game as a whole.
type Outcome uint8

const (
	InProgress Outcome = iota
	Player0Won
	Player1Won
	Abandoned
)

// WonBy returns the winning Outcome for the given player.
func WonBy(p Player) Outcome {
	return Player0Won + Outcome(p)
}

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Player0Won:
		return "player 0 won"
	case Player1Won:
		return "player 1 won"
	case Abandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Board is the state of a game of quoridor.
type Board struct {
	size int

	sideToMove Player
	outcome    Outcome

	positions [2]Cell
	walls     [2]int

	// hWalls[i][j] is the segment below cell (i, j) and vWalls[i][j] is
	// the segment to the right of cell (i, j).
	hWalls [MaxGridSize][MaxGridSize]WallState
	vWalls [MaxGridSize][MaxGridSize]WallState

	// legal destinations of the side to move
	legal [MaxGridSize][MaxGridSize]bool
}

// New creates a new Board with the given parameters. See Board.Reset.
func New(size, walls int, first Player) (Board, error) {
	var b Board
	err := b.Reset(size, walls, first)
	return b, err
}

// Reset reinitializes the board for a new game of the given size where
// each player starts with walls walls and first has the first turn. The
// player 0 starts on the middle of the leftmost column and races to the
// rightmost one, while player 1 does the opposite.
func (b *Board) Reset(size, walls int, first Player) error {
	if size < 5 || size > MaxGridSize || size%2 == 0 {
		return fmt.Errorf("%w: %d", ErrGridSize, size)
	}

	if walls < 0 {
		return fmt.Errorf("%w: %d", ErrWallCount, walls)
	}

	*b = Board{
		size:       size,
		sideToMove: first & 1,
		positions: [2]Cell{
			{Row: size / 2, Col: 0},
			{Row: size / 2, Col: size - 1},
		},
		walls: [2]int{walls, walls},
	}

	b.updateLegal()
	return nil
}

// Size returns the number of rows (and columns) of the board.
func (b *Board) Size() int {
	return b.size
}

// SideToMove returns the player who holds the turn.
func (b *Board) SideToMove() Player {
	return b.sideToMove
}

// Outcome returns the current outcome of the game.
func (b *Board) Outcome() Outcome {
	return b.outcome
}

// Position returns the cell occupied by the given player's token.
func (b *Board) Position(p Player) Cell {
	return b.positions[p]
}

// WallsLeft returns the number of walls the given player can still place.
func (b *Board) WallsLeft(p Player) int {
	return b.walls[p]
}

// GoalColumn returns the column the given player is racing to.
func (b *Board) GoalColumn(p Player) int {
	if p == Player0 {
		return b.size - 1
	}

	return 0
}

// Abandon marks an in progress game as abandoned.
func (b *Board) Abandon() {
	if b.outcome == InProgress {
		b.outcome = Abandoned
	}
}

// String returns a human readable representation of the board. Tokens are
// drawn as 0 and 1, and the two halves of a wall as A and B.
func (b *Board) String() string {
	var str strings.Builder

	str.WriteString(strings.Repeat("+-", b.size))
	str.WriteString("+\n")

	for i := 0; i < b.size; i++ {
		str.WriteByte('|')
		for j := 0; j < b.size; j++ {
			switch (Cell{i, j}) {
			case b.positions[Player0]:
				str.WriteByte('0')
			case b.positions[Player1]:
				str.WriteByte('1')
			default:
				str.WriteByte('.')
			}

			switch b.vWalls[i][j] {
			case WallStart:
				str.WriteByte('A')
			case WallEnd:
				str.WriteByte('B')
			default:
				str.WriteByte('|')
			}
		}

		str.WriteString("\n+")
		for j := 0; j < b.size; j++ {
			switch {
			case b.hWalls[i][j] == WallStart:
				str.WriteString("A=")
			case b.hWalls[i][j] == WallEnd:
				str.WriteString("B|")
			case b.vWalls[i][j].Blocks():
				// the middle and the far end of a vertical wall
				str.WriteString("-#")
			default:
				str.WriteString("-+")
			}
		}
		str.WriteByte('\n')
	}

	return str.String()
}
