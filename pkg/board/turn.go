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
	"errors"
	"fmt"
	"strconv"
)

// Action is the kind of a Turn. The numeric values are the tags used by
// saved game logs.
type Action uint8

const (
	Undefined Action = iota
	MoveTo
	HorizontalWall
	VerticalWall
)

func (a Action) String() string {
	switch a {
	case MoveTo:
		return "move"
	case HorizontalWall:
		return "horizontal wall"
	case VerticalWall:
		return "vertical wall"
	default:
		return "undefined"
	}
}

// IsWall reports whether the action places a wall.
func (a Action) IsWall() bool {
	return a == HorizontalWall || a == VerticalWall
}

// Orientation returns the orientation of a wall action.
func (a Action) Orientation() Orientation {
	if a == VerticalWall {
		return Vertical
	}

	return Horizontal
}

// Turn is a single decision of a player: either moving its token to the
// cell (Row, Col) or placing a wall at the junction below and right of
// that cell. The zero value is the Undefined turn, which means that no
// decision was made.
type Turn struct {
	Action   Action
	Row, Col int
}

// Move returns a turn which moves a token to the given cell.
func Move(c Cell) Turn {
	return Turn{Action: MoveTo, Row: c.Row, Col: c.Col}
}

// Wall returns a turn which places a wall at the given junction.
func Wall(o Orientation, row, col int) Turn {
	if o == Vertical {
		return Turn{Action: VerticalWall, Row: row, Col: col}
	}

	return Turn{Action: HorizontalWall, Row: row, Col: col}
}

// IsUndefined reports whether the turn is the Undefined sentinel.
func (t Turn) IsUndefined() bool {
	return t.Action == Undefined
}

// Cell returns the cell targeted by the turn.
func (t Turn) Cell() Cell {
	return Cell{t.Row, t.Col}
}

// String returns the turn in coordinate notation: the column as a letter
// followed by the 1-indexed row, with a trailing h or v for walls. The
// Undefined turn is written as 0000.
func (t Turn) String() string {
	if t.Action == Undefined {
		return "0000"
	}

	str := fmt.Sprintf("%c%d", 'a'+rune(t.Col), t.Row+1)
	switch t.Action {
	case HorizontalWall:
		str += "h"
	case VerticalWall:
		str += "v"
	}

	return str
}

var ErrSyntax = errors.New("board: invalid turn syntax")

// ParseTurn parses a turn written in coordinate notation. It only checks
// the syntax of the turn, not its legality on any board.
func ParseTurn(str string) (Turn, error) {
	if str == "0000" {
		return Turn{}, nil
	}

	if len(str) < 2 {
		return Turn{}, fmt.Errorf("%w: %q", ErrSyntax, str)
	}

	col := int(str[0]) - 'a'
	if col < 0 || col >= MaxGridSize {
		return Turn{}, fmt.Errorf("%w: %q", ErrSyntax, str)
	}

	action := MoveTo
	digits := str[1:]
	switch str[len(str)-1] {
	case 'h':
		action, digits = HorizontalWall, digits[:len(digits)-1]
	case 'v':
		action, digits = VerticalWall, digits[:len(digits)-1]
	}

	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 || row > MaxGridSize {
		return Turn{}, fmt.Errorf("%w: %q", ErrSyntax, str)
	}

	return Turn{Action: action, Row: row - 1, Col: col}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Turn) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Turn) UnmarshalText(text []byte) error {
	turn, err := ParseTurn(string(text))
	if err != nil {
		return err
	}

	*t = turn
	return nil
}
