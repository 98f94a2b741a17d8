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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTurn(t *testing.T) {
	tests := []struct {
		str  string
		turn Turn
	}{
		{"0000", Turn{}},
		{"a1", Turn{MoveTo, 0, 0}},
		{"c3", Turn{MoveTo, 2, 2}},
		{"i9", Turn{MoveTo, 8, 8}},
		{"b2h", Turn{HorizontalWall, 1, 1}},
		{"h8v", Turn{VerticalWall, 7, 7}},
	}

	for _, test := range tests {
		t.Run(test.str, func(t *testing.T) {
			turn, err := ParseTurn(test.str)
			assert.NoError(t, err)
			assert.Equal(t, test.turn, turn)
			assert.Equal(t, test.str, turn.String())
		})
	}
}

func TestParseTurnErrors(t *testing.T) {
	for _, str := range []string{"", "a", "z1", "a0", "a10", "ah", "3a", "a1x", "A1"} {
		_, err := ParseTurn(str)
		assert.ErrorIs(t, err, ErrSyntax, "%q", str)
	}
}

func TestTurnHelpers(t *testing.T) {
	assert.True(t, Turn{}.IsUndefined())
	assert.False(t, Move(Cell{1, 2}).IsUndefined())
	assert.Equal(t, Cell{1, 2}, Move(Cell{1, 2}).Cell())

	assert.Equal(t, Turn{HorizontalWall, 3, 4}, Wall(Horizontal, 3, 4))
	assert.Equal(t, Turn{VerticalWall, 3, 4}, Wall(Vertical, 3, 4))

	assert.True(t, HorizontalWall.IsWall())
	assert.True(t, VerticalWall.IsWall())
	assert.False(t, MoveTo.IsWall())
	assert.Equal(t, Vertical, VerticalWall.Orientation())
	assert.Equal(t, Horizontal, HorizontalWall.Orientation())
}
