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

// Orientation is the orientation of a wall.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}

	return "vertical"
}

// WallState is the state of a single wall segment. A placed wall always
// covers two segments, the first marked WallStart and the second WallEnd.
type WallState uint8

const (
	WallNone WallState = iota
	WallStart
	WallEnd

	// WallPreview marks a suggested wall which is only displayed. It is
	// never treated as a wall by any legality or path computation.
	WallPreview
)

// Blocks reports whether the segment stops a token from crossing it.
func (s WallState) Blocks() bool {
	return s == WallStart || s == WallEnd
}

// HorizontalWall returns the state of the segment below the given cell.
func (b *Board) HorizontalWall(row, col int) WallState {
	return b.hWalls[row][col]
}

// VerticalWall returns the state of the segment right of the given cell.
func (b *Board) VerticalWall(row, col int) WallState {
	return b.vWalls[row][col]
}

// segments returns pointers to the two segments covered by a wall at the
// given junction along with the perpendicular segment which starts at the
// same junction and would cross it.
func (b *Board) segments(o Orientation, row, col int) (*WallState, *WallState, WallState) {
	if o == Horizontal {
		return &b.hWalls[row][col], &b.hWalls[row][col+1], b.vWalls[row][col]
	}

	return &b.vWalls[row][col], &b.vWalls[row+1][col], b.hWalls[row][col]
}

// CanPlaceWall reports whether the side to move may place a wall with the
// given orientation at the junction below and to the right of (row, col).
// The wall must lie inside the board, not overlap or cross another wall
// and must leave both players with a path to their goal.
func (b *Board) CanPlaceWall(o Orientation, row, col int) bool {
	if row < 0 || row >= b.size-1 || col < 0 || col >= b.size-1 {
		return false
	}

	if b.outcome != InProgress || b.walls[b.sideToMove] <= 0 {
		return false
	}

	first, second, cross := b.segments(o, row, col)
	if first.Blocks() || second.Blocks() || cross == WallStart {
		return false
	}

	// Tentatively place the wall and check if the board is still playable.
	// The previous segment states are restored whatever the result is.
	prevFirst, prevSecond := *first, *second
	*first, *second = WallStart, WallEnd

	feasible := IsFeasible(b)

	*first, *second = prevFirst, prevSecond
	return feasible
}

// placeWall commits a wall without checking its legality.
func (b *Board) placeWall(o Orientation, row, col int) {
	first, second, _ := b.segments(o, row, col)
	*first, *second = WallStart, WallEnd
	b.walls[b.sideToMove]--
}

// PreviewWall marks a wall at the given junction for display. Previews are
// discarded when the next turn is committed and never block anything.
func (b *Board) PreviewWall(o Orientation, row, col int) {
	if row < 0 || row >= b.size-1 || col < 0 || col >= b.size-1 {
		return
	}

	first, second, _ := b.segments(o, row, col)
	if first.Blocks() || second.Blocks() {
		return
	}

	*first, *second = WallPreview, WallPreview
}

// ClearPreview removes every wall preview from the board.
func (b *Board) ClearPreview() {
	for i := 0; i < b.size; i++ {
		for j := 0; j < b.size; j++ {
			if b.hWalls[i][j] == WallPreview {
				b.hWalls[i][j] = WallNone
			}

			if b.vWalls[i][j] == WallPreview {
				b.vWalls[i][j] = WallNone
			}
		}
	}
}
