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

	"laptudirm.com/x/quoridor/pkg/board"
)

// touches counts the cells of path around the junction of the wall w.
func touches(path board.Path, w board.Turn) int {
	n := 0
	for _, c := range path {
		if (c.Row == w.Row || c.Row == w.Row+1) && (c.Col == w.Col || c.Col == w.Col+1) {
			n++
		}
	}

	return n
}

// cuts counts the steps of path which the wall w lies across.
func cuts(path board.Path, w board.Turn) int {
	n := 0
	for i := 1; i < len(path); i++ {
		if blocksStep(w, path[i-1], path[i]) {
			n++
		}
	}

	return n
}

func blocksStep(w board.Turn, a, c board.Cell) bool {
	switch w.Action {
	case board.HorizontalWall:
		return a.Col == c.Col && min(a.Row, c.Row) == w.Row &&
			(a.Col == w.Col || a.Col == w.Col+1)
	case board.VerticalWall:
		return a.Row == c.Row && min(a.Col, c.Col) == w.Col &&
			(a.Row == w.Row || a.Row == w.Row+1)
	default:
		return false
	}
}

// line counts the walls of the same orientation which continue the wall
// w at either of its ends.
func line(b *board.Board, w board.Turn) int {
	n := 0
	switch w.Action {
	case board.HorizontalWall:
		if w.Col > 0 && b.HorizontalWall(w.Row, w.Col-1).Blocks() {
			n++
		}
		if w.Col+2 < b.Size() && b.HorizontalWall(w.Row, w.Col+2).Blocks() {
			n++
		}

	case board.VerticalWall:
		if w.Row > 0 && b.VerticalWall(w.Row-1, w.Col).Blocks() {
			n++
		}
		if w.Row+2 < b.Size() && b.VerticalWall(w.Row+2, w.Col).Blocks() {
			n++
		}
	}

	return n
}

// centerDistance is the manhattan distance between the junction of w and
// the center of the board.
func centerDistance(size int, w board.Turn) float64 {
	center := float64(size) / 2
	return math.Abs(float64(w.Row+1)-center) + math.Abs(float64(w.Col+1)-center)
}
