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

// Path is a sequence of orthogonally adjacent cells.
type Path []Cell

// Steps returns the number of edges traversed by the path.
func (path Path) Steps() int {
	if len(path) == 0 {
		return 0
	}

	return len(path) - 1
}

// Contains reports whether the path goes through the given cell.
func (path Path) Contains(c Cell) bool {
	for _, cell := range path {
		if cell == c {
			return true
		}
	}

	return false
}

// ShortestPath finds a shortest path from the given player's token to its
// goal column, ignoring the other token. It returns the cells of the path
// from the token to the goal, both inclusive, and the number of cells.
//
// The search is breadth-first and expands neighbours in the order of
// Directions (up, down, left, right), so among paths of equal length the
// one returned is always the same for a given board. If the goal can't be
// reached, which never happens on a board built through ApplyTurn, a nil
// path and a length of zero are returned.
func ShortestPath(b *Board, p Player) (Path, int) {
	var (
		queue   [MaxPathLength]Cell
		visited [MaxGridSize][MaxGridSize]bool
		parent  [MaxGridSize][MaxGridSize]Cell
	)

	goal := b.GoalColumn(p)
	start := b.positions[p]

	head, tail := 0, 0
	queue[tail] = start
	tail++
	visited[start.Row][start.Col] = true

	for head < tail {
		cell := queue[head]
		head++

		if cell.Col == goal {
			return tracePath(&parent, start, cell)
		}

		for _, d := range Directions {
			if b.Blocked(cell, d) {
				continue
			}

			next := d.Step(cell)
			if visited[next.Row][next.Col] {
				continue
			}

			visited[next.Row][next.Col] = true
			parent[next.Row][next.Col] = cell
			queue[tail] = next
			tail++
		}
	}

	return nil, 0
}

// tracePath walks the parent links back from end to start.
func tracePath(parent *[MaxGridSize][MaxGridSize]Cell, start, end Cell) (Path, int) {
	length := 1
	for cell := end; cell != start; cell = parent[cell.Row][cell.Col] {
		length++
	}

	path := make(Path, length)
	for i, cell := length-1, end; i >= 0; i-- {
		path[i] = cell
		cell = parent[cell.Row][cell.Col]
	}

	return path, length
}

// Distance returns the number of steps in the shortest path of the given
// player, or -1 if its goal is unreachable.
func Distance(b *Board, p Player) int {
	_, length := ShortestPath(b, p)
	return length - 1
}
