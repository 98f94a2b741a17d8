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

import "laptudirm.com/x/quoridor/pkg/board"

const (
	// MaxWallCandidates is the number of junctions times orientations on
	// the largest board.
	MaxWallCandidates = 2 * (board.MaxGridSize - 1) * (board.MaxGridSize - 1)

	// MaxChildren bounds the number of children of a single node.
	MaxChildren = 5 + MaxBreadth + 1

	DefaultBreadth = 7
	MaxBreadth     = 32
)

// Generator generates the turns explored from a position: every token
// move followed by the best few walls according to a placement heuristic.
type Generator struct {
	Placement Placement

	// Number of wall candidates kept, DefaultBreadth if not positive.
	Breadth int
}

func (g *Generator) breadth() int {
	switch {
	case g.Breadth <= 0:
		return DefaultBreadth
	case g.Breadth > MaxBreadth:
		return MaxBreadth
	default:
		return g.Breadth
	}
}

type candidate struct {
	turn  board.Turn
	score float64
}

// Children appends the turns to explore from b to children[:0] and returns
// it. first, usually the best turn of a shallower search, comes first if
// it is legal. Token moves follow in row-major order and then the wall
// candidates from the highest scoring one down.
func (g *Generator) Children(b *board.Board, first board.Turn, children []board.Turn) []board.Turn {
	children = children[:0]
	if b.Outcome() != board.InProgress {
		return children
	}

	if !first.IsUndefined() && b.Legal(first) {
		children = append(children, first)
	}

	n := b.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if b.CanMoveTo(i, j) {
				if turn := board.Move(board.Cell{Row: i, Col: j}); turn != first {
					children = append(children, turn)
				}
			}
		}
	}

	return g.appendWalls(b, first, children)
}

// Walls returns the best wall candidates for the side to move.
func (g *Generator) Walls(b *board.Board) []board.Turn {
	return g.appendWalls(b, board.Turn{}, make([]board.Turn, 0, g.breadth()))
}

func (g *Generator) appendWalls(b *board.Board, skip board.Turn, dst []board.Turn) []board.Turn {
	mover := b.SideToMove()
	if b.WallsLeft(mover) <= 0 {
		return dst
	}

	ownPath, _ := board.ShortestPath(b, mover)
	oppPath, _ := board.ShortestPath(b, mover.Other())

	var top [MaxBreadth]candidate
	k, count := g.breadth(), 0

	n := b.Size()
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			for _, o := range [2]board.Orientation{board.Horizontal, board.Vertical} {
				turn := board.Wall(o, i, j)
				if turn == skip || !b.CanPlaceWall(o, i, j) {
					continue
				}

				c := candidate{turn, g.score(b, turn, ownPath, oppPath)}
				if count == k && c.score <= top[k-1].score {
					continue
				}

				// insertion sort, ties keep generation order
				pos := count
				if count < k {
					count++
				} else {
					pos = k - 1
				}

				for pos > 0 && top[pos-1].score < c.score {
					top[pos] = top[pos-1]
					pos--
				}
				top[pos] = c
			}
		}
	}

	for _, c := range top[:count] {
		dst = append(dst, c.turn)
	}

	return dst
}

// score is the placement heuristic of a wall for the side to move.
func (g *Generator) score(b *board.Board, w board.Turn, ownPath, oppPath board.Path) float64 {
	p := &g.Placement
	return p.PathCut*float64(cuts(oppPath, w)) +
		p.PathProximity*float64(touches(oppPath, w)) +
		p.Line*float64(line(b, w)) -
		p.CenterDistance*centerDistance(b.Size(), w) -
		p.SelfBlock*float64(cuts(ownPath, w))
}
