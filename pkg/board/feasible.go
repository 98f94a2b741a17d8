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

// explorationOrder is the order in which the feasibility search tries
// neighbours for each player, towards the goal first.
var explorationOrder = [2][4]Direction{
	Player0: {Right, Up, Down, Left},
	Player1: {Left, Up, Down, Right},
}

// IsFeasible reports whether both players can still reach their goals.
func IsFeasible(b *Board) bool {
	return canReach(b, Player0) && canReach(b, Player1)
}

func canReach(b *Board, p Player) bool {
	var explored [MaxGridSize][MaxGridSize]bool
	return reach(b, &explored, p, b.GoalColumn(p), b.positions[p])
}

// reach is a depth first search from cell which stops as soon as a cell
// on the goal column is found.
func reach(b *Board, explored *[MaxGridSize][MaxGridSize]bool, p Player, goal int, cell Cell) bool {
	if cell.Col == goal {
		return true
	}

	explored[cell.Row][cell.Col] = true
	for _, d := range explorationOrder[p] {
		if b.Blocked(cell, d) {
			continue
		}

		next := d.Step(cell)
		if !explored[next.Row][next.Col] && reach(b, explored, p, goal, next) {
			return true
		}
	}

	return false
}
