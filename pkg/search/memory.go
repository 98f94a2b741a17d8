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

// Memory is the scratch space of a player's searches. Each automated
// player owns one, and it must not be shared between concurrent searches.
type Memory struct {
	// Principal variation of the last completed depth, tried first by the
	// next one.
	PV []board.Turn

	// Result of the last decision.
	Last Result
}

func NewMemory() *Memory {
	return &Memory{PV: make([]board.Turn, 0, MaxPly)}
}

// Reset forgets the principal variation before a new decision.
func (mem *Memory) Reset() {
	mem.PV = mem.PV[:0]
}
