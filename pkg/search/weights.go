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

// Weights are the coefficients of the static evaluation.
type Weights struct {
	// Applied to the opponent's path length minus the own path length.
	PathDelta float64 `yaml:"path-delta"`
	// Extra weight of the opponent's path length alone.
	OpponentPath float64 `yaml:"opponent-path"`
	// Applied to the number of walls left in hand.
	WallsLeft float64 `yaml:"walls-left"`
	// Applied to the distance between the opponent's row and the middle row.
	Centrality float64 `yaml:"centrality"`

	// Terms for the wall placed on the last turn, if any.
	WallProximity float64 `yaml:"wall-proximity"`
	IdleWall      float64 `yaml:"idle-wall"`
	WallLine      float64 `yaml:"wall-line"`

	NearWin      float64 `yaml:"near-win"`
	Win          float64 `yaml:"win"`
	DepthPenalty float64 `yaml:"depth-penalty"`

	Placement Placement `yaml:"placement"`
}

// Placement are the coefficients of the heuristic used to pick the wall
// candidates worth searching.
type Placement struct {
	PathCut        float64 `yaml:"path-cut"`
	PathProximity  float64 `yaml:"path-proximity"`
	Line           float64 `yaml:"line"`
	CenterDistance float64 `yaml:"center-distance"`
	SelfBlock      float64 `yaml:"self-block"`
}

// DefaultWeights returns the weights used when none are configured.
func DefaultWeights() Weights {
	return Weights{
		PathDelta:    2,
		OpponentPath: 1,
		WallsLeft:    1,
		Centrality:   0.25,

		WallProximity: 0.5,
		IdleWall:      1,
		WallLine:      0.5,

		NearWin:      9000,
		Win:          10000,
		DepthPenalty: 2,

		Placement: Placement{
			PathCut:        8,
			PathProximity:  2,
			Line:           1,
			CenterDistance: 0.5,
			SelfBlock:      4,
		},
	}
}

// Forced returns the score beyond which every score comes from a finished
// game. Heuristic scores must stay below it.
func (w Weights) Forced() float64 {
	return w.Win - float64(MaxPly)*w.DepthPenalty
}
