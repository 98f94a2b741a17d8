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

import "math/rand"

// Jitter is a source of small random offsets added to evaluations so that
// an engine doesn't always pick the same move among equal ones.
type Jitter interface {
	Next() float64
}

// NoJitter is a Jitter which always returns zero.
type NoJitter struct{}

func (NoJitter) Next() float64 { return 0 }

// NewJitter returns a Jitter returning values in [0, amplitude) from a
// generator seeded with seed. It must not be shared between goroutines.
func NewJitter(seed int64, amplitude float64) Jitter {
	if amplitude <= 0 {
		return NoJitter{}
	}

	return &randomJitter{
		rng:       rand.New(rand.NewSource(seed)),
		amplitude: amplitude,
	}
}

type randomJitter struct {
	rng       *rand.Rand
	amplitude float64
}

func (jitter *randomJitter) Next() float64 {
	return jitter.rng.Float64() * jitter.amplitude
}
