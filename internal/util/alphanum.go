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

package util

import (
	"regexp"
	"sort"
	"strconv"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

func chunkify(s string) []string {
	return chunkifyRegexp.FindAllString(s, -1)
}

// AlphanumCompare reports whether a precedes b in natural order, where
// runs of digits compare as numbers: "sprt2" precedes "sprt10".
func AlphanumCompare(a, b string) bool {
	chunksA, chunksB := chunkify(a), chunkify(b)

	for i := range chunksA {
		if i >= len(chunksB) {
			return false
		}

		aInt, aErr := strconv.Atoi(chunksA[i])
		bInt, bErr := strconv.Atoi(chunksB[i])

		numeric := aErr == nil && bErr == nil
		if (numeric && aInt == bInt) || (!numeric && chunksA[i] == chunksB[i]) {
			continue
		}

		if numeric {
			return aInt < bInt
		}

		return chunksA[i] < chunksB[i]
	}

	// every chunk of a matched, so a precedes b only if it is shorter
	return len(chunksA) < len(chunksB)
}

// SortNatural sorts names in natural order.
func SortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return AlphanumCompare(names[i], names[j])
	})
}
