// Copyright 2025 go-quicksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package qsort

import "math/rand/v2"

// PivotFunc selects the pivot for one partitioning step. Given the length
// n >= 1 of the current subrange it returns an index in [0, n). Returning
// anything outside that interval panics via a bounds check in partition.
type PivotFunc func(n int) int

// RandomPivot returns a uniformly distributed index in [0, n). It draws
// from math/rand/v2's process-wide generator, which is seeded once at
// startup from a non-deterministic source and is safe for concurrent use,
// so the parallel sort may call it from many goroutines at once.
//
// Panics if n <= 0.
func RandomPivot(n int) int {
	return rand.IntN(n)
}

// MiddlePivot deterministically returns n / 2, the structural middle of
// the subrange. It offers no protection against O(n²) behavior on
// adversarial input; prefer RandomPivot unless reproducible pivot choices
// are needed.
func MiddlePivot(n int) int {
	return n / 2
}
