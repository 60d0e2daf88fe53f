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

import "cmp"

// InsertionSort sorts data in-place in ascending order using binary
// insertion sort. Stable. Intended for small ranges; O(n²) moves.
func InsertionSort[T cmp.Ordered](data []T) {
	InsertionSortFunc(data, Less[T])
}

// InsertionSortFunc is InsertionSort under the given comparator. Each
// element is inserted at the upper bound of the already-sorted prefix,
// which keeps equal elements in their original order.
func InsertionSortFunc[T any](data []T, less LessFunc[T]) {
	for i := 1; i < len(data); i++ {
		v := data[i]

		// Upper bound: first position in data[:i] whose element
		// orders strictly after v.
		lo, hi := 0, i
		for lo < hi {
			mid := int(uint(lo+hi) >> 1)
			if less(v, data[mid]) {
				hi = mid
			} else {
				lo = mid + 1
			}
		}

		if lo < i {
			copy(data[lo+1:i+1], data[lo:i])
			data[lo] = v
		}
	}
}
