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

// partition reorders data around the element at index p and returns the
// boundary: the index of the first element not less than the pivot value.
// On return the layout is
//
//	data[:boundary-1]  less than the pivot value
//	data[boundary-1]   the pivot value itself
//	data[boundary:]    not less than the pivot value
//
// so boundary is always >= 1 and both data[:boundary-1] and data[boundary:]
// exclude the pivot element. The partition is not stable.
//
// Preconditions: len(data) >= 2 and 0 <= p < len(data).
func partition[T any](data []T, p int, less LessFunc[T]) int {
	// The pivot value is copied out before any swap; the element at p
	// moves during partitioning.
	pivot := data[p]
	data[0], data[p] = data[p], data[0]

	// Single unstable scan over data[1:]: b is the insertion point for
	// the next element that compares less than the pivot value.
	b := 1
	for i := 1; i < len(data); i++ {
		if less(data[i], pivot) {
			data[i], data[b] = data[b], data[i]
			b++
		}
	}

	// Move the pivot value from the front to just below the boundary.
	data[0], data[b-1] = data[b-1], data[0]
	return b
}
