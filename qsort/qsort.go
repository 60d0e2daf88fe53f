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

// LessFunc reports whether a orders before b. It must be a strict weak
// ordering: irreflexive, asymmetric, and transitive. Violating that is a
// documented precondition failure and the result of sorting is undefined.
type LessFunc[T any] func(a, b T) bool

// Less is the natural "<" comparator for ordered types, the default for
// Sort, ParallelSort, InsertionSort, and Select.
func Less[T cmp.Ordered](a, b T) bool {
	return a < b
}

// Sort sorts data in-place in ascending order using recursive quicksort
// with the random pivot policy.
//
// Expected O(n log n) comparisons; O(n²) worst case if the pivot policy
// repeatedly picks an extremal element. Not stable.
func Sort[T cmp.Ordered](data []T) {
	SortPivot(data, RandomPivot, Less[T])
}

// SortFunc sorts data in-place under the given comparator, using the
// random pivot policy.
func SortFunc[T any](data []T, less LessFunc[T]) {
	SortPivot(data, RandomPivot, less)
}

// SortPivot sorts data in-place under the given comparator and pivot
// policy.
func SortPivot[T any](data []T, pivot PivotFunc, less LessFunc[T]) {
	sortImpl(data, pivot, less)
}

// sortImpl is the recursive implementation shared by the Sort variants.
// Each recursive call excludes the pivot element from both subranges, so
// every call strictly shrinks its range and recursion terminates.
func sortImpl[T any](data []T, pivot PivotFunc, less LessFunc[T]) {
	if len(data) < 2 {
		return
	}

	b := partition(data, pivot(len(data)), less)

	sortImpl(data[:b-1], pivot, less)
	sortImpl(data[b:], pivot, less)
}

// Select partially reorders data so that data[k] holds the element that
// would be at index k if data were sorted. Elements before k are not
// greater than data[k], elements after are not less. Out-of-range k is a
// no-op.
func Select[T cmp.Ordered](data []T, k int) {
	SelectFunc(data, k, Less[T])
}

// SelectFunc is Select under the given comparator.
func SelectFunc[T any](data []T, k int, less LessFunc[T]) {
	if k < 0 || k >= len(data) {
		return
	}

	for len(data) >= 2 {
		b := partition(data, RandomPivot(len(data)), less)
		switch {
		case k == b-1:
			return
		case k < b-1:
			data = data[:b-1]
		default:
			data = data[b:]
			k -= b
		}
	}
}
