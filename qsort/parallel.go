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

import (
	"cmp"

	"golang.org/x/sync/errgroup"
)

// DefaultDepthLimit is the recursion depth below which ParallelSort forks
// a goroutine per partitioning step. One top-level call spawns at most
// 2^DefaultDepthLimit concurrent goroutines; past the limit recursion
// continues sequentially on the current goroutine.
const DefaultDepthLimit = 5

// ParallelSort sorts data in-place in ascending order using fork-join
// quicksort with the random pivot policy and DefaultDepthLimit.
//
// The result is a valid sorted permutation, equal to what Sort produces
// when all elements are distinct; with duplicates the two may place equal
// elements differently, as neither sort is stable.
func ParallelSort[T cmp.Ordered](data []T) {
	ParallelSortDepth(data, DefaultDepthLimit, RandomPivot, Less[T])
}

// ParallelSortFunc sorts data in-place under the given comparator, using
// the random pivot policy and DefaultDepthLimit.
func ParallelSortFunc[T any](data []T, less LessFunc[T]) {
	ParallelSortDepth(data, DefaultDepthLimit, RandomPivot, less)
}

// ParallelSortPivot sorts data in-place under the given comparator and
// pivot policy, using DefaultDepthLimit.
func ParallelSortPivot[T any](data []T, pivot PivotFunc, less LessFunc[T]) {
	ParallelSortDepth(data, DefaultDepthLimit, pivot, less)
}

// ParallelSortDepth sorts data in-place, forking while the recursion depth
// is below limit. A limit <= 0 makes the sort fully sequential. The number
// of goroutines live at once is bounded by 2^limit.
func ParallelSortDepth[T any](data []T, limit int, pivot PivotFunc, less LessFunc[T]) {
	parallelImpl(data, 0, limit, pivot, less)
}

// parallelImpl mirrors sortImpl, but below the depth limit the left half
// is sorted on a spawned goroutine while the current goroutine sorts the
// right half. The two halves are disjoint subslices separated by the
// pivot element, so they share no elements.
func parallelImpl[T any](data []T, depth, limit int, pivot PivotFunc, less LessFunc[T]) {
	if len(data) < 2 {
		return
	}

	b := partition(data, pivot(len(data)), less)
	left, right := data[:b-1], data[b:]

	if depth >= limit {
		parallelImpl(left, depth+1, limit, pivot, less)
		parallelImpl(right, depth+1, limit, pivot, less)
		return
	}

	var g errgroup.Group
	g.Go(func() error {
		parallelImpl(left, depth+1, limit, pivot, less)
		return nil
	})

	// Join on every exit path. If the spawned half panicked (a comparator
	// or pivot policy failure), Wait re-raises that panic at the join
	// rather than dropping it.
	defer func() { _ = g.Wait() }()

	parallelImpl(right, depth+1, limit, pivot, less)
}
