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

// Package qsort provides in-place quicksort variants over generic slices.
//
// Three sorting strategies are exposed:
//   - Sort and friends: classic single-goroutine recursive quicksort
//   - ParallelSort and friends: depth-bounded fork-join quicksort that
//     spawns one goroutine per recursion node near the root of the tree
//   - InsertionSort: stable binary-insertion sort for small ranges
//
// All sorts mutate their argument and return nothing. Elements only move
// within the slice; nothing is allocated per element.
//
// # Comparators and pivot policies
//
// Every sort accepts a LessFunc, a strict weak ordering over the element
// type. For types satisfying cmp.Ordered the default is the natural "<".
// Pivot selection is an injectable PivotFunc; RandomPivot (the default)
// and MiddlePivot are built in, and callers may supply their own.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-quicksort/qsort"
//
//	func ProcessData(data []float64) {
//	    qsort.Sort(data) // in-place ascending sort
//	}
//
//	func SortByLength(words []string) {
//	    qsort.SortFunc(words, func(a, b string) bool {
//	        return len(a) < len(b)
//	    })
//	}
//
// # Concurrency
//
// ParallelSort uses a fork-join pattern: below the depth limit each
// recursion node sorts its left half on a fresh goroutine while the
// caller sorts the right half, then joins. Sibling ranges are disjoint
// subslices, so no synchronization on the data itself is needed. The
// random pivot policy draws from math/rand/v2, which is safe for
// concurrent use.
package qsort
