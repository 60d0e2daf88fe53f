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
	"math/rand/v2"
	"slices"
	"testing"
)

// Helper to count element multiplicities, for permutation checks.
func countElems[T comparable](data []T) map[T]int {
	counts := make(map[T]int, len(data))
	for _, v := range data {
		counts[v]++
	}
	return counts
}

// checkSortedPermutation verifies that got is sorted and a permutation of
// the original input.
func checkSortedPermutation[T ordered](t *testing.T, name string, original, got []T) {
	t.Helper()
	if !IsSorted(got) {
		t.Errorf("%s produced unsorted result: %v", name, got)
	}
	if len(original) != len(got) {
		t.Errorf("%s changed length: %d -> %d", name, len(original), len(got))
	}
	wantCounts := countElems(original)
	gotCounts := countElems(got)
	for v, n := range wantCounts {
		if gotCounts[v] != n {
			t.Errorf("%s is not a permutation: element %v count %d, want %d", name, v, gotCounts[v], n)
		}
	}
}

// ordered constrains test helpers to types that are both ordered and
// hashable, so permutation checks can count elements in a map.
type ordered interface {
	~int | ~int32 | ~int64 | ~float64 | ~string
}

func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rand.IntN(10000) - 5000
	}
	return data
}

// TestSortEmpty tests sorting an empty slice
func TestSortEmpty(t *testing.T) {
	var empty []int
	Sort(empty)
	if len(empty) != 0 {
		t.Errorf("Sort(empty) should not modify empty slice")
	}
}

// TestSortSingle tests sorting a single element slice
func TestSortSingle(t *testing.T) {
	data := []int{1}
	Sort(data)
	if data[0] != 1 {
		t.Errorf("Sort([1]) = %v, want [1]", data)
	}
}

// TestSortPair tests sorting a two element slice
func TestSortPair(t *testing.T) {
	data := []int{9, 4}
	Sort(data)
	if data[0] != 4 || data[1] != 9 {
		t.Errorf("Sort([9 4]) = %v, want [4 9]", data)
	}
}

// TestSortLiteral tests the fixed ten-element vector
func TestSortLiteral(t *testing.T) {
	data := []int{8, 1, 4, 2, 6, 0, 9, 5, 3, 7}
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	Sort(data)
	if !slices.Equal(data, want) {
		t.Errorf("Sort = %v, want %v", data, want)
	}
}

// TestSortReverse tests sorting reverse sorted data
func TestSortReverse(t *testing.T) {
	data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	Sort(data)
	if !slices.Equal(data, want) {
		t.Errorf("Sort(reverse) = %v, want %v", data, want)
	}
}

// TestSortDuplicates tests sorting with duplicate elements
func TestSortDuplicates(t *testing.T) {
	data := []int{1, 2, 0, 1, 0, 0, 2, 2, 1}
	want := []int{0, 0, 0, 1, 1, 1, 2, 2, 2}
	Sort(data)
	if !slices.Equal(data, want) {
		t.Errorf("Sort(duplicates) = %v, want %v", data, want)
	}
}

// TestSortAllSame tests sorting with all identical elements
func TestSortAllSame(t *testing.T) {
	data := []int{5, 5, 5, 5, 5, 5, 5, 5}
	original := slices.Clone(data)
	Sort(data)
	checkSortedPermutation(t, "Sort(allSame)", original, data)
}

// TestSortRandom tests sorting random data across a size grid
func TestSortRandom(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000}
	for _, n := range sizes {
		data := generateInts(n)
		original := slices.Clone(data)
		Sort(data)
		checkSortedPermutation(t, "Sort(random)", original, data)
	}
}

// TestSortIdempotent tests that sorting twice gives the same result
func TestSortIdempotent(t *testing.T) {
	data := generateInts(500)
	Sort(data)
	once := slices.Clone(data)
	Sort(data)
	if !slices.Equal(data, once) {
		t.Errorf("Sort(Sort(S)) != Sort(S)")
	}
}

// TestSortStrings tests sorting a non-numeric element type
func TestSortStrings(t *testing.T) {
	data := []string{"pear", "apple", "fig", "banana", "apple", "cherry"}
	original := slices.Clone(data)
	Sort(data)
	checkSortedPermutation(t, "Sort(strings)", original, data)
}

// TestSortFuncDescending tests a caller-supplied comparator
func TestSortFuncDescending(t *testing.T) {
	data := generateInts(200)
	SortFunc(data, func(a, b int) bool { return a > b })
	for i := 1; i < len(data); i++ {
		if data[i] > data[i-1] {
			t.Fatalf("SortFunc(descending) produced ascending pair at %d: %v > %v", i, data[i], data[i-1])
		}
	}
}

// TestSortPivotMiddle tests the deterministic middle-position pivot policy
func TestSortPivotMiddle(t *testing.T) {
	inputs := [][]int{
		{},
		{1},
		{9, 4},
		{8, 1, 4, 2, 6, 0, 9, 5, 3, 7},
		{9, 8, 7, 6, 5, 4, 3, 2, 1},
		{1, 2, 0, 1, 0, 0, 2, 2, 1},
		generateInts(300),
	}
	for _, input := range inputs {
		original := slices.Clone(input)
		SortPivot(input, MiddlePivot, Less[int])
		checkSortedPermutation(t, "SortPivot(middle)", original, input)
	}
}

// TestSortPivotCustom tests an entirely caller-supplied pivot policy
func TestSortPivotCustom(t *testing.T) {
	// Worst-case policy: always pick the first element. Still correct,
	// just O(n²) on sorted input.
	first := func(n int) int { return 0 }
	data := generateInts(400)
	original := slices.Clone(data)
	SortPivot(data, first, Less[int])
	checkSortedPermutation(t, "SortPivot(first)", original, data)
}

// TestSelect tests that Select places the k-th order statistic at index k
func TestSelect(t *testing.T) {
	ref := generateInts(101)
	sorted := slices.Clone(ref)
	slices.Sort(sorted)

	for k := 0; k < len(ref); k++ {
		data := slices.Clone(ref)
		Select(data, k)
		if data[k] != sorted[k] {
			t.Errorf("Select(data, %d): data[k] = %v, want %v", k, data[k], sorted[k])
		}
		for i := 0; i < k; i++ {
			if data[i] > data[k] {
				t.Errorf("Select(data, %d): data[%d] = %v > data[k] = %v", k, i, data[i], data[k])
			}
		}
		for i := k + 1; i < len(data); i++ {
			if data[i] < data[k] {
				t.Errorf("Select(data, %d): data[%d] = %v < data[k] = %v", k, i, data[i], data[k])
			}
		}
	}
}

// TestSelectOutOfRange tests that out-of-range k leaves data untouched
func TestSelectOutOfRange(t *testing.T) {
	data := []int{3, 1, 2}
	original := slices.Clone(data)
	Select(data, -1)
	Select(data, 3)
	if !slices.Equal(data, original) {
		t.Errorf("Select with out-of-range k modified data: %v", data)
	}
}

// TestIsSorted tests the sortedness predicate
func TestIsSorted(t *testing.T) {
	cases := []struct {
		data []int
		want bool
	}{
		{nil, true},
		{[]int{1}, true},
		{[]int{1, 1, 2}, true},
		{[]int{2, 1}, false},
		{[]int{1, 3, 2}, false},
	}
	for _, tc := range cases {
		if got := IsSorted(tc.data); got != tc.want {
			t.Errorf("IsSorted(%v) = %v, want %v", tc.data, got, tc.want)
		}
	}
}
