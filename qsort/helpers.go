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

// IsSorted reports whether data is in ascending order.
func IsSorted[T cmp.Ordered](data []T) bool {
	return IsSortedFunc(data, Less[T])
}

// IsSortedFunc reports whether data is non-decreasing under less.
func IsSortedFunc[T any](data []T, less LessFunc[T]) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}
