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

package main

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-quicksort/qsort"
)

// demoVectors are the fixed inputs the driver sorts: edge cases (empty,
// singleton, pair), a ten-element shuffle, a reversed run, a heavily
// duplicated vector, and the original seventeen-element example.
var demoVectors = [][]int{
	{},
	{1},
	{9, 4},
	{8, 1, 4, 2, 6, 0, 9, 5, 3, 7},
	{9, 8, 7, 6, 5, 4, 3, 2, 1},
	{1, 2, 0, 1, 0, 0, 2, 2, 1},
	{5, 3, 1, 2, 5, 6, 7, 8, 12, 4, 2, 3, 5, 1, 3, 5, 0},
}

type demoVariant struct {
	name string
	sort func([]int)
}

var demoVariants = []demoVariant{
	{"quicksort/random-pivot", func(d []int) { qsort.Sort(d) }},
	{"quicksort/middle-pivot", func(d []int) { qsort.SortPivot(d, qsort.MiddlePivot, qsort.Less[int]) }},
	{"parallel/random-pivot", func(d []int) { qsort.ParallelSort(d) }},
	{"parallel/middle-pivot", func(d []int) { qsort.ParallelSortPivot(d, qsort.MiddlePivot, qsort.Less[int]) }},
	{"insertion", func(d []int) { qsort.InsertionSort(d) }},
}

func demoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Sort the built-in test vectors and print sorted? verdicts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}

	return cmd
}

func runDemo() error {
	failures := 0

	for _, variant := range demoVariants {
		fmt.Printf("%s\n", variant.name)
		for _, input := range demoVectors {
			data := slices.Clone(input)
			variant.sort(data)

			verdict := color.GreenString("sorted")
			if !qsort.IsSorted(data) {
				verdict = color.RedString("NOT sorted")
				failures++
			}
			fmt.Printf("  %v -> %v  %s\n", input, data, verdict)
		}
		fmt.Println()
	}

	if failures > 0 {
		return errors.Errorf("%d result(s) were not sorted", failures)
	}
	return nil
}
