// Copyright 2026 array-algorithms Authors
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

package sort

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/clibraries/array-algorithms/array"
)

var intCmp = array.Compare[int]

// checkSorted verifies data against a sorted clone of want
func checkSorted(t *testing.T, label string, data, orig []int) {
	t.Helper()
	want := slices.Clone(orig)
	slices.Sort(want)
	if !slices.Equal(data, want) {
		t.Errorf("%s = %v, want %v", label, data, want)
	}
}

// TestSortEmpty tests sorting the empty slice
func TestSortEmpty(t *testing.T) {
	var empty []int
	Sort(empty, intCmp)
	if len(empty) != 0 {
		t.Errorf("Sort(empty) should not modify empty slice")
	}
}

// TestSortSingle tests sorting a single element
func TestSortSingle(t *testing.T) {
	data := []int{42}
	Sort(data, intCmp)
	if data[0] != 42 {
		t.Errorf("Sort([42]) = %v, want [42]", data)
	}
}

// TestSortSmall tests a handful of concrete small inputs
func TestSortSmall(t *testing.T) {
	cases := [][]int{
		{5, 3, 3, 1},
		{2, 1},
		{1, 2},
		{3, 1, 2},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		{5, 5, 5, 5},
	}
	for _, c := range cases {
		orig := slices.Clone(c)
		Sort(c, intCmp)
		checkSorted(t, "Sort", c, orig)
	}
}

// TestSortAlreadySorted tests sorting already sorted data
func TestSortAlreadySorted(t *testing.T) {
	data := make([]int, 500)
	for i := range data {
		data[i] = i
	}
	orig := slices.Clone(data)
	Sort(data, intCmp)
	checkSorted(t, "Sort(sorted)", data, orig)
}

// TestSortReverse tests sorting fully descending data
func TestSortReverse(t *testing.T) {
	data := make([]int, 500)
	for i := range data {
		data[i] = len(data) - i
	}
	orig := slices.Clone(data)
	Sort(data, intCmp)
	checkSorted(t, "Sort(reverse)", data, orig)
}

// TestSortOrganPipe tests the ascending-then-descending pattern that
// stresses middle-position pivots
func TestSortOrganPipe(t *testing.T) {
	data := make([]int, 401)
	for i := range data {
		if i <= 200 {
			data[i] = i
		} else {
			data[i] = 401 - i
		}
	}
	orig := slices.Clone(data)
	Sort(data, intCmp)
	checkSorted(t, "Sort(organ pipe)", data, orig)
}

// TestSortFewDistinct tests heavy duplication
func TestSortFewDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := make([]int, 1000)
	for i := range data {
		data[i] = rng.Intn(3)
	}
	orig := slices.Clone(data)
	Sort(data, intCmp)
	checkSorted(t, "Sort(few distinct)", data, orig)
}

// TestSortRandom tests random data across the size sweep
func TestSortRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	sizes := []int{0, 1, 7, 8, 15, 16, 31, 32, 33, 63, 64, 100, 256, 1000, 4096}
	for _, n := range sizes {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(10000)
		}
		orig := slices.Clone(data)
		Sort(data, intCmp)
		checkSorted(t, "Sort(random)", data, orig)
	}
}

// TestSortComparatorOrder tests sorting under a reversed comparator
func TestSortComparatorOrder(t *testing.T) {
	desc := func(a, b int) int { return b - a }
	data := []int{3, 1, 4, 1, 5, 9, 2, 6}
	Sort(data, desc)
	if !slices.IsSortedFunc(data, func(a, b int) int { return b - a }) {
		t.Errorf("Sort(desc) = %v, not descending", data)
	}
}

// TestInsertion tests the insertion sorts across the size sweep
func TestInsertion(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 100}
	for _, n := range sizes {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(100)
		}
		orig := slices.Clone(data)

		a := slices.Clone(data)
		Insertion(a, intCmp)
		checkSorted(t, "Insertion", a, orig)

		b := slices.Clone(data)
		InsertionStable(b, intCmp)
		checkSorted(t, "InsertionStable", b, orig)
	}
}

// TestSortSweepRandom tests every length from 0 through 499 to cover both
// sides of the partitioning cutoff
func TestSortSweepRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for n := 0; n < 500; n++ {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(1000)
		}
		orig := slices.Clone(data)
		Sort(data, intCmp)
		if !slices.IsSorted(data) {
			t.Fatalf("Sort(n=%d) produced unsorted result", n)
		}
		checkSorted(t, "Sort(sweep)", data, orig)
	}
}
