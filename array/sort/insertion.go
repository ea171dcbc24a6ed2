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

import "github.com/clibraries/array-algorithms/array"

// insertionSortUnguarded inserts each element into the sorted prefix with
// no bounds check on the inner walk. data[0] must already hold an element
// ordering at or before everything after it; that sentinel stops the walk.
func insertionSortUnguarded[T any](data []T, cmp array.Comparator[T]) {
	for i := 1; i < len(data); i++ {
		x := data[i]
		j := i - 1
		for cmp(x, data[j]) < 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = x
	}
}

// rotateRightByOne moves the final element of data to the front, shifting
// everything else one position toward the back.
func rotateRightByOne[T any](data []T) {
	if len(data) == 0 {
		return
	}
	last := len(data) - 1
	tmp := data[last]
	copy(data[1:], data[:last])
	data[0] = tmp
}

// Insertion sorts data with a sentinel-planted insertion sort: the minimum
// is swapped to the front first so the inner loop runs unguarded. Quadratic
// in general, fast for short or nearly sorted input. Not stable, because of
// the initial swap; use InsertionStable when order among equivalent
// elements matters.
func Insertion[T any](data []T, cmp array.Comparator[T]) {
	if len(data) < 2 {
		return
	}
	m := array.MinElement(data, cmp)
	data[0], data[m] = data[m], data[0]
	insertionSortUnguarded(data, cmp)
}

// InsertionStable is Insertion with the sentinel rotated to the front
// instead of swapped, preserving the relative order of equivalent
// elements.
func InsertionStable[T any](data []T, cmp array.Comparator[T]) {
	if len(data) < 2 {
		return
	}
	m := array.MinElement(data, cmp)
	rotateRightByOne(data[:m+1])
	insertionSortUnguarded(data, cmp)
}
