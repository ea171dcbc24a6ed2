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

// sortPartition Hoare-partitions data around the value at the middle
// position and returns the split point p in [1, len(data)-1]: everything
// in data[:p] orders at or before everything in data[p:]. Requires
// len(data) >= 2. The pivot is read by value, so the scans need no
// separate bounds checks; picking a position before the last element keeps
// both scans anchored.
func sortPartition[T any](data []T, cmp array.Comparator[T]) int {
	n := len(data)
	pivot := data[(n-1)/2]

	i, j := 0, n-1
	for {
		for cmp(data[i], pivot) < 0 {
			i++
		}
		for cmp(pivot, data[j]) < 0 {
			j--
		}
		if i >= j {
			return j + 1
		}
		data[i], data[j] = data[j], data[i]
		i++
		j--
	}
}

// quickSortEarlyStop partitions until every block is at most
// quickSortCutoff long, leaving each block's elements in their final
// blocks but unsorted within them. Recursion takes the smaller side of
// each split and iteration the larger, so the stack stays O(log n) deep
// regardless of pivot quality.
func quickSortEarlyStop[T any](data []T, cmp array.Comparator[T]) {
	for len(data) > quickSortCutoff {
		p := sortPartition(data, cmp)
		if p <= len(data)-p {
			quickSortEarlyStop(data[:p], cmp)
			data = data[p:]
		} else {
			quickSortEarlyStop(data[p:], cmp)
			data = data[:p]
		}
	}
}

// Sort sorts data in ascending comparator order. It is a quicksort hybrid:
// partitioning stops once blocks are short, then a single unguarded
// insertion pass finishes the whole range. Not stable. Average O(n log n)
// time, O(log n) stack, no heap allocation.
func Sort[T any](data []T, cmp array.Comparator[T]) {
	if len(data) < 2 {
		return
	}
	quickSortEarlyStop(data, cmp)

	// The first block's minimum is a global minimum, so after this swap
	// the insertion pass can run unguarded over the entire range.
	head := len(data)
	if head > quickSortCutoff {
		head = quickSortCutoff
	}
	m := array.MinElement(data[:head], cmp)
	data[0], data[m] = data[m], data[0]
	insertionSortUnguarded(data, cmp)
}
