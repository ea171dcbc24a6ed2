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

package heap

import "github.com/clibraries/array-algorithms/array"

// IsHeapUntil returns the length of the longest prefix of data that forms
// a max-heap: the index of the first element that orders after its parent,
// or len(data) when the whole range is a heap.
func IsHeapUntil[T any](data []T, cmp array.Comparator[T]) int {
	n := len(data)
	if n < 2 {
		return n
	}
	parent := 0
	child := 1
	for {
		if child == n || cmp(data[parent], data[child]) < 0 {
			return child
		}
		child++
		if child == n || cmp(data[parent], data[child]) < 0 {
			return child
		}
		child++
		parent++
	}
}

// IsHeap reports whether data forms a max-heap.
func IsHeap[T any](data []T, cmp array.Comparator[T]) bool {
	return IsHeapUntil(data, cmp) == len(data)
}

// Push restores the heap property after appending an element: it assumes
// data[:len(data)-1] is a heap and sifts data[len(data)-1] up to its
// position.
func Push[T any](data []T, cmp array.Comparator[T]) {
	idx := len(data) - 1
	for idx > 0 {
		parent := (idx - 1) / 2
		if cmp(data[idx], data[parent]) <= 0 {
			break
		}
		data[idx], data[parent] = data[parent], data[idx]
		idx = parent
	}
}

// Pop moves the largest element to data[len(data)-1] and re-establishes
// the heap property on data[:len(data)-1]. The heap shrinks by one; the
// popped element stays in the slice, which is what makes Sort work.
func Pop[T any](data []T, cmp array.Comparator[T]) {
	count := len(data)
	if count < 2 {
		return
	}
	count--
	data[0], data[count] = data[count], data[0]

	elem := 0
	for {
		child := 2*elem + 1
		if child >= count {
			break
		}
		if cmp(data[child], data[elem]) > 0 {
			// Left child wins unless the right child beats it.
			if child+1 < count && cmp(data[child+1], data[child]) > 0 {
				child++
			}
		} else {
			child++
			if child >= count || cmp(data[child], data[elem]) <= 0 {
				break
			}
		}
		data[elem], data[child] = data[child], data[elem]
		elem = child
	}
}

// Make reorders data into a max-heap by growing the heap one element at a
// time.
func Make[T any](data []T, cmp array.Comparator[T]) {
	for n := 2; n <= len(data); n++ {
		Push(data[:n], cmp)
	}
}

// Sort sorts a heap into ascending order by popping the top into the
// shrinking tail. data must already satisfy IsHeap.
func Sort[T any](data []T, cmp array.Comparator[T]) {
	for n := len(data); n > 1; n-- {
		Pop(data[:n], cmp)
	}
}
