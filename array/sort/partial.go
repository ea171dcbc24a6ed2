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
	"github.com/clibraries/array-algorithms/array"
	"github.com/clibraries/array-algorithms/array/heap"
)

// Partial sorts the k smallest elements of data into data[:k] in ascending
// order; data[k:] holds the rest in unspecified order. data[:k] is run as
// a max-heap whose top bounds the current k smallest, so the cost is
// O(n log k). Requires 0 <= k <= len(data).
func Partial[T any](data []T, k int, cmp array.Comparator[T]) {
	if k == 0 {
		return
	}
	heap.Make(data[:k], cmp)

	for i := k; i < len(data); i++ {
		if cmp(data[i], data[0]) < 0 {
			heap.Pop(data[:k], cmp)
			data[k-1], data[i] = data[i], data[k-1]
			heap.Push(data[:k], cmp)
		}
	}
	heap.Sort(data[:k], cmp)
}

// PartialCopy writes the min(len(src), len(dst)) smallest elements of src
// into dst in ascending order, without modifying src, and returns the
// count written. dst must not overlap src.
func PartialCopy[T any](src, dst []T, cmp array.Comparator[T]) int {
	if len(src) == 0 || len(dst) == 0 {
		return 0
	}
	dst[0] = src[0]
	out := 1
	i := 1

	for out < len(dst) {
		if i == len(src) {
			heap.Sort(dst[:out], cmp)
			return out
		}
		dst[out] = src[i]
		i++
		out++
		heap.Push(dst[:out], cmp)
	}

	for ; i < len(src); i++ {
		if cmp(src[i], dst[0]) < 0 {
			heap.Pop(dst[:out], cmp)
			dst[out-1] = src[i]
			heap.Push(dst[:out], cmp)
		}
	}
	heap.Sort(dst[:out], cmp)
	return out
}

// NthElement reorders data so data[nth] holds the element that would land
// there after a full sort, with everything before it ordering at or before
// it and everything after ordering at or after it. Quickselect over Hoare
// partitions: O(n) average time, no allocation. Requires
// 0 <= nth < len(data).
func NthElement[T any](data []T, nth int, cmp array.Comparator[T]) {
	lo, hi := 0, len(data)
	for hi-lo > 1 {
		m := lo + sortPartition(data[lo:hi], cmp)
		if m <= nth {
			lo = m
		} else {
			hi = m
		}
	}
}
