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

// mergeSortAdaptive is a top-down merge sort that finishes short runs with
// the stable insertion sort. buf provides the scratch space for merging
// and must hold at least len(data)/2 elements.
func mergeSortAdaptive[T any](data, buf []T, cmp array.Comparator[T]) {
	n := len(data)
	if n <= stableSortCutoff {
		InsertionStable(data, cmp)
		return
	}
	half := n / 2
	mergeSortAdaptive(data[:half], buf, cmp)
	mergeSortAdaptive(data[half:], buf, cmp)
	array.MergeWithBuffer(data, half, buf, cmp)
}

// Stable sorts data in ascending comparator order, preserving the relative
// order of equivalent elements. It allocates a scratch buffer of
// len(data)/2 elements; use StableWithBuffer to supply one instead.
func Stable[T any](data []T, cmp array.Comparator[T]) {
	buf := make([]T, len(data)/2)
	mergeSortAdaptive(data, buf, cmp)
}

// StableWithBuffer is Stable with caller-provided scratch space, for reuse
// across repeated sorts. buf must hold at least len(data)/2 elements; the
// function panics when it does not. Buffer contents on return are
// unspecified.
func StableWithBuffer[T any](data, buf []T, cmp array.Comparator[T]) {
	mergeSortAdaptive(data, buf, cmp)
}
