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

package array

// IsPartitioned reports whether data is partitioned on pred: every element
// satisfying pred comes before every element that does not. A range where
// pred holds everywhere, nowhere, or that is empty counts as partitioned.
func IsPartitioned[T any](data []T, pred Predicate[T]) bool {
	i := FindIfNot(data, pred)
	if i < 0 {
		return true
	}
	return FindIf(data[i:], pred) < 0
}

// Partition reorders data so every element satisfying pred comes first and
// returns the partition point: the number of satisfying elements. Relative
// order within the two groups is not preserved.
func Partition[T any](data []T, pred Predicate[T]) int {
	out := 0
	for i := range data {
		if pred(data[i]) {
			data[out], data[i] = data[i], data[out]
			out++
		}
	}
	return out
}

// PartitionCopy distributes data across two outputs, appending elements
// satisfying pred to outTrue and the rest to outFalse, preserving order
// within each. It returns the counts written to each output. The outputs
// must each have room for len(data) elements in the worst case and must not
// overlap data or each other.
func PartitionCopy[T any](data, outTrue, outFalse []T, pred Predicate[T]) (nTrue, nFalse int) {
	for i := range data {
		if pred(data[i]) {
			outTrue[nTrue] = data[i]
			nTrue++
		} else {
			outFalse[nFalse] = data[i]
			nFalse++
		}
	}
	return nTrue, nFalse
}

// PartitionPoint returns the partition point of a range already partitioned
// on pred: the index of the first element not satisfying pred, found by
// binary probing in O(log n) predicate calls. The result is len(data) when
// pred holds everywhere. Behavior on an unpartitioned range is unspecified.
func PartitionPoint[T any](data []T, pred Predicate[T]) int {
	first, n := 0, len(data)
	for n > 0 {
		half := n >> 1
		if pred(data[first+half]) {
			first += half + 1
			n -= half + 1
		} else {
			n = half
		}
	}
	return first
}
