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

// IsSortedUntil returns the length of the longest sorted prefix of data:
// the index of the first element that orders before its predecessor, or
// len(data) when the whole range is sorted. Equivalent neighbors count as
// sorted.
func IsSortedUntil[T any](data []T, cmp Comparator[T]) int {
	for i := 1; i < len(data); i++ {
		if cmp(data[i-1], data[i]) > 0 {
			return i
		}
	}
	return len(data)
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T any](data []T, cmp Comparator[T]) bool {
	return IsSortedUntil(data, cmp) == len(data)
}

// IsStrictlyIncreasingUntil returns the length of the longest strictly
// increasing prefix of data: the index of the first element that does not
// order strictly after its predecessor, or len(data) when the whole range
// is strictly increasing.
func IsStrictlyIncreasingUntil[T any](data []T, cmp Comparator[T]) int {
	for i := 1; i < len(data); i++ {
		if cmp(data[i-1], data[i]) >= 0 {
			return i
		}
	}
	return len(data)
}

// IsStrictlyIncreasing reports whether data is in strictly increasing
// order, i.e. sorted and free of equivalent neighbors.
func IsStrictlyIncreasing[T any](data []T, cmp Comparator[T]) bool {
	return IsStrictlyIncreasingUntil(data, cmp) == len(data)
}

// LexCompare orders two ranges lexicographically: the first non-equivalent
// element pair decides, and when one range is a prefix of the other the
// shorter orders first. The result is three-way, like the comparator's.
func LexCompare[T any](a, b []T, cmp Comparator[T]) int {
	for i := range a {
		if i == len(b) {
			return 1
		}
		if c := cmp(a[i], b[i]); c != 0 {
			return c
		}
	}
	if len(a) < len(b) {
		return -1
	}
	return 0
}

// Equal reports whether b begins with a: the first len(a) elements of the
// two ranges are pairwise equivalent. b must be at least as long as a. Pass
// equal-length slices for whole-range equality.
func Equal[T any](a, b []T, cmp Comparator[T]) bool {
	return Mismatch(a, b, cmp) == len(a)
}
