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

package search

import "github.com/clibraries/array-algorithms/array"

// LowerBound returns the index of the first element that does not order
// before value, or len(data) if every element does. This is the leftmost
// position where value could be inserted without breaking the order.
func LowerBound[T any](data []T, value T, cmp array.Comparator[T]) int {
	return array.PartitionPoint(data, func(x T) bool {
		return cmp(x, value) < 0
	})
}

// UpperBound returns the index of the first element that orders strictly
// after value, or len(data) if none does. This is the rightmost position
// where value could be inserted without breaking the order.
func UpperBound[T any](data []T, value T, cmp array.Comparator[T]) int {
	return array.PartitionPoint(data, func(x T) bool {
		return cmp(value, x) >= 0
	})
}

// EqualRange returns the half-open index range [lo, hi) of elements
// equivalent to value, computed with the upper search restarted from the
// lower result. lo == hi means value does not occur; the empty range still
// marks the insertion position.
func EqualRange[T any](data []T, value T, cmp array.Comparator[T]) (lo, hi int) {
	lo = LowerBound(data, value, cmp)
	return lo, lo + UpperBound(data[lo:], value, cmp)
}

// Contains reports whether an element equivalent to value occurs in data.
func Contains[T any](data []T, value T, cmp array.Comparator[T]) bool {
	i := LowerBound(data, value, cmp)
	return i < len(data) && cmp(data[i], value) == 0
}
