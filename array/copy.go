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

// CopyIf copies every element of data satisfying pred into out, preserving
// order, and returns the number of elements written. out must have room for
// every match; data and out must not overlap.
func CopyIf[T any](data, out []T, pred Predicate[T]) int {
	n := 0
	for i := range data {
		if pred(data[i]) {
			out[n] = data[i]
			n++
		}
	}
	return n
}

// ReverseCopy writes the elements of data into out in reverse order and
// returns len(data). out must have room for len(data) elements; data and
// out must not overlap.
func ReverseCopy[T any](data, out []T) int {
	n := len(data)
	for i := range data {
		out[n-1-i] = data[i]
	}
	return n
}

// Reverse reverses data in place.
func Reverse[T any](data []T) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}

// SwapRanges exchanges the first len(a) elements of a and b pairwise.
// b must be at least as long as a, and the ranges must not overlap.
func SwapRanges[T any](a, b []T) {
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}

// Fill assigns v to every element of data. Counted fills are spelled
// Fill(data[:n], v).
func Fill[T any](data []T, v T) {
	for i := range data {
		data[i] = v
	}
}

// ReplaceIf assigns replacement to every element satisfying pred.
func ReplaceIf[T any](data []T, replacement T, pred Predicate[T]) {
	for i := range data {
		if pred(data[i]) {
			data[i] = replacement
		}
	}
}

// InsertN inserts vals at the front of data, shifting the existing elements
// toward the back, and returns the grown slice. data must have capacity for
// len(data)+len(vals) elements; the function panics when it does not.
//
// Inserting at an interior position i is spelled InsertN(data[i:], vals),
// since the subslice shares the spare capacity of its parent.
func InsertN[T any](data []T, vals []T) []T {
	grown := data[:len(data)+len(vals)]
	copy(grown[len(vals):], data)
	copy(grown, vals)
	return grown
}
