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

// Merge merges the sorted ranges a and b into out and returns the number of
// elements written, always len(a)+len(b). The merge is stable: equivalent
// elements keep their relative order, with ties drawn from a first. out
// must have room for both inputs and must not overlap a; it may share a
// backing array with b when out's write position trails b's read position,
// which is how the in-buffer merge of MergeWithBuffer works.
func Merge[T any](a, b, out []T, cmp Comparator[T]) int {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(b[j], a[i]) < 0 {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	k += copy(out[k:], a[i:])
	k += copy(out[k:], b[j:])
	return k
}

// MergeWithBuffer merges the two sorted halves data[:middle] and
// data[middle:] in place, using buf as scratch space for the front half.
// buf must hold at least middle elements; the function panics when it does
// not. Stability matches Merge: on ties the front half wins.
func MergeWithBuffer[T any](data []T, middle int, buf []T, cmp Comparator[T]) {
	tmp := buf[:middle]
	copy(tmp, data[:middle])
	Merge(tmp, data[middle:], data, cmp)
}
