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

// RemoveIf compacts data in place, dropping every element that satisfies
// pred, and returns the retained prefix. Relative order of the retained
// elements is preserved. Elements beyond the returned length are left in an
// unspecified state, matching slices.DeleteFunc.
func RemoveIf[T any](data []T, pred Predicate[T]) []T {
	out := 0
	for i := range data {
		if !pred(data[i]) {
			data[out] = data[i]
			out++
		}
	}
	return data[:out]
}

// RemoveIfNot compacts data in place, keeping only the elements that
// satisfy pred, and returns the retained prefix.
func RemoveIfNot[T any](data []T, pred Predicate[T]) []T {
	out := 0
	for i := range data {
		if pred(data[i]) {
			data[out] = data[i]
			out++
		}
	}
	return data[:out]
}

// Unique compacts runs of equivalent neighbors down to their first element,
// in place, and returns the retained prefix. On sorted input this removes
// all duplicates.
func Unique[T any](data []T, cmp Comparator[T]) []T {
	if len(data) == 0 {
		return data
	}
	out := 0
	for i := 1; i < len(data); i++ {
		if cmp(data[out], data[i]) != 0 {
			out++
			data[out] = data[i]
		}
	}
	return data[:out+1]
}

// UniqueCopy copies data into out, dropping every element equivalent to the
// previously written one, and returns the number of elements written. out
// must have room for the survivors; it may alias data.
func UniqueCopy[T any](data, out []T, cmp Comparator[T]) int {
	if len(data) == 0 {
		return 0
	}
	out[0] = data[0]
	k := 0
	for i := 1; i < len(data); i++ {
		if cmp(out[k], data[i]) != 0 {
			k++
			out[k] = data[i]
		}
	}
	return k + 1
}

// UniqueCount returns the number of elements Unique would retain, without
// modifying data.
func UniqueCount[T any](data []T, cmp Comparator[T]) int {
	if len(data) == 0 {
		return 0
	}
	n := 1
	head := 0
	for i := 1; i < len(data); i++ {
		if cmp(data[head], data[i]) != 0 {
			head = i
			n++
		}
	}
	return n
}
