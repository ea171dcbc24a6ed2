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

// FindIf returns the index of the first element satisfying pred, or -1 if
// no element does.
func FindIf[T any](data []T, pred Predicate[T]) int {
	for i := range data {
		if pred(data[i]) {
			return i
		}
	}
	return -1
}

// FindIfNot returns the index of the first element NOT satisfying pred, or
// -1 if every element does.
func FindIfNot[T any](data []T, pred Predicate[T]) int {
	for i := range data {
		if !pred(data[i]) {
			return i
		}
	}
	return -1
}

// FindIfUnguarded returns the index of the first element satisfying pred,
// skipping the bounds check per element. The caller must guarantee a match
// exists, typically because a sentinel was planted at the end of the range.
func FindIfUnguarded[T any](data []T, pred Predicate[T]) int {
	i := 0
	for !pred(data[i]) {
		i++
	}
	return i
}

// FindIfNotUnguarded is FindIfUnguarded with the predicate inverted: it
// returns the index of the first element failing pred. The caller must
// guarantee such an element exists.
func FindIfNotUnguarded[T any](data []T, pred Predicate[T]) int {
	i := 0
	for pred(data[i]) {
		i++
	}
	return i
}

// FindLastIf returns the index of the last element satisfying pred, or -1
// if no element does.
func FindLastIf[T any](data []T, pred Predicate[T]) int {
	for i := len(data) - 1; i >= 0; i-- {
		if pred(data[i]) {
			return i
		}
	}
	return -1
}

// AllOf reports whether every element satisfies pred. Vacuously true for an
// empty range.
func AllOf[T any](data []T, pred Predicate[T]) bool {
	return FindIfNot(data, pred) < 0
}

// AnyOf reports whether at least one element satisfies pred.
func AnyOf[T any](data []T, pred Predicate[T]) bool {
	return FindIf(data, pred) >= 0
}

// NoneOf reports whether no element satisfies pred. Vacuously true for an
// empty range.
func NoneOf[T any](data []T, pred Predicate[T]) bool {
	return FindIf(data, pred) < 0
}

// CountIf returns the number of elements satisfying pred.
func CountIf[T any](data []T, pred Predicate[T]) int {
	n := 0
	for i := range data {
		if pred(data[i]) {
			n++
		}
	}
	return n
}

// Mismatch walks a and b in lockstep and returns the first index at which
// they hold non-equivalent elements. If a is a prefix of b (including when
// len(a) == len(b) and the ranges are equivalent throughout), it returns
// len(a). b must be at least as long as a.
func Mismatch[T any](a, b []T, cmp Comparator[T]) int {
	for i := range a {
		if cmp(a[i], b[i]) != 0 {
			return i
		}
	}
	return len(a)
}

// AdjacentFind returns the index of the first element that is equivalent to
// its successor, or -1 if no two neighbors are equivalent.
func AdjacentFind[T any](data []T, cmp Comparator[T]) int {
	for i := 1; i < len(data); i++ {
		if cmp(data[i-1], data[i]) == 0 {
			return i - 1
		}
	}
	return -1
}
