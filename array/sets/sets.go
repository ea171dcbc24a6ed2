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

package sets

import "github.com/clibraries/array-algorithms/array"

// Union writes the sorted union of a and b into out and returns the count
// written. Elements present in both appear once per matched pair, drawn
// from a, so the union of multisets keeps max(countA, countB) copies. out
// needs room for len(a)+len(b) in the worst case and must not overlap the
// inputs.
func Union[T any](a, b, out []T, cmp array.Comparator[T]) int {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		c := cmp(a[i], b[j])
		switch {
		case c == 0:
			out[k] = a[i]
			i++
			j++
		case c > 0:
			out[k] = b[j]
			j++
		default:
			out[k] = a[i]
			i++
		}
		k++
	}
	k += copy(out[k:], a[i:])
	k += copy(out[k:], b[j:])
	return k
}

// Intersection writes the sorted intersection of a and b into out and
// returns the count written. Matched pairs are drawn from a. out needs
// room for min(len(a), len(b)) in the worst case; it may be a itself.
func Intersection[T any](a, b, out []T, cmp array.Comparator[T]) int {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		c := cmp(a[i], b[j])
		switch {
		case c == 0:
			out[k] = a[i]
			k++
			i++
			j++
		case c < 0:
			i++
		default:
			j++
		}
	}
	return k
}

// Difference writes the sorted difference a minus b into out and returns
// the count written. Each element of b cancels at most one equivalent
// element of a. out needs room for len(a) in the worst case; it may be a
// itself.
func Difference[T any](a, b, out []T, cmp array.Comparator[T]) int {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		c := cmp(a[i], b[j])
		switch {
		case c == 0:
			i++
			j++
		case c < 0:
			out[k] = a[i]
			k++
			i++
		default:
			j++
		}
	}
	k += copy(out[k:], a[i:])
	return k
}

// Includes reports whether every element of sub occurs in super, with
// multiplicity: sub's duplicates each need their own match. Both slices
// must be sorted. The empty set is a subset of anything.
func Includes[T any](sub, super []T, cmp array.Comparator[T]) bool {
	if len(sub) == 0 {
		return true
	}
	i := 0
	for j := 0; j < len(super); j++ {
		c := cmp(sub[i], super[j])
		if c < 0 {
			return false
		}
		if c == 0 {
			i++
			if i == len(sub) {
				return true
			}
		}
	}
	return false
}
