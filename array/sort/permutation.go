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

// NextPermutation advances data to the next permutation in lexicographic
// comparator order and returns true. From the final permutation (fully
// descending) it wraps around to the first (fully ascending) and returns
// false, so driving it in a loop from sorted input visits every
// permutation exactly once:
//
//	sort.Sort(data, cmp)
//	for {
//		visit(data)
//		if !sort.NextPermutation(data, cmp) {
//			break
//		}
//	}
func NextPermutation[T any](data []T, cmp array.Comparator[T]) bool {
	n := len(data)
	if n == 0 {
		return false
	}

	// Walk back over the descending suffix; data[j] is the rightmost
	// element with a strictly larger successor.
	i := n - 1
	j := i - 1
	for i != 0 && cmp(data[j], data[i]) >= 0 {
		i = j
		j--
	}
	if i == 0 {
		array.Reverse(data)
		return false
	}

	// Swap data[j] with the rightmost suffix element above it, then
	// restore the suffix to ascending order.
	k := n - 1
	for k != j && cmp(data[j], data[k]) >= 0 {
		k--
	}
	data[j], data[k] = data[k], data[j]
	array.Reverse(data[i:])
	return true
}
