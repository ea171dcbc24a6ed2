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

import "golang.org/x/exp/constraints"

// Comparator is a three-way ordering over T: negative when a orders before
// b, zero when a and b are equivalent, positive when a orders after b.
//
// Algorithms in this module only ever inspect the sign, so any consistent
// three-way func works, including ones built from subtraction on small
// integer keys or from strings.Compare on string keys.
type Comparator[T any] func(a, b T) int

// Predicate reports whether an element satisfies a condition.
type Predicate[T any] func(v T) bool

// Compare is a Comparator over any ordered element type, using the
// language's builtin ordering. NaN float values compare as unordered and
// should be filtered out before sorting or searching.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
