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

// Package array provides generic, in-place algorithms over slices of
// contiguous elements: linear scans, filtered copies, compaction, ordered
// merges, partitioning, and element selection.
//
// Every algorithm is non-allocating and operates directly on the slices it
// is given. Functions that produce output write into a caller-supplied
// destination slice and report how many elements they wrote; nothing here
// grows a slice behind the caller's back.
//
// # Comparators and Predicates
//
// Algorithms that need an ordering take a three-way Comparator: negative
// when a orders before b, zero when they are equivalent, positive when a
// orders after b. Algorithms that need a test take a Predicate. Both are
// plain funcs so closures can capture whatever context they need:
//
//	people := []Person{...}
//	byAge := func(a, b Person) int { return a.Age - b.Age }
//	idx := array.MinElement(people, byAge)
//
// For ordered element types, Compare adapts the builtin ordering:
//
//	idx := array.MinElement(nums, array.Compare[int])
//
// # Index Conventions
//
// Search-style functions follow two conventions, chosen per operation:
//
//   - Functions that look for one element (FindIf, AdjacentFind, MinElement)
//     return the element's index, or -1 when the range holds no match.
//   - Functions that locate a boundary (IsSortedUntil, PartitionPoint, the
//     bound searches in package search) return an index in [0, len(data)],
//     where len(data) means the boundary property holds for the whole range.
//
// # Slicing Instead of Counted Variants
//
// Counted operations are expressed by subslicing: where a C or C++ API
// offers fill_n(first, count, x), call Fill(data[:count], x). The in-place
// family (RemoveIf, Unique) returns the retained subslice of its input,
// matching the convention of the standard library's slices package.
package array
