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

// Package sets provides set algebra over sorted slices.
//
// A sorted slice doubles as a set representation: membership is a binary
// search and the algebra operations below are linear merges. All inputs
// must be sorted under the supplied comparator. Duplicates are permitted
// and treated with multiset semantics, so the intersection of [1 1 2] and
// [1 1 1] contains two ones.
//
// Union, Intersection and Difference write ascending output into a
// caller-supplied slice and return the count written. For Intersection and
// Difference the write position never runs ahead of the first operand's
// read position, so out may be the first operand itself:
//
//	n := sets.Difference(a, b, a, cmp) // subtract b from a in place
//	a = a[:n]
//
// Union's output can outrun its first input and must not overlap either
// operand.
package sets
