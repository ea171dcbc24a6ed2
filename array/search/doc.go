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

// Package search provides binary searches over sorted slices.
//
// All functions require data to be sorted under the supplied comparator;
// on unsorted input the results are unspecified. Bounds are returned as
// indices in [0, len(data)], so a full-range result means the value orders
// after every element and an insert at the returned index keeps the slice
// sorted:
//
//	i := search.LowerBound(data, v, cmp)
//	data = slices.Insert(data, i, v)
//
// LowerBound and UpperBound delimit the run of elements equivalent to the
// value; EqualRange returns both ends of that run in one call.
package search
