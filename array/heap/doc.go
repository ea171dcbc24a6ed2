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

// Package heap provides binary max-heap operations on a slice prefix.
//
// A heap here is an implicit binary tree stored in place: the children of
// the element at index i live at 2i+1 and 2i+2, and no parent orders
// before a child. The largest element is always at index 0. Unlike
// container/heap, nothing is wrapped in an interface and nothing
// allocates; the slice itself is the heap, which suits priority queues
// embedded in tight loops:
//
//	heap.Make(data, cmp)
//	for len(data) > 0 {
//		top := data[0]
//		heap.Pop(data, cmp)      // moves the top to data[len(data)-1]
//		data = data[:len(data)-1]
//		process(top)
//	}
//
// Push and Pop treat the final element of the slice as the staging slot:
// Push lifts data[len-1] into a heap occupying the rest, Pop swaps the top
// into data[len-1] and repairs the remainder. Sorting the whole slice via
// repeated Pop is packaged as Sort.
package heap
