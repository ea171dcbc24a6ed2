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

package heap

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/clibraries/array-algorithms/array"
)

var intCmp = array.Compare[int]

// TestIsHeap tests heap recognition
func TestIsHeap(t *testing.T) {
	if !IsHeap([]int{100, 30, 40, 10, 20}, intCmp) {
		t.Errorf("IsHeap rejected a valid heap")
	}
	if IsHeap([]int{30, 100}, intCmp) {
		t.Errorf("IsHeap accepted a child larger than its parent")
	}
	if !IsHeap(nil, intCmp) || !IsHeap([]int{5}, intCmp) {
		t.Errorf("IsHeap rejected a trivial heap")
	}
}

// TestIsHeapUntil tests the heap-prefix boundary
func TestIsHeapUntil(t *testing.T) {
	if got := IsHeapUntil([]int{100, 30, 40}, intCmp); got != 3 {
		t.Errorf("IsHeapUntil(heap) = %d, want 3", got)
	}
	if got := IsHeapUntil([]int{30, 100, 20}, intCmp); got != 1 {
		t.Errorf("IsHeapUntil = %d, want 1", got)
	}
	if got := IsHeapUntil([]int{50, 40, 60, 10}, intCmp); got != 2 {
		t.Errorf("IsHeapUntil = %d, want 2", got)
	}
	if got := IsHeapUntil(nil, intCmp); got != 0 {
		t.Errorf("IsHeapUntil(empty) = %d, want 0", got)
	}
	if got := IsHeapUntil([]int{9}, intCmp); got != 1 {
		t.Errorf("IsHeapUntil(single) = %d, want 1", got)
	}
}

// TestPushGrowsHeap tests incremental heap construction
func TestPushGrowsHeap(t *testing.T) {
	data := []int{19, 7, 2, 36, 3, 25, 100, 1, 17, 25}
	for n := 1; n <= len(data); n++ {
		Push(data[:n], intCmp)
		if !IsHeap(data[:n], intCmp) {
			t.Fatalf("after Push of element %d: %v is not a heap", n-1, data[:n])
		}
	}
}

// TestPopDrainsDescending tests that repeated pops surface elements in
// descending order
func TestPopDrainsDescending(t *testing.T) {
	data := []int{19, 7, 2, 36, 3, 25, 100, 1, 17, 25}
	want := slices.Clone(data)
	slices.Sort(want)
	slices.Reverse(want)

	Make(data, intCmp)
	var popped []int
	for n := len(data); n > 0; n-- {
		top := data[0]
		Pop(data[:n], intCmp)
		if data[n-1] != top {
			t.Fatalf("Pop did not move the top %d to the end: %v", top, data[:n])
		}
		if !IsHeap(data[:n-1], intCmp) {
			t.Fatalf("Pop left a broken heap: %v", data[:n-1])
		}
		popped = append(popped, top)
	}
	if !slices.Equal(popped, want) {
		t.Errorf("Pop order = %v, want %v", popped, want)
	}
}

// TestMake tests heap construction from arbitrary data
func TestMake(t *testing.T) {
	data := []int{19, 7, 2, 36, 3, 25, 100, 1, 17, 25}
	if IsHeap(data, intCmp) {
		t.Fatalf("test data is accidentally a heap already")
	}
	Make(data, intCmp)
	if !IsHeap(data, intCmp) {
		t.Errorf("Make produced a non-heap: %v", data)
	}
	if data[0] != 100 {
		t.Errorf("Make put %d at the top, want 100", data[0])
	}
}

// TestSortHeap tests heapsort over a prepared heap
func TestSortHeap(t *testing.T) {
	data := []int{19, 7, 2, 36, 3, 25, 100, 1, 17, 25}
	want := slices.Clone(data)
	slices.Sort(want)

	Make(data, intCmp)
	Sort(data, intCmp)
	if !slices.Equal(data, want) {
		t.Errorf("heapsort = %v, want %v", data, want)
	}
}

// TestHeapRandom tests the whole lifecycle on random data of many sizes
func TestHeapRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 100, 256, 1000}
	for _, n := range sizes {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(100)
		}
		want := slices.Clone(data)
		slices.Sort(want)

		Make(data, intCmp)
		if !IsHeap(data, intCmp) {
			t.Errorf("Make(n=%d) produced a non-heap", n)
		}
		Sort(data, intCmp)
		if !slices.Equal(data, want) {
			t.Errorf("heapsort(n=%d) = %v, want %v", n, data, want)
		}
	}
}
