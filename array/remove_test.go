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

import (
	"slices"
	"testing"
)

// TestRemoveIf tests in-place filtering
func TestRemoveIf(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	kept := RemoveIf(data, isEven)
	if !slices.Equal(kept, []int{1, 3, 5}) {
		t.Errorf("RemoveIf = %v, want [1 3 5]", kept)
	}
	if kept := RemoveIf([]int{2, 4}, isEven); len(kept) != 0 {
		t.Errorf("RemoveIf(all match) = %v, want empty", kept)
	}
	if kept := RemoveIf([]int{1, 3}, isEven); !slices.Equal(kept, []int{1, 3}) {
		t.Errorf("RemoveIf(no match) = %v, want [1 3]", kept)
	}
}

// TestRemoveIfNot tests the keep-matching variant
func TestRemoveIfNot(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	kept := RemoveIfNot(data, isEven)
	if !slices.Equal(kept, []int{2, 4, 6}) {
		t.Errorf("RemoveIfNot = %v, want [2 4 6]", kept)
	}
}

// TestUnique tests in-place neighbor deduplication
func TestUnique(t *testing.T) {
	data := []int{1, 3, 3, 3, 4, 4, 7, 8, 8, 8}
	kept := Unique(data, Compare[int])
	if !slices.Equal(kept, []int{1, 3, 4, 7, 8}) {
		t.Errorf("Unique = %v, want [1 3 4 7 8]", kept)
	}

	if kept := Unique([]int{}, Compare[int]); len(kept) != 0 {
		t.Errorf("Unique(empty) = %v", kept)
	}
	if kept := Unique([]int{5}, Compare[int]); !slices.Equal(kept, []int{5}) {
		t.Errorf("Unique(single) = %v", kept)
	}
	if kept := Unique([]int{2, 2, 2}, Compare[int]); !slices.Equal(kept, []int{2}) {
		t.Errorf("Unique(all equal) = %v", kept)
	}

	// Unsorted input keeps one element per run of equal neighbors.
	runs := []int{1, 1, 2, 1, 1, 3}
	if kept := Unique(runs, Compare[int]); !slices.Equal(kept, []int{1, 2, 1, 3}) {
		t.Errorf("Unique(runs) = %v, want [1 2 1 3]", kept)
	}
}

// TestUniqueCopy tests deduplicating copy, including aliased output
func TestUniqueCopy(t *testing.T) {
	src := []int{1, 3, 3, 3, 4, 4, 7, 8, 8, 8}
	out := make([]int, len(src))
	n := UniqueCopy(src, out, Compare[int])
	if !slices.Equal(out[:n], []int{1, 3, 4, 7, 8}) {
		t.Errorf("UniqueCopy = %v, want [1 3 4 7 8]", out[:n])
	}
	if src[1] != 3 || src[9] != 8 {
		t.Errorf("UniqueCopy modified its input: %v", src)
	}

	// Writing over the input is allowed.
	n = UniqueCopy(src, src, Compare[int])
	if !slices.Equal(src[:n], []int{1, 3, 4, 7, 8}) {
		t.Errorf("UniqueCopy(aliased) = %v, want [1 3 4 7 8]", src[:n])
	}

	if n := UniqueCopy(nil, out, Compare[int]); n != 0 {
		t.Errorf("UniqueCopy(empty) = %d, want 0", n)
	}
}

// TestUniqueCount tests counting survivors without modification
func TestUniqueCount(t *testing.T) {
	data := []int{1, 3, 3, 3, 4, 4, 7, 8, 8, 8}
	if got := UniqueCount(data, Compare[int]); got != 5 {
		t.Errorf("UniqueCount = %d, want 5", got)
	}
	if data[2] != 3 {
		t.Errorf("UniqueCount modified its input: %v", data)
	}
	if got := UniqueCount(nil, Compare[int]); got != 0 {
		t.Errorf("UniqueCount(empty) = %d, want 0", got)
	}
	if got := UniqueCount([]int{9}, Compare[int]); got != 1 {
		t.Errorf("UniqueCount(single) = %d, want 1", got)
	}
}
