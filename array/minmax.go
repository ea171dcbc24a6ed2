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

// Min returns the smaller of a and b. When the two are equivalent it
// returns a.
func Min[T any](a, b T, cmp Comparator[T]) T {
	if cmp(b, a) < 0 {
		return b
	}
	return a
}

// Max returns the larger of a and b. When the two are equivalent it
// returns b.
func Max[T any](a, b T, cmp Comparator[T]) T {
	if cmp(a, b) > 0 {
		return a
	}
	return b
}

// MinElement returns the index of the smallest element, or -1 for an empty
// range. Among equivalent minima it returns the first.
func MinElement[T any](data []T, cmp Comparator[T]) int {
	if len(data) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[best]) < 0 {
			best = i
		}
	}
	return best
}

// MaxElement returns the index of the largest element, or -1 for an empty
// range. Among equivalent maxima it returns the first.
func MaxElement[T any](data []T, cmp Comparator[T]) int {
	if len(data) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[best]) > 0 {
			best = i
		}
	}
	return best
}

// MinmaxElement returns the indices of the smallest and largest elements in
// a single pass, examining elements two at a time so it costs about 3n/2
// comparisons instead of the 2n of separate scans. Among equivalent minima
// it reports the first, among equivalent maxima the last. Both indices are
// -1 for an empty range.
func MinmaxElement[T any](data []T, cmp Comparator[T]) (minIdx, maxIdx int) {
	n := len(data)
	if n == 0 {
		return -1, -1
	}
	if n == 1 {
		return 0, 0
	}
	minIdx, maxIdx = 0, 1
	if cmp(data[maxIdx], data[minIdx]) < 0 {
		minIdx, maxIdx = maxIdx, minIdx
	}
	i := 2
	for ; i+1 < n; i += 2 {
		lo, hi := i, i+1
		if cmp(data[hi], data[lo]) < 0 {
			lo, hi = hi, lo
		}
		if cmp(data[lo], data[minIdx]) < 0 {
			minIdx = lo
		}
		if cmp(data[hi], data[maxIdx]) >= 0 {
			maxIdx = hi
		}
	}
	if i < n {
		if cmp(data[i], data[minIdx]) < 0 {
			minIdx = i
		} else if cmp(data[i], data[maxIdx]) >= 0 {
			maxIdx = i
		}
	}
	return minIdx, maxIdx
}
