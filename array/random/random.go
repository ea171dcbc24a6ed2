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

package random

import "math/rand"

// Source draws a uniform random int from [0, n). rand.Intn and the Intn
// method of a seeded *rand.Rand both satisfy it.
type Source func(n int) int

// Shuffle permutes data uniformly at random with a Fisher-Yates walk from
// the back. A nil src uses the shared math/rand source.
func Shuffle[T any](data []T, src Source) {
	if src == nil {
		src = rand.Intn
	}
	for n := len(data); n > 1; {
		j := src(n)
		n--
		data[n], data[j] = data[j], data[n]
	}
}

// Sample fills out with a uniform random sample of data by reservoir
// sampling, in one pass and without modifying data. It returns the number
// of elements written: len(out), or len(data) when the input is smaller
// than the requested sample. Sampled elements arrive in no particular
// order. A nil src uses the shared math/rand source.
func Sample[T any](data, out []T, src Source) int {
	if src == nil {
		src = rand.Intn
	}
	count := len(out)
	for i := 0; i < count; i++ {
		if i == len(data) {
			return i
		}
		out[i] = data[i]
	}

	r := count + 1
	for i := count; i < len(data); i++ {
		if j := src(r); j < count {
			out[j] = data[i]
		}
		r++
	}
	return count
}
