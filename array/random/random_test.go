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

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShufflePreservesMultiset(t *testing.T) {
	rng := rand.New(rand.NewSource(51))
	for _, n := range []int{0, 1, 2, 10, 1000} {
		data := make([]int, n)
		for i := range data {
			data[i] = i
		}
		want := slices.Clone(data)

		Shuffle(data, rng.Intn)
		slices.Sort(data)
		require.Equal(t, want, data, "n=%d", n)
	}
}

func TestShuffleReachesAllPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(52))
	counts := map[[3]int]int{}
	const trials = 6000
	for i := 0; i < trials; i++ {
		data := [3]int{0, 1, 2}
		Shuffle(data[:], rng.Intn)
		counts[data]++
	}

	require.Len(t, counts, 6, "all 3! orderings should occur")
	// Each permutation has expectation 1000; a uniform shuffle stays far
	// inside these bounds.
	for perm, c := range counts {
		assert.Greater(t, c, 700, "permutation %v", perm)
		assert.Less(t, c, 1300, "permutation %v", perm)
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7, 8}
	b := slices.Clone(a)
	Shuffle(a, rand.New(rand.NewSource(7)).Intn)
	Shuffle(b, rand.New(rand.NewSource(7)).Intn)
	assert.Equal(t, a, b)
}

func TestShuffleNilSource(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}
	Shuffle(data, nil)
	slices.Sort(data)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, data)
}

func TestSampleSmallerThanInput(t *testing.T) {
	rng := rand.New(rand.NewSource(53))
	data := []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	out := make([]int, 3)
	n := Sample(data, out, rng.Intn)
	require.Equal(t, 3, n)
	for _, v := range out {
		assert.Contains(t, data, v, "sampled value must come from the input")
	}
	// No duplicates: sampling is without replacement.
	sorted := slices.Clone(out)
	slices.Sort(sorted)
	assert.False(t, sorted[0] == sorted[1] || sorted[1] == sorted[2],
		"sample drew an element twice: %v", out)
}

func TestSampleExhaustsShortInput(t *testing.T) {
	rng := rand.New(rand.NewSource(54))
	data := []int{1, 2, 3}
	out := make([]int, 10)
	n := Sample(data, out, rng.Intn)
	require.Equal(t, 3, n)
	assert.Equal(t, []int{1, 2, 3}, out[:n])

	n = Sample(nil, out, rng.Intn)
	assert.Zero(t, n)
	n = Sample(data, nil, rng.Intn)
	assert.Zero(t, n)
}

func TestSampleIsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(55))
	data := make([]int, 10)
	for i := range data {
		data[i] = i
	}
	freq := make([]int, 10)
	const trials = 5000
	out := make([]int, 2)
	for i := 0; i < trials; i++ {
		n := Sample(data, out, rng.Intn)
		require.Equal(t, 2, n)
		for _, v := range out[:n] {
			freq[v]++
		}
	}
	// Each element is picked with probability 1/5 per trial, expectation
	// 1000. Bounds are ten sigma wide.
	for v, c := range freq {
		assert.Greater(t, c, 700, "element %d", v)
		assert.Less(t, c, 1300, "element %d", v)
	}
}
