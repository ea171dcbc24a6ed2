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

// Package random provides randomized slice algorithms: uniform shuffling
// and single-pass reservoir sampling.
//
// Randomness is injected through the Source type, a func drawing uniform
// ints from [0, n). Passing nil selects the shared math/rand source; for
// reproducible runs hand in a seeded generator:
//
//	rng := rand.New(rand.NewSource(42))
//	random.Shuffle(data, rng.Intn)
package random
