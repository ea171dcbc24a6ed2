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

package sort

const (
	// quickSortCutoff is the block size below which quicksort stops
	// partitioning and leaves the block for the final insertion pass.
	quickSortCutoff = 32

	// stableSortCutoff is the run length at which the stable merge sort
	// hands off to the stable insertion sort.
	stableSortCutoff = 24
)
