// Package sort provides comparator-driven sorting and selection for
// slices: an unstable quicksort hybrid, a stable merge sort with
// controllable scratch space, heap-based partial sorts, quickselect, and
// permutation stepping.
//
// # Algorithm
//
// Sort is a quicksort hybrid: Hoare partitioning runs until every
// unsorted block is short, then one insertion-sort pass finishes the
// whole range. Before that pass the smallest element of the first block
// is swapped to the front, so the inner insertion loop needs no bounds
// check. Recursion always descends into the smaller side of a partition,
// bounding the stack at O(log n) frames even on adversarial input.
//
// Stable is a top-down merge sort that switches to a stable insertion
// sort for short runs. It needs scratch space for half the input:
// Stable allocates it, StableWithBuffer takes it from the caller so a
// hot loop can reuse one buffer across many sorts.
//
// Partial and PartialCopy maintain a bounded max-heap of the k smallest
// elements seen so far, which beats a full sort when k is much smaller
// than the input. NthElement is quickselect over the same Hoare
// partition used by Sort.
//
// # Choosing a sort
//
//   - Sort: fastest general-purpose choice; order of equivalent elements
//     is not preserved.
//   - Stable: preserves the order of equivalent elements; costs one
//     allocation unless a buffer is supplied.
//   - heap.Make + heap.Sort: no extra memory at all, at a constant-factor
//     cost.
//   - Partial, PartialCopy: only the k smallest are needed.
//   - NthElement: only a quantile or a median is needed.
//
// All comparators follow the three-way convention of package array.
package sort
