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

package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

const modulePath = "github.com/clibraries/array-algorithms"

// family is one generatable algorithm group: the wrappers it contributes
// and the packages those wrappers delegate to.
type family struct {
	name    string
	imports []string
	body    string
}

// familyOrder fixes the order of sections in the generated file, so output
// does not depend on the order families were named on the command line.
var familyOrder = []family{
	{"scan", []string{modulePath + "/array"}, scanBody},
	{"search", []string{modulePath + "/array/search"}, searchBody},
	{"sets", []string{modulePath + "/array/sets"}, setsBody},
	{"heap", []string{modulePath + "/array/heap"}, heapBody},
	{"sort", []string{modulePath + "/array/sort"}, sortBody},
	{"random", []string{modulePath + "/array/random"}, randomBody},
}

// AvailableFamilies returns the valid -families values in generation
// order.
func AvailableFamilies() []string {
	names := make([]string, len(familyOrder))
	for i, f := range familyOrder {
		names[i] = f.name
	}
	return names
}

// Generator renders the flat wrapper file for one element type.
type Generator struct {
	Type       string   // concrete element type, e.g. "int" or "time.Duration"
	Name       string   // identifier prefix, may be empty
	Package    string   // output package name
	OutputFile string   // path the rendered file is written to
	Families   []string // subset of AvailableFamilies()
	TypeImport string   // import path supplying a qualified Type, if any
}

// Run executes the generation pipeline: render, format, write.
func (g *Generator) Run() error {
	src, err := g.Render()
	if err != nil {
		return err
	}
	return writeFormatted(g.OutputFile, src)
}

// Render produces the unformatted source of the wrapper file.
func (g *Generator) Render() ([]byte, error) {
	selected, err := g.selectFamilies()
	if err != nil {
		return nil, err
	}

	data := struct {
		Type string
		Name string
	}{g.Type, g.Name}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by arraygen %s; DO NOT EDIT.\n\n", g.argsLine())
	fmt.Fprintf(&buf, "package %s\n\n", g.Package)

	buf.WriteString("import (\n")
	if g.TypeImport != "" {
		fmt.Fprintf(&buf, "\t%q\n\n", g.TypeImport)
	}
	for _, f := range selected {
		for _, imp := range f.imports {
			fmt.Fprintf(&buf, "\t%q\n", imp)
		}
	}
	buf.WriteString(")\n")

	for _, f := range selected {
		tmpl, err := template.New(f.name).Parse(f.body)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", f.name, err)
		}
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("render %s wrappers: %w", f.name, err)
		}
	}
	return buf.Bytes(), nil
}

// selectFamilies validates g.Families and returns them in generation
// order.
func (g *Generator) selectFamilies() ([]family, error) {
	want := make(map[string]bool, len(g.Families))
	for _, name := range g.Families {
		want[name] = true
	}
	var selected []family
	for _, f := range familyOrder {
		if want[f.name] {
			selected = append(selected, f)
			delete(want, f.name)
		}
	}
	if len(want) > 0 {
		var unknown []string
		for name := range want {
			unknown = append(unknown, name)
		}
		return nil, fmt.Errorf("unknown families %s (valid: %s)",
			strings.Join(unknown, ","), strings.Join(AvailableFamilies(), ","))
	}
	return selected, nil
}

// argsLine reconstructs the flag spelling that reproduces this file.
func (g *Generator) argsLine() string {
	parts := []string{"-type", g.Type}
	if g.Name != "" {
		parts = append(parts, "-name", g.Name)
	}
	parts = append(parts, "-pkg", g.Package)
	if len(g.Families) != len(familyOrder) {
		parts = append(parts, "-families", strings.Join(g.Families, ","))
	}
	parts = append(parts, "-output", g.OutputFile)
	return strings.Join(parts, " ")
}

const scanBody = `
// {{.Name}}FindIf returns the index of the first element satisfying pred, or -1.
func {{.Name}}FindIf(data []{{.Type}}, pred func({{.Type}}) bool) int {
	return array.FindIf(data, pred)
}

// {{.Name}}FindIfNot returns the index of the first element failing pred, or -1.
func {{.Name}}FindIfNot(data []{{.Type}}, pred func({{.Type}}) bool) int {
	return array.FindIfNot(data, pred)
}

// {{.Name}}FindIfUnguarded returns the index of the first element satisfying
// pred, relying on the caller's guarantee that a match exists.
func {{.Name}}FindIfUnguarded(data []{{.Type}}, pred func({{.Type}}) bool) int {
	return array.FindIfUnguarded(data, pred)
}

// {{.Name}}FindIfNotUnguarded returns the index of the first element failing
// pred, relying on the caller's guarantee that such an element exists.
func {{.Name}}FindIfNotUnguarded(data []{{.Type}}, pred func({{.Type}}) bool) int {
	return array.FindIfNotUnguarded(data, pred)
}

// {{.Name}}FindLastIf returns the index of the last element satisfying pred, or -1.
func {{.Name}}FindLastIf(data []{{.Type}}, pred func({{.Type}}) bool) int {
	return array.FindLastIf(data, pred)
}

// {{.Name}}AllOf reports whether every element satisfies pred.
func {{.Name}}AllOf(data []{{.Type}}, pred func({{.Type}}) bool) bool {
	return array.AllOf(data, pred)
}

// {{.Name}}AnyOf reports whether at least one element satisfies pred.
func {{.Name}}AnyOf(data []{{.Type}}, pred func({{.Type}}) bool) bool {
	return array.AnyOf(data, pred)
}

// {{.Name}}NoneOf reports whether no element satisfies pred.
func {{.Name}}NoneOf(data []{{.Type}}, pred func({{.Type}}) bool) bool {
	return array.NoneOf(data, pred)
}

// {{.Name}}CountIf returns the number of elements satisfying pred.
func {{.Name}}CountIf(data []{{.Type}}, pred func({{.Type}}) bool) int {
	return array.CountIf(data, pred)
}

// {{.Name}}Mismatch returns the first index at which a and b differ, or len(a).
func {{.Name}}Mismatch(a, b []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return array.Mismatch(a, b, cmp)
}

// {{.Name}}AdjacentFind returns the index of the first element equivalent to
// its successor, or -1.
func {{.Name}}AdjacentFind(data []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return array.AdjacentFind(data, cmp)
}

// {{.Name}}CopyIf copies elements satisfying pred into out and returns the
// count written.
func {{.Name}}CopyIf(data, out []{{.Type}}, pred func({{.Type}}) bool) int {
	return array.CopyIf(data, out, pred)
}

// {{.Name}}ReverseCopy writes data reversed into out and returns len(data).
func {{.Name}}ReverseCopy(data, out []{{.Type}}) int {
	return array.ReverseCopy(data, out)
}

// {{.Name}}Reverse reverses data in place.
func {{.Name}}Reverse(data []{{.Type}}) {
	array.Reverse(data)
}

// {{.Name}}SwapRanges exchanges the first len(a) elements of a and b.
func {{.Name}}SwapRanges(a, b []{{.Type}}) {
	array.SwapRanges(a, b)
}

// {{.Name}}Fill assigns v to every element of data.
func {{.Name}}Fill(data []{{.Type}}, v {{.Type}}) {
	array.Fill(data, v)
}

// {{.Name}}ReplaceIf assigns replacement to every element satisfying pred.
func {{.Name}}ReplaceIf(data []{{.Type}}, replacement {{.Type}}, pred func({{.Type}}) bool) {
	array.ReplaceIf(data, replacement, pred)
}

// {{.Name}}InsertN inserts vals at the front of data, which must have spare
// capacity for them, and returns the grown slice.
func {{.Name}}InsertN(data []{{.Type}}, vals []{{.Type}}) []{{.Type}} {
	return array.InsertN(data, vals)
}

// {{.Name}}RemoveIf drops elements satisfying pred in place and returns the
// retained prefix.
func {{.Name}}RemoveIf(data []{{.Type}}, pred func({{.Type}}) bool) []{{.Type}} {
	return array.RemoveIf(data, pred)
}

// {{.Name}}RemoveIfNot keeps only elements satisfying pred in place and
// returns the retained prefix.
func {{.Name}}RemoveIfNot(data []{{.Type}}, pred func({{.Type}}) bool) []{{.Type}} {
	return array.RemoveIfNot(data, pred)
}

// {{.Name}}Unique compacts runs of equivalent neighbors in place and returns
// the retained prefix.
func {{.Name}}Unique(data []{{.Type}}, cmp func(a, b {{.Type}}) int) []{{.Type}} {
	return array.Unique(data, cmp)
}

// {{.Name}}UniqueCopy copies data into out skipping equivalent neighbors and
// returns the count written.
func {{.Name}}UniqueCopy(data, out []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return array.UniqueCopy(data, out, cmp)
}

// {{.Name}}UniqueCount returns the number of elements Unique would retain.
func {{.Name}}UniqueCount(data []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return array.UniqueCount(data, cmp)
}

// {{.Name}}IsSortedUntil returns the length of the longest sorted prefix.
func {{.Name}}IsSortedUntil(data []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return array.IsSortedUntil(data, cmp)
}

// {{.Name}}IsSorted reports whether data is in non-decreasing order.
func {{.Name}}IsSorted(data []{{.Type}}, cmp func(a, b {{.Type}}) int) bool {
	return array.IsSorted(data, cmp)
}

// {{.Name}}IsStrictlyIncreasingUntil returns the length of the longest
// strictly increasing prefix.
func {{.Name}}IsStrictlyIncreasingUntil(data []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return array.IsStrictlyIncreasingUntil(data, cmp)
}

// {{.Name}}IsStrictlyIncreasing reports whether data is strictly increasing.
func {{.Name}}IsStrictlyIncreasing(data []{{.Type}}, cmp func(a, b {{.Type}}) int) bool {
	return array.IsStrictlyIncreasing(data, cmp)
}

// {{.Name}}LexCompare orders a and b lexicographically.
func {{.Name}}LexCompare(a, b []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return array.LexCompare(a, b, cmp)
}

// {{.Name}}Equal reports whether b begins with a.
func {{.Name}}Equal(a, b []{{.Type}}, cmp func(a, b {{.Type}}) int) bool {
	return array.Equal(a, b, cmp)
}

// {{.Name}}Min returns the smaller of a and b, preferring a on ties.
func {{.Name}}Min(a, b {{.Type}}, cmp func(a, b {{.Type}}) int) {{.Type}} {
	return array.Min(a, b, cmp)
}

// {{.Name}}Max returns the larger of a and b, preferring b on ties.
func {{.Name}}Max(a, b {{.Type}}, cmp func(a, b {{.Type}}) int) {{.Type}} {
	return array.Max(a, b, cmp)
}

// {{.Name}}MinElement returns the index of the first minimum, or -1.
func {{.Name}}MinElement(data []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return array.MinElement(data, cmp)
}

// {{.Name}}MaxElement returns the index of the first maximum, or -1.
func {{.Name}}MaxElement(data []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return array.MaxElement(data, cmp)
}

// {{.Name}}MinmaxElement returns the indices of the first minimum and the
// last maximum in one pass, or (-1, -1) for an empty range.
func {{.Name}}MinmaxElement(data []{{.Type}}, cmp func(a, b {{.Type}}) int) (minIdx, maxIdx int) {
	return array.MinmaxElement(data, cmp)
}

// {{.Name}}Merge stably merges sorted a and b into out and returns the count
// written.
func {{.Name}}Merge(a, b, out []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return array.Merge(a, b, out, cmp)
}

// {{.Name}}MergeWithBuffer merges the sorted halves of data around middle in
// place, using buf as scratch for the front half.
func {{.Name}}MergeWithBuffer(data []{{.Type}}, middle int, buf []{{.Type}}, cmp func(a, b {{.Type}}) int) {
	array.MergeWithBuffer(data, middle, buf, cmp)
}

// {{.Name}}IsPartitioned reports whether elements satisfying pred all come
// before those that do not.
func {{.Name}}IsPartitioned(data []{{.Type}}, pred func({{.Type}}) bool) bool {
	return array.IsPartitioned(data, pred)
}

// {{.Name}}Partition moves elements satisfying pred to the front and returns
// the partition point.
func {{.Name}}Partition(data []{{.Type}}, pred func({{.Type}}) bool) int {
	return array.Partition(data, pred)
}

// {{.Name}}PartitionCopy distributes data into outTrue and outFalse by pred
// and returns both counts.
func {{.Name}}PartitionCopy(data, outTrue, outFalse []{{.Type}}, pred func({{.Type}}) bool) (nTrue, nFalse int) {
	return array.PartitionCopy(data, outTrue, outFalse, pred)
}

// {{.Name}}PartitionPoint returns the partition point of pred-partitioned
// data by binary probing.
func {{.Name}}PartitionPoint(data []{{.Type}}, pred func({{.Type}}) bool) int {
	return array.PartitionPoint(data, pred)
}
`

const searchBody = `
// {{.Name}}LowerBound returns the leftmost sorted insertion index for value.
func {{.Name}}LowerBound(data []{{.Type}}, value {{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return search.LowerBound(data, value, cmp)
}

// {{.Name}}UpperBound returns the rightmost sorted insertion index for value.
func {{.Name}}UpperBound(data []{{.Type}}, value {{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return search.UpperBound(data, value, cmp)
}

// {{.Name}}EqualRange returns the index range [lo, hi) of elements equivalent
// to value.
func {{.Name}}EqualRange(data []{{.Type}}, value {{.Type}}, cmp func(a, b {{.Type}}) int) (lo, hi int) {
	return search.EqualRange(data, value, cmp)
}

// {{.Name}}Contains reports whether sorted data holds an element equivalent
// to value.
func {{.Name}}Contains(data []{{.Type}}, value {{.Type}}, cmp func(a, b {{.Type}}) int) bool {
	return search.Contains(data, value, cmp)
}
`

const setsBody = `
// {{.Name}}SetUnion writes the sorted union of a and b into out and returns
// the count written.
func {{.Name}}SetUnion(a, b, out []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return sets.Union(a, b, out, cmp)
}

// {{.Name}}SetIntersection writes the sorted intersection of a and b into
// out, which may be a itself, and returns the count written.
func {{.Name}}SetIntersection(a, b, out []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return sets.Intersection(a, b, out, cmp)
}

// {{.Name}}SetDifference writes the sorted difference a minus b into out,
// which may be a itself, and returns the count written.
func {{.Name}}SetDifference(a, b, out []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return sets.Difference(a, b, out, cmp)
}

// {{.Name}}SetIncludes reports whether sorted sub occurs element-for-element
// within sorted super.
func {{.Name}}SetIncludes(sub, super []{{.Type}}, cmp func(a, b {{.Type}}) int) bool {
	return sets.Includes(sub, super, cmp)
}
`

const heapBody = `
// {{.Name}}IsHeapUntil returns the length of the longest max-heap prefix.
func {{.Name}}IsHeapUntil(data []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return heap.IsHeapUntil(data, cmp)
}

// {{.Name}}IsHeap reports whether data forms a max-heap.
func {{.Name}}IsHeap(data []{{.Type}}, cmp func(a, b {{.Type}}) int) bool {
	return heap.IsHeap(data, cmp)
}

// {{.Name}}PushHeap sifts the final element of data into the heap before it.
func {{.Name}}PushHeap(data []{{.Type}}, cmp func(a, b {{.Type}}) int) {
	heap.Push(data, cmp)
}

// {{.Name}}PopHeap moves the heap top to the end of data and repairs the
// rest.
func {{.Name}}PopHeap(data []{{.Type}}, cmp func(a, b {{.Type}}) int) {
	heap.Pop(data, cmp)
}

// {{.Name}}MakeHeap reorders data into a max-heap.
func {{.Name}}MakeHeap(data []{{.Type}}, cmp func(a, b {{.Type}}) int) {
	heap.Make(data, cmp)
}

// {{.Name}}SortHeap sorts a max-heap into ascending order.
func {{.Name}}SortHeap(data []{{.Type}}, cmp func(a, b {{.Type}}) int) {
	heap.Sort(data, cmp)
}
`

const sortBody = `
// {{.Name}}InsertionSort sorts data with an unguarded insertion sort.
func {{.Name}}InsertionSort(data []{{.Type}}, cmp func(a, b {{.Type}}) int) {
	sort.Insertion(data, cmp)
}

// {{.Name}}InsertionSortStable is InsertionSort preserving the order of
// equivalent elements.
func {{.Name}}InsertionSortStable(data []{{.Type}}, cmp func(a, b {{.Type}}) int) {
	sort.InsertionStable(data, cmp)
}

// {{.Name}}Sort sorts data in ascending cmp order. Not stable.
func {{.Name}}Sort(data []{{.Type}}, cmp func(a, b {{.Type}}) int) {
	sort.Sort(data, cmp)
}

// {{.Name}}StableSort sorts data preserving the order of equivalent
// elements, allocating scratch space for half the input.
func {{.Name}}StableSort(data []{{.Type}}, cmp func(a, b {{.Type}}) int) {
	sort.Stable(data, cmp)
}

// {{.Name}}StableSortBuffer is StableSort using caller scratch space of at
// least len(data)/2 elements.
func {{.Name}}StableSortBuffer(data, buf []{{.Type}}, cmp func(a, b {{.Type}}) int) {
	sort.StableWithBuffer(data, buf, cmp)
}

// {{.Name}}PartialSort sorts the k smallest elements into data[:k].
func {{.Name}}PartialSort(data []{{.Type}}, k int, cmp func(a, b {{.Type}}) int) {
	sort.Partial(data, k, cmp)
}

// {{.Name}}PartialSortCopy writes the smallest elements of src into dst in
// ascending order and returns the count written.
func {{.Name}}PartialSortCopy(src, dst []{{.Type}}, cmp func(a, b {{.Type}}) int) int {
	return sort.PartialCopy(src, dst, cmp)
}

// {{.Name}}NthElement places the nth-smallest element at data[nth] with
// smaller elements before it and larger after.
func {{.Name}}NthElement(data []{{.Type}}, nth int, cmp func(a, b {{.Type}}) int) {
	sort.NthElement(data, nth, cmp)
}

// {{.Name}}NextPermutation steps data to its next lexicographic permutation,
// wrapping to ascending order with a false return.
func {{.Name}}NextPermutation(data []{{.Type}}, cmp func(a, b {{.Type}}) int) bool {
	return sort.NextPermutation(data, cmp)
}
`

const randomBody = `
// {{.Name}}Shuffle permutes data uniformly at random; a nil src uses the
// shared math/rand source.
func {{.Name}}Shuffle(data []{{.Type}}, src random.Source) {
	random.Shuffle(data, src)
}

// {{.Name}}Sample reservoir-samples data into out and returns the count
// written.
func {{.Name}}Sample(data, out []{{.Type}}, src random.Source) int {
	return random.Sample(data, out, src)
}
`
