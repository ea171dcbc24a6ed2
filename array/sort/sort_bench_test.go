package sort

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/clibraries/array-algorithms/array"
	"github.com/clibraries/array-algorithms/array/heap"
)

// Generate random data for benchmarks
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rand.Intn(10000) - 5000
	}
	return data
}

func BenchmarkSort_Int_100(b *testing.B) {
	benchmarkSort(b, 100)
}

func BenchmarkSort_Int_1000(b *testing.B) {
	benchmarkSort(b, 1000)
}

func BenchmarkSort_Int_10000(b *testing.B) {
	benchmarkSort(b, 10000)
}

func BenchmarkSort_Int_100000(b *testing.B) {
	benchmarkSort(b, 100000)
}

func benchmarkSort(b *testing.B, n int) {
	ref := generateInts(n)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data, array.Compare[int])
	}
}

func BenchmarkStable_Int_100(b *testing.B) {
	benchmarkStable(b, 100)
}

func BenchmarkStable_Int_1000(b *testing.B) {
	benchmarkStable(b, 1000)
}

func BenchmarkStable_Int_10000(b *testing.B) {
	benchmarkStable(b, 10000)
}

func benchmarkStable(b *testing.B, n int) {
	ref := generateInts(n)
	data := make([]int, n)
	buf := make([]int, n/2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		StableWithBuffer(data, buf, array.Compare[int])
	}
}

func BenchmarkHeapSort_Int_1000(b *testing.B) {
	benchmarkHeapSort(b, 1000)
}

func BenchmarkHeapSort_Int_10000(b *testing.B) {
	benchmarkHeapSort(b, 10000)
}

func benchmarkHeapSort(b *testing.B, n int) {
	ref := generateInts(n)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		heap.Make(data, array.Compare[int])
		heap.Sort(data, array.Compare[int])
	}
}

func BenchmarkPartial_Int_10000_Top10(b *testing.B) {
	benchmarkPartial(b, 10000, 10)
}

func BenchmarkPartial_Int_10000_Top100(b *testing.B) {
	benchmarkPartial(b, 10000, 100)
}

func benchmarkPartial(b *testing.B, n, k int) {
	ref := generateInts(n)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Partial(data, k, array.Compare[int])
	}
}

func BenchmarkStdlib_Int_100(b *testing.B) {
	benchmarkStdlib(b, 100)
}

func BenchmarkStdlib_Int_1000(b *testing.B) {
	benchmarkStdlib(b, 1000)
}

func BenchmarkStdlib_Int_10000(b *testing.B) {
	benchmarkStdlib(b, 10000)
}

func BenchmarkStdlib_Int_100000(b *testing.B) {
	benchmarkStdlib(b, 100000)
}

func benchmarkStdlib(b *testing.B, n int) {
	ref := generateInts(n)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.SortFunc(data, array.Compare[int])
	}
}
