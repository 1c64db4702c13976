// Package heap implements the heap-backed lazy sort strategy: the input is
// heapified once at construction and each requested element is a single heap
// pop. Producing the first k of n elements costs O(n + k log n) with no
// allocation beyond the input buffer, which makes it the strategy of choice
// when extra allocation matters more than raw throughput (the quick package
// is O(n + k log k) on average but allocates a pool per split).
//
// The production order is ascending under the supplied comparison — the
// opposite convention from the quick package, because this strategy exists to
// answer "smallest k" queries directly. Callers who want one consistent
// direction across strategies should use the root lazysort package, which
// normalizes both to ascending.
//
// Basic usage:
//
//	s := heap.New([]int{2, 4, 2, 5, 8, 4, 3, 4, 6}, cmp.Compare)
//	for v := range s.All() {
//	    fmt.Print(v, " ") // 2 2 3 4 4 4 5 6 8
//	}
//
// A Sorter is single use and not safe for concurrent access.
package heap
