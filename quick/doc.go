// Package quick implements an incrementally evaluated quicksort: an iterator
// that yields the elements of a slice in descending order while deferring most
// of the sorting work until elements are actually requested.
//
// Each call to Next performs at most one partition pass over the current pool.
// Asking for only the first k elements of n therefore costs O(n + k log k) on
// average instead of the O(n log n) of sorting everything up front, which is
// the point: "give me the k largest of n" gets cheaper the smaller k is.
// Pools at or below a small threshold are insertion sorted once instead of
// being partitioned further.
//
// The production order is descending under the supplied comparison. Callers
// who want ascending order can invert the comparison, or use the root
// lazysort package, which normalizes both of its strategies to ascending.
//
// Basic usage:
//
//	s := quick.New([]int{2, 4, 2, 5, 8, 4, 3, 4, 6}, cmp.Compare)
//	for v := range s.All() {
//	    fmt.Print(v, " ") // 8 6 5 4 4 4 3 2 2
//	}
//
//	// Or pull one element at a time:
//	v, ok := s.Next()
//
// A Sorter is single use and not safe for concurrent access. Splitting a pool
// allocates the child pool; partitioning itself is in place, so total live
// memory stays O(n) and only O(k) allocations happen when just k elements are
// drawn.
package quick
