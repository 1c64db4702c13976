// Package lazysort provides lazily evaluated sorting: an iterator over the
// elements of a finite sequence in ascending order that defers most of the
// sorting work until elements are actually requested. Taking only the first k
// smallest of n elements costs far less than a full sort when k is small.
//
// Two strategies are available behind the same Iterator contract:
//
//   - StrategyQuick (the default) partitions the input incrementally,
//     quicksort style, doing one partition pass per demand. Average cost for
//     the first k of n elements is O(n + k log k), at the price of one pool
//     allocation per split. See the quick package.
//   - StrategyHeap heapifies the input once and pops per demand: O(n + k log n)
//     with no allocation after construction. See the heap package.
//
// Basic usage:
//
//	it := lazysort.SortSlice([]int{9, 1, 7, 3})
//	smallest := lazysort.Take(it, 2) // [1 3]
//
//	// Or stream the whole thing:
//	for v := range lazysort.Sort(slices.Values(data)).All() {
//	    fmt.Println(v)
//	}
//
// Input collection is eager (the source sequence is fully drained up front);
// only the ordering work is lazy. Iterators are single use, report exact
// remaining-size hints via SizeHint, and are not safe for concurrent use.
// The subpackages keep their native production directions (quick descending,
// heap ascending); this package normalizes both to ascending. Sorted streams
// can be combined with the merge package.
package lazysort
