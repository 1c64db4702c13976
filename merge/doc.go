// Package merge combines multiple already-sorted streams into one sorted
// stream using a tournament tree (loser tree). Each merged element costs a
// single pull from one source plus O(log M) comparisons for M sources, fewer
// than a straightforward M-way scan. This implementation derives from the
// loser tree by Bryan Boreham (https://github.com/bboreham/go-loser), adapted
// to pull-based sources with exhaustion flags in place of a sentinel value.
//
// It pairs naturally with the lazily sorted iterators from the root lazysort
// package: sort shards independently, then merge them without ever
// materializing the combined order.
//
// Basic usage:
//
//	a := lazysort.SortSlice([]int{9, 1, 5})
//	b := lazysort.SortSlice([]int{4, 2, 8})
//
//	tree := merge.New(cmp.Compare, a, b)
//	for v := range tree.All() {
//	    fmt.Print(v, " ") // 1 2 4 5 8 9
//	}
//
// Sources are pulled lazily, one element ahead per source, so the merge is as
// lazy as its inputs. A Tree is single use and not safe for concurrent use.
package merge
