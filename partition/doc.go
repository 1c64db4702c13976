// Package partition provides an in-place slice partition primitive: a single
// swap-based pass that moves every element satisfying a predicate in front of
// every element that does not, reporting the boundary between the two regions.
//
// It is the workhorse of the quick package's incremental sort, which
// partitions a pool around a pivot value one split at a time, but it is usable
// on its own wherever a two-way split of a slice is needed.
//
// Basic usage:
//
//	s := []int{5, 2, 8, 1, 9, 3}
//	bound := partition.Partition(s, func(v int) bool { return v < 4 })
//	// s[:bound] holds 2, 1, 3 in some order; s[bound:] holds the rest.
package partition
