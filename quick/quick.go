package quick

import (
	"iter"

	"github.com/tikue/lazy-sort/partition"
)

// insertionThreshold is the pool size at or below which a pool is sorted
// outright with insertion sort instead of being partitioned incrementally.
// It trades the fixed cost of a split against the cost of sorting a small
// pool once; correctness does not depend on its value.
const insertionThreshold = 32

// Sorter produces the elements of its input in descending order, partitioning
// only as far as needed to answer each Next call. The zero value is an
// exhausted Sorter.
//
// A Sorter node holds a pool of elements that are all less than or equal to
// every pivot extracted above it. While a greater child is live, everything in
// that child outranks the node's own pool, so production delegates to the
// child first; once the child drains, the deferred pivot at the end of the
// pool is released, and further splits continue on the remainder.
type Sorter[E any] struct {
	pool    []E
	greater *Sorter[E]
	cmp     func(a, b E) int
	sorted  bool
}

// New returns a Sorter over items that yields them in descending order under
// cmp. It takes ownership of items and rearranges it in place; callers must
// not use the slice afterwards. cmp follows the usual three-way convention:
// negative when a < b, zero when equal, positive when a > b.
func New[E any](items []E, cmp func(a, b E) int) *Sorter[E] {
	s := &Sorter[E]{pool: items, cmp: cmp}
	if len(items) <= insertionThreshold {
		insertionSort(items, cmp)
		s.sorted = true
	}
	return s
}

// Next returns the largest remaining element, or ok=false once the input is
// exhausted. Calling Next after exhaustion keeps returning ok=false.
func (s *Sorter[E]) Next() (v E, ok bool) {
	if s.greater != nil {
		if v, ok = s.greater.Next(); ok {
			return v, true
		}
		// Child drained: release it and surface the pivot that was held
		// back at the end of the pool while the child was live.
		s.greater = nil
		return s.pop()
	}
	return s.split()
}

// SizeHint returns the exact number of elements not yet produced as both the
// lower and the upper bound.
func (s *Sorter[E]) SizeHint() (lower, upper int) {
	n := len(s.pool)
	if s.greater != nil {
		rest, _ := s.greater.SizeHint()
		n += rest
	}
	return n, n
}

// All returns a single-use iterator over the remaining elements in descending
// order. It consumes the Sorter as it goes; stopping early leaves the Sorter
// positioned at the next unproduced element.
func (s *Sorter[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// split performs at most one partition pass to surface the next element.
func (s *Sorter[E]) split() (v E, ok bool) {
	if s.sorted || len(s.pool) <= 1 {
		return s.pop()
	}

	// Partitioning wants the pivot out of the way at the end of the pool;
	// taking it from the middle avoids quadratic behaviour on sorted input.
	last := len(s.pool) - 1
	mid := len(s.pool) / 2
	s.pool[mid], s.pool[last] = s.pool[last], s.pool[mid]
	pivot := s.pool[last]

	bound := partition.Partition(s.pool[:last], func(el E) bool {
		return s.cmp(el, pivot) < 0
	})
	s.pool[bound], s.pool[last] = s.pool[last], s.pool[bound]

	if splitAt := bound + 1; splitAt < len(s.pool) {
		// Everything past the pivot is >= pivot and must come out before
		// it. Split that tail off into a child and draw the first (largest)
		// element from it; the pivot stays at the end of the pool until the
		// child is exhausted.
		rest := make([]E, len(s.pool)-splitAt)
		copy(rest, s.pool[splitAt:])
		clear(s.pool[splitAt:])
		s.pool = s.pool[:splitAt]

		child := New(rest, s.cmp)
		v, ok = child.Next()
		s.greater = child
		return v, ok
	}

	// Nothing outranked the pivot: it is the maximum of this pool.
	return s.pop()
}

// pop removes and returns the last element of the pool.
func (s *Sorter[E]) pop() (v E, ok bool) {
	n := len(s.pool)
	if n == 0 {
		return v, false
	}
	v = s.pool[n-1]
	clear(s.pool[n-1:])
	s.pool = s.pool[:n-1]
	return v, true
}

// insertionSort orders s ascending under cmp, so that popping from the end
// yields elements largest-first. Stable, used only for small pools.
func insertionSort[E any](s []E, cmp func(a, b E) int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && cmp(s[j], s[j-1]) < 0; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
