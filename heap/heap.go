package heap

import "iter"

// Sorter produces the elements of its input in ascending order by popping a
// binary min-heap built once at construction. Unlike the quick strategy it
// allocates nothing after New: every pop is one sift-down over the original
// buffer.
type Sorter[E any] struct {
	items []E
	cmp   func(a, b E) int
}

// New returns a Sorter over items that yields them in ascending order under
// cmp. It heapifies items in place in O(len(items)) and takes ownership of
// the slice; callers must not use it afterwards.
func New[E any](items []E, cmp func(a, b E) int) *Sorter[E] {
	s := &Sorter[E]{items: items, cmp: cmp}
	for i := len(items)/2 - 1; i >= 0; i-- {
		s.down(i)
	}
	return s
}

// Next removes and returns the smallest remaining element, or ok=false once
// the input is exhausted. Calling Next after exhaustion keeps returning
// ok=false.
func (s *Sorter[E]) Next() (v E, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[0]
	s.items[0] = s.items[n-1]
	clear(s.items[n-1:])
	s.items = s.items[:n-1]
	s.down(0)
	return v, true
}

// SizeHint returns the exact number of elements not yet produced as both the
// lower and the upper bound.
func (s *Sorter[E]) SizeHint() (lower, upper int) {
	return len(s.items), len(s.items)
}

// All returns a single-use iterator over the remaining elements in ascending
// order. It consumes the Sorter as it goes.
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

// down moves the element at index i down to its proper position.
func (s *Sorter[E]) down(i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(s.items) && s.less(left, smallest) {
			smallest = left
		}
		if right < len(s.items) && s.less(right, smallest) {
			smallest = right
		}

		if smallest == i {
			return
		}

		s.items[i], s.items[smallest] = s.items[smallest], s.items[i]
		i = smallest
	}
}

// less compares items at index i and j.
func (s *Sorter[E]) less(i, j int) bool {
	return s.cmp(s.items[i], s.items[j]) < 0
}
