package lazysort

import (
	"cmp"
	"iter"
	"slices"

	"github.com/tikue/lazy-sort/heap"
	"github.com/tikue/lazy-sort/quick"
)

// Iterator is a single-use, lazily evaluated sorted view of a finite input.
// Both sort strategies satisfy it.
type Iterator[E any] interface {
	// Next returns the next element in sorted order, or ok=false once the
	// input is exhausted. Next after exhaustion keeps returning ok=false.
	Next() (v E, ok bool)
	// SizeHint returns lower and upper bounds on the number of elements not
	// yet produced. For both strategies the bounds are exact and equal.
	SizeHint() (lower, upper int)
	// All returns the remaining elements as an iter.Seq, consuming the
	// Iterator as it goes.
	All() iter.Seq[E]
}

// Sort drains seq and returns an Iterator producing its elements in ascending
// order. Only the collection of the input is eager; the ordering work is
// deferred until elements are requested through the Iterator.
func Sort[E cmp.Ordered](seq iter.Seq[E], opts ...Option) Iterator[E] {
	return SortFunc(seq, cmp.Compare[E], opts...)
}

// SortFunc is like Sort but orders by the given three-way comparison, which
// must define a total order. Elements are produced in ascending order under
// compare regardless of the chosen strategy: the quick strategy's native
// descending convention is inverted here so that strategies are
// interchangeable.
func SortFunc[E any](seq iter.Seq[E], compare func(a, b E) int, opts ...Option) Iterator[E] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	buf := slices.Collect(seq)
	switch o.strategy {
	case StrategyHeap:
		return heap.New(buf, compare)
	default:
		return quick.New(buf, func(a, b E) int { return compare(b, a) })
	}
}

// SortSlice is a convenience wrapper over Sort for callers holding a slice.
// It copies s, so the input remains usable.
func SortSlice[E cmp.Ordered](s []E, opts ...Option) Iterator[E] {
	return Sort(slices.Values(s), opts...)
}

// Take returns up to n elements from it, fewer if it is exhausted first.
// It covers the package's headline use case: the k smallest of the input
// without sorting the rest.
func Take[E any](it Iterator[E], n int) []E {
	lower, _ := it.SizeHint()
	out := make([]E, 0, min(n, lower))
	for len(out) < n {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}
