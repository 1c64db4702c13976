package merge_test

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lazysort "github.com/tikue/lazy-sort"
	"github.com/tikue/lazy-sort/merge"
)

// sliceSource is a minimal pre-sorted Source for tests.
type sliceSource struct {
	values []int
}

func (s *sliceSource) Next() (int, bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v, true
}

func (s *sliceSource) SizeHint() (int, int) {
	return len(s.values), len(s.values)
}

func sorted(values ...int) *sliceSource {
	slices.Sort(values)
	return &sliceSource{values: values}
}

func TestTreeMerge(t *testing.T) {
	tests := []struct {
		name    string
		sources []merge.Source[int]
		want    []int
	}{
		{
			name: "three interleaved sources",
			sources: []merge.Source[int]{
				sorted(1, 4, 7),
				sorted(2, 5, 8),
				sorted(3, 6, 9),
			},
			want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			name: "uneven lengths",
			sources: []merge.Source[int]{
				sorted(5),
				sorted(1, 2, 3, 4),
				sorted(),
			},
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "duplicates across sources",
			sources: []merge.Source[int]{
				sorted(2, 4, 4),
				sorted(2, 4, 8),
			},
			want: []int{2, 2, 4, 4, 4, 8},
		},
		{
			name:    "single source",
			sources: []merge.Source[int]{sorted(3, 1, 2)},
			want:    []int{1, 2, 3},
		},
		{
			name:    "no sources",
			sources: nil,
			want:    []int{},
		},
		{
			name: "all sources empty",
			sources: []merge.Source[int]{
				sorted(),
				sorted(),
			},
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := merge.New(cmp.Compare, tt.sources...)
			got := slices.Collect(tree.All())
			if got == nil {
				got = []int{}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTreeSizeHint(t *testing.T) {
	tree := merge.New(cmp.Compare,
		merge.Source[int](sorted(1, 4, 7)),
		merge.Source[int](sorted(2, 5)),
	)

	for i := range 6 {
		lower, upper := tree.SizeHint()
		assert.Equal(t, 5-i, lower, "after %d pulls", i)
		assert.Equal(t, lower, upper)
		tree.Next()
	}
}

func TestTreeExhaustionIsIdempotent(t *testing.T) {
	tree := merge.New(cmp.Compare, merge.Source[int](sorted(1, 2)))
	for range 2 {
		_, ok := tree.Next()
		require.True(t, ok)
	}

	for range 5 {
		v, ok := tree.Next()
		assert.False(t, ok)
		assert.Zero(t, v)
	}
	lower, upper := tree.SizeHint()
	assert.Zero(t, lower)
	assert.Zero(t, upper)
}

func TestTreeMergesLazySortIterators(t *testing.T) {
	shards := [][]int{
		{9, 1, 5, 5},
		{4, 2, 8},
		{7, 0, 6, 3},
	}

	var all []int
	sources := make([]merge.Source[int], 0, len(shards))
	for _, shard := range shards {
		all = append(all, shard...)
		sources = append(sources, lazysort.SortSlice(shard))
	}
	want := slices.Clone(all)
	slices.Sort(want)

	tree := merge.New(cmp.Compare, sources...)
	assert.Equal(t, want, slices.Collect(tree.All()))
}

func TestTreeManyRandomSources(t *testing.T) {
	const numSources = 13
	var all []int
	sources := make([]merge.Source[int], numSources)
	for i := range sources {
		shard := make([]int, rand.IntN(40))
		for j := range shard {
			shard[j] = rand.IntN(100)
		}
		all = append(all, shard...)
		sources[i] = sorted(shard...)
	}
	want := slices.Clone(all)
	slices.Sort(want)
	if want == nil {
		want = []int{}
	}

	tree := merge.New(cmp.Compare, sources...)
	got := slices.Collect(tree.All())
	if got == nil {
		got = []int{}
	}
	assert.Equal(t, want, got)
}
