package merge

import "iter"

// Source is a pull-based stream of elements already sorted ascending under
// the comparison given to New. The Iterator values produced by the root
// lazysort package satisfy it.
type Source[E any] interface {
	// Next returns the next element, or ok=false once the stream is
	// exhausted.
	Next() (v E, ok bool)
	// SizeHint returns lower and upper bounds on the elements remaining.
	SizeHint() (lower, upper int)
}

// A Tree merges sorted sources with a tournament (loser) tree: a binary tree
// laid out in an array such that nodes N and N+1 have parent N/2. The M leaf
// nodes live in positions M..2M-1 and hold the head element of each source;
// the M-1 internal nodes in positions 1..M-1 cache the loser of the contest
// below them. Node 0 holds the overall winner, so producing the next merged
// element costs one source pull plus O(log M) comparisons.
type Tree[E any] struct {
	nodes   []node[E]
	sources []Source[E]
	compare func(a, b E) int
	started bool
}

type node[E any] struct {
	index int // leaf position of the loser, or of the winner for node 0
	value E
	ok    bool // false once the leaf's source is exhausted
}

// New returns a Tree producing the ascending merge of sources, each of which
// must already be sorted ascending under compare. Sources are pulled lazily:
// nothing is read until the first Next call, and each subsequent call pulls
// at most one element from one source.
func New[E any](compare func(a, b E) int, sources ...Source[E]) *Tree[E] {
	return &Tree[E]{
		nodes:   make([]node[E], len(sources)*2),
		sources: sources,
		compare: compare,
	}
}

// Next returns the smallest element among the heads of the remaining sources,
// or ok=false once every source is exhausted. Next after exhaustion keeps
// returning ok=false.
func (t *Tree[E]) Next() (v E, ok bool) {
	if len(t.nodes) == 0 {
		return v, false
	}
	if !t.started {
		m := len(t.sources)
		for i := range t.sources {
			t.nodes[m+i].index = m + i
			t.moveNext(m + i)
		}
		t.initialize()
		t.started = true
	} else {
		pos := t.nodes[0].index
		t.moveNext(pos)
		t.replayGames(pos)
	}
	if !t.nodes[0].ok {
		return v, false
	}
	return t.nodes[0].value, true
}

// SizeHint returns bounds on the number of elements remaining across all
// sources. The bounds are exact whenever every source's bounds are.
func (t *Tree[E]) SizeHint() (lower, upper int) {
	for _, s := range t.sources {
		lo, up := s.SizeHint()
		lower += lo
		upper += up
	}
	if t.started {
		// Each live leaf buffers one pulled element; the winner's has
		// already been handed out.
		for _, n := range t.nodes[len(t.sources):] {
			if n.ok {
				lower++
				upper++
			}
		}
		if t.nodes[0].ok {
			lower--
			upper--
		}
	}
	return lower, upper
}

// All returns a single-use iterator over the merged elements in ascending
// order, consuming the Tree as it goes.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			v, ok := t.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// moveNext pulls the next element of the source behind leaf pos.
func (t *Tree[E]) moveNext(pos int) {
	n := &t.nodes[pos]
	n.value, n.ok = t.sources[pos-len(t.sources)].Next()
}

func (t *Tree[E]) initialize() {
	winner := t.playGame(1)
	t.nodes[0].index = winner
	t.nodes[0].value = t.nodes[winner].value
	t.nodes[0].ok = t.nodes[winner].ok
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	nodes := t.nodes
	if pos >= len(nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var loser, winner int
	if t.beats(&nodes[left], &nodes[right]) {
		loser, winner = right, left
	} else {
		loser, winner = left, right
	}
	nodes[pos].index = loser
	nodes[pos].value = nodes[loser].value
	nodes[pos].ok = nodes[loser].ok
	return winner
}

// Starting at pos, which holds a fresh value, re-consider all contests up to
// the root.
func (t *Tree[E]) replayGames(pos int) {
	nodes := t.nodes
	winValue, winOK := nodes[pos].value, nodes[pos].ok
	for n := pos / 2; n != 0; n /= 2 {
		node := &nodes[n]
		if t.beatsValue(node.value, node.ok, winValue, winOK) {
			// Record pos as the loser here; the old loser is the new winner.
			node.index, pos = pos, node.index
			node.value, winValue = winValue, node.value
			node.ok, winOK = winOK, node.ok
		}
	}
	// pos is now the winner; store it in node 0.
	nodes[0].index = pos
	nodes[0].value = winValue
	nodes[0].ok = winOK
}

// beats reports whether a wins the contest against b. An exhausted leaf
// loses to everything, so drained sources sink to the bottom of the tree.
func (t *Tree[E]) beats(a, b *node[E]) bool {
	return t.beatsValue(a.value, a.ok, b.value, b.ok)
}

func (t *Tree[E]) beatsValue(av E, aok bool, bv E, bok bool) bool {
	if !aok {
		return false
	}
	if !bok {
		return true
	}
	return t.compare(av, bv) < 0
}
