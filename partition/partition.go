package partition

// Partition rearranges s in place so that every element satisfying pred
// precedes every element that does not, and returns the index of the first
// element that does not satisfy pred (len(s) if all do).
//
// It performs a single left-to-right pass with swaps: O(len(s)) time, no
// allocation. The relative order of elements within each half is not
// preserved.
func Partition[E any](s []E, pred func(E) bool) int {
	next := 0
	for i := range s {
		if pred(s[i]) {
			s[i], s[next] = s[next], s[i]
			next++
		}
	}
	return next
}
