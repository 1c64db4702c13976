package lazysort

// Strategy selects the sorting engine behind an Iterator.
type Strategy int

const (
	// StrategyQuick sorts by incremental quicksort partitioning: O(n + k log k)
	// on average for the first k of n elements, allocating a pool per split.
	StrategyQuick Strategy = iota
	// StrategyHeap sorts by popping a binary heap built once up front:
	// O(n + k log n), no allocation after construction.
	StrategyHeap
)

// options defines all configuration options for a sort.
type options struct {
	strategy Strategy
}

// Option is a function that configures the sort options.
type Option func(*options)

// WithStrategy selects the sorting strategy.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		strategy: StrategyQuick,
	}
}
