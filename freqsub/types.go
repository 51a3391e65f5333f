package freqsub

import "fmt"

// Strategy selects the search algorithm used by Find and FindSpan.
type Strategy int

const (
	// Partition splits the text on below-threshold bytes. O(n).
	Partition Strategy = iota
	// BruteForce checks every span. O(n³).
	BruteForce
)

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	switch s {
	case Partition:
		return "partition"
	case BruteForce:
		return "bruteforce"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name back to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "partition", "":
		return Partition, nil
	case "bruteforce":
		return BruteForce, nil
	default:
		return 0, fmt.Errorf("freqsub: unknown strategy %q", name)
	}
}

// Span is a half-open byte range [Start, End) over the input text.
type Span struct {
	Start, End int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// FrequencyTable holds the whole-text count of every byte value.
// The sum of all counts equals the length of the text it was built from.
type FrequencyTable struct {
	counts [256]int
	total  int
}

// NewFrequencyTable counts every byte of text in one pass.
// Complexity: O(n).
func NewFrequencyTable(text string) FrequencyTable {
	var t FrequencyTable
	for i := 0; i < len(text); i++ {
		t.counts[text[i]]++
	}
	t.total = len(text)

	return t
}

// Count returns how many times c occurs in the text.
func (t *FrequencyTable) Count(c byte) int { return t.counts[c] }

// Total returns the sum of all counts.
func (t *FrequencyTable) Total() int { return t.total }

// Qualifies reports whether c occurs at least k times.
func (t *FrequencyTable) Qualifies(c byte, k uint) bool {
	return uint(t.counts[c]) >= k
}

// Option customizes Find and FindSpan.
type Option func(*config)

type config struct {
	strategy Strategy
}

// WithStrategy selects the search algorithm.
// Panics on an unknown Strategy value.
func WithStrategy(s Strategy) Option {
	if s != Partition && s != BruteForce {
		panic(fmt.Sprintf("freqsub: WithStrategy(%d)", int(s)))
	}
	return func(c *config) {
		c.strategy = s
	}
}

func newConfig(opts ...Option) config {
	cfg := config{strategy: Partition}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
