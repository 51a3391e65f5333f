package freqsub_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvtext/freqsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []freqsub.Strategy{freqsub.Partition, freqsub.BruteForce}

// TestFind runs the same table under both strategies.
func TestFind(t *testing.T) {
	cases := []struct {
		name string
		text string
		k    uint
		want string
	}{
		{"Empty", "", 3, ""},
		{"EmptyZeroK", "", 0, ""},
		{"ZeroK", "abc", 0, "abc"},
		{"OneK", "abc", 1, "abc"},
		{"KTooLarge", "aabbcc", 3, ""},
		{"Middle", "caaab", 2, "aaa"},
		{"Prefix", "aaabbc", 2, "aaabb"},
		{"FirstOnTie", "aabxbba", 2, "aab"},
		{"WholeWordFrequency", "ababacb", 3, "ababa"},
		{"Spaces", "a b a b", 2, "a b a b"},
		{"HugeK", "aaaa", ^uint(0), ""},
	}
	for _, s := range strategies {
		for _, tc := range cases {
			t.Run(s.String()+"/"+tc.name, func(t *testing.T) {
				got := freqsub.Find(tc.text, tc.k, freqsub.WithStrategy(s))
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

// TestFindSpan reports bounds, including the empty result.
func TestFindSpan(t *testing.T) {
	sp := freqsub.FindSpan("xaaay", 3)
	assert.Equal(t, freqsub.Span{Start: 1, End: 4}, sp)
	assert.Equal(t, 3, sp.Len())

	assert.Equal(t, freqsub.Span{}, freqsub.FindSpan("xyz", 2))
	assert.Equal(t, freqsub.Span{}, freqsub.FindSpan("", 0))
}

// TestFrequencyTable checks counts and the sum invariant.
func TestFrequencyTable(t *testing.T) {
	text := "hello world"
	ft := freqsub.NewFrequencyTable(text)
	assert.Equal(t, 3, ft.Count('l'))
	assert.Equal(t, 2, ft.Count('o'))
	assert.Equal(t, 1, ft.Count(' '))
	assert.Equal(t, 0, ft.Count('z'))
	assert.Equal(t, len(text), ft.Total())

	sum := 0
	for c := 0; c < 256; c++ {
		sum += ft.Count(byte(c))
	}
	assert.Equal(t, ft.Total(), sum)

	assert.True(t, ft.Qualifies('l', 3))
	assert.False(t, ft.Qualifies('l', 4))
	assert.True(t, ft.Qualifies('z', 0))
}

// TestStrategies_Agree compares Partition against the BruteForce reference
// on seeded random texts and checks the result properties directly.
func TestStrategies_Agree(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		n := r.Intn(30)
		alpha := "abcdef"[:1+r.Intn(6)]
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteByte(alpha[r.Intn(len(alpha))])
		}
		text := b.String()
		k := uint(r.Intn(6))

		want := freqsub.FindSpan(text, k, freqsub.WithStrategy(freqsub.BruteForce))
		got := freqsub.FindSpan(text, k, freqsub.WithStrategy(freqsub.Partition))
		require.Equal(t, want, got, "text=%q k=%d", text, k)

		res := text[got.Start:got.End]
		assert.True(t, strings.Contains(text, res))
		ft := freqsub.NewFrequencyTable(text)
		for j := 0; j < len(res); j++ {
			assert.True(t, ft.Qualifies(res[j], k), "byte %q in %q below k=%d", res[j], res, k)
		}
	}
}

// TestWithStrategy_Panics verifies unknown strategies fail fast.
func TestWithStrategy_Panics(t *testing.T) {
	assert.Panics(t, func() { freqsub.WithStrategy(freqsub.Strategy(99)) })
}

// TestParseStrategy maps names to strategies.
func TestParseStrategy(t *testing.T) {
	s, err := freqsub.ParseStrategy("bruteforce")
	require.NoError(t, err)
	assert.Equal(t, freqsub.BruteForce, s)

	s, err = freqsub.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, freqsub.Partition, s)

	_, err = freqsub.ParseStrategy("quantum")
	assert.Error(t, err)
}
