package freqsub

// Find returns the longest substring of text in which every byte occurs at
// least k times across the whole text. Ties go to the earliest start.
// Returns "" when text is empty or nothing qualifies.
//
// Example:
//
//	freqsub.Find("aaabbc", 2) // "aaabb"
func Find(text string, k uint, opts ...Option) string {
	sp := FindSpan(text, k, opts...)

	return text[sp.Start:sp.End]
}

// FindSpan is Find returning the [Start, End) bounds of the result.
// An empty result is reported as Span{0, 0}.
func FindSpan(text string, k uint, opts ...Option) Span {
	if text == "" {
		return Span{}
	}
	cfg := newConfig(opts...)
	freq := NewFrequencyTable(text)

	if cfg.strategy == BruteForce {
		return bruteForce(text, k, &freq)
	}

	return partition(text, k, &freq)
}

// bruteForce enumerates spans by increasing start, then increasing end,
// scanning each candidate in full. A candidate replaces the best only when
// strictly longer, so the earliest of equally long spans survives.
// Complexity: O(n³) time.
func bruteForce(text string, k uint, freq *FrequencyTable) Span {
	n := len(text)
	var best Span
	for b := 0; b < n; b++ {
		for e := b + 1; e <= n; e++ {
			j := b
			for j < e && freq.Qualifies(text[j], k) {
				j++
			}
			if j == e && e-b > best.Len() {
				best = Span{Start: b, End: e}
			}
		}
	}

	return best
}

// partition walks the text once, treating every below-threshold byte as a
// separator, and keeps the first longest segment between separators.
// Complexity: O(n) time.
func partition(text string, k uint, freq *FrequencyTable) Span {
	var best Span
	start := 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && freq.Qualifies(text[i], k) {
			continue
		}
		// Segment [start, i) is maximal.
		if i-start > best.Len() {
			best = Span{Start: start, End: i}
		}
		start = i + 1
	}

	return best
}
