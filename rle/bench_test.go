package rle_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvtext/rle"
)

// benchInput builds n bytes alternating runs of length runLen.
func benchInput(n, runLen int) string {
	var b strings.Builder
	b.Grow(n)
	c := byte('a')
	for b.Len() < n {
		for j := 0; j < runLen && b.Len() < n; j++ {
			b.WriteByte(c)
		}
		c++
		if c > 'z' {
			c = 'a'
		}
	}

	return b.String()
}

// BenchmarkEncode_NoRuns is the worst case for output size.
func BenchmarkEncode_NoRuns(b *testing.B) {
	in := benchInput(1<<16, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rle.Encode(in); err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
	}
}

// BenchmarkEncode_LongRuns compresses 64 KiB of length-100 runs.
func BenchmarkEncode_LongRuns(b *testing.B) {
	in := benchInput(1<<16, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rle.Encode(in); err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
	}
}

// BenchmarkDecode_LongRuns expands the LongRuns encoding.
func BenchmarkDecode_LongRuns(b *testing.B) {
	enc, err := rle.Encode(benchInput(1<<16, 100))
	if err != nil {
		b.Fatalf("Encode failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rle.Decode(enc); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}
