// Package freqsub finds the longest substring whose characters are all
// frequent in the whole text.
//
// 🚀 What is a qualifying substring?
//
//	Given a text and a threshold k, a substring qualifies when every byte it
//	contains occurs at least k times in the ENTIRE text (not just inside the
//	substring). Find returns the longest qualifying substring; among equally
//	long candidates the one starting first wins.
//
// ✨ Strategies:
//   - BruteForce: enumerate every (start, end) span by increasing start then
//     increasing end, check each one against the frequency table, and keep a
//     candidate only when it is strictly longer than the best so far.
//     Time O(n³), memory O(1) beyond the table. This is the reference.
//   - Partition: split the text on bytes below the threshold and keep the
//     first longest segment. Time O(n), memory O(1) beyond the table.
//     Default.
//
// Both strategies return identical results for every input.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvtext/freqsub"
//
//	s := freqsub.Find("aaabbc", 2)                               // "aaabb"
//	s = freqsub.Find("aaabbc", 2, freqsub.WithStrategy(freqsub.BruteForce))
//
// Edge cases:
//
//   - Find("", k) == "" for every k.
//   - Find(text, 0) == text.
//   - k above every byte frequency yields "".
//
// Characters are bytes; multi-byte UTF-8 sequences are counted per byte.
package freqsub
