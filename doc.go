// Package lvtext is a small collection of pure string transformations, each
// living in its own dependency-free package.
//
// 🚀 What's inside?
//
//	rle/     : run-length encoding of lowercase+space text ("aaa" → "3a")
//	           and its inverse
//	freqsub/ : longest substring whose characters each occur at least k
//	           times in the whole text (brute-force reference + linear scan)
//	datefmt/ : normalize "Y-M-D", "M/D/Y", "MONTH DAY, YEAR" and
//	           "MON DAY, YEAR" to strict YYYY-MM-DD
//
// ✨ Guarantees
//
//   - Pure and reentrant: no shared state, no I/O, safe for concurrent use.
//   - Sentinel errors (rle.ErrInvalidCharacter, datefmt.ErrInvalidFormat, …)
//     checked with errors.Is; algorithms never panic.
//   - Documented complexity per function.
//
// The lvtext command (cmd/lvtext) wraps all three for shell use and can
// evaluate YAML/TOML job files concurrently:
//
//	lvtext encode "heloooooooo there"      # hel8o there
//	lvtext find --k 2 aabxbba              # aab
//	lvtext reformat "jan 15, 2022"         # 2022-01-15
//	lvtext batch jobs.yaml --output yaml
//
//	go get github.com/katalvlaran/lvtext
package lvtext
