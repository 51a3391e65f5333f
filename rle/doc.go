// Package rle run-length encodes strings made of lowercase ASCII letters
// and spaces.
//
// What:
//
//   - Encode collapses every run of length ≥ 2 into "<count><char>".
//     A run of length 1 is emitted as the bare character.
//   - Decode expands "<count><char>" tokens back into runs.
//   - Runs exposes the run decomposition Encode works from.
//
// Examples:
//
//	"aaa"                      → "3a"
//	"heloooooooo there"        → "hel8o there"
//	"footloose and fancy free" → "f2otl2ose and fancy fr2e"
//
// Guarantees:
//
//   - Validation runs before encoding; the first invalid byte fails the
//     call with ErrInvalidCharacter and no partial output.
//   - Round-trip: Decode(Encode(s)) == s for every valid s.
//   - Pure and reentrant: safe for concurrent use without locking.
//
// Complexity:
//
//   - Encode, Runs: O(n) time, O(n) memory.
//   - Decode:       O(n + m) time, O(m) memory (m = decoded length).
//
// Errors:
//
//   - ErrInvalidCharacter: a byte outside 'a'..'z' and ' '.
//   - ErrMalformed:        a count that is not followed by a character,
//     has a leading zero, or is smaller than 2.
//   - ErrTooLarge:         decoded output would exceed the configured limit.
package rle
