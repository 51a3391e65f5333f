package rle

import (
	"fmt"
	"strconv"
	"strings"
)

// validate returns ErrInvalidCharacter wrapped with the first offending byte.
func validate(input string) error {
	for i := 0; i < len(input); i++ {
		if !isValid(input[i]) {
			return fmt.Errorf("%w: %q at index %d", ErrInvalidCharacter, input[i], i)
		}
	}

	return nil
}

// Runs splits input into maximal runs of identical characters.
// Returns ErrInvalidCharacter before producing any run if input contains
// a byte outside the alphabet. Empty input yields a nil slice.
// Complexity: O(n) time, O(r) memory (r = number of runs).
func Runs(input string) ([]Run, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	if input == "" {
		return nil, nil
	}

	var runs []Run
	cur := Run{Char: input[0], Len: 1}
	for i := 1; i < len(input); i++ {
		if input[i] == cur.Char {
			cur.Len++
			continue
		}
		// Differing character closes the current run.
		runs = append(runs, cur)
		cur = Run{Char: input[i], Len: 1}
	}
	runs = append(runs, cur)

	return runs, nil
}

// Encode run-length encodes input.
//
// Every run of length ≥ 2 becomes its decimal length followed by the
// character; a run of length 1 is emitted unchanged.
//
// Example:
//
//	out, err := rle.Encode("heloooooooo there") // "hel8o there"
//
// Complexity: O(n) time, O(n) memory.
func Encode(input string) (string, error) {
	runs, err := Runs(input)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range runs {
		appendRun(&b, r)
	}

	return b.String(), nil
}

// appendRun writes the encoded form of r to b.
func appendRun(b *strings.Builder, r Run) {
	if r.Len > 1 {
		b.WriteString(strconv.Itoa(r.Len))
	}
	b.WriteByte(r.Char)
}

// Decode expands an Encode result back into the original string.
//
// A token is either a bare alphabet character or a decimal count ≥ 2
// (no leading zero) immediately followed by an alphabet character.
// The decoded length is checked against the configured limit
// (DefaultMaxDecodedLen unless WithMaxLen is given) before any run is
// materialized.
//
// Complexity: O(n + m) time, O(m) memory (m = decoded length).
func Decode(encoded string, opts ...DecodeOption) (string, error) {
	cfg := newDecodeConfig(opts...)

	runs, total, err := parseTokens(encoded, cfg.maxLen)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(total)
	for _, r := range runs {
		for j := 0; j < r.Len; j++ {
			b.WriteByte(r.Char)
		}
	}

	return b.String(), nil
}

// parseTokens scans encoded into runs and returns their summed length.
func parseTokens(encoded string, maxLen int) ([]Run, int, error) {
	var (
		runs  []Run
		total int
	)
	for i := 0; i < len(encoded); {
		start := i
		for i < len(encoded) && encoded[i] >= '0' && encoded[i] <= '9' {
			i++
		}
		digits := encoded[start:i]

		if i == len(encoded) {
			// Only a dangling count can end the input here.
			return nil, 0, fmt.Errorf("%w: count %q at index %d has no character", ErrMalformed, digits, start)
		}
		c := encoded[i]
		if !isValid(c) {
			return nil, 0, fmt.Errorf("%w: %q at index %d", ErrInvalidCharacter, c, i)
		}
		i++

		n := 1
		if digits != "" {
			if digits[0] == '0' {
				return nil, 0, fmt.Errorf("%w: count %q at index %d has a leading zero", ErrMalformed, digits, start)
			}
			v, err := strconv.Atoi(digits)
			if err != nil || v > maxLen {
				return nil, 0, fmt.Errorf("%w: count %q at index %d exceeds %d", ErrTooLarge, digits, start, maxLen)
			}
			if v < 2 {
				return nil, 0, fmt.Errorf("%w: count %q at index %d must be at least 2", ErrMalformed, digits, start)
			}
			n = v
		}

		total += n
		if total > maxLen {
			return nil, 0, fmt.Errorf("%w: exceeds %d bytes", ErrTooLarge, maxLen)
		}
		runs = append(runs, Run{Char: c, Len: n})
	}

	return runs, total, nil
}
