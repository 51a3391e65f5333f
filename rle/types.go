package rle

import "errors"

// Sentinel errors for rle operations.
var (
	// ErrInvalidCharacter indicates a byte that is neither a lowercase ASCII letter nor a space.
	ErrInvalidCharacter = errors.New("rle: only lowercase letters and spaces are allowed")
	// ErrMalformed indicates an encoded string that no Encode call could have produced.
	ErrMalformed = errors.New("rle: malformed encoded input")
	// ErrTooLarge indicates the decoded output would exceed the configured maximum length.
	ErrTooLarge = errors.New("rle: decoded output too large")
)

// DefaultMaxDecodedLen bounds Decode output unless WithMaxLen overrides it.
const DefaultMaxDecodedLen = 1 << 20

// Run is a maximal sequence of identical characters.
// Len is always ≥ 1.
type Run struct {
	Char byte
	Len  int
}

// DecodeOption customizes Decode.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	maxLen int
}

// WithMaxLen caps the decoded length at n bytes.
// Panics if n <= 0.
func WithMaxLen(n int) DecodeOption {
	if n <= 0 {
		panic("rle: WithMaxLen(n<=0)")
	}
	return func(c *decodeConfig) {
		c.maxLen = n
	}
}

func newDecodeConfig(opts ...DecodeOption) decodeConfig {
	cfg := decodeConfig{maxLen: DefaultMaxDecodedLen}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// isValid reports whether c belongs to the encodable alphabet.
func isValid(c byte) bool {
	return (c >= 'a' && c <= 'z') || c == ' '
}
