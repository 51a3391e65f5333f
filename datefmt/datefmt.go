package datefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// maxDigits bounds numeric tokens so conversion cannot overflow.
const maxDigits = 9

// Reformat parses input in any accepted layout and returns it as YYYY-MM-DD.
//
// Example:
//
//	s, err := datefmt.Reformat("January 15, 2022") // "2022-01-15"
//
// Complexity: O(n).
func Reformat(input string) (string, error) {
	d, _, err := Parse(input)
	if err != nil {
		return "", err
	}

	return d.String(), nil
}

// DetectLayout picks the layout an input would be parsed with, using only
// delimiter precedence: '-', then '/', then whitespace-separated tokens.
// The month-word layouts are told apart by the length of the first token.
// It does not validate the input.
func DetectLayout(input string) Layout {
	s := strings.TrimSpace(input)
	switch {
	case strings.Contains(s, "-"):
		return LayoutISO
	case strings.Contains(s, "/"):
		return LayoutUS
	}

	tokens := strings.Fields(s)
	if len(tokens) < 2 {
		return LayoutUnknown
	}
	if len(tokens[0]) == 3 {
		return LayoutMonthAbbr
	}

	return LayoutMonthName
}

// Parse extracts and validates the date in input.
// It returns the Date, the Layout it matched, and ErrInvalidFormat (wrapped
// with the failing component) on any failure. The Layout is reported even
// when validation fails, as long as a delimiter rule matched.
func Parse(input string) (Date, Layout, error) {
	s := strings.TrimSpace(input)
	layout := DetectLayout(s)

	var (
		c   components
		err error
	)
	switch layout {
	case LayoutISO:
		var p [3]string
		if p, err = splitNumeric(s, "-"); err == nil {
			c = components{year: p[0], month: p[1], day: p[2]}
		}
	case LayoutUS:
		var p [3]string
		if p, err = splitNumeric(s, "/"); err == nil {
			c = components{month: p[0], day: p[1], year: p[2]}
		}
	case LayoutMonthName, LayoutMonthAbbr:
		c, err = splitWords(s)
	default:
		err = invalidf("no layout matches %q", s)
	}
	if err != nil {
		return Date{}, layout, err
	}

	d, err := c.resolve()
	if err != nil {
		return Date{}, layout, err
	}

	return d, layout, nil
}

// splitNumeric splits s into exactly three non-empty parts on sep.
func splitNumeric(s, sep string) ([3]string, error) {
	var out [3]string
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return out, invalidf("want 3 %q-separated parts, got %d", sep, len(parts))
	}
	for i, p := range parts {
		if p == "" {
			return out, invalidf("empty component at position %d", i+1)
		}
		out[i] = p
	}

	return out, nil
}

// splitWords handles "MONTH DAY, YEAR". The month token is translated to
// its two-digit form here so resolve treats every layout the same way.
func splitWords(s string) (components, error) {
	head, year, ok := strings.Cut(s, ",")
	if !ok {
		return components{}, invalidf("missing comma before year in %q", s)
	}
	tokens := strings.Fields(head)
	if len(tokens) != 2 {
		return components{}, invalidf("want MONTH DAY before comma, got %q", strings.TrimSpace(head))
	}
	mm, ok := monthDigits(tokens[0])
	if !ok {
		return components{}, invalidf("unknown month %q", tokens[0])
	}

	return components{year: strings.TrimSpace(year), month: mm, day: tokens[1]}, nil
}

// resolve converts the raw tokens and checks day, month and year in that
// order. The first failing check wins.
func (c components) resolve() (Date, error) {
	day, err := inRange("day", c.day, MinDay, MaxDay)
	if err != nil {
		return Date{}, err
	}
	month, err := inRange("month", c.month, MinMonth, MaxMonth)
	if err != nil {
		return Date{}, err
	}
	year, err := inRange("year", c.year, MinYear, MaxYear)
	if err != nil {
		return Date{}, err
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// inRange parses an all-digit token and checks it lies in [lo, hi].
func inRange(name, tok string, lo, hi int) (int, error) {
	if tok == "" || len(tok) > maxDigits {
		return 0, invalidf("%s %q is not a number", name, tok)
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, invalidf("%s %q is not a number", name, tok)
		}
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, invalidf("%s %q is not a number", name, tok)
	}
	if v < lo || v > hi {
		return 0, invalidf("%s %d out of range [%d,%d]", name, v, lo, hi)
	}

	return v, nil
}

// invalidf wraps ErrInvalidFormat with a formatted detail.
func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidFormat, fmt.Sprintf(format, args...))
}
