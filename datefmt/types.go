package datefmt

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the input matches no accepted layout or one of
// its components is out of range.
var ErrInvalidFormat = errors.New("datefmt: invalid date format")

// Accepted component ranges (inclusive).
const (
	MinDay   = 1
	MaxDay   = 31
	MinMonth = 1
	MaxMonth = 12
	MinYear  = 1900
	MaxYear  = 2099
)

// Layout identifies which surface syntax an input was parsed with.
type Layout int

const (
	// LayoutUnknown means no delimiter rule matched.
	LayoutUnknown Layout = iota
	// LayoutISO is Y-M-D.
	LayoutISO
	// LayoutUS is M/D/Y.
	LayoutUS
	// LayoutMonthName is MONTH DAY, YEAR with a full month name.
	LayoutMonthName
	// LayoutMonthAbbr is MON DAY, YEAR with a three-letter abbreviation.
	LayoutMonthAbbr
)

var layoutNames = [...]string{
	LayoutUnknown:   "unknown",
	LayoutISO:       "Y-M-D",
	LayoutUS:        "M/D/Y",
	LayoutMonthName: "MONTH DAY, YEAR",
	LayoutMonthAbbr: "MON DAY, YEAR",
}

// String returns the layout pattern.
func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return fmt.Sprintf("Layout(%d)", int(l))
	}

	return layoutNames[l]
}

// Date is a validated calendar-like triple.
type Date struct {
	Year, Month, Day int
}

// String formats d as zero-padded YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// components holds the raw year, month and day tokens extracted from one
// layout, before conversion and range checks.
type components struct {
	year, month, day string
}
