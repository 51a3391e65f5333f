// Package datefmt normalizes free-form dates to strict YYYY-MM-DD.
//
// Accepted layouts (leading and trailing whitespace is ignored):
//
//	Y-M-D            "2022-1-15"
//	M/D/Y            "1/15/2022"
//	MONTH DAY, YEAR  "January 15, 2022"  (month name, any case)
//	MON DAY, YEAR    "jan 15, 2022"      (three-letter abbreviation, any case)
//
// Layout selection is by delimiter, in a fixed order: an input containing
// '-' is parsed as Y-M-D; otherwise one containing '/' is parsed as M/D/Y;
// otherwise whitespace-separated tokens select the month-word layouts.
// An input that would fit several layouts is never an ambiguity error; the
// first layout in that order is used.
//
// Ranges:
//
//   - day   ∈ [1, 31]  (no month-length or leap-year checks)
//   - month ∈ [1, 12]
//   - year  ∈ [1900, 2099]
//
// Every failure, whether structural, non-numeric, unknown month or out of
// range, is reported as ErrInvalidFormat. Use errors.Is to detect it; the
// wrapped message names the offending component.
package datefmt
