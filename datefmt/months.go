package datefmt

import "strings"

// months maps lowercase full names and three-letter abbreviations to the
// two-digit month. "may" serves as both.
var months = map[string]string{
	"january": "01", "jan": "01",
	"february": "02", "feb": "02",
	"march": "03", "mar": "03",
	"april": "04", "apr": "04",
	"may": "05",
	"june": "06", "jun": "06",
	"july": "07", "jul": "07",
	"august": "08", "aug": "08",
	"september": "09", "sep": "09",
	"october": "10", "oct": "10",
	"november": "11", "nov": "11",
	"december": "12", "dec": "12",
}

// monthDigits returns the two-digit month for a name or abbreviation.
func monthDigits(name string) (string, bool) {
	mm, ok := months[strings.ToLower(name)]

	return mm, ok
}

// MonthNumber resolves a case-insensitive month name or three-letter
// abbreviation to 1..12.
func MonthNumber(name string) (int, bool) {
	mm, ok := monthDigits(name)
	if !ok {
		return 0, false
	}

	return int(mm[0]-'0')*10 + int(mm[1]-'0'), true
}
