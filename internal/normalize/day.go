// Package normalize converts raw spreadsheet cell values into canonical
// forms. Cells arrive as whatever the export produced: currency strings
// ("$1,234.50"), percent strings ("12.72%"), Excel percent-format
// fractions (0.1272), day labels in any spelling or case, or nothing at
// all. Every function here absorbs that noise without returning errors;
// unparsable numeric input coerces to zero because blank and malformed
// cells are routine in hand-edited sheets.
package normalize

import "strings"

// DayOrder is the fixed Mon→Sun output order for day records.
var DayOrder = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// dayAliases maps tolerated day spellings to canonical labels. Numeric
// strings follow ISO weekday numbering, 1=Monday.
var dayAliases = map[string]string{
	"monday": "Mon", "mon": "Mon", "1": "Mon",
	"tuesday": "Tue", "tue": "Tue", "tues": "Tue", "2": "Tue",
	"wednesday": "Wed", "wed": "Wed", "3": "Wed",
	"thursday": "Thu", "thu": "Thu", "thur": "Thu", "thurs": "Thu", "4": "Thu",
	"friday": "Fri", "fri": "Fri", "5": "Fri",
	"saturday": "Sat", "sat": "Sat", "6": "Sat",
	"sunday": "Sun", "sun": "Sun", "7": "Sun",
}

// Day normalizes an arbitrary day-of-week label to one of the seven
// canonical three-letter labels. Lookup is two-tier: the alias table
// first, then a fuzzy fallback that title-cases the first three runes of
// the trimmed input so near-miss spellings like "Mond" still land on
// "Mon". The fallback can produce garbage for genuinely unknown labels
// ("xyz" → "Xyz"), so callers must gate the result with IsDay before
// accepting it.
func Day(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := dayAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return titleFirst3(trimmed)
}

// IsDay reports whether s is one of the seven canonical labels.
func IsDay(s string) bool {
	for _, d := range DayOrder {
		if s == d {
			return true
		}
	}
	return false
}

func titleFirst3(s string) string {
	runes := []rune(s)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	head := strings.ToUpper(string(runes[:1]))
	return head + strings.ToLower(string(runes[1:]))
}
