// Package ingest reads the raw tabular input — the CSV export or the
// Excel workbook it came from — into header-keyed rows. It does no
// normalization beyond whitespace trimming; heterogeneous cell values
// travel onward as the text the spreadsheet produced.
package ingest

import (
	"sort"
	"strings"
)

// Header synonym sets tolerated in the input, in lookup order.
var (
	ParkColumns    = []string{"park", "Park", "location"}
	DayColumns     = []string{"dow", "DOW", "day"}
	WeekColumns    = []string{"weekOf", "WeekOf", "week_of"}
	RevenueColumns = []string{"revenue", "sales"}
)

// Row is one raw input row: trimmed header → trimmed cell text. Missing
// columns are simply absent keys.
type Row map[string]string

// First returns the first non-empty value among the given header
// synonyms.
func (r Row) First(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(r[k]); v != "" {
			return v
		}
	}
	return ""
}

const describeMax = 200

// String renders the row as sorted k=v pairs for diagnostics, capped so
// a pathological row cannot flood the log. Truncation counts runes, not
// bytes, so a multibyte park name never splits into invalid UTF-8.
func (r Row) String() string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+r[k])
	}
	s := strings.Join(parts, ", ")
	if runes := []rune(s); len(runes) > describeMax {
		s = string(runes[:describeMax]) + "..."
	}
	return s
}

func makeRow(header []string, cells []string) Row {
	row := make(Row, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		var v string
		if i < len(cells) {
			v = strings.TrimSpace(cells[i])
		}
		row[h] = v
	}
	return row
}
