package report

import (
	"errors"
	"sort"
	"strings"

	"github.com/cryback/amglabor/internal/ingest"
	"github.com/cryback/amglabor/internal/logger"
	"github.com/cryback/amglabor/internal/normalize"
	"github.com/cryback/amglabor/internal/rates"
)

// ErrNoWeekOf marks a run where no row carried a week label and no
// override was given. It is one of the run's fatal conditions.
var ErrNoWeekOf = errors.New("no weekOf value found in any row and no override given")

// Stats summarizes one Build pass for the run log.
type Stats struct {
	Rows        int
	Skipped     int
	DerivedCost int
	DerivedPct  int
}

type dayKey struct {
	park string
	dow  string
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Build aggregates raw rows into a Report. Rows process in input order;
// a later row for the same (park, day) replaces the earlier one whole,
// no merging. Rows without a park name or with an unrecognizable day
// label are skipped with a warning and never reach the output.
func Build(rows []ingest.Row, weekOf string, table rates.Table) (*Report, Stats) {
	stats := Stats{Rows: len(rows)}
	records := make(map[dayKey]DayRecord)
	parks := make(map[string]bool)

	for i, row := range rows {
		park := row.First(ingest.ParkColumns...)
		if park == "" {
			logger.Warnf("skipping row %d: no park name (%s)", i+1, row)
			stats.Skipped++
			continue
		}
		dow := normalize.Day(row.First(ingest.DayColumns...))
		if !normalize.IsDay(dow) {
			logger.Warnf("skipping row %d: unrecognized day %q (%s)", i+1, row.First(ingest.DayColumns...), row)
			stats.Skipped++
			continue
		}

		// Hours, cost and revenue are non-negative in the output; a
		// negative cell is as unusable as an unparsable one and lands
		// on zero the same way.
		hours := clampZero(normalize.Round2(normalize.Number(row["hours"])))
		cost := clampZero(normalize.Round2(normalize.Number(row["cost"])))
		revenue := clampZero(normalize.Round2(normalize.Number(row.First(ingest.RevenueColumns...))))
		pct := normalize.Round2(normalize.Percent(row["pct"]))

		// A blank or unparsable cost cell lands here as zero; with
		// worked hours and a known rate the cost is recoverable.
		if cost == 0 && hours > 0 {
			if rate, ok := table.Rate(park); ok {
				cost = normalize.Round2(hours * rate)
				stats.DerivedCost++
			}
		}
		// Same for the percentage, once cost (possibly just derived)
		// and revenue are both known.
		if pct == 0 && cost > 0 && revenue > 0 {
			pct = normalize.Round2(cost / revenue * 100)
			stats.DerivedPct++
		}

		parks[park] = true
		records[dayKey{park, dow}] = DayRecord{
			Dow:     dow,
			Hours:   hours,
			Cost:    cost,
			Revenue: revenue,
			Pct:     pct,
		}
	}

	report := &Report{WeekOf: weekOf, Parks: make(map[string]*ParkDays, len(parks))}
	for park := range parks {
		week := &ParkDays{Days: make([]DayRecord, 0, len(normalize.DayOrder))}
		for _, dow := range normalize.DayOrder {
			rec, ok := records[dayKey{park, dow}]
			if !ok {
				rec = DayRecord{Dow: dow}
			}
			week.Days = append(week.Days, rec)
		}
		report.Parks[park] = week
	}
	return report, stats
}

// ResolveWeekOf picks the report's single week label. A non-blank
// override wins verbatim. Otherwise the most frequent non-empty week
// value across all rows is chosen; ties resolve to the value that
// appeared first in input order. Ties are expected in hand-edited
// sheets and are not an error — only a sheet with no week value at all
// is fatal.
func ResolveWeekOf(rows []ingest.Row, override string) (string, error) {
	if strings.TrimSpace(override) != "" {
		return override, nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, row := range rows {
		v := row.First(ingest.WeekColumns...)
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			firstSeen[v] = i
		}
		counts[v]++
	}
	if len(counts) == 0 {
		return "", ErrNoWeekOf
	}

	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Slice(values, func(a, b int) bool {
		if counts[values[a]] != counts[values[b]] {
			return counts[values[a]] > counts[values[b]]
		}
		return firstSeen[values[a]] < firstSeen[values[b]]
	})
	return values[0], nil
}
