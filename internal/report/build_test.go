package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryback/amglabor/internal/ingest"
	"github.com/cryback/amglabor/internal/normalize"
	"github.com/cryback/amglabor/internal/rates"
)

func TestBuildSevenDaysPerPark(t *testing.T) {
	rows := []ingest.Row{
		{"park": "Adventure Cove", "dow": "Mon", "hours": "10.5"},
	}
	rep, stats := Build(rows, "2025-09-01", nil)

	require.Contains(t, rep.Parks, "Adventure Cove")
	days := rep.Parks["Adventure Cove"].Days
	require.Len(t, days, 7)
	for i, dow := range normalize.DayOrder {
		assert.Equal(t, dow, days[i].Dow)
	}
	assert.Equal(t, 10.5, days[0].Hours)
	for _, rec := range days[1:] {
		assert.Equal(t, DayRecord{Dow: rec.Dow}, rec, "unseen days must be zero-filled")
	}
	assert.Equal(t, Stats{Rows: 1}, stats)
}

func TestBuildCostAndPctDerivation(t *testing.T) {
	table := rates.Table{"A": 15.0}

	t.Run("cost from hours and rate", func(t *testing.T) {
		rows := []ingest.Row{{"park": "A", "dow": "Mon", "hours": "10", "cost": ""}}
		rep, stats := Build(rows, "w", table)
		assert.Equal(t, 150.0, rep.Parks["A"].Days[0].Cost)
		assert.Equal(t, 1, stats.DerivedCost)
	})

	t.Run("pct from derived cost and revenue", func(t *testing.T) {
		rows := []ingest.Row{{"park": "A", "dow": "Mon", "hours": "10", "cost": "", "revenue": "300", "pct": ""}}
		rep, stats := Build(rows, "w", table)
		day := rep.Parks["A"].Days[0]
		assert.Equal(t, 150.0, day.Cost)
		assert.Equal(t, 50.0, day.Pct)
		assert.Equal(t, 1, stats.DerivedPct)
	})

	t.Run("explicit cost wins over the rate table", func(t *testing.T) {
		rows := []ingest.Row{{"park": "A", "dow": "Mon", "hours": "10", "cost": "$99.00"}}
		rep, _ := Build(rows, "w", table)
		assert.Equal(t, 99.0, rep.Parks["A"].Days[0].Cost)
	})

	t.Run("no rate means no derivation", func(t *testing.T) {
		rows := []ingest.Row{{"park": "B", "dow": "Mon", "hours": "10", "cost": ""}}
		rep, stats := Build(rows, "w", table)
		assert.Equal(t, 0.0, rep.Parks["B"].Days[0].Cost)
		assert.Equal(t, 0, stats.DerivedCost)
	})

	t.Run("zero hours means no derivation", func(t *testing.T) {
		rows := []ingest.Row{{"park": "A", "dow": "Mon", "hours": "0", "cost": ""}}
		rep, _ := Build(rows, "w", table)
		assert.Equal(t, 0.0, rep.Parks["A"].Days[0].Cost)
	})

	t.Run("negative cells coerce to zero like unparsable ones", func(t *testing.T) {
		rows := []ingest.Row{{"park": "A", "dow": "Mon", "hours": "-3", "cost": "-$42", "revenue": "-100"}}
		rep, stats := Build(rows, "w", table)
		day := rep.Parks["A"].Days[0]
		assert.Equal(t, DayRecord{Dow: "Mon"}, day)
		assert.Equal(t, 0, stats.DerivedCost, "zeroed hours must not trigger derivation")
	})

	t.Run("explicit pct is never recomputed", func(t *testing.T) {
		rows := []ingest.Row{{"park": "A", "dow": "Mon", "hours": "10", "cost": "150", "revenue": "300", "pct": "12.72%"}}
		rep, _ := Build(rows, "w", table)
		assert.Equal(t, 12.72, rep.Parks["A"].Days[0].Pct)
	})
}

func TestBuildSkipsAndLastWriteWins(t *testing.T) {
	t.Run("rows without a park are skipped", func(t *testing.T) {
		rows := []ingest.Row{
			{"park": "   ", "dow": "Mon", "hours": "8"},
			{"dow": "Tue", "hours": "8"},
			{"park": "Bayside", "dow": "Wed", "hours": "8"},
		}
		rep, stats := Build(rows, "w", nil)
		assert.Equal(t, 2, stats.Skipped)
		assert.Len(t, rep.Parks, 1)
	})

	t.Run("rows with an unrecognized day are skipped", func(t *testing.T) {
		rows := []ingest.Row{
			{"park": "Bayside", "dow": "xyz", "hours": "8"},
			{"park": "Bayside", "dow": "Mond", "hours": "8"},
		}
		rep, stats := Build(rows, "w", nil)
		assert.Equal(t, 1, stats.Skipped, "fuzzy fallback accepts Mond, rejects xyz")
		assert.Equal(t, 8.0, rep.Parks["Bayside"].Days[0].Hours)
	})

	t.Run("later rows replace earlier rows whole", func(t *testing.T) {
		rows := []ingest.Row{
			{"park": "Bayside", "dow": "Mon", "hours": "8", "revenue": "500"},
			{"park": "Bayside", "dow": "monday", "hours": "6"},
		}
		rep, _ := Build(rows, "w", nil)
		day := rep.Parks["Bayside"].Days[0]
		assert.Equal(t, 6.0, day.Hours)
		assert.Equal(t, 0.0, day.Revenue, "no merge: the replacement row's blank revenue stands")
	})

	t.Run("column synonyms", func(t *testing.T) {
		rows := []ingest.Row{
			{"Park": "Bayside", "day": "2", "sales": "$1,234.50"},
		}
		rep, _ := Build(rows, "w", nil)
		assert.Equal(t, 1234.5, rep.Parks["Bayside"].Days[1].Revenue)
	})
}

func TestResolveWeekOf(t *testing.T) {
	t.Run("override wins verbatim", func(t *testing.T) {
		got, err := ResolveWeekOf(nil, "2025-09-08")
		require.NoError(t, err)
		assert.Equal(t, "2025-09-08", got)
	})

	t.Run("most frequent value wins", func(t *testing.T) {
		rows := []ingest.Row{
			{"weekOf": "2025-09-01"},
			{"weekOf": "2025-09-08"},
			{"weekOf": "2025-09-08"},
		}
		got, err := ResolveWeekOf(rows, "")
		require.NoError(t, err)
		assert.Equal(t, "2025-09-08", got)
	})

	t.Run("ties break to first occurrence", func(t *testing.T) {
		rows := []ingest.Row{
			{"weekOf": "2025-09-08"},
			{"weekOf": "2025-09-01"},
			{"weekOf": "2025-09-01"},
			{"weekOf": "2025-09-08"},
		}
		got, err := ResolveWeekOf(rows, "")
		require.NoError(t, err)
		assert.Equal(t, "2025-09-08", got)
	})

	t.Run("week_of synonym and blank cells", func(t *testing.T) {
		rows := []ingest.Row{
			{"week_of": "2025-09-01"},
			{"weekOf": ""},
			{},
		}
		got, err := ResolveWeekOf(rows, "")
		require.NoError(t, err)
		assert.Equal(t, "2025-09-01", got)
	})

	t.Run("no value anywhere is fatal", func(t *testing.T) {
		_, err := ResolveWeekOf([]ingest.Row{{"park": "A"}}, "")
		assert.ErrorIs(t, err, ErrNoWeekOf)
	})
}
