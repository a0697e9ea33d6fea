// Package app runs one full build: read the raw rows, resolve the week
// label, load the rate table, aggregate, and write the report. Each run
// is a self-contained batch; nothing persists between runs.
package app

import (
	"fmt"

	"github.com/cryback/amglabor/internal/config"
	"github.com/cryback/amglabor/internal/ingest"
	"github.com/cryback/amglabor/internal/logger"
	"github.com/cryback/amglabor/internal/rates"
	"github.com/cryback/amglabor/internal/report"
)

// Run executes one build per cfg.Build. All fatal conditions (absent
// input, empty input, unresolvable week label) surface before anything
// is written, so a failed run never leaves a partial artifact behind.
func Run(cfg *config.Config) error {
	b := cfg.Build

	rows, err := ingest.Read(b.Input, b.Sheet)
	if err != nil {
		return fmt.Errorf("reading input %s: %w", b.Input, err)
	}
	weekOf, err := report.ResolveWeekOf(rows, b.WeekOf)
	if err != nil {
		return err
	}
	table := rates.Load(b.Rates)

	rep, stats := report.Build(rows, weekOf, table)
	if err := rep.Write(b.Output); err != nil {
		return err
	}
	if b.Chart != "" {
		if err := report.WriteChart(rep, b.Chart); err != nil {
			logger.Warnf("chart render failed, report artifact kept: %v", err)
		} else {
			logger.Infof("chart written to %s", b.Chart)
		}
	}

	logger.Infof("wrote %s: week of %s, %d parks, %d rows (%d skipped, %d costs derived, %d pcts derived)",
		b.Output, weekOf, len(rep.Parks), stats.Rows, stats.Skipped, stats.DerivedCost, stats.DerivedPct)
	return nil
}
