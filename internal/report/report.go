// Package report assembles normalized rows into the canonical weekly
// report: one entry per park, exactly seven day records per park in
// Mon→Sun order, missing days zero-filled. The emitted JSON is
// deterministic so identical input produces byte-identical output.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DayRecord is one park's one day of activity, schema-complete: every
// field is present even when zero-filled.
type DayRecord struct {
	Dow     string  `json:"dow"`
	Hours   float64 `json:"hours"`
	Cost    float64 `json:"cost"`
	Revenue float64 `json:"revenue"`
	Pct     float64 `json:"pct"`
}

// ParkDays holds a park's full week, always seven records Mon→Sun.
type ParkDays struct {
	Days []DayRecord `json:"days"`
}

// Report is the output document. Parks marshal in sorted key order
// (encoding/json sorts map keys), which together with fixed struct
// field order makes the encoding deterministic.
type Report struct {
	WeekOf string               `json:"weekOf"`
	Parks  map[string]*ParkDays `json:"parks"`
}

// Encode renders the report as 2-space-indented JSON with a trailing
// newline, the diff-friendly form downstream consumers expect.
func (r *Report) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return append(data, '\n'), nil
}

// Write encodes the report, self-checks it against the embedded schema,
// and writes it to path. The schema check runs before the file is
// touched: a report that fails its own schema is a bug, and no partial
// or invalid artifact may reach the output path.
func (r *Report) Write(path string) error {
	data, err := r.Encode()
	if err != nil {
		return err
	}
	if err := Validate(data); err != nil {
		return fmt.Errorf("report failed schema self-check: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
