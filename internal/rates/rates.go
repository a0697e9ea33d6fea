// Package rates loads the auxiliary park→hourly-rate table used to
// backfill missing cost cells. The table is optional: every failure mode
// (absent file, parse error, unrecognized shape) degrades to an empty
// table and a logged diagnostic instead of aborting the run, because the
// only thing a missing table costs is the cost-derivation fallback.
package rates

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/cryback/amglabor/internal/logger"
	"github.com/cryback/amglabor/internal/normalize"
)

// Table maps park name to hourly rate. Built once per run, read-only
// during aggregation.
type Table map[string]float64

// Reserved top-level keys in the flat-map shape. These carry sheet-wide
// metadata, not park rates, and are matched by exact name.
var reservedKeys = map[string]struct{}{
	"target_percentage": {},
	"last_updated":      {},
	"thresholds":        {},
}

// Rate returns the hourly rate for a park. Only positive rates count;
// a zero, negative, or absent entry reports false so callers skip the
// cost derivation instead of deriving a zero cost.
func (t Table) Rate(park string) (float64, bool) {
	r, ok := t[park]
	if !ok || r <= 0 {
		return 0, false
	}
	return r, true
}

// Load reads the rate table at path. Two document shapes are accepted: a
// list of {name, rate|value} records, or a flat name→rate mapping whose
// reserved meta keys are skipped. Files ending in .yaml/.yml are decoded
// as YAML and re-encoded to JSON so both formats share one shape walker.
// Load never fails: any problem logs a warning and yields an empty table.
func Load(path string) Table {
	table := Table{}
	if strings.TrimSpace(path) == "" {
		return table
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warnf("rate table unavailable, cost derivation disabled: %v", err)
		return table
	}
	doc, err := toJSON(path, raw)
	if err != nil {
		logger.Warnf("rate table unreadable (%s), cost derivation disabled: %v", path, err)
		return table
	}
	if !gjson.ValidBytes(doc) {
		logger.Warnf("rate table is not valid JSON (%s), cost derivation disabled", path)
		return table
	}

	parsed := gjson.ParseBytes(doc)
	switch {
	case parsed.IsArray():
		parsed.ForEach(func(_, rec gjson.Result) bool {
			name := strings.TrimSpace(rec.Get("name").String())
			if name == "" {
				logger.Warnf("skipping rate record without a name: %s", rec.Raw)
				return true
			}
			table.set(name, rateField(rec))
			return true
		})
	case parsed.IsObject():
		parsed.ForEach(func(key, value gjson.Result) bool {
			name := strings.TrimSpace(key.String())
			if _, meta := reservedKeys[name]; meta {
				return true
			}
			if name == "" {
				return true
			}
			table.set(name, value.Value())
			return true
		})
	default:
		logger.Warnf("rate table has an unrecognized top-level shape (%s), cost derivation disabled", path)
	}
	return table
}

func (t Table) set(name string, raw any) {
	rate := normalize.Number(raw)
	if rate < 0 {
		logger.Warnf("dropping negative rate for %q: %v", name, raw)
		return
	}
	t[name] = rate
}

// rateField picks the numeric field of a record shape entry, tolerating
// both "rate" and "value" spellings.
func rateField(rec gjson.Result) any {
	if r := rec.Get("rate"); r.Exists() {
		return r.Value()
	}
	return rec.Get("value").Value()
}

func toJSON(path string, raw []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return json.Marshal(v)
	default:
		return raw, nil
	}
}
