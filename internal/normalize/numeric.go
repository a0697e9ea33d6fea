package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Number coerces a raw cell value to float64. Numeric types pass through;
// strings are trimmed and stripped of the three formatting characters a
// spreadsheet export inserts ($ , %) before parsing. Blank or unparsable
// input returns 0 — never an error.
func Number(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(t)
	case float32:
		return finite(float64(t))
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case int32:
		return float64(t)
	case uint64:
		return float64(t)
	case json.Number:
		f, _ := t.Float64()
		return finite(f)
	case string:
		return parseCell(t)
	default:
		return 0
	}
}

// Percent coerces a raw cell value to a percent magnitude. On top of
// Number's rules it applies the fraction heuristic: a plain numeric value
// v with 0 < v <= 1 is taken as an Excel percent-format export and scaled
// by 100. The boundary is deliberate and exact — 1.0 becomes 100.0, while
// anything above 1 is already a percent and passes through literally
// (1.01 stays 1.01). Text that carries its own "%" sign skips the
// heuristic entirely: "0.5%" means half a percent, not 50.
func Percent(v any) float64 {
	if s, ok := v.(string); ok {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return 0
		}
		if strings.HasSuffix(trimmed, "%") {
			return Number(trimmed)
		}
		return scaleFraction(Number(trimmed))
	}
	return scaleFraction(Number(v))
}

// Round2 rounds to two decimal places through decimal arithmetic so the
// result is the cents value a spreadsheet shows, not the nearest float.
// Non-finite input collapses to 0 like any other unusable cell.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func scaleFraction(v float64) float64 {
	if v > 0 && v <= 1 {
		return v * 100
	}
	return v
}

func parseCell(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	r := strings.NewReplacer("$", "", ",", "", "%", "")
	f, err := strconv.ParseFloat(strings.TrimSpace(r.Replace(s)), 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
