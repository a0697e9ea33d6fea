package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/cryback/amglabor/internal/normalize"
)

const (
	chartWidthPx  = 1000
	chartHeightPx = 420
)

// WriteChart renders the week as a standalone HTML page with one bar
// chart per measure (hours, then cost), X axis Mon→Sun and one series
// per park. Rendering is opt-in and decorative: callers treat a failure
// here as a warning, never as a reason to discard the JSON artifact.
func WriteChart(r *Report, path string) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		buildMeasureChart(r, "Hours", func(rec DayRecord) float64 { return rec.Hours }),
		buildMeasureChart(r, "Cost", func(rec DayRecord) float64 { return rec.Cost }),
	)

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func buildMeasureChart(r *Report, measure string, pick func(DayRecord) float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  fmt.Sprintf("%dpx", chartWidthPx),
			Height: fmt.Sprintf("%dpx", chartHeightPx),
		}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s, week of %s", measure, r.WeekOf), Left: "left"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	bar.SetXAxis(normalize.DayOrder[:])

	for _, park := range sortedParks(r) {
		week := r.Parks[park]
		data := make([]opts.BarData, len(week.Days))
		for i, rec := range week.Days {
			data[i] = opts.BarData{Value: pick(rec)}
		}
		bar.AddSeries(park, data)
	}
	return bar
}

func sortedParks(r *Report) []string {
	parks := make([]string, 0, len(r.Parks))
	for name := range r.Parks {
		parks = append(parks, name)
	}
	sort.Strings(parks)
	return parks
}
