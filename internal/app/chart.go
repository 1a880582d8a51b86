package app

import (
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/config"
	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/style"
)

// Bar fills per driver slot, one warm and one cool tone.
var (
	fillA = drawing.Color{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF}
	fillB = drawing.Color{R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF}
)

var chartLabels = map[string]string{
	style.MetricBrakingAggressiveness: "Braking (G)",
	style.MetricThrottleSmoothness:    "Throttle (pp)",
	style.MetricCorneringConsistency:  "Cornering (km/h)",
	style.MetricGearShiftFrequency:    "Shifts/min",
}

// writeComparisonPNG renders the four metrics as paired bars, one pair per
// metric, driver A first.
func writeComparisonPNG(path string, cmp style.Comparison, cfg config.ChartConfig) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	styleA := chart.Style{FillColor: fillA, StrokeColor: fillA, StrokeWidth: 0}
	styleB := chart.Style{FillColor: fillB, StrokeColor: fillB, StrokeWidth: 0}

	bars := make([]chart.Value, 0, len(cmp.Rows)*2)
	for _, row := range cmp.Rows {
		label := chartLabels[row.Metric]
		bars = append(bars,
			chart.Value{Label: cmp.A.Driver.Acronym + " " + label, Value: row.A, Style: styleA},
			chart.Value{Label: cmp.B.Driver.Acronym + " " + label, Value: row.B, Style: styleB},
		)
	}

	graph := chart.BarChart{
		Title:    cmp.A.Driver.Acronym + " vs " + cmp.B.Driver.Acronym + " style fingerprint",
		Width:    cfg.Width,
		Height:   cfg.Height,
		BarWidth: 48,
		Bars:     bars,
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return chart.FloatValueFormatterWithFormat(v, "%.2f")
			},
		},
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
