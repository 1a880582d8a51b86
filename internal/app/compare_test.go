package app

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/style"
	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/telemetry"
)

func TestFormatLapTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1:31.457", formatLapTime(91*time.Second+457*time.Millisecond))
	assert.Equal(t, "1:05.000", formatLapTime(65*time.Second))
	assert.Equal(t, "2:00.100", formatLapTime(2*time.Minute+100*time.Millisecond))
	assert.Equal(t, "-", formatLapTime(0))
}

func testComparison() style.Comparison {
	a := &style.Profile{
		Driver: telemetry.Driver{Number: 1, Acronym: "VER"},
		Lap:    telemetry.Lap{Number: 12, Duration: 80 * time.Second},
		Metrics: map[string]float64{
			style.MetricBrakingAggressiveness: 1.4,
			style.MetricThrottleSmoothness:    8.0,
			style.MetricCorneringConsistency:  4.0,
			style.MetricGearShiftFrequency:    40.0,
		},
	}
	b := &style.Profile{
		Driver: telemetry.Driver{Number: 44, Acronym: "HAM"},
		Lap:    telemetry.Lap{Number: 9, Duration: 81 * time.Second},
		Metrics: map[string]float64{
			style.MetricBrakingAggressiveness: 1.2,
			style.MetricThrottleSmoothness:    6.0,
			style.MetricCorneringConsistency:  5.0,
			style.MetricGearShiftFrequency:    45.0,
		},
	}
	return style.Compare(a, b, style.DefaultDirections())
}

func TestRenderComparison(t *testing.T) {
	t.Parallel()

	session := telemetry.Session{Name: "Qualifying", CountryName: "Italy", CircuitName: "Monza", Year: 2023}

	var out strings.Builder
	renderComparison(&out, session, testComparison())
	rendered := out.String()

	assert.Contains(t, rendered, "Monza")
	assert.Contains(t, rendered, "Braking aggressiveness (G)")
	assert.Contains(t, rendered, "1:20.000")
	assert.Contains(t, rendered, "1:21.000")
	assert.Contains(t, rendered, "Most aggressive braker: VER")
	assert.Contains(t, rendered, "Smoothest throttle: HAM")
	assert.Contains(t, rendered, "Most consistent cornering: VER")
	assert.Contains(t, rendered, "Busiest gearbox: HAM")
}

func TestRenderInsightsOrdersLeaderFirst(t *testing.T) {
	t.Parallel()

	insights := renderInsights(testComparison())
	assert.Contains(t, insights, "Most aggressive braker: VER (1.40 G vs 1.20 G)")
	assert.Contains(t, insights, "Smoothest throttle: HAM (6.00 pp vs 8.00 pp)")
}
