package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/style"
	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/telemetry"
)

// metricLabels carry the display name and unit per metric.
var metricLabels = map[string]string{
	style.MetricBrakingAggressiveness: "Braking aggressiveness (G)",
	style.MetricThrottleSmoothness:    "Throttle smoothness (pp)",
	style.MetricCorneringConsistency:  "Cornering consistency (km/h)",
	style.MetricGearShiftFrequency:    "Gear shifts per minute",
}

// Compare profiles two drivers over their fastest laps and renders the
// style comparison. Selecting the same driver twice is rejected before any
// telemetry is fetched.
func (a *App) Compare(ctx context.Context, opts CompareOptions) error {
	codeA := strings.ToUpper(strings.TrimSpace(opts.DriverA))
	codeB := strings.ToUpper(strings.TrimSpace(opts.DriverB))
	if codeA == "" || codeB == "" {
		return errors.New("both --driver-a and --driver-b must be provided")
	}
	if codeA == codeB {
		return fmt.Errorf("cannot compare %s with itself; pick two different drivers", codeA)
	}

	provider, closeProvider := a.newProvider(ctx)
	defer closeProvider()

	session, err := resolveSession(ctx, provider, opts.Year, opts.Meeting, opts.Session)
	if err != nil {
		return err
	}

	drivers, err := provider.Drivers(ctx, session.Key)
	if err != nil {
		return fmt.Errorf("fetch drivers: %w", err)
	}

	driverA, err := findDriver(drivers, codeA)
	if err != nil {
		return err
	}
	driverB, err := findDriver(drivers, codeB)
	if err != nil {
		return err
	}
	// Catches the same driver selected by acronym on one side and car
	// number on the other.
	if driverA.Number == driverB.Number {
		return fmt.Errorf("cannot compare %s with themselves; pick two different drivers", driverA.Acronym)
	}

	profiler := style.NewProfiler(provider, provider, a.Logger)

	// The two profiling calls share no state; run them in parallel.
	type outcome struct {
		profile *style.Profile
		err     error
	}
	results := make([]outcome, 2)
	var wg sync.WaitGroup
	for i, driver := range []telemetry.Driver{driverA, driverB} {
		wg.Add(1)
		go func(i int, driver telemetry.Driver) {
			defer wg.Done()
			profile, err := profiler.Profile(ctx, session.Key, driver)
			results[i] = outcome{profile: profile, err: err}
		}(i, driver)
	}
	wg.Wait()

	// A failed side aborts the whole comparison; a table with one driver
	// missing is worse than no table.
	for i, code := range []string{codeA, codeB} {
		if results[i].err == nil {
			continue
		}
		if errors.Is(results[i].err, style.ErrDriverNotFound) {
			return fmt.Errorf("no analysable lap for %s in this session; try another driver or session", code)
		}
		return fmt.Errorf("profile %s: %w", code, results[i].err)
	}

	comparison := style.Compare(results[0].profile, results[1].profile, style.DefaultDirections())

	renderComparison(os.Stdout, session, comparison)

	if opts.PNGPath != "" {
		if err := writeComparisonPNG(opts.PNGPath, comparison, a.Config.Chart); err != nil {
			return err
		}
		a.Logger.Info().Str("path", opts.PNGPath).Msg("comparison chart written")
	}
	return nil
}

func renderComparison(w io.Writer, session telemetry.Session, cmp style.Comparison) {
	nameA := cmp.A.Driver.Acronym
	nameB := cmp.B.Driver.Acronym

	fmt.Fprintf(w, "%s — %s %d, %s\n\n", session.CircuitName, session.CountryName, session.Year, session.Name)

	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "Metric\t%s\t%s\tDelta\tLeader\n", nameA, nameB)
	for _, row := range cmp.Rows {
		fmt.Fprintf(writer, "%s\t%.2f\t%.2f\t%+.2f\t%s\n",
			metricLabels[row.Metric],
			row.A,
			row.B,
			row.Delta,
			cmp.Leader(row).Driver.Acronym,
		)
	}
	writer.Flush()

	fmt.Fprintf(w, "\nFastest laps: %s %s (lap %d), %s %s (lap %d)\n",
		nameA, formatLapTime(cmp.A.Lap.Duration), cmp.A.Lap.Number,
		nameB, formatLapTime(cmp.B.Lap.Duration), cmp.B.Lap.Number,
	)

	fmt.Fprint(w, renderInsights(cmp))
}

// renderInsights summarises the comparison the way the metric table
// cannot: one line per headline trait.
func renderInsights(cmp style.Comparison) string {
	builder := strings.Builder{}
	builder.WriteString("\nInsights:\n")

	if row, ok := cmp.Row(style.MetricBrakingAggressiveness); ok {
		builder.WriteString(fmt.Sprintf("  Most aggressive braker: %s (%.2f G vs %.2f G)\n",
			cmp.Leader(row).Driver.Acronym, leaderValue(row), trailerValue(row)))
	}
	if row, ok := cmp.Row(style.MetricThrottleSmoothness); ok {
		builder.WriteString(fmt.Sprintf("  Smoothest throttle: %s (%.2f pp vs %.2f pp)\n",
			cmp.Leader(row).Driver.Acronym, leaderValue(row), trailerValue(row)))
	}
	if row, ok := cmp.Row(style.MetricCorneringConsistency); ok {
		builder.WriteString(fmt.Sprintf("  Most consistent cornering: %s (%.2f km/h vs %.2f km/h)\n",
			cmp.Leader(row).Driver.Acronym, leaderValue(row), trailerValue(row)))
	}
	if row, ok := cmp.Row(style.MetricGearShiftFrequency); ok {
		builder.WriteString(fmt.Sprintf("  Busiest gearbox: %s (%.1f vs %.1f shifts/min)\n",
			cmp.Leader(row).Driver.Acronym, leaderValue(row), trailerValue(row)))
	}
	return builder.String()
}

func leaderValue(row style.MetricComparison) float64 {
	if row.Leader == style.SideB {
		return row.B
	}
	return row.A
}

func trailerValue(row style.MetricComparison) float64 {
	if row.Leader == style.SideB {
		return row.A
	}
	return row.B
}

// formatLapTime renders a lap duration as m:ss.mmm.
func formatLapTime(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	minutes := int(d.Minutes())
	remainder := d - time.Duration(minutes)*time.Minute
	return fmt.Sprintf("%d:%06.3f", minutes, remainder.Seconds())
}
