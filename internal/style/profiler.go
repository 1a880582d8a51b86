package style

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/telemetry"
)

// Metric names, also the keys of Profile.Metrics.
const (
	MetricBrakingAggressiveness = "braking_aggressiveness"
	MetricThrottleSmoothness    = "throttle_smoothness"
	MetricCorneringConsistency  = "cornering_consistency"
	MetricGearShiftFrequency    = "gear_shift_frequency"
)

// MetricNames lists the profile metrics in presentation order.
func MetricNames() []string {
	return []string{
		MetricBrakingAggressiveness,
		MetricThrottleSmoothness,
		MetricCorneringConsistency,
		MetricGearShiftFrequency,
	}
}

// ErrDriverNotFound indicates the driver has no lap with usable telemetry
// in the session. Recoverable: the caller should suggest another driver or
// session rather than abort.
var ErrDriverNotFound = errors.New("no analysable lap for driver")

// Profile is one driver's style fingerprint, derived from their fastest
// lap. Immutable once built.
type Profile struct {
	Driver  telemetry.Driver
	Lap     telemetry.Lap
	Metrics map[string]float64
}

// Profiler derives style profiles from fastest-lap telemetry.
type Profiler struct {
	laps   telemetry.LapProvider
	car    telemetry.CarDataProvider
	logger zerolog.Logger
}

// NewProfiler constructs a Profiler over the given providers.
func NewProfiler(laps telemetry.LapProvider, car telemetry.CarDataProvider, logger zerolog.Logger) *Profiler {
	return &Profiler{
		laps:   laps,
		car:    car,
		logger: logger.With().Str("component", "profiler").Logger(),
	}
}

// Profile fetches the driver's laps, selects the fastest, and computes all
// four style metrics over its telemetry. Each driver's profiling is an
// independent operation: a fault here never invalidates the other side of
// a comparison.
func (p *Profiler) Profile(ctx context.Context, sessionKey int, driver telemetry.Driver) (*Profile, error) {
	laps, err := p.laps.Laps(ctx, sessionKey, driver.Number)
	if err != nil {
		return nil, fmt.Errorf("fetch laps for driver %d: %w", driver.Number, err)
	}

	fastest, ok := fastestLap(laps)
	if !ok {
		return nil, ErrDriverNotFound
	}

	samples, err := p.car.CarData(ctx, sessionKey, driver.Number, fastest)
	if err != nil {
		return nil, fmt.Errorf("fetch telemetry for lap %d: %w", fastest.Number, err)
	}
	if len(samples) == 0 {
		return nil, ErrDriverNotFound
	}

	p.logger.Debug().
		Int("driver", driver.Number).
		Int("lap", fastest.Number).
		Int("samples", len(samples)).
		Dur("lap_time", fastest.Duration).
		Msg("profiling fastest lap")

	return &Profile{
		Driver: driver,
		Lap:    fastest,
		Metrics: map[string]float64{
			MetricBrakingAggressiveness: BrakingAggressiveness(samples),
			MetricThrottleSmoothness:    ThrottleSmoothness(samples),
			MetricCorneringConsistency:  CorneringConsistency(samples),
			MetricGearShiftFrequency:    GearShiftFrequency(samples),
		},
	}, nil
}

// fastestLap picks the lap with the lowest positive recorded time. Ties
// keep the earlier lap, matching the provider's chronological ordering.
func fastestLap(laps []telemetry.Lap) (telemetry.Lap, bool) {
	var best telemetry.Lap
	found := false
	for _, lap := range laps {
		if lap.Duration <= 0 {
			continue
		}
		if !found || lap.Duration < best.Duration {
			best = lap
			found = true
		}
	}
	return best, found
}
