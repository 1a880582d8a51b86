// Package style derives a driver's driving-style fingerprint from one lap
// of car telemetry and compares two drivers' fingerprints.
package style

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/telemetry"
)

const (
	standardGravity = 9.81 // m/s^2
	kmhPerMs        = 3.6

	corneringThrottleMax = 50.0 // percent
	corneringSpeedDelta  = 1.0  // km/h between adjacent samples
)

// All four metrics are total functions: a lap the metric cannot be formed
// from (too few samples, empty mask, zero denominator) reports a neutral
// 0.0 instead of an error, so a partially unanalysable lap still yields a
// comparable fingerprint.

// BrakingAggressiveness returns the mean deceleration, in G, over the
// lap's braking instants: samples with the brake applied while speed is
// falling relative to the previous sample.
func BrakingAggressiveness(samples []telemetry.Sample) float64 {
	var forces []float64
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if !cur.Brake || cur.Speed >= prev.Speed {
			continue
		}
		dt := (cur.Time - prev.Time).Seconds()
		if dt <= 0 {
			continue
		}
		decel := -((cur.Speed - prev.Speed) / kmhPerMs) / dt
		forces = append(forces, decel/standardGravity)
	}
	if len(forces) == 0 {
		return 0
	}
	return stat.Mean(forces, nil)
}

// ThrottleSmoothness returns the sample standard deviation of absolute
// throttle changes between adjacent samples, in percentage points. Lower
// is smoother. Constant offsets in the throttle trace cancel out.
func ThrottleSmoothness(samples []telemetry.Sample) float64 {
	if len(samples) < 3 {
		// fewer than two differences leaves the deviation undefined
		return 0
	}
	changes := make([]float64, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		changes = append(changes, math.Abs(samples[i].Throttle-samples[i-1].Throttle))
	}
	return stat.StdDev(changes, nil)
}

// CorneringConsistency returns the sample standard deviation of speed, in
// km/h, over the lap's cornering instants: samples below 50% throttle whose
// speed changes by more than 1 km/h into the next sample. The low-power,
// speed-varying pair is a heuristic proxy for cornering; the change is
// attributed to the sample entering it. Lower is more consistent.
func CorneringConsistency(samples []telemetry.Sample) float64 {
	var speeds []float64
	for i := 0; i+1 < len(samples); i++ {
		if samples[i].Throttle >= corneringThrottleMax {
			continue
		}
		if math.Abs(samples[i+1].Speed-samples[i].Speed) <= corneringSpeedDelta {
			continue
		}
		speeds = append(speeds, samples[i].Speed)
	}
	if len(speeds) < 2 {
		return 0
	}
	return stat.StdDev(speeds, nil)
}

// GearShiftFrequency returns gear changes per minute over the sampled
// window. Up- and downshifts each count once; the first sample is not a
// shift.
func GearShiftFrequency(samples []telemetry.Sample) float64 {
	if len(samples) < 2 {
		return 0
	}
	shifts := 0
	for i := 1; i < len(samples); i++ {
		if samples[i].Gear != samples[i-1].Gear {
			shifts++
		}
	}
	minutes := (samples[len(samples)-1].Time - samples[0].Time).Minutes()
	if minutes <= 0 {
		return 0
	}
	return float64(shifts) / minutes
}
