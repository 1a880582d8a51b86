package telemetry

import "time"

// Session identifies one timed session of a race weekend.
type Session struct {
	Key         int
	MeetingKey  int
	Name        string
	Location    string
	CountryName string
	CircuitName string
	Year        int
	Starts      time.Time
	Ends        time.Time
}

// Driver describes a session participant.
type Driver struct {
	Number   int
	Acronym  string
	FullName string
	TeamName string
}

// Lap is one completed lap with enough identity to request its telemetry.
// Duration is zero when the lap has no recorded time (in/out laps, red flags).
type Lap struct {
	Number       int
	DriverNumber int
	Start        time.Time
	Duration     time.Duration
	IsPitOut     bool
}

// Sample is a single car telemetry reading. Samples of a lap are ordered by
// Time ascending; Time is the offset from the first reading of the lap.
// Consecutive-sample derivatives are only meaningful in that order.
type Sample struct {
	Time     time.Duration
	Speed    float64 // km/h
	Throttle float64 // percent of pedal travel, 0-100
	Brake    bool
	Gear     int // 0 = neutral
}
