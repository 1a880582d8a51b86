package telemetry

import (
	"context"
	"time"
)

// SessionProvider resolves the timed sessions of a season.
type SessionProvider interface {
	Sessions(ctx context.Context, year int) ([]Session, error)
}

// DriverProvider lists the participants of a session.
type DriverProvider interface {
	Drivers(ctx context.Context, sessionKey int) ([]Driver, error)
}

// LapProvider retrieves the completed laps of one driver in a session.
// An empty slice with a nil error means the driver has no recorded laps;
// a non-nil error indicates a provider fault.
type LapProvider interface {
	Laps(ctx context.Context, sessionKey, driverNumber int) ([]Lap, error)
}

// CarDataProvider retrieves the telemetry samples recorded during one lap.
type CarDataProvider interface {
	CarData(ctx context.Context, sessionKey, driverNumber int, lap Lap) ([]Sample, error)
}

// Provider bundles everything a full comparison needs.
type Provider interface {
	SessionProvider
	DriverProvider
	LapProvider
	CarDataProvider
}

// Cache stores raw upstream payloads keyed by request URL. Implementations
// must treat a miss and an expired entry identically.
type Cache interface {
	Get(ctx context.Context, key string, maxAge time.Duration) ([]byte, bool, error)
	Put(ctx context.Context, key string, payload []byte) error
}
