package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/cache"
	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/config"
	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/telemetry"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

// newProvider builds the telemetry provider, wiring in the response cache
// when configured. A cache that fails to open is logged and skipped; the
// analysis proceeds uncached.
func (a *App) newProvider(ctx context.Context) (telemetry.Provider, func()) {
	var respCache telemetry.Cache
	closer := func() {}

	if a.Config.Cache.Enabled {
		c, err := cache.Open(a.Config.Cache.Dir)
		if err != nil {
			a.Logger.Warn().Err(err).Str("dir", a.Config.Cache.Dir).Msg("telemetry cache unavailable; continuing without it")
		} else {
			respCache = c
			closer = func() { _ = c.Close() }

			if ttl := a.Config.Cache.TTL; ttl > 0 {
				if err := c.Prune(ctx, time.Now().Add(-ttl)); err != nil {
					a.Logger.Warn().Err(err).Msg("failed to prune expired cache entries")
				}
			}
			if count, err := c.Count(ctx); err == nil {
				a.Logger.Debug().Int64("entries", count).Msg("telemetry cache opened")
			}
		}
	}

	provider := telemetry.NewOpenF1(telemetry.OpenF1Options{
		BaseURL:   a.Config.OpenF1.BaseURL,
		Timeout:   a.Config.OpenF1.RequestTimeout,
		UserAgent: a.Config.OpenF1.UserAgent,
		Cache:     respCache,
		CacheTTL:  a.Config.Cache.TTL,
	}, a.Logger)

	return provider, closer
}

// CompareOptions hold parameters for a two-driver comparison.
type CompareOptions struct {
	Year    int
	Meeting string
	Session string
	DriverA string
	DriverB string
	PNGPath string
}

// DriversOptions configure the drivers listing.
type DriversOptions struct {
	Year    int
	Meeting string
	Session string
}

// ScheduleOptions configure the schedule listing.
type ScheduleOptions struct {
	Year int
}
