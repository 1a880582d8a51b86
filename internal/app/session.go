package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/telemetry"
)

// resolveSession finds the session of a season matching the meeting and
// session name. The meeting query matches location, country, or circuit,
// case-insensitively, so "monza", "Italy", and "Imola" all work.
func resolveSession(ctx context.Context, provider telemetry.SessionProvider, year int, meeting, name string) (telemetry.Session, error) {
	sessions, err := provider.Sessions(ctx, year)
	if err != nil {
		return telemetry.Session{}, fmt.Errorf("fetch %d schedule: %w", year, err)
	}

	query := strings.ToLower(strings.TrimSpace(meeting))
	for _, s := range sessions {
		if !strings.EqualFold(s.Name, name) {
			continue
		}
		if query != "" && !matchesMeeting(s, query) {
			continue
		}
		return s, nil
	}
	return telemetry.Session{}, fmt.Errorf("no %q session found for %q in %d", name, meeting, year)
}

func matchesMeeting(s telemetry.Session, query string) bool {
	for _, field := range []string{s.Location, s.CountryName, s.CircuitName} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// findDriver resolves a driver by three-letter acronym or car number.
func findDriver(drivers []telemetry.Driver, code string) (telemetry.Driver, error) {
	for _, d := range drivers {
		if strings.EqualFold(d.Acronym, code) || fmt.Sprintf("%d", d.Number) == code {
			return d, nil
		}
	}
	return telemetry.Driver{}, fmt.Errorf("driver %q not found in session", code)
}
