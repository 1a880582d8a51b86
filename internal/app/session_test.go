package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/telemetry"
)

type fakeSessionProvider struct {
	sessions []telemetry.Session
	err      error
}

func (f *fakeSessionProvider) Sessions(ctx context.Context, year int) ([]telemetry.Session, error) {
	return f.sessions, f.err
}

func testSchedule() *fakeSessionProvider {
	return &fakeSessionProvider{sessions: []telemetry.Session{
		{Key: 9140, Name: "Practice 2", Location: "Monza", CountryName: "Italy", CircuitName: "Monza", Year: 2023, Starts: time.Date(2023, 9, 1, 12, 0, 0, 0, time.UTC)},
		{Key: 9141, Name: "Qualifying", Location: "Monza", CountryName: "Italy", CircuitName: "Monza", Year: 2023, Starts: time.Date(2023, 9, 2, 14, 0, 0, 0, time.UTC)},
		{Key: 9158, Name: "Qualifying", Location: "Marina Bay", CountryName: "Singapore", CircuitName: "Singapore", Year: 2023, Starts: time.Date(2023, 9, 16, 13, 0, 0, 0, time.UTC)},
	}}
}

func TestResolveSessionByLocation(t *testing.T) {
	t.Parallel()

	session, err := resolveSession(context.Background(), testSchedule(), 2023, "monza", "Qualifying")
	require.NoError(t, err)
	assert.Equal(t, 9141, session.Key)
}

func TestResolveSessionByCountry(t *testing.T) {
	t.Parallel()

	session, err := resolveSession(context.Background(), testSchedule(), 2023, "singapore", "Qualifying")
	require.NoError(t, err)
	assert.Equal(t, 9158, session.Key)
}

func TestResolveSessionNameMismatch(t *testing.T) {
	t.Parallel()

	_, err := resolveSession(context.Background(), testSchedule(), 2023, "monza", "Race")
	assert.Error(t, err)
}

func TestResolveSessionProviderFault(t *testing.T) {
	t.Parallel()

	fault := errors.New("upstream down")
	_, err := resolveSession(context.Background(), &fakeSessionProvider{err: fault}, 2023, "monza", "Qualifying")
	assert.ErrorIs(t, err, fault)
}

func TestFindDriver(t *testing.T) {
	t.Parallel()

	drivers := []telemetry.Driver{
		{Number: 1, Acronym: "VER"},
		{Number: 44, Acronym: "HAM"},
	}

	d, err := findDriver(drivers, "ham")
	require.NoError(t, err)
	assert.Equal(t, 44, d.Number)

	d, err = findDriver(drivers, "1")
	require.NoError(t, err)
	assert.Equal(t, "VER", d.Acronym)

	_, err = findDriver(drivers, "ALO")
	assert.Error(t, err)
}
