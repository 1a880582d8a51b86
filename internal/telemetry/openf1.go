package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	sessionsPath = "/sessions"
	driversPath  = "/drivers"
	lapsPath     = "/laps"
	carDataPath  = "/car_data"
)

// OpenF1Options parameterise the OpenF1 client.
type OpenF1Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Cache     Cache
	CacheTTL  time.Duration
}

// OpenF1 fetches session, lap, and car telemetry data from the OpenF1 API.
// Responses are immutable once a session ends, so every successful payload
// is offered to the configured cache; cache faults degrade to a network
// fetch and never fail a request.
type OpenF1 struct {
	opts    OpenF1Options
	logger  zerolog.Logger
	client  *http.Client
	baseURL string
}

// NewOpenF1 constructs an OpenF1 client.
func NewOpenF1(opts OpenF1Options, logger zerolog.Logger) *OpenF1 {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openf1.org/v1"
	}

	return &OpenF1{
		opts:    opts,
		logger:  logger.With().Str("component", "openf1").Logger(),
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// Sessions returns the timed sessions of a season in schedule order.
func (c *OpenF1) Sessions(ctx context.Context, year int) ([]Session, error) {
	endpoint := fmt.Sprintf("%s%s?year=%d", c.baseURL, sessionsPath, year)

	var records []sessionRecord
	if err := c.getJSON(ctx, endpoint, &records); err != nil {
		return nil, fmt.Errorf("fetch sessions: %w", err)
	}

	sessions := make([]Session, 0, len(records))
	for _, rec := range records {
		session, err := rec.toSession()
		if err != nil {
			return nil, fmt.Errorf("parse session %d: %w", rec.SessionKey, err)
		}
		sessions = append(sessions, session)
	}

	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Starts.Before(sessions[j].Starts) })
	return sessions, nil
}

// Drivers returns the participants of a session.
func (c *OpenF1) Drivers(ctx context.Context, sessionKey int) ([]Driver, error) {
	endpoint := fmt.Sprintf("%s%s?session_key=%d", c.baseURL, driversPath, sessionKey)

	var records []driverRecord
	if err := c.getJSON(ctx, endpoint, &records); err != nil {
		return nil, fmt.Errorf("fetch drivers: %w", err)
	}

	drivers := make([]Driver, 0, len(records))
	for _, rec := range records {
		drivers = append(drivers, Driver{
			Number:   rec.DriverNumber,
			Acronym:  rec.NameAcronym,
			FullName: rec.FullName,
			TeamName: rec.TeamName,
		})
	}

	sort.Slice(drivers, func(i, j int) bool { return drivers[i].Number < drivers[j].Number })
	return drivers, nil
}

// Laps returns one driver's completed laps in chronological order. Drivers
// without laps yield an empty slice, not an error.
func (c *OpenF1) Laps(ctx context.Context, sessionKey, driverNumber int) ([]Lap, error) {
	endpoint := fmt.Sprintf("%s%s?session_key=%d&driver_number=%d", c.baseURL, lapsPath, sessionKey, driverNumber)

	var records []lapRecord
	if err := c.getJSON(ctx, endpoint, &records); err != nil {
		return nil, fmt.Errorf("fetch laps: %w", err)
	}

	laps := make([]Lap, 0, len(records))
	for _, rec := range records {
		lap, err := rec.toLap()
		if err != nil {
			return nil, fmt.Errorf("parse lap %d: %w", rec.LapNumber, err)
		}
		laps = append(laps, lap)
	}

	sort.Slice(laps, func(i, j int) bool { return laps[i].Number < laps[j].Number })
	return laps, nil
}

// CarData returns the telemetry samples recorded during the given lap,
// ordered by time with sample times rebased to the first reading. Laps
// without a start date or a recorded duration carry no addressable
// telemetry window and yield an empty slice.
func (c *OpenF1) CarData(ctx context.Context, sessionKey, driverNumber int, lap Lap) ([]Sample, error) {
	if lap.Start.IsZero() || lap.Duration <= 0 {
		return nil, nil
	}

	from := lap.Start.UTC().Format(time.RFC3339Nano)
	to := lap.Start.Add(lap.Duration).UTC().Format(time.RFC3339Nano)
	endpoint := fmt.Sprintf("%s%s?session_key=%d&driver_number=%d&date%%3E=%s&date%%3C=%s",
		c.baseURL, carDataPath, sessionKey, driverNumber,
		url.QueryEscape(from), url.QueryEscape(to))

	var records []carDataRecord
	if err := c.getJSON(ctx, endpoint, &records); err != nil {
		return nil, fmt.Errorf("fetch car data: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	type timed struct {
		at     time.Time
		sample Sample
	}
	readings := make([]timed, 0, len(records))
	for _, rec := range records {
		at, err := time.Parse(time.RFC3339, rec.Date)
		if err != nil {
			return nil, fmt.Errorf("parse car data timestamp %q: %w", rec.Date, err)
		}
		readings = append(readings, timed{
			at: at,
			sample: Sample{
				Speed:    rec.Speed,
				Throttle: rec.Throttle,
				Brake:    rec.Brake > 0,
				Gear:     rec.NGear,
			},
		})
	}

	sort.Slice(readings, func(i, j int) bool { return readings[i].at.Before(readings[j].at) })

	base := readings[0].at
	samples := make([]Sample, 0, len(readings))
	for _, r := range readings {
		r.sample.Time = r.at.Sub(base)
		samples = append(samples, r.sample)
	}

	c.logger.Debug().
		Int("driver", driverNumber).
		Int("lap", lap.Number).
		Int("samples", len(samples)).
		Msg("car data fetched")
	return samples, nil
}

func (c *OpenF1) getJSON(ctx context.Context, endpoint string, out any) error {
	if c.opts.Cache != nil {
		payload, ok, err := c.opts.Cache.Get(ctx, endpoint, c.opts.CacheTTL)
		if err != nil {
			c.logger.Warn().Err(err).Msg("cache read failed; falling back to network")
		} else if ok {
			return json.Unmarshal(payload, out)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if ua := strings.TrimSpace(c.opts.UserAgent); ua != "" {
		req.Header.Set("User-Agent", ua)
	} else {
		req.Header.Set("User-Agent", "f1-style-analyzer/1.0")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return parseHTTPError(resp.StatusCode, payload)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return err
	}

	if c.opts.Cache != nil {
		if err := c.opts.Cache.Put(ctx, endpoint, payload); err != nil {
			c.logger.Warn().Err(err).Msg("cache write failed")
		}
	}
	return nil
}

type sessionRecord struct {
	SessionKey       int    `json:"session_key"`
	MeetingKey       int    `json:"meeting_key"`
	SessionName      string `json:"session_name"`
	Location         string `json:"location"`
	CountryName      string `json:"country_name"`
	CircuitShortName string `json:"circuit_short_name"`
	Year             int    `json:"year"`
	DateStart        string `json:"date_start"`
	DateEnd          string `json:"date_end"`
}

func (r sessionRecord) toSession() (Session, error) {
	starts, err := time.Parse(time.RFC3339, r.DateStart)
	if err != nil {
		return Session{}, fmt.Errorf("parse date_start: %w", err)
	}
	ends, err := time.Parse(time.RFC3339, r.DateEnd)
	if err != nil {
		return Session{}, fmt.Errorf("parse date_end: %w", err)
	}
	return Session{
		Key:         r.SessionKey,
		MeetingKey:  r.MeetingKey,
		Name:        r.SessionName,
		Location:    r.Location,
		CountryName: r.CountryName,
		CircuitName: r.CircuitShortName,
		Year:        r.Year,
		Starts:      starts,
		Ends:        ends,
	}, nil
}

type driverRecord struct {
	DriverNumber int    `json:"driver_number"`
	NameAcronym  string `json:"name_acronym"`
	FullName     string `json:"full_name"`
	TeamName     string `json:"team_name"`
}

type lapRecord struct {
	LapNumber    int      `json:"lap_number"`
	DriverNumber int      `json:"driver_number"`
	DateStart    *string  `json:"date_start"`
	LapDuration  *float64 `json:"lap_duration"`
	IsPitOutLap  bool     `json:"is_pit_out_lap"`
}

func (r lapRecord) toLap() (Lap, error) {
	lap := Lap{
		Number:       r.LapNumber,
		DriverNumber: r.DriverNumber,
		IsPitOut:     r.IsPitOutLap,
	}
	if r.DateStart != nil && *r.DateStart != "" {
		start, err := time.Parse(time.RFC3339, *r.DateStart)
		if err != nil {
			return Lap{}, fmt.Errorf("parse date_start: %w", err)
		}
		lap.Start = start
	}
	if r.LapDuration != nil {
		lap.Duration = time.Duration(*r.LapDuration * float64(time.Second))
	}
	return lap, nil
}

type carDataRecord struct {
	Date     string  `json:"date"`
	Speed    float64 `json:"speed"`
	Throttle float64 `json:"throttle"`
	Brake    float64 `json:"brake"`
	NGear    int     `json:"n_gear"`
}

type errorResponse struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func parseHTTPError(status int, payload []byte) error {
	var apiErr errorResponse
	if err := json.Unmarshal(payload, &apiErr); err == nil {
		if apiErr.Detail != "" {
			return fmt.Errorf("openf1 api error (%d): %s", status, apiErr.Detail)
		}
		if apiErr.Message != "" {
			return fmt.Errorf("openf1 api error (%d): %s", status, apiErr.Message)
		}
	}
	if len(payload) > 0 {
		return fmt.Errorf("openf1 api error (%d): %s", status, strings.TrimSpace(string(payload)))
	}
	return fmt.Errorf("openf1 api error (%d)", status)
}

var _ Provider = (*OpenF1)(nil)
