package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/f1strategy/pitwall/internal/models"
	"github.com/f1strategy/pitwall/pkg/utils"
)

// LiveTimingClient pulls live session data from the timing provider.
// All calls go through a shared rate limiter and a circuit breaker so a
// flapping provider cannot stall the strategy endpoints.
type LiveTimingClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     *logrus.Logger
}

// LiveTimingOptions configures the client.
type LiveTimingOptions struct {
	BaseURL          string
	RequestsPerSec   int
	Timeout          time.Duration
	BreakerThreshold int
}

func NewLiveTimingClient(opts LiveTimingOptions, logger *logrus.Logger) *LiveTimingClient {
	if opts.RequestsPerSec < 1 {
		opts.RequestsPerSec = 10
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.BreakerThreshold < 1 {
		opts.BreakerThreshold = 5
	}

	settings := gobreaker.Settings{
		Name:        "live-timing",
		MaxRequests: uint32(opts.BreakerThreshold),
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "circuit_breaker",
				"service":   name,
				"from":      from.String(),
				"to":        to.String(),
			}).Info("Circuit breaker state changed")
		},
	}

	return &LiveTimingClient{
		baseURL:    opts.BaseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSec), opts.RequestsPerSec),
		breaker:    gobreaker.NewCircuitBreaker(settings),
		logger:     logger,
	}
}

// BreakerState exposes the circuit state for health reporting.
func (c *LiveTimingClient) BreakerState() gobreaker.State {
	return c.breaker.State()
}

func (c *LiveTimingClient) fetch(ctx context.Context, path string, query url.Values, dest interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	_, err := c.breaker.Execute(func() (interface{}, error) {
		endpoint := fmt.Sprintf("%s/%s", c.baseURL, path)
		if len(query) > 0 {
			endpoint += "?" + query.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(body))
		}

		return nil, json.NewDecoder(resp.Body).Decode(dest)
	})
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"component": "live_timing",
			"path":      path,
		}).WithError(err).Warn("Live timing fetch failed")
		return utils.NewAppError(utils.ErrCodeUpstream, "live timing provider unavailable", err.Error())
	}
	return nil
}

// positionRecord mirrors the provider's position feed.
type positionRecord struct {
	DriverNumber int     `json:"driver_number"`
	Position     int     `json:"position"`
	GapToLeader  float64 `json:"gap_to_leader"`
	Interval     float64 `json:"interval"`
}

// DriverPosition is a live classification entry.
type DriverPosition struct {
	DriverNumber int     `json:"driver_number"`
	Position     int     `json:"position"`
	GapToLeaderS float64 `json:"gap_to_leader_s"`
	IntervalS    float64 `json:"interval_s"`
}

// GetPositions returns the live running order for a session.
func (c *LiveTimingClient) GetPositions(ctx context.Context, sessionKey string) ([]DriverPosition, error) {
	var records []positionRecord
	query := url.Values{"session_key": {sessionKey}}
	if err := c.fetch(ctx, "intervals", query, &records); err != nil {
		return nil, err
	}

	positions := make([]DriverPosition, 0, len(records))
	for _, r := range records {
		positions = append(positions, DriverPosition{
			DriverNumber: r.DriverNumber,
			Position:     r.Position,
			GapToLeaderS: r.GapToLeader,
			IntervalS:    r.Interval,
		})
	}
	return positions, nil
}

type lapRecord struct {
	DriverNumber int     `json:"driver_number"`
	LapNumber    int     `json:"lap_number"`
	LapDuration  float64 `json:"lap_duration"`
	IsPitOutLap  bool    `json:"is_pit_out_lap"`
}

// GetLaps returns completed laps for one driver in a session.
func (c *LiveTimingClient) GetLaps(ctx context.Context, sessionKey string, driverNumber int) ([]models.LapSample, error) {
	var records []lapRecord
	query := url.Values{
		"session_key":   {sessionKey},
		"driver_number": {fmt.Sprintf("%d", driverNumber)},
	}
	if err := c.fetch(ctx, "laps", query, &records); err != nil {
		return nil, err
	}

	laps := make([]models.LapSample, 0, len(records))
	for _, r := range records {
		laps = append(laps, models.LapSample{
			LapNumber: r.LapNumber,
			LapTimeS:  r.LapDuration,
			PitOutLap: r.IsPitOutLap,
		})
	}
	return laps, nil
}

type weatherRecord struct {
	AirTemperature   float64 `json:"air_temperature"`
	TrackTemperature float64 `json:"track_temperature"`
	Rainfall         float64 `json:"rainfall"`
	WindSpeed        float64 `json:"wind_speed"`
	Humidity         float64 `json:"humidity"`
}

// GetWeather returns the latest weather sample for a session.
func (c *LiveTimingClient) GetWeather(ctx context.Context, sessionKey string) (models.WeatherSample, error) {
	var records []weatherRecord
	query := url.Values{"session_key": {sessionKey}}
	if err := c.fetch(ctx, "weather", query, &records); err != nil {
		return models.WeatherSample{}, err
	}
	if len(records) == 0 {
		return models.WeatherSample{}, utils.NewAppError(utils.ErrCodeNotFound, "no weather data for session")
	}

	latest := records[len(records)-1]
	return models.WeatherSample{
		AirTempC:   latest.AirTemperature,
		TrackTempC: latest.TrackTemperature,
		Rainfall:   latest.Rainfall > 0,
		WindSpeed:  latest.WindSpeed,
		Humidity:   latest.Humidity,
	}, nil
}

type carDataRecord struct {
	Speed    float64 `json:"speed"`
	Throttle float64 `json:"throttle"`
	Brake    int     `json:"brake"`
	DRS      int     `json:"drs"`
}

// DRS codes 10-14 mean the flap is open or available.
func drsActive(code int) bool {
	return code >= 10
}

// GetCarTelemetry returns car telemetry samples for one driver. The
// provider has no distance channel, so distance is synthesized from
// sample order at a fixed interval.
func (c *LiveTimingClient) GetCarTelemetry(ctx context.Context, sessionKey string, driverNumber int) ([]models.TelemetrySample, error) {
	var records []carDataRecord
	query := url.Values{
		"session_key":   {sessionKey},
		"driver_number": {fmt.Sprintf("%d", driverNumber)},
	}
	if err := c.fetch(ctx, "car_data", query, &records); err != nil {
		return nil, err
	}

	const sampleSpacingM = 10.0
	samples := make([]models.TelemetrySample, 0, len(records))
	for i, r := range records {
		samples = append(samples, models.TelemetrySample{
			DistanceM: float64(i) * sampleSpacingM,
			SpeedKPH:  r.Speed,
			Throttle:  r.Throttle / 100.0,
			Brake:     r.Brake > 0,
			DRS:       drsActive(r.DRS),
		})
	}
	return samples, nil
}
