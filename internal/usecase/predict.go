// Package usecase orchestrates tide prediction requests against the
// calibrated station model. All operations are pure functions of the model,
// the request parameters, and the injected clock; results are freshly
// allocated per call, so the use case is safe for concurrent requests.
package usecase

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/montanaflynn/stats"

	"github.com/ngtrthanh/tide-app/internal/adapter/store"
	"github.com/ngtrthanh/tide-app/internal/domain"
	"github.com/ngtrthanh/tide-app/internal/observability"
)

// Window limits and sampling policies.
const (
	// MaxWindowDays bounds any requested window.
	MaxWindowDays = 365
	// MaxForecastDays bounds the hourly forecast.
	MaxForecastDays = 30

	// Daily extremes are sampled at 5-minute cadence over one day; the
	// 60-sample separation corresponds to 5 hours between reported tides.
	extremesCadenceMinutes = 5
	extremesPointsPerDay   = 288
	extremesMinSeparation  = 60

	forecastCadenceMinutes = 60

	chartLabelFormat = "15:04 02/01"
)

// TideUseCase serves tide predictions for a single station.
type TideUseCase struct {
	model   *domain.Model
	station store.Station
	clock   clockwork.Clock
	metrics *observability.Metrics
}

// NewTideUseCase creates a use case around an already-built model. A nil
// clock falls back to the real clock.
func NewTideUseCase(model *domain.Model, station store.Station, clock clockwork.Clock, metrics *observability.Metrics) *TideUseCase {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if metrics == nil {
		metrics = observability.NewMetricsForTesting()
	}
	return &TideUseCase{
		model:   model,
		station: station,
		clock:   clock,
		metrics: metrics,
	}
}

// Point is a single prediction in a response.
type Point struct {
	Time    string  `json:"time"`
	LevelCm float64 `json:"level_cm"`
}

// StationInfo describes the station and its calibration.
type StationInfo struct {
	Station      string   `json:"station"`
	Location     string   `json:"location"`
	Coordinates  string   `json:"coordinates"`
	Datum        string   `json:"datum"`
	MeanLevelCm  float64  `json:"mean_level_cm"`
	Epoch        string   `json:"reference_epoch"`
	Constituents []string `json:"constituents"`
	Calibration  struct {
		Window   string  `json:"window"`
		Source   string  `json:"source"`
		MAECm    float64 `json:"mae_cm"`
		RMSECm   float64 `json:"rmse_cm"`
		MaxErrCm float64 `json:"max_error_cm"`
	} `json:"calibration"`
}

// CurrentResponse is the level at the time of the request.
type CurrentResponse struct {
	Station string  `json:"station"`
	TimeUTC string  `json:"time_utc"`
	LevelCm float64 `json:"level_cm"`
	Datum   string  `json:"datum"`
}

// ExtremesResponse lists today's high and low tides.
type ExtremesResponse struct {
	Date      string  `json:"date"`
	Datum     string  `json:"datum"`
	HighTides []Point `json:"high_tides"`
	LowTides  []Point `json:"low_tides"`
}

// ForecastResponse is an hourly level forecast.
type ForecastResponse struct {
	Station      string  `json:"station"`
	ForecastDays int     `json:"forecast_days"`
	Datum        string  `json:"datum"`
	Forecast     []Point `json:"forecast"`
}

// ChartWindow is a sampled window shaped for charting: parallel label and
// level slices plus summary statistics.
type ChartWindow struct {
	Days           int       `json:"days"`
	Past           bool      `json:"past"`
	CadenceMinutes int       `json:"cadence_minutes"`
	Labels         []string  `json:"labels"`
	LevelsCm       []float64 `json:"levels_cm"`
	MaxCm          float64   `json:"max_cm"`
	MinCm          float64   `json:"min_cm"`
	RangeCm        float64   `json:"range_cm"`
}

// Info returns station metadata and calibration details.
func (uc *TideUseCase) Info() StationInfo {
	info := StationInfo{
		Station:      uc.station.Name,
		Location:     uc.station.Location,
		Coordinates:  uc.station.Coordinates,
		Datum:        uc.station.DatumName,
		MeanLevelCm:  uc.station.MeanLevelCm,
		Epoch:        uc.model.Epoch.Format(time.RFC3339),
		Constituents: uc.model.ConstituentNames(),
	}
	info.Calibration.Window = uc.station.Calibration.Window
	info.Calibration.Source = uc.station.Calibration.Source
	info.Calibration.MAECm = uc.station.Calibration.MAECm
	info.Calibration.RMSECm = uc.station.Calibration.RMSECm
	info.Calibration.MaxErrCm = uc.station.Calibration.MaxErrCm
	return info
}

// Current returns the predicted level at the current instant.
func (uc *TideUseCase) Current() CurrentResponse {
	now := uc.clock.Now().UTC()
	level := domain.SynthesizeAt(uc.model, now)
	uc.metrics.PointsSynthesized.Inc()

	return CurrentResponse{
		Station: uc.station.Name,
		TimeUTC: now.Format(time.RFC3339),
		LevelCm: round2(level),
		Datum:   uc.station.DatumName,
	}
}

// DailyExtremes finds today's high and low tides by sampling the current UTC
// day at 5-minute cadence and detecting extrema with a 5-hour separation.
func (uc *TideUseCase) DailyExtremes() (*ExtremesResponse, error) {
	now := uc.clock.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	series, err := domain.GenerateSeries(uc.model, startOfDay, extremesCadenceMinutes, extremesPointsPerDay, domain.Forward)
	if err != nil {
		return nil, fmt.Errorf("generate daily series: %w", err)
	}
	uc.metrics.PointsSynthesized.Add(float64(len(series)))

	events, err := domain.FindExtrema(series, extremesMinSeparation)
	if err != nil {
		return nil, fmt.Errorf("find extrema: %w", err)
	}
	uc.metrics.ExtremaDetected.Add(float64(len(events)))

	resp := &ExtremesResponse{
		Date:      startOfDay.Format("2006-01-02"),
		Datum:     uc.station.DatumName,
		HighTides: make([]Point, 0),
		LowTides:  make([]Point, 0),
	}
	for _, e := range events {
		p := Point{Time: e.Time.Format(time.RFC3339), LevelCm: round2(e.Level)}
		if e.Kind == domain.High {
			resp.HighTides = append(resp.HighTides, p)
		} else {
			resp.LowTides = append(resp.LowTides, p)
		}
	}
	return resp, nil
}

// Forecast returns an hourly forecast starting now. Days outside [1,30] are
// clamped rather than rejected, matching the public API contract.
func (uc *TideUseCase) Forecast(days int) (*ForecastResponse, error) {
	if days < 1 {
		days = 1
	}
	if days > MaxForecastDays {
		days = MaxForecastDays
	}

	now := uc.clock.Now().UTC()
	series, err := domain.GenerateSeries(uc.model, now, forecastCadenceMinutes, days*24, domain.Forward)
	if err != nil {
		return nil, fmt.Errorf("generate forecast series: %w", err)
	}
	uc.metrics.PointsSynthesized.Add(float64(len(series)))

	points := make([]Point, len(series))
	for i, s := range series {
		points[i] = Point{Time: s.Time.Format(time.RFC3339), LevelCm: round2(s.Level)}
	}

	return &ForecastResponse{
		Station:      uc.station.Name,
		ForecastDays: days,
		Datum:        uc.station.DatumName,
		Forecast:     points,
	}, nil
}

// Chart samples a window of |days| days around now, going backward when days
// is negative. The cadence coarsens as the window grows to bound the point
// count: 15 minutes up to 10 days, 30 minutes up to 20 days, hourly beyond.
func (uc *TideUseCase) Chart(days int) (*ChartWindow, error) {
	past := days < 0
	absDays := days
	if past {
		absDays = -days
	}
	if absDays < 1 {
		absDays = 1
	}
	if absDays > MaxWindowDays {
		absDays = MaxWindowDays
	}

	cadence := 15
	switch {
	case absDays > 20:
		cadence = 60
	case absDays > 10:
		cadence = 30
	}
	numPoints := absDays * (24 * 60 / cadence)

	dir := domain.Forward
	if past {
		dir = domain.Backward
	}

	now := uc.clock.Now().UTC()
	series, err := domain.GenerateSeries(uc.model, now, cadence, numPoints, dir)
	if err != nil {
		return nil, fmt.Errorf("generate chart series: %w", err)
	}
	uc.metrics.PointsSynthesized.Add(float64(len(series)))

	labels := make([]string, len(series))
	levels := make([]float64, len(series))
	for i, s := range series {
		labels[i] = s.Time.Format(chartLabelFormat)
		levels[i] = round2(s.Level)
	}

	maxLevel, err := stats.Max(levels)
	if err != nil {
		return nil, fmt.Errorf("chart statistics: %w", err)
	}
	minLevel, err := stats.Min(levels)
	if err != nil {
		return nil, fmt.Errorf("chart statistics: %w", err)
	}

	signedDays := absDays
	if past {
		signedDays = -absDays
	}
	return &ChartWindow{
		Days:           signedDays,
		Past:           past,
		CadenceMinutes: cadence,
		Labels:         labels,
		LevelsCm:       levels,
		MaxCm:          maxLevel,
		MinCm:          minLevel,
		RangeCm:        round2(maxLevel - minLevel),
	}, nil
}
