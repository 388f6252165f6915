package usecase

import (
	"fmt"
	"math"
	"time"

	"github.com/ngtrthanh/tide-app/internal/adapter/store"
	"github.com/ngtrthanh/tide-app/internal/domain"
)

// ValidationResponse reports prediction accuracy against observed levels.
type ValidationResponse struct {
	ValidationDate string               `json:"validation_date"`
	Statistics     ValidationStatistics `json:"statistics"`
	Comparison     []ComparisonRow      `json:"comparison"`
}

// ValidationStatistics are the aggregate error figures.
type ValidationStatistics struct {
	MeanErrorCm float64 `json:"mean_error_cm"`
	MAECm       float64 `json:"mae_cm"`
	RMSECm      float64 `json:"rmse_cm"`
	MaxErrorCm  float64 `json:"max_error_cm"`
}

// ComparisonRow pairs one observed hour with its prediction.
type ComparisonRow struct {
	Hour        string  `json:"hour"`
	ObservedCm  float64 `json:"observed_cm"`
	PredictedCm float64 `json:"predicted_cm"`
	ErrorCm     float64 `json:"error_cm"`
}

// Validate predicts hourly levels starting at date and compares them against
// the supplied observations. Length mismatches between predictions and
// observations surface as domain.ErrLengthMismatch; nothing is truncated.
func (uc *TideUseCase) Validate(date time.Time, observed []float64) (*ValidationResponse, error) {
	if len(observed) == 0 {
		return nil, fmt.Errorf("%w: observed series is empty", domain.ErrInvalidParameter)
	}

	start := date.UTC()
	series, err := domain.GenerateSeries(uc.model, start, forecastCadenceMinutes, len(observed), domain.Forward)
	if err != nil {
		return nil, fmt.Errorf("generate validation series: %w", err)
	}
	uc.metrics.PointsSynthesized.Add(float64(len(series)))

	predicted := make([]float64, len(series))
	labels := make([]string, len(series))
	for i, s := range series {
		predicted[i] = round2(s.Level)
		labels[i] = s.Time.Format("15:04")
	}

	report, err := domain.Validate(predicted, observed, labels)
	if err != nil {
		return nil, err
	}

	rows := make([]ComparisonRow, len(report.Points))
	for i, p := range report.Points {
		rows[i] = ComparisonRow{
			Hour:        p.Label,
			ObservedCm:  p.Observed,
			PredictedCm: p.Predicted,
			ErrorCm:     round2(p.Error),
		}
	}

	return &ValidationResponse{
		ValidationDate: start.Format("2006-01-02"),
		Statistics: ValidationStatistics{
			MeanErrorCm: round2(report.MeanError),
			MAECm:       round2(report.MeanAbsError),
			RMSECm:      round2(report.RMSError),
			MaxErrorCm:  round2(report.MaxAbsError),
		},
		Comparison: rows,
	}, nil
}

// ValidateReference runs Validate against the bundled reference observation
// day for the station.
func (uc *TideUseCase) ValidateReference() (*ValidationResponse, error) {
	date, observed := store.ReferenceObservations()
	return uc.Validate(date, observed)
}

// round2 rounds to 2 decimal places. Predictions are rounded once, at the
// boundary where they leave the core; internal math stays unrounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
