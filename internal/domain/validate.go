package domain

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// ComparisonPoint pairs one observed measurement with its prediction.
type ComparisonPoint struct {
	Label     string
	Observed  float64
	Predicted float64
	Error     float64 // Signed, predicted minus observed.
}

// Report summarizes how a predicted series compares to observations.
type Report struct {
	Points       []ComparisonPoint
	MeanError    float64 // Signed mean; reveals systematic bias.
	MeanAbsError float64
	RMSError     float64
	MaxAbsError  float64
}

// Validate compares predicted levels against externally observed ones and
// computes aggregate error statistics over the full input, with no outlier
// filtering. The three slices must have equal length; mismatches are rejected
// outright rather than truncated or padded.
func Validate(predicted, observed []float64, labels []string) (*Report, error) {
	if len(predicted) != len(observed) || len(predicted) != len(labels) {
		return nil, fmt.Errorf("%w: predicted=%d observed=%d labels=%d",
			ErrLengthMismatch, len(predicted), len(observed), len(labels))
	}
	if len(predicted) == 0 {
		return nil, fmt.Errorf("%w: validation requires at least one sample", ErrInvalidParameter)
	}

	points := make([]ComparisonPoint, len(predicted))
	signed := make([]float64, len(predicted))
	absolute := make([]float64, len(predicted))
	squared := make([]float64, len(predicted))
	for i := range predicted {
		e := predicted[i] - observed[i]
		points[i] = ComparisonPoint{
			Label:     labels[i],
			Observed:  observed[i],
			Predicted: predicted[i],
			Error:     e,
		}
		signed[i] = e
		absolute[i] = math.Abs(e)
		squared[i] = e * e
	}

	meanErr, err := stats.Mean(signed)
	if err != nil {
		return nil, fmt.Errorf("mean error: %w", err)
	}
	mae, err := stats.Mean(absolute)
	if err != nil {
		return nil, fmt.Errorf("mean absolute error: %w", err)
	}
	meanSq, err := stats.Mean(squared)
	if err != nil {
		return nil, fmt.Errorf("mean squared error: %w", err)
	}
	maxAbs, err := stats.Max(absolute)
	if err != nil {
		return nil, fmt.Errorf("max absolute error: %w", err)
	}

	return &Report{
		Points:       points,
		MeanError:    meanErr,
		MeanAbsError: mae,
		RMSError:     math.Sqrt(meanSq),
		MaxAbsError:  maxAbs,
	}, nil
}
