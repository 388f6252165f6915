package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngtrthanh/tide-app/internal/domain"
)

func TestValidateReference(t *testing.T) {
	uc := newFixture(t, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.ValidateReference()
	require.NoError(t, err)

	assert.Equal(t, "2026-02-01", resp.ValidationDate)
	require.Len(t, resp.Comparison, 24)
	assert.Equal(t, "00:00", resp.Comparison[0].Hour)
	assert.Equal(t, "23:00", resp.Comparison[23].Hour)

	// The bundled day includes a negative observed level; it must survive
	// into the report untouched.
	assert.Equal(t, -4.0, resp.Comparison[16].ObservedCm)

	// Max |error| bounds the mean figures by definition.
	assert.GreaterOrEqual(t, resp.Statistics.MaxErrorCm, resp.Statistics.MAECm)
	assert.GreaterOrEqual(t, resp.Statistics.RMSECm, 0.0)
}

func TestValidate_CustomObservations(t *testing.T) {
	uc := newFixture(t, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC))

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	observed := []float64{210, 230, 250, 260, 255, 240}

	resp, err := uc.Validate(date, observed)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10", resp.ValidationDate)
	require.Len(t, resp.Comparison, len(observed))
	assert.Equal(t, "05:00", resp.Comparison[5].Hour)
	for i, row := range resp.Comparison {
		assert.Equal(t, observed[i], row.ObservedCm, "row %d", i)
		assert.InDelta(t, row.PredictedCm-row.ObservedCm, row.ErrorCm, 0.01, "row %d", i)
	}
}

func TestValidate_EmptyObserved(t *testing.T) {
	uc := newFixture(t, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.Validate(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}
