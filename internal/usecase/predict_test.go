package usecase

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngtrthanh/tide-app/internal/adapter/store"
	"github.com/ngtrthanh/tide-app/internal/domain"
	"github.com/ngtrthanh/tide-app/internal/observability"
)

func newFixture(t *testing.T, at time.Time) *TideUseCase {
	t.Helper()

	station := store.HonDau()
	model, err := domain.NewModel(station.MeanLevelCm, station.Epoch, station.Constituents)
	require.NoError(t, err)

	return NewTideUseCase(model, station, clockwork.NewFakeClockAt(at), observability.NewMetricsForTesting())
}

func TestCurrent_Deterministic(t *testing.T) {
	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	uc := newFixture(t, at)

	first := uc.Current()
	second := uc.Current()

	assert.Equal(t, first, second, "frozen clock must produce identical responses")
	assert.Equal(t, at.Format(time.RFC3339), first.TimeUTC)
	assert.Equal(t, "Hòn Dấu", first.Station)
}

func TestForecast_ClampsDays(t *testing.T) {
	uc := newFixture(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	resp, err := uc.Forecast(100)
	require.NoError(t, err)
	assert.Equal(t, MaxForecastDays, resp.ForecastDays)
	assert.Len(t, resp.Forecast, MaxForecastDays*24)

	resp, err = uc.Forecast(-5)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ForecastDays)
	assert.Len(t, resp.Forecast, 24)
}

func TestForecast_StartsNowHourly(t *testing.T) {
	at := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	uc := newFixture(t, at)

	resp, err := uc.Forecast(1)
	require.NoError(t, err)
	require.Len(t, resp.Forecast, 24)
	assert.Equal(t, at.Format(time.RFC3339), resp.Forecast[0].Time)

	second, err := time.Parse(time.RFC3339, resp.Forecast[1].Time)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, second.Sub(at))
}

func TestChart_CadencePolicy(t *testing.T) {
	uc := newFixture(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		days        int
		wantCadence int
		wantDays    int
	}{
		{3, 15, 3},
		{10, 15, 10},
		{11, 30, 11},
		{20, 30, 20},
		{21, 60, 21},
		{400, 60, 365},
		{-3, 15, -3},
		{0, 15, 1},
	}

	for _, tt := range tests {
		window, err := uc.Chart(tt.days)
		require.NoError(t, err, "days=%d", tt.days)
		assert.Equal(t, tt.wantCadence, window.CadenceMinutes, "days=%d", tt.days)
		assert.Equal(t, tt.wantDays, window.Days, "days=%d", tt.days)

		absDays := tt.wantDays
		if absDays < 0 {
			absDays = -absDays
		}
		wantPoints := absDays * (24 * 60 / tt.wantCadence)
		assert.Len(t, window.Labels, wantPoints, "days=%d", tt.days)
		assert.Len(t, window.LevelsCm, wantPoints, "days=%d", tt.days)
	}
}

func TestChart_Statistics(t *testing.T) {
	uc := newFixture(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	window, err := uc.Chart(3)
	require.NoError(t, err)

	assert.True(t, window.MaxCm > window.MinCm)
	assert.InDelta(t, window.MaxCm-window.MinCm, window.RangeCm, 0.01)
	assert.False(t, window.Past)

	past, err := uc.Chart(-3)
	require.NoError(t, err)
	assert.True(t, past.Past)
}

// TestDailyExtremes_SingleConstituent uses a synthetic semidiurnal model with
// a known phase so peak and trough times are analytic: with the epoch at
// midnight and a 180° phase, highs fall at half and one-and-a-half periods,
// the midnight trough is an excluded edge sample, and one low remains.
func TestDailyExtremes_SingleConstituent(t *testing.T) {
	epoch := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	params := []domain.ConstituentParam{
		{Name: "M2", AmplitudeCm: 100, PhaseDeg: 180},
	}
	station := store.Station{
		ID:           "synthetic",
		Name:         "Synthetic",
		DatumName:    "test datum",
		MeanLevelCm:  200,
		Epoch:        epoch,
		Constituents: params,
	}
	model, err := domain.NewModel(station.MeanLevelCm, station.Epoch, params)
	require.NoError(t, err)

	uc := NewTideUseCase(model, station, clockwork.NewFakeClockAt(epoch.Add(12*time.Hour)), observability.NewMetricsForTesting())

	resp, err := uc.DailyExtremes()
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", resp.Date)

	require.Len(t, resp.HighTides, 2)
	require.Len(t, resp.LowTides, 1)

	periodHours := 360.0 / 28.9841042 // M2 period ≈ 12.4206 h
	wantHighs := []time.Time{
		epoch.Add(time.Duration(0.5 * periodHours * float64(time.Hour))),
		epoch.Add(time.Duration(1.5 * periodHours * float64(time.Hour))),
	}
	for i, p := range resp.HighTides {
		got, err := time.Parse(time.RFC3339, p.Time)
		require.NoError(t, err)
		assert.InDelta(t, 0, got.Sub(wantHighs[i]).Minutes(), 5, "high %d", i)
		assert.Greater(t, p.LevelCm, 299.0, "high %d should be near the 300 cm crest", i)
	}

	wantLow := epoch.Add(time.Duration(periodHours * float64(time.Hour)))
	got, err := time.Parse(time.RFC3339, resp.LowTides[0].Time)
	require.NoError(t, err)
	assert.InDelta(t, 0, got.Sub(wantLow).Minutes(), 5)
	assert.Less(t, resp.LowTides[0].LevelCm, 101.0, "low should be near the 100 cm trough")
}
