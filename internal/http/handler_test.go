package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngtrthanh/tide-app/internal/adapter/store"
	"github.com/ngtrthanh/tide-app/internal/config"
	"github.com/ngtrthanh/tide-app/internal/domain"
	"github.com/ngtrthanh/tide-app/internal/observability"
	"github.com/ngtrthanh/tide-app/internal/usecase"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	station := store.HonDau()
	model, err := domain.NewModel(station.MeanLevelCm, station.Epoch, station.Constituents)
	require.NoError(t, err)

	metrics := observability.NewMetricsForTesting()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC))
	tideUC := usecase.NewTideUseCase(model, station, clock, metrics)

	return SetupRouter(tideUC, &config.Config{Port: "8080"}, metrics)
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStationInfo(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hòn Dấu")
	assert.Contains(t, w.Body.String(), "calibration")
}

func TestGetCurrent(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/tide/current", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp usecase.CurrentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-02-01T12:00:00Z", resp.TimeUTC)
	assert.NotZero(t, resp.LevelCm)
}

func TestGetForecast(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/tide/forecast?days=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp usecase.ForecastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.ForecastDays)
	assert.Len(t, resp.Forecast, 48)
}

func TestGetForecast_BadDays(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/tide/forecast?days=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDailyExtremes(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/tide/extremes", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp usecase.ExtremesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-02-01", resp.Date)
}

func TestGetChartData(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/tide/chart/data?days=-3", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp usecase.ChartWindow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Past)
	assert.Equal(t, -3, resp.Days)
	assert.Equal(t, 15, resp.CadenceMinutes)
	assert.Len(t, resp.LevelsCm, 3*96)
}

func TestGetChart_HTML(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/tide/chart?days=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "tideChart")
}

func TestGetValidation_ReferenceDay(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/tide/validate", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp usecase.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-02-01", resp.ValidationDate)
	assert.Len(t, resp.Comparison, 24)
}

func TestPostValidation(t *testing.T) {
	router := newTestRouter(t)

	body := `{"date":"2026-03-10","observed_cm":[210,230,250,260]}`
	w := doRequest(t, router, http.MethodPost, "/v1/tide/validate", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp usecase.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Comparison, 4)
}

func TestPostValidation_BadRequests(t *testing.T) {
	router := newTestRouter(t)

	// Malformed date.
	w := doRequest(t, router, http.MethodPost, "/v1/tide/validate", `{"date":"01/02/2026","observed_cm":[1]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing observations.
	w = doRequest(t, router, http.MethodPost, "/v1/tide/validate", `{"date":"2026-03-10"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetConstituentsList(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/constituents", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(domain.StandardSpeeds), resp.Count)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
