// Package http exposes the tide prediction use case over a Gin HTTP API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ngtrthanh/tide-app/internal/domain"
	"github.com/ngtrthanh/tide-app/internal/usecase"
)

// Handler handles HTTP requests for tide predictions.
type Handler struct {
	tideUC *usecase.TideUseCase
}

// NewHandler creates a new HTTP handler.
func NewHandler(tideUC *usecase.TideUseCase) *Handler {
	return &Handler{
		tideUC: tideUC,
	}
}

// statusFor maps core errors to HTTP status codes. Invalid parameters and
// mismatched validation inputs are the caller's fault.
func statusFor(err error) int {
	if errors.Is(err, domain.ErrInvalidParameter) || errors.Is(err, domain.ErrLengthMismatch) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// StationInfo handles GET /.
func (h *Handler) StationInfo(c *gin.Context) {
	info := h.tideUC.Info()
	c.JSON(http.StatusOK, gin.H{
		"title":   fmt.Sprintf("Tide Prediction API - %s Station", info.Station),
		"station": info,
		"endpoints": gin.H{
			"/v1/tide/current":    "Current predicted level",
			"/v1/tide/extremes":   "Today's high and low tides",
			"/v1/tide/forecast":   "Hourly forecast (?days=N, max 30)",
			"/v1/tide/chart":      "Forecast chart (?days=N, -365..365)",
			"/v1/tide/chart/data": "Chart series as JSON",
			"/v1/tide/validate":   "Accuracy report against observed levels",
			"/v1/constituents":    "Known tidal constituents",
		},
	})
}

// GetCurrent handles GET /v1/tide/current.
func (h *Handler) GetCurrent(c *gin.Context) {
	c.JSON(http.StatusOK, h.tideUC.Current())
}

// GetDailyExtremes handles GET /v1/tide/extremes.
func (h *Handler) GetDailyExtremes(c *gin.Context) {
	resp, err := h.tideUC.DailyExtremes()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetForecast handles GET /v1/tide/forecast.
func (h *Handler) GetForecast(c *gin.Context) {
	days, err := queryInt(c, "days", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.tideUC.Forecast(days)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetChartData handles GET /v1/tide/chart/data.
func (h *Handler) GetChartData(c *gin.Context) {
	days, err := queryInt(c, "days", 3)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	window, err := h.tideUC.Chart(days)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, window)
}

// GetChart handles GET /v1/tide/chart and renders the chart.js page.
func (h *Handler) GetChart(c *gin.Context) {
	days, err := queryInt(c, "days", 3)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	window, err := h.tideUC.Chart(days)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	labelsJSON, err := json.Marshal(window.Labels)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	levelsJSON, err := json.Marshal(window.LevelsCm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	info := h.tideUC.Info()
	c.HTML(http.StatusOK, "chart.html", gin.H{
		"Station":     info.Station,
		"Location":    info.Location,
		"Coordinates": info.Coordinates,
		"Datum":       info.Datum,
		"Days":        window.Days,
		"Past":        window.Past,
		"Cadence":     window.CadenceMinutes,
		"MaxCm":       window.MaxCm,
		"MinCm":       window.MinCm,
		"RangeCm":     window.RangeCm,
		"Labels":      template.JS(labelsJSON),
		"Levels":      template.JS(levelsJSON),
	})
}

// validateRequest is the POST /v1/tide/validate body: a start date and the
// observed hourly levels from that date's midnight UTC onward.
type validateRequest struct {
	Date       string    `json:"date" binding:"required"`
	ObservedCm []float64 `json:"observed_cm" binding:"required"`
}

// GetValidation handles GET /v1/tide/validate using the bundled reference day.
func (h *Handler) GetValidation(c *gin.Context) {
	resp, err := h.tideUC.ValidateReference()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PostValidation handles POST /v1/tide/validate with caller-supplied observations.
func (h *Handler) PostValidation(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid date (expected YYYY-MM-DD): %v", err)})
		return
	}

	resp, err := h.tideUC.Validate(date, req.ObservedCm)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ConstituentListResponse is the response for listing constituents.
type ConstituentListResponse struct {
	Name          string  `json:"name"`
	SpeedDegPerHr float64 `json:"speed_deg_per_hr"`
	Description   string  `json:"description,omitempty"`
}

// GetConstituentsList returns all constituents with a standard angular speed.
func (h *Handler) GetConstituentsList(c *gin.Context) {
	descriptions := map[string]string{
		"M2":  "Principal lunar semidiurnal",
		"S2":  "Principal solar semidiurnal",
		"N2":  "Larger lunar elliptic semidiurnal",
		"K2":  "Lunisolar semidiurnal",
		"K1":  "Lunar diurnal",
		"O1":  "Lunar diurnal",
		"P1":  "Solar diurnal",
		"Q1":  "Solar diurnal",
		"M4":  "Shallow water overtide of M2",
		"M6":  "Shallow water overtide of M2",
		"MK3": "Shallow water terdiurnal",
		"S4":  "Shallow water overtide of S2",
		"MN4": "Shallow water quarter diurnal",
		"MS4": "Shallow water quarter diurnal",
		"Mf":  "Lunisolar fortnightly",
		"Mm":  "Lunar monthly",
		"Ssa": "Solar semiannual",
		"Sa":  "Solar annual",
	}

	names := make([]string, 0, len(domain.StandardSpeeds))
	for name := range domain.StandardSpeeds {
		names = append(names, name)
	}
	sort.Strings(names)

	response := make([]ConstituentListResponse, len(names))
	for i, name := range names {
		response[i] = ConstituentListResponse{
			Name:          name,
			SpeedDegPerHr: domain.StandardSpeeds[name],
			Description:   descriptions[name],
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"constituents": response,
		"count":        len(response),
	})
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, name string, defaultValue int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %w", name, err)
	}
	return v, nil
}
