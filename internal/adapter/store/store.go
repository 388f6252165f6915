// Package store provides sources of station calibration data.
package store

import (
	"time"

	"github.com/ngtrthanh/tide-app/internal/domain"
)

// Station bundles everything needed to build the tidal model for one site,
// plus the metadata served alongside predictions.
type Station struct {
	ID           string
	Name         string
	Location     string
	Coordinates  string
	DatumName    string
	MeanLevelCm  float64
	Epoch        time.Time
	Constituents []domain.ConstituentParam
	Calibration  Calibration
}

// Calibration records how the station's constituent table was fitted.
type Calibration struct {
	Window   string
	Source   string
	MAECm    float64
	RMSECm   float64
	MaxErrCm float64
}

// Loader is the interface for loading calibrated constituent parameters.
type Loader interface {
	// LoadStation loads parameters for a named station (e.g., "hondau").
	LoadStation(stationID string) ([]domain.ConstituentParam, error)
}
