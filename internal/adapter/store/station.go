package store

import (
	"time"

	"github.com/ngtrthanh/tide-app/internal/domain"
)

// HonDau returns the bundled calibration for the Hòn Dấu observation station
// (Đồ Sơn, Hải Phòng). The 13-constituent table and the mean level were fitted
// against 2160 hours of observed levels (2026-01-01 to 2026-03-31). The datum
// is a local reference: observed levels below it occur, so it is not the chart
// datum and the mean level must stay an opaque offset.
func HonDau() Station {
	return Station{
		ID:          "hondau",
		Name:        "Hòn Dấu",
		Location:    "Đảo Hòn Dấu, Đồ Sơn, Hải Phòng",
		Coordinates: "106°49'E, 20°40'N",
		DatumName:   "Hòn Dấu local reference datum",
		MeanLevelCm: 214,
		Epoch:       time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Constituents: []domain.ConstituentParam{
			{Name: "M2", AmplitudeCm: 5.73, PhaseDeg: 47.24},
			{Name: "S2", AmplitudeCm: 5.29, PhaseDeg: 105.85},
			{Name: "K1", AmplitudeCm: 89.0, PhaseDeg: 79.71},
			{Name: "O1", AmplitudeCm: 109.06, PhaseDeg: 41.55},
			{Name: "M4", AmplitudeCm: 1.36, PhaseDeg: 210.36},
			{Name: "MS4", AmplitudeCm: 1.2, PhaseDeg: 286.71},
			{Name: "M6", AmplitudeCm: 0.22, PhaseDeg: 180.83},
			{Name: "N2", AmplitudeCm: 0.6, PhaseDeg: 51.48},
			{Name: "K2", AmplitudeCm: 2.9, PhaseDeg: 60.38},
			{Name: "P1", AmplitudeCm: 25.67, PhaseDeg: 84.07},
			{Name: "Q1", AmplitudeCm: 20.14, PhaseDeg: 365.01},
			{Name: "Sa", AmplitudeCm: 8.03, PhaseDeg: 196.26},
			{Name: "Ssa", AmplitudeCm: 2.35, PhaseDeg: 97.56},
		},
		Calibration: Calibration{
			Window:   "2026-01-01 to 2026-03-31",
			Source:   "tide3m.csv observations (2160 hours)",
			MAECm:    7.07,
			RMSECm:   8.94,
			MaxErrCm: 31.92,
		},
	}
}

// ReferenceObservations returns the observed hourly levels (cm) for the
// reference validation day, 2026-02-01, local midnight to 23:00.
func ReferenceObservations() (date time.Time, levels []float64) {
	date = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	levels = []float64{
		302, 343, 374, 392, 395, 385, 360, 325, 284, 238,
		190, 142, 97, 60, 30, 9, -4, 0, 4, 25,
		57, 100, 150, 202,
	}
	return date, levels
}
