package domain

import (
	"fmt"
	"time"
)

// Model is the calibrated tidal model for a single station. It is built once
// at startup and treated as read-only afterwards, so it can be shared across
// concurrent requests without synchronization.
type Model struct {
	// MeanLevel is the constant datum offset in centimeters. The station datum
	// is an opaque local reference; levels below it are valid, so nothing in
	// the model assumes non-negative heights.
	MeanLevel float64

	// Epoch is the fixed instant elapsed time is measured from when evaluating
	// constituent phases.
	Epoch time.Time

	Constituents []Constituent
}

// NewModel builds a Model from calibrated station parameters. Angular speeds
// are looked up from the standard table; an unknown constituent name is an
// error rather than a silent skip.
func NewModel(meanLevelCm float64, epoch time.Time, params []ConstituentParam) (*Model, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: model requires at least one constituent", ErrInvalidParameter)
	}

	constituents := make([]Constituent, len(params))
	for i, p := range params {
		speed, ok := SpeedFor(p.Name)
		if !ok {
			return nil, fmt.Errorf("unknown constituent: %s", p.Name)
		}
		constituents[i] = Constituent{
			Name:      p.Name,
			Speed:     speed,
			Amplitude: p.AmplitudeCm,
			Phase:     Deg2Rad(p.PhaseDeg),
		}
	}

	return &Model{
		MeanLevel:    meanLevelCm,
		Epoch:        epoch.UTC(),
		Constituents: constituents,
	}, nil
}

// ConstituentNames returns the names of the model's constituents in order.
func (m *Model) ConstituentNames() []string {
	names := make([]string, len(m.Constituents))
	for i, c := range m.Constituents {
		names[i] = c.Name
	}
	return names
}
