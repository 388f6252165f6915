package domain

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Synthesize computes the sea level at each instant by harmonic superposition:
//
//	η(t) = A0 + Σ_k A_k · cos(ω_k·Δt − G_k)
//
// where Δt is the signed elapsed time in seconds between the model epoch and t.
// All instants are evaluated in one batch; cosine handles phase wrapping, and
// the whole computation stays in float64 so multi-year Δt values at semidiurnal
// speeds keep their precision. Any instant is valid, including far outside the
// calibration window. Levels are not clamped or rounded here.
func Synthesize(m *Model, times []time.Time) []float64 {
	elapsed := make([]float64, len(times))
	for i, t := range times {
		elapsed[i] = t.Sub(m.Epoch).Seconds()
	}

	levels := make([]float64, len(times))
	for _, c := range m.Constituents {
		for i, dt := range elapsed {
			levels[i] += c.Amplitude * math.Cos(c.Speed*dt-c.Phase)
		}
	}
	floats.AddConst(m.MeanLevel, levels)

	return levels
}

// SynthesizeAt computes the sea level at a single instant.
func SynthesizeAt(m *Model, t time.Time) float64 {
	return Synthesize(m, []time.Time{t})[0]
}
