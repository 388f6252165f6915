package domain

import (
	"fmt"
	"time"
)

// Sample is a single sea level prediction at a specific time.
type Sample struct {
	Time  time.Time
	Level float64
}

// Series is a sequence of samples ordered by time ascending.
type Series []Sample

// Direction selects which way a generated window extends from its center.
type Direction int

const (
	// Forward generates timestamps after the center instant.
	Forward Direction = iota
	// Backward generates timestamps before the center instant.
	Backward
)

// GenerateSeries samples the model at a fixed cadence starting from center.
// Forward series run center, center+cadence, ... Backward series are generated
// from center going back in time and then reordered, so the result is always
// chronological ascending. All levels come from a single batched Synthesize
// call. The choice of cadence is the caller's policy; the generator only
// rejects values it cannot work with.
func GenerateSeries(m *Model, center time.Time, cadenceMinutes, numPoints int, dir Direction) (Series, error) {
	if cadenceMinutes <= 0 {
		return nil, fmt.Errorf("%w: cadence must be positive, got %d minutes", ErrInvalidParameter, cadenceMinutes)
	}
	if numPoints <= 0 {
		return nil, fmt.Errorf("%w: point count must be positive, got %d", ErrInvalidParameter, numPoints)
	}

	step := time.Duration(cadenceMinutes) * time.Minute
	if dir == Backward {
		step = -step
	}

	times := make([]time.Time, numPoints)
	for i := range times {
		times[i] = center.Add(time.Duration(i) * step)
	}

	if dir == Backward {
		for i, j := 0, len(times)-1; i < j; i, j = i+1, j-1 {
			times[i], times[j] = times[j], times[i]
		}
	}

	levels := Synthesize(m, times)

	series := make(Series, numPoints)
	for i := range series {
		series[i] = Sample{Time: times[i], Level: levels[i]}
	}
	return series, nil
}
