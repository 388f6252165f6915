package domain

import (
	"fmt"
	"sort"
	"time"
)

// Kind tags an extrema event as a high or low tide.
type Kind string

const (
	High Kind = "HIGH"
	Low  Kind = "LOW"
)

// Event is a detected high or low tide.
type Event struct {
	Time  time.Time
	Level float64
	Kind  Kind
}

// FindExtrema scans a chronological series for local maxima (high tides) and
// minima (low tides) and returns them sorted by time.
//
// A sample is a candidate when it is strictly higher (lower) than its
// neighbors; a flat plateau counts once, at its first index. The first and
// last samples are never candidates. minSeparation is then enforced per kind:
// candidates are accepted in order of magnitude (highest highs, lowest lows
// first), and a candidate closer than minSeparation samples to an already
// accepted one of the same kind is dropped. Suppressing by magnitude rather
// than scan order keeps the genuinely larger event when two fall inside the
// same window. The right minSeparation depends on the series cadence, so it
// stays a caller parameter; at a 5-minute cadence, 60 samples spans 5 hours.
func FindExtrema(series Series, minSeparation int) ([]Event, error) {
	if minSeparation < 0 {
		return nil, fmt.Errorf("%w: minimum separation must not be negative, got %d", ErrInvalidParameter, minSeparation)
	}

	events := make([]Event, 0)
	for _, idx := range suppress(series, candidates(series, above), minSeparation, above) {
		events = append(events, Event{Time: series[idx].Time, Level: series[idx].Level, Kind: High})
	}
	for _, idx := range suppress(series, candidates(series, below), minSeparation, below) {
		events = append(events, Event{Time: series[idx].Time, Level: series[idx].Level, Kind: Low})
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	return events, nil
}

func above(a, b float64) bool { return a > b }
func below(a, b float64) bool { return a < b }

// candidates returns indices of local extrema under the two-neighbor rule,
// collapsing plateaus to their first index. Edge samples are skipped: with
// only one neighbor they cannot be classified, even on a monotonic run.
func candidates(series Series, beyond func(a, b float64) bool) []int {
	idxs := make([]int, 0)

	i := 1
	for i < len(series)-1 {
		if !beyond(series[i].Level, series[i-1].Level) {
			i++
			continue
		}
		// Walk to the end of any plateau starting at i.
		j := i
		for j < len(series)-1 && series[j+1].Level == series[j].Level {
			j++
		}
		if j < len(series)-1 && beyond(series[i].Level, series[j+1].Level) {
			idxs = append(idxs, i)
		}
		i = j + 1
	}
	return idxs
}

// suppress greedily accepts candidates in order of decreasing prominence and
// drops any within minSeparation samples of an accepted one.
func suppress(series Series, cands []int, minSeparation int, beyond func(a, b float64) bool) []int {
	order := make([]int, len(cands))
	copy(order, cands)
	sort.SliceStable(order, func(i, j int) bool {
		return beyond(series[order[i]].Level, series[order[j]].Level)
	})

	accepted := make([]int, 0, len(order))
	for _, c := range order {
		ok := true
		for _, a := range accepted {
			if abs(c-a) < minSeparation {
				ok = false
				break
			}
		}
		if ok {
			accepted = append(accepted, c)
		}
	}

	sort.Ints(accepted)
	return accepted
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
