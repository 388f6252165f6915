package domain

import "math"

const secondsPerHour = 3600.0

// Constituent is one harmonic component of the tide at a station: a standard
// astronomical angular speed plus the site-specific amplitude and phase lag.
type Constituent struct {
	Name      string
	Speed     float64 // Angular speed in radians per second.
	Amplitude float64 // Amplitude in centimeters.
	Phase     float64 // Phase lag in radians.
}

// ConstituentParam holds a calibrated amplitude and phase for one constituent
// in the units station tables are published in (centimeters, degrees).
type ConstituentParam struct {
	Name        string
	AmplitudeCm float64
	PhaseDeg    float64
}

// StandardSpeeds contains tidal constituents with their angular speeds (deg/hour).
// Reference: https://www.pmel.noaa.gov/pubs/PDF/park2589/park2589.pdf
var StandardSpeeds = map[string]float64{
	// Principal lunar semidiurnal.
	"M2": 28.9841042,
	// Principal solar semidiurnal.
	"S2": 30.0000000,
	// Larger lunar elliptic semidiurnal.
	"N2": 28.4397295,
	// Lunisolar semidiurnal.
	"K2": 30.0821373,

	// Lunar diurnal.
	"K1": 15.0410686,
	// Lunar diurnal.
	"O1": 13.9430356,
	// Solar diurnal.
	"P1": 14.9589314,
	// Solar diurnal.
	"Q1": 13.3986609,

	// Shallow water constituents.
	"M4":  57.9682084,
	"M6":  86.9523127,
	"MK3": 44.0251729,
	"S4":  60.0000000,
	"MN4": 57.4238337,
	"MS4": 58.9841042,

	// Long period.
	"Mf":  1.0980331,
	"Mm":  0.5443747,
	"Ssa": 0.0821373,
	"Sa":  0.0410686,
}

// SpeedFor returns the standard angular speed for a constituent name,
// converted to radians per second.
func SpeedFor(name string) (float64, bool) {
	degPerHr, ok := StandardSpeeds[name]
	if !ok {
		return 0, false
	}
	return Deg2Rad(degPerHr) / secondsPerHour, true
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
