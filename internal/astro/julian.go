package astro

import (
	"math"
	"time"
)

const (
	unixEpochJD    = 2440587.5
	j2000          = 2451545.0
	secondsPerDay  = 86400.0
	daysPerCentury = 36525.0

	// AU is the astronomical unit in kilometres.
	AU = 149597870.7
)

// JulianDay returns the Julian day of t.
func JulianDay(t time.Time) float64 {
	sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return unixEpochJD + sec/secondsPerDay
}

// TimeOf converts a Julian day back to a UTC time, rounded to the second.
func TimeOf(jd float64) time.Time {
	sec := math.Round((jd - unixEpochJD) * secondsPerDay)
	return time.Unix(int64(sec), 0).UTC()
}

// centuries returns Julian centuries since J2000.0.
func centuries(jd float64) float64 {
	return (jd - j2000) / daysPerCentury
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }
func deg(rad float64) float64 { return rad * 180 / math.Pi }

// normDeg reduces an angle to [0, 360).
func normDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// NormRad reduces an angle to [0, 2π).
func NormRad(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
