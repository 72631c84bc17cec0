package astro

import (
	"errors"
	"math"
)

// Elongations, in degrees of ecliptic longitude, of the four cardinal phases.
const (
	ElongationNew          = 0.0
	ElongationFirstQuarter = 90.0
	ElongationFull         = 180.0
	ElongationLastQuarter  = 270.0
)

const (
	searchStep     = 0.5  // days; the Moon gains at most ~7.5° per step
	searchHorizon  = 31.0 // days; longer than one synodic month
	bisectionSteps = 32
)

// ErrNoLunation is returned when no crossing is found within one synodic
// month, which only happens if the model produced non-finite values.
var ErrNoLunation = errors.New("astro: no lunation found within search horizon")

// Elongation returns the Moon's apparent ecliptic longitude minus the
// Sun's, in degrees [0, 360).
func Elongation(jd float64) float64 {
	return normDeg(Moon(jd).Longitude - Sun(jd).Longitude)
}

// offset returns Elongation(jd) - target in (-180, 180].
func offset(jd, target float64) float64 {
	x := normDeg(Elongation(jd) - target)
	if x > 180 {
		x -= 360
	}
	return x
}

// NextLunation returns the first Julian day strictly after jd at which the
// Moon's elongation reaches target degrees.
func NextLunation(jd, target float64) (float64, error) {
	a := jd
	fa := offset(a, target)
	for step := searchStep; step <= searchHorizon; step += searchStep {
		b := jd + step
		fb := offset(b, target)
		if math.IsNaN(fa) || math.IsNaN(fb) {
			return 0, ErrNoLunation
		}
		// The elongation only grows, so the target is crossed where the
		// offset goes from negative to non-negative. The wrap at ±180 runs
		// the other way and is skipped.
		if fa < 0 && fb >= 0 {
			return bisect(a, b, target), nil
		}
		a, fa = b, fb
	}
	return 0, ErrNoLunation
}

func bisect(a, b, target float64) float64 {
	for i := 0; i < bisectionSteps; i++ {
		mid := (a + b) / 2
		if offset(mid, target) < 0 {
			a = mid
		} else {
			b = mid
		}
	}
	return b
}
