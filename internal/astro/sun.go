package astro

import "math"

// Position is a geocentric apparent position of date.
type Position struct {
	Longitude float64 // ecliptic longitude, degrees [0, 360)
	Latitude  float64 // ecliptic latitude, degrees
	RA        float64 // right ascension, radians [0, 2π)
	Dec       float64 // declination, radians
	Distance  float64 // from the Earth's centre, AU
}

// nutation returns the low-precision nutation in longitude and the
// correction to the obliquity, both in degrees.
func nutation(t float64) (dpsi, deps float64) {
	omega := rad(125.04452 - 1934.136261*t)
	return -0.00478 * math.Sin(omega), 0.00256 * math.Cos(omega)
}

// obliquity returns the apparent obliquity of the ecliptic in radians.
func obliquity(t float64) float64 {
	eps0 := 23.4392911 - 0.0130042*t - 1.64e-7*t*t + 5.04e-7*t*t*t
	_, deps := nutation(t)
	return rad(eps0 + deps)
}

// toEquatorial fills RA and Dec from the ecliptic coordinates.
func (p *Position) toEquatorial(eps float64) {
	lam, beta := rad(p.Longitude), rad(p.Latitude)
	sinEps, cosEps := math.Sincos(eps)
	p.RA = NormRad(math.Atan2(math.Sin(lam)*cosEps-math.Tan(beta)*sinEps, math.Cos(lam)))
	p.Dec = math.Asin(math.Sin(beta)*cosEps + math.Cos(beta)*sinEps*math.Sin(lam))
}

// Sun returns the apparent position of the Sun at Julian day jd.
func Sun(jd float64) Position {
	t := centuries(jd)

	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := rad(357.52911 + 35999.05029*t - 0.0001537*t*t)
	e := 0.016708634 - 0.000042037*t - 0.0000001267*t*t

	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(m) +
		(0.019993-0.000101*t)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)

	trueLon := l0 + c
	v := m + rad(c)
	r := 1.000001018 * (1 - e*e) / (1 + e*math.Cos(v))

	omega := rad(125.04 - 1934.136*t)
	p := Position{
		Longitude: normDeg(trueLon - 0.00569 - 0.00478*math.Sin(omega)),
		Distance:  r,
	}
	p.toEquatorial(obliquity(t))
	return p
}

// Separation returns the angle between two positions on the sky, in
// radians. It uses the haversine form, which stays accurate near zero.
func Separation(a, b Position) float64 {
	sdd := math.Sin((b.Dec - a.Dec) / 2)
	sdr := math.Sin((b.RA - a.RA) / 2)
	h := sdd*sdd + math.Cos(a.Dec)*math.Cos(b.Dec)*sdr*sdr
	return 2 * math.Asin(math.Sqrt(math.Min(1, h)))
}
