package astro

import "math"

// lrTerm is one periodic term of the Moon's longitude (1e-6 degree) and
// distance (1e-3 km).
type lrTerm struct {
	d, m, mp, f float64
	l, r        float64
}

// bTerm is one periodic term of the Moon's latitude (1e-6 degree).
type bTerm struct {
	d, m, mp, f float64
	b           float64
}

// Leading terms of Meeus table 47.A.
var moonLR = []lrTerm{
	{0, 0, 1, 0, 6288774, -20905355},
	{2, 0, -1, 0, 1274027, -3699111},
	{2, 0, 0, 0, 658314, -2955968},
	{0, 0, 2, 0, 213618, -569925},
	{0, 1, 0, 0, -185116, 48888},
	{0, 0, 0, 2, -114332, -3149},
	{2, 0, -2, 0, 58793, 246158},
	{2, -1, -1, 0, 57066, -152138},
	{2, 0, 1, 0, 53322, -170733},
	{2, -1, 0, 0, 45758, -204586},
	{0, 1, -1, 0, -40923, -129620},
	{1, 0, 0, 0, -34720, 108743},
	{0, 1, 1, 0, -30383, 104755},
	{2, 0, 0, -2, 15327, 10321},
	{0, 0, 1, 2, -12528, 0},
	{0, 0, 1, -2, 10980, 79661},
	{4, 0, -1, 0, 10675, -34782},
	{0, 0, 3, 0, 10034, -23210},
	{4, 0, -2, 0, 8548, -21636},
	{2, 1, -1, 0, -7888, 24208},
	{2, 1, 0, 0, -6766, 30824},
	{1, 0, -1, 0, -5163, -8379},
	{1, 1, 0, 0, 4987, -16675},
	{2, -1, 1, 0, 4036, -12831},
}

// Leading terms of Meeus table 47.B.
var moonB = []bTerm{
	{0, 0, 0, 1, 5128122},
	{0, 0, 1, 1, 280602},
	{0, 0, 1, -1, 277693},
	{2, 0, 0, -1, 173237},
	{2, 0, -1, 1, 55413},
	{2, 0, -1, -1, 46271},
	{2, 0, 0, 1, 32573},
	{0, 0, 2, 1, 17198},
	{2, 0, 1, -1, 9266},
	{0, 0, 2, -1, 8822},
	{2, -1, 0, -1, 8216},
	{2, 0, -2, -1, 4324},
	{2, 0, 1, 1, 4200},
	{2, 1, 0, -1, -3359},
}

// eccentricityFactor scales terms involving the Sun's anomaly M.
func eccentricityFactor(m, e float64) float64 {
	switch math.Abs(m) {
	case 1:
		return e
	case 2:
		return e * e
	default:
		return 1
	}
}

// Moon returns the apparent position of the Moon at Julian day jd.
func Moon(jd float64) Position {
	t := centuries(jd)

	lp := 218.3164477 + 481267.88123421*t - 0.0015786*t*t
	d := 297.8501921 + 445267.1114034*t - 0.0018819*t*t
	m := 357.5291092 + 35999.0502909*t - 0.0001536*t*t
	mp := 134.9633964 + 477198.8675055*t + 0.0087414*t*t
	f := 93.2720950 + 483202.0175233*t - 0.0036539*t*t

	a1 := rad(119.75 + 131.849*t)
	a2 := rad(53.09 + 479264.290*t)
	a3 := rad(313.45 + 481266.484*t)
	e := 1 - 0.002516*t - 0.0000074*t*t

	dr, mr, mpr, fr := rad(d), rad(m), rad(mp), rad(f)

	var sl, sr, sb float64
	for _, k := range moonLR {
		arg := k.d*dr + k.m*mr + k.mp*mpr + k.f*fr
		ef := eccentricityFactor(k.m, e)
		sl += k.l * ef * math.Sin(arg)
		sr += k.r * ef * math.Cos(arg)
	}
	for _, k := range moonB {
		arg := k.d*dr + k.m*mr + k.mp*mpr + k.f*fr
		sb += k.b * eccentricityFactor(k.m, e) * math.Sin(arg)
	}

	lpr := rad(lp)
	sl += 3958*math.Sin(a1) + 1962*math.Sin(lpr-fr) + 318*math.Sin(a2)
	sb += -2235*math.Sin(lpr) + 382*math.Sin(a3) +
		175*math.Sin(a1-fr) + 175*math.Sin(a1+fr) +
		127*math.Sin(lpr-mpr) - 115*math.Sin(lpr+mpr)

	dpsi, _ := nutation(t)
	p := Position{
		Longitude: normDeg(lp + sl/1e6 + dpsi),
		Latitude:  sb / 1e6,
		Distance:  (385000.56 + sr/1000) / AU,
	}
	p.toEquatorial(obliquity(t))
	return p
}

// SunMoonEarthAngle returns the angle at the Moon between the directions
// to the Sun and to the Earth, in radians. It is π at new moon and 0 at
// full moon.
func SunMoonEarthAngle(sun, moon Position) float64 {
	psi := Separation(sun, moon)
	return math.Atan2(sun.Distance*math.Sin(psi), moon.Distance-sun.Distance*math.Cos(psi))
}

// Illumination returns the illuminated fraction of the Moon's disc, 0..1.
func Illumination(sun, moon Position) float64 {
	return (1 + math.Cos(SunMoonEarthAngle(sun, moon))) / 2
}
