package ephemeris

import (
	"fmt"
	"math"
	"time"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"

	"lunaphase/internal/astro"
	"lunaphase/internal/domain"
)

// fallbackDegreesPerPercent maps 0..100 illumination onto 0..360 degrees.
const fallbackDegreesPerPercent = 3.6

// Provider computes samples from the astro model.
type Provider struct {
	log *zap.Logger
}

// New returns a Provider. A nil logger is replaced by a no-op logger.
func New(log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{log: log}
}

var _ domain.EphemerisProvider = (*Provider)(nil)

// Sample returns the raw figures for date at timeOfDay, read as UTC.
func (p *Provider) Sample(date civil.Date, timeOfDay civil.Time) (domain.EphemerisSample, error) {
	if !date.IsValid() || !timeOfDay.IsValid() {
		return domain.EphemerisSample{}, fmt.Errorf("%w: %s %s", domain.ErrInvalidObservation, date, timeOfDay)
	}
	at := domain.Observation{Date: date, Time: timeOfDay}.DateTime().In(time.UTC)
	jd := astro.JulianDay(at)

	sun := astro.Sun(jd)
	moon := astro.Moon(jd)

	illum := astro.Illumination(sun, moon)
	if !finite(illum) {
		return domain.EphemerisSample{}, fmt.Errorf("%w: illumination at %s is not finite", domain.ErrEphemeris, at)
	}

	angle, exact := angleFor(sun, moon, illum)
	if !exact {
		p.log.Debug("phase angle degenerate, using linear fallback",
			zap.Time("at", at), zap.Float64("angle", angle))
	}

	s := domain.EphemerisSample{
		Illumination: illum,
		PhaseAngle:   angle,
	}
	targets := []struct {
		elongation float64
		dst        *civil.Date
	}{
		{astro.ElongationNew, &s.NextNewMoon},
		{astro.ElongationFirstQuarter, &s.NextFirstQuarter},
		{astro.ElongationFull, &s.NextFullMoon},
		{astro.ElongationLastQuarter, &s.NextLastQuarter},
	}
	for _, tg := range targets {
		next, err := astro.NextLunation(jd, tg.elongation)
		if err != nil {
			return domain.EphemerisSample{}, fmt.Errorf("%w: next lunation %.0f° after %s: %v",
				domain.ErrEphemeris, tg.elongation, at, err)
		}
		*tg.dst = civil.DateOf(astro.TimeOf(next))
	}
	return s, nil
}

// angleFor returns the phase angle for the given positions, or the linear
// estimate illum% * 3.6 when the geometry is degenerate. The estimate is
// never reflected for a waning moon. exact is false when it was used.
func angleFor(sun, moon astro.Position, illum float64) (angle float64, exact bool) {
	if angle, ok := phaseAngle(sun, moon); ok {
		return angle, true
	}
	return illum * 100 * fallbackDegreesPerPercent, false
}

// phaseAngle returns the phase angle in degrees, 0 at new moon and 180 at
// full, reflected into (180, 360) while the Moon wanes. ok is false when
// the Earth-Moon-Sun triangle is degenerate.
func phaseAngle(sun, moon astro.Position) (angle float64, ok bool) {
	rm := moon.Distance
	rs := sun.Distance
	if rm <= 0 || rs <= 0 {
		return 0, false
	}
	psi := astro.Separation(sun, moon)

	// Moon-Sun distance, then the angle at the Moon.
	d := math.Sqrt(rm*rm + rs*rs - 2*rm*rs*math.Cos(psi))
	den := 2 * rm * d
	if den == 0 || !finite(den) {
		return 0, false
	}
	cosI := (rm*rm + d*d - rs*rs) / den
	if !finite(cosI) || cosI < -1 || cosI > 1 {
		return 0, false
	}
	angle = 180 - math.Acos(cosI)*180/math.Pi

	if astro.NormRad(moon.RA-sun.RA) < math.Pi {
		return angle, true
	}
	return math.Mod(360-angle, 360), true
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
