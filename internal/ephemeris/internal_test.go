package ephemeris

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"lunaphase/internal/astro"
)

func TestPhaseAngle_Degenerate(t *testing.T) {
	sun := astro.Position{Distance: 1}

	_, ok := phaseAngle(sun, astro.Position{Distance: 0})
	assert.False(t, ok, "zero Earth-Moon distance")

	_, ok = phaseAngle(astro.Position{Distance: 0}, astro.Position{Distance: 0.0025})
	assert.False(t, ok, "zero Earth-Sun distance")

	_, ok = phaseAngle(sun, astro.Position{Distance: math.NaN()})
	assert.False(t, ok, "NaN distance")
}

func TestPhaseAngle_Reflection(t *testing.T) {
	sun := astro.Position{RA: 1.0, Dec: 0, Distance: 1}

	// Moon 90° east of the Sun: waxing, first quarter.
	east := astro.Position{RA: 1.0 + math.Pi/2, Dec: 0, Distance: 0.00257}
	angle, ok := phaseAngle(sun, east)
	assert.True(t, ok)
	assert.InDelta(t, 90.0, angle, 0.5)

	// Moon 90° west of the Sun: waning, last quarter.
	west := astro.Position{RA: 1.0 - math.Pi/2, Dec: 0, Distance: 0.00257}
	angle, ok = phaseAngle(sun, west)
	assert.True(t, ok)
	assert.InDelta(t, 270.0, angle, 0.5)
}

func TestAngleFor_LinearFallback(t *testing.T) {
	sun := astro.Position{RA: 1.0, Dec: 0, Distance: 1}

	angle, exact := angleFor(sun, astro.Position{RA: 1.0 + math.Pi/2, Distance: 0}, 0.4)
	assert.False(t, exact)
	assert.InDelta(t, 144.0, angle, 1e-9)

	// A Moon west of the Sun would be reflected past 180 by the exact
	// formula; the estimate is left as is.
	angle, exact = angleFor(sun, astro.Position{RA: 1.0 - math.Pi/2, Distance: 0}, 0.4)
	assert.False(t, exact)
	assert.InDelta(t, 144.0, angle, 1e-9)

	angle, exact = angleFor(sun, astro.Position{RA: 1.0, Distance: math.NaN()}, 1)
	assert.False(t, exact)
	assert.InDelta(t, 360.0, angle, 1e-9)
}

func TestAngleFor_Exact(t *testing.T) {
	sun := astro.Position{RA: 1.0, Dec: 0, Distance: 1}
	west := astro.Position{RA: 1.0 - math.Pi/2, Dec: 0, Distance: 0.00257}

	angle, exact := angleFor(sun, west, 0.5)
	assert.True(t, exact)
	assert.InDelta(t, 270.0, angle, 0.5)
}
