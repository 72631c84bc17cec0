package ephemeris_test

import (
	"errors"
	"math"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunaphase/internal/domain"
	"lunaphase/internal/ephemeris"
)

var evening = civil.Time{Hour: 22}

func TestProvider_Sample_Ranges(t *testing.T) {
	p := ephemeris.New(nil)
	start := civil.Date{Year: 2026, Month: 1, Day: 1}

	for i := 0; i < 60; i++ {
		date := start.AddDays(i)
		s, err := p.Sample(date, evening)
		require.NoError(t, err, "date %s", date)

		assert.GreaterOrEqual(t, s.Illumination, 0.0)
		assert.LessOrEqual(t, s.Illumination, 1.0)
		assert.GreaterOrEqual(t, s.PhaseAngle, 0.0)
		assert.Less(t, s.PhaseAngle, 360.0)

		for _, c := range s.Cardinals() {
			assert.False(t, c.Date.Before(date), "%s on %s is before %s", c.Phase, c.Date, date)
			assert.LessOrEqual(t, c.Date.DaysSince(date), 30)
		}
	}
}

func TestProvider_Sample_FullMoon(t *testing.T) {
	// Full moon 2024-01-25 17:54 UTC.
	s, err := ephemeris.New(nil).Sample(civil.Date{Year: 2024, Month: 1, Day: 25}, evening)
	require.NoError(t, err)

	assert.Greater(t, s.IlluminationPercent(), 99.0)
	assert.InDelta(t, 180.0, s.PhaseAngle, 8.0)
	assert.Equal(t, civil.Date{Year: 2024, Month: 2, Day: 9}, s.NextNewMoon)
	assert.Equal(t, civil.Date{Year: 2024, Month: 2, Day: 24}, s.NextFullMoon)
}

func TestProvider_Sample_WaxingAndWaning(t *testing.T) {
	p := ephemeris.New(nil)

	// 2024-01-15: a few days after the 11th's new moon.
	waxing, err := p.Sample(civil.Date{Year: 2024, Month: 1, Day: 15}, evening)
	require.NoError(t, err)
	assert.Less(t, waxing.PhaseAngle, 180.0)
	assert.Equal(t, civil.Date{Year: 2024, Month: 1, Day: 18}, waxing.NextFirstQuarter)

	// 2024-01-30: five days after full moon.
	waning, err := p.Sample(civil.Date{Year: 2024, Month: 1, Day: 30}, evening)
	require.NoError(t, err)
	assert.Greater(t, waning.PhaseAngle, 180.0)
	assert.Equal(t, civil.Date{Year: 2024, Month: 2, Day: 2}, waning.NextLastQuarter)
}

func TestProvider_Sample_AngleMatchesIllumination(t *testing.T) {
	p := ephemeris.New(nil)
	start := civil.Date{Year: 2025, Month: 3, Day: 1}

	for i := 0; i < 30; i++ {
		s, err := p.Sample(start.AddDays(i), evening)
		require.NoError(t, err)

		// k = (1 - cos(angle)) / 2 for an angle measured from new moon.
		want := (1 - cosDeg(s.PhaseAngle)) / 2
		assert.InDelta(t, want, s.Illumination, 1e-6, "day %d", i)
	}
}

func TestProvider_Sample_InvalidObservation(t *testing.T) {
	p := ephemeris.New(nil)

	_, err := p.Sample(civil.Date{Year: 2026, Month: 2, Day: 30}, evening)
	assert.True(t, errors.Is(err, domain.ErrInvalidObservation), "got %v", err)

	_, err = p.Sample(civil.Date{Year: 2026, Month: 2, Day: 1}, civil.Time{Hour: 25})
	assert.True(t, errors.Is(err, domain.ErrInvalidObservation), "got %v", err)
}

func TestFixed_RecordsCalls(t *testing.T) {
	date := civil.Date{Year: 2026, Month: 10, Day: 19}
	f := ephemeris.NewFixed(ephemeris.SameDay(0.5, 90, date))

	s, err := f.Sample(date, evening)
	require.NoError(t, err)
	assert.Equal(t, 50.0, s.IlluminationPercent())
	assert.Equal(t, []domain.Observation{{Date: date, Time: evening}}, f.Calls())

	boom := errors.New("boom")
	_, err = ephemeris.Failing(boom).Sample(date, evening)
	assert.ErrorIs(t, err, boom)
}

func cosDeg(d float64) float64 { return math.Cos(d * math.Pi / 180) }
