package types

import "cloud.google.com/go/civil"

// DefaultObservationTime is the evening time used when a caller gives only
// a date.
var DefaultObservationTime = civil.Time{Hour: 22}

// Observation is the instant a snapshot describes. It is read as UTC; no
// time zone correction is applied.
type Observation struct {
	Date civil.Date
	Time civil.Time
}

// DateTime joins date and time of day.
func (o Observation) DateTime() civil.DateTime {
	return civil.DateTime{Date: o.Date, Time: o.Time}
}

// EphemerisSample carries the raw figures produced by an ephemeris
// provider for one instant.
type EphemerisSample struct {
	Illumination float64 // 0..1
	PhaseAngle   float64 // degrees, 0..360

	NextNewMoon      civil.Date
	NextFirstQuarter civil.Date
	NextFullMoon     civil.Date
	NextLastQuarter  civil.Date
}

// CardinalDate pairs a cardinal phase with the date it next occurs.
type CardinalDate struct {
	Phase Phase
	Date  civil.Date
}

// Cardinals returns the four cardinal dates in the order New Moon, First
// Quarter, Full Moon, Last Quarter.
func (s EphemerisSample) Cardinals() []CardinalDate {
	return []CardinalDate{
		{Phase: NewMoon, Date: s.NextNewMoon},
		{Phase: FirstQuarter, Date: s.NextFirstQuarter},
		{Phase: FullMoon, Date: s.NextFullMoon},
		{Phase: LastQuarter, Date: s.NextLastQuarter},
	}
}

// IlluminationPercent converts the 0..1 fraction to 0..100.
func (s EphemerisSample) IlluminationPercent() float64 {
	return s.Illumination * 100.0
}
