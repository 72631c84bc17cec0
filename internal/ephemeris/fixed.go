package ephemeris

import (
	"sync"

	"cloud.google.com/go/civil"

	"lunaphase/internal/domain"
)

// Fixed returns the same sample (or error) for every instant. It records
// the instants it was asked for.
type Fixed struct {
	Result domain.EphemerisSample
	Err    error

	mu    sync.Mutex
	calls []domain.Observation
}

// NewFixed returns a Fixed provider with the given sample.
func NewFixed(s domain.EphemerisSample) *Fixed { return &Fixed{Result: s} }

// Failing returns a Fixed provider that always fails with err.
func Failing(err error) *Fixed { return &Fixed{Err: err} }

var _ domain.EphemerisProvider = (*Fixed)(nil)

// Sample implements domain.EphemerisProvider.
func (f *Fixed) Sample(date civil.Date, timeOfDay civil.Time) (domain.EphemerisSample, error) {
	f.mu.Lock()
	f.calls = append(f.calls, domain.Observation{Date: date, Time: timeOfDay})
	f.mu.Unlock()

	if f.Err != nil {
		return domain.EphemerisSample{}, f.Err
	}
	return f.Result, nil
}

// Calls returns a copy of the recorded observations.
func (f *Fixed) Calls() []domain.Observation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Observation(nil), f.calls...)
}

// SameDay builds a sample whose four cardinal dates all fall on date.
func SameDay(illumination, phaseAngle float64, date civil.Date) domain.EphemerisSample {
	return domain.EphemerisSample{
		Illumination:     illumination,
		PhaseAngle:       phaseAngle,
		NextNewMoon:      date,
		NextFirstQuarter: date,
		NextFullMoon:     date,
		NextLastQuarter:  date,
	}
}
