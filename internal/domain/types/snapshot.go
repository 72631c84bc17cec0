package types

import (
	"encoding/json"

	"cloud.google.com/go/civil"
)

const (
	fullMoonThreshold = 99.0
	newMoonThreshold  = 1.0
)

// Snapshot is the moon's state on one observation date. It is a value:
// fields are unexported and set once by NewSnapshot.
type Snapshot struct {
	date         civil.Date
	illumination float64
	phase        Phase
	angle        float64
	nextDate     civil.Date
	nextPhase    Phase
}

// NewSnapshot builds a snapshot. A zero nextDate or PhaseUnknown nextPhase
// means no next phase is known; both are then treated as absent.
func NewSnapshot(
	date civil.Date,
	illuminationPercent float64,
	phase Phase,
	phaseAngle float64,
	nextDate civil.Date,
	nextPhase Phase,
) Snapshot {
	if nextDate.IsZero() || !nextPhase.Valid() {
		nextDate, nextPhase = civil.Date{}, PhaseUnknown
	}
	return Snapshot{
		date:         date,
		illumination: illuminationPercent,
		phase:        phase,
		angle:        phaseAngle,
		nextDate:     nextDate,
		nextPhase:    nextPhase,
	}
}

func (s Snapshot) Date() civil.Date             { return s.date }
func (s Snapshot) IlluminationPercent() float64 { return s.illumination }
func (s Snapshot) Phase() Phase                 { return s.phase }
func (s Snapshot) PhaseAngle() float64          { return s.angle }

// NextPhaseDate returns the date of the next cardinal phase, if known.
func (s Snapshot) NextPhaseDate() (civil.Date, bool) {
	return s.nextDate, !s.nextDate.IsZero()
}

// NextPhase returns the name of the next cardinal phase, if known.
func (s Snapshot) NextPhase() (Phase, bool) {
	return s.nextPhase, s.nextPhase.Valid()
}

// IsFullMoon checks the illumination as well as the name.
func (s Snapshot) IsFullMoon() bool {
	return s.phase == FullMoon && s.illumination >= fullMoonThreshold
}

// IsNewMoon checks the illumination as well as the name.
func (s Snapshot) IsNewMoon() bool {
	return s.phase == NewMoon && s.illumination <= newMoonThreshold
}

// Waning reports whether the phase angle lies past full moon.
func (s Snapshot) Waning() bool { return s.angle > 180.0 }

// DaysUntilNextPhase returns whole days from the observation date to the
// next phase date, or 0 when no next phase is set.
func (s Snapshot) DaysUntilNextPhase() int {
	if s.nextDate.IsZero() {
		return 0
	}
	return s.nextDate.DaysSince(s.date)
}

// Map returns the snapshot as a flat mapping. Absent next-phase values are
// nil.
func (s Snapshot) Map() map[string]any {
	m := map[string]any{
		"date":                  s.date,
		"illumination_percent":  s.illumination,
		"phase_name":            s.phase.String(),
		"phase_angle":           s.angle,
		"next_phase_date":       nil,
		"next_phase_name":       nil,
		"days_until_next_phase": s.DaysUntilNextPhase(),
	}
	if d, ok := s.NextPhaseDate(); ok {
		m["next_phase_date"] = d
	}
	if p, ok := s.NextPhase(); ok {
		m["next_phase_name"] = p.String()
	}
	return m
}

type snapshotJSON struct {
	Date               civil.Date  `json:"date"`
	IlluminationPct    float64     `json:"illumination_percent"`
	PhaseName          Phase       `json:"phase_name"`
	PhaseAngle         float64     `json:"phase_angle"`
	NextPhaseDate      *civil.Date `json:"next_phase_date"`
	NextPhaseName      *Phase      `json:"next_phase_name"`
	DaysUntilNextPhase int         `json:"days_until_next_phase"`
}

// MarshalJSON encodes the snapshot with the same keys as Map.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	aux := snapshotJSON{
		Date:               s.date,
		IlluminationPct:    s.illumination,
		PhaseName:          s.phase,
		PhaseAngle:         s.angle,
		DaysUntilNextPhase: s.DaysUntilNextPhase(),
	}
	if d, ok := s.NextPhaseDate(); ok {
		aux.NextPhaseDate = &d
	}
	if p, ok := s.NextPhase(); ok {
		aux.NextPhaseName = &p
	}
	return json.Marshal(aux)
}

// UnmarshalJSON mirrors MarshalJSON. days_until_next_phase is derived and
// ignored on input.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var aux snapshotJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var (
		next      civil.Date
		nextPhase Phase
	)
	if aux.NextPhaseDate != nil {
		next = *aux.NextPhaseDate
	}
	if aux.NextPhaseName != nil {
		nextPhase = *aux.NextPhaseName
	}
	*s = NewSnapshot(aux.Date, aux.IlluminationPct, aux.PhaseName, aux.PhaseAngle, next, nextPhase)
	return nil
}
