package phase

import (
	"sort"

	"cloud.google.com/go/civil"

	"lunaphase/internal/domain"
)

// Illumination bounds, in percent, between named phases.
const (
	newMoonMax  = 1.0
	crescentMax = 45.0
	quarterMax  = 55.0
	gibbousMax  = 99.0
)

// Classify maps an illumination percent and waning flag to one of the eight
// named phases:
//
//	<= 1            New Moon
//	(1, 45]         Waxing / Waning Crescent
//	(45, 55]        First / Last Quarter
//	(55, 99]        Waxing / Waning Gibbous
//	> 99            Full Moon
//
// Values outside [0, 100] fall into the nearest end of the table.
func Classify(illuminationPercent float64, waning bool) domain.Phase {
	switch {
	case illuminationPercent <= newMoonMax:
		return domain.NewMoon
	case illuminationPercent <= crescentMax:
		if waning {
			return domain.WaningCrescent
		}
		return domain.WaxingCrescent
	case illuminationPercent <= quarterMax:
		if waning {
			return domain.LastQuarter
		}
		return domain.FirstQuarter
	case illuminationPercent <= gibbousMax:
		if waning {
			return domain.WaningGibbous
		}
		return domain.WaxingGibbous
	default:
		return domain.FullMoon
	}
}

// IsWaning derives the waning flag from a phase angle in degrees.
func IsWaning(phaseAngle float64) bool { return phaseAngle > 180.0 }

// NextPhase returns the earliest candidate. Candidates sharing a date keep
// their input order. ok is false when candidates is empty.
func NextPhase(candidates []domain.CardinalDate) (date civil.Date, p domain.Phase, ok bool) {
	if len(candidates) == 0 {
		return civil.Date{}, domain.PhaseUnknown, false
	}

	sorted := make([]domain.CardinalDate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	return sorted[0].Date, sorted[0].Phase, true
}
