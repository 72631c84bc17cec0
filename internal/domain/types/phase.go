package types

import (
	"errors"
	"fmt"
)

// Phase is one of the eight named lunar phases. The zero value means
// "no phase" and is only used for absent next-phase values.
type Phase uint8

const (
	PhaseUnknown Phase = iota
	NewMoon
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

// Phases lists the eight valid phases in synodic order.
var Phases = [...]Phase{
	NewMoon,
	WaxingCrescent,
	FirstQuarter,
	WaxingGibbous,
	FullMoon,
	WaningGibbous,
	LastQuarter,
	WaningCrescent,
}

var phaseNames = [...]string{
	PhaseUnknown:   "",
	NewMoon:        "New Moon",
	WaxingCrescent: "Waxing Crescent",
	FirstQuarter:   "First Quarter",
	WaxingGibbous:  "Waxing Gibbous",
	FullMoon:       "Full Moon",
	WaningGibbous:  "Waning Gibbous",
	LastQuarter:    "Last Quarter",
	WaningCrescent: "Waning Crescent",
}

// ErrUnknownPhase is returned when a phase name does not match any phase.
var ErrUnknownPhase = errors.New("unknown phase name")

// String returns the display name, e.g. "Waxing Gibbous".
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Valid reports whether p is one of the eight named phases.
func (p Phase) Valid() bool { return p >= NewMoon && p <= WaningCrescent }

// IsCardinal reports whether p is New Moon, First Quarter, Full Moon or
// Last Quarter.
func (p Phase) IsCardinal() bool {
	switch p {
	case NewMoon, FirstQuarter, FullMoon, LastQuarter:
		return true
	default:
		return false
	}
}

// Waning reports whether the phase name carries the waning qualifier.
// Last Quarter counts as waning.
func (p Phase) Waning() bool {
	switch p {
	case WaningGibbous, LastQuarter, WaningCrescent:
		return true
	default:
		return false
	}
}

// Waxing reports whether the phase name carries the waxing qualifier.
// First Quarter counts as waxing.
func (p Phase) Waxing() bool {
	switch p {
	case WaxingCrescent, FirstQuarter, WaxingGibbous:
		return true
	default:
		return false
	}
}

// ParsePhase maps a display name back to its Phase.
func ParsePhase(name string) (Phase, error) {
	for _, p := range Phases {
		if phaseNames[p] == name {
			return p, nil
		}
	}
	return PhaseUnknown, fmt.Errorf("%w: %q", ErrUnknownPhase, name)
}

// MarshalText encodes the phase as its display name.
func (p Phase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPhase, uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText mirrors MarshalText.
func (p *Phase) UnmarshalText(data []byte) error {
	v, err := ParsePhase(string(data))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
