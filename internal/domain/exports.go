package domain

import (
	interfaces "lunaphase/internal/domain/interfaces"
	types "lunaphase/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Phase           = types.Phase
	Observation     = types.Observation
	EphemerisSample = types.EphemerisSample
	CardinalDate    = types.CardinalDate
	Snapshot        = types.Snapshot
	Report          = types.Report
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	EphemerisProvider = interfaces.EphemerisProvider
	PhaseService      = interfaces.PhaseService
	CalendarService   = interfaces.CalendarService
	ImageSelector     = interfaces.ImageSelector
	ImageStore        = interfaces.ImageStore
	PhaseClient       = interfaces.PhaseClient
)

// Phase values re-exported for callers that only import domain.
const (
	PhaseUnknown   = types.PhaseUnknown
	NewMoon        = types.NewMoon
	WaxingCrescent = types.WaxingCrescent
	FirstQuarter   = types.FirstQuarter
	WaxingGibbous  = types.WaxingGibbous
	FullMoon       = types.FullMoon
	WaningGibbous  = types.WaningGibbous
	LastQuarter    = types.LastQuarter
	WaningCrescent = types.WaningCrescent
)

var (
	Phases                 = types.Phases
	ParsePhase             = types.ParsePhase
	NewSnapshot            = types.NewSnapshot
	DefaultObservationTime = types.DefaultObservationTime
	RelativeDays           = types.RelativeDays
)
