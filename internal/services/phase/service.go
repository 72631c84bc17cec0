package phase

import (
	"fmt"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"

	"lunaphase/internal/domain"
)

// Service turns ephemeris samples into snapshots.
type Service struct {
	provider    domain.EphemerisProvider
	defaultTime civil.Time
	log         *zap.Logger
}

var _ domain.PhaseService = (*Service)(nil)

// New constructs a phase Service. A zero defaultTime means
// domain.DefaultObservationTime; a nil logger discards output.
func New(provider domain.EphemerisProvider, defaultTime civil.Time, log *zap.Logger) *Service {
	if defaultTime == (civil.Time{}) {
		defaultTime = domain.DefaultObservationTime
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		provider:    provider,
		defaultTime: defaultTime,
		log:         log,
	}
}

// ComputeSnapshot builds the snapshot for date at timeOfDay.
//
// Steps:
//  1. Sample the provider once for the observation.
//  2. Convert illumination to percent and read the phase angle.
//  3. Classify, treating angles past 180 degrees as waning.
//  4. Pick the earliest of the four upcoming cardinal phases.
func (s *Service) ComputeSnapshot(date civil.Date, timeOfDay civil.Time) (domain.Snapshot, error) {
	sample, err := s.provider.Sample(date, timeOfDay)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("phase: compute snapshot %s %s: %w", date, timeOfDay, err)
	}

	illum := sample.IlluminationPercent()
	angle := sample.PhaseAngle
	name := Classify(illum, IsWaning(angle))

	nextDate, nextPhase, ok := NextPhase(sample.Cardinals())
	if !ok {
		nextDate, nextPhase = civil.Date{}, domain.PhaseUnknown
	}

	s.log.Debug("snapshot computed",
		zap.Stringer("date", date),
		zap.Stringer("time", timeOfDay),
		zap.Float64("illumination", illum),
		zap.Float64("angle", angle),
		zap.Stringer("phase", name),
		zap.Stringer("next_phase", nextPhase),
		zap.Stringer("next_date", nextDate),
	)

	return domain.NewSnapshot(date, illum, name, angle, nextDate, nextPhase), nil
}

// ComputeSnapshotAt builds the snapshot for date at the default time.
func (s *Service) ComputeSnapshotAt(date civil.Date) (domain.Snapshot, error) {
	return s.ComputeSnapshot(date, s.defaultTime)
}
