package interfaces

import (
	"context"

	"cloud.google.com/go/civil"

	domaintypes "lunaphase/internal/domain/types"
)

// EphemerisProvider turns an instant into raw lunar figures.
type EphemerisProvider interface {
	Sample(date civil.Date, timeOfDay civil.Time) (domaintypes.EphemerisSample, error)
}

// PhaseService computes the moon's state for a date.
type PhaseService interface {
	ComputeSnapshot(date civil.Date, timeOfDay civil.Time) (domaintypes.Snapshot, error)
	ComputeSnapshotAt(date civil.Date) (domaintypes.Snapshot, error)
}

// CalendarService computes consecutive daily snapshots.
type CalendarService interface {
	Range(ctx context.Context, from civil.Date, days int) ([]domaintypes.Snapshot, error)
}

// ImageSelector picks or generates an image for a phase.
type ImageSelector interface {
	SelectImage(phase domaintypes.Phase, illuminationPercent, phaseAngle float64) (string, error)
}
