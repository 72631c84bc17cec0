package interfaces

import (
	"context"

	"cloud.google.com/go/civil"

	domaintypes "lunaphase/internal/domain/types"
)

// PhaseClient answers phase questions, either in process or from a remote
// lunaserver, all with context.
type PhaseClient interface {
	Phase(ctx context.Context, date civil.Date, timeOfDay civil.Time) (domaintypes.Report, error)
	PhaseAt(ctx context.Context, date civil.Date) (domaintypes.Report, error)
	Calendar(ctx context.Context, from civil.Date, days int) ([]domaintypes.Snapshot, error)
}
