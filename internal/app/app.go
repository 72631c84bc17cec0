package app

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"lunaphase/internal/domain"
)

// App answers phase questions in process. Both binaries use it; the CLI
// swaps it for internal/client when --server is set.
type App struct {
	phases   domain.PhaseService
	calendar domain.CalendarService
	images   domain.ImageSelector
	store    domain.ImageStore
	location *time.Location
	now      func() time.Time
}

// New constructs an App. A nil location means UTC.
func New(
	phases domain.PhaseService,
	calendar domain.CalendarService,
	images domain.ImageSelector,
	store domain.ImageStore,
	location *time.Location,
) *App {
	if location == nil {
		location = time.UTC
	}
	return &App{
		phases:   phases,
		calendar: calendar,
		images:   images,
		store:    store,
		location: location,
		now:      time.Now,
	}
}

// Today returns the current date in the configured time zone.
func (a *App) Today() civil.Date {
	return civil.DateOf(a.now().In(a.location))
}

// Phase computes the snapshot for date at timeOfDay and picks its image.
func (a *App) Phase(_ context.Context, date civil.Date, timeOfDay civil.Time) (domain.Report, error) {
	snap, err := a.phases.ComputeSnapshot(date, timeOfDay)
	if err != nil {
		return domain.Report{}, err
	}
	return a.report(snap)
}

// PhaseAt is Phase at the default observation time.
func (a *App) PhaseAt(_ context.Context, date civil.Date) (domain.Report, error) {
	snap, err := a.phases.ComputeSnapshotAt(date)
	if err != nil {
		return domain.Report{}, err
	}
	return a.report(snap)
}

// Calendar returns days consecutive snapshots starting at from.
func (a *App) Calendar(ctx context.Context, from civil.Date, days int) ([]domain.Snapshot, error) {
	return a.calendar.Range(ctx, from, days)
}

// ResolveImage maps an image file name to its on-disk path.
func (a *App) ResolveImage(name string) (string, error) {
	return a.store.Resolve(name)
}

func (a *App) report(snap domain.Snapshot) (domain.Report, error) {
	path, err := a.images.SelectImage(snap.Phase(), snap.IlluminationPercent(), snap.PhaseAngle())
	if err != nil {
		return domain.Report{}, fmt.Errorf("app: select image: %w", err)
	}
	return domain.Report{Snapshot: snap, Image: path}, nil
}

var _ domain.PhaseClient = (*App)(nil)
