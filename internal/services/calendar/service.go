package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lunaphase/internal/domain"
)

// MaxDays caps a single Range request.
const MaxDays = 62

// ErrInvalidRange is returned for a non-positive or oversized day count.
var ErrInvalidRange = errors.New("calendar: invalid range")

// Service fans ComputeSnapshotAt out over consecutive days.
type Service struct {
	phases  domain.PhaseService
	workers int
	log     *zap.Logger
}

var _ domain.CalendarService = (*Service)(nil)

// New constructs a calendar Service. workers < 1 is treated as 1.
func New(phases domain.PhaseService, workers int, log *zap.Logger) *Service {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{phases: phases, workers: workers, log: log}
}

// Range returns days snapshots starting at from, in date order. The first
// failure cancels the remaining work and is returned.
func (s *Service) Range(ctx context.Context, from civil.Date, days int) ([]domain.Snapshot, error) {
	if days < 1 || days > MaxDays {
		return nil, fmt.Errorf("%w: %d days (want 1..%d)", ErrInvalidRange, days, MaxDays)
	}
	if !from.IsValid() {
		return nil, fmt.Errorf("calendar: range from %s: %w", from, domain.ErrInvalidObservation)
	}

	out := make([]domain.Snapshot, days)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := 0; i < days; i++ {
		date := from.AddDays(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			snap, err := s.phases.ComputeSnapshotAt(date)
			if err != nil {
				return fmt.Errorf("calendar: day %s: %w", date, err)
			}
			out[i] = snap
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug("calendar computed",
		zap.Stringer("from", from),
		zap.Int("days", days),
		zap.Int("workers", s.workers),
	)
	return out, nil
}

// MonthSpan returns the first day of the given calendar month and its
// length in days, the arguments Range needs to cover the month.
func MonthSpan(year int, month time.Month) (first civil.Date, days int, err error) {
	first = civil.Date{Year: year, Month: month, Day: 1}
	if !first.IsValid() {
		return civil.Date{}, 0, fmt.Errorf("calendar: month %d-%02d: %w", year, int(month), domain.ErrInvalidObservation)
	}
	// civil.Date.In normalizes month 13 into January of the next year.
	next := civil.DateOf(civil.Date{Year: year, Month: month + 1, Day: 1}.In(time.UTC))
	return first, next.DaysSince(first), nil
}
