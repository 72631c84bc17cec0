package visual

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"lunaphase/internal/domain"
	"lunaphase/internal/render"
)

// Selector implements domain.ImageSelector over an ImageStore.
type Selector struct {
	images domain.ImageStore
	size   int
	log    *zap.Logger
}

var _ domain.ImageSelector = (*Selector)(nil)

// New constructs a Selector. size <= 0 means render.DefaultSize.
func New(images domain.ImageStore, size int, log *zap.Logger) *Selector {
	if size <= 0 {
		size = render.DefaultSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Selector{images: images, size: size, log: log}
}

// SelectImage returns the path of an image for the given phase.
//
// Steps:
//  1. Look up the static file for the phase (full moon when unmapped).
//  2. Reuse an image generated earlier for the same rounded illumination
//     and angle.
//  3. Otherwise render the moon and save it under a fresh name.
func (s *Selector) SelectImage(p domain.Phase, illuminationPercent, phaseAngle float64) (string, error) {
	if path, ok := s.images.StaticPath(p); ok {
		return path, nil
	}

	prefix := fmt.Sprintf("moon_%d_%d", int(math.Round(illuminationPercent)), int(math.Round(phaseAngle)))
	if path, ok := s.images.Generated(prefix); ok {
		return path, nil
	}

	img := render.Moon(s.size, illuminationPercent, phaseAngle)
	path, err := s.images.SaveGenerated(prefix, img)
	if err != nil {
		return "", fmt.Errorf("visual: generate %s: %w", p, err)
	}

	s.log.Info("generated moon image",
		zap.Stringer("phase", p),
		zap.Float64("illumination", illuminationPercent),
		zap.Float64("angle", phaseAngle),
		zap.String("path", path),
	)
	return path, nil
}

// SelectSnapshot is SelectImage for a snapshot's phase, illumination and
// angle.
func (s *Selector) SelectSnapshot(snap domain.Snapshot) (string, error) {
	return s.SelectImage(snap.Phase(), snap.IlluminationPercent(), snap.PhaseAngle())
}

// Seed renders and stores the static image of every phase at its
// representative illumination and angle. Existing files are replaced.
func (s *Selector) Seed() ([]string, error) {
	paths := make([]string, 0, len(seeds))
	for _, sd := range seeds {
		img := render.Moon(s.size, sd.illumination, sd.angle)
		path, err := s.images.SaveStatic(sd.phase, img)
		if err != nil {
			return paths, fmt.Errorf("visual: seed %s: %w", sd.phase, err)
		}
		paths = append(paths, path)
	}
	s.log.Info("seeded static images", zap.Int("count", len(paths)), zap.String("dir", s.images.Dir()))
	return paths, nil
}

var seeds = []struct {
	phase        domain.Phase
	illumination float64
	angle        float64
}{
	{domain.NewMoon, 0, 0},
	{domain.WaxingCrescent, 25, 45},
	{domain.FirstQuarter, 50, 90},
	{domain.WaxingGibbous, 75, 135},
	{domain.FullMoon, 100, 180},
	{domain.WaningGibbous, 75, 225},
	{domain.LastQuarter, 50, 270},
	{domain.WaningCrescent, 25, 315},
}
