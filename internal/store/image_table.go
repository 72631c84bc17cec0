package store

import (
	"errors"
	"fmt"

	"lunaphase/internal/domain"
)

// DefaultImage is returned for phases the table does not map.
const DefaultImage = "full_moon.png"

// ErrPhaseMap is returned for a phase map file that names unknown phases or
// empty filenames.
var ErrPhaseMap = errors.New("store: invalid phase map")

var defaultFiles = map[domain.Phase]string{
	domain.NewMoon:        "new_moon.png",
	domain.WaxingCrescent: "waxing_crescent.png",
	domain.FirstQuarter:   "first_quarter.png",
	domain.WaxingGibbous:  "waxing_gibbous.png",
	domain.FullMoon:       "full_moon.png",
	domain.WaningGibbous:  "waning_gibbous.png",
	domain.LastQuarter:    "last_quarter.png",
	domain.WaningCrescent: "waning_crescent.png",
}

// ImageTable maps phases to static image filenames. It is built once and
// never changes afterwards.
type ImageTable struct {
	files map[domain.Phase]string
}

// DefaultImageTable returns the built-in phase -> filename table.
func DefaultImageTable() *ImageTable {
	files := make(map[domain.Phase]string, len(defaultFiles))
	for p, f := range defaultFiles {
		files[p] = f
	}
	return &ImageTable{files: files}
}

// LoadImageTable reads a YAML mapping of phase display names to filenames,
// e.g. `Full Moon: full.png`, layered over the built-in table. A missing
// file yields the built-in table.
func LoadImageTable(path string) (*ImageTable, error) {
	t := DefaultImageTable()
	if path == "" {
		return t, nil
	}

	raw := make(map[string]string)
	if err := readYAML(path, &raw); err != nil {
		return nil, fmt.Errorf("store: load phase map %s: %w", path, err)
	}
	for name, file := range raw {
		p, err := domain.ParsePhase(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPhaseMap, err)
		}
		if file == "" || !validName(file) {
			return nil, fmt.Errorf("%w: bad filename %q for %s", ErrPhaseMap, file, p)
		}
		t.files[p] = file
	}
	return t, nil
}

// Filename returns the image file for p, or DefaultImage when unmapped.
func (t *ImageTable) Filename(p domain.Phase) string {
	if f, ok := t.files[p]; ok {
		return f
	}
	return DefaultImage
}

// Save writes the table as YAML keyed by phase display name.
func (t *ImageTable) Save(path string) error {
	out := make(map[string]string, len(t.files))
	for p, f := range t.files {
		out[p.String()] = f
	}
	return writeYAML(path, out, 0o644)
}
