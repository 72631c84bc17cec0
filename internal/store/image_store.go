package store

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"lunaphase/internal/domain"
)

// ErrInvalidName is returned for image names that are empty, hidden, or
// reach outside the image directory.
var ErrInvalidName = errors.New("store: invalid image name")

// ImageFileStore keeps static and generated PNGs in one directory.
type ImageFileStore struct {
	dir   string
	table *ImageTable
	now   func() time.Time
	mu    sync.Mutex
}

// NewImageFileStore returns an ImageFileStore rooted at dir, creating the
// directory if needed. A nil table means DefaultImageTable.
func NewImageFileStore(dir string, table *ImageTable) (*ImageFileStore, error) {
	if table == nil {
		table = DefaultImageTable()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create image dir: %w", err)
	}
	return &ImageFileStore{dir: dir, table: table, now: time.Now}, nil
}

// Dir returns the image directory.
func (s *ImageFileStore) Dir() string { return s.dir }

// Table returns the phase -> filename table in use.
func (s *ImageFileStore) Table() *ImageTable { return s.table }

// StaticPath returns the path of the static image for p and whether the
// file exists.
func (s *ImageFileStore) StaticPath(p domain.Phase) (string, bool) {
	path := filepath.Join(s.dir, s.table.Filename(p))
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return path, false
	}
	return path, true
}

// Generated returns the oldest-named image saved by SaveGenerated with
// prefix, if any.
func (s *ImageFileStore) Generated(prefix string) (string, bool) {
	if !validName(prefix) {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	matches, err := filepath.Glob(filepath.Join(s.dir, prefix+"_*.png"))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)
	return matches[0], true
}

// SaveGenerated writes img as <prefix>_<unix>_<id>.png and returns its path.
func (s *ImageFileStore) SaveGenerated(prefix string, img image.Image) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	name := fmt.Sprintf("%s_%d_%s.png", prefix, s.now().Unix(), id)
	if !validName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	path := filepath.Join(s.dir, name)
	if err := writePNG(path, img, 0o644); err != nil {
		return "", fmt.Errorf("store: save generated %s: %w", name, err)
	}
	return path, nil
}

// SaveStatic writes img as the static image for p, replacing any
// existing file.
func (s *ImageFileStore) SaveStatic(p domain.Phase, img image.Image) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, s.table.Filename(p))
	if err := writePNG(path, img, 0o644); err != nil {
		return "", fmt.Errorf("store: save static %s: %w", p, err)
	}
	return path, nil
}

// Resolve maps a bare file name to its path inside the image directory.
func (s *ImageFileStore) Resolve(name string) (string, error) {
	if !validName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name), nil
}

func validName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	return filepath.Base(name) == name
}

// Compile-time assertion that ImageFileStore implements domain.ImageStore.
var _ domain.ImageStore = (*ImageFileStore)(nil)
