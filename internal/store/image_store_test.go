package store_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunaphase/internal/domain"
	"lunaphase/internal/store"
)

func tiny() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.White)
	return img
}

func TestImageFileStore_StaticPath(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewImageFileStore(dir, nil)
	require.NoError(t, err)

	path, ok := s.StaticPath(domain.WaxingGibbous)
	assert.False(t, ok)
	assert.Equal(t, filepath.Join(dir, "waxing_gibbous.png"), path)

	saved, err := s.SaveStatic(domain.WaxingGibbous, tiny())
	require.NoError(t, err)
	assert.Equal(t, path, saved)

	_, ok = s.StaticPath(domain.WaxingGibbous)
	assert.True(t, ok)
}

func TestImageFileStore_UnmappedPhaseUsesDefault(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewImageFileStore(dir, nil)
	require.NoError(t, err)

	path, _ := s.StaticPath(domain.PhaseUnknown)
	assert.Equal(t, filepath.Join(dir, store.DefaultImage), path)
}

func TestImageFileStore_SaveGenerated_Unique(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewImageFileStore(filepath.Join(dir, "nested", "images"), nil)
	require.NoError(t, err)

	const n = 16
	paths := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := s.SaveGenerated("moon_50_90", tiny())
			assert.NoError(t, err)
			paths[i] = p
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, p := range paths {
		require.NotEmpty(t, p)
		assert.False(t, seen[p], "duplicate %s", p)
		seen[p] = true
		assert.True(t, strings.HasPrefix(filepath.Base(p), "moon_50_90_"))
		assert.Equal(t, ".png", filepath.Ext(p))

		f, err := os.Open(p)
		require.NoError(t, err)
		_, err = png.Decode(f)
		_ = f.Close()
		assert.NoError(t, err)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, n)
}

func TestImageFileStore_Generated(t *testing.T) {
	s, err := store.NewImageFileStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, ok := s.Generated("moon_5_3")
	assert.False(t, ok)

	longer, err := s.SaveGenerated("moon_5_30", tiny())
	require.NoError(t, err)
	_, ok = s.Generated("moon_5_3")
	assert.False(t, ok, "prefix must not match %s", longer)

	saved, err := s.SaveGenerated("moon_5_3", tiny())
	require.NoError(t, err)
	got, ok := s.Generated("moon_5_3")
	assert.True(t, ok)
	assert.Equal(t, saved, got)

	_, ok = s.Generated("../moon_5_3")
	assert.False(t, ok)
}

func TestImageFileStore_Resolve(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewImageFileStore(dir, nil)
	require.NoError(t, err)

	p, err := s.Resolve("full_moon.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "full_moon.png"), p)

	for _, bad := range []string{"", "..", "../etc/passwd", "a/b.png", `a\b.png`, ".hidden"} {
		_, err := s.Resolve(bad)
		assert.ErrorIs(t, err, store.ErrInvalidName, "%q", bad)
	}
}
