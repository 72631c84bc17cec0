package visual_test

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunaphase/internal/domain"
	"lunaphase/internal/services/visual"
	"lunaphase/internal/store"
)

func newSelector(t *testing.T) (*visual.Selector, *store.ImageFileStore) {
	t.Helper()
	images, err := store.NewImageFileStore(t.TempDir(), nil)
	require.NoError(t, err)
	return visual.New(images, 32, nil), images
}

func TestSelectImage_Generates(t *testing.T) {
	sel, images := newSelector(t)

	path, err := sel.SelectImage(domain.WaxingGibbous, 75.4, 135.9)
	require.NoError(t, err)

	assert.Equal(t, images.Dir(), filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "moon_75_136_"), path)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSelectImage_ReusesGenerated(t *testing.T) {
	sel, images := newSelector(t)

	first, err := sel.SelectImage(domain.WaxingCrescent, 30.2, 60.4)
	require.NoError(t, err)
	again, err := sel.SelectImage(domain.WaxingCrescent, 29.8, 59.6)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	other, err := sel.SelectImage(domain.WaxingCrescent, 31, 60)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	entries, err := os.ReadDir(images.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSelectImage_PrefersStatic(t *testing.T) {
	sel, images := newSelector(t)

	static, err := images.SaveStatic(domain.FullMoon, image.NewRGBA(image.Rect(0, 0, 2, 2)))
	require.NoError(t, err)

	path, err := sel.SelectImage(domain.FullMoon, 100, 180)
	require.NoError(t, err)
	assert.Equal(t, static, path)
}

func TestSelectSnapshot(t *testing.T) {
	sel, _ := newSelector(t)
	snap := domain.NewSnapshot(
		civilDate(), 50, domain.LastQuarter, 270, civilDate().AddDays(7), domain.NewMoon,
	)

	path, err := sel.SelectSnapshot(snap)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "moon_50_270_"), path)
}

func TestSeed(t *testing.T) {
	sel, images := newSelector(t)

	paths, err := sel.Seed()
	require.NoError(t, err)
	assert.Len(t, paths, len(domain.Phases))

	for _, p := range domain.Phases {
		_, ok := images.StaticPath(p)
		assert.True(t, ok, "%s", p)
	}

	// Every phase now resolves to its static file.
	path, err := sel.SelectImage(domain.WaningCrescent, 20, 320)
	require.NoError(t, err)
	assert.Equal(t, "waning_crescent.png", filepath.Base(path))
}

type failingStore struct{ domain.ImageStore }

func (failingStore) StaticPath(domain.Phase) (string, bool) { return "", false }
func (failingStore) Generated(string) (string, bool)        { return "", false }
func (failingStore) SaveGenerated(string, image.Image) (string, error) {
	return "", errors.New("disk full")
}

func TestSelectImage_SaveError(t *testing.T) {
	sel := visual.New(failingStore{}, 8, nil)
	_, err := sel.SelectImage(domain.NewMoon, 0, 0)
	assert.ErrorContains(t, err, "disk full")
}

func civilDate() civil.Date { return civil.Date{Year: 2026, Month: 10, Day: 19} }
