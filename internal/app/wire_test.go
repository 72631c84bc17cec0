package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunaphase/internal/app"
	"lunaphase/internal/domain"
)

func newWire(t *testing.T) *app.Wire {
	t.Helper()
	v := viper.New()
	v.Set("image_dir", filepath.Join(t.TempDir(), "images"))
	v.Set("image_size", 48)
	cfg, err := app.Load(v)
	require.NoError(t, err)

	w, err := app.NewWire(cfg, nil)
	require.NoError(t, err)
	return w
}

func TestNewWire_PhaseReport(t *testing.T) {
	w := newWire(t)

	report, err := w.App.PhaseAt(context.Background(), civil.Date{Year: 2024, Month: 1, Day: 25})
	require.NoError(t, err)

	assert.Equal(t, domain.FullMoon, report.Snapshot.Phase())
	assert.Equal(t, w.Images.Dir(), filepath.Dir(report.Image))
}

func TestNewWire_SeededImageIsStatic(t *testing.T) {
	w := newWire(t)
	_, err := w.Visual.Seed()
	require.NoError(t, err)

	report, err := w.App.Phase(context.Background(), civil.Date{Year: 2024, Month: 1, Day: 11}, civil.Time{Hour: 12})
	require.NoError(t, err)
	assert.Equal(t, domain.NewMoon, report.Snapshot.Phase())
	assert.Equal(t, "new_moon.png", filepath.Base(report.Image))
}

func TestNewWire_Calendar(t *testing.T) {
	w := newWire(t)

	snaps, err := w.App.Calendar(context.Background(), civil.Date{Year: 2026, Month: 2, Day: 1}, 28)
	require.NoError(t, err)
	assert.Len(t, snaps, 28)
}

func TestNewWire_BadPhaseMap(t *testing.T) {
	v := viper.New()
	v.Set("image_dir", t.TempDir())
	v.Set("phase_map_file", filepath.Join("testdata", "bad_phases.yaml"))
	cfg, err := app.Load(v)
	require.NoError(t, err)

	_, err = app.NewWire(cfg, nil)
	assert.Error(t, err)
}
