package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunaphase/internal/app"
	"lunaphase/internal/client"
	"lunaphase/internal/domain"
	"lunaphase/internal/server"
)

func newClient(t *testing.T) *client.HTTP {
	t.Helper()
	v := viper.New()
	v.Set("image_dir", filepath.Join(t.TempDir(), "images"))
	v.Set("image_size", 16)
	cfg, err := app.Load(v)
	require.NoError(t, err)
	w, err := app.NewWire(cfg, nil)
	require.NoError(t, err)

	ts := httptest.NewServer(server.New(w.App, server.Options{}, nil))
	t.Cleanup(ts.Close)
	return client.NewHTTP(ts.URL+"/", ts.Client())
}

func TestHTTP_Phase(t *testing.T) {
	c := newClient(t)

	report, err := c.Phase(context.Background(), civil.Date{Year: 2024, Month: 1, Day: 11}, civil.Time{Hour: 12})
	require.NoError(t, err)

	assert.Equal(t, domain.NewMoon, report.Snapshot.Phase())
	assert.True(t, report.Snapshot.IsNewMoon())
	assert.True(t, strings.HasPrefix(report.Image, c.Base+"/images/"), report.Image)
}

func TestHTTP_PhaseAt(t *testing.T) {
	c := newClient(t)
	date := civil.Date{Year: 2025, Month: 6, Day: 3}

	remote, err := c.PhaseAt(context.Background(), date)
	require.NoError(t, err)

	assert.Equal(t, date, remote.Snapshot.Date())
	next, ok := remote.Snapshot.NextPhaseDate()
	require.True(t, ok)
	assert.False(t, next.Before(date))
}

func TestHTTP_Calendar(t *testing.T) {
	c := newClient(t)

	snaps, err := c.Calendar(context.Background(), civil.Date{Year: 2024, Month: 1, Day: 1}, 31)
	require.NoError(t, err)
	require.Len(t, snaps, 31)
	assert.Equal(t, civil.Date{Year: 2024, Month: 1, Day: 31}, snaps[30].Date())
}

func TestHTTP_StatusError(t *testing.T) {
	c := newClient(t)

	_, err := c.Calendar(context.Background(), civil.Date{Year: 2024, Month: 1, Day: 1}, 500)
	require.Error(t, err)

	var se *client.StatusError
	require.True(t, errors.As(err, &se), "%T", err)
	assert.Equal(t, http.StatusBadRequest, se.Code)
	assert.Contains(t, se.Message, "invalid range")
}

func TestHTTP_Health(t *testing.T) {
	c := newClient(t)
	assert.NoError(t, c.Health(context.Background()))

	down := client.NewHTTP("http://127.0.0.1:1", nil)
	assert.Error(t, down.Health(context.Background()))
}

func TestHTTP_PhaseImageURLs(t *testing.T) {
	tests := []struct {
		name, image, want string
	}{
		{"relative", "/images/full_moon.png", "/images/full_moon.png"},
		{"absolute", "https://cdn.example/full_moon.png", "https://cdn.example/full_moon.png"},
		{"none", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"date":"2024-01-25","illumination_percent":100,"phase_name":"Full Moon",` +
					`"phase_angle":180,"next_phase_date":null,"next_phase_name":null,"days_until_next_phase":0,` +
					`"visualization":"` + tt.image + `"}`))
			}))
			defer ts.Close()

			c := client.NewHTTP(ts.URL, ts.Client())
			report, err := c.PhaseAt(context.Background(), civil.Date{Year: 2024, Month: 1, Day: 25})
			require.NoError(t, err)

			want := tt.want
			if strings.HasPrefix(want, "/") {
				want = ts.URL + want
			}
			assert.Equal(t, want, report.Image)
		})
	}
}
