package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunaphase/internal/render"
)

const size = 400

func at(t *testing.T, illum, angle float64, x, y int) color.RGBA {
	t.Helper()
	img := render.Moon(size, illum, angle)
	return img.RGBAAt(x, y)
}

func TestMoon_Full(t *testing.T) {
	assert.Equal(t, render.Lit, at(t, 100, 180, size/2, size/2))
	assert.Equal(t, uint8(0), at(t, 100, 180, 2, 2).A, "corner outside the disc")
}

func TestMoon_New(t *testing.T) {
	assert.Equal(t, render.Shadow, at(t, 0, 0, size/2, size/2))
	assert.Equal(t, render.Shadow, at(t, 1.0, 350, size*9/10, size/2))
	assert.Equal(t, uint8(0), at(t, 0, 0, 2, 2).A, "shadow stays inside the disc")
}

func TestMoon_Quarters(t *testing.T) {
	// Waxing: dark on the left.
	assert.Equal(t, render.Shadow, at(t, 50, 90, size/4, size/2))
	assert.Equal(t, render.Lit, at(t, 50, 90, size*3/4, size/2))

	// Waning: dark on the right.
	assert.Equal(t, render.Lit, at(t, 50, 270, size/4, size/2))
	assert.Equal(t, render.Shadow, at(t, 50, 270, size*3/4, size/2))
}

func TestMoon_Sliver(t *testing.T) {
	assert.Equal(t, render.Shadow, at(t, 3, 20, size/2, size/2))
	assert.Equal(t, render.Lit, at(t, 3, 20, 395, size/2))

	assert.Equal(t, render.Shadow, at(t, 3, 340, size/2, size/2))
	assert.Equal(t, render.Lit, at(t, 3, 340, 5, size/2))
}

func TestMoon_DefaultSize(t *testing.T) {
	img := render.Moon(0, 50, 90)
	assert.Equal(t, render.DefaultSize, img.Bounds().Dx())
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.EncodePNG(&buf, render.Moon(64, 75, 135)))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, decoded.Bounds().Dx())
}
