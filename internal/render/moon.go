package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"
)

// DefaultSize is the edge length, in pixels, of generated images.
const DefaultSize = 400

const (
	sliverBelow   = 5.0          // percent
	blackoutAtMax = 1.0          // percent
	sliverWidth   = 0.1          // fraction of the disc width left lit
	rimWidth      = 1.5          // pixels
	kappa         = 0.5522847498 // cubic Bézier circle constant
)

var (
	Lit    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Rim    = color.RGBA{0xd3, 0xd3, 0xd3, 0xff}
	Shadow = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// Moon returns a size x size image of the moon at the given illumination
// percent and phase angle (degrees, waning past 180). Pixels outside the
// disc are transparent.
func Moon(size int, illuminationPercent, phaseAngle float64) *image.RGBA {
	if size < 1 {
		size = DefaultSize
	}
	bounds := image.Rect(0, 0, size, size)
	img := image.NewRGBA(bounds)
	s := float32(size)

	disc := mask(size, func(z *vector.Rasterizer) {
		ellipse(z, s/2, s/2, s/2, s/2)
	})
	face := mask(size, func(z *vector.Rasterizer) {
		ellipse(z, s/2, s/2, s/2-rimWidth, s/2-rimWidth)
	})
	draw.DrawMask(img, bounds, image.NewUniform(Rim), image.Point{}, disc, image.Point{}, draw.Over)
	draw.DrawMask(img, bounds, image.NewUniform(Lit), image.Point{}, face, image.Point{}, draw.Over)

	shadow := shadowMask(size, illuminationPercent, phaseAngle > 180.0)
	intersect(shadow, disc)
	draw.DrawMask(img, bounds, image.NewUniform(Shadow), image.Point{}, shadow, image.Point{}, draw.Over)

	return img
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func shadowMask(size int, illuminationPercent float64, waning bool) *image.Alpha {
	s := float32(size)
	return mask(size, func(z *vector.Rasterizer) {
		if illuminationPercent <= blackoutAtMax {
			rect(z, 0, 0, s, s)
			return
		}
		if illuminationPercent < 100.0 {
			shade := float32(1.0 - illuminationPercent/100.0)
			cx := float32(0)
			if waning {
				cx = s
			}
			// Tall enough that the edge is almost straight across the disc.
			ellipse(z, cx, s/2, s*shade, s*1.5)
		}
		if illuminationPercent < sliverBelow {
			if waning {
				rect(z, s*sliverWidth, 0, s, s)
			} else {
				rect(z, 0, 0, s*(1-sliverWidth), s)
			}
		}
	})
}

func mask(size int, path func(z *vector.Rasterizer)) *image.Alpha {
	z := vector.NewRasterizer(size, size)
	path(z)
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(m, m.Bounds(), image.Opaque, image.Point{})
	return m
}

// intersect keeps, per pixel, the smaller of the two coverages in dst.
func intersect(dst, other *image.Alpha) {
	for i, a := range dst.Pix {
		if b := other.Pix[i]; b < a {
			dst.Pix[i] = b
		}
	}
}

func ellipse(z *vector.Rasterizer, cx, cy, rx, ry float32) {
	if rx <= 0 || ry <= 0 {
		return
	}
	kx, ky := rx*kappa, ry*kappa
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
}

func rect(z *vector.Rasterizer, x0, y0, x1, y1 float32) {
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
}
