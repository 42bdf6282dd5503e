package covergen

import (
	"image"

	"github.com/covergen/covergen/raster"
)

// SoftCanvas is the headless Canvas backend: a plain pixel buffer painted by
// the scanline rasterizer, with no anti-aliasing. It is the default backend
// and the one the determinism tests pin pixels against.
type SoftCanvas struct {
	pm *raster.Pixmap
	rz *raster.Rasterizer
}

var _ Canvas = (*SoftCanvas)(nil)

// NewSoftCanvas creates a software canvas. Dimensions must be positive;
// GenerateMasterImage validates them before construction.
func NewSoftCanvas(width, height int) *SoftCanvas {
	return &SoftCanvas{
		pm: raster.NewPixmap(width, height),
		rz: raster.NewRasterizer(),
	}
}

// Size implements Canvas.
func (c *SoftCanvas) Size() (int, int) {
	return c.pm.Width(), c.pm.Height()
}

// FillVerticalGradient implements Canvas: each row is a flat color lerped
// between top and bottom.
func (c *SoftCanvas) FillVerticalGradient(top, bottom RGBA) {
	w, h := c.Size()
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		c.pm.FillSpan(0, w, y, toRasterColor(top.Lerp(bottom, t)))
	}
}

// FillPolygon implements Canvas.
func (c *SoftCanvas) FillPolygon(points []Point, col RGBA) {
	c.rz.FillPolygon(c.pm, toRasterPoints(points), toRasterColor(col))
}

// StrokePolyline implements Canvas.
func (c *SoftCanvas) StrokePolyline(points []Point, width float64, col RGBA) {
	c.rz.StrokePolyline(c.pm, toRasterPoints(points), width, toRasterColor(col))
}

// Image implements Canvas; the returned image is the live backing buffer.
func (c *SoftCanvas) Image() *image.RGBA {
	return c.pm.Image()
}

func toRasterColor(c RGBA) raster.Color {
	return raster.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toRasterPoints(points []Point) []raster.Point {
	out := make([]raster.Point, len(points))
	for i, p := range points {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}
