// Package ggcanvas provides a covergen.Canvas backed by fogleman/gg,
// trading pixel-exact parity with the software canvas for anti-aliased
// shapes and strokes. Output is still deterministic within this backend.
package ggcanvas

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/covergen/covergen"
)

// Canvas adapts a gg.Context to the covergen.Canvas capability set.
type Canvas struct {
	dc *gg.Context
}

var _ covergen.Canvas = (*Canvas)(nil)

// New creates an anti-aliased canvas with the given dimensions.
func New(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// Factory is a covergen.CanvasFactory producing this backend. Pass it to
// covergen.WithCanvasFactory.
func Factory(width, height int) covergen.Canvas {
	return New(width, height)
}

// Size implements covergen.Canvas.
func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// FillVerticalGradient implements covergen.Canvas using a gg linear
// gradient fill over the whole context.
func (c *Canvas) FillVerticalGradient(top, bottom covergen.RGBA) {
	w := float64(c.dc.Width())
	h := float64(c.dc.Height())

	grad := gg.NewLinearGradient(0, 0, 0, h)
	grad.AddColorStop(0, top.Color())
	grad.AddColorStop(1, bottom.Color())
	c.dc.SetFillStyle(grad)
	c.dc.DrawRectangle(0, 0, w, h)
	c.dc.Fill()
}

// FillPolygon implements covergen.Canvas.
func (c *Canvas) FillPolygon(points []covergen.Point, col covergen.RGBA) {
	if len(points) < 3 {
		return
	}
	c.dc.SetColor(col.Color())
	c.tracePath(points)
	c.dc.ClosePath()
	c.dc.Fill()
}

// StrokePolyline implements covergen.Canvas.
func (c *Canvas) StrokePolyline(points []covergen.Point, width float64, col covergen.RGBA) {
	if len(points) < 2 {
		return
	}
	c.dc.SetColor(col.Color())
	c.dc.SetLineWidth(width)
	c.tracePath(points)
	c.dc.Stroke()
}

// Image implements covergen.Canvas; gg contexts render into a live
// image.RGBA, so the noise overlay can mutate it directly.
func (c *Canvas) Image() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

func (c *Canvas) tracePath(points []covergen.Point) {
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
}
