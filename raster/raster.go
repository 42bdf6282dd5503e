// Package raster provides scanline rasterization for the software canvas
// backend: filled polygons with the non-zero winding rule and thick
// polyline strokes, without anti-aliasing.
package raster

import (
	"math"
	"sort"
)

// Point represents a 2D point (package-local copy to avoid an import cycle
// with the root package).
type Point struct {
	X, Y float64
}

// Rasterizer paints polygons and polylines onto a Pixmap.
// Not safe for concurrent use; create one per render.
type Rasterizer struct {
	crossings []crossing // scratch, reused across scanlines
}

// crossing is one edge intersection with the current scanline.
type crossing struct {
	x   float64
	dir int // +1 or -1 winding direction
}

// NewRasterizer creates a rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{crossings: make([]crossing, 0, 32)}
}

// FillPolygon fills the closed polygon described by points using the
// non-zero winding rule. The polygon is closed implicitly if the last point
// differs from the first.
func (r *Rasterizer) FillPolygon(pm *Pixmap, points []Point, c Color) {
	if len(points) < 3 {
		return
	}

	edges := buildEdges(points)
	if len(edges) == 0 {
		return
	}

	yMin, yMax := math.MaxFloat64, -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > pm.Height() {
		y1 = pm.Height()
	}

	for y := y0; y < y1; y++ {
		r.scanline(pm, edges, float64(y)+0.5, y, c)
	}
}

// scanline fills the spans where the winding number is non-zero.
func (r *Rasterizer) scanline(pm *Pixmap, edges []edge, scanY float64, y int, c Color) {
	r.crossings = r.crossings[:0]
	for _, e := range edges {
		if e.y0 <= scanY && scanY < e.y1 {
			r.crossings = append(r.crossings, crossing{x: e.xAt(scanY), dir: e.dir})
		}
	}
	if len(r.crossings) == 0 {
		return
	}

	sort.Slice(r.crossings, func(i, j int) bool {
		return r.crossings[i].x < r.crossings[j].x
	})

	winding := 0
	var spanStart float64
	for _, cr := range r.crossings {
		if winding == 0 {
			spanStart = cr.x
		}
		winding += cr.dir
		if winding == 0 {
			pm.FillSpan(int(spanStart), int(cr.x), y, c)
		}
	}
}

// StrokePolyline strokes an open polyline by filling a quad per segment.
// Joints are butt-capped; at the stroke widths used for flowing curves the
// seams are not visible.
func (r *Rasterizer) StrokePolyline(pm *Pixmap, points []Point, width float64, c Color) {
	if len(points) < 2 {
		return
	}
	if width < 1 {
		width = 1
	}
	for i := 0; i < len(points)-1; i++ {
		r.strokeSegment(pm, points[i], points[i+1], width, c)
	}
}

// strokeSegment fills the rectangle that a thick line segment covers.
func (r *Rasterizer) strokeSegment(pm *Pixmap, p0, p1 Point, width float64, c Color) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Hypot(dx, dy)
	if length < 1e-3 {
		return
	}

	// Unit normal, scaled to half the stroke width.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	quad := []Point{
		{X: p0.X + nx, Y: p0.Y + ny},
		{X: p0.X - nx, Y: p0.Y - ny},
		{X: p1.X - nx, Y: p1.Y - ny},
		{X: p1.X + nx, Y: p1.Y + ny},
	}
	r.FillPolygon(pm, quad, c)
}
