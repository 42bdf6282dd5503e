package covergen

import "image"

// Point represents a 2D point in canvas coordinates. Origin is the top-left
// corner; X grows right, Y grows down.
type Point struct {
	X, Y float64
}

// Canvas is the capability set the composition renderer draws through. It
// deliberately exposes only what the renderer needs, so backends stay small:
// an in-memory scanline rasterizer for headless use (NewSoftCanvas) and an
// anti-aliased canvas backed by fogleman/gg (ggcanvas.New).
//
// Exact pixel parity across backends is not guaranteed; parity within one
// backend is.
type Canvas interface {
	// Size returns the canvas dimensions in pixels.
	Size() (width, height int)

	// FillVerticalGradient paints the whole canvas with a linear gradient
	// interpolated top-to-bottom.
	FillVerticalGradient(top, bottom RGBA)

	// FillPolygon fills the closed polygon described by points.
	FillPolygon(points []Point, c RGBA)

	// StrokePolyline strokes the open polyline described by points.
	StrokePolyline(points []Point, width float64, c RGBA)

	// Image returns the live backing raster. Mutating the returned pixels
	// mutates the canvas; the noise texture overlay relies on this.
	Image() *image.RGBA
}

// CanvasFactory constructs a Canvas of the given size. Used for backend
// injection into the pipeline.
type CanvasFactory func(width, height int) Canvas
