package covergen

import (
	"math"
	"time"
)

// curveSteps is the number of segments per flowing curve; each curve is a
// polyline of curveSteps+1 points spanning the full canvas width.
const curveSteps = 50

// Renderer paints one composition from a parameter vector. It owns a PRNG
// and a NoiseField seeded from the parameters, so a Renderer must be used
// for exactly one Render call per construction to stay deterministic.
type Renderer struct {
	params  VisualParameters
	rng     *PRNG
	noise   *NoiseField
	palette Palette
}

// NewRenderer creates a renderer for the given parameters. The PRNG and the
// noise field are both seeded from params.Seed.
func NewRenderer(params VisualParameters) *Renderer {
	return &Renderer{
		params:  params,
		rng:     NewPRNG(params.Seed),
		noise:   NewNoiseField(params.Seed),
		palette: PaletteAt(params.PaletteIndex),
	}
}

// Render paints the full composition onto the canvas: gradient background,
// then layers of flows and flowing curves, then the noise texture overlay.
// The steps are strictly sequential; the overlay perturbs whatever colors
// the earlier steps painted.
func (r *Renderer) Render(canvas Canvas) error {
	width, height := canvas.Size()
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}

	start := time.Now()
	r.drawBackground(canvas)

	numFlows := int(5 + r.params.Density*10)
	noiseScale := 0.005 / (r.params.Smoothness + 0.1)

	for layer := 0; layer < r.params.LayerCount; layer++ {
		for flow := 0; flow < numFlows; flow++ {
			r.drawFlow(canvas, layer, flow, noiseScale)
		}
		r.drawCurves(canvas, layer, noiseScale)
	}

	r.applyNoiseTexture(canvas)

	Logger().Debug("composition rendered",
		"seed", r.params.Seed,
		"palette", r.palette.Name,
		"layers", r.params.LayerCount,
		"flows_per_layer", numFlows,
		"elapsed", time.Since(start))
	return nil
}

// drawBackground paints the vertical background gradient from the first
// palette stop to the second (or a flat fill if the palette has one stop).
func (r *Renderer) drawBackground(canvas Canvas) {
	top := r.palette.Background[0]
	bottom := top
	if len(r.palette.Background) > 1 {
		bottom = r.palette.Background[1]
	}
	canvas.FillVerticalGradient(top, bottom)
}

// drawFlow places one shape. Position and size come from the PRNG; the
// shape kind comes from the flow's deterministic offset so it is independent
// of how many random numbers earlier flows consumed.
func (r *Renderer) drawFlow(canvas Canvas, layer, flow int, noiseScale float64) {
	width, height := canvas.Size()

	x := r.rng.Next() * float64(width)
	y := r.rng.Next() * float64(height)
	size := 50 + r.rng.Next()*150*r.params.Complexity

	offset := flow + layer*100
	color := r.palette.Accents[flow%3]

	var pts []Point
	switch selectShape(offset, r.params.Smoothness) {
	case ShapeCircle:
		pts = circlePoints(x, y, size/2)
	case ShapeStar:
		pts = starPoints(x, y, size/2, r.params.ShapeVertexCount)
	case ShapeRect:
		w := size + float64(offset%10)
		h := size + float64((offset*3)%10)
		pts = rectPoints(x, y, w, h, float64(offset)*0.1)
	case ShapePolygon:
		pts = polygonPoints(x, y, size/2, r.params.ShapeVertexCount)
	case ShapeBlob:
		pts = blobPoints(x, y, size, r.params.ShapeVertexCount, r.noise, noiseScale)
	}
	canvas.FillPolygon(pts, color)
}

// drawCurves strokes the three flowing noise curves for one layer. Each
// curve lives in one of five depth bands chosen by its offset, cycling
// between 0.1 and 0.6 of the canvas height.
func (r *Renderer) drawCurves(canvas Canvas, layer int, noiseScale float64) {
	width, height := canvas.Size()
	strokeWidth := r.params.MinStrokeWidth +
		r.params.Complexity*(r.params.MaxStrokeWidth-r.params.MinStrokeWidth)

	for curve := 0; curve < 3; curve++ {
		curveOffset := layer*3 + curve
		baseDepth := 0.1 + 0.125*float64(curveOffset%5)

		pts := make([]Point, curveSteps+1)
		for i := 0; i <= curveSteps; i++ {
			t := float64(i) / curveSteps
			sample := r.noise.Sample(t*5+float64(curveOffset), float64(curveOffset)*noiseScale)
			pts[i] = Point{
				X: t * float64(width),
				Y: sample * float64(height) * baseDepth,
			}
		}
		canvas.StrokePolyline(pts, strokeWidth, r.palette.Accents[curve%3])
	}
}

// applyNoiseTexture perturbs the painted pixels with low-amplitude noise at
// a 2-pixel stride in both axes, leaving alpha untouched. The stride paints
// texture in 2x2 blocks rather than per pixel; it is part of the visual
// contract and must not change.
func (r *Renderer) applyNoiseTexture(canvas Canvas) {
	img := canvas.Image()
	bounds := img.Bounds()

	for py := bounds.Min.Y; py < bounds.Max.Y; py += 2 {
		for px := bounds.Min.X; px < bounds.Max.X; px += 2 {
			delta := r.noise.Sample(float64(px)*0.01, float64(py)*0.01)*10 - 5
			i := img.PixOffset(px, py)
			img.Pix[i+0] = addClamped(img.Pix[i+0], delta)
			img.Pix[i+1] = addClamped(img.Pix[i+1], delta)
			img.Pix[i+2] = addClamped(img.Pix[i+2], delta)
		}
	}
}

// addClamped adds a signed delta to a channel byte, clamped to [0, 255].
func addClamped(v uint8, delta float64) uint8 {
	f := math.Round(float64(v) + delta)
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}
