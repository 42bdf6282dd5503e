package covergen

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// MasterSize is the default extent of the master raster. It is the largest
// extent any default format needs, so direct crops always fit.
const MasterSize = 1200

// Result is the output of one generation request: the metrics and parameter
// vector that were derived, plus the rendered master raster.
type Result struct {
	Metrics    ContentMetrics
	Parameters VisualParameters
	Master     *image.RGBA
}

// Option configures a generation request.
type Option func(*genOptions)

type genOptions struct {
	style      StyleOverrides
	masterSize int
	factory    CanvasFactory
}

func defaultGenOptions() genOptions {
	return genOptions{
		masterSize: MasterSize,
		factory:    func(w, h int) Canvas { return NewSoftCanvas(w, h) },
	}
}

// WithStrokeWidths overrides the stroke width bounds for flowing curves.
func WithStrokeWidths(min, max float64) Option {
	return func(o *genOptions) {
		o.style.MinStrokeWidth = min
		o.style.MaxStrokeWidth = max
	}
}

// WithMasterSize overrides the master raster extent. Mainly useful for
// tests; derived formats larger than the master fail in direct crop mode.
func WithMasterSize(size int) Option {
	return func(o *genOptions) {
		o.masterSize = size
	}
}

// WithCanvasFactory injects a canvas backend, e.g. ggcanvas.Factory for
// anti-aliased output. The default is the software scanline canvas.
func WithCanvasFactory(f CanvasFactory) Option {
	return func(o *genOptions) {
		o.factory = f
	}
}

// GenerateMasterImage runs the full deterministic pipeline on text: metrics,
// parameters, and the rendered square master raster. Identical text and
// options always yield identical output within one canvas backend.
func GenerateMasterImage(text string, opts ...Option) (*Result, error) {
	o := defaultGenOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.masterSize <= 0 {
		return nil, fmt.Errorf("%w: master size %d", ErrInvalidDimensions, o.masterSize)
	}
	style, err := resolveStyle(o.style)
	if err != nil {
		return nil, err
	}

	metrics := Analyze(text)
	params := MapToVisualParameters(metrics, style)

	canvas := o.factory(o.masterSize, o.masterSize)
	if err := NewRenderer(params).Render(canvas); err != nil {
		return nil, err
	}

	Logger().Info("master rendered",
		"seed", params.Seed,
		"words", metrics.WordCount,
		"size", o.masterSize)

	return &Result{
		Metrics:    metrics,
		Parameters: params,
		Master:     canvas.Image(),
	}, nil
}

// resolveStyle fills in default stroke bounds and rejects invalid ones.
func resolveStyle(s StyleOverrides) (StyleOverrides, error) {
	if s.MinStrokeWidth == 0 {
		s.MinStrokeWidth = DefaultMinStrokeWidth
	}
	if s.MaxStrokeWidth == 0 {
		s.MaxStrokeWidth = DefaultMaxStrokeWidth
	}
	if s.MinStrokeWidth <= 0 || s.MaxStrokeWidth <= 0 || s.MinStrokeWidth > s.MaxStrokeWidth {
		return s, fmt.Errorf("%w: min %g, max %g",
			ErrInvalidStrokeWidths, s.MinStrokeWidth, s.MaxStrokeWidth)
	}
	return s, nil
}

// EncodePNG writes the raster to w as PNG. Provided so callers of the
// library do not have to touch image/png directly.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
