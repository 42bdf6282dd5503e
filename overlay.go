package covergen

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// OverlayTitle draws a single centered title line near the bottom of the
// raster, over a translucent band that keeps it readable on any palette.
// Mutates img in place. An empty title is a no-op.
//
// The overlay is an optional collaborator feature layered on top of the
// deterministic pipeline; it does not consume any PRNG or noise state.
func OverlayTitle(img *image.RGBA, title string) error {
	if title == "" {
		return nil
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	fnt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("covergen: parsing title font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(w) / 16,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("covergen: creating title face: %w", err)
	}
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: face,
	}

	textWidth := drawer.MeasureString(title)
	metrics := face.Metrics()
	baseline := bounds.Min.Y + h*17/20

	// Translucent band behind the text line.
	bandTop := baseline - metrics.Ascent.Ceil() - h/60
	bandBottom := baseline + metrics.Descent.Ceil() + h/60
	band := image.Rect(bounds.Min.X, bandTop, bounds.Max.X, bandBottom)
	draw.Draw(img, band, image.NewUniform(color.NRGBA{A: 140}), image.Point{}, draw.Over)

	drawer.Dot = fixed.Point26_6{
		X: fixed.I(bounds.Min.X+w/2) - textWidth/2,
		Y: fixed.I(baseline),
	}
	drawer.DrawString(title)
	return nil
}
