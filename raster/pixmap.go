package raster

import "image"

// Color is an RGBA color with float64 components in [0, 1].
// (Package-local copy to avoid an import cycle with the root package.)
type Color struct {
	R, G, B, A float64
}

// Pixmap is a rectangular RGBA pixel buffer backed by an image.RGBA, so the
// raster can be handed to callers without copying.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a pixmap with the given dimensions, initially fully
// transparent.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.img.Rect.Dx() }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.img.Rect.Dy() }

// Image returns the live backing image. Mutations through either handle are
// visible through the other.
func (p *Pixmap) Image() *image.RGBA { return p.img }

// SetPixel sets a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.Width() || y < 0 || y >= p.Height() {
		return
	}
	i := p.img.PixOffset(x, y)
	p.img.Pix[i+0] = clampByte(c.R)
	p.img.Pix[i+1] = clampByte(c.G)
	p.img.Pix[i+2] = clampByte(c.B)
	p.img.Pix[i+3] = clampByte(c.A)
}

// FillSpan fills the horizontal pixel run [x1, x2) on row y, clipped to the
// pixmap bounds.
func (p *Pixmap) FillSpan(x1, x2, y int, c Color) {
	if y < 0 || y >= p.Height() {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > p.Width() {
		x2 = p.Width()
	}
	if x1 >= x2 {
		return
	}

	r := clampByte(c.R)
	g := clampByte(c.G)
	b := clampByte(c.B)
	a := clampByte(c.A)
	i := p.img.PixOffset(x1, y)
	for x := x1; x < x2; x++ {
		p.img.Pix[i+0] = r
		p.img.Pix[i+1] = g
		p.img.Pix[i+2] = b
		p.img.Pix[i+3] = a
		i += 4
	}
}

func clampByte(v float64) uint8 {
	v *= 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
