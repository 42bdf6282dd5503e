package covergen

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// CropMode selects how derived formats are cut from the master raster.
type CropMode int

const (
	// CropDirect copies the top-left rectangle of the master verbatim.
	// Every format must fit inside the master.
	CropDirect CropMode = iota

	// CropResize cover-fits the master onto the target: the master is
	// scaled so it fully covers the target rectangle, then the centered
	// excess is cropped away. No letterboxing, no aspect distortion.
	CropResize
)

// ParseCropMode parses "direct" or "resize".
func ParseCropMode(s string) (CropMode, error) {
	switch s {
	case "direct":
		return CropDirect, nil
	case "resize":
		return CropResize, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCropMode, s)
	}
}

// Format names one output raster size.
type Format struct {
	Name   string
	Width  int
	Height int
}

// DefaultFormats are the standard cover sizes: a landscape social crop and
// the full square master size.
var DefaultFormats = []Format{
	{Name: "landscape", Width: 1200, Height: 628},
	{Name: "square", Width: 1200, Height: 1200},
}

// DeriveFormats produces independent rasters from one master. The master is
// read-only input; every returned raster owns its own pixels. With no
// explicit formats, DefaultFormats is used.
func DeriveFormats(master *image.RGBA, mode CropMode, formats ...Format) (map[string]*image.RGBA, error) {
	if len(formats) == 0 {
		formats = DefaultFormats
	}

	out := make(map[string]*image.RGBA, len(formats))
	for _, f := range formats {
		if f.Width <= 0 || f.Height <= 0 {
			return nil, fmt.Errorf("%w: format %q is %dx%d",
				ErrInvalidDimensions, f.Name, f.Width, f.Height)
		}

		var derived *image.RGBA
		switch mode {
		case CropDirect:
			var err error
			derived, err = cropDirect(master, f)
			if err != nil {
				return nil, err
			}
		case CropResize:
			derived = cropResize(master, f)
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnknownCropMode, mode)
		}
		out[f.Name] = derived
	}

	Logger().Debug("formats derived", "count", len(out), "mode", mode)
	return out, nil
}

// cropDirect copies the top-left Width x Height rectangle of the master.
func cropDirect(master *image.RGBA, f Format) (*image.RGBA, error) {
	mw := master.Bounds().Dx()
	mh := master.Bounds().Dy()
	if f.Width > mw || f.Height > mh {
		return nil, fmt.Errorf("%w: format %q is %dx%d, master is %dx%d",
			ErrFormatExceedsMaster, f.Name, f.Width, f.Height, mw, mh)
	}

	dst := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	xdraw.Draw(dst, dst.Bounds(), master, master.Bounds().Min, xdraw.Src)
	return dst, nil
}

// cropResize cover-fits the master onto the target. Instead of scaling the
// whole master up and cropping the intermediate, the centered source
// rectangle whose aspect matches the target is scaled directly onto the
// target; the two are equivalent.
func cropResize(master *image.RGBA, f Format) *image.RGBA {
	mw := float64(master.Bounds().Dx())
	mh := float64(master.Bounds().Dy())
	scale := math.Max(float64(f.Width)/mw, float64(f.Height)/mh)

	srcW := int(math.Round(float64(f.Width) / scale))
	srcH := int(math.Round(float64(f.Height) / scale))
	srcX := master.Bounds().Min.X + (int(mw)-srcW)/2
	srcY := master.Bounds().Min.Y + (int(mh)-srcH)/2
	src := image.Rect(srcX, srcY, srcX+srcW, srcY+srcH)

	dst := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), master, src, xdraw.Src, nil)
	return dst
}
