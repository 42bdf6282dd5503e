package covergen

import "errors"

// Sentinel errors for the covergen package.
var (
	// ErrInvalidDimensions is returned when a canvas or raster is requested
	// with a non-positive width or height.
	ErrInvalidDimensions = errors.New("covergen: non-positive raster dimensions")

	// ErrInvalidStrokeWidths is returned when the stroke width overrides are
	// non-positive or inverted (min > max).
	ErrInvalidStrokeWidths = errors.New("covergen: invalid stroke width bounds")

	// ErrFormatExceedsMaster is returned by DeriveFormats in direct crop mode
	// when a requested format is larger than the master raster.
	ErrFormatExceedsMaster = errors.New("covergen: format exceeds master extent in direct crop mode")

	// ErrUnknownCropMode is returned for a CropMode outside the defined set.
	ErrUnknownCropMode = errors.New("covergen: unknown crop mode")
)
