package raster

import "errors"

var (
	// ErrUnsupportedBorder indicates a border that would overlap itself or
	// exceed the image: thickness must be ≥ 0 and below Rows/2 and Cols/2.
	ErrUnsupportedBorder = errors.New("raster: border thickness not supported by image size")
	// ErrNegativeValue indicates a negative intensity.
	ErrNegativeValue = errors.New("raster: intensity must be non-negative")
	// ErrStoredZero indicates a grid that stores an explicit background pixel.
	ErrStoredZero = errors.New("raster: background (zero) pixel stored explicitly")
	// ErrInvalidMax indicates a maximum intensity ≤ 0.
	ErrInvalidMax = errors.New("raster: maximum intensity must be > 0")
	// ErrValueExceedsMax indicates a stored pixel greater than the maximum passed to Invert.
	ErrValueExceedsMax = errors.New("raster: pixel exceeds maximum intensity")
)
