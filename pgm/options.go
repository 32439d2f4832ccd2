package pgm

import "golang.org/x/image/draw"

// Defaults (single source of truth).
const (
	// DefaultMaxPixels bounds rows×columns accepted by Decode.
	DefaultMaxPixels = 1 << 26
	// DefaultStrictRange rejects samples greater than the declared maxValue.
	DefaultStrictRange = true
	// MaxSampleValue is the largest maxValue the format allows.
	MaxSampleValue = 65535
)

// DecodeOption configures Decode.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	maxPixels   int
	strictRange bool
}

func gatherDecodeOptions(opts []DecodeOption) decodeOptions {
	o := decodeOptions{maxPixels: DefaultMaxPixels, strictRange: DefaultStrictRange}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMaxPixels overrides the rows×columns limit. Panics if n <= 0.
func WithMaxPixels(n int) DecodeOption {
	if n <= 0 {
		panic("pgm: WithMaxPixels requires n > 0")
	}
	return func(o *decodeOptions) { o.maxPixels = n }
}

// WithStrictRange toggles rejection of samples above maxValue. When disabled,
// such samples are clamped to maxValue.
func WithStrictRange(strict bool) DecodeOption {
	return func(o *decodeOptions) { o.strictRange = strict }
}

// ConvertOption configures FromImage.
type ConvertOption func(*convertOptions)

type convertOptions struct {
	width, height int
	scaler        draw.Interpolator
}

func gatherConvertOptions(opts []ConvertOption) convertOptions {
	o := convertOptions{scaler: draw.CatmullRom}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSize resamples the source to width×height before conversion.
// Panics if either dimension is not positive.
func WithSize(width, height int) ConvertOption {
	if width <= 0 || height <= 0 {
		panic("pgm: WithSize requires positive dimensions")
	}
	return func(o *convertOptions) { o.width, o.height = width, height }
}

// WithScaler selects the resampling kernel used with WithSize
// (draw.NearestNeighbor, draw.ApproxBiLinear, draw.BiLinear, draw.CatmullRom).
func WithScaler(s draw.Interpolator) ConvertOption {
	if s == nil {
		panic("pgm: WithScaler requires a non-nil interpolator")
	}
	return func(o *convertOptions) { o.scaler = s }
}
