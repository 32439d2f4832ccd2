package pgm

import "errors"

var (
	// ErrUnsupportedFormat indicates a magic tag other than "P2".
	ErrUnsupportedFormat = errors.New("pgm: unsupported format")
	// ErrMalformed indicates a truncated header, a non-numeric token, or a
	// sample outside [0, maxValue].
	ErrMalformed = errors.New("pgm: malformed data")
	// ErrTooLarge indicates a header whose pixel count exceeds the decode limit.
	ErrTooLarge = errors.New("pgm: image exceeds pixel limit")
	// ErrNilPicture indicates a nil *Picture or a Picture without an image.
	ErrNilPicture = errors.New("pgm: nil picture")
	// ErrUnknownFormat indicates an export format that is not supported.
	ErrUnknownFormat = errors.New("pgm: unknown export format")
)
