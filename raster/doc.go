// Package raster implements grayscale image operations on top of the
// cross-linked sparse grid in package sparse.
//
// What:
//
//   - Image[T] stores one intensity per pixel; zero is the background and is
//     represented by absence, so only non-zero pixels consume memory.
//   - StampBorder overwrites the outer rings of the image with one value.
//   - Invert maps every pixel v to max−v, inserting and deleting cells so the
//     "absent means zero" representation stays exact.
//   - Rotate / RotateCounterClockwise / Rotate180 return new images.
//   - Text renders the plain P2 format; DebugText renders "." for background.
//   - Components finds connected regions of foreground pixels.
//
// Why:
//
//   - The sparse container stays generic over any payload; every numeric
//     assumption (ordering, subtraction, a maximum value) lives here.
//
// Complexity:
//
//   - At / Set:    O(R + C + chain length).
//   - StampBorder: O(t·(R+C)·(R+C+chain)).
//   - Invert:      O(R·C·(R+C+chain)).
//   - Rotate*:     O(n·(R+C+chain)) for n stored pixels.
//   - Text:        O(R·(R+C)) via row chain walks.
//
// Errors:
//
//   - ErrUnsupportedBorder: border thickness negative or not below half of
//     either dimension.
//   - ErrNegativeValue:     a negative intensity was written.
//   - ErrStoredZero:        FromGrid received a grid holding explicit zeros.
//   - ErrInvalidMax:        maximum intensity not positive.
//   - ErrValueExceedsMax:   Invert found a stored pixel above the maximum.
//   - sparse errors (ErrOutOfBounds, ErrInvalidDimensions) pass through unchanged.
package raster
