// Package pgm reads and writes the plain (ASCII) PGM grayscale format, "P2",
// into sparse raster images, and bridges those images to the standard
// image.Image model.
//
//	P2
//	# optional comments
//	<columns> <rows>
//	<maxValue>
//	<rows×columns samples, row-major, whitespace-separated>
//
// Decode stores only non-zero samples. Encode writes raster.Image.Text
// verbatim, so a decoded picture re-encodes to canonical single-space layout.
//
// ToImage/ToGray/FromImage convert to and from image.Gray16 / image.Gray,
// optionally resampling with golang.org/x/image/draw. Export writes PNG, BMP
// (golang.org/x/image/bmp) or TIFF (golang.org/x/image/tiff).
package pgm
