package pgm

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format selects an Export encoding.
type Format int

const (
	// PNG encodes 16-bit grayscale with image/png.
	PNG Format = iota
	// BMP encodes 8-bit grayscale with golang.org/x/image/bmp.
	BMP
	// TIFF encodes 16-bit grayscale, deflate-compressed, with golang.org/x/image/tiff.
	TIFF
)

// String returns the lower-case extension name of f.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks a Format from a file extension (.png, .bmp, .tif, .tiff).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("pgm: extension of %q: %w", path, ErrUnknownFormat)
	}
}

// ToImage renders p as 16-bit grayscale, scaling [0, MaxValue] to [0, 0xffff].
// Only stored pixels are written; the zero-initialized buffer is the background.
func ToImage(p *Picture) (*image.Gray16, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	img := image.NewGray16(image.Rect(0, 0, p.Image.Cols(), p.Image.Rows()))
	top := uint32(p.MaxValue)
	p.Image.Grid().Each(func(r, c int, v uint16) bool {
		img.SetGray16(c, r, color.Gray16{Y: uint16(uint32(v) * 0xffff / top)})
		return true
	})

	return img, nil
}

// ToGray renders p as 8-bit grayscale, scaling [0, MaxValue] to [0, 0xff].
func ToGray(p *Picture) (*image.Gray, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, p.Image.Cols(), p.Image.Rows()))
	top := uint32(p.MaxValue)
	p.Image.Grid().Each(func(r, c int, v uint16) bool {
		img.SetGray(c, r, color.Gray{Y: uint8(uint32(v) * 0xff / top)})
		return true
	})

	return img, nil
}

// FromImage converts any image to a Picture with the given maxValue.
// Colors go through color.Gray16Model, then luminance is mapped from
// [0, 0xffff] to [0, maxValue] with rounding. With WithSize the source is
// resampled first using the configured golang.org/x/image/draw kernel.
func FromImage(src image.Image, maxValue uint16, opts ...ConvertOption) (*Picture, error) {
	o := gatherConvertOptions(opts)
	if o.width > 0 {
		dst := image.NewGray16(image.Rect(0, 0, o.width, o.height))
		o.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		src = dst
	}

	b := src.Bounds()
	p, err := NewPicture(b.Dy(), b.Dx(), maxValue)
	if err != nil {
		return nil, err
	}
	top := uint32(maxValue)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.Gray16Model.Convert(src.At(x, y)).(color.Gray16)
			v := (uint32(g.Y)*top + 0x7fff) / 0xffff
			if v == 0 {
				continue
			}
			if err := p.Image.Grid().Insert(uint16(v), y-b.Min.Y, x-b.Min.X); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// Export encodes p to w in the requested raster format.
func Export(w io.Writer, p *Picture, f Format) error {
	switch f {
	case PNG:
		img, err := ToImage(p)
		if err != nil {
			return err
		}
		return png.Encode(w, img)
	case BMP:
		img, err := ToGray(p)
		if err != nil {
			return err
		}
		return bmp.Encode(w, img)
	case TIFF:
		img, err := ToImage(p)
		if err != nil {
			return err
		}
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("pgm: %v: %w", f, ErrUnknownFormat)
	}
}
