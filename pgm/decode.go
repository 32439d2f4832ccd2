package pgm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/sparsepgm/raster"
)

// Magic is the format tag of plain PGM.
const Magic = "P2"

// Picture is a decoded P2 image: the sparse pixels plus the declared maximum.
type Picture struct {
	Image    *raster.Image[uint16]
	MaxValue uint16
}

// NewPicture returns an all-background rows×cols picture.
func NewPicture(rows, cols int, maxValue uint16) (*Picture, error) {
	if maxValue == 0 {
		return nil, fmt.Errorf("pgm: maxValue 0: %w", ErrMalformed)
	}
	im, err := raster.New[uint16](rows, cols)
	if err != nil {
		return nil, err
	}

	return &Picture{Image: im, MaxValue: maxValue}, nil
}

// Decode reads a P2 image from r.
// The header is the tag, the column count, the row count and maxValue; then
// rows×columns samples follow in row-major order. "#" starts a comment that
// runs to the end of the line. Only non-zero samples are stored.
//
// Errors:
//   - ErrUnsupportedFormat for any tag other than "P2".
//   - ErrMalformed for missing or non-numeric tokens, non-positive dimensions,
//     maxValue outside [1, 65535], or (strict mode) samples above maxValue.
//   - ErrTooLarge when rows×columns exceeds the pixel limit.
func Decode(r io.Reader, opts ...DecodeOption) (*Picture, error) {
	o := gatherDecodeOptions(opts)
	tr := newTokenReader(r)

	tag, err := tr.next()
	if err != nil {
		return nil, fmt.Errorf("pgm: reading tag: %w", err)
	}
	if tag != Magic {
		return nil, fmt.Errorf("pgm: tag %q: %w", tag, ErrUnsupportedFormat)
	}

	cols, err := tr.int("width", 1, -1)
	if err != nil {
		return nil, err
	}
	rows, err := tr.int("height", 1, -1)
	if err != nil {
		return nil, err
	}
	if cols > o.maxPixels/rows {
		return nil, fmt.Errorf("pgm: %d×%d: %w", cols, rows, ErrTooLarge)
	}
	maxValue, err := tr.int("maxval", 1, MaxSampleValue)
	if err != nil {
		return nil, err
	}

	p, err := NewPicture(rows, cols, uint16(maxValue))
	if err != nil {
		return nil, err
	}
	limit := -1
	if o.strictRange {
		limit = maxValue
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			v, err := tr.int("sample", 0, limit)
			if err != nil {
				return nil, fmt.Errorf("pgm: pixel (%d,%d): %w", row, col, err)
			}
			if v == 0 {
				continue
			}
			if v > maxValue {
				v = maxValue
			}
			if err := p.Image.Grid().Insert(uint16(v), row, col); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// tokenReader splits a PGM stream into whitespace-separated tokens and drops
// "#" comments.
type tokenReader struct {
	br  *bufio.Reader
	buf []byte
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{br: bufio.NewReader(r)}
}

// next returns the following token, or ErrMalformed wrapping io.ErrUnexpectedEOF
// when the stream ends first.
func (t *tokenReader) next() (string, error) {
	t.buf = t.buf[:0]
	for {
		b, err := t.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(t.buf) > 0 {
					return string(t.buf), nil
				}
				return "", fmt.Errorf("%w: %w", ErrMalformed, io.ErrUnexpectedEOF)
			}
			return "", err
		}
		switch {
		case b == '#':
			if len(t.buf) > 0 {
				_ = t.br.UnreadByte()
				return string(t.buf), nil
			}
			if _, err := t.br.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
				return "", err
			}
		case isSpace(b):
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		default:
			t.buf = append(t.buf, b)
		}
	}
}

// int reads a decimal token within [lo, hi]; hi < 0 means unbounded.
func (t *tokenReader) int(what string, lo, hi int) (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, fmt.Errorf("pgm: reading %s: %w", what, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("pgm: %s %q: %w", what, tok, ErrMalformed)
	}
	if v < lo || (hi >= 0 && v > hi) {
		return 0, fmt.Errorf("pgm: %s %d out of range: %w", what, v, ErrMalformed)
	}

	return v, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
