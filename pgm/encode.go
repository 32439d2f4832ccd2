package pgm

import (
	"fmt"
	"io"
)

// Encode writes p in the P2 format. The output is exactly
// p.Image.Text(p.MaxValue).
//
// Errors:
//   - ErrNilPicture when p or p.Image is nil.
//   - ErrMalformed when MaxValue is 0 or a stored pixel exceeds it.
//   - any error from w.
func Encode(w io.Writer, p *Picture) error {
	if err := p.validate(); err != nil {
		return err
	}
	_, err := io.WriteString(w, p.Image.Text(p.MaxValue))

	return err
}

// validate checks that p can be written without producing an unreadable file.
func (p *Picture) validate() error {
	if p == nil || p.Image == nil {
		return ErrNilPicture
	}
	if p.MaxValue == 0 {
		return fmt.Errorf("pgm: maxValue 0: %w", ErrMalformed)
	}
	if m := p.Image.Max(); m > p.MaxValue {
		return fmt.Errorf("pgm: pixel value %d above maxValue %d: %w", m, p.MaxValue, ErrMalformed)
	}

	return nil
}
