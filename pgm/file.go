package pgm

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

// Extension is the conventional file suffix for PGM files.
const Extension = ".pgm"

// ReadFile opens path and decodes it.
func ReadFile(path string, opts ...DecodeOption) (*Picture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// WriteFile encodes p into path, creating or truncating the file.
func WriteFile(path string, p *Picture) (err error) {
	if err := p.validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, p); err != nil {
		return err
	}

	return bw.Flush()
}

// TimestampedName builds "<prefix>_<day>-<month>-<year>_<H>h<M>m<S>s.pgm".
func TimestampedName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%d-%d-%d_%dh%dm%ds%s",
		prefix, t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute(), t.Second(), Extension)
}
