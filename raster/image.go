package raster

import (
	"fmt"

	"github.com/katalvlaran/sparsepgm/sparse"
	"golang.org/x/exp/constraints"
)

// Intensity is the payload constraint of Image: any integer kind.
// Negative values are rejected at runtime.
type Intensity interface {
	constraints.Integer
}

// Image is a grayscale raster backed by a sparse grid.
// Rows and Cols are fixed at construction. Zero pixels are never stored.
type Image[T Intensity] struct {
	grid *sparse.Grid[T]
}

var _ fmt.Stringer = (*Image[uint8])(nil)

// New returns an all-background rows×cols image.
// Errors: sparse.ErrInvalidDimensions for non-positive dimensions.
func New[T Intensity](rows, cols int) (*Image[T], error) {
	g, err := sparse.New[T](rows, cols)
	if err != nil {
		return nil, err
	}

	return &Image[T]{grid: g}, nil
}

// FromGrid wraps an existing grid. Stored zeros and negatives are rejected,
// since they would break the background convention.
func FromGrid[T Intensity](g *sparse.Grid[T]) (*Image[T], error) {
	var bad error
	g.Each(func(r, c int, v T) bool {
		switch {
		case v < 0:
			bad = fmt.Errorf("raster: stored pixel (%d,%d)=%d: %w", r, c, v, ErrNegativeValue)
		case v == 0:
			bad = fmt.Errorf("raster: stored pixel (%d,%d): %w", r, c, ErrStoredZero)
		}
		return bad == nil
	})
	if bad != nil {
		return nil, bad
	}

	return &Image[T]{grid: g}, nil
}

// Grid exposes the underlying sparse grid. Mutating it directly bypasses the
// background convention; prefer Set.
func (im *Image[T]) Grid() *sparse.Grid[T] { return im.grid }

// Rows returns the image height.
func (im *Image[T]) Rows() int { return im.grid.Rows() }

// Cols returns the image width.
func (im *Image[T]) Cols() int { return im.grid.Cols() }

// Count returns the number of non-background pixels.
func (im *Image[T]) Count() int { return im.grid.Len() }

// At returns the intensity at (row,col); background pixels read as 0.
func (im *Image[T]) At(row, col int) (T, error) {
	v, _, err := im.grid.At(row, col)
	return v, err
}

// Set writes v at (row,col). Writing 0 removes the stored cell, if any.
// Errors: ErrNegativeValue, sparse.ErrOutOfBounds.
func (im *Image[T]) Set(row, col int, v T) error {
	if v < 0 {
		return fmt.Errorf("raster: Set(%d,%d)=%d: %w", row, col, v, ErrNegativeValue)
	}
	if !im.grid.InBounds(row, col) {
		return fmt.Errorf("raster: Set(%d,%d): %w", row, col, sparse.ErrOutOfBounds)
	}

	return im.put(row, col, v)
}

// put writes an already validated value, keeping zero as absence.
func (im *Image[T]) put(row, col int, v T) error {
	if v == 0 {
		if !im.grid.Has(row, col) {
			return nil
		}
		return im.grid.Delete(row, col)
	}

	return im.grid.Set(v, row, col)
}

// Clone returns an independent copy.
func (im *Image[T]) Clone() *Image[T] {
	return &Image[T]{grid: im.grid.Clone()}
}

// Equal reports whether both images have the same shape and pixels.
func (im *Image[T]) Equal(other *Image[T]) bool {
	if other == nil || im.Rows() != other.Rows() || im.Cols() != other.Cols() || im.Count() != other.Count() {
		return false
	}
	same := true
	im.grid.Each(func(r, c int, v T) bool {
		w, _, _ := other.grid.At(r, c)
		same = v == w
		return same
	})

	return same
}

// Histogram counts pixels per intensity, background included under key 0.
func (im *Image[T]) Histogram() map[T]int {
	h := make(map[T]int)
	if bg := im.Rows()*im.Cols() - im.Count(); bg > 0 {
		h[0] = bg
	}
	im.grid.Each(func(_, _ int, v T) bool {
		h[v]++
		return true
	})

	return h
}

// Max returns the largest stored intensity, or 0 for an empty image.
func (im *Image[T]) Max() T {
	var m T
	im.grid.Each(func(_, _ int, v T) bool {
		if v > m {
			m = v
		}
		return true
	})

	return m
}
