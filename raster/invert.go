package raster

import "fmt"

// Invert replaces every pixel v, background included, with maxValue−v.
//
// Each coordinate is visited in row-major order and takes one of three
// branches so that zero stays represented by absence:
//   - absent (0)           → insert maxValue;
//   - present, == maxValue → delete (becomes 0);
//   - present, otherwise   → overwrite in place with maxValue−v.
//
// Applying Invert twice with the same maxValue restores the image exactly.
//
// Errors (nothing is written on failure):
//   - ErrInvalidMax when maxValue ≤ 0.
//   - ErrValueExceedsMax when any stored pixel is greater than maxValue.
//
// Complexity: O(R·C) writes, each O(R + C + chain length).
func (im *Image[T]) Invert(maxValue T) error {
	if maxValue <= 0 {
		return fmt.Errorf("raster: Invert(%d): %w", maxValue, ErrInvalidMax)
	}
	var over error
	im.grid.Each(func(r, c int, v T) bool {
		if v > maxValue {
			over = fmt.Errorf("raster: Invert(%d): pixel (%d,%d)=%d: %w", maxValue, r, c, v, ErrValueExceedsMax)
			return false
		}
		return true
	})
	if over != nil {
		return over
	}

	type stored struct {
		col int
		v   T
	}
	var line []stored
	for r := 0; r < im.Rows(); r++ {
		// Snapshot the row chain before it is mutated below.
		line = line[:0]
		if err := im.grid.Row(r, func(c int, v T) bool {
			line = append(line, stored{col: c, v: v})
			return true
		}); err != nil {
			return err
		}

		next := 0
		for c := 0; c < im.Cols(); c++ {
			var err error
			switch {
			case next >= len(line) || line[next].col != c:
				err = im.grid.Insert(maxValue, r, c)
			case line[next].v == maxValue:
				err = im.grid.Delete(r, c)
				next++
			default:
				err = im.grid.Update(r, c, func(v T) T { return maxValue - v })
				next++
			}
			if err != nil {
				return fmt.Errorf("raster: Invert(%d): %w", maxValue, err)
			}
		}
	}

	return nil
}
