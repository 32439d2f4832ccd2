package raster

import "fmt"

// StampBorder overwrites the outermost thickness rows and columns on all four
// edges with value.
//
// For each ring k in [0, thickness): row k and row Rows-1-k across every
// column, then column k and column Cols-1-k across every row. Pixels that
// already hold a value are replaced; value 0 clears the border.
//
// Errors (nothing is written on failure):
//   - ErrUnsupportedBorder when thickness < 0, thickness ≥ Rows/2 or thickness ≥ Cols/2.
//   - ErrNegativeValue when value < 0.
//
// Complexity: O(t·(R+C)) writes, each O(R + C + chain length).
func (im *Image[T]) StampBorder(thickness int, value T) error {
	rows, cols := im.Rows(), im.Cols()
	if thickness < 0 || thickness >= rows/2 || thickness >= cols/2 {
		return fmt.Errorf("raster: StampBorder(%d) on %d×%d: %w", thickness, rows, cols, ErrUnsupportedBorder)
	}
	if value < 0 {
		return fmt.Errorf("raster: StampBorder value %d: %w", value, ErrNegativeValue)
	}

	for k := 0; k < thickness; k++ {
		for c := 0; c < cols; c++ {
			if err := im.put(k, c, value); err != nil {
				return err
			}
			if err := im.put(rows-1-k, c, value); err != nil {
				return err
			}
		}
		for r := 0; r < rows; r++ {
			if err := im.put(r, k, value); err != nil {
				return err
			}
			if err := im.put(r, cols-1-k, value); err != nil {
				return err
			}
		}
	}

	return nil
}
