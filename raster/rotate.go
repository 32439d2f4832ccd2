package raster

// Rotate returns a new image turned 90° clockwise. The source is unchanged.
// The result has Rows'=Cols and Cols'=Rows; destination (r',c') holds the
// source pixel (Rows−1−c', r'). Background stays absent in the result.
// Complexity: O(n) inserts for n stored pixels.
func (im *Image[T]) Rotate() *Image[T] {
	rows := im.Rows()
	return im.remap(im.Cols(), rows, func(r, c int) (int, int) {
		return c, rows - 1 - r
	})
}

// RotateCounterClockwise returns a new image turned 90° counter-clockwise.
// Destination (r',c') holds the source pixel (c', Cols−1−r').
func (im *Image[T]) RotateCounterClockwise() *Image[T] {
	cols := im.Cols()
	return im.remap(cols, im.Rows(), func(r, c int) (int, int) {
		return cols - 1 - c, r
	})
}

// Rotate180 returns a new image turned half a turn.
// Destination (r',c') holds the source pixel (Rows−1−r', Cols−1−c').
func (im *Image[T]) Rotate180() *Image[T] {
	rows, cols := im.Rows(), im.Cols()
	return im.remap(rows, cols, func(r, c int) (int, int) {
		return rows - 1 - r, cols - 1 - c
	})
}

// remap copies every stored pixel of im into a fresh rows×cols image at the
// coordinate returned by to. to must be a bijection onto the new shape, so
// every destination insert targets a vacant, in-bounds coordinate.
func (im *Image[T]) remap(rows, cols int, to func(r, c int) (int, int)) *Image[T] {
	out, err := New[T](rows, cols)
	if err != nil {
		// Shapes come from an existing image and are always positive.
		panic(err)
	}
	im.grid.Each(func(r, c int, v T) bool {
		nr, nc := to(r, c)
		if err := out.grid.Insert(v, nr, nc); err != nil {
			panic(err)
		}
		return true
	})

	return out
}
