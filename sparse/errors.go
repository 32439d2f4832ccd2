// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Public operations return these sentinels, usually wrapped with the method
// name and coordinates; callers match them with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned by New when rows or cols is not positive,
	// or when the lattice would not fit the handle space.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrInvalidValue is returned when a nil payload is inserted.
	ErrInvalidValue = errors.New("sparse: invalid (nil) value")

	// ErrOutOfBounds indicates a row or column outside the grid shape.
	ErrOutOfBounds = errors.New("sparse: coordinate out of bounds")

	// ErrOccupied indicates Insert targeted a coordinate that already holds a cell.
	// Use Set for insert-or-replace semantics.
	ErrOccupied = errors.New("sparse: coordinate already occupied")

	// ErrEmptyGrid is returned by Delete when the grid stores no cells.
	ErrEmptyGrid = errors.New("sparse: grid has no stored cells")

	// ErrCellNotFound indicates that no cell is stored at the requested coordinate.
	ErrCellNotFound = errors.New("sparse: no cell at coordinate")

	// ErrCapacity is returned when the arena cannot address another node.
	ErrCapacity = errors.New("sparse: node arena exhausted")

	// ErrCorrupted marks a broken lattice invariant. Check returns it; Delete
	// panics with it because the grid can no longer be trusted.
	ErrCorrupted = errors.New("sparse: lattice invariant violated")
)

// Method tags used in error wrappers.
const (
	ctxAt     = "At"
	ctxInsert = "Insert"
	ctxSet    = "Set"
	ctxUpdate = "Update"
	ctxDelete = "Delete"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxCheck  = "Check"
)

// gridErrorf wraps err with the Grid method name and the offending coordinate.
// The sentinel stays reachable through %w.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
