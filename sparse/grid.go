// SPDX-License-Identifier: MIT

// Package sparse - arena layout, construction and the sentinel lattice.
//
// Purpose:
//   - Own every node (sentinels and cells) in one slice; links are handles.
//   - Build the lattice once: root, R row sentinels, C column sentinels.
//   - Provide the traversal primitives every other operation is written in:
//     rowSentinel, colSentinel, findCell.
//
// Layout:
//   - nodes[0] is the root at (-1,-1).
//   - nodes[1..R] are row sentinels, nodes[R+1..R+C] are column sentinels.
//   - Cells are allocated after the sentinels; freed slots are recycled.
//
// Complexity quicksheet:
//   - New: O(R+C); rowSentinel: O(R); colSentinel: O(C); findCell: O(R + row chain).

package sparse

import (
	"fmt"
	"math"
	"reflect"
)

// handle addresses a node inside Grid.nodes. nilHandle terminates a chain.
type handle int32

const (
	nilHandle  handle = -1
	rootHandle handle = 0
	// maxNodes bounds the arena so every index fits a handle.
	maxNodes = math.MaxInt32
)

// node is either a sentinel (row or col is -1) or a stored cell.
//   - right: next node in the row chain (for the root: first column sentinel;
//     for a column sentinel: next column sentinel).
//   - down:  next node in the column chain (for the root: first row sentinel;
//     for a row sentinel: next row sentinel).
type node[T any] struct {
	row, col    int
	right, down handle
	value       T
}

// Grid is a rows×cols orthogonal-list sparse matrix.
//   - rows, cols are fixed by New for the grid's lifetime.
//   - count is the number of stored (non-sentinel) cells.
//   - free holds recycled cell slots for reuse by later inserts.
type Grid[T any] struct {
	nodes      []node[T]
	free       []handle
	rows, cols int
	count      int
}

var _ fmt.Stringer = (*Grid[int])(nil)

// New creates an empty rows×cols grid and builds its sentinel lattice.
// MAIN DESCRIPTION:
//   - Allocate the root, then chain one sentinel per row below it and one
//     sentinel per column to its right.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0, cols<=0 or the lattice exceeds the arena.
//
// Complexity:
//   - Time O(R+C), Space O(R+C).
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 || rows >= maxNodes-cols {
		return nil, ErrInvalidDimensions
	}
	g := &Grid[T]{
		nodes: make([]node[T], 0, 1+rows+cols),
		rows:  rows,
		cols:  cols,
	}
	g.nodes = append(g.nodes, node[T]{row: -1, col: -1, right: nilHandle, down: nilHandle})

	// Row sentinels hang below the root.
	prev := rootHandle
	for r := 0; r < rows; r++ {
		h := handle(len(g.nodes))
		g.nodes = append(g.nodes, node[T]{row: r, col: -1, right: nilHandle, down: nilHandle})
		g.nodes[prev].down = h
		prev = h
	}
	// Column sentinels hang to the right of the root.
	prev = rootHandle
	for c := 0; c < cols; c++ {
		h := handle(len(g.nodes))
		g.nodes = append(g.nodes, node[T]{row: -1, col: c, right: nilHandle, down: nilHandle})
		g.nodes[prev].right = h
		prev = h
	}

	return g, nil
}

// Rows returns the fixed row count. Complexity: O(1).
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the fixed column count. Complexity: O(1).
func (g *Grid[T]) Cols() int { return g.cols }

// Shape packs Rows() and Cols() into a single call.
func (g *Grid[T]) Shape() (rows, cols int) { return g.rows, g.cols }

// Len returns the number of stored cells. Complexity: O(1).
func (g *Grid[T]) Len() int { return g.count }

// InBounds reports whether (row,col) lies inside the grid shape.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// rowSentinel walks the row-sentinel chain from the root.
// Returns (nilHandle, false) only when row is outside [0,R).
// Complexity: O(R).
func (g *Grid[T]) rowSentinel(row int) (handle, bool) {
	if row < 0 || row >= g.rows {
		return nilHandle, false
	}
	h := g.nodes[rootHandle].down
	for h != nilHandle && g.nodes[h].row != row {
		h = g.nodes[h].down
	}

	return h, h != nilHandle
}

// colSentinel walks the column-sentinel chain from the root.
// Complexity: O(C).
func (g *Grid[T]) colSentinel(col int) (handle, bool) {
	if col < 0 || col >= g.cols {
		return nilHandle, false
	}
	h := g.nodes[rootHandle].right
	for h != nilHandle && g.nodes[h].col != col {
		h = g.nodes[h].right
	}

	return h, h != nilHandle
}

// findCell locates the cell at (row,col) through the row chain.
// The walk stops as soon as the chain passes col, since columns increase.
// Returns nilHandle when the coordinate is vacant or out of bounds.
// Complexity: O(R + cells-in-row).
func (g *Grid[T]) findCell(row, col int) handle {
	rs, ok := g.rowSentinel(row)
	if !ok || col < 0 || col >= g.cols {
		return nilHandle
	}
	h := g.nodes[rs].right
	for h != nilHandle && g.nodes[h].col < col {
		h = g.nodes[h].right
	}
	if h != nilHandle && g.nodes[h].col == col {
		return h
	}

	return nilHandle
}

// At returns the value stored at (row,col) and whether a cell exists there.
// Errors:
//   - ErrOutOfBounds when the coordinate is outside the grid.
//
// Complexity: O(R + cells-in-row).
func (g *Grid[T]) At(row, col int) (T, bool, error) {
	var zero T
	if !g.InBounds(row, col) {
		return zero, false, gridErrorf(ctxAt, row, col, ErrOutOfBounds)
	}
	h := g.findCell(row, col)
	if h == nilHandle {
		return zero, false, nil
	}

	return g.nodes[h].value, true, nil
}

// Has reports whether a cell is stored at (row,col). Out-of-bounds is false.
func (g *Grid[T]) Has(row, col int) bool {
	return g.findCell(row, col) != nilHandle
}

// alloc takes a slot from the free list or grows the arena.
// The returned handle is only valid until the next append to g.nodes,
// so callers index g.nodes[h] after every alloc instead of keeping pointers.
func (g *Grid[T]) alloc(row, col int, value T) (handle, error) {
	n := node[T]{row: row, col: col, right: nilHandle, down: nilHandle, value: value}
	if k := len(g.free); k > 0 {
		h := g.free[k-1]
		g.free = g.free[:k-1]
		g.nodes[h] = n
		return h, nil
	}
	if len(g.nodes) >= maxNodes {
		return nilHandle, ErrCapacity
	}
	g.nodes = append(g.nodes, n)

	return handle(len(g.nodes) - 1), nil
}

// release zeroes a detached cell slot and queues it for reuse.
func (g *Grid[T]) release(h handle) {
	g.nodes[h] = node[T]{row: -1, col: -1, right: nilHandle, down: nilHandle}
	g.free = append(g.free, h)
}

// isNil reports whether v is a nil value of a nilable kind.
// Value kinds (numbers, structs, arrays, strings) are never nil.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true // nil interface
	}
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
