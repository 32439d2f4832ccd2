// SPDX-License-Identifier: MIT

// Package sparse - ordered traversal and whole-grid utilities.

package sparse

import "fmt"

// Row calls fn for every stored cell of row in increasing column order.
// Iteration stops early when fn returns false.
// Errors: ErrOutOfBounds when row is outside [0,R).
// Complexity: O(R + cells-in-row).
func (g *Grid[T]) Row(row int, fn func(col int, v T) bool) error {
	rs, ok := g.rowSentinel(row)
	if !ok {
		return gridErrorf(ctxRow, row, -1, ErrOutOfBounds)
	}
	for h := g.nodes[rs].right; h != nilHandle; h = g.nodes[h].right {
		if !fn(g.nodes[h].col, g.nodes[h].value) {
			break
		}
	}

	return nil
}

// Col calls fn for every stored cell of col in increasing row order.
// Iteration stops early when fn returns false.
// Errors: ErrOutOfBounds when col is outside [0,C).
// Complexity: O(C + cells-in-column).
func (g *Grid[T]) Col(col int, fn func(row int, v T) bool) error {
	cs, ok := g.colSentinel(col)
	if !ok {
		return gridErrorf(ctxCol, -1, col, ErrOutOfBounds)
	}
	for h := g.nodes[cs].down; h != nilHandle; h = g.nodes[h].down {
		if !fn(g.nodes[h].row, g.nodes[h].value) {
			break
		}
	}

	return nil
}

// Each visits every stored cell in row-major order: down the row sentinels,
// then right along each row chain. Stops when fn returns false.
// Complexity: O(R + n).
func (g *Grid[T]) Each(fn func(row, col int, v T) bool) {
	for rs := g.nodes[rootHandle].down; rs != nilHandle; rs = g.nodes[rs].down {
		for h := g.nodes[rs].right; h != nilHandle; h = g.nodes[h].right {
			if !fn(g.nodes[h].row, g.nodes[h].col, g.nodes[h].value) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the grid.
// Handles are arena indices, so copying the arena copies the whole lattice.
// Payloads are copied by value; reference payloads still share their targets.
// Complexity: O(R + C + arena size).
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{
		nodes: make([]node[T], len(g.nodes)),
		free:  make([]handle, len(g.free)),
		rows:  g.rows,
		cols:  g.cols,
		count: g.count,
	}
	copy(out.nodes, g.nodes)
	copy(out.free, g.free)

	return out
}

// Clear removes every stored cell and keeps the sentinel lattice.
// Sentinels occupy the first 1+R+C arena slots, so truncating the arena and
// detaching each sentinel's cell chain restores the state New produced.
// Complexity: O(R + C + arena size).
func (g *Grid[T]) Clear() {
	lattice := 1 + g.rows + g.cols
	clear(g.nodes[lattice:])
	g.nodes = g.nodes[:lattice]
	g.free = nil
	for rs := g.nodes[rootHandle].down; rs != nilHandle; rs = g.nodes[rs].down {
		g.nodes[rs].right = nilHandle
	}
	for cs := g.nodes[rootHandle].right; cs != nilHandle; cs = g.nodes[cs].right {
		g.nodes[cs].down = nilHandle
	}
	g.count = 0
}

// String returns a compact summary such as "Grid[3×4, 5 cells]".
func (g *Grid[T]) String() string {
	return fmt.Sprintf("Grid[%d×%d, %d cells]", g.rows, g.cols, g.count)
}
