// SPDX-License-Identifier: MIT

// Package sparse - full-lattice invariant verification.

package sparse

import "fmt"

// Check walks the whole lattice and verifies every structural invariant:
//   - exactly R row sentinels tagged (0..R-1, -1) in order below the root;
//   - exactly C column sentinels tagged (-1, 0..C-1) in order right of the root;
//   - each row chain holds only cells of that row, with strictly increasing columns;
//   - each column chain holds only cells of that column, with strictly increasing rows;
//   - the two walks reach the same set of cells, and its size equals Len().
//
// Returns nil or ErrCorrupted wrapped with the first violation found.
// Complexity: O(R + C + n) time, O(arena size) memory.
func (g *Grid[T]) Check() error {
	root := g.nodes[rootHandle]
	if root.row != -1 || root.col != -1 {
		return g.corrupt(-1, -1, "root tagged (%d,%d)", root.row, root.col)
	}

	seen := make([]bool, len(g.nodes))
	cells := 0

	r := 0
	for rs := root.down; rs != nilHandle; rs = g.nodes[rs].down {
		s := g.nodes[rs]
		if s.row != r || s.col != -1 {
			return g.corrupt(r, -1, "row sentinel tagged (%d,%d)", s.row, s.col)
		}
		last := -1
		for h := s.right; h != nilHandle; h = g.nodes[h].right {
			n := g.nodes[h]
			if n.row != r || n.col <= last || n.col >= g.cols {
				return g.corrupt(n.row, n.col, "row %d chain out of order after column %d", r, last)
			}
			if seen[h] {
				return g.corrupt(n.row, n.col, "cell linked twice in row %d", r)
			}
			seen[h] = true
			last = n.col
			cells++
		}
		r++
	}
	if r != g.rows {
		return g.corrupt(r, -1, "found %d row sentinels, want %d", r, g.rows)
	}

	c := 0
	for cs := root.right; cs != nilHandle; cs = g.nodes[cs].right {
		s := g.nodes[cs]
		if s.col != c || s.row != -1 {
			return g.corrupt(-1, c, "column sentinel tagged (%d,%d)", s.row, s.col)
		}
		last := -1
		for h := s.down; h != nilHandle; h = g.nodes[h].down {
			n := g.nodes[h]
			if n.col != c || n.row <= last || n.row >= g.rows {
				return g.corrupt(n.row, n.col, "column %d chain out of order after row %d", c, last)
			}
			if !seen[h] {
				return g.corrupt(n.row, n.col, "cell reachable from column %d only", c)
			}
			seen[h] = false
			last = n.row
			cells--
		}
		c++
	}
	if c != g.cols {
		return g.corrupt(-1, c, "found %d column sentinels, want %d", c, g.cols)
	}

	if cells != 0 {
		return g.corrupt(-1, -1, "%d cells reachable from their row only", cells)
	}
	stored := 0
	g.Each(func(int, int, T) bool { stored++; return true })
	if stored != g.count {
		return g.corrupt(-1, -1, "stored %d cells, counter says %d", stored, g.count)
	}

	return nil
}

// corrupt formats a Check failure around ErrCorrupted.
func (g *Grid[T]) corrupt(row, col int, format string, args ...any) error {
	return gridErrorf(ctxCheck, row, col, fmt.Errorf("%w: "+format, append([]any{ErrCorrupted}, args...)...))
}
