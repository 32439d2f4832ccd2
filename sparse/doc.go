// SPDX-License-Identifier: MIT

// Package sparse provides Grid, a fixed-shape two-dimensional container that
// stores only the coordinates that were explicitly written.
//
// What:
//
//   - Grid[T] is an orthogonal-list (cross-linked) sparse matrix.
//   - A root sentinel at (-1,-1) chains one sentinel per row downward and one
//     sentinel per column rightward.
//   - Every stored cell lives in exactly two singly-linked chains: its row chain
//     (strictly increasing column) and its column chain (strictly increasing row).
//   - Nodes live in an arena and link to each other through integer handles, so
//     the grid owns every node exclusively and no two Go pointers alias a cell.
//
// Why:
//
//   - Memory proportional to stored cells plus R+C sentinels, not R×C.
//   - Ordered row-major and column-major traversal for free.
//   - Insert and delete splice in O(rows + cols + chain length) without moving data.
//
// Complexity:
//
//   - New:           O(R + C) time and memory.
//   - At / Has:      O(R + cells-in-row).
//   - Insert / Set:  O(R + C + cells-in-row + cells-in-column).
//   - Delete:        O(R + C + cells-in-row + cells-in-column).
//   - Each / Clone:  O(R + C + n).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols not positive (or too large for the arena).
//   - ErrInvalidValue:      a nil payload was passed for a nilable T.
//   - ErrOutOfBounds:       coordinate outside [0,R)×[0,C).
//   - ErrOccupied:          Insert on a coordinate that already holds a cell.
//   - ErrEmptyGrid:         Delete on a grid with no stored cells.
//   - ErrCellNotFound:      Delete/Update on a vacant coordinate.
//   - ErrCorrupted:         broken lattice invariant (Check, or a panic from Delete).
//
// A Grid is not safe for concurrent use; callers own it exclusively.
package sparse
