// SPDX-License-Identifier: MIT

// Package sparse - mutation primitives (Insert, Set, Update, Delete).
//
// Contract:
//   - Validation always precedes mutation: a failed call leaves the grid untouched.
//   - A new cell is spliced into its row chain and its column chain inside the
//     same call, after both insertion points are known; there is no state in
//     which the cell is reachable from only one sentinel.
//   - Delete re-walks both chains and requires them to agree; disagreement is a
//     broken invariant and panics with ErrCorrupted.

package sparse

// Insert stores value at an empty coordinate.
// MAIN DESCRIPTION:
//   - Find the predecessor of (row,col) in the row chain (by column) and in the
//     column chain (by row), then splice one new node into both.
//
// Implementation:
//   - Stage 1: reject nil payloads and out-of-bounds coordinates.
//   - Stage 2: walk the row chain to the last node with col' < col.
//   - Stage 3: walk the column chain to the last node with row' < row.
//   - Stage 4: reject an occupied coordinate; allocate; link both chains.
//
// Behavior highlights:
//   - Appending past the last cell of a chain is a normal terminal splice.
//   - Insert never replaces. Use Set for insert-or-replace.
//
// Errors:
//   - ErrInvalidValue, ErrOutOfBounds, ErrOccupied, ErrCapacity.
//
// Complexity:
//   - Time O(R + C + cells-in-row + cells-in-column), Space O(1) amortized.
func (g *Grid[T]) Insert(value T, row, col int) error {
	if isNil(value) {
		return gridErrorf(ctxInsert, row, col, ErrInvalidValue)
	}
	if !g.InBounds(row, col) {
		return gridErrorf(ctxInsert, row, col, ErrOutOfBounds)
	}

	left, rightOf := g.rowSplicePoint(row, col)
	if rightOf != nilHandle && g.nodes[rightOf].col == col {
		return gridErrorf(ctxInsert, row, col, ErrOccupied)
	}
	up, below := g.colSplicePoint(row, col)

	h, err := g.alloc(row, col, value)
	if err != nil {
		return gridErrorf(ctxInsert, row, col, err)
	}
	g.nodes[h].right = rightOf
	g.nodes[h].down = below
	g.nodes[left].right = h
	g.nodes[up].down = h
	g.count++

	return nil
}

// Set writes value at (row,col), replacing the payload of an existing cell in
// place or inserting a new cell when the coordinate is vacant.
// Errors: ErrInvalidValue, ErrOutOfBounds, ErrCapacity.
// Complexity: same as Insert.
func (g *Grid[T]) Set(value T, row, col int) error {
	if isNil(value) {
		return gridErrorf(ctxSet, row, col, ErrInvalidValue)
	}
	if !g.InBounds(row, col) {
		return gridErrorf(ctxSet, row, col, ErrOutOfBounds)
	}
	if h := g.findCell(row, col); h != nilHandle {
		g.nodes[h].value = value
		return nil
	}

	return g.Insert(value, row, col)
}

// Update replaces the payload of an existing cell with fn(old).
// The cell keeps its coordinate and its position in both chains.
// Errors: ErrOutOfBounds, ErrCellNotFound, ErrInvalidValue (fn returned nil).
func (g *Grid[T]) Update(row, col int, fn func(T) T) error {
	if !g.InBounds(row, col) {
		return gridErrorf(ctxUpdate, row, col, ErrOutOfBounds)
	}
	h := g.findCell(row, col)
	if h == nilHandle {
		return gridErrorf(ctxUpdate, row, col, ErrCellNotFound)
	}
	next := fn(g.nodes[h].value)
	if isNil(next) {
		return gridErrorf(ctxUpdate, row, col, ErrInvalidValue)
	}
	g.nodes[h].value = next

	return nil
}

// Delete removes the cell stored at (row,col).
// MAIN DESCRIPTION:
//   - Walk the row chain and the column chain tracking predecessors, then
//     bypass the target in both chains and recycle its slot.
//
// Errors (checked in this order):
//   - ErrOutOfBounds, ErrEmptyGrid, ErrCellNotFound.
//
// Panics:
//   - ErrCorrupted when the row scan and the column scan disagree about the
//     target. That state cannot be produced through this API.
//
// Complexity:
//   - Time O(R + C + cells-in-row + cells-in-column), Space O(1).
func (g *Grid[T]) Delete(row, col int) error {
	if !g.InBounds(row, col) {
		return gridErrorf(ctxDelete, row, col, ErrOutOfBounds)
	}
	if g.count == 0 {
		return gridErrorf(ctxDelete, row, col, ErrEmptyGrid)
	}
	if g.findCell(row, col) == nilHandle {
		return gridErrorf(ctxDelete, row, col, ErrCellNotFound)
	}

	left, targetH := g.rowSplicePoint(row, col)
	up, targetV := g.colSplicePoint(row, col)
	foundH := targetH != nilHandle && g.nodes[targetH].col == col
	foundV := targetV != nilHandle && g.nodes[targetV].row == row
	if !foundH || !foundV || targetH != targetV {
		panic(gridErrorf(ctxDelete, row, col, ErrCorrupted))
	}

	g.nodes[left].right = g.nodes[targetH].right
	g.nodes[up].down = g.nodes[targetV].down
	g.release(targetH)
	g.count--

	return nil
}

// rowSplicePoint returns the last node of row's chain whose column is below
// col (the row sentinel when none is) and that node's successor.
// The caller guarantees row is in bounds.
func (g *Grid[T]) rowSplicePoint(row, col int) (prev, next handle) {
	prev, _ = g.rowSentinel(row)
	next = g.nodes[prev].right
	for next != nilHandle && g.nodes[next].col < col {
		prev = next
		next = g.nodes[next].right
	}

	return prev, next
}

// colSplicePoint mirrors rowSplicePoint along col's chain, ordered by row.
func (g *Grid[T]) colSplicePoint(row, col int) (prev, next handle) {
	prev, _ = g.colSentinel(col)
	next = g.nodes[prev].down
	for next != nilHandle && g.nodes[next].row < row {
		prev = next
		next = g.nodes[next].down
	}

	return prev, next
}
