package h3batch

import (
	"github.com/apache/arrow/go/v15/arrow"

	"github.com/hupe1980/h3batch/internal/traversal"
)

// GridDistance returns the grid distance between paired cells as int32.
func (e *Engine) GridDistance(a, b arrow.Array) (arrow.Array, error) {
	return e.run("GridDistance", rowsOf(a), func() (arrow.Array, error) {
		return traversal.GridDistance(e.env, a, b)
	})
}

// GridRing lists the cells exactly k steps from each cell.
func (e *Engine) GridRing(cells arrow.Array, k int, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("GridRing", rowsOf(cells), func() (arrow.Array, error) {
		return traversal.GridRing(e.env, cells, k, opts.Encoding)
	})
}

// GridDisk lists the cells within k steps of each cell.
func (e *Engine) GridDisk(cells arrow.Array, k int, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("GridDisk", rowsOf(cells), func() (arrow.Array, error) {
		return traversal.GridDisk(e.env, cells, k, opts.Encoding)
	})
}

// GridPathCells lists a shortest path of cells between paired cells.
func (e *Engine) GridPathCells(a, b arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("GridPathCells", rowsOf(a), func() (arrow.Array, error) {
		return traversal.GridPathCells(e.env, a, b, opts.Encoding)
	})
}

// CellToLocalIJ returns the [i, j] coordinates of each cell relative to the
// paired origin as list<int32>.
func (e *Engine) CellToLocalIJ(cells, origins arrow.Array) (arrow.Array, error) {
	return e.run("CellToLocalIJ", rowsOf(cells), func() (arrow.Array, error) {
		return traversal.CellToLocalIJ(e.env, cells, origins)
	})
}

// LocalIJToCell returns the cell at (i, j) relative to each origin.
func (e *Engine) LocalIJToCell(origins, i, j arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("LocalIJToCell", rowsOf(origins), func() (arrow.Array, error) {
		return traversal.LocalIJToCell(e.env, origins, i, j, opts.Encoding)
	})
}
