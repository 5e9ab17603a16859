package h3batch

import (
	"github.com/apache/arrow/go/v15/arrow"

	"github.com/hupe1980/h3batch/internal/hierarchy"
)

// CellToParent returns the ancestor of each cell at WithResolution, by
// default one level coarser.
func (e *Engine) CellToParent(cells arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("CellToParent", rowsOf(cells), func() (arrow.Array, error) {
		return hierarchy.CellToParent(e.env, cells, opts.Resolution, opts.Encoding)
	})
}

// CellToCenterChild returns the center descendant of each cell at
// WithResolution, by default one level finer.
func (e *Engine) CellToCenterChild(cells arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("CellToCenterChild", rowsOf(cells), func() (arrow.Array, error) {
		return hierarchy.CellToCenterChild(e.env, cells, opts.Resolution, opts.Encoding)
	})
}

// CellToChildrenSize returns the number of descendants of each cell at
// WithResolution as int64.
func (e *Engine) CellToChildrenSize(cells arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("CellToChildrenSize", rowsOf(cells), func() (arrow.Array, error) {
		return hierarchy.CellToChildrenSize(e.env, cells, opts.Resolution)
	})
}

// CellToChildren lists the descendants of each cell at WithResolution.
func (e *Engine) CellToChildren(cells arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("CellToChildren", rowsOf(cells), func() (arrow.Array, error) {
		return hierarchy.CellToChildren(e.env, cells, opts.Resolution, opts.Encoding)
	})
}

// CellToChildPos returns the position of each cell below its ancestor at
// WithResolution as int64.
func (e *Engine) CellToChildPos(cells arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("CellToChildPos", rowsOf(cells), func() (arrow.Array, error) {
		return hierarchy.CellToChildPos(e.env, cells, opts.Resolution)
	})
}

// ChildPosToCell returns the descendant at position pos below each parent,
// at WithResolution.
func (e *Engine) ChildPosToCell(pos, parents arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("ChildPosToCell", rowsOf(pos), func() (arrow.Array, error) {
		return hierarchy.ChildPosToCell(e.env, pos, parents, opts.Resolution, opts.Encoding)
	})
}

// CompactCells compacts the cell set held in each row of a list column.
func (e *Engine) CompactCells(lists arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("CompactCells", rowsOf(lists), func() (arrow.Array, error) {
		return hierarchy.CompactCells(e.env, lists, opts.Encoding)
	})
}

// UncompactCells expands the cell set held in each row of a list column to res.
func (e *Engine) UncompactCells(lists arrow.Array, res int, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("UncompactCells", rowsOf(lists), func() (arrow.Array, error) {
		return hierarchy.UncompactCells(e.env, lists, res, opts.Encoding)
	})
}
