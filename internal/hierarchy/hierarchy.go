package hierarchy

import (
	"github.com/apache/arrow/go/v15/arrow"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/internal/batch"
	"github.com/hupe1980/h3batch/internal/column"
)

func parentRes(cellRes, res int) (int, bool) {
	if res == batch.AutoResolution {
		res = cellRes - 1
	}
	return res, res >= 0 && res <= cellRes
}

func childRes(cellRes, res int) (int, bool) {
	if res == batch.AutoResolution {
		res = cellRes + 1
	}
	return res, res >= cellRes && res <= grid.MaxResolution
}

// ChildrenSize returns the number of descendants c has at res, or false when
// res is coarser than c.
func ChildrenSize(g grid.Inspector, c grid.Cell, res int) (int64, bool) {
	d := res - g.Resolution(c)
	if d < 0 {
		return 0, false
	}
	n := int64(1)
	for range d {
		n *= 7
	}
	if g.IsPentagon(c) {
		// One pentagon child plus five hexagon subtrees per level.
		return 1 + 5*(n-1)/6, true
	}
	return n, true
}

type cellFunc func(c grid.Cell, res int) (grid.Cell, bool)

func mapCells(env *batch.Env, cells arrow.Array, res int, enc column.Encoding, f cellFunc) (arrow.Array, error) {
	if err := batch.ValidateOptionalResolution(res); err != nil {
		return nil, err
	}
	in, err := env.Cells(cells)
	if err != nil {
		return nil, err
	}
	enc, err = batch.OutputEncoding(enc, in.Encoding)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) (grid.Cell, bool) {
		return f(in.Values[i], res)
	})
	return column.BuildCells(env.Mem, out, enc)
}

// CellToParent returns each cell's ancestor at res.
func CellToParent(env *batch.Env, cells arrow.Array, res int, enc column.Encoding) (arrow.Array, error) {
	return mapCells(env, cells, res, enc, func(c grid.Cell, res int) (grid.Cell, bool) {
		r, ok := parentRes(env.Grid.Resolution(c), res)
		if !ok {
			return 0, false
		}
		p, err := env.Grid.Parent(c, r)
		return p, err == nil
	})
}

// CellToCenterChild returns each cell's center descendant at res.
func CellToCenterChild(env *batch.Env, cells arrow.Array, res int, enc column.Encoding) (arrow.Array, error) {
	return mapCells(env, cells, res, enc, func(c grid.Cell, res int) (grid.Cell, bool) {
		r, ok := childRes(env.Grid.Resolution(c), res)
		if !ok {
			return 0, false
		}
		child, err := env.Grid.CenterChild(c, r)
		return child, err == nil
	})
}

// CellToChildrenSize returns the number of descendants of each cell at res.
func CellToChildrenSize(env *batch.Env, cells arrow.Array, res int) (arrow.Array, error) {
	if err := batch.ValidateOptionalResolution(res); err != nil {
		return nil, err
	}
	in, err := env.Cells(cells)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) (int64, bool) {
		c := in.Values[i]
		r, ok := childRes(env.Grid.Resolution(c), res)
		if !ok {
			return 0, false
		}
		return ChildrenSize(env.Grid, c, r)
	})
	return column.BuildInt64s(env.Mem, out), nil
}

// CellToChildren lists each cell's descendants at res. Rows whose
// descendant count exceeds the list limit are absent.
func CellToChildren(env *batch.Env, cells arrow.Array, res int, enc column.Encoding) (arrow.Array, error) {
	if err := batch.ValidateOptionalResolution(res); err != nil {
		return nil, err
	}
	in, err := env.Cells(cells)
	if err != nil {
		return nil, err
	}
	enc, err = batch.OutputEncoding(enc, in.Encoding)
	if err != nil {
		return nil, err
	}
	limit := env.ListLimit()
	out := batch.Map(env, in.Len(), in.Absent, func(i int) ([]grid.Cell, bool) {
		c := in.Values[i]
		r, ok := childRes(env.Grid.Resolution(c), res)
		if !ok {
			return nil, false
		}
		if n, ok := ChildrenSize(env.Grid, c, r); !ok || n > limit {
			return nil, false
		}
		children, err := env.Grid.Children(c, r)
		return children, err == nil
	})
	return column.BuildCellLists(env.Mem, out, enc)
}

// CellToChildPos returns the position of each cell among the descendants of
// its ancestor at parentRes.
func CellToChildPos(env *batch.Env, cells arrow.Array, parentResolution int) (arrow.Array, error) {
	if err := batch.ValidateOptionalResolution(parentResolution); err != nil {
		return nil, err
	}
	in, err := env.Cells(cells)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) (int64, bool) {
		c := in.Values[i]
		r, ok := parentRes(env.Grid.Resolution(c), parentResolution)
		if !ok {
			return 0, false
		}
		pos, err := env.Grid.ChildPos(c, r)
		return pos, err == nil
	})
	return column.BuildInt64s(env.Mem, out), nil
}

// ChildPosToCell returns the descendant at childRes found at position pos
// below parent, row by row. Positions outside the parent's children are absent.
func ChildPosToCell(env *batch.Env, pos, parents arrow.Array, childResolution int, enc column.Encoding) (arrow.Array, error) {
	if err := batch.ValidateOptionalResolution(childResolution); err != nil {
		return nil, err
	}
	if err := column.CheckLengths(pos, parents); err != nil {
		return nil, err
	}
	positions, err := column.Ints(pos)
	if err != nil {
		return nil, err
	}
	in, err := env.Cells(parents)
	if err != nil {
		return nil, err
	}
	enc, err = batch.OutputEncoding(enc, in.Encoding)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), column.Union(positions.Absent, in.Absent), func(i int) (grid.Cell, bool) {
		parent := in.Values[i]
		r, ok := childRes(env.Grid.Resolution(parent), childResolution)
		if !ok {
			return 0, false
		}
		n, _ := ChildrenSize(env.Grid, parent, r)
		p := int64(positions.Values[i])
		if p < 0 || p >= n {
			return 0, false
		}
		c, err := env.Grid.ChildPosToCell(p, parent, r)
		return c, err == nil
	})
	return column.BuildCells(env.Mem, out, enc)
}

// compact compacts one row. Rows holding the same cell twice are rejected.
func compact(g grid.Grid, cells []grid.Cell) ([]grid.Cell, bool) {
	seen := make(map[grid.Cell]struct{}, len(cells))
	for _, c := range cells {
		if _, dup := seen[c]; dup {
			return nil, false
		}
		seen[c] = struct{}{}
	}
	compacted, err := g.Compact(cells)
	return compacted, err == nil
}

// fits reports whether cells expanded to res stay within limit.
func fits(g grid.Grid, cells []grid.Cell, res int, limit int64) bool {
	var total int64
	for _, c := range cells {
		n, ok := ChildrenSize(g, c, res)
		if !ok {
			return false
		}
		if total += n; total > limit {
			return false
		}
	}
	return true
}

// CompactCells compacts the cell set of each row, which may mix
// resolutions. Rows the grid cannot compact (duplicates, overlapping cells)
// are absent.
func CompactCells(env *batch.Env, lists arrow.Array, enc column.Encoding) (arrow.Array, error) {
	in, err := env.CellLists(lists)
	if err != nil {
		return nil, err
	}
	enc, err = batch.OutputEncoding(enc, in.Encoding)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) ([]grid.Cell, bool) {
		row := in.Rows[i]
		if len(row) == 0 {
			return row, true
		}
		return compact(env.Grid, row)
	})
	return column.BuildCellLists(env.Mem, out, enc)
}

// UncompactCells expands the cell set of each row to res. Rows holding cells
// finer than res, or expanding beyond the list limit, are absent.
func UncompactCells(env *batch.Env, lists arrow.Array, res int, enc column.Encoding) (arrow.Array, error) {
	if err := batch.ValidateResolution(res); err != nil {
		return nil, err
	}
	in, err := env.CellLists(lists)
	if err != nil {
		return nil, err
	}
	enc, err = batch.OutputEncoding(enc, in.Encoding)
	if err != nil {
		return nil, err
	}
	limit := env.ListLimit()
	out := batch.Map(env, in.Len(), in.Absent, func(i int) ([]grid.Cell, bool) {
		row := in.Rows[i]
		if !fits(env.Grid, row, res, limit) {
			return nil, false
		}
		if len(row) == 0 {
			return row, true
		}
		cells, err := env.Grid.Uncompact(row, res)
		return cells, err == nil
	})
	return column.BuildCellLists(env.Mem, out, enc)
}
