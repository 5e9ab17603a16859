package traversal

import (
	"github.com/apache/arrow/go/v15/arrow"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/internal/batch"
	"github.com/hupe1980/h3batch/internal/column"
	"github.com/hupe1980/h3batch/internal/conv"
)

type pair struct {
	a, b *column.Cells
	n    int
	skip *column.Mask
}

func parsePair(env *batch.Env, a, b arrow.Array) (*pair, error) {
	if err := column.CheckLengths(a, b); err != nil {
		return nil, err
	}
	left, err := env.Cells(a)
	if err != nil {
		return nil, err
	}
	right, err := env.Cells(b)
	if err != nil {
		return nil, err
	}
	return &pair{a: left, b: right, n: left.Len(), skip: column.Union(left.Absent, right.Absent)}, nil
}

// GridDistance returns the grid distance between the paired cells.
func GridDistance(env *batch.Env, a, b arrow.Array) (arrow.Array, error) {
	p, err := parsePair(env, a, b)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, p.n, p.skip, func(i int) (int32, bool) {
		d, err := env.Grid.GridDistance(p.a.Values[i], p.b.Values[i])
		if err != nil {
			return 0, false
		}
		v, err := conv.IntToInt32(d)
		return v, err == nil
	})
	return column.BuildInt32s(env.Mem, out), nil
}

type neighborhood func(c grid.Cell, k int) ([]grid.Cell, error)

func around(env *batch.Env, cells arrow.Array, k int, enc column.Encoding, f neighborhood) (arrow.Array, error) {
	if err := env.ValidateK(k); err != nil {
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
	out := batch.Map(env, in.Len(), in.Absent, func(i int) ([]grid.Cell, bool) {
		res, err := f(in.Values[i], k)
		return res, err == nil
	})
	return column.BuildCellLists(env.Mem, out, enc)
}

// GridRing lists the cells exactly k steps from each cell.
func GridRing(env *batch.Env, cells arrow.Array, k int, enc column.Encoding) (arrow.Array, error) {
	return around(env, cells, k, enc, env.Grid.GridRing)
}

// GridDisk lists the cells within k steps of each cell, the cell included.
func GridDisk(env *batch.Env, cells arrow.Array, k int, enc column.Encoding) (arrow.Array, error) {
	return around(env, cells, k, enc, env.Grid.GridDisk)
}

// GridPathCells lists the cells of a shortest grid path between the paired
// cells, both ends included. The output encoding defaults to that of a.
// Paths longer than the list limit are absent.
func GridPathCells(env *batch.Env, a, b arrow.Array, enc column.Encoding) (arrow.Array, error) {
	p, err := parsePair(env, a, b)
	if err != nil {
		return nil, err
	}
	enc, err = batch.OutputEncoding(enc, p.a.Encoding)
	if err != nil {
		return nil, err
	}
	limit := env.ListLimit()
	out := batch.Map(env, p.n, p.skip, func(i int) ([]grid.Cell, bool) {
		d, err := env.Grid.GridDistance(p.a.Values[i], p.b.Values[i])
		if err != nil || int64(d)+1 > limit {
			return nil, false
		}
		path, err := env.Grid.GridPath(p.a.Values[i], p.b.Values[i])
		return path, err == nil
	})
	return column.BuildCellLists(env.Mem, out, enc)
}

// CellToLocalIJ returns the [i, j] coordinates of each cell in the local frame
// anchored at the paired origin.
func CellToLocalIJ(env *batch.Env, cells, origins arrow.Array) (arrow.Array, error) {
	p, err := parsePair(env, cells, origins)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, p.n, p.skip, func(i int) ([]int32, bool) {
		ij, err := env.Grid.CellToLocalIJ(p.b.Values[i], p.a.Values[i])
		if err != nil {
			return nil, false
		}
		ci, err := conv.IntToInt32(ij.I)
		if err != nil {
			return nil, false
		}
		cj, err := conv.IntToInt32(ij.J)
		if err != nil {
			return nil, false
		}
		return []int32{ci, cj}, true
	})
	return column.BuildInt32Lists(env.Mem, out), nil
}

// coords reads a local coordinate column. Values outside int32 are absent.
func coords(arr arrow.Array) (*column.IntColumn, error) {
	col, err := column.Ints(arr)
	if err != nil {
		return nil, err
	}
	for row, v := range col.Values {
		if _, err := conv.IntToInt32(v); err != nil {
			col.Absent.Add(row)
		}
	}
	return col, nil
}

// LocalIJToCell returns the cell at (i, j) in the local frame of each origin.
func LocalIJToCell(env *batch.Env, origins, i, j arrow.Array, enc column.Encoding) (arrow.Array, error) {
	if err := column.CheckLengths(origins, i, j); err != nil {
		return nil, err
	}
	in, err := env.Cells(origins)
	if err != nil {
		return nil, err
	}
	is, err := coords(i)
	if err != nil {
		return nil, err
	}
	js, err := coords(j)
	if err != nil {
		return nil, err
	}
	enc, err = batch.OutputEncoding(enc, in.Encoding)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), column.Union(in.Absent, is.Absent, js.Absent), func(row int) (grid.Cell, bool) {
		c, err := env.Grid.LocalIJToCell(in.Values[row], grid.CoordIJ{I: is.Values[row], J: js.Values[row]})
		return c, err == nil
	})
	return column.BuildCells(env.Mem, out, enc)
}
