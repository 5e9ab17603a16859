package traversal

import (
	"testing"

	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/internal/batch"
	"github.com/hupe1980/h3batch/internal/column"
	"github.com/hupe1980/h3batch/internal/parallel"
	"github.com/hupe1980/h3batch/testutil"
)

const (
	sfCell       grid.Cell = 0x8928308280fffff
	res0Pentagon grid.Cell = 0x8009fffffffffff
)

func newEnv(t *testing.T) *batch.Env {
	t.Helper()
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	t.Cleanup(func() { mem.AssertSize(t, 0) })
	runner := parallel.New(func(o *parallel.Options) {
		o.Threshold = 32
		o.ChunkSize = 8
		o.Workers = 4
	})
	return batch.NewEnv(grid.NewH3(), mem, runner)
}

// walk returns a cell exactly k steps from c.
func walk(t *testing.T, g grid.Grid, c grid.Cell, k int) grid.Cell {
	t.Helper()
	ring, err := g.GridRing(c, k)
	require.NoError(t, err)
	require.NotEmpty(t, ring)
	return ring[0]
}

func TestGridDistance(t *testing.T) {
	env := newEnv(t)
	g := env.Grid

	far := walk(t, g, sfCell, 5)
	coarse, err := g.Parent(sfCell, 5)
	require.NoError(t, err)

	a := testutil.CellColumn(env.Mem, []grid.Cell{sfCell, sfCell, sfCell, 0})
	defer a.Release()
	b := testutil.CellColumn(env.Mem, []grid.Cell{sfCell, far, coarse, sfCell})
	defer b.Release()

	out, err := GridDistance(env, a, b)
	require.NoError(t, err)
	defer out.Release()

	d := out.(*array.Int32)
	assert.Equal(t, int32(0), d.Value(0))
	assert.Equal(t, int32(5), d.Value(1))
	assert.True(t, d.IsNull(2), "different resolutions")
	assert.True(t, d.IsNull(3))

	short := testutil.CellColumn(env.Mem, []grid.Cell{sfCell})
	defer short.Release()
	_, err = GridDistance(env, a, short)
	var lm *column.LengthMismatchError
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 4, lm.Expected)
	assert.Equal(t, 1, lm.Actual)
}

func TestDistanceSymmetry(t *testing.T) {
	env := newEnv(t)
	g := env.Grid
	rng := testutil.NewRNG(11)

	origins := rng.Cells(g, 100, 6)
	targets := make([]grid.Cell, len(origins))
	for i, c := range origins {
		targets[i] = walk(t, g, c, 1+rng.Intn(8))
	}

	a := testutil.CellColumn(env.Mem, origins)
	defer a.Release()
	b := testutil.CellColumn(env.Mem, targets)
	defer b.Release()

	ab, err := GridDistance(env, a, b)
	require.NoError(t, err)
	defer ab.Release()
	ba, err := GridDistance(env, b, a)
	require.NoError(t, err)
	defer ba.Release()

	for i := range origins {
		if ab.IsNull(i) || ba.IsNull(i) {
			continue
		}
		assert.Equal(t, ab.(*array.Int32).Value(i), ba.(*array.Int32).Value(i), "row %d", i)
	}
}

func TestRingDiskConsistency(t *testing.T) {
	env := newEnv(t)
	rng := testutil.NewRNG(5)

	values := append(rng.Cells(env.Grid, 40, 5), res0Pentagon)
	cells := testutil.CellColumn(env.Mem, values)
	defer cells.Release()

	for k := 0; k <= 3; k++ {
		disk, err := GridDisk(env, cells, k, column.Auto)
		require.NoError(t, err)

		union := make([][]grid.Cell, len(values))
		for r := 0; r <= k; r++ {
			ring, err := GridRing(env, cells, r, column.Auto)
			require.NoError(t, err)
			for i := range values {
				union[i] = append(union[i], testutil.ListCells(ring, i)...)
			}
			ring.Release()
		}

		for i := range values {
			assert.ElementsMatch(t, testutil.ListCells(disk, i), union[i], "row %d k %d", i, k)
		}
		disk.Release()
	}
}

func TestGridDisk(t *testing.T) {
	env := newEnv(t)

	cells := testutil.Strings(env.Mem, []string{sfCell.String(), res0Pentagon.String(), "nope"}, nil)
	defer cells.Release()

	out, err := GridDisk(env, cells, 1, column.Auto)
	require.NoError(t, err)
	defer out.Release()

	assert.Len(t, testutil.ListStrings(out, 0), 7)
	assert.Len(t, testutil.ListStrings(out, 1), 6, "pentagon has five neighbors")
	assert.True(t, out.IsNull(2))

	_, err = GridDisk(env, cells, -1, column.Auto)
	assert.ErrorIs(t, err, batch.ErrInvalidArgument)
	_, err = GridRing(env, cells, -1, column.Auto)
	assert.ErrorIs(t, err, batch.ErrInvalidArgument)
}

func TestGridRing(t *testing.T) {
	env := newEnv(t)

	cells := testutil.CellColumn(env.Mem, []grid.Cell{sfCell})
	defer cells.Release()

	zero, err := GridRing(env, cells, 0, column.Auto)
	require.NoError(t, err)
	defer zero.Release()
	assert.Equal(t, []grid.Cell{sfCell}, testutil.ListCells(zero, 0))

	two, err := GridRing(env, cells, 2, column.Int64)
	require.NoError(t, err)
	defer two.Release()
	list := two.(*array.List)
	start, end := list.ValueOffsets(0)
	assert.Equal(t, int64(12), end-start)
}

func TestGridPathCells(t *testing.T) {
	env := newEnv(t)
	g := env.Grid

	far := walk(t, g, sfCell, 4)
	coarse, err := g.Parent(sfCell, 3)
	require.NoError(t, err)

	a := testutil.CellColumn(env.Mem, []grid.Cell{sfCell, sfCell})
	defer a.Release()
	b := testutil.CellColumn(env.Mem, []grid.Cell{far, coarse})
	defer b.Release()

	out, err := GridPathCells(env, a, b, column.Auto)
	require.NoError(t, err)
	defer out.Release()

	path := testutil.ListCells(out, 0)
	require.Len(t, path, 5)
	assert.Equal(t, sfCell, path[0])
	assert.Equal(t, far, path[4])
	for i := 1; i < len(path); i++ {
		ok, err := g.AreNeighbors(path[i-1], path[i])
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.True(t, out.IsNull(1))
}

func TestLocalIJ(t *testing.T) {
	env := newEnv(t)
	g := env.Grid

	disk, err := g.GridDisk(sfCell, 3)
	require.NoError(t, err)
	origins := make([]grid.Cell, len(disk))
	for i := range origins {
		origins[i] = sfCell
	}

	cells := testutil.CellColumn(env.Mem, disk)
	defer cells.Release()
	origin := testutil.CellColumn(env.Mem, origins)
	defer origin.Release()

	ij, err := CellToLocalIJ(env, cells, origin)
	require.NoError(t, err)
	defer ij.Release()

	is := make([]int32, len(disk))
	js := make([]int32, len(disk))
	for r := range disk {
		pair := testutil.ListInt32s(ij, r)
		require.Len(t, pair, 2)
		is[r], js[r] = pair[0], pair[1]
	}
	iCol := testutil.Int32s(env.Mem, is, nil)
	defer iCol.Release()
	jCol := testutil.Int32s(env.Mem, js, nil)
	defer jCol.Release()

	back, err := LocalIJToCell(env, origin, iCol, jCol, column.Auto)
	require.NoError(t, err)
	defer back.Release()

	for r, c := range disk {
		assert.Equal(t, uint64(c), back.(*array.Uint64).Value(r), "row %d", r)
	}
}

func TestLocalIJToCellAbsent(t *testing.T) {
	env := newEnv(t)

	self, err := env.Grid.CellToLocalIJ(sfCell, sfCell)
	require.NoError(t, err)

	origin := testutil.Strings(env.Mem, []string{sfCell.String(), sfCell.String()}, nil)
	defer origin.Release()
	i := testutil.Int64s(env.Mem, []int64{int64(self.I), int64(self.I)}, []bool{true, false})
	defer i.Release()
	j := testutil.Int64s(env.Mem, []int64{int64(self.J), int64(self.J)}, nil)
	defer j.Release()

	out, err := LocalIJToCell(env, origin, i, j, column.Auto)
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, sfCell.String(), out.(*array.String).Value(0))
	assert.True(t, out.IsNull(1))

	f := testutil.Float64s(env.Mem, []float64{0, 0}, nil)
	defer f.Release()
	_, err = LocalIJToCell(env, origin, f, j, column.Auto)
	assert.ErrorIs(t, err, column.ErrUnsupportedType)
}

func TestLocalIJToCellOutsideInt32(t *testing.T) {
	env := newEnv(t)

	self, err := env.Grid.CellToLocalIJ(sfCell, sfCell)
	require.NoError(t, err)

	origin := testutil.CellColumn(env.Mem, []grid.Cell{sfCell, sfCell, sfCell, sfCell})
	defer origin.Release()
	i := testutil.Int64s(env.Mem, []int64{int64(self.I), 1 << 32, 1<<32 + 1, int64(self.I)}, nil)
	defer i.Release()
	j := testutil.Int64s(env.Mem, []int64{int64(self.J), 0, 0, -1 << 40}, nil)
	defer j.Release()

	out, err := LocalIJToCell(env, origin, i, j, column.Auto)
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, uint64(sfCell), out.(*array.Uint64).Value(0))
	assert.True(t, out.IsNull(1))
	assert.True(t, out.IsNull(2))
	assert.True(t, out.IsNull(3))
}

func TestListLimit(t *testing.T) {
	env := newEnv(t)
	env.MaxListLen = 19

	cells := testutil.CellColumn(env.Mem, []grid.Cell{sfCell})
	defer cells.Release()

	disk, err := GridDisk(env, cells, 2, column.Auto)
	require.NoError(t, err)
	defer disk.Release()
	assert.Len(t, testutil.ListCells(disk, 0), 19)

	_, err = GridDisk(env, cells, 3, column.Auto)
	assert.ErrorIs(t, err, batch.ErrInvalidArgument)
	_, err = GridRing(env, cells, 3, column.Auto)
	assert.ErrorIs(t, err, batch.ErrInvalidArgument)

	far := walk(t, env.Grid, sfCell, 25)
	b := testutil.CellColumn(env.Mem, []grid.Cell{far})
	defer b.Release()

	path, err := GridPathCells(env, cells, b, column.Auto)
	require.NoError(t, err)
	defer path.Release()
	assert.True(t, path.IsNull(0), "path longer than the list limit")
}
