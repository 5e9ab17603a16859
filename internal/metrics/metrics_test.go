package metrics

import (
	"testing"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/internal/batch"
	"github.com/hupe1980/h3batch/internal/column"
	"github.com/hupe1980/h3batch/testutil"
)

const sfCell grid.Cell = 0x8928308280fffff

func newEnv(t *testing.T) *batch.Env {
	t.Helper()
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	t.Cleanup(func() { mem.AssertSize(t, 0) })
	return batch.NewEnv(grid.NewH3(), mem, nil)
}

func TestCellArea(t *testing.T) {
	env := newEnv(t)

	cells := testutil.CellColumn(env.Mem, []grid.Cell{sfCell, 12})
	defer cells.Release()

	rads, err := env.Grid.CellAreaRads2(sfCell)
	require.NoError(t, err)

	cases := []struct {
		unit  string
		scale float64
	}{
		{Rads2, 1},
		{Km2, grid.EarthRadiusKm * grid.EarthRadiusKm},
		{M2, grid.EarthRadiusKm * grid.EarthRadiusKm * 1e6},
	}
	for _, tc := range cases {
		t.Run(tc.unit, func(t *testing.T) {
			out, err := CellArea(env, cells, tc.unit)
			require.NoError(t, err)
			defer out.Release()

			f := out.(*array.Float64)
			assert.InEpsilon(t, rads*tc.scale, f.Value(0), 1e-12)
			assert.True(t, f.IsNull(1))
		})
	}

	km2, err := CellArea(env, cells, Km2)
	require.NoError(t, err)
	defer km2.Release()
	// A resolution 9 hexagon covers roughly 0.1 km².
	assert.InDelta(t, 0.1, km2.(*array.Float64).Value(0), 0.03)
}

func TestCellAreaInvalidUnit(t *testing.T) {
	env := newEnv(t)

	cells := testutil.CellColumn(env.Mem, []grid.Cell{sfCell})
	defer cells.Release()

	for _, unit := range []string{"", "km", "acres", "M^2"} {
		_, err := CellArea(env, cells, unit)
		assert.ErrorIs(t, err, batch.ErrInvalidUnit, unit)
	}
}

func TestNumCells(t *testing.T) {
	g := grid.NewH3()
	res0, err := g.Res0Cells()
	require.NoError(t, err)

	// Enumerate the grid through the library for the coarse resolutions.
	for res := 0; res <= 2; res++ {
		var want int
		for _, c := range res0 {
			children, err := g.Children(c, res)
			require.NoError(t, err)
			want += len(children)
		}
		n, err := NumCells(res)
		require.NoError(t, err)
		assert.Equal(t, int64(want), n, "res %d", res)
	}

	n, err := NumCells(grid.MaxResolution)
	require.NoError(t, err)
	assert.Equal(t, int64(569707381193162), n)

	_, err = NumCells(16)
	assert.ErrorIs(t, err, grid.ErrInvalidResolution)
}

func TestRes0Cells(t *testing.T) {
	env := newEnv(t)

	out, err := Res0Cells(env, column.Auto)
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, grid.NumBaseCells, out.Len())
	assert.Equal(t, 0, out.NullN())
	for _, v := range out.(*array.Uint64).Uint64Values() {
		assert.Equal(t, 0, env.Grid.Resolution(grid.Cell(v)))
	}

	hex, err := Res0Cells(env, column.Hex)
	require.NoError(t, err)
	defer hex.Release()
	assert.Equal(t, arrow.STRING, hex.DataType().ID())
}

func TestPentagons(t *testing.T) {
	env := newEnv(t)

	for _, res := range []int{0, 5, 15} {
		out, err := Pentagons(env, res, column.Int64)
		require.NoError(t, err)

		require.Equal(t, grid.NumPentagons, out.Len())
		for _, v := range out.(*array.Int64).Int64Values() {
			c := grid.Cell(v)
			assert.True(t, env.Grid.IsPentagon(c))
			assert.Equal(t, res, env.Grid.Resolution(c))
		}
		out.Release()
	}

	_, err := Pentagons(env, -1, column.Auto)
	assert.ErrorIs(t, err, grid.ErrInvalidResolution)
}
