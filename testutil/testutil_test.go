package testutil

import (
	"testing"

	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/h3batch/grid"
)

func TestLatLngs(t *testing.T) {
	rng := NewRNG(4711)

	lats, lngs := rng.LatLngs(64)

	assert.Len(t, lats, 64)
	assert.Len(t, lngs, 64)
	for i := range lats {
		assert.True(t, grid.LatLng{Lat: lats[i], Lng: lngs[i]}.InRange())
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a, _ := rng.LatLngs(4)
	rng.Reset()
	b, _ := rng.LatLngs(4)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestCells(t *testing.T) {
	g := grid.NewH3()
	cells := NewRNG(1).Cells(g, 16, 7)

	require.Len(t, cells, 16)
	for _, c := range cells {
		assert.True(t, g.IsValid(c))
		assert.Equal(t, 7, g.Resolution(c))
	}
}

func TestSparseValidity(t *testing.T) {
	rng := NewRNG(4711)
	assert.NotContains(t, rng.SparseValidity(100, 0), false)
	assert.NotContains(t, rng.SparseValidity(100, 1), true)
}

func TestCellListsRoundTrip(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	rows := [][]grid.Cell{{1, 2, 3}, nil, {}}
	arr := CellLists(mem, rows)
	defer arr.Release()

	require.Equal(t, 3, arr.Len())
	assert.Equal(t, []grid.Cell{1, 2, 3}, ListCells(arr, 0))
	assert.True(t, arr.IsNull(1))
	assert.Empty(t, ListCells(arr, 2))
}
