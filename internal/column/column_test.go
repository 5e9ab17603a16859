package column

import (
	"math"
	"testing"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/testutil"
)

const sfCell grid.Cell = 0x8928308280fffff

func newAllocator(t *testing.T) *memory.CheckedAllocator {
	t.Helper()
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	t.Cleanup(func() { mem.AssertSize(t, 0) })
	return mem
}

func TestInferEncoding(t *testing.T) {
	cases := []struct {
		dt   arrow.DataType
		want Encoding
	}{
		{arrow.PrimitiveTypes.Uint64, UInt64},
		{arrow.PrimitiveTypes.Int64, Int64},
		{arrow.BinaryTypes.String, Hex},
		{arrow.BinaryTypes.LargeString, Hex},
		{arrow.ListOf(arrow.PrimitiveTypes.Int64), Int64},
		{arrow.ListOf(arrow.BinaryTypes.String), Hex},
	}
	for _, tc := range cases {
		t.Run(tc.dt.String(), func(t *testing.T) {
			got, err := InferEncoding(tc.dt)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := InferEncoding(arrow.PrimitiveTypes.Float64)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = InferEncoding(nil)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestEncoding(t *testing.T) {
	assert.Equal(t, Hex, Auto.Or(Hex))
	assert.Equal(t, Int64, Int64.Or(Hex))
	assert.Equal(t, "uint64", UInt64.String())

	_, err := Auto.DataType()
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)

	dt, err := Hex.DataType()
	require.NoError(t, err)
	assert.Equal(t, arrow.STRING, dt.ID())
}

func TestMask(t *testing.T) {
	a := NewMask()
	a.Add(1)
	a.AddRange(5, 8)
	b := NewMask()
	b.Add(1)
	b.Add(3)

	u := Union(a, nil, b)
	assert.Equal(t, 5, u.Count())
	assert.True(t, u.Contains(3))
	assert.False(t, u.Contains(4))

	var rows []int
	u.ForEach(func(row int) bool {
		rows = append(rows, row)
		return true
	})
	assert.Equal(t, []int{1, 3, 5, 6, 7}, rows)

	assert.True(t, Union().IsEmpty())
	assert.Equal(t, 4, a.Count(), "union must not modify its inputs")
}

func TestCheckLengths(t *testing.T) {
	mem := newAllocator(t)
	a := testutil.Float64s(mem, []float64{1, 2}, nil)
	defer a.Release()
	b := testutil.Float64s(mem, []float64{1}, nil)
	defer b.Release()

	assert.NoError(t, CheckLengths(a, a))

	err := CheckLengths(a, b)
	assert.ErrorIs(t, err, ErrLengthMismatch)
	var lm *LengthMismatchError
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 2, lm.Expected)
	assert.Equal(t, 1, lm.Actual)

	assert.ErrorIs(t, CheckLengths(a, nil), ErrMissingColumn)
}

func TestParseCells(t *testing.T) {
	mem := newAllocator(t)
	g := grid.NewH3()

	t.Run("uint64", func(t *testing.T) {
		arr := testutil.Uint64s(mem, []uint64{uint64(sfCell), 0, 42}, []bool{true, false, true})
		defer arr.Release()

		cells, err := ParseCells(arr, g.IsValid)
		require.NoError(t, err)
		assert.Equal(t, UInt64, cells.Encoding)
		assert.Equal(t, sfCell, cells.Values[0])
		assert.True(t, cells.Absent.Contains(1), "null")
		assert.True(t, cells.Absent.Contains(2), "invalid index")
	})

	t.Run("int64 reinterprets bits", func(t *testing.T) {
		arr := testutil.Int64s(mem, []int64{int64(sfCell), -1}, nil)
		defer arr.Release()

		cells, err := ParseCells(arr, nil)
		require.NoError(t, err)
		assert.Equal(t, Int64, cells.Encoding)
		assert.Equal(t, sfCell, cells.Values[0])
		assert.Equal(t, grid.Cell(math.MaxUint64), cells.Values[1])
		assert.True(t, cells.Absent.IsEmpty())
	})

	t.Run("hex", func(t *testing.T) {
		arr := testutil.Strings(mem, []string{"8928308280fffff", "zz", "ffffffffffffffff", ""}, []bool{true, true, true, false})
		defer arr.Release()

		cells, err := ParseCells(arr, g.IsValid)
		require.NoError(t, err)
		assert.Equal(t, Hex, cells.Encoding)
		assert.Equal(t, sfCell, cells.Values[0])
		assert.Equal(t, 3, cells.Absent.Count())
	})

	t.Run("unsupported type", func(t *testing.T) {
		arr := testutil.Float64s(mem, []float64{1}, nil)
		defer arr.Release()

		_, err := ParseCells(arr, nil)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})
}

func TestParseCellLists(t *testing.T) {
	mem := newAllocator(t)
	g := grid.NewH3()

	arr := testutil.CellLists(mem, [][]grid.Cell{{sfCell}, nil, {sfCell, 7}, {}})
	defer arr.Release()

	lists, err := ParseCellLists(arr, g.IsValid)
	require.NoError(t, err)
	assert.Equal(t, UInt64, lists.Encoding)
	assert.Equal(t, []grid.Cell{sfCell}, lists.Rows[0])
	assert.True(t, lists.Absent.Contains(1))
	assert.True(t, lists.Absent.Contains(2), "row with an invalid element")
	assert.False(t, lists.Absent.Contains(3))
	assert.Empty(t, lists.Rows[3])

	flat := testutil.CellColumn(mem, []grid.Cell{sfCell})
	defer flat.Release()
	_, err = ParseCellLists(flat, nil)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFloat64s(t *testing.T) {
	mem := newAllocator(t)

	f32 := testutil.Float32s(mem, []float32{1.5, 0}, []bool{true, false})
	defer f32.Release()
	got, err := Float64s(f32)
	require.NoError(t, err)
	assert.Equal(t, 1.5, got.Values[0])
	assert.True(t, got.Absent.Contains(1))

	nulls := array.NewNull(3)
	defer nulls.Release()
	got, err = Float64s(nulls)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Absent.Count())

	ints := testutil.Int32s(mem, []int32{1}, nil)
	defer ints.Release()
	_, err = Float64s(ints)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestInts(t *testing.T) {
	mem := newAllocator(t)

	i32 := testutil.Int32s(mem, []int32{-3, 0}, []bool{true, false})
	defer i32.Release()
	got, err := Ints(i32)
	require.NoError(t, err)
	assert.Equal(t, -3, got.Values[0])
	assert.True(t, got.Absent.Contains(1))

	u64 := testutil.Uint64s(mem, []uint64{math.MaxUint64, 9}, nil)
	defer u64.Release()
	got, err = Ints(u64)
	require.NoError(t, err)
	assert.True(t, got.Absent.Contains(0), "does not fit int")
	assert.Equal(t, 9, got.Values[1])

	str := testutil.Strings(mem, []string{"1"}, nil)
	defer str.Release()
	_, err = Ints(str)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestBuildCells(t *testing.T) {
	mem := newAllocator(t)

	r := NewResult[grid.Cell](2)
	r.Set(0, sfCell)

	t.Run("uint64", func(t *testing.T) {
		arr, err := BuildCells(mem, r, UInt64)
		require.NoError(t, err)
		defer arr.Release()
		assert.Equal(t, uint64(sfCell), arr.(*array.Uint64).Value(0))
		assert.True(t, arr.IsNull(1))
	})

	t.Run("int64", func(t *testing.T) {
		arr, err := BuildCells(mem, r, Int64)
		require.NoError(t, err)
		defer arr.Release()
		assert.Equal(t, int64(sfCell), arr.(*array.Int64).Value(0))
	})

	t.Run("hex", func(t *testing.T) {
		arr, err := BuildCells(mem, r, Hex)
		require.NoError(t, err)
		defer arr.Release()
		assert.Equal(t, "8928308280fffff", arr.(*array.String).Value(0))
		assert.Equal(t, 1, arr.NullN())
	})

	t.Run("auto is not an output encoding", func(t *testing.T) {
		_, err := BuildCells(mem, r, Auto)
		assert.ErrorIs(t, err, ErrUnsupportedEncoding)
	})
}

func TestBuildCellLists(t *testing.T) {
	mem := newAllocator(t)

	r := NewResult[[]grid.Cell](3)
	r.Set(0, []grid.Cell{sfCell, 1})
	r.Set(2, []grid.Cell{})

	arr, err := BuildCellLists(mem, r, Hex)
	require.NoError(t, err)
	defer arr.Release()

	assert.Equal(t, []string{"8928308280fffff", "1"}, testutil.ListStrings(arr, 0))
	assert.True(t, arr.IsNull(1))
	assert.False(t, arr.IsNull(2))
	assert.Empty(t, testutil.ListStrings(arr, 2))

	_, err = BuildCellLists(mem, r, Encoding(99))
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestBuildLatLngs(t *testing.T) {
	mem := newAllocator(t)

	points := NewResult[grid.LatLng](2)
	points.Set(1, grid.LatLng{Lat: 1, Lng: 2})
	arr := BuildLatLngs(mem, points)
	defer arr.Release()
	assert.True(t, arr.IsNull(0))
	assert.Equal(t, []float64{1, 2}, testutil.ListFloat64s(arr, 1))

	rings := NewResult[[]grid.LatLng](1)
	rings.Set(0, []grid.LatLng{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}})
	nested := BuildLatLngLists(mem, rings)
	defer nested.Release()

	list := nested.(*array.List)
	start, end := list.ValueOffsets(0)
	assert.Equal(t, int64(2), end-start)
	pairs := list.ListValues()
	assert.Equal(t, []float64{3, 4}, testutil.ListFloat64s(pairs, 1))
}
