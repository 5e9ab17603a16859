package testutil

import (
	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/memory"

	"github.com/hupe1980/h3batch/grid"
)

// Uint64s builds a uint64 column. A nil valid slice marks every row present.
func Uint64s(mem memory.Allocator, values []uint64, valid []bool) arrow.Array {
	b := array.NewUint64Builder(mem)
	defer b.Release()
	b.AppendValues(values, valid)
	return b.NewArray()
}

// Int64s builds an int64 column.
func Int64s(mem memory.Allocator, values []int64, valid []bool) arrow.Array {
	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.AppendValues(values, valid)
	return b.NewArray()
}

// Int32s builds an int32 column.
func Int32s(mem memory.Allocator, values []int32, valid []bool) arrow.Array {
	b := array.NewInt32Builder(mem)
	defer b.Release()
	b.AppendValues(values, valid)
	return b.NewArray()
}

// Strings builds a utf8 column.
func Strings(mem memory.Allocator, values []string, valid []bool) arrow.Array {
	b := array.NewStringBuilder(mem)
	defer b.Release()
	b.AppendValues(values, valid)
	return b.NewArray()
}

// Float64s builds a float64 column.
func Float64s(mem memory.Allocator, values []float64, valid []bool) arrow.Array {
	b := array.NewFloat64Builder(mem)
	defer b.Release()
	b.AppendValues(values, valid)
	return b.NewArray()
}

// Float32s builds a float32 column.
func Float32s(mem memory.Allocator, values []float32, valid []bool) arrow.Array {
	b := array.NewFloat32Builder(mem)
	defer b.Release()
	b.AppendValues(values, valid)
	return b.NewArray()
}

// CellColumn builds a uint64 index column from cells.
func CellColumn(mem memory.Allocator, cells []grid.Cell) arrow.Array {
	values := make([]uint64, len(cells))
	for i, c := range cells {
		values[i] = uint64(c)
	}
	return Uint64s(mem, values, nil)
}

// CellLists builds a list<uint64> column. A nil row becomes a null list.
func CellLists(mem memory.Allocator, rows [][]grid.Cell) arrow.Array {
	lb := array.NewListBuilder(mem, arrow.PrimitiveTypes.Uint64)
	defer lb.Release()
	vb := lb.ValueBuilder().(*array.Uint64Builder)
	for _, row := range rows {
		if row == nil {
			lb.AppendNull()
			continue
		}
		lb.Append(true)
		for _, c := range row {
			vb.Append(uint64(c))
		}
	}
	return lb.NewArray()
}

// ListCells reads row i of a list<uint64> column.
func ListCells(arr arrow.Array, i int) []grid.Cell {
	list := arr.(*array.List)
	values := list.ListValues().(*array.Uint64)
	start, end := list.ValueOffsets(i)
	out := make([]grid.Cell, 0, end-start)
	for j := start; j < end; j++ {
		out = append(out, grid.Cell(values.Value(int(j))))
	}
	return out
}

// ListFloat64s reads row i of a list<float64> column.
func ListFloat64s(arr arrow.Array, i int) []float64 {
	list := arr.(*array.List)
	values := list.ListValues().(*array.Float64)
	start, end := list.ValueOffsets(i)
	out := make([]float64, 0, end-start)
	for j := start; j < end; j++ {
		out = append(out, values.Value(int(j)))
	}
	return out
}

// ListInt32s reads row i of a list<int32> column.
func ListInt32s(arr arrow.Array, i int) []int32 {
	list := arr.(*array.List)
	values := list.ListValues().(*array.Int32)
	start, end := list.ValueOffsets(i)
	out := make([]int32, 0, end-start)
	for j := start; j < end; j++ {
		out = append(out, values.Value(int(j)))
	}
	return out
}

// ListStrings reads row i of a list<utf8> column.
func ListStrings(arr arrow.Array, i int) []string {
	list := arr.(*array.List)
	values := list.ListValues().(*array.String)
	start, end := list.ValueOffsets(i)
	out := make([]string, 0, end-start)
	for j := start; j < end; j++ {
		out = append(out, values.Value(int(j)))
	}
	return out
}
