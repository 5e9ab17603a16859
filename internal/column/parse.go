package column

import (
	"fmt"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/internal/conv"
)

// Accept decides whether a decoded index is usable. A nil Accept keeps every
// well-formed value.
type Accept func(grid.Cell) bool

// Cells is a parsed index column.
type Cells struct {
	Values   []grid.Cell
	Absent   *Mask
	Encoding Encoding
}

// Len returns the number of rows.
func (c *Cells) Len() int {
	return len(c.Values)
}

// CellLists is a parsed list<index> column.
type CellLists struct {
	Rows     [][]grid.Cell
	Absent   *Mask
	Encoding Encoding
}

// Len returns the number of rows.
func (c *CellLists) Len() int {
	return len(c.Rows)
}

// Floats is a parsed floating point column.
type Floats struct {
	Values []float64
	Absent *Mask
}

// IntColumn is a parsed integer column.
type IntColumn struct {
	Values []int
	Absent *Mask
}

// CheckLengths verifies that all columns are present and equally long.
func CheckLengths(arrs ...arrow.Array) error {
	for i, a := range arrs {
		if a == nil {
			return fmt.Errorf("%w: argument %d", ErrMissingColumn, i)
		}
	}
	if len(arrs) == 0 {
		return nil
	}
	n := arrs[0].Len()
	if _, err := conv.IntToUint32(n); err != nil {
		return fmt.Errorf("%w: %w", ErrBatchTooLarge, err)
	}
	for _, a := range arrs[1:] {
		if a.Len() != n {
			return &LengthMismatchError{Expected: n, Actual: a.Len()}
		}
	}
	return nil
}

type cellDecoder func(i int) (grid.Cell, bool)

// decoderFor returns a per-position decoder for an index column. The decoder
// reports false for nulls and malformed values.
func decoderFor(arr arrow.Array) (cellDecoder, Encoding, error) {
	switch a := arr.(type) {
	case *array.Uint64:
		return func(i int) (grid.Cell, bool) {
			if a.IsNull(i) {
				return 0, false
			}
			return grid.Cell(a.Value(i)), true
		}, UInt64, nil
	case *array.Int64:
		return func(i int) (grid.Cell, bool) {
			if a.IsNull(i) {
				return 0, false
			}
			return grid.Cell(uint64(a.Value(i))), true
		}, Int64, nil
	case *array.String:
		return func(i int) (grid.Cell, bool) {
			if a.IsNull(i) {
				return 0, false
			}
			c, err := grid.ParseCell(a.Value(i))
			return c, err == nil
		}, Hex, nil
	case *array.LargeString:
		return func(i int) (grid.Cell, bool) {
			if a.IsNull(i) {
				return 0, false
			}
			c, err := grid.ParseCell(a.Value(i))
			return c, err == nil
		}, Hex, nil
	default:
		return nil, Auto, fmt.Errorf("%w for grid index: %s", ErrUnsupportedType, arr.DataType())
	}
}

// ParseCells normalizes an index column. Rows that are null, malformed or
// rejected by accept are recorded in the Absent mask.
func ParseCells(arr arrow.Array, accept Accept) (*Cells, error) {
	if err := CheckLengths(arr); err != nil {
		return nil, err
	}
	decode, enc, err := decoderFor(arr)
	if err != nil {
		return nil, err
	}

	out := &Cells{
		Values:   make([]grid.Cell, arr.Len()),
		Absent:   NewMask(),
		Encoding: enc,
	}
	for i := range out.Values {
		c, ok := decode(i)
		if !ok || (accept != nil && !accept(c)) {
			out.Absent.Add(i)
			continue
		}
		out.Values[i] = c
	}
	return out, nil
}

// ParseCellLists normalizes a list<index> column. A row is absent when the
// list itself is null or any of its elements would be absent.
func ParseCellLists(arr arrow.Array, accept Accept) (*CellLists, error) {
	if err := CheckLengths(arr); err != nil {
		return nil, err
	}
	list, ok := arr.(*array.List)
	if !ok {
		return nil, fmt.Errorf("%w for grid index list: %s", ErrUnsupportedType, arr.DataType())
	}
	decode, enc, err := decoderFor(list.ListValues())
	if err != nil {
		return nil, err
	}

	out := &CellLists{
		Rows:     make([][]grid.Cell, list.Len()),
		Absent:   NewMask(),
		Encoding: enc,
	}
	for i := range out.Rows {
		if list.IsNull(i) {
			out.Absent.Add(i)
			continue
		}
		start, end := list.ValueOffsets(i)
		row := make([]grid.Cell, 0, end-start)
		for j := start; j < end; j++ {
			c, ok := decode(int(j))
			if !ok || (accept != nil && !accept(c)) {
				row = nil
				break
			}
			row = append(row, c)
		}
		if row == nil {
			out.Absent.Add(i)
			continue
		}
		out.Rows[i] = row
	}
	return out, nil
}

type valuer[T any] interface {
	arrow.Array
	Value(i int) T
}

func collect[T, V any](a valuer[T], convert func(T) (V, bool)) ([]V, *Mask) {
	values := make([]V, a.Len())
	absent := NewMask()
	for i := range values {
		if a.IsNull(i) {
			absent.Add(i)
			continue
		}
		v, ok := convert(a.Value(i))
		if !ok {
			absent.Add(i)
			continue
		}
		values[i] = v
	}
	return values, absent
}

func allNull[V any](n int) ([]V, *Mask) {
	absent := NewMask()
	absent.AddRange(0, n)
	return make([]V, n), absent
}

// Float64s reads a float64, float32 or all-null column.
func Float64s(arr arrow.Array) (*Floats, error) {
	if err := CheckLengths(arr); err != nil {
		return nil, err
	}
	var (
		values []float64
		absent *Mask
	)
	switch a := arr.(type) {
	case *array.Float64:
		values, absent = collect[float64](a, func(v float64) (float64, bool) { return v, true })
	case *array.Float32:
		values, absent = collect[float32](a, func(v float32) (float64, bool) { return float64(v), true })
	case *array.Null:
		values, absent = allNull[float64](a.Len())
	default:
		return nil, fmt.Errorf("%w: want float32 or float64, got %s", ErrUnsupportedType, arr.DataType())
	}
	return &Floats{Values: values, Absent: absent}, nil
}

func widen[T int8 | int16 | int32 | uint8 | uint16 | uint32](v T) (int, bool) {
	return int(v), true
}

// Ints reads any integer column as int. Values that do not fit an int are absent.
func Ints(arr arrow.Array) (*IntColumn, error) {
	if err := CheckLengths(arr); err != nil {
		return nil, err
	}
	var (
		values []int
		absent *Mask
	)
	switch a := arr.(type) {
	case *array.Int8:
		values, absent = collect[int8](a, widen[int8])
	case *array.Int16:
		values, absent = collect[int16](a, widen[int16])
	case *array.Int32:
		values, absent = collect[int32](a, widen[int32])
	case *array.Int64:
		values, absent = collect[int64](a, func(v int64) (int, bool) {
			n, err := conv.Int64ToInt(v)
			return n, err == nil
		})
	case *array.Uint8:
		values, absent = collect[uint8](a, widen[uint8])
	case *array.Uint16:
		values, absent = collect[uint16](a, widen[uint16])
	case *array.Uint32:
		values, absent = collect[uint32](a, widen[uint32])
	case *array.Uint64:
		values, absent = collect[uint64](a, func(v uint64) (int, bool) {
			n, err := conv.Uint64ToInt(v)
			return n, err == nil
		})
	case *array.Null:
		values, absent = allNull[int](a.Len())
	default:
		return nil, fmt.Errorf("%w: want integer, got %s", ErrUnsupportedType, arr.DataType())
	}
	return &IntColumn{Values: values, Absent: absent}, nil
}
