package column

import (
	"fmt"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/memory"

	"github.com/hupe1980/h3batch/grid"
)

type appender[T any] interface {
	array.Builder
	Append(v T)
}

func identity[T any](v T) T { return v }

func cellToUint64(c grid.Cell) uint64 { return uint64(c) }

func cellToInt64(c grid.Cell) int64 { return int64(c) }

func cellToHex(c grid.Cell) string { return c.String() }

// buildMapped copies r into b, mapping every present value through f.
// It releases b.
func buildMapped[T, V any](b appender[V], r *Result[T], f func(T) V) arrow.Array {
	defer b.Release()
	b.Reserve(r.Len())
	for i, ok := range r.Valid {
		if !ok {
			b.AppendNull()
			continue
		}
		b.Append(f(r.Data[i]))
	}
	return b.NewArray()
}

// buildListMapped copies r into lb, whose value builder is vb. It releases lb.
func buildListMapped[T, V any](lb *array.ListBuilder, vb appender[V], r *Result[[]T], f func(T) V) arrow.Array {
	defer lb.Release()
	lb.Reserve(r.Len())
	for i, ok := range r.Valid {
		if !ok {
			lb.AppendNull()
			continue
		}
		lb.Append(true)
		for _, v := range r.Data[i] {
			vb.Append(f(v))
		}
	}
	return lb.NewArray()
}

// BuildCells encodes an index result column.
func BuildCells(mem memory.Allocator, r *Result[grid.Cell], enc Encoding) (arrow.Array, error) {
	switch enc {
	case UInt64:
		return buildMapped(array.NewUint64Builder(mem), r, cellToUint64), nil
	case Int64:
		return buildMapped(array.NewInt64Builder(mem), r, cellToInt64), nil
	case Hex:
		return buildMapped(array.NewStringBuilder(mem), r, cellToHex), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, enc)
	}
}

// BuildCellLists encodes a list<index> result column, applying enc to the elements.
func BuildCellLists(mem memory.Allocator, r *Result[[]grid.Cell], enc Encoding) (arrow.Array, error) {
	elem, err := enc.DataType()
	if err != nil {
		return nil, err
	}
	lb := array.NewListBuilder(mem, elem)
	switch enc {
	case UInt64:
		return buildListMapped(lb, lb.ValueBuilder().(*array.Uint64Builder), r, cellToUint64), nil
	case Int64:
		return buildListMapped(lb, lb.ValueBuilder().(*array.Int64Builder), r, cellToInt64), nil
	default:
		return buildListMapped(lb, lb.ValueBuilder().(*array.StringBuilder), r, cellToHex), nil
	}
}

// BuildFloat64s writes a float64 result column.
func BuildFloat64s(mem memory.Allocator, r *Result[float64]) arrow.Array {
	return buildMapped(array.NewFloat64Builder(mem), r, identity[float64])
}

// BuildInt32s writes an int32 result column.
func BuildInt32s(mem memory.Allocator, r *Result[int32]) arrow.Array {
	return buildMapped(array.NewInt32Builder(mem), r, identity[int32])
}

// BuildInt64s writes an int64 result column.
func BuildInt64s(mem memory.Allocator, r *Result[int64]) arrow.Array {
	return buildMapped(array.NewInt64Builder(mem), r, identity[int64])
}

// BuildBools writes a boolean result column.
func BuildBools(mem memory.Allocator, r *Result[bool]) arrow.Array {
	return buildMapped(array.NewBooleanBuilder(mem), r, identity[bool])
}

// BuildInt32Lists writes a list<int32> result column.
func BuildInt32Lists(mem memory.Allocator, r *Result[[]int32]) arrow.Array {
	lb := array.NewListBuilder(mem, arrow.PrimitiveTypes.Int32)
	return buildListMapped(lb, lb.ValueBuilder().(*array.Int32Builder), r, identity[int32])
}

// BuildLatLngs writes one [lat, lng] list<float64> per row.
func BuildLatLngs(mem memory.Allocator, r *Result[grid.LatLng]) arrow.Array {
	lb := array.NewListBuilder(mem, arrow.PrimitiveTypes.Float64)
	defer lb.Release()
	fb := lb.ValueBuilder().(*array.Float64Builder)

	lb.Reserve(r.Len())
	for i, ok := range r.Valid {
		if !ok {
			lb.AppendNull()
			continue
		}
		lb.Append(true)
		fb.Append(r.Data[i].Lat)
		fb.Append(r.Data[i].Lng)
	}
	return lb.NewArray()
}

// BuildLatLngLists writes a list<list<float64>> column of [lat, lng] pairs,
// the shape used for cell boundaries.
func BuildLatLngLists(mem memory.Allocator, r *Result[[]grid.LatLng]) arrow.Array {
	lb := array.NewListBuilder(mem, arrow.ListOf(arrow.PrimitiveTypes.Float64))
	defer lb.Release()
	pairs := lb.ValueBuilder().(*array.ListBuilder)
	fb := pairs.ValueBuilder().(*array.Float64Builder)

	lb.Reserve(r.Len())
	for i, ok := range r.Valid {
		if !ok {
			lb.AppendNull()
			continue
		}
		lb.Append(true)
		for _, ll := range r.Data[i] {
			pairs.Append(true)
			fb.Append(ll.Lat)
			fb.Append(ll.Lng)
		}
	}
	return lb.NewArray()
}
