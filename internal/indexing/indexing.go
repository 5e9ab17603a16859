package indexing

import (
	"github.com/apache/arrow/go/v15/arrow"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/internal/batch"
	"github.com/hupe1980/h3batch/internal/column"
)

// LatLngToCell indexes each (lat, lng) row at res. Rows with null,
// non-finite or out-of-range coordinates are absent. The output encoding
// defaults to UInt64.
func LatLngToCell(env *batch.Env, lat, lng arrow.Array, res int, enc column.Encoding) (arrow.Array, error) {
	if err := batch.ValidateResolution(res); err != nil {
		return nil, err
	}
	enc, err := batch.OutputEncoding(enc, column.UInt64)
	if err != nil {
		return nil, err
	}
	if err := column.CheckLengths(lat, lng); err != nil {
		return nil, err
	}
	lats, err := column.Float64s(lat)
	if err != nil {
		return nil, err
	}
	lngs, err := column.Float64s(lng)
	if err != nil {
		return nil, err
	}

	out := batch.Map(env, lat.Len(), column.Union(lats.Absent, lngs.Absent), func(i int) (grid.Cell, bool) {
		ll := grid.LatLng{Lat: lats.Values[i], Lng: lngs.Values[i]}
		if !ll.InRange() {
			return 0, false
		}
		c, err := env.Grid.LatLngToCell(ll, res)
		return c, err == nil
	})
	return column.BuildCells(env.Mem, out, enc)
}

// LatLngToCellString is LatLngToCell with hexadecimal output.
func LatLngToCellString(env *batch.Env, lat, lng arrow.Array, res int) (arrow.Array, error) {
	return LatLngToCell(env, lat, lng, res, column.Hex)
}

func centers(env *batch.Env, cells arrow.Array) (*column.Result[grid.LatLng], error) {
	in, err := env.Cells(cells)
	if err != nil {
		return nil, err
	}
	return batch.Map(env, in.Len(), in.Absent, func(i int) (grid.LatLng, bool) {
		ll, err := env.Grid.CellToLatLng(in.Values[i])
		return ll, err == nil
	}), nil
}

func project(r *column.Result[grid.LatLng], f func(grid.LatLng) float64) *column.Result[float64] {
	out := &column.Result[float64]{Data: make([]float64, r.Len()), Valid: r.Valid}
	for i, ok := range r.Valid {
		if ok {
			out.Data[i] = f(r.Data[i])
		}
	}
	return out
}

// CellToLat returns the latitude of each cell's center in degrees.
func CellToLat(env *batch.Env, cells arrow.Array) (arrow.Array, error) {
	r, err := centers(env, cells)
	if err != nil {
		return nil, err
	}
	return column.BuildFloat64s(env.Mem, project(r, func(ll grid.LatLng) float64 { return ll.Lat })), nil
}

// CellToLng returns the longitude of each cell's center in degrees.
func CellToLng(env *batch.Env, cells arrow.Array) (arrow.Array, error) {
	r, err := centers(env, cells)
	if err != nil {
		return nil, err
	}
	return column.BuildFloat64s(env.Mem, project(r, func(ll grid.LatLng) float64 { return ll.Lng })), nil
}

// CellToLatLng returns each cell's center as a [lat, lng] list.
func CellToLatLng(env *batch.Env, cells arrow.Array) (arrow.Array, error) {
	r, err := centers(env, cells)
	if err != nil {
		return nil, err
	}
	return column.BuildLatLngs(env.Mem, r), nil
}

// CellToBoundary returns each cell's boundary as a list of [lat, lng] vertices
// in the order produced by the grid library.
func CellToBoundary(env *batch.Env, cells arrow.Array) (arrow.Array, error) {
	in, err := env.Cells(cells)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) ([]grid.LatLng, bool) {
		b, err := env.Grid.CellToBoundary(in.Values[i])
		return b, err == nil
	})
	return column.BuildLatLngLists(env.Mem, out), nil
}
