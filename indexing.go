package h3batch

import (
	"github.com/apache/arrow/go/v15/arrow"

	"github.com/hupe1980/h3batch/internal/indexing"
)

// LatLngToCell indexes (lat, lng) rows in degrees at res. Coordinates may be
// float64 or float32; non-finite or out-of-range rows are null.
func (e *Engine) LatLngToCell(lat, lng arrow.Array, res int, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("LatLngToCell", rowsOf(lat), func() (arrow.Array, error) {
		return indexing.LatLngToCell(e.env, lat, lng, res, opts.Encoding)
	})
}

// LatLngToCellString indexes (lat, lng) rows at res into hexadecimal strings.
func (e *Engine) LatLngToCellString(lat, lng arrow.Array, res int) (arrow.Array, error) {
	return e.run("LatLngToCellString", rowsOf(lat), func() (arrow.Array, error) {
		return indexing.LatLngToCellString(e.env, lat, lng, res)
	})
}

// CellToLat returns the latitude of each cell center in degrees.
func (e *Engine) CellToLat(cells arrow.Array) (arrow.Array, error) {
	return e.run("CellToLat", rowsOf(cells), func() (arrow.Array, error) {
		return indexing.CellToLat(e.env, cells)
	})
}

// CellToLng returns the longitude of each cell center in degrees.
func (e *Engine) CellToLng(cells arrow.Array) (arrow.Array, error) {
	return e.run("CellToLng", rowsOf(cells), func() (arrow.Array, error) {
		return indexing.CellToLng(e.env, cells)
	})
}

// CellToLatLng returns each cell center as a list<float64> [lat, lng].
func (e *Engine) CellToLatLng(cells arrow.Array) (arrow.Array, error) {
	return e.run("CellToLatLng", rowsOf(cells), func() (arrow.Array, error) {
		return indexing.CellToLatLng(e.env, cells)
	})
}

// CellToBoundary returns each cell boundary as a list of [lat, lng] vertices.
func (e *Engine) CellToBoundary(cells arrow.Array) (arrow.Array, error) {
	return e.run("CellToBoundary", rowsOf(cells), func() (arrow.Array, error) {
		return indexing.CellToBoundary(e.env, cells)
	})
}
