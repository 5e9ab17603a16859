package h3batch

import (
	"fmt"

	"github.com/apache/arrow/go/v15/arrow"

	"github.com/hupe1980/h3batch/internal/edge"
	"github.com/hupe1980/h3batch/internal/metrics"
)

// Area units for CellArea.
const (
	AreaRads2 = metrics.Rads2
	AreaKm2   = metrics.Km2
	AreaM2    = metrics.M2
)

// Length units for EdgeLength.
const (
	LengthRads = edge.Rads
	LengthKm   = edge.Km
	LengthM    = edge.M
)

// CellArea returns the area of each cell in unit (AreaRads2, AreaKm2 or
// AreaM2). Any other unit fails with ErrInvalidUnit.
func (e *Engine) CellArea(cells arrow.Array, unit string) (arrow.Array, error) {
	return e.run("CellArea", rowsOf(cells), func() (arrow.Array, error) {
		return metrics.CellArea(e.env, cells, unit)
	})
}

// NumCells returns the number of cells at res.
func (e *Engine) NumCells(res int) (int64, error) {
	n, err := metrics.NumCells(res)
	if err != nil {
		return 0, fmt.Errorf("NumCells: %w", translateError(err))
	}
	return n, nil
}

// Res0Cells returns the 122 resolution 0 cells, as uint64 unless
// WithEncoding says otherwise.
func (e *Engine) Res0Cells(optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("Res0Cells", 0, func() (arrow.Array, error) {
		return metrics.Res0Cells(e.env, opts.Encoding)
	})
}

// Pentagons returns the 12 pentagons at res.
func (e *Engine) Pentagons(res int, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("Pentagons", 0, func() (arrow.Array, error) {
		return metrics.Pentagons(e.env, res, opts.Encoding)
	})
}
