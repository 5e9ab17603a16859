package metrics

import (
	"fmt"

	"github.com/apache/arrow/go/v15/arrow"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/internal/batch"
	"github.com/hupe1980/h3batch/internal/column"
)

// Area units accepted by CellArea.
const (
	Rads2 = "rads^2"
	Km2   = "km^2"
	M2    = "m^2"
)

// AreaScale returns the factor converting steradians to unit.
func AreaScale(unit string) (float64, error) {
	switch unit {
	case Rads2:
		return 1, nil
	case Km2:
		return grid.EarthRadiusKm * grid.EarthRadiusKm, nil
	case M2:
		r := grid.EarthRadiusKm * 1000
		return r * r, nil
	default:
		return 0, fmt.Errorf("%w: %q (want %s, %s or %s)", batch.ErrInvalidUnit, unit, Rads2, Km2, M2)
	}
}

// CellArea returns the exact area of each cell in unit.
func CellArea(env *batch.Env, cells arrow.Array, unit string) (arrow.Array, error) {
	scale, err := AreaScale(unit)
	if err != nil {
		return nil, err
	}
	in, err := env.Cells(cells)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) (float64, bool) {
		a, err := env.Grid.CellAreaRads2(in.Values[i])
		return a * scale, err == nil
	})
	return column.BuildFloat64s(env.Mem, out), nil
}

// NumCells returns the number of cells at res: 2 + 120·7^res.
func NumCells(res int) (int64, error) {
	if err := batch.ValidateResolution(res); err != nil {
		return 0, err
	}
	n := int64(1)
	for range res {
		n *= 7
	}
	return 2 + 120*n, nil
}

func constant(env *batch.Env, cells []grid.Cell, enc column.Encoding) (arrow.Array, error) {
	enc, err := batch.OutputEncoding(enc, column.UInt64)
	if err != nil {
		return nil, err
	}
	out := column.NewResult[grid.Cell](len(cells))
	for i, c := range cells {
		out.Set(i, c)
	}
	return column.BuildCells(env.Mem, out, enc)
}

// Res0Cells returns a column of the 122 resolution 0 cells.
func Res0Cells(env *batch.Env, enc column.Encoding) (arrow.Array, error) {
	cells, err := env.Grid.Res0Cells()
	if err != nil {
		return nil, err
	}
	return constant(env, cells, enc)
}

// Pentagons returns a column of the 12 pentagons at res.
func Pentagons(env *batch.Env, res int, enc column.Encoding) (arrow.Array, error) {
	if err := batch.ValidateResolution(res); err != nil {
		return nil, err
	}
	cells, err := env.Grid.Pentagons(res)
	if err != nil {
		return nil, err
	}
	return constant(env, cells, enc)
}
