package h3batch

import (
	"github.com/apache/arrow/go/v15/arrow"

	"github.com/hupe1980/h3batch/internal/inspection"
)

// GetResolution returns the resolution of each cell as int32.
func (e *Engine) GetResolution(cells arrow.Array) (arrow.Array, error) {
	return e.run("GetResolution", rowsOf(cells), func() (arrow.Array, error) {
		return inspection.GetResolution(e.env, cells)
	})
}

// GetBaseCellNumber returns the base cell number of each cell as int32.
func (e *Engine) GetBaseCellNumber(cells arrow.Array) (arrow.Array, error) {
	return e.run("GetBaseCellNumber", rowsOf(cells), func() (arrow.Array, error) {
		return inspection.GetBaseCellNumber(e.env, cells)
	})
}

// StrToInt converts a hexadecimal index column to uint64, or to int64 with
// WithEncoding(EncodingInt64). Only the format is checked.
func (e *Engine) StrToInt(cells arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("StrToInt", rowsOf(cells), func() (arrow.Array, error) {
		return inspection.StrToInt(e.env, cells, opts.Encoding)
	})
}

// IntToStr converts a uint64 or int64 index column to hexadecimal strings.
func (e *Engine) IntToStr(cells arrow.Array) (arrow.Array, error) {
	return e.run("IntToStr", rowsOf(cells), func() (arrow.Array, error) {
		return inspection.IntToStr(e.env, cells)
	})
}

// IsValidCell reports whether each row holds a valid cell. Nulls stay null.
func (e *Engine) IsValidCell(cells arrow.Array) (arrow.Array, error) {
	return e.run("IsValidCell", rowsOf(cells), func() (arrow.Array, error) {
		return inspection.IsValidCell(e.env, cells)
	})
}

// IsPentagon reports whether each cell is a pentagon.
func (e *Engine) IsPentagon(cells arrow.Array) (arrow.Array, error) {
	return e.run("IsPentagon", rowsOf(cells), func() (arrow.Array, error) {
		return inspection.IsPentagon(e.env, cells)
	})
}

// IsResClassIII reports whether each cell has a Class III resolution.
func (e *Engine) IsResClassIII(cells arrow.Array) (arrow.Array, error) {
	return e.run("IsResClassIII", rowsOf(cells), func() (arrow.Array, error) {
		return inspection.IsResClassIII(e.env, cells)
	})
}

// GetIcosahedronFaces returns the icosahedron faces of each cell as list<int32>.
func (e *Engine) GetIcosahedronFaces(cells arrow.Array) (arrow.Array, error) {
	return e.run("GetIcosahedronFaces", rowsOf(cells), func() (arrow.Array, error) {
		return inspection.GetIcosahedronFaces(e.env, cells)
	})
}
