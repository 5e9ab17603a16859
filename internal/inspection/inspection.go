package inspection

import (
	"fmt"

	"github.com/apache/arrow/go/v15/arrow"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/internal/batch"
	"github.com/hupe1980/h3batch/internal/column"
	"github.com/hupe1980/h3batch/internal/conv"
)

func int32s(env *batch.Env, cells arrow.Array, f func(grid.Cell) int) (arrow.Array, error) {
	in, err := env.Cells(cells)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) (int32, bool) {
		v, err := conv.IntToInt32(f(in.Values[i]))
		return v, err == nil
	})
	return column.BuildInt32s(env.Mem, out), nil
}

func bools(env *batch.Env, cells arrow.Array, f func(grid.Cell) bool) (arrow.Array, error) {
	in, err := env.Cells(cells)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) (bool, bool) {
		return f(in.Values[i]), true
	})
	return column.BuildBools(env.Mem, out), nil
}

// GetResolution returns the resolution of each cell.
func GetResolution(env *batch.Env, cells arrow.Array) (arrow.Array, error) {
	return int32s(env, cells, env.Grid.Resolution)
}

// GetBaseCellNumber returns the resolution 0 ancestor number (0..121) of each cell.
func GetBaseCellNumber(env *batch.Env, cells arrow.Array) (arrow.Array, error) {
	return int32s(env, cells, env.Grid.BaseCellNumber)
}

// IsPentagon reports whether each cell is one of the pentagons.
func IsPentagon(env *batch.Env, cells arrow.Array) (arrow.Array, error) {
	return bools(env, cells, env.Grid.IsPentagon)
}

// IsResClassIII reports whether each cell has a Class III (odd) resolution.
func IsResClassIII(env *batch.Env, cells arrow.Array) (arrow.Array, error) {
	return bools(env, cells, env.Grid.IsResClassIII)
}

// IsValidCell reports whether each row holds a valid cell. Null rows stay
// null; malformed or invalid values are false.
func IsValidCell(env *batch.Env, cells arrow.Array) (arrow.Array, error) {
	return batch.Validity(env, cells, env.Grid.IsValid)
}

// GetIcosahedronFaces returns the icosahedron faces each cell intersects.
func GetIcosahedronFaces(env *batch.Env, cells arrow.Array) (arrow.Array, error) {
	in, err := env.Cells(cells)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) ([]int32, bool) {
		faces, err := env.Grid.IcosahedronFaces(in.Values[i])
		if err != nil {
			return nil, false
		}
		res := make([]int32, 0, len(faces))
		for _, f := range faces {
			v, err := conv.IntToInt32(f)
			if err != nil {
				return nil, false
			}
			res = append(res, v)
		}
		return res, true
	})
	return column.BuildInt32Lists(env.Mem, out), nil
}

// reencode converts an index column between encodings without validating
// the indexes. Malformed input rows are absent.
func reencode(env *batch.Env, cells arrow.Array, enc column.Encoding) (arrow.Array, error) {
	in, err := column.ParseCells(cells, nil)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) (grid.Cell, bool) {
		return in.Values[i], true
	})
	return column.BuildCells(env.Mem, out, enc)
}

// StrToInt converts hexadecimal index strings to integers. The output
// encoding defaults to UInt64 and must be an integer encoding.
func StrToInt(env *batch.Env, cells arrow.Array, enc column.Encoding) (arrow.Array, error) {
	if err := column.CheckLengths(cells); err != nil {
		return nil, err
	}
	if in, err := column.InferEncoding(cells.DataType()); err != nil || in != column.Hex {
		return nil, fmt.Errorf("%w: want utf8 index column, got %s", column.ErrUnsupportedType, cells.DataType())
	}
	enc, err := batch.OutputEncoding(enc, column.UInt64)
	if err != nil {
		return nil, err
	}
	if enc == column.Hex {
		return nil, fmt.Errorf("%w: %s is not an integer encoding", column.ErrUnsupportedEncoding, enc)
	}
	return reencode(env, cells, enc)
}

// IntToStr converts integer indexes to lowercase hexadecimal strings.
func IntToStr(env *batch.Env, cells arrow.Array) (arrow.Array, error) {
	if err := column.CheckLengths(cells); err != nil {
		return nil, err
	}
	if in, err := column.InferEncoding(cells.DataType()); err != nil || in == column.Hex {
		return nil, fmt.Errorf("%w: want integer index column, got %s", column.ErrUnsupportedType, cells.DataType())
	}
	return reencode(env, cells, column.Hex)
}
