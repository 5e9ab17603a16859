package batch

import (
	"fmt"
	"math"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/memory"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/internal/column"
	"github.com/hupe1980/h3batch/internal/parallel"
)

// AutoResolution selects the resolution adjacent to the input cell's own:
// one coarser for parents, one finer for children.
const AutoResolution = -1

// DefaultMaxListLen is the default bound on the elements of one list row.
const DefaultMaxListLen = 1 << 20

// Env is the execution environment of a batch operation.
type Env struct {
	Grid   grid.Grid
	Mem    memory.Allocator
	Runner *parallel.Runner

	// MaxListLen bounds the elements a single list row may hold. Rows that
	// would exceed it are rejected before the grid allocates them.
	// Values < 1 mean DefaultMaxListLen.
	MaxListLen int
}

// NewEnv returns an Env, filling nil fields with defaults.
func NewEnv(g grid.Grid, mem memory.Allocator, runner *parallel.Runner) *Env {
	if g == nil {
		g = grid.NewH3()
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	if runner == nil {
		runner = parallel.New()
	}
	return &Env{Grid: g, Mem: mem, Runner: runner, MaxListLen: DefaultMaxListLen}
}

// ListLimit returns the effective per-row list bound.
func (e *Env) ListLimit() int64 {
	if e.MaxListLen < 1 {
		return DefaultMaxListLen
	}
	return int64(e.MaxListLen)
}

// Cells parses an index column, treating invalid cells as absent.
func (e *Env) Cells(arr arrow.Array) (*column.Cells, error) {
	return column.ParseCells(arr, e.Grid.IsValid)
}

// CellLists parses a list<index> column, treating lists with invalid cells as absent.
func (e *Env) CellLists(arr arrow.Array) (*column.CellLists, error) {
	return column.ParseCellLists(arr, e.Grid.IsValid)
}

// Map evaluates fn for every row in [0, n) that is not in absent. A row is
// present in the result only if fn reports ok.
func Map[T any](e *Env, n int, absent *column.Mask, fn func(i int) (T, bool)) *column.Result[T] {
	out := column.NewResult[T](n)
	e.Runner.For(n, func(i int) {
		if absent != nil && absent.Contains(i) {
			return
		}
		if v, ok := fn(i); ok {
			out.Set(i, v)
		}
	})
	return out
}

// ValidateResolution checks a required target resolution.
func ValidateResolution(res int) error {
	return grid.ValidateResolution(res)
}

// ValidateOptionalResolution accepts AutoResolution or a valid resolution.
func ValidateOptionalResolution(res int) error {
	if res == AutoResolution {
		return nil
	}
	return grid.ValidateResolution(res)
}

// DiskSize returns the number of cells within k steps of a hexagon.
func DiskSize(k int) int64 {
	n := int64(k)
	return 3*n*(n+1) + 1
}

// MaxK returns the largest grid distance whose disk fits a list row.
func (e *Env) MaxK() int {
	limit := e.ListLimit()
	k := int(math.Sqrt(float64(limit) / 3))
	for k > 0 && DiskSize(k) > limit {
		k--
	}
	for DiskSize(k+1) <= limit {
		k++
	}
	return k
}

// ValidateK rejects grid distances outside [0, MaxK].
func (e *Env) ValidateK(k int) error {
	if maxK := e.MaxK(); k < 0 || k > maxK {
		return fmt.Errorf("%w: k must be in [0, %d], got %d", ErrInvalidArgument, maxK, k)
	}
	return nil
}

// OutputEncoding resolves the encoding of an index output column: enc itself,
// or fallback when enc is column.Auto.
func OutputEncoding(enc, fallback column.Encoding) (column.Encoding, error) {
	enc = enc.Or(fallback)
	if _, err := enc.DataType(); err != nil {
		return column.Auto, err
	}
	return enc, nil
}

// Validity reports valid(c) for each row of an index column. Null rows stay
// null; malformed values are false.
func Validity(e *Env, arr arrow.Array, valid column.Accept) (arrow.Array, error) {
	in, err := column.ParseCells(arr, nil)
	if err != nil {
		return nil, err
	}
	out := column.NewResult[bool](in.Len())
	e.Runner.For(in.Len(), func(i int) {
		if arr.IsNull(i) {
			return
		}
		out.Set(i, !in.Absent.Contains(i) && valid(in.Values[i]))
	})
	return column.BuildBools(e.Mem, out), nil
}
