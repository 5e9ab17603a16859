package edge

import (
	"fmt"

	"github.com/apache/arrow/go/v15/arrow"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/internal/batch"
	"github.com/hupe1980/h3batch/internal/column"
)

// Length units accepted by EdgeLength.
const (
	Rads = "rads"
	Km   = "km"
	M    = "m"
)

// LengthScale returns the factor converting radians to unit.
func LengthScale(unit string) (float64, error) {
	switch unit {
	case Rads:
		return 1, nil
	case Km:
		return grid.EarthRadiusKm, nil
	case M:
		return grid.EarthRadiusKm * 1000, nil
	default:
		return 0, fmt.Errorf("%w: %q (want %s, %s or %s)", batch.ErrInvalidUnit, unit, Rads, Km, M)
	}
}

func parseEdges(env *batch.Env, arr arrow.Array) (*column.Cells, error) {
	return column.ParseCells(arr, env.Grid.IsValidDirectedEdge)
}

func parseVertexes(env *batch.Env, arr arrow.Array) (*column.Cells, error) {
	return column.ParseCells(arr, env.Grid.IsValidVertex)
}

type pair struct {
	a, b *column.Cells
	skip *column.Mask
}

func parsePair(env *batch.Env, a, b arrow.Array) (*pair, error) {
	if err := column.CheckLengths(a, b); err != nil {
		return nil, err
	}
	left, err := env.Cells(a)
	if err != nil {
		return nil, err
	}
	right, err := env.Cells(b)
	if err != nil {
		return nil, err
	}
	return &pair{a: left, b: right, skip: column.Union(left.Absent, right.Absent)}, nil
}

// AreNeighborCells reports whether the paired cells share an edge. Pairs the
// grid cannot compare, such as cells of different resolutions, are absent.
func AreNeighborCells(env *batch.Env, a, b arrow.Array) (arrow.Array, error) {
	p, err := parsePair(env, a, b)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, p.a.Len(), p.skip, func(i int) (bool, bool) {
		ok, err := env.Grid.AreNeighbors(p.a.Values[i], p.b.Values[i])
		return ok, err == nil
	})
	return column.BuildBools(env.Mem, out), nil
}

// CellsToDirectedEdge returns the edge from origin to destination. Rows
// whose cells are not neighbors are absent.
func CellsToDirectedEdge(env *batch.Env, origins, destinations arrow.Array, enc column.Encoding) (arrow.Array, error) {
	p, err := parsePair(env, origins, destinations)
	if err != nil {
		return nil, err
	}
	enc, err = batch.OutputEncoding(enc, p.a.Encoding)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, p.a.Len(), p.skip, func(i int) (grid.Cell, bool) {
		e, err := env.Grid.DirectedEdge(p.a.Values[i], p.b.Values[i])
		return e, err == nil
	})
	return column.BuildCells(env.Mem, out, enc)
}

// IsValidDirectedEdge reports whether each row holds a valid directed edge.
func IsValidDirectedEdge(env *batch.Env, edges arrow.Array) (arrow.Array, error) {
	return batch.Validity(env, edges, env.Grid.IsValidDirectedEdge)
}

// DirectedEdgeToCells returns [origin, destination] for each edge.
func DirectedEdgeToCells(env *batch.Env, edges arrow.Array, enc column.Encoding) (arrow.Array, error) {
	in, err := parseEdges(env, edges)
	if err != nil {
		return nil, err
	}
	enc, err = batch.OutputEncoding(enc, in.Encoding)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) ([]grid.Cell, bool) {
		origin, destination, err := env.Grid.DirectedEdgeCells(in.Values[i])
		if err != nil {
			return nil, false
		}
		return []grid.Cell{origin, destination}, true
	})
	return column.BuildCellLists(env.Mem, out, enc)
}

// OriginToDirectedEdges lists the edges leaving each cell: six for a
// hexagon, five for a pentagon.
func OriginToDirectedEdges(env *batch.Env, cells arrow.Array, enc column.Encoding) (arrow.Array, error) {
	in, err := env.Cells(cells)
	if err != nil {
		return nil, err
	}
	enc, err = batch.OutputEncoding(enc, in.Encoding)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) ([]grid.Cell, bool) {
		edges, err := env.Grid.DirectedEdges(in.Values[i])
		return edges, err == nil
	})
	return column.BuildCellLists(env.Mem, out, enc)
}

// EdgeLength returns the exact length of each edge in unit.
func EdgeLength(env *batch.Env, edges arrow.Array, unit string) (arrow.Array, error) {
	scale, err := LengthScale(unit)
	if err != nil {
		return nil, err
	}
	in, err := parseEdges(env, edges)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) (float64, bool) {
		l, err := env.Grid.EdgeLengthRads(in.Values[i])
		return l * scale, err == nil
	})
	return column.BuildFloat64s(env.Mem, out), nil
}

// ValidateVertexNum rejects vertex numbers outside [0, grid.MaxCellVertexes).
func ValidateVertexNum(n int) error {
	if n < 0 || n >= grid.MaxCellVertexes {
		return fmt.Errorf("%w: vertex number must be in [0, %d), got %d", batch.ErrInvalidArgument, grid.MaxCellVertexes, n)
	}
	return nil
}

// CellToVertex returns vertex vertexNum of each cell. Vertex 5 of a
// pentagon does not exist and is absent.
func CellToVertex(env *batch.Env, cells arrow.Array, vertexNum int, enc column.Encoding) (arrow.Array, error) {
	if err := ValidateVertexNum(vertexNum); err != nil {
		return nil, err
	}
	in, err := env.Cells(cells)
	if err != nil {
		return nil, err
	}
	enc, err = batch.OutputEncoding(enc, in.Encoding)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) (grid.Cell, bool) {
		c := in.Values[i]
		if vertexNum == grid.MaxCellVertexes-1 && env.Grid.IsPentagon(c) {
			return 0, false
		}
		v, err := env.Grid.CellToVertex(c, vertexNum)
		return v, err == nil
	})
	return column.BuildCells(env.Mem, out, enc)
}

// CellToVertexes lists the vertexes of each cell.
func CellToVertexes(env *batch.Env, cells arrow.Array, enc column.Encoding) (arrow.Array, error) {
	in, err := env.Cells(cells)
	if err != nil {
		return nil, err
	}
	enc, err = batch.OutputEncoding(enc, in.Encoding)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) ([]grid.Cell, bool) {
		vs, err := env.Grid.CellToVertexes(in.Values[i])
		return vs, err == nil
	})
	return column.BuildCellLists(env.Mem, out, enc)
}

// VertexToLatLng returns the [lat, lng] position of each vertex.
func VertexToLatLng(env *batch.Env, vertexes arrow.Array) (arrow.Array, error) {
	in, err := parseVertexes(env, vertexes)
	if err != nil {
		return nil, err
	}
	out := batch.Map(env, in.Len(), in.Absent, func(i int) (grid.LatLng, bool) {
		ll, err := env.Grid.VertexToLatLng(in.Values[i])
		return ll, err == nil
	})
	return column.BuildLatLngs(env.Mem, out), nil
}

// IsValidVertex reports whether each row holds a valid vertex.
func IsValidVertex(env *batch.Env, vertexes arrow.Array) (arrow.Array, error) {
	return batch.Validity(env, vertexes, env.Grid.IsValidVertex)
}
