package h3batch

import (
	"github.com/apache/arrow/go/v15/arrow"

	"github.com/hupe1980/h3batch/internal/edge"
)

// AreNeighborCells reports whether paired cells share an edge.
func (e *Engine) AreNeighborCells(a, b arrow.Array) (arrow.Array, error) {
	return e.run("AreNeighborCells", rowsOf(a), func() (arrow.Array, error) {
		return edge.AreNeighborCells(e.env, a, b)
	})
}

// CellsToDirectedEdge returns the directed edge from each origin to its
// paired destination.
func (e *Engine) CellsToDirectedEdge(origins, destinations arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("CellsToDirectedEdge", rowsOf(origins), func() (arrow.Array, error) {
		return edge.CellsToDirectedEdge(e.env, origins, destinations, opts.Encoding)
	})
}

// IsValidDirectedEdge reports whether each row holds a valid directed edge.
func (e *Engine) IsValidDirectedEdge(edges arrow.Array) (arrow.Array, error) {
	return e.run("IsValidDirectedEdge", rowsOf(edges), func() (arrow.Array, error) {
		return edge.IsValidDirectedEdge(e.env, edges)
	})
}

// DirectedEdgeToCells returns [origin, destination] for each edge.
func (e *Engine) DirectedEdgeToCells(edges arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("DirectedEdgeToCells", rowsOf(edges), func() (arrow.Array, error) {
		return edge.DirectedEdgeToCells(e.env, edges, opts.Encoding)
	})
}

// OriginToDirectedEdges lists the edges leaving each cell.
func (e *Engine) OriginToDirectedEdges(cells arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("OriginToDirectedEdges", rowsOf(cells), func() (arrow.Array, error) {
		return edge.OriginToDirectedEdges(e.env, cells, opts.Encoding)
	})
}

// EdgeLength returns the length of each edge in unit (LengthRads, LengthKm
// or LengthM).
func (e *Engine) EdgeLength(edges arrow.Array, unit string) (arrow.Array, error) {
	return e.run("EdgeLength", rowsOf(edges), func() (arrow.Array, error) {
		return edge.EdgeLength(e.env, edges, unit)
	})
}

// CellToVertex returns vertex vertexNum (0..5) of each cell.
func (e *Engine) CellToVertex(cells arrow.Array, vertexNum int, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("CellToVertex", rowsOf(cells), func() (arrow.Array, error) {
		return edge.CellToVertex(e.env, cells, vertexNum, opts.Encoding)
	})
}

// CellToVertexes lists the vertexes of each cell.
func (e *Engine) CellToVertexes(cells arrow.Array, optFns ...CallOption) (arrow.Array, error) {
	opts := applyCallOptions(optFns)
	return e.run("CellToVertexes", rowsOf(cells), func() (arrow.Array, error) {
		return edge.CellToVertexes(e.env, cells, opts.Encoding)
	})
}

// VertexToLatLng returns the position of each vertex as [lat, lng].
func (e *Engine) VertexToLatLng(vertexes arrow.Array) (arrow.Array, error) {
	return e.run("VertexToLatLng", rowsOf(vertexes), func() (arrow.Array, error) {
		return edge.VertexToLatLng(e.env, vertexes)
	})
}

// IsValidVertex reports whether each row holds a valid vertex.
func (e *Engine) IsValidVertex(vertexes arrow.Array) (arrow.Array, error) {
	return e.run("IsValidVertex", rowsOf(vertexes), func() (arrow.Array, error) {
		return edge.IsValidVertex(e.env, vertexes)
	})
}
