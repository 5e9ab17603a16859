package grid

import (
	"fmt"

	h3 "github.com/uber/h3-go/v4"
)

// H3 implements Grid on top of Uber's H3 library.
//
// H3 is stateless and safe for concurrent use.
type H3 struct{}

// NewH3 returns the H3-backed grid.
func NewH3() *H3 {
	return &H3{}
}

var _ Grid = (*H3)(nil)

// LatLngToCell implements Indexer.
func (*H3) LatLngToCell(ll LatLng, res int) (Cell, error) {
	c, err := h3.LatLngToCell(h3.NewLatLng(ll.Lat, ll.Lng), res)
	if err != nil {
		return 0, err
	}
	return Cell(c), nil
}

// CellToLatLng implements Indexer.
func (*H3) CellToLatLng(c Cell) (LatLng, error) {
	ll, err := h3.CellToLatLng(h3.Cell(c))
	if err != nil {
		return LatLng{}, err
	}
	return LatLng{Lat: ll.Lat, Lng: ll.Lng}, nil
}

// CellToBoundary implements Indexer.
func (*H3) CellToBoundary(c Cell) ([]LatLng, error) {
	boundary, err := h3.CellToBoundary(h3.Cell(c))
	if err != nil {
		return nil, err
	}
	out := make([]LatLng, len(boundary))
	for i, v := range boundary {
		out[i] = LatLng{Lat: v.Lat, Lng: v.Lng}
	}
	return out, nil
}

// IsValid implements Inspector.
func (*H3) IsValid(c Cell) bool {
	return h3.Cell(c).IsValid()
}

// Resolution implements Inspector.
func (*H3) Resolution(c Cell) int {
	return h3.Cell(c).Resolution()
}

// BaseCellNumber implements Inspector.
func (*H3) BaseCellNumber(c Cell) int {
	return h3.Cell(c).BaseCellNumber()
}

// IsPentagon implements Inspector.
func (*H3) IsPentagon(c Cell) bool {
	return h3.Cell(c).IsPentagon()
}

// IsResClassIII implements Inspector.
func (*H3) IsResClassIII(c Cell) bool {
	return h3.Cell(c).IsResClassIII()
}

// IcosahedronFaces implements Inspector.
func (*H3) IcosahedronFaces(c Cell) ([]int, error) {
	return h3.Cell(c).IcosahedronFaces()
}

// Parent implements Hierarchy.
func (*H3) Parent(c Cell, res int) (Cell, error) {
	p, err := h3.Cell(c).Parent(res)
	if err != nil {
		return 0, err
	}
	return Cell(p), nil
}

// CenterChild implements Hierarchy.
func (*H3) CenterChild(c Cell, res int) (Cell, error) {
	child, err := h3.Cell(c).CenterChild(res)
	if err != nil {
		return 0, err
	}
	return Cell(child), nil
}

// Children implements Hierarchy.
func (*H3) Children(c Cell, res int) ([]Cell, error) {
	children, err := h3.Cell(c).Children(res)
	if err != nil {
		return nil, err
	}
	return fromH3(children), nil
}

// ChildPos implements Hierarchy.
func (*H3) ChildPos(c Cell, parentRes int) (int64, error) {
	pos, err := h3.Cell(c).ChildPos(parentRes)
	if err != nil {
		return 0, err
	}
	return int64(pos), nil
}

// ChildPosToCell implements Hierarchy.
func (*H3) ChildPosToCell(pos int64, parent Cell, childRes int) (Cell, error) {
	c, err := h3.ChildPosToCell(int(pos), h3.Cell(parent), childRes)
	if err != nil {
		return 0, err
	}
	return Cell(c), nil
}

// Compact implements Hierarchy.
func (*H3) Compact(cells []Cell) ([]Cell, error) {
	out, err := h3.CompactCells(toH3(cells))
	if err != nil {
		return nil, err
	}
	return fromH3(out), nil
}

// Uncompact implements Hierarchy.
func (*H3) Uncompact(cells []Cell, res int) ([]Cell, error) {
	out, err := h3.UncompactCells(toH3(cells), res)
	if err != nil {
		return nil, err
	}
	return fromH3(out), nil
}

// GridDistance implements Traverser.
func (*H3) GridDistance(a, b Cell) (int, error) {
	return h3.GridDistance(h3.Cell(a), h3.Cell(b))
}

// GridRing implements Traverser.
//
// The ring is the k-th layer of the library's disk-distance decomposition,
// which stays correct around pentagons.
func (*H3) GridRing(c Cell, k int) ([]Cell, error) {
	rings, err := h3.GridDiskDistances(h3.Cell(c), k)
	if err != nil {
		return nil, err
	}
	if k >= len(rings) {
		return nil, fmt.Errorf("grid ring %d unavailable for cell %s", k, c)
	}
	return fromH3(rings[k]), nil
}

// GridDisk implements Traverser.
func (*H3) GridDisk(c Cell, k int) ([]Cell, error) {
	disk, err := h3.GridDisk(h3.Cell(c), k)
	if err != nil {
		return nil, err
	}
	return fromH3(disk), nil
}

// GridPath implements Traverser.
func (*H3) GridPath(a, b Cell) ([]Cell, error) {
	path, err := h3.GridPath(h3.Cell(a), h3.Cell(b))
	if err != nil {
		return nil, err
	}
	return fromH3(path), nil
}

// CellToLocalIJ implements Traverser.
func (*H3) CellToLocalIJ(origin, c Cell) (CoordIJ, error) {
	ij, err := h3.CellToLocalIJ(h3.Cell(origin), h3.Cell(c))
	if err != nil {
		return CoordIJ{}, err
	}
	return CoordIJ{I: ij.I, J: ij.J}, nil
}

// LocalIJToCell implements Traverser.
func (*H3) LocalIJToCell(origin Cell, ij CoordIJ) (Cell, error) {
	c, err := h3.LocalIJToCell(h3.Cell(origin), h3.CoordIJ{I: ij.I, J: ij.J})
	if err != nil {
		return 0, err
	}
	return Cell(c), nil
}

// CellAreaRads2 implements Measurer.
func (*H3) CellAreaRads2(c Cell) (float64, error) {
	return h3.CellAreaRads2(h3.Cell(c))
}

// Res0Cells implements Measurer.
func (*H3) Res0Cells() ([]Cell, error) {
	cells, err := h3.Res0Cells()
	if err != nil {
		return nil, err
	}
	return fromH3(cells), nil
}

// Pentagons implements Measurer.
func (*H3) Pentagons(res int) ([]Cell, error) {
	cells, err := h3.Pentagons(res)
	if err != nil {
		return nil, err
	}
	return fromH3(cells), nil
}

// AreNeighbors implements Edges.
func (*H3) AreNeighbors(a, b Cell) (bool, error) {
	return h3.Cell(a).IsNeighbor(h3.Cell(b))
}

// DirectedEdge implements Edges.
func (*H3) DirectedEdge(origin, destination Cell) (Cell, error) {
	e, err := h3.Cell(origin).DirectedEdge(h3.Cell(destination))
	if err != nil {
		return 0, err
	}
	return Cell(e), nil
}

// IsValidDirectedEdge implements Edges.
func (*H3) IsValidDirectedEdge(e Cell) bool {
	return h3.DirectedEdge(e).IsValid()
}

// DirectedEdgeCells implements Edges.
func (*H3) DirectedEdgeCells(e Cell) (Cell, Cell, error) {
	edge := h3.DirectedEdge(e)
	origin, err := edge.Origin()
	if err != nil {
		return 0, 0, err
	}
	destination, err := edge.Destination()
	if err != nil {
		return 0, 0, err
	}
	return Cell(origin), Cell(destination), nil
}

// DirectedEdges implements Edges.
func (*H3) DirectedEdges(c Cell) ([]Cell, error) {
	edges, err := h3.Cell(c).DirectedEdges()
	if err != nil {
		return nil, err
	}
	return fromH3(edges), nil
}

// EdgeLengthRads implements Edges.
func (*H3) EdgeLengthRads(e Cell) (float64, error) {
	return h3.EdgeLengthRads(h3.DirectedEdge(e))
}

// CellToVertex implements Edges.
func (*H3) CellToVertex(c Cell, vertexNum int) (Cell, error) {
	v, err := h3.CellToVertex(h3.Cell(c), vertexNum)
	if err != nil {
		return 0, err
	}
	return Cell(v), nil
}

// CellToVertexes implements Edges.
func (*H3) CellToVertexes(c Cell) ([]Cell, error) {
	vertexes, err := h3.CellToVertexes(h3.Cell(c))
	if err != nil {
		return nil, err
	}
	return fromH3(vertexes), nil
}

// VertexToLatLng implements Edges.
func (*H3) VertexToLatLng(v Cell) (LatLng, error) {
	ll, err := h3.VertexToLatLng(h3.Cell(v))
	if err != nil {
		return LatLng{}, err
	}
	return LatLng{Lat: ll.Lat, Lng: ll.Lng}, nil
}

// IsValidVertex implements Edges.
func (*H3) IsValidVertex(v Cell) bool {
	return h3.IsValidVertex(h3.Cell(v))
}

func toH3(cells []Cell) []h3.Cell {
	out := make([]h3.Cell, len(cells))
	for i, c := range cells {
		out[i] = h3.Cell(c)
	}
	return out
}

// fromH3 converts library indexes, dropping the zero placeholders some
// library routines leave in fixed-size output buffers.
func fromH3[T ~int64](in []T) []Cell {
	out := make([]Cell, 0, len(in))
	for _, v := range in {
		if v == 0 {
			continue
		}
		out = append(out, Cell(v))
	}
	return out
}
