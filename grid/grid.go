package grid

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// MaxResolution is the finest subdivision level of the grid.
	MaxResolution = 15

	// NumBaseCells is the number of cells at resolution 0.
	NumBaseCells = 122

	// NumPentagons is the number of pentagon cells at every resolution.
	NumPentagons = 12

	// MaxCellVertexes is the number of vertexes of a hexagon. Pentagons have one fewer.
	MaxCellVertexes = 6

	// EarthRadiusKm is the authalic earth radius used to scale angular measures.
	EarthRadiusKm = 6371.007180918475
)

// ErrInvalidResolution is returned when a resolution lies outside [0, MaxResolution].
var ErrInvalidResolution = errors.New("invalid resolution")

// ValidateResolution rejects resolutions outside [0, MaxResolution].
func ValidateResolution(res int) error {
	if res < 0 || res > MaxResolution {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidResolution, res, MaxResolution)
	}
	return nil
}

// Cell is a packed 64-bit grid index (cell, directed edge or vertex).
type Cell uint64

// String returns the lowercase hexadecimal form of the index.
func (c Cell) String() string {
	return strconv.FormatUint(uint64(c), 16)
}

// ParseCell decodes a hexadecimal index. It checks the format only, not validity.
func ParseCell(s string) (Cell, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, err
	}
	return Cell(v), nil
}

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// InRange reports whether the coordinate is finite and inside
// [-90, 90] x [-180, 180].
func (ll LatLng) InRange() bool {
	// NaN fails every comparison, so it is rejected here as well.
	return ll.Lat >= -90 && ll.Lat <= 90 && ll.Lng >= -180 && ll.Lng <= 180
}

// CoordIJ is a coordinate in an origin-anchored local IJ frame.
type CoordIJ struct {
	I int
	J int
}

// Indexer converts between coordinates and cells.
type Indexer interface {
	LatLngToCell(ll LatLng, res int) (Cell, error)
	CellToLatLng(c Cell) (LatLng, error)
	CellToBoundary(c Cell) ([]LatLng, error)
}

// Inspector exposes per-cell metadata.
type Inspector interface {
	IsValid(c Cell) bool
	Resolution(c Cell) int
	BaseCellNumber(c Cell) int
	IsPentagon(c Cell) bool
	IsResClassIII(c Cell) bool
	IcosahedronFaces(c Cell) ([]int, error)
}

// Hierarchy navigates parent/child relations and compaction.
type Hierarchy interface {
	Parent(c Cell, res int) (Cell, error)
	CenterChild(c Cell, res int) (Cell, error)
	Children(c Cell, res int) ([]Cell, error)
	ChildPos(c Cell, parentRes int) (int64, error)
	ChildPosToCell(pos int64, parent Cell, childRes int) (Cell, error)
	Compact(cells []Cell) ([]Cell, error)
	Uncompact(cells []Cell, res int) ([]Cell, error)
}

// Traverser walks the grid graph.
type Traverser interface {
	GridDistance(a, b Cell) (int, error)
	GridRing(c Cell, k int) ([]Cell, error)
	GridDisk(c Cell, k int) ([]Cell, error)
	GridPath(a, b Cell) ([]Cell, error)
	CellToLocalIJ(origin, c Cell) (CoordIJ, error)
	LocalIJToCell(origin Cell, ij CoordIJ) (Cell, error)
}

// Measurer reports areas and topology constants.
type Measurer interface {
	CellAreaRads2(c Cell) (float64, error)
	Res0Cells() ([]Cell, error)
	Pentagons(res int) ([]Cell, error)
}

// Edges handles directed edges and cell vertexes.
type Edges interface {
	AreNeighbors(a, b Cell) (bool, error)
	DirectedEdge(origin, destination Cell) (Cell, error)
	IsValidDirectedEdge(e Cell) bool
	DirectedEdgeCells(e Cell) (origin, destination Cell, err error)
	DirectedEdges(c Cell) ([]Cell, error)
	EdgeLengthRads(e Cell) (float64, error)
	CellToVertex(c Cell, vertexNum int) (Cell, error)
	CellToVertexes(c Cell) ([]Cell, error)
	VertexToLatLng(v Cell) (LatLng, error)
	IsValidVertex(v Cell) bool
}

// Grid is the complete single-value grid API.
//
// Implementations must be safe for concurrent use: batch operations call them
// from several goroutines at once.
type Grid interface {
	Indexer
	Inspector
	Hierarchy
	Traverser
	Measurer
	Edges
}
