package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sfCell       Cell = 0x8928308280fffff
	res0Pentagon Cell = 0x8009fffffffffff
)

func TestValidateResolution(t *testing.T) {
	for _, res := range []int{0, 7, MaxResolution} {
		assert.NoError(t, ValidateResolution(res))
	}
	for _, res := range []int{-1, MaxResolution + 1, 100} {
		err := ValidateResolution(res)
		assert.ErrorIs(t, err, ErrInvalidResolution)
	}
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "8928308280fffff", sfCell.String())

	c, err := ParseCell("8928308280fffff")
	require.NoError(t, err)
	assert.Equal(t, sfCell, c)

	_, err = ParseCell("not-hex")
	assert.Error(t, err)
}

func TestLatLngInRange(t *testing.T) {
	assert.True(t, LatLng{Lat: 90, Lng: -180}.InRange())
	assert.False(t, LatLng{Lat: 90.5, Lng: 0}.InRange())
	assert.False(t, LatLng{Lat: 0, Lng: 180.1}.InRange())
	assert.False(t, LatLng{Lat: math.NaN(), Lng: 0}.InRange())
	assert.False(t, LatLng{Lat: 0, Lng: math.Inf(1)}.InRange())
}

func TestH3_Indexing(t *testing.T) {
	g := NewH3()

	c, err := g.LatLngToCell(LatLng{Lat: 37.7752702151959, Lng: -122.418307270836}, 9)
	require.NoError(t, err)
	assert.Equal(t, sfCell, c)

	c, err = g.LatLngToCell(LatLng{Lat: 0, Lng: 0}, 1)
	require.NoError(t, err)
	assert.Equal(t, Cell(583031433791012863), c)

	center, err := g.CellToLatLng(0x85283473fffffff)
	require.NoError(t, err)
	assert.InDelta(t, 37.34579337536848, center.Lat, 1e-9)
	assert.InDelta(t, -121.9763759725512, center.Lng, 1e-9)

	boundary, err := g.CellToBoundary(sfCell)
	require.NoError(t, err)
	assert.Len(t, boundary, 6)

	boundary, err = g.CellToBoundary(res0Pentagon)
	require.NoError(t, err)
	assert.Len(t, boundary, 5)
}

func TestH3_Inspection(t *testing.T) {
	g := NewH3()

	assert.True(t, g.IsValid(sfCell))
	assert.False(t, g.IsValid(0))
	assert.False(t, g.IsValid(math.MaxUint64))

	assert.Equal(t, 9, g.Resolution(sfCell))
	assert.True(t, g.IsResClassIII(sfCell))
	assert.False(t, g.IsPentagon(sfCell))
	assert.True(t, g.IsPentagon(res0Pentagon))
	assert.Equal(t, 4, g.BaseCellNumber(res0Pentagon))

	faces, err := g.IcosahedronFaces(sfCell)
	require.NoError(t, err)
	assert.NotEmpty(t, faces)
}

func TestH3_Hierarchy(t *testing.T) {
	g := NewH3()

	parent, err := g.Parent(sfCell, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, g.Resolution(parent))

	children, err := g.Children(parent, 9)
	require.NoError(t, err)
	assert.Len(t, children, 7)
	assert.Contains(t, children, sfCell)

	_, err = g.Parent(sfCell, 10)
	assert.Error(t, err)

	pos, err := g.ChildPos(sfCell, 8)
	require.NoError(t, err)
	back, err := g.ChildPosToCell(pos, parent, 9)
	require.NoError(t, err)
	assert.Equal(t, sfCell, back)

	compacted, err := g.Compact(children)
	require.NoError(t, err)
	assert.Equal(t, []Cell{parent}, compacted)

	expanded, err := g.Uncompact(compacted, 9)
	require.NoError(t, err)
	assert.ElementsMatch(t, children, expanded)
}

func TestH3_Traversal(t *testing.T) {
	g := NewH3()

	disk, err := g.GridDisk(sfCell, 1)
	require.NoError(t, err)
	assert.Len(t, disk, 7)

	ring0, err := g.GridRing(sfCell, 0)
	require.NoError(t, err)
	assert.Equal(t, []Cell{sfCell}, ring0)

	ring1, err := g.GridRing(sfCell, 1)
	require.NoError(t, err)
	assert.Len(t, ring1, 6)

	for _, n := range ring1 {
		d, err := g.GridDistance(sfCell, n)
		require.NoError(t, err)
		assert.Equal(t, 1, d)
	}

	path, err := g.GridPath(sfCell, ring1[0])
	require.NoError(t, err)
	assert.Equal(t, []Cell{sfCell, ring1[0]}, path)

	ij, err := g.CellToLocalIJ(sfCell, ring1[0])
	require.NoError(t, err)
	back, err := g.LocalIJToCell(sfCell, ij)
	require.NoError(t, err)
	assert.Equal(t, ring1[0], back)
}

func TestH3_Measures(t *testing.T) {
	g := NewH3()

	res0, err := g.Res0Cells()
	require.NoError(t, err)
	assert.Len(t, res0, NumBaseCells)

	pentagons, err := g.Pentagons(5)
	require.NoError(t, err)
	assert.Len(t, pentagons, NumPentagons)
	for _, p := range pentagons {
		assert.True(t, g.IsPentagon(p))
		assert.Equal(t, 5, g.Resolution(p))
	}

	area, err := g.CellAreaRads2(sfCell)
	require.NoError(t, err)
	assert.Greater(t, area, 0.0)
}

func TestH3_Edges(t *testing.T) {
	g := NewH3()

	ring, err := g.GridRing(sfCell, 1)
	require.NoError(t, err)
	neighbor := ring[0]

	ok, err := g.AreNeighbors(sfCell, neighbor)
	require.NoError(t, err)
	assert.True(t, ok)

	e, err := g.DirectedEdge(sfCell, neighbor)
	require.NoError(t, err)
	assert.True(t, g.IsValidDirectedEdge(e))
	assert.False(t, g.IsValidDirectedEdge(sfCell))

	origin, destination, err := g.DirectedEdgeCells(e)
	require.NoError(t, err)
	assert.Equal(t, sfCell, origin)
	assert.Equal(t, neighbor, destination)

	edges, err := g.DirectedEdges(sfCell)
	require.NoError(t, err)
	assert.Len(t, edges, 6)

	length, err := g.EdgeLengthRads(e)
	require.NoError(t, err)
	assert.Greater(t, length, 0.0)

	vertexes, err := g.CellToVertexes(sfCell)
	require.NoError(t, err)
	assert.Len(t, vertexes, MaxCellVertexes)

	v, err := g.CellToVertex(sfCell, 0)
	require.NoError(t, err)
	assert.True(t, g.IsValidVertex(v))

	_, err = g.VertexToLatLng(v)
	require.NoError(t, err)
}
