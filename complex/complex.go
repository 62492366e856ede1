// Package complex: this file declares Cell, Complex, the incidence queries,
// and the sentinel errors shared by the builders.
package complex

import "errors"

// Sentinel errors for complex construction.
var (
	// ErrNegativeVertexCount indicates a builder was given vertexCount < 0.
	ErrNegativeVertexCount = errors.New("complex: negative vertex count")

	// ErrEndpointOutOfRange indicates an edge references a vertex index
	// outside [0, vertexCount).
	ErrEndpointOutOfRange = errors.New("complex: edge endpoint out of range")

	// ErrSelfLoop indicates an edge with two identical endpoints; a 1-cell
	// must be bounded by two distinct 0-cells.
	ErrSelfLoop = errors.New("complex: self-loop edge not allowed")

	// ErrTriangleVertexOutOfRange indicates a triangle references a vertex
	// index outside [0, vertexCount).
	ErrTriangleVertexOutOfRange = errors.New("complex: triangle vertex out of range")
)

// Cell identifies one cell of the complex: Dim is its dimension (0 for
// vertices, 1 for edges, 2 for triangles) and ID is unique within that
// dimension. Cells are plain values, created once at build time and never
// re-identified.
type Cell struct {
	Dim int
	ID  int
}

// incidenceKey addresses one face→coface incidence for sign lookup.
type incidenceKey struct {
	face   Cell
	coface Cell
}

// Complex is an immutable cell complex. Adjacency is stored as index lists
// per cell; queries return internal slices, which callers must not modify.
type Complex struct {
	counts  []int                 // counts[d] = number of d-cells
	faces   map[Cell][]Cell       // cell → bounding cells one dimension down
	cofaces map[Cell][]Cell       // cell → bounding cells one dimension up
	signs   map[incidenceKey]int  // orientation of each face→coface incidence
}

// Dimension returns the highest dimension carrying at least one cell, or -1
// for an empty complex.
func (c *Complex) Dimension() int {
	for d := len(c.counts) - 1; d >= 0; d-- {
		if c.counts[d] > 0 {
			return d
		}
	}
	return -1
}

// CellCount returns the number of cells of the given dimension; unknown
// dimensions count zero.
func (c *Complex) CellCount(dim int) int {
	if dim < 0 || dim >= len(c.counts) {
		return 0
	}
	return c.counts[dim]
}

// Cells lists all cells of the given dimension in ID order. Unknown
// dimensions yield an empty list.
func (c *Complex) Cells(dim int) []Cell {
	n := c.CellCount(dim)
	cells := make([]Cell, n)
	for i := 0; i < n; i++ {
		cells[i] = Cell{Dim: dim, ID: i}
	}
	return cells
}

// Faces returns the cells bounding cell one dimension below it, in the
// order fixed at build time. The returned slice is shared; do not modify.
func (c *Complex) Faces(cell Cell) []Cell { return c.faces[cell] }

// Cofaces returns the cells bounded by cell one dimension above it. The
// returned slice is shared; do not modify.
func (c *Complex) Cofaces(cell Cell) []Cell { return c.cofaces[cell] }

// Incidence returns the orientation sign of the face→coface incidence:
// +1 or −1 under the builder's endpoint-order convention, 0 when the two
// cells are not incident. Only oriented-operator consumers need this; the
// cohomology solver is orientation-agnostic.
func (c *Complex) Incidence(face, coface Cell) int {
	return c.signs[incidenceKey{face: face, coface: coface}]
}

// EulerCharacteristic returns the alternating sum Σ (−1)^d · |d-cells| over
// the whole complex.
func (c *Complex) EulerCharacteristic() int {
	chi := 0
	for d, n := range c.counts {
		if d%2 == 0 {
			chi += n
		} else {
			chi -= n
		}
	}
	return chi
}
