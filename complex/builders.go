// Package complex: graph and simplicial builders.
package complex

// pairKey is the unordered endpoint key used to look up an edge by its two
// vertices: always (min, max).
type pairKey struct {
	lo, hi int
}

func newPairKey(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}
	return pairKey{lo: u, hi: v}
}

// NewGraphComplex builds a 1-dimensional complex from vertexCount vertices
// and a list of undirected edges given as endpoint index pairs.
//
// Each edge becomes a 1-cell whose faces are its two endpoint 0-cells in the
// order given; the orientation convention is −1 at the first endpoint and
// +1 at the second. Parallel edges are allowed and become distinct 1-cells.
//
// Returns ErrNegativeVertexCount, ErrEndpointOutOfRange, or ErrSelfLoop on
// malformed input. Complexity: O(V + E) time and memory.
func NewGraphComplex(vertexCount int, edges [][2]int) (*Complex, error) {
	if vertexCount < 0 {
		return nil, ErrNegativeVertexCount
	}

	c := &Complex{
		counts:  []int{vertexCount, len(edges)},
		faces:   make(map[Cell][]Cell, len(edges)),
		cofaces: make(map[Cell][]Cell, vertexCount),
		signs:   make(map[incidenceKey]int, 2*len(edges)),
	}

	for i, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= vertexCount || v < 0 || v >= vertexCount {
			return nil, ErrEndpointOutOfRange
		}
		if u == v {
			return nil, ErrSelfLoop
		}
		edge := Cell{Dim: 1, ID: i}
		tail := Cell{Dim: 0, ID: u}
		head := Cell{Dim: 0, ID: v}

		c.faces[edge] = []Cell{tail, head}
		c.cofaces[tail] = append(c.cofaces[tail], edge)
		c.cofaces[head] = append(c.cofaces[head], edge)
		c.signs[incidenceKey{face: tail, coface: edge}] = -1
		c.signs[incidenceKey{face: head, coface: edge}] = +1
	}

	return c, nil
}

// NewSimplicialComplex extends NewGraphComplex with 2-cells given as ordered
// vertex triples. Each triangle's three boundary edges (a→b, b→c, c→a) are
// recovered through an unordered endpoint-pair index over the edge list; a
// traversal edge with no matching 1-cell is silently dropped from that
// triangle's face list. When parallel edges exist, the first occurrence of a
// pair wins the lookup.
//
// The orientation convention: a boundary edge gets +1 when the triangle
// traverses it in its stored endpoint order, −1 when reversed.
//
// Returns the graph-builder errors plus ErrTriangleVertexOutOfRange.
// Complexity: O(V + E + T) time and memory.
func NewSimplicialComplex(vertexCount int, edges [][2]int, triangles [][3]int) (*Complex, error) {
	c, err := NewGraphComplex(vertexCount, edges)
	if err != nil {
		return nil, err
	}
	c.counts = append(c.counts, len(triangles))

	// Endpoint-pair index: unordered pair → edge cell, first occurrence wins.
	byPair := make(map[pairKey]Cell, len(edges))
	for i, e := range edges {
		k := newPairKey(e[0], e[1])
		if _, ok := byPair[k]; !ok {
			byPair[k] = Cell{Dim: 1, ID: i}
		}
	}

	for i, tri := range triangles {
		for _, v := range tri {
			if v < 0 || v >= vertexCount {
				return nil, ErrTriangleVertexOutOfRange
			}
		}
		cell := Cell{Dim: 2, ID: i}
		c.faces[cell] = make([]Cell, 0, 3)

		// Walk the boundary a→b→c→a.
		walk := [3][2]int{
			{tri[0], tri[1]},
			{tri[1], tri[2]},
			{tri[2], tri[0]},
		}
		for _, w := range walk {
			edge, ok := byPair[newPairKey(w[0], w[1])]
			if !ok {
				continue // no such edge: drop from this triangle's faces
			}
			c.faces[cell] = append(c.faces[cell], edge)
			c.cofaces[edge] = append(c.cofaces[edge], cell)

			sign := +1
			if tail := c.faces[edge][0]; tail.ID != w[0] {
				sign = -1 // traversed against the stored endpoint order
			}
			c.signs[incidenceKey{face: edge, coface: cell}] = sign
		}
	}

	return c, nil
}
