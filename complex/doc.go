// Package complex builds immutable cell complexes — the incidence structure
// that sheaves and cohomology are computed over.
//
// 🚀 What is a cell complex here?
//
//	A layered collection of cells (0-cells = vertices, 1-cells = edges,
//	2-cells = triangles) with face/coface adjacency and orientation signs.
//	Two builders are provided:
//		• NewGraphComplex      — vertices + undirected edges
//		• NewSimplicialComplex — the above + 2-cells from vertex triples,
//		  each triangle's three edges recovered by endpoint lookup
//
// ✨ Key properties:
//   - Arena storage: a cell is just a (Dim, ID) value; adjacency lives in
//     index lists, so there are no pointer cycles and no hidden sharing
//   - Built once, immutable thereafter: every query is read-only
//   - Orientation signs (+1/−1) follow a fixed endpoint-order convention
//     and feed the oriented BoundaryMatrix view; the cohomology solver
//     itself never consults them
//   - Dimension-mismatch queries return empty results, never errors
//
// ⚙️ Usage:
//
//	cx, err := complex.NewGraphComplex(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
//	if err != nil { … }
//	for _, e := range cx.Cells(1) {
//		fmt.Println(e, cx.Faces(e))
//	}
//
// Complexity: building is O(V + E + T); every adjacency query is O(1) plus
// the size of its answer.
package complex
