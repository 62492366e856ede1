// Package complex: oriented boundary-operator view.
package complex

// BoundaryMatrix returns the oriented boundary operator ∂ₖ as a dense
// matrix: rows are (k−1)-cells, columns are k-cells, and entry [i][j] is the
// incidence sign of (k−1)-cell i in k-cell j (+1/−1, or 0 when not
// incident). Dimensions outside the complex yield an empty matrix.
//
// This is the view for consumers that need oriented operators (chain-level
// linear algebra, orientation audits); the lattice-valued solvers never use
// it. Time: O(rows·cols); Memory: O(rows·cols).
func (c *Complex) BoundaryMatrix(k int) [][]int {
	rows := c.CellCount(k - 1)
	cols := c.CellCount(k)
	if rows == 0 || cols == 0 {
		return nil
	}

	data := make([][]int, rows)
	for i := range data {
		data[i] = make([]int, cols)
	}
	for j := 0; j < cols; j++ {
		coface := Cell{Dim: k, ID: j}
		for _, face := range c.Faces(coface) {
			data[face.ID][j] = c.Incidence(face, coface)
		}
	}

	return data
}
