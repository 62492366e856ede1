// Package cohomology: edge-level gluing obstruction detection.
package cohomology

import (
	"fmt"

	"github.com/katalvlaran/tarski/complex"
	"github.com/katalvlaran/tarski/lattice"
	"github.com/katalvlaran/tarski/sheaf"
)

// Obstruction reports that local data at a set of cells fails to glue
// consistently through one edge.
type Obstruction struct {
	// Cells are the vertices whose restricted values disagree.
	Cells []complex.Cell

	// Severity grades the disagreement into [0, 1]: the normalized gap
	// between the joined and met restricted values on numeric stalks, or a
	// 1.0 / 0.5 fallback (total vs partial conflict) elsewhere.
	Severity float64

	// Description names the edge and the two restricted values.
	Description string
}

// DetectObstructions compares the two restricted endpoint values across
// every edge of the complex under the given degree-0 assignment.
//
// An edge contributes an obstruction when both endpoint values are present
// and their images under the edge's Lower restrictions differ in the edge
// stalk. Missing endpoint values and edges with fewer than two faces are
// skipped: absence of data is not disagreement. A non-zero-degree
// assignment yields no obstructions.
//
// Time: O(|edges|); Memory: O(|obstructions|).
func DetectObstructions[T any](sh sheaf.Cellular[T], assignment *sheaf.Cochain[T]) []Obstruction {
	if assignment == nil || assignment.Degree() != 0 {
		return nil
	}

	cx := sh.Complex()
	var out []Obstruction
	for _, edge := range cx.Cells(1) {
		faces := cx.Faces(edge)
		if len(faces) != 2 {
			continue
		}
		v0, v1 := faces[0], faces[1]

		x0, ok0 := assignment.Get(v0.ID)
		x1, ok1 := assignment.Get(v1.ID)
		if !ok0 || !ok1 {
			continue
		}

		lat := sh.Stalk(edge)
		r0 := sh.Restriction(v0, edge).Lower(x0)
		r1 := sh.Restriction(v1, edge).Lower(x1)
		if lat.Eq(r0, r1) {
			continue
		}

		out = append(out, Obstruction{
			Cells:    []complex.Cell{v0, v1},
			Severity: severity(lat, r0, r1),
			Description: fmt.Sprintf("edge %d: restricted values %v and %v do not glue",
				edge.ID, r0, r1),
		})
	}

	return out
}

// severity grades a disagreement between two unequal restricted values.
func severity[T any](lat lattice.Complete[T], r0, r1 T) float64 {
	if num, ok := lat.(lattice.Scalar[T]); ok {
		span := num.Scalar(lat.Top()) - num.Scalar(lat.Bottom())
		if span == 0 {
			return 0 // degenerate stalk: ratio defined as 0, never NaN
		}
		gap := (num.Scalar(lat.Join(r0, r1)) - num.Scalar(lat.Meet(r0, r1))) / span
		if gap < 0 {
			return 0
		}
		if gap > 1 {
			return 1
		}
		return gap
	}

	// Non-numeric stalk: total conflict when the values meet at Bottom,
	// partial conflict otherwise.
	if lat.Eq(lat.Meet(r0, r1), lat.Bottom()) {
		return 1.0
	}
	return 0.5
}
