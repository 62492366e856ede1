package cohomology_test

import (
	"fmt"

	"github.com/katalvlaran/tarski/cohomology"
	"github.com/katalvlaran/tarski/complex"
	"github.com/katalvlaran/tarski/lattice"
	"github.com/katalvlaran/tarski/sheaf"
)

// ExampleTarskiCohomology computes the global sections of a boolean sheaf
// over a triangle: with identity restrictions everything glues, and the
// greatest post-fixpoint is the all-true cochain.
func ExampleTarskiCohomology() {
	cx, err := complex.NewGraphComplex(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sh := sheaf.NewConstant[bool](cx, lattice.NewBool())

	res, err := cohomology.TarskiCohomology[bool](sh, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("converged:", res.Converged)
	fmt.Println("iterations:", res.Iterations)
	for _, id := range res.Cochain.IDs() {
		v, _ := res.Cochain.Get(id)
		fmt.Printf("vertex %d: %t\n", id, v)
	}
	// Output:
	// converged: true
	// iterations: 1
	// vertex 0: true
	// vertex 1: true
	// vertex 2: true
}

// ExampleDetectObstructions shows how conflicting local trust values fail
// to glue: the middle vertex of a path disagrees maximally with both
// neighbors, so each edge reports severity 1.
func ExampleDetectObstructions() {
	cx, err := complex.NewGraphComplex(3, [][2]int{{0, 1}, {1, 2}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sh := sheaf.NewConstant[float64](cx, lattice.NewUnit(100))

	local := sheaf.NewCochain[float64](0)
	local.Set(0, 1.0)
	local.Set(1, 0.0)
	local.Set(2, 1.0)

	for _, ob := range cohomology.DetectObstructions[float64](sh, local) {
		fmt.Printf("severity %.1f between vertices %d and %d\n",
			ob.Severity, ob.Cells[0].ID, ob.Cells[1].ID)
	}
	// Output:
	// severity 1.0 between vertices 0 and 1
	// severity 1.0 between vertices 1 and 2
}
