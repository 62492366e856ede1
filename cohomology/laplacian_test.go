package cohomology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tarski/cohomology"
	"github.com/katalvlaran/tarski/complex"
	"github.com/katalvlaran/tarski/lattice"
	"github.com/katalvlaran/tarski/sheaf"
)

// cell is shorthand for building complex.Cell literals in tests.
func cell(dim, id int) complex.Cell { return complex.Cell{Dim: dim, ID: id} }

//----------------------------------------------------------------------------//
// Vacuous cases
//----------------------------------------------------------------------------//

// TestTarskiLaplacian_IsolatedVertexTop: a 0-cell with no cofaces receives
// Top — the meet over an empty coface set.
func TestTarskiLaplacian_IsolatedVertexTop(t *testing.T) {
	// Vertex 2 is isolated.
	cx, err := complex.NewGraphComplex(3, [][2]int{{0, 1}})
	require.NoError(t, err)
	l := lattice.NewUnit(10)
	sh := sheaf.NewConstant[float64](cx, l)

	x := sheaf.NewCochain[float64](0)
	x.Set(0, 0.3)
	x.Set(1, 0.7)
	x.Set(2, 0.2)

	lx := cohomology.TarskiLaplacian[float64](sh, 0, x)
	v, ok := lx.Get(2)
	require.True(t, ok)
	require.Equal(t, l.Top(), v)
}

// TestDownLaplacian_FacelessBottom: a 0-cell has no faces, so the dual
// operator assigns Bottom — the join over an empty face set.
func TestDownLaplacian_FacelessBottom(t *testing.T) {
	cx, err := complex.NewGraphComplex(2, [][2]int{{0, 1}})
	require.NoError(t, err)
	l := lattice.NewUnit(10)
	sh := sheaf.NewConstant[float64](cx, l)

	x := sheaf.NewCochain[float64](0)
	x.Set(0, 0.9)
	x.Set(1, 0.9)

	lx := cohomology.DownLaplacian[float64](sh, 0, x)
	for _, id := range []int{0, 1} {
		v, ok := lx.Get(id)
		require.True(t, ok)
		require.Equal(t, l.Bottom(), v)
	}
}

// TestTarskiLaplacian_SkipsMissingEntries: absent cochain entries drop out
// of the inner meet instead of acting as Bottom.
func TestTarskiLaplacian_SkipsMissingEntries(t *testing.T) {
	cx, err := complex.NewGraphComplex(2, [][2]int{{0, 1}})
	require.NoError(t, err)
	l := lattice.NewUnit(10)
	sh := sheaf.NewConstant[float64](cx, l)

	x := sheaf.NewCochain[float64](0)
	x.Set(0, 0.4) // vertex 1 left unset

	lx := cohomology.TarskiLaplacian[float64](sh, 0, x)
	v0, _ := lx.Get(0)
	v1, _ := lx.Get(1)
	require.Equal(t, 0.4, v0, "inner meet sees only the present endpoint")
	require.Equal(t, 0.4, v1)
}

//----------------------------------------------------------------------------//
// Path-graph diffusion
//----------------------------------------------------------------------------//

// TestTarskiLaplacian_PathConsensus: with identity restrictions each vertex
// receives the meet of itself with its neighbors through shared edges.
func TestTarskiLaplacian_PathConsensus(t *testing.T) {
	cx, err := complex.NewGraphComplex(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	l := lattice.NewUnit(10)
	sh := sheaf.NewConstant[float64](cx, l)

	x := sheaf.NewCochain[float64](0)
	x.Set(0, 1.0)
	x.Set(1, 0.0)
	x.Set(2, 1.0)

	lx := cohomology.TarskiLaplacian[float64](sh, 0, x)
	v0, _ := lx.Get(0)
	v1, _ := lx.Get(1)
	v2, _ := lx.Get(2)
	require.Equal(t, 0.0, v0, "edge 0–1 pulls vertex 0 down to min(1, 0)")
	require.Equal(t, 0.0, v1)
	require.Equal(t, 0.0, v2)
}

//----------------------------------------------------------------------------//
// Monotonicity
//----------------------------------------------------------------------------//

// TestTarskiLaplacian_Monotone: x ≤ y cellwise implies L(x) ≤ L(y) cellwise,
// checked over a twisted sheaf so nontrivial restrictions are exercised.
func TestTarskiLaplacian_Monotone(t *testing.T) {
	cx, err := complex.NewGraphComplex(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)
	l := lattice.NewUnit(20)
	sh := sheaf.NewTwisted(cx, l, map[complex.Cell]float64{
		cell(1, 0): 0.5,
		cell(1, 1): 0.25,
		cell(1, 2): 0.75,
	})

	y := sheaf.NewCochain[float64](0)
	y.Set(0, 1.0)
	y.Set(1, 0.6)
	y.Set(2, 0.8)
	y.Set(3, 0.45)

	// x = y ∧ z for an arbitrary z, so x ≤ y by construction.
	z := []float64{0.3, 0.9, 0.15, 0.45}
	x := sheaf.NewCochain[float64](0)
	for id := 0; id < 4; id++ {
		yv, _ := y.Get(id)
		x.Set(id, l.Meet(yv, z[id]))
	}

	lx := cohomology.TarskiLaplacian[float64](sh, 0, x)
	ly := cohomology.TarskiLaplacian[float64](sh, 0, y)
	for id := 0; id < 4; id++ {
		xv, _ := lx.Get(id)
		yv, _ := ly.Get(id)
		require.True(t, l.Leq(xv, yv), "cell %d: L(x)=%v must stay below L(y)=%v", id, xv, yv)
	}
}

//----------------------------------------------------------------------------//
// Degree 1 and the Hodge combination
//----------------------------------------------------------------------------//

// TestTarskiLaplacian_Degree1_NoCofaces: in a bare cycle graph every edge
// has no cofaces, so the up-Laplacian is constantly Top at degree 1.
func TestTarskiLaplacian_Degree1_NoCofaces(t *testing.T) {
	cx, err := complex.NewGraphComplex(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)
	l := lattice.NewBool()
	sh := sheaf.NewConstant[bool](cx, l)

	x := sheaf.NewCochain[bool](1)
	x.Set(0, false)
	x.Set(1, false)
	x.Set(2, true)

	lx := cohomology.TarskiLaplacian[bool](sh, 1, x)
	for id := 0; id < 3; id++ {
		v, _ := lx.Get(id)
		require.True(t, v)
	}
}

// TestHodgeLaplacian_IsCellwiseMeet verifies L = L⁺ ∧ L⁻ entry by entry on
// a filled triangle at degree 1, where both parts are nontrivial.
func TestHodgeLaplacian_IsCellwiseMeet(t *testing.T) {
	cx, err := complex.NewSimplicialComplex(3,
		[][2]int{{0, 1}, {1, 2}, {2, 0}}, [][3]int{{0, 1, 2}})
	require.NoError(t, err)
	l := lattice.NewUnit(10)
	sh := sheaf.NewConstant[float64](cx, l)

	x := sheaf.NewCochain[float64](1)
	x.Set(0, 0.9)
	x.Set(1, 0.5)
	x.Set(2, 0.7)

	up := cohomology.TarskiLaplacian[float64](sh, 1, x)
	down := cohomology.DownLaplacian[float64](sh, 1, x)
	hodge := cohomology.HodgeLaplacian[float64](sh, 1, x)

	for id := 0; id < 3; id++ {
		u, _ := up.Get(id)
		d, _ := down.Get(id)
		h, _ := hodge.Get(id)
		require.Equal(t, l.Meet(u, d), h, "edge %d", id)
	}
}
