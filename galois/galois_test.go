package galois_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tarski/galois"
	"github.com/katalvlaran/tarski/lattice"
)

//----------------------------------------------------------------------------//
// Adjoint law tests
//----------------------------------------------------------------------------//

// TestIdentity_Adjoint verifies the adjoint law for the identity connection
// on an integer interval.
func TestIdentity_Adjoint(t *testing.T) {
	l := lattice.NewInterval(0, 10)
	samples := []int{0, 1, 3, 5, 7, 10}
	conn := galois.NewIdentity[int]()
	require.NoError(t, galois.CheckAdjoint[int, int](conn, l, l, samples, samples))
}

// TestConstant_Adjoint verifies the adjoint law when Lower is the constant
// Bottom map, the case where a maximal Upper is the genuine right adjoint.
func TestConstant_Adjoint(t *testing.T) {
	l := lattice.NewInterval(0, 10)
	samples := []int{0, 2, 5, 10}
	conn := galois.NewConstant[int](l, l.Bottom())
	require.NoError(t, galois.CheckAdjoint[int, int](conn, l, l, samples, samples))
}

// TestScaling_Adjoint verifies the adjoint law for decay factors in (0, 1]
// over the continuous unit order.
func TestScaling_Adjoint(t *testing.T) {
	l := lattice.NewUnit(100)
	as := []float64{0, 0.1, 0.25, 0.5, 0.75, 1}
	bs := []float64{0, 0.05, 0.2, 0.5, 0.9, 1}
	for _, scale := range []float64{1, 0.5, 0.1} {
		conn := galois.NewScaling(scale)
		require.NoError(t, galois.CheckAdjoint[float64, float64](conn, l, l, as, bs),
			"scale=%v", scale)
	}
}

// TestThreshold_Adjoint verifies the adjoint law on the region where the
// identity Upper is genuinely adjoint: codomain samples at or above cutoff.
func TestThreshold_Adjoint(t *testing.T) {
	l := lattice.NewInterval(0, 10)
	conn := galois.NewThreshold[int](l, 4)
	as := []int{0, 2, 4, 6, 10}
	bs := []int{4, 5, 8, 10}
	require.NoError(t, galois.CheckAdjoint[int, int](conn, l, l, as, bs))
}

//----------------------------------------------------------------------------//
// Behavioral tests
//----------------------------------------------------------------------------//

// TestThreshold_Propagation checks the cutoff semantics of Lower.
func TestThreshold_Propagation(t *testing.T) {
	l := lattice.NewUnit(100)
	conn := galois.NewThreshold[float64](l, 0.5)

	require.Equal(t, 0.7, conn.Lower(0.7), "above cutoff passes through")
	require.Equal(t, 0.5, conn.Lower(0.5), "at cutoff passes through")
	require.Equal(t, 0.0, conn.Lower(0.3), "below cutoff pulled to bottom")
	require.Equal(t, 0.3, conn.Upper(0.3), "upper is the identity")
}

// TestScaling_ZeroFactor checks that a zero factor is treated as 1.
func TestScaling_ZeroFactor(t *testing.T) {
	conn := galois.NewScaling(0)
	require.Equal(t, 0.6, conn.Lower(0.6))
	require.Equal(t, 0.6, conn.Upper(0.6))
}

// TestScaling_Clamping checks clamping on both adjoints.
func TestScaling_Clamping(t *testing.T) {
	conn := galois.NewScaling(0.5)
	require.Equal(t, 0.4, conn.Lower(0.8))
	require.Equal(t, 1.0, conn.Upper(0.8), "0.8/0.5 clamps to 1")
	require.Equal(t, 0.0, conn.Lower(-1))
}

// TestConstant_Behavior checks that Lower ignores input and Upper is Top.
func TestConstant_Behavior(t *testing.T) {
	l := lattice.NewPowerSet(4)
	conn := galois.NewConstant[uint64](l, 0b0101)

	require.Equal(t, uint64(0b0101), conn.Lower(0))
	require.Equal(t, uint64(0b0101), conn.Lower(0b1111))
	require.Equal(t, l.Top(), conn.Upper(0b0010))
}

// TestCompose checks that composition runs Lower forward and Upper backward.
func TestCompose(t *testing.T) {
	half := galois.NewScaling(0.5)
	fifth := galois.NewScaling(0.2)
	conn := galois.Compose[float64, float64, float64](half, fifth)

	require.InDelta(t, 0.08, conn.Lower(0.8), 1e-12)  // 0.8·0.5·0.2
	require.InDelta(t, 1.0, conn.Upper(0.8), 1e-12)   // (0.8/0.2)/0.5 clamps
	require.InDelta(t, 0.4, conn.Upper(0.04), 1e-12)  // 0.04/0.2/0.5
}

// TestCheckAdjoint_DetectsViolation ensures the harness flags a broken pair:
// the full threshold connection is not adjoint below its cutoff.
func TestCheckAdjoint_DetectsViolation(t *testing.T) {
	l := lattice.NewInterval(0, 10)
	conn := galois.NewThreshold[int](l, 4)
	err := galois.CheckAdjoint[int, int](conn, l, l, []int{2}, []int{1})
	require.ErrorIs(t, err, galois.ErrAdjointViolated)
}
