// Package galois: sample-based adjoint-law checking for tests and debug use.
package galois

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tarski/lattice"
)

// ErrAdjointViolated is returned by CheckAdjoint when the adjoint law fails
// on the supplied samples.
var ErrAdjointViolated = errors.New("galois: adjoint law violated")

// CheckAdjoint verifies Lower(a) ≤ b ⟺ a ≤ Upper(b) for every sampled pair
// and returns the first violation found, or nil. Like lattice.CheckLaws it
// is a debug/test aid, never called on solve paths.
//
// Complexity: O(|as|·|bs|).
func CheckAdjoint[A, B any](
	conn Connection[A, B],
	la lattice.Complete[A],
	lb lattice.Complete[B],
	as []A,
	bs []B,
) error {
	for _, a := range as {
		for _, b := range bs {
			forward := lb.Leq(conn.Lower(a), b)
			backward := la.Leq(a, conn.Upper(b))
			if forward != backward {
				return fmt.Errorf("%w: lower(%v) ≤ %v is %t but %v ≤ upper(%v) is %t",
					ErrAdjointViolated, a, b, forward, a, b, backward)
			}
		}
	}

	return nil
}
