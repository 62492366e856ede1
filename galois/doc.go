// Package galois defines the Connection[A,B] adjoint-pair abstraction and
// the concrete connections used as sheaf restriction maps.
//
// 🚀 What is a Galois connection?
//
//	A pair of monotone maps Lower: A → B and Upper: B → A between two
//	lattices satisfying the adjoint law
//
//		Lower(a) ≤ b  ⟺  a ≤ Upper(b)
//
//	Lower preserves joins, Upper preserves meets, and both are
//	order-preserving — which is exactly what makes the Tarski Laplacian
//	monotone and the fixed-point machinery sound.
//
// ✨ Provided connections:
//   - Identity  — both adjoints are the identity
//   - Constant  — Lower ignores its input; Upper is maximal (always Top)
//   - Threshold — values below a cutoff are pulled to Bottom; Upper is the
//     identity (adjoint on the region b ≥ cutoff; below it the connection
//     is a deliberately lossy filter)
//   - Scaling   — unit-interval decay: Lower multiplies by a factor, Upper
//     divides, both clamped into [0,1]; a zero factor is treated as 1
//   - Compose   — connections compose, Lower forward and Upper backward
//
// ⚙️ Contract:
//
//	Like the lattice laws, adjointness is a construction-time contract.
//	CheckAdjoint exercises the law over caller samples for tests and debug
//	builds; nothing on the solve path re-validates it.
package galois
