// Package cohomology computes lattice-valued sheaf cohomology as the
// greatest post-fixpoint of a monotone Laplacian, per Tarski's theorem.
//
// 🚀 What is the Tarski Laplacian?
//
//	A diffusion operator on k-cochains: for every k-cell it meets together
//	what all neighboring cells claim, routed through the sheaf's restriction
//	maps — Lower into the shared coface, Upper back down. Because meet,
//	Lower, and Upper are all order-preserving, the operator is monotone,
//	and the iteration
//
//		x₀ = ⊤,   xₜ₊₁ = xₜ ∧ L(xₜ)
//
//	descends to the greatest x with x ≤ L(x) in at most Height(lattice)
//	steps. In degree 0 that fixed point is exactly the global sections:
//	vertex assignments every incident edge agrees with.
//
// ✨ Provided operators and entry points:
//   - TarskiLaplacian   — up-diffusion through cofaces (meets, L⁺)
//   - DownLaplacian     — the order dual through faces (joins, L⁻)
//   - HodgeLaplacian    — cellwise meet L⁺ ∧ L⁻
//   - TarskiCohomology  — greatest post-fixpoint of L⁺ at degree k
//   - HodgeCohomology   — same iteration with the combined operator
//   - DetectObstructions — per-edge disagreement reports with severities
//   - Diagnose          — lattice-generic summary statistics
//
// ⚙️ Guarantees:
//
//	Every solve terminates within its iteration cap (default: max stalk
//	height at the degree + 10). Non-convergence is not an error — check
//	Result.Converged. Missing cochain entries are skipped under the vacuous
//	convention (⊤ for meets, ⊥ for joins); dimensions the complex does not
//	have yield empty results. Nothing on the solve path panics on valid
//	input.
//
// Per-cell work within one application depends only on the previous
// iterate, so WithParallel runs cells of one sweep concurrently; iterations
// themselves are inherently sequential.
package cohomology
