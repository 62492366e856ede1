// Package lattice defines the Complete[T] bounded-lattice abstraction and a
// family of concrete lattices used as sheaf stalks throughout the library.
//
// 🚀 What is a complete lattice here?
//
//	A bounded partial order with a top, a bottom, and a meet/join for every
//	pair of elements, plus an explicit Height — an upper bound on the length
//	of any strictly increasing (or decreasing) chain.  Height is what turns
//	Tarski's fixed-point theorem into a concrete iteration budget: every
//	monotone computation over the lattice stabilizes within Height steps.
//
// ✨ Provided lattices:
//   - Bool         — false < true                         (Height = 1)
//   - Interval     — integers in [Lo, Hi], min/max        (Height = Hi−Lo)
//   - PowerSet     — subsets of {0..N−1} as bitmasks      (Height = N)
//   - Unit         — [0,1] discretized into Steps levels  (Height = Steps)
//   - Product[A,B] — componentwise pair lattice           (Height = h₁+h₂)
//
// ⚙️ Contract:
//
//	Meet/Join must be commutative, associative, and idempotent, and must
//	satisfy Leq(a,b) ⟺ Eq(Meet(a,b), a).  These laws are a construction-time
//	contract — the solvers never re-derive or re-check them at runtime.
//	CheckLaws exercises the laws over a sample set and belongs in tests and
//	debug builds, not on production paths.
//
// Lattices are pure value transforms: no error conditions, no mutation.
// Out-of-range inputs (an int outside [Lo,Hi], a mask with bits ≥ N) are the
// caller's responsibility and are not clamped internally.
package lattice
