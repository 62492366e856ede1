// Package sheaf assigns lattice data to a cell complex: a stalk (complete
// lattice) per cell and a restriction map (Galois connection) per
// face→coface incidence, plus the Cochain type that carries one lattice
// value per cell of a fixed dimension.
//
// 🚀 What is a cellular sheaf here?
//
//	The data layer between a bare complex and the cohomology solver. The
//	solver never looks at raw cells — it asks the sheaf which lattice lives
//	on a cell and how a value travels along an incidence.
//
// ✨ Provided sheaves:
//   - NewConstant  — one shared lattice, identity restrictions everywhere
//   - NewThreshold — identical stalks; every restriction pulls values below
//     a cutoff down to Bottom ("only strong enough signals propagate")
//   - NewTwisted   — identical stalks; each coface carries its own decay
//     factor (default 1.0), e.g. trust decay along weighted edges
//
// ⚙️ Cochains:
//
//	A Cochain[T] is a sparse id→value map at one degree. Present and absent
//	entries are deliberately distinct: the solvers skip absent entries in
//	meets and joins (the vacuous convention), so use GetOr to read with an
//	explicit default instead of scattering that policy across call sites.
//
// Sheaves are immutable once built; cochains are plain mutable maps owned
// by whoever constructed them — the solvers always return fresh ones.
package sheaf
