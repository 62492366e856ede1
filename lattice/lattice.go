// Package lattice: this file declares the Complete[T] interface, the
// optional Scalar[T] numeric view, and the Pair[A,B] carrier for products.
package lattice

// Complete is a bounded lattice over an opaque value type T.
//
// Implementations must make Meet/Join commutative, associative, and
// idempotent, with Top absorbing for Join and Bottom absorbing for Meet,
// and must keep Leq consistent with Meet: Leq(a,b) ⟺ Eq(Meet(a,b), a).
// Height bounds the length of any strictly monotone chain and is used by
// the cohomology solver as its default iteration budget.
type Complete[T any] interface {
	// Top returns the greatest element.
	Top() T

	// Bottom returns the least element.
	Bottom() T

	// Meet returns the greatest lower bound of a and b.
	Meet(a, b T) T

	// Join returns the least upper bound of a and b.
	Join(a, b T) T

	// Leq reports whether a ≤ b in the lattice order.
	Leq(a, b T) bool

	// Eq reports whether a and b denote the same lattice element.
	Eq(a, b T) bool

	// Height is an upper bound on the length of any strictly
	// increasing chain — the convergence bound for monotone iteration.
	Height() int
}

// Scalar is an optional view implemented by numerically ordered lattices
// (Interval, Unit). It maps a lattice element to a float64 so consumers can
// form ratio-based diagnostics such as obstruction severity. Lattices
// without a meaningful numeric embedding simply do not implement it.
type Scalar[T any] interface {
	// Scalar returns the numeric embedding of v.
	Scalar(v T) float64
}

// Pair is the element type of a Product lattice.
type Pair[A, B any] struct {
	First  A
	Second B
}
