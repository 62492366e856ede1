// Package galois: this file declares Connection[A,B] and the concrete
// adjoint pairs used as restriction maps along cell incidences.
package galois

import (
	"github.com/katalvlaran/tarski/lattice"
)

// Connection is an adjoint pair of monotone maps between two lattices:
// Lower(a) ≤ b ⟺ a ≤ Upper(b). Lower preserves joins and Upper preserves
// meets; both are order-preserving.
type Connection[A, B any] interface {
	// Lower is the left adjoint A → B (the forward restriction).
	Lower(a A) B

	// Upper is the right adjoint B → A (the backward pullback).
	Upper(b B) A
}

// Identity is the connection whose adjoints are both the identity map.
type Identity[T any] struct{}

// NewIdentity returns the identity connection on one lattice.
func NewIdentity[T any]() Identity[T] { return Identity[T]{} }

// Lower returns a unchanged.
func (Identity[T]) Lower(a T) T { return a }

// Upper returns b unchanged.
func (Identity[T]) Upper(b T) T { return b }

// Constant is the connection whose lower adjoint ignores its input and
// always returns a fixed value; its upper adjoint is maximal, always
// returning Top.
type Constant[T any] struct {
	Value T
	Lat   lattice.Complete[T]
}

// NewConstant returns the constant connection sending everything to value.
func NewConstant[T any](lat lattice.Complete[T], value T) Constant[T] {
	return Constant[T]{Value: value, Lat: lat}
}

// Lower returns the fixed value, ignoring a.
func (c Constant[T]) Lower(a T) T { return c.Value }

// Upper returns Top, ignoring b.
func (c Constant[T]) Upper(b T) T { return c.Lat.Top() }

// Threshold pulls values strictly below a cutoff to Bottom and passes the
// rest through; the upper adjoint is the identity. It encodes "only values
// at or above the cutoff propagate forward."
type Threshold[T any] struct {
	Cutoff T
	Lat    lattice.Complete[T]
}

// NewThreshold returns the threshold connection with the given cutoff on an
// ordered lattice.
func NewThreshold[T any](lat lattice.Complete[T], cutoff T) Threshold[T] {
	return Threshold[T]{Cutoff: cutoff, Lat: lat}
}

// Lower returns a when cutoff ≤ a, otherwise Bottom.
func (c Threshold[T]) Lower(a T) T {
	if c.Lat.Leq(c.Cutoff, a) {
		return a
	}
	return c.Lat.Bottom()
}

// Upper returns b unchanged.
func (c Threshold[T]) Upper(b T) T { return b }

// Scaling is the unit-interval decay connection: Lower multiplies by Scale,
// Upper divides by it, both clamped into [0,1]. A Scale of 0 is treated as 1
// so Upper never divides by zero.
type Scaling struct {
	Scale float64
}

// NewScaling returns the scaling connection for the given factor.
func NewScaling(scale float64) Scaling {
	if scale == 0 {
		scale = 1
	}
	return Scaling{Scale: scale}
}

// Lower returns clamp01(a · Scale).
func (c Scaling) Lower(a float64) float64 { return clamp01(a * c.Scale) }

// Upper returns clamp01(b / Scale).
func (c Scaling) Upper(b float64) float64 { return clamp01(b / c.Scale) }

// clamp01 clamps v into [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Composed chains two connections: Lower runs forward through both, Upper
// runs backward. Adjoint pairs compose, so the result is again a connection.
type Composed[A, B, C any] struct {
	First  Connection[A, B]
	Second Connection[B, C]
}

// Compose returns first then second as a single connection A → C.
func Compose[A, B, C any](first Connection[A, B], second Connection[B, C]) Composed[A, B, C] {
	return Composed[A, B, C]{First: first, Second: second}
}

// Lower applies both lower adjoints, forward.
func (c Composed[A, B, C]) Lower(a A) C { return c.Second.Lower(c.First.Lower(a)) }

// Upper applies both upper adjoints, backward.
func (c Composed[A, B, C]) Upper(v C) A { return c.First.Upper(c.Second.Upper(v)) }
