// Package lattice: concrete Complete[T] implementations.
package lattice

import "math"

// Bool is the two-element lattice false < true.
type Bool struct{}

// NewBool returns the boolean lattice.
// Complexity: O(1) per operation.
func NewBool() Bool { return Bool{} }

// Top returns true.
func (Bool) Top() bool { return true }

// Bottom returns false.
func (Bool) Bottom() bool { return false }

// Meet returns a AND b.
func (Bool) Meet(a, b bool) bool { return a && b }

// Join returns a OR b.
func (Bool) Join(a, b bool) bool { return a || b }

// Leq reports a ⇒ b.
func (Bool) Leq(a, b bool) bool { return !a || b }

// Eq reports a == b.
func (Bool) Eq(a, b bool) bool { return a == b }

// Height of the boolean chain false < true.
func (Bool) Height() int { return 1 }

// Interval is the bounded integer lattice [Lo, Hi] ordered by ≤,
// with min as meet and max as join.
type Interval struct {
	Lo, Hi int
}

// NewInterval returns the integer lattice on [lo, hi].
// Values outside the range are the caller's responsibility; they are not
// clamped by Meet/Join.
func NewInterval(lo, hi int) Interval { return Interval{Lo: lo, Hi: hi} }

// Top returns Hi.
func (l Interval) Top() int { return l.Hi }

// Bottom returns Lo.
func (l Interval) Bottom() int { return l.Lo }

// Meet returns min(a, b).
func (Interval) Meet(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Join returns max(a, b).
func (Interval) Join(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Leq reports a ≤ b.
func (Interval) Leq(a, b int) bool { return a <= b }

// Eq reports a == b.
func (Interval) Eq(a, b int) bool { return a == b }

// Height is Hi − Lo, the longest strictly increasing chain.
func (l Interval) Height() int { return l.Hi - l.Lo }

// Scalar embeds an interval element into float64.
func (Interval) Scalar(v int) float64 { return float64(v) }

// PowerSet is the lattice of subsets of {0, …, N−1} encoded as uint64
// bitmasks, ordered by inclusion: intersection is meet, union is join.
// N must not exceed 64; larger N is a caller error and is not checked.
type PowerSet struct {
	N int
}

// NewPowerSet returns the power-set lattice over n ground elements.
func NewPowerSet(n int) PowerSet { return PowerSet{N: n} }

// Top returns the full set {0, …, N−1}.
func (l PowerSet) Top() uint64 {
	if l.N >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(l.N)) - 1
}

// Bottom returns the empty set.
func (PowerSet) Bottom() uint64 { return 0 }

// Meet returns a ∩ b.
func (PowerSet) Meet(a, b uint64) uint64 { return a & b }

// Join returns a ∪ b.
func (PowerSet) Join(a, b uint64) uint64 { return a | b }

// Leq reports a ⊆ b.
func (PowerSet) Leq(a, b uint64) bool { return a&b == a }

// Eq reports a == b.
func (PowerSet) Eq(a, b uint64) bool { return a == b }

// Height is N: adding one element at a time is the longest chain.
func (l PowerSet) Height() int { return l.N }

// Unit is the unit interval [0,1] discretized into Steps equally spaced
// levels above zero: {0, 1/Steps, 2/Steps, …, 1}. Meet and join are min and
// max snapped onto the grid, and Eq compares snapped representatives, so the
// quantization is consistent across all operations.
type Unit struct {
	Steps int
}

// NewUnit returns the discretized unit-interval lattice with the given
// number of steps. Steps must be positive; it is not validated.
func NewUnit(steps int) Unit { return Unit{Steps: steps} }

// snap quantizes v onto the lattice grid, clamping into [0,1] first.
func (l Unit) snap(v float64) float64 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	s := float64(l.Steps)
	return math.Round(v*s) / s
}

// Top returns 1.
func (Unit) Top() float64 { return 1 }

// Bottom returns 0.
func (Unit) Bottom() float64 { return 0 }

// Meet returns min(a, b) snapped onto the grid.
func (l Unit) Meet(a, b float64) float64 { return l.snap(math.Min(a, b)) }

// Join returns max(a, b) snapped onto the grid.
func (l Unit) Join(a, b float64) float64 { return l.snap(math.Max(a, b)) }

// Leq compares snapped representatives: snap(a) ≤ snap(b).
func (l Unit) Leq(a, b float64) bool { return l.snap(a) <= l.snap(b) }

// Eq compares snapped representatives.
func (l Unit) Eq(a, b float64) bool { return l.snap(a) == l.snap(b) }

// Height is Steps: the chain 0 < 1/Steps < … < 1 has exactly Steps ascents.
func (l Unit) Height() int { return l.Steps }

// Scalar returns the snapped numeric value.
func (l Unit) Scalar(v float64) float64 { return l.snap(v) }

// Product is the componentwise lattice on pairs drawn from two factor
// lattices: (a₁,b₁) ≤ (a₂,b₂) iff a₁ ≤ a₂ and b₁ ≤ b₂.
type Product[A, B any] struct {
	L1 Complete[A]
	L2 Complete[B]
}

// NewProduct returns the product of two lattices.
func NewProduct[A, B any](a Complete[A], b Complete[B]) Product[A, B] {
	return Product[A, B]{L1: a, L2: b}
}

// Top is the pair of factor tops.
func (l Product[A, B]) Top() Pair[A, B] {
	return Pair[A, B]{First: l.L1.Top(), Second: l.L2.Top()}
}

// Bottom is the pair of factor bottoms.
func (l Product[A, B]) Bottom() Pair[A, B] {
	return Pair[A, B]{First: l.L1.Bottom(), Second: l.L2.Bottom()}
}

// Meet is componentwise meet.
func (l Product[A, B]) Meet(a, b Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: l.L1.Meet(a.First, b.First), Second: l.L2.Meet(a.Second, b.Second)}
}

// Join is componentwise join.
func (l Product[A, B]) Join(a, b Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: l.L1.Join(a.First, b.First), Second: l.L2.Join(a.Second, b.Second)}
}

// Leq holds when both components are ordered.
func (l Product[A, B]) Leq(a, b Pair[A, B]) bool {
	return l.L1.Leq(a.First, b.First) && l.L2.Leq(a.Second, b.Second)
}

// Eq holds when both components are equal.
func (l Product[A, B]) Eq(a, b Pair[A, B]) bool {
	return l.L1.Eq(a.First, b.First) && l.L2.Eq(a.Second, b.Second)
}

// Height is the sum of factor heights: a strict ascent must strictly raise
// at least one component.
func (l Product[A, B]) Height() int { return l.L1.Height() + l.L2.Height() }
