// Package lattice: sample-based law checking for debug builds and tests.
package lattice

import (
	"errors"
	"fmt"
)

// ErrLawViolated is returned by CheckLaws when a lattice law fails on the
// supplied samples. The wrapped message names the law and the witnesses.
var ErrLawViolated = errors.New("lattice: law violated")

// CheckLaws exercises the Complete contract over every pair (and, for
// associativity, triple) of the supplied samples and returns the first
// violation found, or nil. Top and Bottom are always added to the sample
// set. This is a debug/test aid: the solvers themselves never validate
// lattice laws at runtime.
//
// Complexity: O(s²) pairs plus O(s³) triples for s samples.
func CheckLaws[T any](l Complete[T], samples []T) error {
	xs := make([]T, 0, len(samples)+2)
	xs = append(xs, l.Bottom(), l.Top())
	xs = append(xs, samples...)

	for _, a := range xs {
		if !l.Eq(l.Meet(a, a), a) {
			return fmt.Errorf("%w: meet not idempotent at %v", ErrLawViolated, a)
		}
		if !l.Eq(l.Join(a, a), a) {
			return fmt.Errorf("%w: join not idempotent at %v", ErrLawViolated, a)
		}
		if !l.Eq(l.Meet(a, l.Top()), a) {
			return fmt.Errorf("%w: top not neutral for meet at %v", ErrLawViolated, a)
		}
		if !l.Eq(l.Join(a, l.Bottom()), a) {
			return fmt.Errorf("%w: bottom not neutral for join at %v", ErrLawViolated, a)
		}
		if !l.Leq(l.Bottom(), a) || !l.Leq(a, l.Top()) {
			return fmt.Errorf("%w: %v escapes the [bottom, top] bounds", ErrLawViolated, a)
		}
	}

	for _, a := range xs {
		for _, b := range xs {
			if !l.Eq(l.Meet(a, b), l.Meet(b, a)) {
				return fmt.Errorf("%w: meet not commutative at (%v, %v)", ErrLawViolated, a, b)
			}
			if !l.Eq(l.Join(a, b), l.Join(b, a)) {
				return fmt.Errorf("%w: join not commutative at (%v, %v)", ErrLawViolated, a, b)
			}
			// Leq(a,b) ⟺ Eq(Meet(a,b), a) — the order/meet consistency law.
			if l.Leq(a, b) != l.Eq(l.Meet(a, b), a) {
				return fmt.Errorf("%w: leq inconsistent with meet at (%v, %v)", ErrLawViolated, a, b)
			}
			// Absorption ties meet and join to the same order.
			if !l.Eq(l.Meet(a, l.Join(a, b)), a) {
				return fmt.Errorf("%w: absorption fails at (%v, %v)", ErrLawViolated, a, b)
			}
		}
	}

	for _, a := range xs {
		for _, b := range xs {
			for _, c := range xs {
				if !l.Eq(l.Meet(l.Meet(a, b), c), l.Meet(a, l.Meet(b, c))) {
					return fmt.Errorf("%w: meet not associative at (%v, %v, %v)", ErrLawViolated, a, b, c)
				}
				if !l.Eq(l.Join(l.Join(a, b), c), l.Join(a, l.Join(b, c))) {
					return fmt.Errorf("%w: join not associative at (%v, %v, %v)", ErrLawViolated, a, b, c)
				}
			}
		}
	}

	return nil
}
