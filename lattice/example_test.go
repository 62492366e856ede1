package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/tarski/lattice"
)

// ExampleNewPowerSet demonstrates subset order and meet/join on bitmasks.
func ExampleNewPowerSet() {
	// Subsets of {0,1,2}: permissions held by two principals.
	l := lattice.NewPowerSet(3)
	alice := uint64(0b011) // {0,1}
	bob := uint64(0b110)   // {1,2}

	fmt.Printf("shared: %03b\n", l.Meet(alice, bob))
	fmt.Printf("either: %03b\n", l.Join(alice, bob))
	fmt.Println("alice ⊆ either:", l.Leq(alice, l.Join(alice, bob)))
	// Output:
	// shared: 010
	// either: 111
	// alice ⊆ either: true
}

// ExampleNewUnit demonstrates that the discretized unit interval snaps every
// operation onto its grid, so Eq agrees with what Meet/Join can produce.
func ExampleNewUnit() {
	l := lattice.NewUnit(4) // grid: 0, 0.25, 0.5, 0.75, 1

	fmt.Println(l.Meet(0.3, 0.9))    // min snapped to the grid
	fmt.Println(l.Eq(0.24, 0.26))    // both snap to 0.25
	fmt.Println(l.Height())          // iteration budget for monotone solvers
	// Output:
	// 0.25
	// true
	// 4
}
