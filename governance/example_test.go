package governance_test

import (
	"fmt"

	"github.com/katalvlaran/tarski/governance"
)

// ExampleAnalyze scores a tight cluster of three entities against one
// far-flung outlier: the cluster glues, the outlier's edges obstruct.
func ExampleAnalyze() {
	positions := [][]float64{
		{0, 0},   // anchor
		{0, 0},   // clone of the anchor
		{0, 0},   // another clone
		{10, 10}, // outlier, far from the origin
	}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}}

	a, err := governance.Analyze(governance.DefaultConfig(), positions, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("coherent:", a.IsCoherent())
	fmt.Println("obstructions:", len(a.Obstructions))
	fmt.Printf("coherence: %.4f\n", a.CoherenceScore)
	// Output:
	// coherent: false
	// obstructions: 1
	// coherence: 0.9975
}
