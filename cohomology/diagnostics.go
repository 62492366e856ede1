// Package cohomology: lattice-generic summary statistics over solve
// results and obstruction reports.
package cohomology

import (
	"github.com/katalvlaran/tarski/complex"
	"github.com/katalvlaran/tarski/sheaf"
)

// Diagnostics summarizes an analysis run in lattice-generic terms. Ratio
// metrics over degenerate input (no obstructions, empty degrees) are
// defined as 0.
type Diagnostics struct {
	// CellCounts maps each dimension of the complex to its cell count.
	CellCounts map[int]int

	// NonTrivialSections maps a solved degree to the number of fixed-point
	// entries strictly above the stalk's Bottom.
	NonTrivialSections map[int]int

	// ObstructionCount is the number of reported gluing failures.
	ObstructionCount int

	// MeanSeverity and MaxSeverity aggregate obstruction severities;
	// both are 0 when no obstructions were reported.
	MeanSeverity float64
	MaxSeverity  float64

	// EulerCharacteristic is the complex-level alternating cell-count sum.
	EulerCharacteristic int
}

// CountNonTrivial returns how many entries of the result's cochain sit
// strictly above their stalk's Bottom — the sections carrying actual
// information.
func CountNonTrivial[T any](sh sheaf.Cellular[T], res Result[T]) int {
	n := 0
	for _, id := range res.Cochain.IDs() {
		cell := complex.Cell{Dim: res.Degree, ID: id}
		lat := sh.Stalk(cell)
		if v, ok := res.Cochain.Get(id); ok && !lat.Eq(v, lat.Bottom()) {
			n++
		}
	}
	return n
}

// Diagnose aggregates solve results and obstructions into Diagnostics.
func Diagnose[T any](sh sheaf.Cellular[T], results []Result[T], obstructions []Obstruction) Diagnostics {
	cx := sh.Complex()

	d := Diagnostics{
		CellCounts:          make(map[int]int),
		NonTrivialSections:  make(map[int]int),
		ObstructionCount:    len(obstructions),
		EulerCharacteristic: cx.EulerCharacteristic(),
	}
	for dim := 0; dim <= cx.Dimension(); dim++ {
		d.CellCounts[dim] = cx.CellCount(dim)
	}
	for _, res := range results {
		d.NonTrivialSections[res.Degree] = CountNonTrivial(sh, res)
	}

	if len(obstructions) == 0 {
		return d
	}
	sum := 0.0
	for _, ob := range obstructions {
		sum += ob.Severity
		if ob.Severity > d.MaxSeverity {
			d.MaxSeverity = ob.Severity
		}
	}
	d.MeanSeverity = sum / float64(len(obstructions))

	return d
}
