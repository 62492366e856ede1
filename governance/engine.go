// Package governance: configuration, analysis result, and the Analyze
// entry point.
package governance

import (
	"errors"
	"math"

	"github.com/katalvlaran/tarski/cohomology"
	"github.com/katalvlaran/tarski/complex"
	"github.com/katalvlaran/tarski/lattice"
	"github.com/katalvlaran/tarski/sheaf"
)

// Sentinel errors for engine input validation. Malformed edge lists
// additionally surface the complex package's builder errors unchanged.
var (
	// ErrNoPositions indicates an empty position array.
	ErrNoPositions = errors.New("governance: no position vectors")

	// ErrDimensionMismatch indicates position vectors of unequal length.
	ErrDimensionMismatch = errors.New("governance: position vectors differ in dimension")

	// ErrBadConfig indicates a non-positive UnitSteps or a negative
	// CouplingConstant, RiskThreshold, or MaxIterations.
	ErrBadConfig = errors.New("governance: invalid configuration")
)

// isCoherentTolerance bounds how far CoherenceScore may sit below 1 while
// still counting as fully coherent.
const isCoherentTolerance = 1e-10

// minEdgeScale floors the per-edge decay so distant pairs still exchange a
// sliver of trust instead of detaching numerically.
const minEdgeScale = 0.01

// Config is the immutable engine configuration. Build it once (start from
// DefaultConfig) and pass it to Analyze; the engine itself holds no state.
type Config struct {
	// CouplingConstant sets how fast trust decays with distance and is the
	// base of the risk amplification exponent.
	CouplingConstant float64

	// RiskThreshold is the minimum obstruction severity that feeds the
	// risk amplification exponent.
	RiskThreshold float64

	// UnitSteps discretizes the [0,1] trust lattice; it is also the
	// solver's convergence height.
	UnitSteps int

	// MaxIterations overrides the solver's iteration cap when positive;
	// 0 keeps the default height+10.
	MaxIterations int
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		CouplingConstant: 1.0,
		RiskThreshold:    0.5,
		UnitSteps:        100,
	}
}

// validate reports ErrBadConfig for out-of-domain fields.
func (c Config) validate() error {
	if c.UnitSteps <= 0 || c.CouplingConstant < 0 || c.RiskThreshold < 0 || c.MaxIterations < 0 {
		return ErrBadConfig
	}
	return nil
}

// Analysis is the full outcome of one Analyze call. It is never mutated
// after return.
type Analysis struct {
	// GlobalSections is TH⁰ — the greatest trust assignment every edge
	// restriction agrees with.
	GlobalSections cohomology.Result[float64]

	// FirstCohomology is TH¹; on an edgeless complex it is the empty
	// converged result.
	FirstCohomology cohomology.Result[float64]

	// HodgeSections is the Hodge HH⁰ run of the combined Laplacian.
	HodgeSections cohomology.Result[float64]

	// SafetyScores holds the per-vertex local assignment exp(−‖p‖²) that
	// the obstruction detector was run against.
	SafetyScores *sheaf.Cochain[float64]

	// Obstructions lists every edge whose restricted safety scores
	// disagree.
	Obstructions []cohomology.Obstruction

	// Diagnostics carries the lattice-generic summary statistics.
	Diagnostics cohomology.Diagnostics

	// CoherenceScore is max(0, 1 − Σseverity / max(1, |edges|)).
	CoherenceScore float64

	// RiskAmplification is coupling^Σ(severity² over obstructions at or
	// above RiskThreshold), 1 when none reach it.
	RiskAmplification float64

	// EulerCharacteristic is |non-trivial TH⁰| − |non-trivial TH¹|.
	EulerCharacteristic int

	// EdgeCount is the number of 1-cells the scores were computed over.
	EdgeCount int
}

// IsCoherent reports whether the coherence score is exactly 1 within the
// engine tolerance — every local value glues into a global section.
func (a *Analysis) IsCoherent() bool {
	return math.Abs(1-a.CoherenceScore) < isCoherentTolerance
}

// Analyze runs the whole pipeline over n position vectors and an edge list
// of vertex-index pairs.
//
// Returns ErrNoPositions, ErrDimensionMismatch, ErrBadConfig, or a complex
// builder error on malformed input; past validation the computation is
// total — check the Converged flags and the obstruction list instead of
// expecting errors.
//
// Time: O(iterations · Σ deg²) for the solves plus O(E) scoring;
// Memory: O(V + E).
func Analyze(cfg Config, positions [][]float64, edges [][2]int) (*Analysis, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return nil, ErrNoPositions
	}
	dim := len(positions[0])
	for _, p := range positions[1:] {
		if len(p) != dim {
			return nil, ErrDimensionMismatch
		}
	}

	cx, err := complex.NewGraphComplex(len(positions), edges)
	if err != nil {
		return nil, err
	}
	lat := lattice.NewUnit(cfg.UnitSteps)

	// Per-vertex safety: exp(−‖p‖²), 1 at the origin and decaying outward.
	safety := sheaf.NewCochain[float64](0)
	for i, p := range positions {
		safety.Set(i, math.Exp(-squaredNorm(p)))
	}

	// Per-edge decay from pairwise distance, floored at minEdgeScale.
	scales := make(map[complex.Cell]float64, len(edges))
	for i, e := range edges {
		d := distance(positions[e[0]], positions[e[1]])
		s := math.Exp(-d * cfg.CouplingConstant)
		if s < minEdgeScale {
			s = minEdgeScale
		}
		if s > 1 {
			s = 1
		}
		scales[complex.Cell{Dim: 1, ID: i}] = s
	}
	sh := sheaf.NewTwisted(cx, lat, scales)

	var opts []cohomology.Option
	if cfg.MaxIterations > 0 {
		opts = append(opts, cohomology.WithMaxIterations(cfg.MaxIterations))
	}

	th0, err := cohomology.TarskiCohomology[float64](sh, 0, opts...)
	if err != nil {
		return nil, err
	}
	th1 := cohomology.Result[float64]{
		Cochain:   sheaf.NewCochain[float64](1),
		Converged: true,
		Degree:    1,
	}
	if cx.CellCount(1) > 0 {
		th1, err = cohomology.TarskiCohomology[float64](sh, 1, opts...)
		if err != nil {
			return nil, err
		}
	}
	hh0, err := cohomology.HodgeCohomology[float64](sh, 0, opts...)
	if err != nil {
		return nil, err
	}

	obstructions := cohomology.DetectObstructions[float64](sh, safety)

	totalSeverity := 0.0
	riskExponent := 0.0
	for _, ob := range obstructions {
		totalSeverity += ob.Severity
		if ob.Severity >= cfg.RiskThreshold {
			riskExponent += ob.Severity * ob.Severity
		}
	}
	edgeCount := cx.CellCount(1)
	coherence := 1 - totalSeverity/math.Max(1, float64(edgeCount))
	if coherence < 0 {
		coherence = 0
	}
	risk := 1.0
	if riskExponent > 0 {
		risk = math.Pow(cfg.CouplingConstant, riskExponent)
	}

	return &Analysis{
		GlobalSections:  th0,
		FirstCohomology: th1,
		HodgeSections:   hh0,
		SafetyScores:    safety,
		Obstructions:    obstructions,
		Diagnostics: cohomology.Diagnose[float64](sh,
			[]cohomology.Result[float64]{th0, th1}, obstructions),
		CoherenceScore:    coherence,
		RiskAmplification: risk,
		EulerCharacteristic: cohomology.CountNonTrivial[float64](sh, th0) -
			cohomology.CountNonTrivial[float64](sh, th1),
		EdgeCount: edgeCount,
	}, nil
}

// squaredNorm returns ‖p‖².
func squaredNorm(p []float64) float64 {
	s := 0.0
	for _, v := range p {
		s += v * v
	}
	return s
}

// distance returns the Euclidean distance between two equal-length vectors.
func distance(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s)
}
