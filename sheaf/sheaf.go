// Package sheaf: the Cellular abstraction and the three stock sheaves.
package sheaf

import (
	"github.com/katalvlaran/tarski/complex"
	"github.com/katalvlaran/tarski/galois"
	"github.com/katalvlaran/tarski/lattice"
)

// Cellular assigns lattice data to a cell complex: a stalk per cell and a
// restriction connection per face→coface incidence. Implementations must be
// immutable once constructed — the solvers query them concurrently when
// parallelism is enabled.
type Cellular[T any] interface {
	// Complex returns the underlying cell complex.
	Complex() *complex.Complex

	// Stalk returns the lattice living on the given cell.
	Stalk(c complex.Cell) lattice.Complete[T]

	// Restriction returns the connection carrying values from face into
	// coface (Lower) and back (Upper).
	Restriction(face, coface complex.Cell) galois.Connection[T, T]
}

// Constant is the sheaf with one shared stalk and identity restrictions.
type Constant[T any] struct {
	cx  *complex.Complex
	lat lattice.Complete[T]
}

// NewConstant returns the constant sheaf of lat over cx.
func NewConstant[T any](cx *complex.Complex, lat lattice.Complete[T]) *Constant[T] {
	return &Constant[T]{cx: cx, lat: lat}
}

// Complex returns the underlying complex.
func (s *Constant[T]) Complex() *complex.Complex { return s.cx }

// Stalk returns the shared lattice for every cell.
func (s *Constant[T]) Stalk(complex.Cell) lattice.Complete[T] { return s.lat }

// Restriction returns the identity connection for every incidence.
func (s *Constant[T]) Restriction(_, _ complex.Cell) galois.Connection[T, T] {
	return galois.NewIdentity[T]()
}

// Threshold is the sheaf whose every restriction pulls values below a
// cutoff to Bottom, so only sufficiently large values propagate.
type Threshold[T any] struct {
	cx     *complex.Complex
	lat    lattice.Complete[T]
	cutoff T
}

// NewThreshold returns the threshold sheaf of lat over cx with the given
// cutoff.
func NewThreshold[T any](cx *complex.Complex, lat lattice.Complete[T], cutoff T) *Threshold[T] {
	return &Threshold[T]{cx: cx, lat: lat, cutoff: cutoff}
}

// Complex returns the underlying complex.
func (s *Threshold[T]) Complex() *complex.Complex { return s.cx }

// Stalk returns the shared lattice for every cell.
func (s *Threshold[T]) Stalk(complex.Cell) lattice.Complete[T] { return s.lat }

// Restriction returns the threshold connection for every incidence.
func (s *Threshold[T]) Restriction(_, _ complex.Cell) galois.Connection[T, T] {
	return galois.NewThreshold[T](s.lat, s.cutoff)
}

// Twisted is the unit-interval sheaf whose restrictions decay by a
// per-coface scale factor; cofaces without an entry keep scale 1.0.
type Twisted struct {
	cx     *complex.Complex
	lat    lattice.Complete[float64]
	scales map[complex.Cell]float64
}

// NewTwisted returns the twisted sheaf of lat over cx. The scales map is
// keyed by coface cell (typically edges) and is copied, so the caller may
// reuse or mutate its map afterwards.
func NewTwisted(cx *complex.Complex, lat lattice.Complete[float64], scales map[complex.Cell]float64) *Twisted {
	copied := make(map[complex.Cell]float64, len(scales))
	for c, s := range scales {
		copied[c] = s
	}
	return &Twisted{cx: cx, lat: lat, scales: copied}
}

// Complex returns the underlying complex.
func (s *Twisted) Complex() *complex.Complex { return s.cx }

// Stalk returns the shared unit-interval lattice for every cell.
func (s *Twisted) Stalk(complex.Cell) lattice.Complete[float64] { return s.lat }

// Restriction returns the scaling connection for the coface's decay factor.
func (s *Twisted) Restriction(_, coface complex.Cell) galois.Connection[float64, float64] {
	scale, ok := s.scales[coface]
	if !ok {
		scale = 1
	}
	return galois.NewScaling(scale)
}
