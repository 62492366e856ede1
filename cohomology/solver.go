// Package cohomology: the greatest-post-fixpoint solver and its options.
package cohomology

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tarski/complex"
	"github.com/katalvlaran/tarski/sheaf"
)

// ErrOptionViolation is returned when a solver option carries an invalid
// argument (non-positive iteration cap or worker count).
var ErrOptionViolation = errors.New("cohomology: invalid option")

// Result is the outcome of one solve: the fixed-point cochain reached, how
// many sweeps it took, whether it stabilized before the cap, and the degree
// it belongs to. Results are never mutated after return.
type Result[T any] struct {
	// Cochain is the last iterate — the greatest post-fixpoint when
	// Converged, otherwise simply the final cochain computed.
	Cochain *sheaf.Cochain[T]

	// Trace holds every iterate from x₀ onward when WithTrace was given,
	// nil otherwise.
	Trace []*sheaf.Cochain[T]

	// Iterations is the number of operator sweeps performed.
	Iterations int

	// Converged reports whether a fixed point was reached before the cap.
	// Callers must check it: hitting the cap is a valid outcome, not an
	// error.
	Converged bool

	// Degree is the cochain dimension k the solve ran at.
	Degree int
}

// options carries solver configuration assembled from functional Options.
type options struct {
	maxIterations int // 0 means derive from stalk height
	trace         bool
	workers       int // ≤1 means sequential
	err           error
}

// Option configures a solve.
type Option func(*options)

// WithMaxIterations overrides the default iteration cap (max stalk height
// at the degree + 10). n must be positive.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.maxIterations = n
	}
}

// WithTrace records every iterate in Result.Trace. Memory grows to
// O(iterations × |k-cells|); without it only the final cochain is retained.
func WithTrace() Option {
	return func(o *options) { o.trace = true }
}

// WithParallel computes the cells of each sweep concurrently with at most
// workers goroutines. Safe because each cell's new value depends only on
// the previous iterate. workers must be positive.
func WithParallel(workers int) Option {
	return func(o *options) {
		if workers <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.workers = workers
	}
}

// TarskiCohomology computes TH^k: the greatest post-fixpoint of the Tarski
// Laplacian at degree k, starting from the all-Top cochain and descending
// via xₜ₊₁ = xₜ ∧ L⁺(xₜ). In degree 0 the result is the global sections.
//
// A degree the complex does not have yields an empty, converged result.
func TarskiCohomology[T any](sh sheaf.Cellular[T], k int, opts ...Option) (Result[T], error) {
	return solve(sh, k, upAt[T], opts)
}

// HodgeCohomology runs the identical iteration with the combined operator
// L = L⁺ ∧ L⁻ in place of the Tarski Laplacian.
func HodgeCohomology[T any](sh sheaf.Cellular[T], k int, opts ...Option) (Result[T], error) {
	return solve(sh, k, hodgeAt[T], opts)
}

// solve is the shared greatest-post-fixpoint iteration over one cell
// operator. The sequence starts at ⊤ and is monotonically decreasing, so by
// Tarski's theorem it stabilizes within the stalk height; the cap only
// matters for ill-behaved custom lattices.
func solve[T any](
	sh sheaf.Cellular[T],
	k int,
	at func(sheaf.Cellular[T], complex.Cell, *sheaf.Cochain[T]) T,
	opts []Option,
) (Result[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result[T]{}, o.err
	}

	cells := sh.Complex().Cells(k)
	limit := o.maxIterations
	if limit == 0 {
		limit = maxStalkHeight(sh, cells) + 10
	}

	// x₀ = ⊤ on every k-cell.
	x := sheaf.NewCochain[T](k)
	for _, c := range cells {
		x.Set(c.ID, sh.Stalk(c).Top())
	}

	res := Result[T]{Degree: k}
	if o.trace {
		res.Trace = append(res.Trace, x.Clone())
	}

	for iter := 1; iter <= limit; iter++ {
		lx := apply(sh, cells, k, at, x, o.workers)

		// xₜ₊₁ = xₜ ∧ L(xₜ), cellwise in each stalk.
		next := sheaf.NewCochain[T](k)
		stable := true
		for _, c := range cells {
			lat := sh.Stalk(c)
			cur, _ := x.Get(c.ID)
			lv, _ := lx.Get(c.ID)
			nv := lat.Meet(cur, lv)
			next.Set(c.ID, nv)
			if !lat.Eq(nv, cur) {
				stable = false
			}
		}

		x = next
		res.Iterations = iter
		if o.trace {
			res.Trace = append(res.Trace, x.Clone())
		}
		if stable {
			res.Converged = true
			break
		}
	}

	res.Cochain = x
	return res, nil
}

// apply computes one operator sweep, sequentially or with a bounded
// worker pool.
func apply[T any](
	sh sheaf.Cellular[T],
	cells []complex.Cell,
	k int,
	at func(sheaf.Cellular[T], complex.Cell, *sheaf.Cochain[T]) T,
	x *sheaf.Cochain[T],
	workers int,
) *sheaf.Cochain[T] {
	out := sheaf.NewCochain[T](k)
	if workers <= 1 || len(cells) < 2 {
		for _, c := range cells {
			out.Set(c.ID, at(sh, c, x))
		}
		return out
	}

	vals := make([]T, len(cells))
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, c := range cells {
		i, c := i, c
		g.Go(func() error {
			vals[i] = at(sh, c, x)
			return nil
		})
	}
	_ = g.Wait() // cell computations are pure and never fail

	for i, c := range cells {
		out.Set(c.ID, vals[i])
	}
	return out
}

// maxStalkHeight returns the largest stalk height among the given cells.
func maxStalkHeight[T any](sh sheaf.Cellular[T], cells []complex.Cell) int {
	h := 0
	for _, c := range cells {
		if sc := sh.Stalk(c).Height(); sc > h {
			h = sc
		}
	}
	return h
}
