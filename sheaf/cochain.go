// Package sheaf: the Cochain sparse assignment type.
package sheaf

import (
	"sort"

	"github.com/katalvlaran/tarski/lattice"
)

// Cochain assigns one lattice value to cells of a fixed dimension, keyed by
// cell ID. It is sparse: an absent entry is not a value — meets and joins
// over cochains skip it (the vacuous convention), and the missing/present
// distinction is preserved by every operation in this library.
type Cochain[T any] struct {
	degree int
	vals   map[int]T
}

// NewCochain returns an empty cochain of the given degree.
func NewCochain[T any](degree int) *Cochain[T] {
	return &Cochain[T]{degree: degree, vals: make(map[int]T)}
}

// Degree returns the cell dimension this cochain is defined over.
func (c *Cochain[T]) Degree() int { return c.degree }

// Set assigns v to the cell with the given ID.
func (c *Cochain[T]) Set(id int, v T) { c.vals[id] = v }

// Get returns the value at id and whether it is present.
func (c *Cochain[T]) Get(id int) (T, bool) {
	v, ok := c.vals[id]
	return v, ok
}

// GetOr returns the value at id, or def when absent. This is the single
// point implementing the read-with-default policy: pass the stalk's Top in
// meet contexts and its Bottom in join contexts.
func (c *Cochain[T]) GetOr(id int, def T) T {
	if v, ok := c.vals[id]; ok {
		return v
	}
	return def
}

// Len returns the number of present entries.
func (c *Cochain[T]) Len() int { return len(c.vals) }

// IDs returns the present cell IDs in ascending order.
func (c *Cochain[T]) IDs() []int {
	ids := make([]int, 0, len(c.vals))
	for id := range c.vals {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clone returns an independent copy.
func (c *Cochain[T]) Clone() *Cochain[T] {
	out := &Cochain[T]{degree: c.degree, vals: make(map[int]T, len(c.vals))}
	for id, v := range c.vals {
		out.vals[id] = v
	}
	return out
}

// Eq reports whether both cochains have the same degree, the same present
// IDs, and lattice-equal values under lat.
func (c *Cochain[T]) Eq(other *Cochain[T], lat lattice.Complete[T]) bool {
	if c.degree != other.degree || len(c.vals) != len(other.vals) {
		return false
	}
	for id, v := range c.vals {
		w, ok := other.vals[id]
		if !ok || !lat.Eq(v, w) {
			return false
		}
	}
	return true
}
