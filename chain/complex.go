// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"
	"reflect"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/homology/algebra"
	"github.com/katalvlaran/homology/matrix"
)

// Complex is a finite chain complex of free modules over the ring R,
// given by its boundary maps:
//
//	… → Cₙ --∂ₙ--> Cₙ₋₁ → … → C₁ --∂₁--> C₀ --∂₀--> C₋₁
//
// boundaries[n] is ∂ₙ with rank(Cₙ₋₁) rows and rank(Cₙ) columns. For ordinary
// (unreduced) homology ∂₀ has zero rows; an augmentation row of ones yields
// reduced homology instead.
//
// A Complex is immutable once built; it owns private copies of its matrices.
type Complex[T any] struct {
	boundaries []*matrix.Dense[T]
	ring       algebra.Ring[T]
	checked    bool
	logger     *log.Logger
}

// New builds a complex from ∂₀, ∂₁, … and validates it.
//
// Implementation:
//   - Stage 1: reject nil matrices and mixed coefficient rings, copy every boundary.
//   - Stage 2: check cols(∂ₙ₋₁) == rows(∂ₙ) for every adjacent pair.
//   - Stage 3: unless WithUnchecked, check ∂ₙ₋₁·∂ₙ == 0.
//
// An empty slice is a valid complex with no dimensions.
//
// Errors:
//   - ErrInvalidBoundary wrapped with the failing dimension.
//
// Complexity:
//   - Time O(Σ rₙ·cₙ·cₙ₊₁) ring operations for the composition check.
func New[T any](boundaries []*matrix.Dense[T], opts ...Option) (*Complex[T], error) {
	o := gatherOptions(opts)

	c := &Complex[T]{
		boundaries: make([]*matrix.Dense[T], len(boundaries)),
		checked:    o.checked,
		logger:     o.logger,
	}
	for n, b := range boundaries {
		if b == nil {
			return nil, boundaryErrorf(n, "nil matrix")
		}
		if c.ring == nil {
			c.ring = b.Ring()
		} else if !sameRing(c.ring, b.Ring()) {
			return nil, boundaryErrorf(n, "coefficient ring %v differs from %v", b.Ring(), c.ring)
		}
		c.boundaries[n] = b.Clone()
	}

	if err := c.checkShapes(); err != nil {
		return nil, err
	}
	if c.checked {
		if err := c.checkComposition(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// sameRing reports whether a and b describe the same coefficients: equal
// moduli for prime fields, the same descriptor type otherwise.
func sameRing[T any](a, b algebra.Ring[T]) bool {
	ma, okA := a.(interface{ Modulus() uint64 })
	mb, okB := b.(interface{ Modulus() uint64 })
	if okA || okB {
		return okA && okB && ma.Modulus() == mb.Modulus()
	}

	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// Validate re-runs every check of New, including ∂ₙ₋₁∘∂ₙ = 0 for complexes
// built with WithUnchecked.
func (c *Complex[T]) Validate() error {
	if err := c.checkShapes(); err != nil {
		return err
	}

	return c.checkComposition()
}

func (c *Complex[T]) checkShapes() error {
	for n := 1; n < len(c.boundaries); n++ {
		lower, upper := c.boundaries[n-1], c.boundaries[n]
		if lower.Cols() != upper.Rows() {
			return boundaryErrorf(n, "%d rows, but C%d has rank %d", upper.Rows(), n-1, lower.Cols())
		}
	}

	return nil
}

func (c *Complex[T]) checkComposition() error {
	for n := 1; n < len(c.boundaries); n++ {
		comp, err := matrix.Mul[T](c.boundaries[n-1], c.boundaries[n])
		if err != nil {
			return boundaryErrorf(n, "%v", err)
		}
		if !comp.IsZero() {
			return boundaryErrorf(n, "∂%d∘∂%d ≠ 0", n-1, n)
		}
	}

	return nil
}

// Len returns the number of boundary maps, i.e. the number of dimensions.
func (c *Complex[T]) Len() int { return len(c.boundaries) }

// Ring returns the coefficient ring, or nil for an empty complex.
func (c *Complex[T]) Ring() algebra.Ring[T] { return c.ring }

// Checked reports whether the composition law was verified at construction.
func (c *Complex[T]) Checked() bool { return c.checked }

// Boundary returns a copy of ∂ₙ.
func (c *Complex[T]) Boundary(n int) (*matrix.Dense[T], bool) {
	if n < 0 || n >= len(c.boundaries) {
		return nil, false
	}

	return c.boundaries[n].Clone(), true
}

// ChainRank returns the rank of the free module Cₙ (columns of ∂ₙ).
func (c *Complex[T]) ChainRank(n int) int {
	if n < 0 || n >= len(c.boundaries) {
		return 0
	}

	return c.boundaries[n].Cols()
}

// EulerCharacteristic returns Σ (-1)ⁿ rank(Cₙ).
func (c *Complex[T]) EulerCharacteristic() int {
	chi := 0
	for n, b := range c.boundaries {
		if n%2 == 0 {
			chi += b.Cols()
		} else {
			chi -= b.Cols()
		}
	}

	return chi
}

// String summarizes the chain ranks, e.g. "Complex[C0=4 C1=6 C2=4]".
func (c *Complex[T]) String() string {
	s := "Complex["
	for n, b := range c.boundaries {
		if n > 0 {
			s += " "
		}
		s += fmt.Sprintf("C%d=%d", n, b.Cols())
	}

	return s + "]"
}
