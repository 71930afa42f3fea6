// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"
	"iter"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/homology/algebra"
	"github.com/katalvlaran/homology/matrix/ops"
)

// Group is the homology group Hₙ ≅ R^FreeRank ⊕ R/(t₁) ⊕ … ⊕ R/(t_k).
type Group[T any] struct {
	freeRank int
	torsion  []T
}

// FreeRank returns the Betti number of the group.
func (g Group[T]) FreeRank() int { return g.freeRank }

// Torsion returns a copy of the torsion coefficients in divisibility order.
// Every coefficient is canonical, nonzero and not a unit (> 1 over Z).
func (g Group[T]) Torsion() []T { return slices.Clone(g.torsion) }

// IsTrivial reports whether the group is zero.
func (g Group[T]) IsTrivial() bool { return g.freeRank == 0 && len(g.torsion) == 0 }

// Homology holds one Group per dimension of a Complex. It is immutable.
type Homology[T any] struct {
	groups []Group[T]
}

// Len returns the number of dimensions.
func (h *Homology[T]) Len() int { return len(h.groups) }

// Group returns Hₙ and whether n is a valid dimension.
func (h *Homology[T]) Group(n int) (Group[T], bool) {
	if n < 0 || n >= len(h.groups) {
		return Group[T]{}, false
	}

	return h.groups[n], true
}

// All yields (dimension, group) pairs in increasing dimension.
func (h *Homology[T]) All() iter.Seq2[int, Group[T]] {
	return func(yield func(int, Group[T]) bool) {
		for n, g := range h.groups {
			if !yield(n, g) {
				return
			}
		}
	}
}

// FreeRanks returns the Betti numbers b₀, b₁, ….
func (h *Homology[T]) FreeRanks() []int {
	out := make([]int, len(h.groups))
	for n, g := range h.groups {
		out[n] = g.freeRank
	}

	return out
}

// IsTrivial reports whether every group is zero.
func (h *Homology[T]) IsTrivial() bool {
	for _, g := range h.groups {
		if !g.IsTrivial() {
			return false
		}
	}

	return true
}

// EulerCharacteristic returns Σ (-1)ⁿ bₙ, which equals the complex's.
func (h *Homology[T]) EulerCharacteristic() int {
	chi := 0
	for n, g := range h.groups {
		if n%2 == 0 {
			chi += g.freeRank
		} else {
			chi -= g.freeRank
		}
	}

	return chi
}

// Homology is shorthand for Compute(c).
func (c *Complex[T]) Homology() (*Homology[T], error) { return Compute(c) }

// Compute derives every homology group of c.
//
// Implementation:
//   - Stage 1: rₙ = rank(∂ₙ) by row-echelon reduction of each boundary.
//   - Stage 2: bₙ = nullity(∂ₙ) − rₙ₊₁ = cols(∂ₙ) − rₙ − rₙ₊₁.
//   - Stage 3: the torsion of Hₙ is the non-unit part of the Smith diagonal
//     of ∂ₙ₊₁. Over a field every nonzero scalar is a unit, so Smith is
//     skipped and torsion is empty.
//
// Complexity:
//   - One echelon reduction per boundary; over a non-field ring one Smith
//     normal form per boundary above dimension 0.
func Compute[T any](c *Complex[T]) (*Homology[T], error) {
	if c == nil {
		return nil, ErrNilComplex
	}
	logger := c.logger
	if logger == nil {
		logger = defaultOptions().logger
	}
	n := len(c.boundaries)
	ranks := make([]int, n)
	for i, b := range c.boundaries {
		r, err := ops.Rank(b)
		if err != nil {
			return nil, fmt.Errorf("chain: rank of ∂%d: %w", i, err)
		}
		ranks[i] = r
	}

	var domain algebra.EuclideanDomain[T]
	if n > 0 && !algebra.IsField(c.ring) {
		domain, _ = c.ring.(algebra.EuclideanDomain[T]) // ops.Rank already rejected others
	}

	groups := make([]Group[T], n)
	for i := 0; i < n; i++ {
		next := 0
		if i+1 < n {
			next = ranks[i+1]
		}
		nullity := c.boundaries[i].Cols() - ranks[i]
		g := Group[T]{freeRank: nullity - next}

		if domain != nil && i+1 < n && next > 0 {
			res, err := ops.Smith(c.boundaries[i+1])
			if err != nil {
				return nil, fmt.Errorf("chain: Smith form of ∂%d: %w", i+1, err)
			}
			for _, d := range res.Diagonal {
				if !algebra.IsUnit(domain, d) {
					g.torsion = append(g.torsion, d)
				}
			}
		}
		groups[i] = g

		logger.Debug("homology",
			"dim", i, "chains", c.boundaries[i].Cols(),
			"rank", ranks[i], "nullity", nullity,
			"betti", g.freeRank, "torsion", len(g.torsion))
	}

	return &Homology[T]{groups: groups}, nil
}
