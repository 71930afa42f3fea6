// SPDX-License-Identifier: MIT
//
// impl_cellular.go - minimal CW complexes: one cell per nonzero Betti
// number plus the attaching cells that create torsion.

package catalog

import (
	"fmt"

	"github.com/katalvlaran/homology/integer"
	"github.com/katalvlaran/homology/matrix"
)

const (
	methodPoint           = "Point"
	methodSphere          = "Sphere"
	methodTorus           = "Torus"
	methodKleinBottle     = "KleinBottle"
	methodProjectivePlane = "ProjectivePlane"
	methodLens            = "Lens"

	// MaxSphereDim bounds Sphere(n).
	MaxSphereDim = 64
)

// Point is the one-vertex complex.
func Point() Constructor {
	return func(cfg config) ([]*matrix.Dense[integer.Integer], error) {
		return assemble(methodPoint, []int{1}, cfg, nil)
	}
}

// Sphere is Sⁿ as one 0-cell and one n-cell with zero boundary. S⁰ is two
// points.
func Sphere(n int) Constructor {
	return func(cfg config) ([]*matrix.Dense[integer.Integer], error) {
		if n < 0 || n > MaxSphereDim {
			return nil, fmt.Errorf("%s: n=%d not in [0, %d]: %w", methodSphere, n, MaxSphereDim, ErrParameter)
		}
		if n == 0 {
			return assemble(methodSphere, []int{2}, cfg, nil)
		}
		ranks := make([]int, n+1)
		ranks[0], ranks[n] = 1, 1

		return assemble(methodSphere, ranks, cfg, nil)
	}
}

// Torus is the square with opposite sides identified: one vertex, two
// loops a and b, one face with boundary aba⁻¹b⁻¹.
func Torus() Constructor {
	return func(cfg config) ([]*matrix.Dense[integer.Integer], error) {
		return assemble(methodTorus, []int{1, 2, 1}, cfg, nil)
	}
}

// KleinBottle is the square glued along abab⁻¹, so ∂₂ = 2a.
func KleinBottle() Constructor {
	return func(cfg config) ([]*matrix.Dense[integer.Integer], error) {
		return assemble(methodKleinBottle, []int{1, 2, 1}, cfg, single(2, 0, 2))
	}
}

// ProjectivePlane is RP², a disc glued to a loop a along a².
func ProjectivePlane() Constructor {
	return func(cfg config) ([]*matrix.Dense[integer.Integer], error) {
		return assemble(methodProjectivePlane, []int{1, 1, 1}, cfg, single(2, 0, 2))
	}
}

// Lens is the lens space L(p, 1) with one cell in each dimension 0…3 and
// ∂₂ = p, so H₁ = Z/p. Lens(1) is S³.
func Lens(p int) Constructor {
	return func(cfg config) ([]*matrix.Dense[integer.Integer], error) {
		if p < 1 {
			return nil, fmt.Errorf("%s: p=%d < 1: %w", methodLens, p, ErrParameter)
		}

		return assemble(methodLens, []int{1, 1, 1, 1}, cfg, single(2, 0, int64(p)))
	}
}
