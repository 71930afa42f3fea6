// SPDX-License-Identifier: MIT
//
// impl_simplex.go - the standard n-simplex and its boundary sphere.
//
// Faces are vertex sets stored as bitmasks and ordered lexicographically
// within each dimension. The i-th face of (v₀ < … < vₖ) drops vᵢ and carries
// the sign (-1)ⁱ.
//
// Complexity: O(2ⁿ⁺¹·n) entries written, matrices of C(n+1, k)×C(n+1, k+1).

package catalog

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/homology/integer"
	"github.com/katalvlaran/homology/matrix"
)

const (
	methodSimplex         = "Simplex"
	methodSimplexBoundary = "SimplexBoundary"

	// MaxSimplexDim bounds Simplex(n) and SimplexBoundary(n).
	MaxSimplexDim = 10
)

// Simplex is the full n-simplex, a contractible complex with every face of
// the vertex set {0, …, n}.
func Simplex(n int) Constructor {
	return func(cfg config) ([]*matrix.Dense[integer.Integer], error) {
		if n < 0 || n > MaxSimplexDim {
			return nil, fmt.Errorf("%s: n=%d not in [0, %d]: %w", methodSimplex, n, MaxSimplexDim, ErrParameter)
		}

		return simplicial(methodSimplex, n+1, n, cfg)
	}
}

// SimplexBoundary is the (n-1)-skeleton of the n-simplex, a triangulated
// sphere Sⁿ⁻¹.
func SimplexBoundary(n int) Constructor {
	return func(cfg config) ([]*matrix.Dense[integer.Integer], error) {
		if n < 1 || n > MaxSimplexDim {
			return nil, fmt.Errorf("%s: n=%d not in [1, %d]: %w", methodSimplexBoundary, n, MaxSimplexDim, ErrParameter)
		}

		return simplicial(methodSimplexBoundary, n+1, n-1, cfg)
	}
}

// simplicial builds the faces of dimension 0…top on the given number of
// vertices.
func simplicial(method string, vertices, top int, cfg config) ([]*matrix.Dense[integer.Integer], error) {
	faces := make([][]uint32, top+1)
	index := make([]map[uint32]int, top+1)
	for k := range faces {
		faces[k] = combinations(vertices, k+1)
		index[k] = make(map[uint32]int, len(faces[k]))
		for i, f := range faces[k] {
			index[k][f] = i
		}
	}
	ranks := make([]int, top+1)
	for k, fs := range faces {
		ranks[k] = len(fs)
	}

	pos, neg := integer.FromInt64(1), integer.FromInt64(-1)

	return assemble(method, ranks, cfg, func(n int, d *matrix.Dense[integer.Integer]) error {
		for j, f := range faces[n] {
			i := 0
			for rest := f; rest != 0; rest &= rest - 1 {
				v := rest & -rest
				sign := pos
				if i%2 == 1 {
					sign = neg
				}
				if err := d.Set(index[n-1][f&^v], j, sign); err != nil {
					return err
				}
				i++
			}
		}

		return nil
	})
}

// combinations lists the k-element subsets of {0, …, n-1} as bitmasks in
// lexicographic order of their sorted elements.
func combinations(n, k int) []uint32 {
	var out []uint32
	var walk func(start int, set uint32)
	walk = func(start int, set uint32) {
		if bits.OnesCount32(set) == k {
			out = append(out, set)

			return
		}
		for v := start; v < n; v++ {
			walk(v+1, set|1<<uint(v))
		}
	}
	walk(0, 0)

	return out
}
