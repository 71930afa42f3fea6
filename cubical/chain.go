// SPDX-License-Identifier: MIT

package cubical

import (
	"fmt"

	"github.com/katalvlaran/homology/algebra"
	"github.com/katalvlaran/homology/chain"
	"github.com/katalvlaran/homology/matrix"
)

// BoundaryMatrices returns ∂₀, …, ∂_Dim of c over ring. ∂₀ has zero rows, so
// the resulting chain complex computes unreduced homology. Rows and columns
// follow the order of Cells.
//
// An empty complex yields an empty slice.
func BoundaryMatrices[T any](c *Complex, ring algebra.Ring[T]) ([]*matrix.Dense[T], error) {
	if c == nil || c.Dim() < 0 {
		return nil, nil
	}
	if ring == nil {
		return nil, matrix.ErrNilRing
	}
	one, minusOne := ring.One(), ring.Neg(ring.One())

	out := make([]*matrix.Dense[T], c.Dim()+1)
	prev := c.Cells(0)
	d0, err := matrix.NewDense(ring, 0, len(prev))
	if err != nil {
		return nil, fmt.Errorf("cubical: ∂0: %w", err)
	}
	out[0] = d0

	for dim := 1; dim <= c.Dim(); dim++ {
		rowOf := make(map[string]int, len(prev))
		for i, cell := range prev {
			rowOf[cell.key()] = i
		}
		cur := c.Cells(dim)
		m, err := matrix.NewDense(ring, len(prev), len(cur))
		if err != nil {
			return nil, fmt.Errorf("cubical: ∂%d: %w", dim, err)
		}
		for j, cell := range cur {
			for _, f := range cell.Boundary() {
				v := one
				if f.Sign < 0 {
					v = minusOne
				}
				if err = m.Set(rowOf[f.Cell.key()], j, v); err != nil {
					return nil, fmt.Errorf("cubical: ∂%d: %w", dim, err)
				}
			}
		}
		out[dim] = m
		prev = cur
	}

	return out, nil
}

// ChainComplex builds the cellular chain complex of c over ring. Options are
// passed to chain.New; boundaries of a face-closed complex always satisfy
// ∂∘∂ = 0, so chain.WithUnchecked is safe here.
func ChainComplex[T any](c *Complex, ring algebra.Ring[T], opts ...chain.Option) (*chain.Complex[T], error) {
	bs, err := BoundaryMatrices(c, ring)
	if err != nil {
		return nil, err
	}

	return chain.New(bs, opts...)
}
