// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"

	"github.com/katalvlaran/homology/integer"
	"github.com/katalvlaran/homology/matrix"
)

// fillFn writes the nonzero entries of ∂n, n ≥ 1, into the zero matrix d.
type fillFn func(n int, d *matrix.Dense[integer.Integer]) error

// assemble allocates ∂₀…∂ₖ for chain groups of the given ranks, where
// ∂n is ranks[n-1]×ranks[n], and lets fill set the nonzero entries. ∂₀ has
// no rows unless cfg asks for the reduced complex.
func assemble(method string, ranks []int, cfg config, fill fillFn) ([]*matrix.Dense[integer.Integer], error) {
	bs := make([]*matrix.Dense[integer.Integer], len(ranks))
	for n, cols := range ranks {
		rows := 0
		switch {
		case n > 0:
			rows = ranks[n-1]
		case cfg.reduced:
			rows = 1
		}
		d, err := matrix.NewDense[integer.Integer](integer.Z, rows, cols)
		if err != nil {
			return nil, fmt.Errorf("%s: ∂%d: %w", method, n, err)
		}
		if n == 0 && cfg.reduced {
			for j := range cols {
				if err = d.Set(0, j, integer.FromInt64(1)); err != nil {
					return nil, fmt.Errorf("%s: augmentation: %w", method, err)
				}
			}
		}
		if n > 0 && fill != nil {
			if err = fill(n, d); err != nil {
				return nil, fmt.Errorf("%s: ∂%d: %w", method, n, err)
			}
		}
		bs[n] = d
	}

	return bs, nil
}

// single sets the one entry of the 1×1 or k×1 attaching map ∂n.
func single(dim, row int, v int64) fillFn {
	return func(n int, d *matrix.Dense[integer.Integer]) error {
		if n != dim {
			return nil
		}

		return d.Set(row, 0, integer.FromInt64(v))
	}
}
