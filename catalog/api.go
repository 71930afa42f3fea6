// SPDX-License-Identifier: MIT
//
// api.go - entry points of the catalog package.
//
// Contract:
//   - Constructors validate their parameters when run and return ErrParameter
//     wrapped with the method name; they never panic.
//   - Option constructors panic on meaningless input.
//   - Same constructor and options ⇒ identical matrices, cell for cell.

package catalog

import (
	"fmt"

	"github.com/katalvlaran/homology/chain"
	"github.com/katalvlaran/homology/integer"
	"github.com/katalvlaran/homology/matrix"
)

// Constructor produces the integer boundary matrices ∂₀…∂ₙ of a complex
// under the resolved configuration.
type Constructor func(cfg config) ([]*matrix.Dense[integer.Integer], error)

// Boundaries runs con with opts applied and returns its boundary matrices.
// The caller owns the result.
//
// Errors:
//   - ErrParameter from the constructor, wrapped with its method name.
func Boundaries(con Constructor, opts ...Option) ([]*matrix.Dense[integer.Integer], error) {
	cfg := newConfig(opts...)
	bs, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("Boundaries: %w", err)
	}

	return bs, nil
}

// Build runs con and wraps its matrices in a chain complex, passing the
// options given with WithChainOptions to chain.New.
//
// Errors:
//   - as Boundaries, plus any error of chain.New.
func Build(con Constructor, opts ...Option) (*chain.Complex[integer.Integer], error) {
	cfg := newConfig(opts...)
	bs, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return chain.New(bs, cfg.chainOpts...)
}
