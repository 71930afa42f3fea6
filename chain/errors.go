// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBoundary indicates a boundary map that is nil, has a shape
	// incompatible with its neighbour, or composes with it to a nonzero map.
	// The failing dimension is attached when the error is wrapped.
	ErrInvalidBoundary = errors.New("chain: invalid boundary")

	// ErrNilComplex is returned by Compute for a nil complex.
	ErrNilComplex = errors.New("chain: nil complex")
)

// boundaryErrorf wraps ErrInvalidBoundary with the dimension and a reason.
func boundaryErrorf(dim int, format string, args ...any) error {
	return fmt.Errorf("chain: ∂%d: %s: %w", dim, fmt.Sprintf(format, args...), ErrInvalidBoundary)
}
