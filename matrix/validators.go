// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// ValidateDims returns ErrInvalidDimensions when rows or cols is negative or
// when rows*cols does not fit in an int.
func ValidateDims(rows, cols int) error {
	if rows < 0 || cols < 0 || (cols != 0 && rows > math.MaxInt/cols) {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}

// ValidateNotNil returns ErrNilMatrix if m is nil (including a typed nil *Dense).
func ValidateNotNil[T any](m Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense[T]); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape returns ErrDimensionMismatch unless a and b have equal shapes.
func ValidateSameShape[T any](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible returns ErrDimensionMismatch unless a.Cols() == b.Rows().
func ValidateMulCompatible[T any](a, b Matrix[T]) error {
	if a.Cols() != b.Rows() {
		return fmt.Errorf("%dx%d · %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}
