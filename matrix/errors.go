// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public operations return these sentinels (possibly wrapped with the
// method and coordinates that failed) and callers match them via errors.Is.
// Panics are reserved for Must* helpers.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates a negative row or column count, or a
	// shape whose element count overflows int.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set and the elementary operations return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes: Add/Sub of different
	// shapes, Mul where a.Cols != b.Rows, or a value slice of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilRing indicates that a constructor was given no coefficient ring.
	ErrNilRing = errors.New("matrix: nil coefficient ring")
)
