// SPDX-License-Identifier: MIT

package cubical

import "errors"

var (
	// ErrEmptyCell indicates a cell built from zero intervals.
	ErrEmptyCell = errors.New("cubical: cell must have at least one interval")
	// ErrAmbientMismatch indicates a cell whose ambient dimension differs from
	// the cells already in the complex.
	ErrAmbientMismatch = errors.New("cubical: ambient dimension mismatch")
	// ErrBadBounds indicates a clipping box with lower ≥ upper on some axis.
	ErrBadBounds = errors.New("cubical: lower bound must be below upper bound")
	// ErrEmptyGrid indicates an occupancy grid with no layers, rows or columns.
	ErrEmptyGrid = errors.New("cubical: grid must have at least one layer, row and column")
	// ErrNonRectangular indicates layers or rows of differing lengths.
	ErrNonRectangular = errors.New("cubical: all layers and rows must have the same length")
)
