// SPDX-License-Identifier: MIT

// Package matrix: public types.
// Errors live in errors.go, validators in validators.go.
package matrix

import "github.com/katalvlaran/homology/algebra"

// Index addresses one entry of a matrix.
type Index struct {
	Row int // 0-based row
	Col int // 0-based column
}

// Matrix is a two-dimensional mutable array of ring elements.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T any] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// Ring returns the coefficient ring of the entries.
	Ring() algebra.Ring[T]
}
