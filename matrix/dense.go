// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/homology/algebra"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxCol      = "Col"
	ctxSwapRows = "SwapRows"
	ctxSwapCols = "SwapCols"
	ctxAddRow   = "AddRowMultiple"
	ctxAddCol   = "AddColMultiple"
	ctxScaleRow = "ScaleRow"
	ctxCombRows = "CombineRows"
	ctxCombCols = "CombineCols"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices,
// e.g. "Dense.At(3,0): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the ring R.
//   - r,c hold dimensions (rows, cols), both ≥ 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - ring interprets the entries; every arithmetic step goes through it.
type Dense[T any] struct {
	r, c int             // row and column counts
	data []T             // contiguous row-major storage (len == r*c)
	ring algebra.Ring[T] // coefficient structure shared by all entries
}

// Compile-time assertion for interface conformance.
var _ Matrix[int] = (*Dense[int])(nil)

// NewDense creates an r×c zero matrix over ring.
//
// Implementation:
//   - Stage 1: validate ring != nil, rows, cols ≥ 0 and rows*cols within int.
//   - Stage 2: allocate the flat buffer and fill it with ring.Zero().
//
// Errors:
//   - ErrNilRing, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](ring algebra.Ring[T], rows, cols int) (*Dense[T], error) {
	if ring == nil {
		return nil, ErrNilRing
	}
	if err := ValidateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("NewDense: %w", err)
	}
	buf := make([]T, rows*cols)
	zero := ring.Zero()
	for i := range buf {
		buf[i] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: buf, ring: ring}, nil
}

// NewFromValues builds a rows×cols matrix from row-major values.
// The slice is copied; the caller keeps ownership of values.
//
// Errors:
//   - ErrNilRing, ErrInvalidDimensions.
//   - ErrDimensionMismatch when len(values) != rows*cols.
func NewFromValues[T any](ring algebra.Ring[T], rows, cols int, values []T) (*Dense[T], error) {
	if ring == nil {
		return nil, ErrNilRing
	}
	if err := ValidateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("NewFromValues: %w", err)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("NewFromValues(%d,%d): got %d values: %w",
			rows, cols, len(values), ErrDimensionMismatch)
	}
	buf := make([]T, len(values))
	copy(buf, values)

	return &Dense[T]{r: rows, c: cols, data: buf, ring: ring}, nil
}

// NewFromRows builds a matrix from a slice of equally long rows.
// An empty slice yields a 0×0 matrix.
//
// Errors:
//   - ErrNilRing.
//   - ErrDimensionMismatch for ragged rows.
func NewFromRows[T any](ring algebra.Ring[T], rows [][]T) (*Dense[T], error) {
	if ring == nil {
		return nil, ErrNilRing
	}
	if len(rows) == 0 {
		return &Dense[T]{ring: ring}, nil
	}
	cols := len(rows[0])
	buf := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d entries, want %d: %w",
				i, len(row), cols, ErrDimensionMismatch)
		}
		buf = append(buf, row...)
	}

	return &Dense[T]{r: len(rows), c: cols, data: buf, ring: ring}, nil
}

// NewIdentity returns the n×n identity matrix over ring.
func NewIdentity[T any](ring algebra.Ring[T], n int) (*Dense[T], error) {
	m, err := NewDense(ring, n, n)
	if err != nil {
		return nil, err
	}
	one := ring.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Map converts m entry by entry into a matrix over another ring.
// Use it to reduce integer data modulo p, for example.
func Map[S, T any](m *Dense[S], ring algebra.Ring[T], fn func(S) T) (*Dense[T], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if ring == nil {
		return nil, ErrNilRing
	}
	buf := make([]T, len(m.data))
	for i, v := range m.data {
		buf[i] = fn(v)
	}

	return &Dense[T]{r: m.r, c: m.c, data: buf, ring: ring}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// Ring returns the coefficient ring.
func (m *Dense[T]) Ring() algebra.Ring[T] { return m.ring }

// inRange reports whether (row, col) addresses an entry.
func (m *Dense[T]) inRange(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At retrieves the element at (row, col).
//
// Errors:
//   - ErrOutOfRange wrapped as "Dense.At(row,col): ...".
func (m *Dense[T]) At(row, col int) (T, error) {
	if !m.inRange(row, col) {
		var zero T

		return zero, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col).
//
// Errors:
//   - ErrOutOfRange wrapped as "Dense.Set(row,col): ...".
func (m *Dense[T]) Set(row, col int, v T) error {
	if !m.inRange(row, col) {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy sharing only the (stateless or immutable) ring.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf, ring: m.ring}
}

// Equal reports whether o has the same shape and ring-equal entries.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.ring.Equal(m.data[i], o.data[i]) {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry equals the ring's zero.
// Matrices with no entries are zero.
func (m *Dense[T]) IsZero() bool {
	zero := m.ring.Zero()
	for _, v := range m.data {
		if !m.ring.Equal(v, zero) {
			return false
		}
	}

	return true
}

// String renders one bracketed, comma-separated line per row,
// e.g. "[1, 2]\n[3, 4]\n". A matrix with no rows renders as "".
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
