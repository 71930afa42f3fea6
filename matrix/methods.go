// SPDX-License-Identifier: MIT

// Package matrix provides universal ring operations on any Matrix
// implementation: element-wise addition and subtraction, matrix
// multiplication and transpose. All functions validate first and return
// wrapped sentinels on shape mismatches.
package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a new matrix containing the element-wise sum a + b.
//
// Implementation:
//   - Stage 1: nil checks and shape match.
//   - Stage 2: fast path on two *Dense, else a generic At loop.
//
// Complexity: O(r·c) ring additions.
func Add[T any](a, b Matrix[T]) (*Dense[T], error) {
	return elementwise(opAdd, a, b, func(x, y T) T { return a.Ring().Add(x, y) })
}

// Sub returns a new matrix containing the element-wise difference a - b.
// Complexity: O(r·c) ring subtractions.
func Sub[T any](a, b Matrix[T]) (*Dense[T], error) {
	return elementwise(opSub, a, b, func(x, y T) T { return a.Ring().Sub(x, y) })
}

func elementwise[T any](op string, a, b Matrix[T], fn func(x, y T) T) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(a.Ring(), rows, cols)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	// Fast path for two Dense matrices: walk the backing slices directly.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range res.data {
				res.data[idx] = fn(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	var av, bv T
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ = a.At(i, j) // safe: bounds ensured
			bv, _ = b.At(i, j) // safe: same shape
			res.data[i*cols+j] = fn(av, bv)
		}
	}

	return res, nil
}

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: nil checks, then a.Cols() == b.Rows().
//   - Stage 2: i-k-j loop so the inner loop streams rows of b; zero entries of
//     a are skipped, which pays off on sparse boundary matrices.
//
// Complexity: O(n·m·p) ring operations for (n×m)·(m×p).
func Mul[T any](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ring := a.Ring()
	n, m, p := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(ring, n, p)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	zero := ring.Zero()

	var aik, bkj T
	for i := 0; i < n; i++ {
		for k := 0; k < m; k++ {
			aik, _ = a.At(i, k)
			if ring.Equal(aik, zero) {
				continue
			}
			for j := 0; j < p; j++ {
				bkj, _ = b.At(k, j)
				res.data[i*p+j] = ring.Add(res.data[i*p+j], ring.Mul(aik, bkj))
			}
		}
	}

	return res, nil
}

// Transpose returns a new c×r matrix with entries mirrored across the diagonal.
// Complexity: O(r·c).
func Transpose[T any](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(m.Ring(), cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var v T
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j)
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}
