// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/homology/algebra"
	"github.com/katalvlaran/homology/matrix"
)

// RowEchelonResult is the outcome of RowEchelon.
//   - Echelon: each nonzero row's leading entry lies strictly right of the
//     leading entry of the row above; rows Rank.. are zero.
//   - Rank: number of nonzero rows of Echelon.
type RowEchelonResult[T any] struct {
	Echelon *matrix.Dense[T]
	Rank    int
}

// RowEchelon reduces a copy of m to row echelon form; m is left untouched.
// The echelon matrix is identical to what RowEchelonInPlace leaves behind.
//
// Complexity: see RowEchelonInPlace, plus O(r·c) for the copy.
func RowEchelon[T any](m *matrix.Dense[T]) (RowEchelonResult[T], error) {
	if m == nil {
		return RowEchelonResult[T]{}, fmt.Errorf("%s: %w", opRowEchelon, matrix.ErrNilMatrix)
	}
	work := m.Clone()
	rank, err := RowEchelonInPlace(work)
	if err != nil {
		return RowEchelonResult[T]{}, err
	}

	return RowEchelonResult[T]{Echelon: work, Rank: rank}, nil
}

// Rank returns the rank of m without modifying it.
func Rank[T any](m *matrix.Dense[T]) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("%s: %w", opRank, matrix.ErrNilMatrix)
	}

	return RowEchelonInPlace(m.Clone())
}

// RowEchelonInPlace reduces m to row echelon form and returns its rank.
//
// Implementation:
//   - Stage 1: for each column j, with pivot row i, select the minimal-norm
//     nonzero entry among rows i.. (ties → topmost) and swap it into row i.
//     A column with no candidate is skipped.
//   - Stage 2: for every row k > i, subtract q·row[i] where
//     (q, r) = DivMod(m[k][j], m[i][j]); only the remainder r stays in row k.
//   - Stage 3: if any remainder is nonzero, go back to Stage 1 on the same
//     column (the new pivot has strictly smaller norm); else advance i.
//
// Over a field every remainder is zero, so each column costs a single pass.
//
// Complexity:
//   - Time O(r·c·min(r,c)) ring operations per pass; over Z the number of
//     passes per column is bounded by the Euclidean step count of its entries.
//   - Space O(1) beyond m.
func RowEchelonInPlace[T any](m *matrix.Dense[T]) (int, error) {
	d, err := domainOf(opRowEchelon, m)
	if err != nil {
		return 0, err
	}
	rows, cols := m.Rows(), m.Cols()

	i := 0 // current pivot row
	for j := 0; j < cols && i < rows; j++ {
		for {
			p, ok := minNormInColumn(d, m, j, i)
			if !ok {
				break // column already clear below row i
			}
			if err = m.SwapRows(i, p); err != nil {
				return 0, fmt.Errorf("%s: %w", opRowEchelon, err)
			}
			pivot := entry(m, i, j)

			clean := true
			for k := i + 1; k < rows; k++ {
				v := entry(m, k, j)
				if algebra.IsZero[T](d, v) {
					continue
				}
				q, r, derr := d.DivMod(v, pivot)
				if derr != nil {
					return 0, fmt.Errorf("%s: %w", opRowEchelon, derr)
				}
				if err = m.AddRowMultiple(k, i, d.Neg(q)); err != nil {
					return 0, fmt.Errorf("%s: %w", opRowEchelon, err)
				}
				if !algebra.IsZero[T](d, r) {
					clean = false
				}
			}
			if clean {
				i++

				break
			}
		}
	}

	return i, nil
}

// minNormInColumn returns the row of the minimal-norm nonzero entry of
// column j among rows from.., preferring the topmost on ties.
func minNormInColumn[T any](d algebra.EuclideanDomain[T], m *matrix.Dense[T], j, from int) (int, bool) {
	best := -1
	var bestV T
	for k := from; k < m.Rows(); k++ {
		v := entry(m, k, j)
		if algebra.IsZero[T](d, v) {
			continue
		}
		if best < 0 || d.CompareNorm(v, bestV) < 0 {
			best, bestV = k, v
		}
	}

	return best, best >= 0
}

// entry reads an in-range element; callers guarantee the bounds.
func entry[T any](m *matrix.Dense[T], i, j int) T {
	v, _ := m.At(i, j)

	return v
}
