// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/homology/algebra"
	"github.com/katalvlaran/homology/matrix"
)

// SmithResult is the Smith normal form of an r×c matrix A.
//   - Form = U·A·V, zero except for Form[i][i] = Diagonal[i], i < Rank.
//   - Diagonal: the nonzero invariant factors d₁ | d₂ | … | d_Rank, each in
//     canonical form (non-negative over Z, 1 over a field).
//   - U (r×r) and V (c×c) are invertible over the ring.
type SmithResult[T any] struct {
	Diagonal []T
	Rank     int
	Form     *matrix.Dense[T]
	U        *matrix.Dense[T]
	V        *matrix.Dense[T]
}

// smithState bundles the working buffer and the accumulated transforms so
// every elementary operation is applied to A and mirrored on U or V.
type smithState[T any] struct {
	d    algebra.EuclideanDomain[T]
	a    *matrix.Dense[T] // working buffer, reused for every step
	u, v *matrix.Dense[T]
}

// Smith computes the Smith normal form of m; m is left untouched.
//
// Implementation:
//   - Stage 1 (Diagonalize): for t = 0, 1, …, move a minimal-norm nonzero
//     entry of the trailing submatrix A[t:, t:] to (t, t). Clear column t
//     below and row t to the right by division with remainder; if any
//     remainder survives, swap the smallest one into (t, t) and repeat.
//   - Stage 2 (Divisibility): for every i < j with dᵢ ∤ dⱼ, replace
//     (dᵢ, dⱼ) by (g, dᵢdⱼ/g) with g = gcd(dᵢ, dⱼ) through a unimodular 2×2
//     transform on rows i, j of U and columns i, j of V.
//   - Stage 3 (Normalize): make each dᵢ canonical and fold the unit into U.
//
// Behavior highlights:
//   - Every row operation on A is applied to U and every column operation to
//     V, so U·A·V = Form holds exactly on return.
//   - A single cloned buffer is reduced in place for all stages.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNotEuclidean.
//
// Complexity:
//   - Time O(min(r,c)·(r+c)·max(r,c)) ring operations per reduction pass.
//   - Space O(r² + c² + r·c) for U, V and the working buffer.
func Smith[T any](m *matrix.Dense[T]) (SmithResult[T], error) {
	d, err := domainOf(opSmith, m)
	if err != nil {
		return SmithResult[T]{}, err
	}
	rows, cols := m.Rows(), m.Cols()

	st := &smithState[T]{d: d, a: m.Clone()}
	if st.u, err = matrix.NewIdentity(m.Ring(), rows); err != nil {
		return SmithResult[T]{}, fmt.Errorf("%s: %w", opSmith, err)
	}
	if st.v, err = matrix.NewIdentity(m.Ring(), cols); err != nil {
		return SmithResult[T]{}, fmt.Errorf("%s: %w", opSmith, err)
	}

	rank, err := st.diagonalize()
	if err != nil {
		return SmithResult[T]{}, fmt.Errorf("%s: %w", opSmith, err)
	}
	if err = st.enforceDivisibility(rank); err != nil {
		return SmithResult[T]{}, fmt.Errorf("%s: %w", opSmith, err)
	}
	if err = st.normalize(rank); err != nil {
		return SmithResult[T]{}, fmt.Errorf("%s: %w", opSmith, err)
	}

	diag := make([]T, rank)
	for i := range diag {
		diag[i] = entry(st.a, i, i)
	}

	return SmithResult[T]{Diagonal: diag, Rank: rank, Form: st.a, U: st.u, V: st.v}, nil
}

// diagonalize runs Stage 1 and returns the number of nonzero pivots.
func (st *smithState[T]) diagonalize() (int, error) {
	rows, cols := st.a.Rows(), st.a.Cols()
	t := 0
	for ; t < rows && t < cols; t++ {
		pi, pj, ok := st.minNormEntry(t)
		if !ok {
			break // trailing submatrix is zero
		}
		if err := st.swapRows(t, pi); err != nil {
			return 0, err
		}
		if err := st.swapCols(t, pj); err != nil {
			return 0, err
		}

		for {
			clean, err := st.clearCross(t)
			if err != nil {
				return 0, err
			}
			if clean {
				break
			}
			if err = st.pullSmallestRemainder(t); err != nil {
				return 0, err
			}
		}
	}

	return t, nil
}

// minNormEntry locates the minimal-norm nonzero entry of A[t:, t:], scanning
// row-major so ties go to the topmost, then leftmost entry.
func (st *smithState[T]) minNormEntry(t int) (int, int, bool) {
	bi, bj := -1, -1
	var best T
	for i := t; i < st.a.Rows(); i++ {
		for j := t; j < st.a.Cols(); j++ {
			v := entry(st.a, i, j)
			if algebra.IsZero[T](st.d, v) {
				continue
			}
			if bi < 0 || st.d.CompareNorm(v, best) < 0 {
				bi, bj, best = i, j, v
			}
		}
	}

	return bi, bj, bi >= 0
}

// clearCross reduces column t below and row t right of the pivot (t, t).
// It reports whether both are now entirely zero.
func (st *smithState[T]) clearCross(t int) (bool, error) {
	d := st.d
	pivot := entry(st.a, t, t)
	clean := true

	for i := t + 1; i < st.a.Rows(); i++ {
		v := entry(st.a, i, t)
		if algebra.IsZero[T](d, v) {
			continue
		}
		q, r, err := d.DivMod(v, pivot)
		if err != nil {
			return false, err
		}
		k := d.Neg(q)
		if err = st.a.AddRowMultiple(i, t, k); err != nil {
			return false, err
		}
		if err = st.u.AddRowMultiple(i, t, k); err != nil {
			return false, err
		}
		if !algebra.IsZero[T](d, r) {
			clean = false
		}
	}

	for j := t + 1; j < st.a.Cols(); j++ {
		v := entry(st.a, t, j)
		if algebra.IsZero[T](d, v) {
			continue
		}
		q, r, err := d.DivMod(v, pivot)
		if err != nil {
			return false, err
		}
		k := d.Neg(q)
		if err = st.a.AddColMultiple(j, t, k); err != nil {
			return false, err
		}
		if err = st.v.AddColMultiple(j, t, k); err != nil {
			return false, err
		}
		if !algebra.IsZero[T](d, r) {
			clean = false
		}
	}

	return clean, nil
}

// pullSmallestRemainder swaps the minimal-norm nonzero entry of column t
// (below the pivot) or row t (right of the pivot) into (t, t).
func (st *smithState[T]) pullSmallestRemainder(t int) error {
	d := st.d
	bi, bj := -1, -1
	var best T
	for i := t + 1; i < st.a.Rows(); i++ {
		v := entry(st.a, i, t)
		if !algebra.IsZero[T](d, v) && (bi < 0 || d.CompareNorm(v, best) < 0) {
			bi, bj, best = i, t, v
		}
	}
	for j := t + 1; j < st.a.Cols(); j++ {
		v := entry(st.a, t, j)
		if !algebra.IsZero[T](d, v) && (bi < 0 || d.CompareNorm(v, best) < 0) {
			bi, bj, best = t, j, v
		}
	}
	if bi < 0 {
		return nil
	}
	if bi != t {
		return st.swapRows(t, bi)
	}

	return st.swapCols(t, bj)
}

// enforceDivisibility runs Stage 2 on the leading rank×rank diagonal block.
//
// For a = dᵢ, b = dⱼ with g = s·a + t·b, α = a/g and β = b/g:
//
//	L = [[s, t], [-β, α]],  R = [[1, -t·β], [1, s·α]]
//
// both have determinant s·α + t·β = 1 and L·diag(a, b)·R = diag(g, α·b).
func (st *smithState[T]) enforceDivisibility(rank int) error {
	d := st.d
	one := d.One()
	for i := 0; i < rank; i++ {
		for j := i + 1; j < rank; j++ {
			a, b := entry(st.a, i, i), entry(st.a, j, j)
			if algebra.Divides(d, a, b) {
				continue
			}
			bz, err := algebra.ExtendedGCD(d, a, b)
			if err != nil {
				return err
			}
			alpha, _, err := d.DivMod(a, bz.G)
			if err != nil {
				return err
			}
			beta, _, err := d.DivMod(b, bz.G)
			if err != nil {
				return err
			}
			if err = st.u.CombineRows(i, j, bz.X, bz.Y, d.Neg(beta), alpha); err != nil {
				return err
			}
			if err = st.v.CombineCols(i, j, one, d.Neg(d.Mul(bz.Y, beta)), one, d.Mul(bz.X, alpha)); err != nil {
				return err
			}
			_ = st.a.Set(i, i, bz.G)
			_ = st.a.Set(j, j, d.Mul(alpha, b))
		}
	}

	return nil
}

// normalize runs Stage 3: dᵢ·u = canonical(dᵢ), and row i of U absorbs u.
func (st *smithState[T]) normalize(rank int) error {
	d := st.d
	for i := 0; i < rank; i++ {
		c, u := d.Normalize(entry(st.a, i, i))
		if d.Equal(u, d.One()) {
			continue
		}
		if err := st.u.ScaleRow(i, u); err != nil {
			return err
		}
		_ = st.a.Set(i, i, c)
	}

	return nil
}

func (st *smithState[T]) swapRows(i, j int) error {
	if i == j {
		return nil
	}
	if err := st.a.SwapRows(i, j); err != nil {
		return err
	}

	return st.u.SwapRows(i, j)
}

func (st *smithState[T]) swapCols(i, j int) error {
	if i == j {
		return nil
	}
	if err := st.a.SwapCols(i, j); err != nil {
		return err
	}

	return st.v.SwapCols(i, j)
}
