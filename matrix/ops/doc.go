// Package ops provides exact reductions of matrices over a Euclidean domain.
//
// 🚀 What lives here?
//
//   - RowEchelon / RowEchelonInPlace / Rank - Gaussian elimination generalized
//     to Euclidean domains: instead of dividing by the pivot, rows are reduced
//     by repeated division with remainder until only the pivot survives in its
//     column. Over a field this is ordinary elimination; over Z it never leaves
//     the integers.
//   - Smith - Smith normal form U·A·V = diag(d₁, …, d_r, 0, …) with unimodular
//     transforms and the full divisibility chain d₁ | d₂ | … | d_r.
//
// The coefficient ring of the input matrix must implement
// algebra.EuclideanDomain; otherwise the functions return ErrNotEuclidean.
//
// ⚙️ Pivoting
//
// Both algorithms always choose a pivot of minimal Euclidean norm among the
// candidates (ties go to the topmost, then leftmost entry). A reduction step
// either clears the pivot's column (and row) or leaves a remainder of strictly
// smaller norm, which becomes the next pivot; this bounds the number of steps
// by the norm of the starting pivot.
//
// 🧵 Concurrency & ownership
//
// Nothing is shared between calls. RowEchelonInPlace mutates its argument;
// every other function works on a private clone and leaves the input intact.
package ops
