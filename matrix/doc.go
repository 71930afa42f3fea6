// Package matrix provides dense matrices over an arbitrary coefficient ring.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix storing its entries in one flat slice and
//     carrying the algebra.Ring[T] that gives the entries meaning.
//   - Bounds-checked access (At/Set) that returns ErrOutOfRange instead of
//     panicking, with the method and coordinates attached to the error.
//   - Ring arithmetic: Add, Sub, Mul, Transpose, Equal, IsZero.
//   - Lazy iteration over entries (Values, Backward, All) as iter.Seq values.
//   - In-place elementary row and column operations, the building blocks of
//     the reductions in matrix/ops.
//
// Zero-sized matrices (0×n, n×0) are legal and common: the boundary map out of
// dimension zero of a chain complex has no rows.
//
// Because entries are exact, there is no numeric policy and no tolerance;
// equality is the ring's Equal.
//
// See matrix/ops for row-echelon reduction and Smith normal form.
package matrix
