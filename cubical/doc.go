// Package cubical builds cubical complexes from unit cubes and turns them into
// chain complexes.
//
// What:
//
//   - Interval is either a degenerate point [l] or a unit interval [l, l+1].
//   - Cell is a product of intervals; its dimension is the number of
//     non-degenerate factors, its ambient dimension the number of factors.
//   - Complex stores cells per dimension and is closed under taking faces:
//     AddCell inserts every face recursively.
//   - NewFromVoxels and NewFromGrid build 3D complexes from voxel lists and
//     occupancy grids (cells with value ≥ threshold are solid).
//
// Boundary convention:
//
// For the m-th non-degenerate interval [l, l+1] of a cell (m counted from 0),
// the face replacing it by [l+1] carries sign (-1)^m and the face replacing it
// by [l] carries -(-1)^m. With this convention ∂∘∂ = 0.
//
// Determinism:
//
// Cells(dim) and BoundaryMatrices order cells by Compare, so matrix rows and
// columns are stable across runs regardless of insertion order.
//
// Complexity:
//
//   - AddVoxel: O(3^d) map operations for a d-dimensional cube (27 cells in 3D).
//   - BoundaryMatrices: O(Σ cₙ log cₙ) for sorting plus O(Σ cₙ₋₁·cₙ) to
//     allocate dense matrices.
//
// Errors:
//
//   - ErrEmptyCell, ErrAmbientMismatch, ErrBadBounds, ErrEmptyGrid,
//     ErrNonRectangular.
package cubical
