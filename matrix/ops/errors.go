// SPDX-License-Identifier: MIT

package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/homology/algebra"
	"github.com/katalvlaran/homology/matrix"
)

// ErrNotEuclidean is returned when the matrix ring lacks division with remainder.
var ErrNotEuclidean = errors.New("ops: coefficient ring is not a Euclidean domain")

// Operation tags for error wrapping.
const (
	opRowEchelon = "RowEchelon"
	opRank       = "Rank"
	opSmith      = "Smith"
)

// domainOf validates m and extracts its Euclidean structure.
func domainOf[T any](op string, m *matrix.Dense[T]) (algebra.EuclideanDomain[T], error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", op, matrix.ErrNilMatrix)
	}
	d, ok := m.Ring().(algebra.EuclideanDomain[T])
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNotEuclidean)
	}

	return d, nil
}
