package ops_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homology/field"
	"github.com/katalvlaran/homology/integer"
	"github.com/katalvlaran/homology/internal/sample"
	"github.com/katalvlaran/homology/matrix"
	"github.com/katalvlaran/homology/matrix/ops"
)

// unimodular returns an n×n integer matrix of determinant ±1 built from
// random row swaps and row additions applied to the identity.
func unimodular(t *testing.T, s *sample.Sampler, n int) *matrix.Dense[integer.Integer] {
	t.Helper()
	e, err := matrix.NewIdentity[integer.Integer](integer.Z, n)
	require.NoError(t, err)
	if n < 2 {
		return e
	}
	for range 3 * n {
		i, j := s.Intn(n), s.Intn(n)
		if i == j {
			continue
		}
		if s.Intn(3) == 0 {
			require.NoError(t, e.SwapRows(i, j))
		} else {
			k := integer.FromInt64(int64(s.Intn(7) - 3))
			require.NoError(t, e.AddRowMultiple(i, j, k))
		}
	}

	return e
}

// requireInvertibleOverZ asserts that u has an integer inverse: its Smith
// form is the identity.
func requireInvertibleOverZ(t *testing.T, u *matrix.Dense[integer.Integer]) {
	t.Helper()
	res, err := ops.Smith(u)
	require.NoError(t, err)
	require.Equal(t, u.Rows(), res.Rank)
	for _, d := range res.Diagonal {
		require.Equal(t, "1", d.String())
	}
}

func TestRankInvariantUnderRowTransforms(t *testing.T) {
	s := sample.New([]byte("rank-invariance"))
	z3 := field.MustNew(3)
	for trial := 0; trial < 40; trial++ {
		rows, cols := s.Intn(6)+1, s.Intn(6)+1
		t.Run(fmt.Sprintf("%dx%d#%d", rows, cols, trial), func(t *testing.T) {
			a, err := s.IntegerMatrix(rows, cols, 4)
			require.NoError(t, err)
			e := unimodular(t, s, rows)
			requireInvertibleOverZ(t, e)

			ea, err := matrix.Mul[integer.Integer](e, a)
			require.NoError(t, err)
			want, err := ops.Rank(a)
			require.NoError(t, err)
			got, err := ops.Rank(ea)
			require.NoError(t, err)
			require.Equal(t, want, got)

			// The same transform stays invertible mod 3.
			a3, err := matrix.Map(a, z3, z3.FromInteger)
			require.NoError(t, err)
			ea3, err := matrix.Map(ea, z3, z3.FromInteger)
			require.NoError(t, err)
			want, err = ops.Rank(a3)
			require.NoError(t, err)
			got, err = ops.Rank(ea3)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestSmithOnSampledMatrices(t *testing.T) {
	s := sample.New([]byte("smith-transforms"))
	for trial := 0; trial < 30; trial++ {
		rows, cols := s.Intn(5)+1, s.Intn(5)+1
		t.Run(fmt.Sprintf("%dx%d#%d", rows, cols, trial), func(t *testing.T) {
			a, err := s.IntegerMatrix(rows, cols, 9)
			require.NoError(t, err)
			res, err := ops.Smith(a)
			require.NoError(t, err)
			requireSmithInvariants(t, a, res)
			requireInvertibleOverZ(t, res.U)
			requireInvertibleOverZ(t, res.V)

			rank, err := ops.Rank(a)
			require.NoError(t, err)
			require.Equal(t, rank, res.Rank)
		})
	}
}
