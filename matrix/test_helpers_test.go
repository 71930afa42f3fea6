package matrix_test

import (
	"testing"

	"github.com/katalvlaran/homology/integer"
	"github.com/katalvlaran/homology/matrix"
	"github.com/stretchr/testify/require"
)

// zmat builds a rows×cols integer matrix from row-major int64 values.
func zmat(tb testing.TB, rows, cols int, vals ...int64) *matrix.Dense[integer.Integer] {
	tb.Helper()
	data := make([]integer.Integer, len(vals))
	for i, v := range vals {
		data[i] = integer.FromInt64(v)
	}
	m, err := matrix.NewFromValues[integer.Integer](integer.Z, rows, cols, data)
	require.NoError(tb, err)

	return m
}

// at reads (i, j) as int64, failing the test on any error.
func at(tb testing.TB, m *matrix.Dense[integer.Integer], i, j int) int64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)
	x, ok := v.Int64()
	require.True(tb, ok)

	return x
}
