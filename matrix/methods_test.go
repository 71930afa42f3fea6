package matrix_test

import (
	"testing"

	"github.com/katalvlaran/homology/field"
	"github.com/katalvlaran/homology/integer"
	"github.com/katalvlaran/homology/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := zmat(t, 2, 2, 1, 2, 3, 4)
	b := zmat(t, 2, 2, 10, 20, 30, 40)

	sum, err := matrix.Add[integer.Integer](a, b)
	require.NoError(t, err)
	require.True(t, sum.Equal(zmat(t, 2, 2, 11, 22, 33, 44)))

	diff, err := matrix.Sub[integer.Integer](a, b)
	require.NoError(t, err)
	require.True(t, diff.Equal(zmat(t, 2, 2, -9, -18, -27, -36)))

	_, err = matrix.Add[integer.Integer](a, zmat(t, 1, 2, 0, 0))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub[integer.Integer](a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense[integer.Integer]
	_, err = matrix.Add[integer.Integer](typedNil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := zmat(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := zmat(t, 3, 2, 7, 8, 9, 10, 11, 12)

	p, err := matrix.Mul[integer.Integer](a, b)
	require.NoError(t, err)
	require.True(t, p.Equal(zmat(t, 2, 2, 58, 64, 139, 154)), p.String())

	_, err = matrix.Mul[integer.Integer](a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulEmptyInnerDimension(t *testing.T) {
	// (2×0)·(0×3) is the 2×3 zero map; this shape shows up for ∂∂ checks.
	a := zmat(t, 2, 0)
	b := zmat(t, 0, 3)
	p, err := matrix.Mul[integer.Integer](a, b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 3, p.Cols())
	require.True(t, p.IsZero())
}

func TestMulOverField(t *testing.T) {
	f := field.MustNew(2)
	a, err := matrix.NewFromRows[field.Element](f, [][]field.Element{
		{f.One(), f.One()},
		{f.Zero(), f.One()},
	})
	require.NoError(t, err)

	sq, err := matrix.Mul[field.Element](a, a)
	require.NoError(t, err)
	// [[1,1],[0,1]]^2 = [[1,0],[0,1]] over Z2
	id, err := matrix.NewIdentity[field.Element](f, 2)
	require.NoError(t, err)
	require.True(t, sq.Equal(id))
}

func TestTranspose(t *testing.T) {
	a := zmat(t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr, err := matrix.Transpose[integer.Integer](a)
	require.NoError(t, err)
	require.True(t, tr.Equal(zmat(t, 3, 2, 1, 4, 2, 5, 3, 6)))

	e := zmat(t, 0, 2)
	te, err := matrix.Transpose[integer.Integer](e)
	require.NoError(t, err)
	require.Equal(t, 2, te.Rows())
	require.Equal(t, 0, te.Cols())
}

func TestIdentityIsMulNeutral(t *testing.T) {
	a := zmat(t, 2, 3, 3, -1, 0, 2, 2, 5)
	i2, err := matrix.NewIdentity[integer.Integer](integer.Z, 2)
	require.NoError(t, err)
	i3, err := matrix.NewIdentity[integer.Integer](integer.Z, 3)
	require.NoError(t, err)

	l, err := matrix.Mul[integer.Integer](i2, a)
	require.NoError(t, err)
	r, err := matrix.Mul[integer.Integer](a, i3)
	require.NoError(t, err)
	require.True(t, l.Equal(a))
	require.True(t, r.Equal(a))
}
