package field_test

import (
	"testing"

	"github.com/katalvlaran/homology/field"
	"github.com/katalvlaran/homology/integer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesModulus(t *testing.T) {
	for _, p := range []uint64{0, 1, field.MaxModulus + 1} {
		_, err := field.New(p)
		require.ErrorIs(t, err, field.ErrInvalidModulus, "p=%d", p)
		_, err = field.NewUnchecked(p)
		require.ErrorIs(t, err, field.ErrInvalidModulus, "p=%d", p)
	}
	for _, p := range []uint64{4, 9, 15, 561, 1 << 20} {
		_, err := field.New(p)
		require.ErrorIs(t, err, field.ErrNotPrime, "p=%d", p)
	}
	for _, p := range []uint64{2, 3, 5, 7919, 2305843009213693951} { // 2^61 - 1
		f, err := field.New(p)
		require.NoError(t, err, "p=%d", p)
		require.Equal(t, p, f.Modulus())
	}
}

func TestNewUncheckedAcceptsComposite(t *testing.T) {
	f, err := field.NewUnchecked(6)
	require.NoError(t, err)
	require.Equal(t, uint64(6), f.Modulus())

	_, err = f.Inverse(f.Element(2))
	require.ErrorIs(t, err, field.ErrNotInvertible)
}

func TestFactoryPicksZ2(t *testing.T) {
	f, err := field.New(2)
	require.NoError(t, err)
	_, ok := f.(field.Z2)
	require.True(t, ok)
	require.Equal(t, "Z2", f.String())

	g := field.MustNew(3)
	_, ok = g.(*field.Zp)
	require.True(t, ok)
	require.Equal(t, "Z3", g.String())
}

func TestElementReduction(t *testing.T) {
	f := field.MustNew(7)
	assert.Equal(t, uint64(6), f.Element(-1).Uint64())
	assert.Equal(t, uint64(0), f.Element(14).Uint64())
	assert.Equal(t, uint64(3), f.Element(-11).Uint64())
	assert.Equal(t, uint64(3), f.FromInteger(integer.MustParse("-100000000000000000002")).Uint64()) // -(10^20 + 2) ≡ -4

	z2 := field.MustNew(2)
	assert.Equal(t, uint64(1), z2.Element(-3).Uint64())
	assert.Equal(t, uint64(0), z2.Element(10).Uint64())
	assert.Equal(t, uint64(1), z2.FromInteger(integer.FromInt64(-7)).Uint64())
	assert.Equal(t, uint64(0), z2.FromInteger(integer.FromInt64(-8)).Uint64())
}

func TestZpArithmetic(t *testing.T) {
	f := field.MustNew(7)
	a, b := f.Element(5), f.Element(4)

	assert.Equal(t, "2", f.Add(a, b).String())
	assert.Equal(t, "1", f.Sub(a, b).String())
	assert.Equal(t, "6", f.Sub(b, a).String())
	assert.Equal(t, "2", f.Neg(a).String())
	assert.Equal(t, "6", f.Mul(a, b).String())
	assert.True(t, f.Neg(f.Zero()).IsZero())

	q, err := f.Quo(a, b)
	require.NoError(t, err)
	assert.True(t, f.Equal(f.Mul(q, b), a))
}

func TestInverseEveryNonzero(t *testing.T) {
	for _, p := range []uint64{3, 5, 13, 101} {
		f := field.MustNew(p)
		for x := int64(1); x < int64(p); x++ {
			inv, err := f.Inverse(f.Element(x))
			require.NoError(t, err)
			require.Equal(t, f.One(), f.Mul(f.Element(x), inv), "p=%d x=%d", p, x)
		}
		_, err := f.Inverse(f.Zero())
		require.ErrorIs(t, err, field.ErrNotInvertible)
	}
}

func TestLargeModulusMul(t *testing.T) {
	const p = 2305843009213693951 // 2^61 - 1
	f := field.MustNew(p)
	x := f.Element(p - 1) // -1
	require.Equal(t, uint64(1), f.Mul(x, x).Uint64())

	inv, err := f.Inverse(f.Element(2))
	require.NoError(t, err)
	require.Equal(t, uint64(1), f.Mul(inv, f.Element(2)).Uint64())
}

func TestZ2MatchesZp2(t *testing.T) {
	z2 := field.MustNew(2)
	zp, err := field.NewUnchecked(2)
	require.NoError(t, err)
	_, isZ2 := zp.(field.Z2)
	require.True(t, isZ2)

	// compare against generic mod-2 arithmetic on residues
	for a := int64(0); a < 2; a++ {
		for b := int64(0); b < 2; b++ {
			x, y := z2.Element(a), z2.Element(b)
			assert.Equal(t, uint64((a+b)%2), z2.Add(x, y).Uint64())
			assert.Equal(t, uint64((a-b+2)%2), z2.Sub(x, y).Uint64())
			assert.Equal(t, uint64(a*b), z2.Mul(x, y).Uint64())
		}
	}
	_, err = z2.Inverse(z2.Zero())
	require.ErrorIs(t, err, field.ErrNotInvertible)
	inv, err := z2.Inverse(z2.One())
	require.NoError(t, err)
	require.Equal(t, z2.One(), inv)
}

func TestFieldAsEuclideanDomain(t *testing.T) {
	for _, f := range []field.Field{field.MustNew(2), field.MustNew(5)} {
		a := f.One()
		b := f.Element(1)
		q, r, err := f.DivMod(a, b)
		require.NoError(t, err)
		assert.True(t, r.IsZero())
		assert.Equal(t, a, f.Add(f.Mul(q, b), r))

		_, _, err = f.DivMod(a, f.Zero())
		require.ErrorIs(t, err, field.ErrNotInvertible)

		assert.Equal(t, -1, f.CompareNorm(f.Zero(), a))
		assert.Equal(t, 1, f.CompareNorm(a, f.Zero()))
		assert.Equal(t, 0, f.CompareNorm(a, b))

		c, u := f.Normalize(f.Zero())
		assert.True(t, c.IsZero())
		assert.Equal(t, f.One(), u)
	}

	f := field.MustNew(5)
	c, u := f.Normalize(f.Element(3))
	require.Equal(t, f.One(), c)
	require.Equal(t, f.One(), f.Mul(f.Element(3), u))
}
