// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/katalvlaran/homology/algebra"
	"github.com/katalvlaran/homology/integer"
)

// MaxModulus is the largest accepted modulus.
const MaxModulus uint64 = 1 << 62

// Element is a residue class of Z/pZ, stored as its representative in [0, p).
// The zero value is the zero of every field.
type Element struct {
	v uint64 // canonical representative, always < p of the owning field
}

// Uint64 returns the canonical representative of e.
func (e Element) Uint64() uint64 { return e.v }

// IsZero reports whether e is the zero residue.
func (e Element) IsZero() bool { return e.v == 0 }

// String renders the representative in base 10.
func (e Element) String() string { return strconv.FormatUint(e.v, 10) }

// Field is a prime field Z/pZ. Implementations are Zp (any prime) and Z2.
type Field interface {
	algebra.Field[Element]

	// Modulus returns p.
	Modulus() uint64

	// Element maps an int64 to its residue class.
	Element(x int64) Element

	// FromInteger maps an arbitrary-precision integer to its residue class.
	FromInteger(x integer.Integer) Element

	// String names the field, e.g. "Z3".
	String() string
}

// New returns the prime field of order p.
//
// Implementation:
//   - Stage 1: reject p < 2 and p > MaxModulus (ErrInvalidModulus).
//   - Stage 2: reject composite p (ErrNotPrime); the test is exact below 2^64.
//   - Stage 3: p == 2 yields the specialized Z2, anything else a *Zp.
func New(p uint64) (Field, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}
	if !new(big.Int).SetUint64(p).ProbablyPrime(0) {
		return nil, fmt.Errorf("New(%d): %w", p, ErrNotPrime)
	}

	return build(p), nil
}

// NewUnchecked returns the field of order p without testing primality.
// Arithmetic over a composite p silently produces meaningless results, which is
// only acceptable when the caller already knows p is prime.
func NewUnchecked(p uint64) (Field, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}

	return build(p), nil
}

// MustNew is like New but panics on error.
func MustNew(p uint64) Field {
	f, err := New(p)
	if err != nil {
		panic(err)
	}

	return f
}

func checkModulus(p uint64) error {
	if p < 2 || p > MaxModulus {
		return fmt.Errorf("New(%d): %w", p, ErrInvalidModulus)
	}

	return nil
}

func build(p uint64) Field {
	if p == 2 {
		return Z2{}
	}

	return &Zp{p: p}
}

// reduceInt64 maps x to [0, p).
func reduceInt64(x int64, p uint64) Element {
	r := x % int64(p)
	if r < 0 {
		r += int64(p)
	}

	return Element{v: uint64(r)}
}

// reduceInteger maps x to [0, p) using Euclidean modulus.
func reduceInteger(x integer.Integer, p uint64) Element {
	m := new(big.Int).SetUint64(p)

	return Element{v: new(big.Int).Mod(x.BigInt(), m).Uint64()}
}

// invert returns a⁻¹ mod p by the iterative extended Euclidean algorithm.
// a must be in (0, p); p ≤ 2^62 keeps all intermediates inside int64.
func invert(a, p uint64) (uint64, bool) {
	oldR, r := int64(a), int64(p)
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, false // gcd(a, p) > 1: composite modulus from NewUnchecked
	}
	if oldS < 0 {
		oldS += int64(p)
	}

	return uint64(oldS), true
}
