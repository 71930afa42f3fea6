// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/homology/integer"
)

// Zp is the prime field Z/pZ for a general modulus. Obtain one from New.
type Zp struct {
	p uint64 // modulus, 2 ≤ p ≤ MaxModulus
}

var _ Field = (*Zp)(nil)

// Modulus returns p.
func (f *Zp) Modulus() uint64 { return f.p }

// String names the field, e.g. "Z5".
func (f *Zp) String() string { return fmt.Sprintf("Z%d", f.p) }

// Element maps x to its residue class mod p.
func (f *Zp) Element(x int64) Element { return reduceInt64(x, f.p) }

// FromInteger maps x to its residue class mod p.
func (f *Zp) FromInteger(x integer.Integer) Element { return reduceInteger(x, f.p) }

func (f *Zp) Zero() Element { return Element{} }
func (f *Zp) One() Element { return Element{v: 1} }
func (f *Zp) Equal(a, b Element) bool { return a.v == b.v }

// Add returns a + b mod p. Both operands are < 2^62, so the sum cannot wrap.
func (f *Zp) Add(a, b Element) Element {
	s := a.v + b.v
	if s >= f.p {
		s -= f.p
	}

	return Element{v: s}
}

// Sub returns a - b mod p.
func (f *Zp) Sub(a, b Element) Element {
	if a.v >= b.v {
		return Element{v: a.v - b.v}
	}

	return Element{v: a.v + f.p - b.v}
}

// Neg returns -a mod p.
func (f *Zp) Neg(a Element) Element {
	if a.v == 0 {
		return a
	}

	return Element{v: f.p - a.v}
}

// Mul returns a * b mod p through a 128-bit product.
func (f *Zp) Mul(a, b Element) Element {
	hi, lo := bits.Mul64(a.v, b.v)

	return Element{v: bits.Rem64(hi, lo, f.p)}
}

// Inverse returns a⁻¹.
//
// Errors:
//   - ErrNotInvertible when a is zero (or shares a factor with a composite
//     modulus accepted by NewUnchecked).
func (f *Zp) Inverse(a Element) (Element, error) {
	if a.v == 0 {
		return Element{}, fmt.Errorf("%s.Inverse(0): %w", f, ErrNotInvertible)
	}
	inv, ok := invert(a.v, f.p)
	if !ok {
		return Element{}, fmt.Errorf("%s.Inverse(%d): %w", f, a.v, ErrNotInvertible)
	}

	return Element{v: inv}, nil
}

// Quo returns a / b.
func (f *Zp) Quo(a, b Element) (Element, error) {
	inv, err := f.Inverse(b)
	if err != nil {
		return Element{}, err
	}

	return f.Mul(a, inv), nil
}

// DivMod divides exactly: (a/b, 0).
func (f *Zp) DivMod(a, b Element) (q, r Element, err error) {
	q, err = f.Quo(a, b)

	return q, Element{}, err
}

// CompareNorm ranks zero below every nonzero element; nonzero norms are equal.
func (f *Zp) CompareNorm(a, b Element) int { return compareNorm(a, b) }

// Normalize returns (1, a⁻¹) for nonzero a and (0, 1) for zero.
func (f *Zp) Normalize(a Element) (canonical, unit Element) {
	if a.v == 0 {
		return Element{}, Element{v: 1}
	}
	inv, err := f.Inverse(a)
	if err != nil {
		// composite modulus from NewUnchecked: leave a as is
		return a, Element{v: 1}
	}

	return Element{v: 1}, inv
}

func compareNorm(a, b Element) int {
	switch {
	case a.v == 0 && b.v == 0:
		return 0
	case a.v == 0:
		return -1
	case b.v == 0:
		return 1
	default:
		return 0
	}
}
