// SPDX-License-Identifier: MIT

package field

import (
	"fmt"

	"github.com/katalvlaran/homology/integer"
)

// Z2 is the two-element field. Addition is XOR and multiplication is AND on
// the low bit; results are identical to a Zp with p = 2.
type Z2 struct{}

var _ Field = Z2{}

func (Z2) Modulus() uint64 { return 2 }
func (Z2) String() string { return "Z2" }

// Element maps x to x mod 2.
func (Z2) Element(x int64) Element { return Element{v: uint64(x) & 1} }

// FromInteger maps x to x mod 2.
func (Z2) FromInteger(x integer.Integer) Element {
	return Element{v: uint64(x.BigInt().Bit(0))}
}

func (Z2) Zero() Element { return Element{} }
func (Z2) One() Element { return Element{v: 1} }
func (Z2) Equal(a, b Element) bool { return a.v == b.v }
func (Z2) Add(a, b Element) Element { return Element{v: a.v ^ b.v} }
func (Z2) Sub(a, b Element) Element { return Element{v: a.v ^ b.v} }
func (Z2) Neg(a Element) Element { return a }
func (Z2) Mul(a, b Element) Element { return Element{v: a.v & b.v} }
func (Z2) CompareNorm(a, b Element) int { return compareNorm(a, b) }

// Inverse returns 1 for 1 and ErrNotInvertible for 0.
func (Z2) Inverse(a Element) (Element, error) {
	if a.v == 0 {
		return Element{}, fmt.Errorf("Z2.Inverse(0): %w", ErrNotInvertible)
	}

	return a, nil
}

// Quo returns a / b.
func (f Z2) Quo(a, b Element) (Element, error) {
	if _, err := f.Inverse(b); err != nil {
		return Element{}, err
	}

	return a, nil
}

// DivMod divides exactly: (a/b, 0).
func (f Z2) DivMod(a, b Element) (q, r Element, err error) {
	q, err = f.Quo(a, b)

	return q, Element{}, err
}

// Normalize is the identity with unit 1; both elements are already canonical.
func (Z2) Normalize(a Element) (canonical, unit Element) {
	return a, Element{v: 1}
}
