// SPDX-License-Identifier: MIT

package integer

import "github.com/katalvlaran/homology/algebra"

// Integers is the Euclidean domain Z. It is stateless; use the package value Z.
//
// Norm is the absolute value, canonical associates are non-negative and the
// units are ±1.
type Integers struct{}

// Z is the ring of integers.
var Z Integers

var (
	one      = FromInt64(1)
	minusOne = FromInt64(-1)
)

var _ algebra.EuclideanDomain[Integer] = Integers{}

func (Integers) Zero() Integer { return Integer{} }
func (Integers) One() Integer { return one }
func (Integers) Add(a, b Integer) Integer { return a.Add(b) }
func (Integers) Sub(a, b Integer) Integer { return a.Sub(b) }
func (Integers) Neg(a Integer) Integer { return a.Neg() }
func (Integers) Mul(a, b Integer) Integer { return a.Mul(b) }
func (Integers) Equal(a, b Integer) bool { return a.Equal(b) }
func (Integers) CompareNorm(a, b Integer) int { return a.CmpAbs(b) }

// DivMod is the Euclidean division of package-level DivMod.
func (Integers) DivMod(a, b Integer) (q, r Integer, err error) {
	res, err := DivMod(a, b)
	if err != nil {
		return Integer{}, Integer{}, err
	}

	return res.Quotient, res.Remainder, nil
}

// Normalize returns (|a|, ±1) with a*unit = |a|. Normalize(0) = (0, 1).
func (Integers) Normalize(a Integer) (canonical, unit Integer) {
	if a.Sign() < 0 {
		return a.Neg(), minusOne
	}

	return a, one
}

// String names the ring.
func (Integers) String() string { return "Z" }
