// SPDX-License-Identifier: MIT

package integer

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/homology/algebra"
)

// zeroBig backs the zero value. It is shared and must never be mutated.
var zeroBig = new(big.Int)

// Integer is an immutable arbitrary-precision signed integer.
//
// The magnitude lives in a *big.Int owned exclusively by this value; a nil
// pointer denotes zero, which makes the zero value ready to use. Methods never
// mutate the receiver or their arguments.
type Integer struct {
	v *big.Int // nil ⇒ 0; never shared with callers
}

// DivisionResult holds the outcome of Euclidean division:
// dividend = Quotient*divisor + Remainder, 0 ≤ Remainder < |divisor|.
type DivisionResult struct {
	Quotient  Integer
	Remainder Integer
}

// ExtendedGCDResult holds GCD = a*X + b*Y with GCD ≥ 0.
type ExtendedGCDResult struct {
	GCD Integer
	X   Integer
	Y   Integer
}

var _ fmt.Stringer = Integer{}

// FromInt64 returns the Integer equal to x.
func FromInt64(x int64) Integer {
	if x == 0 {
		return Integer{}
	}

	return Integer{v: big.NewInt(x)}
}

// FromBig returns the Integer equal to x. The argument is copied; later
// changes to x do not affect the result. A nil x yields zero.
func FromBig(x *big.Int) Integer {
	if x == nil || x.Sign() == 0 {
		return Integer{}
	}

	return Integer{v: new(big.Int).Set(x)}
}

// wrap adopts z without copying. Callers must not retain z.
func wrap(z *big.Int) Integer {
	if z.Sign() == 0 {
		return Integer{}
	}

	return Integer{v: z}
}

// ref returns the read-only magnitude of a.
func (a Integer) ref() *big.Int {
	if a.v == nil {
		return zeroBig
	}

	return a.v
}

// BigInt returns a fresh *big.Int equal to a.
func (a Integer) BigInt() *big.Int {
	return new(big.Int).Set(a.ref())
}

// Int64 returns a as an int64 and reports whether it fits.
func (a Integer) Int64() (int64, bool) {
	r := a.ref()
	if !r.IsInt64() {
		return 0, false
	}

	return r.Int64(), true
}

// Add returns a + b.
func (a Integer) Add(b Integer) Integer {
	return wrap(new(big.Int).Add(a.ref(), b.ref()))
}

// Sub returns a - b.
func (a Integer) Sub(b Integer) Integer {
	return wrap(new(big.Int).Sub(a.ref(), b.ref()))
}

// Mul returns a * b.
func (a Integer) Mul(b Integer) Integer {
	if a.IsZero() || b.IsZero() {
		return Integer{}
	}

	return wrap(new(big.Int).Mul(a.ref(), b.ref()))
}

// Neg returns -a.
func (a Integer) Neg() Integer {
	return wrap(new(big.Int).Neg(a.ref()))
}

// Abs returns |a|.
func (a Integer) Abs() Integer {
	if a.Sign() >= 0 {
		return a
	}

	return a.Neg()
}

// Sign returns -1, 0 or +1 according to the sign of a.
func (a Integer) Sign() int {
	return a.ref().Sign()
}

// IsZero reports whether a == 0.
func (a Integer) IsZero() bool {
	return a.Sign() == 0
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Integer) Cmp(b Integer) int {
	return a.ref().Cmp(b.ref())
}

// CmpAbs compares |a| and |b| and returns -1, 0 or +1.
func (a Integer) CmpAbs(b Integer) int {
	return a.ref().CmpAbs(b.ref())
}

// Equal reports whether a == b.
func (a Integer) Equal(b Integer) bool {
	return a.Cmp(b) == 0
}

// String renders a in base 10 with a leading '-' for negatives; zero is "0".
func (a Integer) String() string {
	return a.ref().String()
}

// MarshalText implements encoding.TextMarshaler using the decimal form.
func (a Integer) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the rules of Parse.
func (a *Integer) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// DivMod performs Euclidean division of a by b.
//
// The result satisfies a = q*b + r with 0 ≤ r < |b| for every sign
// combination, e.g. DivMod(-7, 2) = (-4, 1) and DivMod(7, -2) = (-3, 1).
//
// Errors:
//   - ErrDivisionByZero when b == 0.
func DivMod(a, b Integer) (DivisionResult, error) {
	if b.IsZero() {
		return DivisionResult{}, fmt.Errorf("DivMod(%s, 0): %w", a, ErrDivisionByZero)
	}
	q, r := new(big.Int).DivMod(a.ref(), b.ref(), new(big.Int))

	return DivisionResult{Quotient: wrap(q), Remainder: wrap(r)}, nil
}

// ExtendedGCD returns g, x, y with g = gcd(a, b) ≥ 0 and g = a*x + b*y.
//
// Behavior highlights:
//   - ExtendedGCD(0, 0) = (0, 0, 0).
//   - ExtendedGCD(a, 0) = (|a|, sign(a), 0) and symmetrically for (0, b).
//
// The coefficients come from the iterative extended Euclidean algorithm
// run in Z with Euclidean remainders.
//
// Complexity: O(n) division steps, each O(n²), in the bit length n.
func ExtendedGCD(a, b Integer) ExtendedGCDResult {
	if a.IsZero() && b.IsZero() {
		return ExtendedGCDResult{}
	}
	// DivMod only fails on a zero divisor, which the loop never passes.
	bz, _ := algebra.ExtendedGCD[Integer](Z, a, b)

	return ExtendedGCDResult{GCD: bz.G, X: bz.X, Y: bz.Y}
}

// GCD returns gcd(a, b) ≥ 0; GCD(0, 0) = 0.
func GCD(a, b Integer) Integer {
	return wrap(new(big.Int).GCD(nil, nil, a.ref(), b.ref()))
}
