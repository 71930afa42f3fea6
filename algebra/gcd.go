// SPDX-License-Identifier: MIT

package algebra

// Bezout is the result of an extended Euclidean computation: G = a*X + b*Y.
type Bezout[T any] struct {
	G, X, Y T
}

// ExtendedGCD runs the iterative extended Euclidean algorithm in d.
//
// The returned G is the canonical associate of gcd(a, b) (see Normalize), and
// X, Y satisfy G = a*X + b*Y exactly. ExtendedGCD(0, 0) returns G = 0.
//
// Complexity: O(k) DivMod calls, where k is the number of Euclidean steps.
func ExtendedGCD[T any](d EuclideanDomain[T], a, b T) (Bezout[T], error) {
	oldR, r := a, b
	oldS, s := d.One(), d.Zero()
	oldT, t := d.Zero(), d.One()

	for !IsZero[T](d, r) {
		q, rem, err := d.DivMod(oldR, r)
		if err != nil {
			return Bezout[T]{}, err
		}
		oldR, r = r, rem
		oldS, s = s, d.Sub(oldS, d.Mul(q, s))
		oldT, t = t, d.Sub(oldT, d.Mul(q, t))
	}

	// Fold the unit into the coefficients so that G is canonical.
	g, u := d.Normalize(oldR)

	return Bezout[T]{G: g, X: d.Mul(oldS, u), Y: d.Mul(oldT, u)}, nil
}

// GCD returns the canonical greatest common divisor of a and b.
func GCD[T any](d EuclideanDomain[T], a, b T) (T, error) {
	for !IsZero[T](d, b) {
		_, r, err := d.DivMod(a, b)
		if err != nil {
			var zero T

			return zero, err
		}
		a, b = b, r
	}
	g, _ := d.Normalize(a)

	return g, nil
}

// Divides reports whether a divides b. Zero divides only zero.
func Divides[T any](d EuclideanDomain[T], a, b T) bool {
	if IsZero[T](d, a) {
		return IsZero[T](d, b)
	}
	_, r, err := d.DivMod(b, a)

	return err == nil && IsZero[T](d, r)
}
