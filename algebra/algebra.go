// SPDX-License-Identifier: MIT

package algebra

// AdditiveGroup is an abelian group written additively.
//
// Equal must be an equivalence compatible with every operation; two elements
// representing the same value must compare equal even if their internal
// representations differ.
type AdditiveGroup[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// Add returns a + b.
	Add(a, b T) T

	// Sub returns a - b.
	Sub(a, b T) T

	// Neg returns -a.
	Neg(a T) T

	// Equal reports whether a and b denote the same element.
	Equal(a, b T) bool
}

// Ring is a commutative ring with identity.
type Ring[T any] interface {
	AdditiveGroup[T]

	// One returns the multiplicative identity.
	One() T

	// Mul returns a * b.
	Mul(a, b T) T
}

// EuclideanDomain is a Ring admitting division with remainder.
//
// The Euclidean function itself is never exposed; algorithms only need to
// compare the norms of two nonzero elements.
type EuclideanDomain[T any] interface {
	Ring[T]

	// DivMod returns q, r with a = q*b + r and r = 0 or norm(r) < norm(b).
	// It fails only when b is zero.
	DivMod(a, b T) (q, r T, err error)

	// CompareNorm compares the Euclidean norms of a and b and returns
	// -1, 0 or +1. Zero has the smallest norm.
	CompareNorm(a, b T) int

	// Normalize returns the canonical associate of a together with the unit u
	// such that a*u = canonical. Normalize(0) returns (0, 1).
	Normalize(a T) (canonical, unit T)
}

// Field is a EuclideanDomain in which every nonzero element is invertible.
type Field[T any] interface {
	EuclideanDomain[T]

	// Inverse returns the multiplicative inverse of a, or an error when a is zero.
	Inverse(a T) (T, error)

	// Quo returns a / b, or an error when b is zero.
	Quo(a, b T) (T, error)
}

// IsZero reports whether a equals the additive identity of g.
func IsZero[T any](g AdditiveGroup[T], a T) bool {
	return g.Equal(a, g.Zero())
}

// IsUnit reports whether a is invertible in d, i.e. its canonical associate is One.
func IsUnit[T any](d EuclideanDomain[T], a T) bool {
	c, _ := d.Normalize(a)

	return d.Equal(c, d.One())
}

// IsField reports whether the ring r also provides field operations.
func IsField[T any](r Ring[T]) bool {
	_, ok := r.(Field[T])

	return ok
}
