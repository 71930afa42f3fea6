// Package integer implements exact, arbitrary-precision signed integers and the
// Euclidean domain Z built on top of them.
//
// Integer is an immutable value type: every operation returns a fresh value
// and never aliases its operands, so Integers can be shared freely and stored
// in matrices by value. The zero value is the number 0.
//
// Division follows the Euclidean convention: DivMod(a, b) returns q, r with
//
//	a = q*b + r,  0 ≤ r < |b|
//
// for every a and nonzero b, so the remainder is never negative.
//
// The package-level value Z implements algebra.EuclideanDomain[Integer]; pass
// it to matrix constructors to get integer matrices:
//
//	m, _ := matrix.NewFromValues[integer.Integer](integer.Z, 2, 2, vals)
package integer
