// Package algebra declares the capability sets that coefficient types must
// provide to the matrix, reduction and homology packages.
//
// 🚀 What lives here?
//
//	Four nested interfaces, each adding a minimal set of operations:
//	  • AdditiveGroup - Zero, Add, Sub, Neg, Equal
//	  • Ring          - One, Mul
//	  • EuclideanDomain - DivMod, CompareNorm, Normalize
//	  • Field         - Inverse, Quo
//
// The interfaces are implemented by a *domain value* (for example integer.Z or
// a field returned by field.New), not by the elements themselves. Elements are
// plain values; the domain carries whatever context the arithmetic needs, such
// as a runtime modulus. This keeps the zero value of an element type usable and
// lets one element type be served by several domains.
//
// ⚖️ Algebraic laws
//
// Go cannot check the laws below, so implementers must uphold them and the
// generic algorithms assume them:
//
//   - (a+b)+c = a+(b+c), a+0 = a, a+(-a) = 0, a+b = b+a
//   - (a*b)*c = a*(b*c), a*1 = a, a*(b+c) = a*b + a*c, a*b = b*a
//   - DivMod(a, b) = (q, r) with a = q*b + r and r = 0 or norm(r) < norm(b)
//   - norm(a) ≤ norm(a*b) for nonzero a, b
//   - for a field, a * Inverse(a) = 1 for every nonzero a
//
// Generic helpers (ExtendedGCD, GCD, Divides, IsUnit) are written only in terms
// of these operations.
package algebra
