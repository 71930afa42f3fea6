// Package field implements the prime fields Z/pZ as coefficient domains.
//
// Elements are small value types (Element) holding a residue in [0, p). The
// modulus is not stored in the element but in the field value that operates on
// it, so a field is chosen at run time:
//
//	f, err := field.New(3)       // *Zp
//	f2, _ := field.New(2)        // Z2, the bitwise fast path
//	x := f.Element(-1)           // 2 in Z/3Z
//
// Every Field satisfies algebra.Field[Element] and can therefore be used as the
// ring of a matrix.Dense or a chain.Complex. Mixing elements of different
// fields is a programmer error and yields meaningless results.
//
// Moduli are limited to MaxModulus (2^62) so that sums never overflow a
// uint64; products use a 128-bit intermediate.
package field
