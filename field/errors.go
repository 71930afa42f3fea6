// SPDX-License-Identifier: MIT

package field

import "errors"

var (
	// ErrNotInvertible is returned by Inverse, Quo and DivMod for a zero operand.
	ErrNotInvertible = errors.New("field: element is not invertible")

	// ErrNotPrime is returned by New when the modulus is composite.
	ErrNotPrime = errors.New("field: modulus is not prime")

	// ErrInvalidModulus is returned when the modulus is below 2 or above MaxModulus.
	ErrInvalidModulus = errors.New("field: invalid modulus")
)
