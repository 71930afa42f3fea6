// SPDX-License-Identifier: MIT

package integer

import "errors"

// Sentinel errors of the integer package. Match them with errors.Is; call
// sites wrap them with the operation that failed.
var (
	// ErrDivisionByZero is returned by DivMod and friends when the divisor is zero.
	ErrDivisionByZero = errors.New("integer: division by zero")

	// ErrSyntax is returned by Parse for anything other than an optional sign
	// followed by one or more decimal digits.
	ErrSyntax = errors.New("integer: invalid syntax")
)
