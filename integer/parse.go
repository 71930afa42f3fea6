// SPDX-License-Identifier: MIT

package integer

import (
	"fmt"
	"math/big"
)

// Parse reads a decimal integer: an optional '+' or '-' followed by at least
// one digit 0-9. Leading zeros are accepted, whitespace and underscores are not.
//
// Errors:
//   - ErrSyntax (wrapped with the offending input) for anything else.
func Parse(s string) (Integer, error) {
	if !validDecimal(s) {
		return Integer{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Integer{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	return wrap(z), nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for literals in tests and package-level variables.
func MustParse(s string) Integer {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// validDecimal reports whether s matches [+-]?[0-9]+.
func validDecimal(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
