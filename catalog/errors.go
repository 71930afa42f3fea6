// SPDX-License-Identifier: MIT

package catalog

import "errors"

var (
	// ErrUnknownComplex is returned by Parse for a name outside Names.
	ErrUnknownComplex = errors.New("catalog: unknown complex")

	// ErrParameter indicates a size parameter outside its allowed range.
	ErrParameter = errors.New("catalog: parameter out of range")
)
