// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrUnknownInput indicates an input file whose extension is neither
	// .cue nor .toml.
	ErrUnknownInput = errors.New("config: unknown input format")
	// ErrInvalidInput indicates an input file that parses but does not
	// describe a complex (schema violation, wrong entry count, both or
	// neither of boundaries and voxels).
	ErrInvalidInput = errors.New("config: invalid input")
	// ErrCoefficients indicates an unsupported coefficient choice.
	ErrCoefficients = errors.New("config: unsupported coefficients")
	// ErrFormat indicates an unknown output format.
	ErrFormat = errors.New("config: unknown output format")
)
