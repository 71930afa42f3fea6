// SPDX-License-Identifier: MIT

// Package config loads the two kinds of configuration the homology CLI uses.
//
// Settings (coefficients, output format, verbosity) come from Viper: built-in
// defaults, an optional settings file, HOMOLOGY_* environment variables and
// bound command-line flags, in increasing priority.
//
// Input files describe the complex to analyse. CUE files are validated
// against the embedded #Complex schema (complex_schema.cue); TOML files are
// decoded with go-toml/v2 and checked by the same Go-side rules.
package config
