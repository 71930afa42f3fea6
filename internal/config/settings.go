// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, also the environment prefix.
	AppName = "homology"
	// EnvPrefix prefixes environment overrides, e.g. HOMOLOGY_COEFFICIENTS.
	EnvPrefix = "HOMOLOGY"
)

// Output formats.
const (
	FormatPlain    = "plain"
	FormatLaTeX    = "latex"
	FormatTable    = "table"
	FormatMarkdown = "markdown"
)

// Settings keys, shared by viper and the CLI flags bound to them.
const (
	KeyCoefficients = "coefficients"
	KeyPrime        = "prime"
	KeyFormat       = "format"
	KeyUnchecked    = "unchecked"
	KeyVerbose      = "verbose"
	KeyWidth        = "width"
	KeyDocument     = "document"
)

// Settings controls a homology run.
type Settings struct {
	// Coefficients is "Z", "Zp" (with Prime) or "Z<n>" for the prime n.
	Coefficients string `mapstructure:"coefficients"`
	// Prime is the modulus used with Coefficients "Zp".
	Prime uint64 `mapstructure:"prime"`
	// Format is one of plain, latex, table, markdown.
	Format string `mapstructure:"format"`
	// Unchecked skips the ∂∘∂ = 0 check.
	Unchecked bool `mapstructure:"unchecked"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
	// Width wraps Markdown output; 0 disables wrapping.
	Width int `mapstructure:"width"`
	// Document wraps LaTeX output in a standalone article.
	Document bool `mapstructure:"document"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Coefficients: "Z",
		Format:       FormatPlain,
		Width:        80,
	}
}

// NewViper returns a viper instance with defaults and HOMOLOGY_* environment
// overrides. Settings files are added with ReadSettingsFile.
func NewViper() *viper.Viper {
	v := viper.New()
	d := DefaultSettings()
	v.SetDefault(KeyCoefficients, d.Coefficients)
	v.SetDefault(KeyPrime, d.Prime)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyUnchecked, d.Unchecked)
	v.SetDefault(KeyVerbose, d.Verbose)
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyDocument, d.Document)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// ReadSettingsFile merges the settings file at path (any format viper
// understands, typically TOML) into v.
func ReadSettingsFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	return nil
}

// Decode extracts and validates Settings from v.
//
// Errors:
//   - ErrCoefficients, ErrFormat.
func Decode(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if _, _, err := ParseCoefficients(s.Coefficients, s.Prime); err != nil {
		return Settings{}, err
	}
	switch s.Format {
	case FormatPlain, FormatLaTeX, FormatTable, FormatMarkdown:
	default:
		return Settings{}, fmt.Errorf("%q: %w", s.Format, ErrFormat)
	}
	if s.Width < 0 {
		return Settings{}, fmt.Errorf("width %d must be ≥ 0: %w", s.Width, ErrFormat)
	}

	return s, nil
}

// Modulus returns the prime of the coefficient field, or ok == false for Z.
func (s Settings) Modulus() (p uint64, ok bool) {
	p, ok, _ = ParseCoefficients(s.Coefficients, s.Prime)

	return p, ok
}

// ParseCoefficients interprets a coefficient name. "Z" yields ok == false;
// "Zp" takes its modulus from prime; "Z<n>" parses n. Primality is checked
// later by field.New.
func ParseCoefficients(name string, prime uint64) (p uint64, ok bool, err error) {
	switch name {
	case "Z":
		return 0, false, nil
	case "Zp":
		if prime < 2 {
			return 0, false, fmt.Errorf("Zp needs a prime, got %d: %w", prime, ErrCoefficients)
		}

		return prime, true, nil
	}
	digits, found := strings.CutPrefix(name, "Z")
	if !found || digits == "" {
		return 0, false, fmt.Errorf("%q: %w", name, ErrCoefficients)
	}
	n, perr := strconv.ParseUint(digits, 10, 64)
	if perr != nil || n < 2 {
		return 0, false, fmt.Errorf("%q: %w", name, ErrCoefficients)
	}

	return n, true, nil
}
