// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/homology/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}

	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// app holds state shared by all subcommands of one invocation.
type app struct {
	v            *viper.Viper
	settingsFile string
	settings     config.Settings
	logger       *log.Logger
}

// boundKeys are the persistent flags mirrored into viper.
var boundKeys = []string{
	config.KeyCoefficients,
	config.KeyPrime,
	config.KeyFormat,
	config.KeyUnchecked,
	config.KeyVerbose,
	config.KeyWidth,
	config.KeyDocument,
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}
	d := config.DefaultSettings()

	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Exact homology of chain complexes and voxel models",
		Long: titleStyle.Render("homology") + subtitleStyle.Render(" - exact homology over Z and prime fields") + `

Reads a chain complex (boundary matrices) or a voxel model from a CUE or TOML
file and prints its Betti numbers and torsion coefficients.

` + subtitleStyle.Render("Examples:") + `
  homology compute klein.cue                  Integral homology
  homology compute klein.cue -c Z2            Homology with Z/2 coefficients
  homology compute model.toml -f latex        LaTeX output
  homology random --size 8 --density 0.4      Homology of a random voxel blob
  homology catalog lens:3 -f latex            Homology of the lens space L(3,1)
  homology validate klein.cue                 Check ∂∘∂ = 0 only`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.settingsFile, "settings", "", "settings file (TOML, YAML or JSON)")
	pf.StringP(config.KeyCoefficients, "c", d.Coefficients, "coefficients: Z, Z2, Z3, Z<p>, or Zp with --prime")
	pf.Uint64(config.KeyPrime, d.Prime, "modulus for --coefficients Zp")
	pf.StringP(config.KeyFormat, "f", d.Format, "output format: plain, latex, table, markdown")
	pf.Bool(config.KeyUnchecked, d.Unchecked, "skip the ∂∘∂ = 0 check")
	pf.BoolP(config.KeyVerbose, "v", d.Verbose, "enable debug logging")
	pf.Int(config.KeyWidth, d.Width, "wrap width for markdown output (0 disables)")
	pf.Bool(config.KeyDocument, d.Document, "wrap latex output in a standalone document")
	for _, k := range boundKeys {
		if err := a.v.BindPFlag(k, pf.Lookup(k)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newComputeCmd(a), newRandomCmd(a), newValidateCmd(a), newCatalogCmd(a))

	return root
}

// setup resolves settings once flags are parsed.
func (a *app) setup(cmd *cobra.Command) error {
	if a.settingsFile != "" {
		if err := config.ReadSettingsFile(a.v, a.settingsFile); err != nil {
			return err
		}
	}
	s, err := config.Decode(a.v)
	if err != nil {
		return err
	}
	a.settings = s

	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: config.AppName})
	if s.Verbose {
		a.logger.SetLevel(log.DebugLevel)
	}

	return nil
}
