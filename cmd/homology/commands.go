// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/homology/catalog"
	"github.com/katalvlaran/homology/chain"
	"github.com/katalvlaran/homology/cubical"
	"github.com/katalvlaran/homology/integer"
	"github.com/katalvlaran/homology/internal/config"
	"github.com/katalvlaran/homology/internal/sample"
)

func newComputeCmd(a *app) *cobra.Command {
	var xs, ys, zs []int

	cmd := &cobra.Command{
		Use:   "compute <file>",
		Short: "Compute the homology of a complex described in a CUE or TOML file",
		Long: `Compute the homology of a complex described in a CUE or TOML file.

The coefficients written in the file are used unless --coefficients is given.
For voxel inputs, --x, --y and --z clip the model to lo ≤ coordinate < hi.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := config.LoadInput(args[0])
			if err != nil {
				return err
			}
			s := a.settings
			if !cmd.Flags().Changed(config.KeyCoefficients) && in.Coefficients != "" {
				s.Coefficients = in.Coefficients
			}

			src, err := sourceFromInput(in)
			if err != nil {
				return err
			}
			lower, upper, set, err := boxFromFlags(xs, ys, zs)
			if err != nil {
				return err
			}
			if set {
				if !src.fromVoxels {
					return fmt.Errorf("--x/--y/--z apply to voxel inputs only: %w", config.ErrInvalidInput)
				}
				src.voxelOpts = append(src.voxelOpts, cubical.WithBounds(lower, upper))
			}

			a.logger.Debug("input", "file", args[0], "name", in.Name, "coefficients", s.Coefficients)
			out, err := compute(src, s, a.logger)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		},
	}
	cmd.Flags().IntSliceVar(&xs, "x", nil, "x bounds as lo,hi")
	cmd.Flags().IntSliceVar(&ys, "y", nil, "y bounds as lo,hi")
	cmd.Flags().IntSliceVar(&zs, "z", nil, "z bounds as lo,hi")

	return cmd
}

func newRandomCmd(a *app) *cobra.Command {
	var (
		size    int
		density float64
		seed    string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Compute the homology of a reproducible random voxel model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			voxels, err := sample.New([]byte(seed)).Voxels(size, density)
			if err != nil {
				return err
			}
			a.logger.Debug("random model", "seed", seed, "size", size, "density", density, "voxels", len(voxels))

			out, err := compute(source{voxels: voxels, fromVoxels: true}, a.settings, a.logger)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		},
	}
	cmd.Flags().IntVar(&size, "size", 6, "edge length of the sampled cube")
	cmd.Flags().Float64Var(&density, "density", 0.5, "probability that a voxel is solid")
	cmd.Flags().StringVar(&seed, "seed", "homology", "seed of the SHAKE-128 sampler")

	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that an input file describes a valid chain complex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := config.LoadInput(args[0])
			if err != nil {
				return err
			}
			src, err := sourceFromInput(in)
			if err != nil {
				return err
			}
			c, err := buildComplex(src, integer.Z, identity, []chain.Option{chain.WithLogger(a.logger)}, a.logger)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(),
				successStyle.Render("✓ "+args[0])+" "+subtitleStyle.Render(c.String()+", ∂∘∂ = 0"))

			return err
		},
	}
}

func newCatalogCmd(a *app) *cobra.Command {
	var reduced, list bool

	cmd := &cobra.Command{
		Use:   "catalog <name>",
		Short: "Compute the homology of a standard space such as torus or sphere:3",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list || len(args) == 0 {
				for _, name := range catalog.Names() {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
						return err
					}
				}

				return nil
			}
			con, err := catalog.Parse(args[0])
			if err != nil {
				return err
			}
			var opts []catalog.Option
			if reduced {
				opts = append(opts, catalog.WithReduced())
			}
			bs, err := catalog.Boundaries(con, opts...)
			if err != nil {
				return err
			}
			a.logger.Debug("catalog", "name", args[0], "reduced", reduced)

			out, err := compute(source{boundaries: bs}, a.settings, a.logger)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		},
	}
	cmd.Flags().BoolVar(&reduced, "reduced", false, "compute reduced homology")
	cmd.Flags().BoolVar(&list, "list", false, "list the available names")

	return cmd
}
