// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/homology/algebra"
	"github.com/katalvlaran/homology/chain"
	"github.com/katalvlaran/homology/cubical"
	"github.com/katalvlaran/homology/field"
	"github.com/katalvlaran/homology/integer"
	"github.com/katalvlaran/homology/internal/config"
	"github.com/katalvlaran/homology/matrix"
	"github.com/katalvlaran/homology/render"
)

// source is a complex description: either integer boundaries or voxels.
type source struct {
	boundaries []*matrix.Dense[integer.Integer]
	voxels     []cubical.Voxel
	voxelOpts  []cubical.Option
	fromVoxels bool
}

func sourceFromInput(in *config.Input) (source, error) {
	if len(in.Voxels) > 0 {
		return source{voxels: in.VoxelList(), voxelOpts: in.VoxelOptions(), fromVoxels: true}, nil
	}
	bs, err := in.IntegerBoundaries()
	if err != nil {
		return source{}, err
	}

	return source{boundaries: bs}, nil
}

// ringName is the short coefficient name used by the renderers.
func ringName(p uint64, isField bool) string {
	if !isField {
		return "Z"
	}

	return fmt.Sprintf("Z%d", p)
}

// buildComplex turns src into a chain complex over ring; convert maps the
// integer boundary entries into ring.
func buildComplex[T any](src source, ring algebra.Ring[T], convert func(integer.Integer) T,
	opts []chain.Option, logger *log.Logger) (*chain.Complex[T], error) {
	if src.fromVoxels {
		cx, err := cubical.NewFromVoxels(src.voxels, src.voxelOpts...)
		if err != nil {
			return nil, err
		}
		logger.Debug("cubical complex", "voxels", len(src.voxels), "cells", cx.Len(), "dim", cx.Dim())

		return cubical.ChainComplex(cx, ring, opts...)
	}

	mapped := make([]*matrix.Dense[T], len(src.boundaries))
	for n, b := range src.boundaries {
		m, err := matrix.Map(b, ring, convert)
		if err != nil {
			return nil, fmt.Errorf("boundary %d: %w", n, err)
		}
		mapped[n] = m
	}

	return chain.New(mapped, opts...)
}

func computeOver[T any](src source, ring algebra.Ring[T], convert func(integer.Integer) T,
	s config.Settings, name string, logger *log.Logger) (string, error) {
	opts := []chain.Option{chain.WithLogger(logger)}
	if s.Unchecked {
		opts = append(opts, chain.WithUnchecked())
	}
	c, err := buildComplex(src, ring, convert, opts, logger)
	if err != nil {
		return "", err
	}
	logger.Debug("chain complex", "ranks", c.String(), "coefficients", name)

	h, err := chain.Compute(c)
	if err != nil {
		return "", err
	}

	return format(h, s, name)
}

// compute runs the whole pipeline with the coefficients chosen in s.
func compute(src source, s config.Settings, logger *log.Logger) (string, error) {
	p, isField := s.Modulus()
	name := ringName(p, isField)
	if !isField {
		return computeOver(src, algebra.Ring[integer.Integer](integer.Z), identity, s, name, logger)
	}
	f, err := field.New(p)
	if err != nil {
		return "", err
	}

	return computeOver[field.Element](src, f, f.FromInteger, s, name, logger)
}

func identity(x integer.Integer) integer.Integer { return x }

func format[T any](h *chain.Homology[T], s config.Settings, ring string) (string, error) {
	switch s.Format {
	case config.FormatLaTeX:
		out := render.LaTeX(h, ring)
		if s.Document {
			return render.Document(out), nil
		}

		return out + "\n", nil
	case config.FormatTable:
		return render.Table(h, ring) + "\n", nil
	case config.FormatMarkdown:
		return render.RenderMarkdown(render.Markdown(h, ring), s.Width)
	default:
		return render.Plain(h) + "\n", nil
	}
}

// boxFromFlags builds clipping bounds from --x/--y/--z pairs; unset axes are
// unbounded.
func boxFromFlags(xs, ys, zs []int) (lower, upper cubical.Voxel, set bool, err error) {
	axis := func(name string, v []int) (int, int, error) {
		switch len(v) {
		case 0:
			return math.MinInt32, math.MaxInt32, nil
		case 2:
			set = true

			return v[0], v[1], nil
		}

		return 0, 0, fmt.Errorf("--%s takes two values, got %d: %w", name, len(v), cubical.ErrBadBounds)
	}
	if lower.X, upper.X, err = axis("x", xs); err != nil {
		return
	}
	if lower.Y, upper.Y, err = axis("y", ys); err != nil {
		return
	}
	lower.Z, upper.Z, err = axis("z", zs)

	return
}
