// SPDX-License-Identifier: MIT

package cubical

import "fmt"

// DefaultThreshold is the smallest grid value treated as solid by NewFromGrid.
const DefaultThreshold = 1

// Voxel addresses the unit cube [X,X+1]×[Y,Y+1]×[Z,Z+1].
type Voxel struct {
	X, Y, Z int
}

// Box is the half-open region lower ≤ v < upper, checked per axis.
type Box struct {
	Lower, Upper Voxel
}

// Contains reports whether v lies inside b.
func (b Box) Contains(v Voxel) bool {
	return v.X >= b.Lower.X && v.X < b.Upper.X &&
		v.Y >= b.Lower.Y && v.Y < b.Upper.Y &&
		v.Z >= b.Lower.Z && v.Z < b.Upper.Z
}

func (b Box) validate() error {
	if b.Lower.X >= b.Upper.X || b.Lower.Y >= b.Upper.Y || b.Lower.Z >= b.Upper.Z {
		return fmt.Errorf("bounds %v..%v: %w", b.Lower, b.Upper, ErrBadBounds)
	}

	return nil
}

// Option customizes NewFromVoxels and NewFromGrid.
type Option func(*options)

type options struct {
	bounds    *Box
	threshold int
}

func gatherOptions(opts []Option) options {
	o := options{threshold: DefaultThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithBounds keeps only voxels inside the half-open box lower ≤ v < upper.
// An empty box is reported by the constructor as ErrBadBounds.
func WithBounds(lower, upper Voxel) Option {
	return func(o *options) {
		o.bounds = &Box{Lower: lower, Upper: upper}
	}
}

// WithThreshold sets the minimum grid value considered solid.
func WithThreshold(min int) Option {
	return func(o *options) {
		o.threshold = min
	}
}

// NewFromVoxels builds the complex formed by the given unit cubes and all of
// their faces. Duplicate voxels are ignored.
//
// Errors:
//   - ErrBadBounds when WithBounds describes an empty box.
//
// Complexity: O(27·len(voxels)) map operations.
func NewFromVoxels(voxels []Voxel, opts ...Option) (*Complex, error) {
	o := gatherOptions(opts)
	if o.bounds != nil {
		if err := o.bounds.validate(); err != nil {
			return nil, err
		}
	}

	c := NewComplex()
	for _, v := range voxels {
		if o.bounds != nil && !o.bounds.Contains(v) {
			continue
		}
		if err := c.AddVoxel(v.X, v.Y, v.Z); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// NewFromGrid treats values[z][y][x] as an occupancy grid: every cell with
// value ≥ threshold (see WithThreshold) becomes the voxel (x, y, z).
// The input is not retained.
//
// Errors:
//   - ErrEmptyGrid if the grid has no layers, rows or columns.
//   - ErrNonRectangular if any layer or row differs in length.
//   - ErrBadBounds as for NewFromVoxels.
//
// Complexity: O(W·H·D) to scan plus NewFromVoxels for the solid cells.
func NewFromGrid(values [][][]int, opts ...Option) (*Complex, error) {
	voxels, err := GridVoxels(values, opts...)
	if err != nil {
		return nil, err
	}

	return NewFromVoxels(voxels, opts...)
}

// GridVoxels lists the solid cells of values[z][y][x] in z, y, x order.
func GridVoxels(values [][][]int, opts ...Option) ([]Voxel, error) {
	if len(values) == 0 || len(values[0]) == 0 || len(values[0][0]) == 0 {
		return nil, ErrEmptyGrid
	}
	o := gatherOptions(opts)
	h, w := len(values[0]), len(values[0][0])

	var voxels []Voxel
	for z, layer := range values {
		if len(layer) != h {
			return nil, fmt.Errorf("layer %d: %w", z, ErrNonRectangular)
		}
		for y, row := range layer {
			if len(row) != w {
				return nil, fmt.Errorf("layer %d row %d: %w", z, y, ErrNonRectangular)
			}
			for x, v := range row {
				if v >= o.threshold {
					voxels = append(voxels, Voxel{X: x, Y: y, Z: z})
				}
			}
		}
	}

	return voxels, nil
}
