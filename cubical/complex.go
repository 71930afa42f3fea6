// SPDX-License-Identifier: MIT

package cubical

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Complex is a finite cubical complex closed under faces. All cells share
// one ambient dimension, fixed by the first cell added.
//
// The zero value is not usable; call NewComplex.
type Complex struct {
	ambient int               // 0 until the first cell is added
	cells   []map[string]Cell // cells[d] holds the d-cells keyed by Cell.key
}

// NewComplex returns an empty complex.
func NewComplex() *Complex {
	return &Complex{}
}

// AddCell inserts cell and, recursively, all of its faces. It reports
// whether cell itself was new.
//
// Errors:
//   - ErrEmptyCell for a zero Cell.
//   - ErrAmbientMismatch when cell's ambient dimension differs from the
//     complex's.
//
// Complexity: O(3^Dim) map operations in the worst case.
func (c *Complex) AddCell(cell Cell) (bool, error) {
	if cell.Ambient() == 0 {
		return false, ErrEmptyCell
	}
	if c.ambient != 0 && c.ambient != cell.Ambient() {
		return false, fmt.Errorf("AddCell(%s): complex is %d-dimensional: %w",
			cell, c.ambient, ErrAmbientMismatch)
	}
	c.ambient = cell.Ambient()
	for len(c.cells) <= cell.Dim() {
		c.cells = append(c.cells, make(map[string]Cell))
	}

	return c.insert(cell), nil
}

// insert adds cell and its faces; faces of an already present cell are
// already present, so recursion stops there.
func (c *Complex) insert(cell Cell) bool {
	k := cell.key()
	layer := c.cells[cell.Dim()]
	if _, ok := layer[k]; ok {
		return false
	}
	layer[k] = cell
	for _, f := range cell.Boundary() {
		c.insert(f.Cell)
	}

	return true
}

// AddVoxel inserts the unit cube at (x, y, z) with all its faces.
func (c *Complex) AddVoxel(x, y, z int) error {
	_, err := c.AddCell(Cube(x, y, z))

	return err
}

// Contains reports whether cell belongs to c.
func (c *Complex) Contains(cell Cell) bool {
	if cell.Dim() >= len(c.cells) || cell.Ambient() != c.ambient {
		return false
	}
	_, ok := c.cells[cell.Dim()][cell.key()]

	return ok
}

// Dim returns the largest cell dimension, or -1 for an empty complex.
func (c *Complex) Dim() int { return len(c.cells) - 1 }

// Ambient returns the ambient dimension, or 0 for an empty complex.
func (c *Complex) Ambient() int { return c.ambient }

// Count returns the number of dim-cells.
func (c *Complex) Count(dim int) int {
	if dim < 0 || dim >= len(c.cells) {
		return 0
	}

	return len(c.cells[dim])
}

// Len returns the total number of cells.
func (c *Complex) Len() int {
	n := 0
	for _, layer := range c.cells {
		n += len(layer)
	}

	return n
}

// Cells returns the dim-cells sorted by Compare.
func (c *Complex) Cells(dim int) []Cell {
	if dim < 0 || dim >= len(c.cells) {
		return nil
	}
	out := make([]Cell, 0, len(c.cells[dim]))
	for _, cell := range c.cells[dim] {
		out = append(out, cell)
	}
	slices.SortFunc(out, Compare)

	return out
}

// EulerCharacteristic returns Σ (-1)^d · Count(d).
func (c *Complex) EulerCharacteristic() int {
	chi := 0
	for d, layer := range c.cells {
		if d%2 == 0 {
			chi += len(layer)
		} else {
			chi -= len(layer)
		}
	}

	return chi
}

// String summarizes the cell counts, e.g. "Cubical[3D: 8 12 6 1]".
func (c *Complex) String() string {
	s := fmt.Sprintf("Cubical[%dD:", c.ambient)
	for _, layer := range c.cells {
		s += fmt.Sprintf(" %d", len(layer))
	}

	return s + "]"
}
