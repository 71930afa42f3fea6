// SPDX-License-Identifier: MIT

package cubical

import (
	"cmp"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Interval is an elementary interval: the point [Left] when Full is false,
// the unit interval [Left, Left+1] otherwise.
type Interval struct {
	Left int  // lower endpoint
	Full bool // true for a unit interval, false for a point
}

// Point returns the degenerate interval [p].
func Point(p int) Interval { return Interval{Left: p} }

// Unit returns the unit interval [left, left+1].
func Unit(left int) Interval { return Interval{Left: left, Full: true} }

// Right returns the upper endpoint.
func (i Interval) Right() int {
	if i.Full {
		return i.Left + 1
	}

	return i.Left
}

// IsDegenerate reports whether i is a point.
func (i Interval) IsDegenerate() bool { return !i.Full }

// String renders "[l]" or "[l,l+1]".
func (i Interval) String() string {
	if !i.Full {
		return "[" + strconv.Itoa(i.Left) + "]"
	}

	return "[" + strconv.Itoa(i.Left) + "," + strconv.Itoa(i.Left+1) + "]"
}

// compareIntervals orders unit intervals before points, then by Left.
func compareIntervals(a, b Interval) int {
	switch {
	case a.Full && !b.Full:
		return -1
	case !a.Full && b.Full:
		return 1
	}

	return cmp.Compare(a.Left, b.Left)
}

// Cell is an elementary cube: a product of intervals. The zero value is not
// a valid cell; build cells with NewCell, Voxel or Product.
type Cell struct {
	intervals []Interval
	dim       int
}

// NewCell builds the product of the given intervals.
//
// Errors:
//   - ErrEmptyCell when no interval is given.
func NewCell(intervals ...Interval) (Cell, error) {
	if len(intervals) == 0 {
		return Cell{}, ErrEmptyCell
	}

	return newCell(slices.Clone(intervals)), nil
}

func newCell(intervals []Interval) Cell {
	dim := 0
	for _, iv := range intervals {
		if iv.Full {
			dim++
		}
	}

	return Cell{intervals: intervals, dim: dim}
}

// Cube returns the 3-cell [x,x+1]×[y,y+1]×[z,z+1].
func Cube(x, y, z int) Cell {
	return newCell([]Interval{Unit(x), Unit(y), Unit(z)})
}

// Product returns a × b, whose intervals are those of a followed by those of b.
func Product(a, b Cell) Cell {
	out := make([]Interval, 0, len(a.intervals)+len(b.intervals))
	out = append(out, a.intervals...)
	out = append(out, b.intervals...)

	return Cell{intervals: out, dim: a.dim + b.dim}
}

// Dim returns the number of non-degenerate intervals.
func (c Cell) Dim() int { return c.dim }

// Ambient returns the number of intervals.
func (c Cell) Ambient() int { return len(c.intervals) }

// Intervals returns a copy of the factors of c.
func (c Cell) Intervals() []Interval { return slices.Clone(c.intervals) }

// Equal reports whether c and o have the same intervals.
func (c Cell) Equal(o Cell) bool { return slices.Equal(c.intervals, o.intervals) }

// String renders the product, e.g. "[0,1]×[2]×[0,1]".
func (c Cell) String() string {
	parts := make([]string, len(c.intervals))
	for i, iv := range c.intervals {
		parts[i] = iv.String()
	}

	return strings.Join(parts, "×")
}

// key is a compact map key for c.
func (c Cell) key() string {
	buf := make([]byte, 0, 4*len(c.intervals))
	for _, iv := range c.intervals {
		buf = strconv.AppendInt(buf, int64(iv.Left), 36)
		if iv.Full {
			buf = append(buf, '+')
		} else {
			buf = append(buf, '.')
		}
	}

	return string(buf)
}

// Face is a codimension-one face of a cell together with its incidence sign.
type Face struct {
	Cell Cell
	Sign int // +1 or -1
}

// Boundary returns the 2·Dim() faces of c in interval order. For the m-th
// non-degenerate interval the upper face comes first with sign (-1)^m,
// followed by the lower face with the opposite sign.
func (c Cell) Boundary() []Face {
	faces := make([]Face, 0, 2*c.dim)
	sign := 1
	for n, iv := range c.intervals {
		if !iv.Full {
			continue
		}
		upper := slices.Clone(c.intervals)
		upper[n] = Point(iv.Right())
		lower := slices.Clone(c.intervals)
		lower[n] = Point(iv.Left)
		faces = append(faces,
			Face{Cell: Cell{intervals: upper, dim: c.dim - 1}, Sign: sign},
			Face{Cell: Cell{intervals: lower, dim: c.dim - 1}, Sign: -sign},
		)
		sign = -sign
	}

	return faces
}

// Compare orders cells by dimension, then lexicographically by interval
// (unit intervals before points, then by lower endpoint), then by ambient
// dimension.
func Compare(a, b Cell) int {
	if c := cmp.Compare(a.dim, b.dim); c != 0 {
		return c
	}

	return slices.CompareFunc(a.intervals, b.intervals, compareIntervals)
}
