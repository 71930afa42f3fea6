package cubical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homology/chain"
	"github.com/katalvlaran/homology/cubical"
	"github.com/katalvlaran/homology/field"
	"github.com/katalvlaran/homology/integer"
	"github.com/katalvlaran/homology/matrix"
)

// shell returns the 26 voxels of a 3×3×3 block without its center.
func shell() []cubical.Voxel {
	var vs []cubical.Voxel
	for z := 0; z < 3; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if x == 1 && y == 1 && z == 1 {
					continue
				}
				vs = append(vs, cubical.Voxel{X: x, Y: y, Z: z})
			}
		}
	}

	return vs
}

// ring returns the 8 voxels of a flat 3×3 square without its center.
func ring() []cubical.Voxel {
	var vs []cubical.Voxel
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			vs = append(vs, cubical.Voxel{X: x, Y: y})
		}
	}

	return vs
}

func bettiZ(t *testing.T, c *cubical.Complex) ([]int, [][]string) {
	t.Helper()
	cc, err := cubical.ChainComplex(c, integer.Z)
	require.NoError(t, err)
	h, err := chain.Compute(cc)
	require.NoError(t, err)

	tor := make([][]string, h.Len())
	for n, g := range h.All() {
		tor[n] = []string{}
		for _, v := range g.Torsion() {
			tor[n] = append(tor[n], v.String())
		}
	}

	return h.FreeRanks(), tor
}

func TestIntervalAndCell(t *testing.T) {
	assert.Equal(t, 3, cubical.Point(3).Right())
	assert.Equal(t, 4, cubical.Unit(3).Right())
	assert.True(t, cubical.Point(0).IsDegenerate())
	assert.Equal(t, "[2,3]", cubical.Unit(2).String())

	_, err := cubical.NewCell()
	require.ErrorIs(t, err, cubical.ErrEmptyCell)

	sq, err := cubical.NewCell(cubical.Unit(0), cubical.Point(5), cubical.Unit(1))
	require.NoError(t, err)
	assert.Equal(t, 2, sq.Dim())
	assert.Equal(t, 3, sq.Ambient())
	assert.Equal(t, "[0,1]×[5]×[1,2]", sq.String())

	a, _ := cubical.NewCell(cubical.Unit(0))
	b, _ := cubical.NewCell(cubical.Point(7))
	p := cubical.Product(a, b)
	assert.Equal(t, 1, p.Dim())
	assert.Equal(t, 2, p.Ambient())
}

func TestBoundarySigns(t *testing.T) {
	sq, err := cubical.NewCell(cubical.Unit(0), cubical.Unit(0))
	require.NoError(t, err)

	faces := sq.Boundary()
	require.Len(t, faces, 4)
	want := []struct {
		cell string
		sign int
	}{
		{"[1]×[0,1]", 1},
		{"[0]×[0,1]", -1},
		{"[0,1]×[1]", -1},
		{"[0,1]×[0]", 1},
	}
	for i, w := range want {
		assert.Equal(t, w.cell, faces[i].Cell.String())
		assert.Equal(t, w.sign, faces[i].Sign)
	}

	// A point has no faces.
	pt, _ := cubical.NewCell(cubical.Point(0))
	assert.Empty(t, pt.Boundary())
}

func TestCompareOrdersByDimensionThenIntervals(t *testing.T) {
	mk := func(iv ...cubical.Interval) cubical.Cell {
		c, err := cubical.NewCell(iv...)
		require.NoError(t, err)

		return c
	}
	pt := mk(cubical.Point(0), cubical.Point(0))
	e1 := mk(cubical.Unit(0), cubical.Point(0))
	e2 := mk(cubical.Point(0), cubical.Unit(0))
	e3 := mk(cubical.Unit(1), cubical.Point(0))

	assert.Negative(t, cubical.Compare(pt, e1))
	assert.Negative(t, cubical.Compare(e1, e2)) // unit before point in the first factor
	assert.Negative(t, cubical.Compare(e1, e3))
	assert.Zero(t, cubical.Compare(e2, mk(cubical.Point(0), cubical.Unit(0))))
}

func TestSingleVoxel(t *testing.T) {
	c := cubical.NewComplex()
	require.NoError(t, c.AddVoxel(0, 0, 0))

	assert.Equal(t, 3, c.Dim())
	assert.Equal(t, 3, c.Ambient())
	assert.Equal(t, []int{8, 12, 6, 1}, []int{c.Count(0), c.Count(1), c.Count(2), c.Count(3)})
	assert.Equal(t, 27, c.Len())
	assert.Equal(t, 1, c.EulerCharacteristic())
	assert.Equal(t, "Cubical[3D: 8 12 6 1]", c.String())
	assert.True(t, c.Contains(cubical.Cube(0, 0, 0)))
	assert.False(t, c.Contains(cubical.Cube(1, 0, 0)))

	betti, _ := bettiZ(t, c)
	assert.Equal(t, []int{1, 0, 0, 0}, betti)

	// Re-adding changes nothing.
	added, err := c.AddCell(cubical.Cube(0, 0, 0))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 27, c.Len())
}

func TestAmbientMismatch(t *testing.T) {
	c := cubical.NewComplex()
	require.NoError(t, c.AddVoxel(0, 0, 0))

	flat, err := cubical.NewCell(cubical.Unit(0), cubical.Unit(0))
	require.NoError(t, err)
	_, err = c.AddCell(flat)
	require.ErrorIs(t, err, cubical.ErrAmbientMismatch)
	assert.False(t, c.Contains(flat))

	_, err = c.AddCell(cubical.Cell{})
	require.ErrorIs(t, err, cubical.ErrEmptyCell)
}

func TestBoundaryOfBoundaryIsZero(t *testing.T) {
	c, err := cubical.NewFromVoxels(shell())
	require.NoError(t, err)
	bs, err := cubical.BoundaryMatrices(c, integer.Z)
	require.NoError(t, err)
	require.Len(t, bs, 4)
	assert.Equal(t, 0, bs[0].Rows())

	for n := 1; n < len(bs); n++ {
		prod, err := matrix.Mul[integer.Integer](bs[n-1], bs[n])
		require.NoError(t, err)
		assert.True(t, prod.IsZero(), "∂%d∘∂%d", n-1, n)
	}
}

func TestVoxelHomology(t *testing.T) {
	cases := []struct {
		name   string
		voxels []cubical.Voxel
		betti  []int
	}{
		{"Two disjoint cubes", []cubical.Voxel{{0, 0, 0}, {2, 0, 0}}, []int{2, 0, 0, 0}},
		{"Cubes sharing an edge", []cubical.Voxel{{0, 0, 0}, {1, 1, 0}}, []int{1, 0, 0, 0}},
		{"Ring", ring(), []int{1, 1, 0, 0}},
		{"Hollow shell", shell(), []int{1, 0, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := cubical.NewFromVoxels(tc.voxels)
			require.NoError(t, err)
			betti, tor := bettiZ(t, c)
			assert.Equal(t, tc.betti, betti)
			for _, tt := range tor {
				assert.Empty(t, tt)
			}
		})
	}
}

func TestRingOverZ2(t *testing.T) {
	c, err := cubical.NewFromVoxels(ring())
	require.NoError(t, err)
	cc, err := cubical.ChainComplex(c, field.MustNew(2), chain.WithUnchecked())
	require.NoError(t, err)
	h, err := cc.Homology()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0, 0}, h.FreeRanks())
}

func TestBoundsClipping(t *testing.T) {
	// Clipping the shell to x < 1 leaves a solid 1×3×3 slab.
	c, err := cubical.NewFromVoxels(shell(),
		cubical.WithBounds(cubical.Voxel{X: 0, Y: 0, Z: 0}, cubical.Voxel{X: 1, Y: 3, Z: 3}))
	require.NoError(t, err)
	assert.Equal(t, 9, c.Count(3))
	betti, _ := bettiZ(t, c)
	assert.Equal(t, []int{1, 0, 0, 0}, betti)

	_, err = cubical.NewFromVoxels(shell(),
		cubical.WithBounds(cubical.Voxel{X: 1}, cubical.Voxel{X: 1, Y: 3, Z: 3}))
	require.ErrorIs(t, err, cubical.ErrBadBounds)
}

func TestNewFromGrid(t *testing.T) {
	grid := [][][]int{{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}}
	c, err := cubical.NewFromGrid(grid)
	require.NoError(t, err)
	betti, _ := bettiZ(t, c)
	assert.Equal(t, []int{1, 1, 0, 0}, betti)

	// Raising the threshold leaves no solid cells.
	empty, err := cubical.NewFromGrid(grid, cubical.WithThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, -1, empty.Dim())
	bs, err := cubical.BoundaryMatrices(empty, integer.Z)
	require.NoError(t, err)
	assert.Empty(t, bs)

	errCases := []struct {
		name string
		grid [][][]int
		err  error
	}{
		{"NoLayers", nil, cubical.ErrEmptyGrid},
		{"EmptyRow", [][][]int{{{}}}, cubical.ErrEmptyGrid},
		{"RaggedRow", [][][]int{{{1, 1}, {1}}}, cubical.ErrNonRectangular},
		{"RaggedLayer", [][][]int{{{1}}, {{1}, {1}}}, cubical.ErrNonRectangular},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cubical.NewFromGrid(tc.grid)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestCellsAreSorted(t *testing.T) {
	c, err := cubical.NewFromVoxels([]cubical.Voxel{{2, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)
	cubes := c.Cells(3)
	require.Len(t, cubes, 2)
	assert.True(t, cubes[0].Equal(cubical.Cube(0, 0, 0)))
	assert.Nil(t, c.Cells(4))
	assert.Equal(t, 0, c.Count(-1))
}
