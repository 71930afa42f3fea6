package cubical_test

import (
	"fmt"

	"github.com/katalvlaran/homology/cubical"
	"github.com/katalvlaran/homology/integer"
)

// ExampleNewFromVoxels computes the homology of a flat ring of eight cubes.
func ExampleNewFromVoxels() {
	var voxels []cubical.Voxel
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x != 1 || y != 1 {
				voxels = append(voxels, cubical.Voxel{X: x, Y: y})
			}
		}
	}
	c, _ := cubical.NewFromVoxels(voxels)
	cc, _ := cubical.ChainComplex(c, integer.Z)
	h, _ := cc.Homology()
	fmt.Println(c)
	fmt.Println(h.FreeRanks())
	// Output:
	// Cubical[3D: 32 64 40 8]
	// [1 1 0 0]
}
