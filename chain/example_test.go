package chain_test

import (
	"fmt"

	"github.com/katalvlaran/homology/chain"
	"github.com/katalvlaran/homology/field"
	"github.com/katalvlaran/homology/integer"
	"github.com/katalvlaran/homology/matrix"
)

// ExampleCompute computes the homology of the Klein bottle over Z and over
// Z/2: the torsion of H₁ over Z shows up as extra Betti numbers mod 2.
func ExampleCompute() {
	ints := func(rows, cols int, vals ...int64) *matrix.Dense[integer.Integer] {
		xs := make([]integer.Integer, len(vals))
		for i, v := range vals {
			xs[i] = integer.FromInt64(v)
		}
		m, _ := matrix.NewFromValues[integer.Integer](integer.Z, rows, cols, xs)

		return m
	}
	bs := []*matrix.Dense[integer.Integer]{ints(0, 1), ints(1, 2, 0, 0), ints(2, 1, 2, 0)}

	c, err := chain.New(bs)
	if err != nil {
		fmt.Println(err)

		return
	}
	h, _ := chain.Compute(c)
	fmt.Println(c, h.FreeRanks())
	for n, g := range h.All() {
		fmt.Println(n, g.FreeRank(), g.Torsion())
	}

	mod2 := make([]*matrix.Dense[field.Element], len(bs))
	for i, b := range bs {
		mod2[i], _ = matrix.Map(b, field.Z2{}, field.Z2{}.FromInteger)
	}
	c2, _ := chain.New(mod2)
	h2, _ := c2.Homology()
	fmt.Println(h2.FreeRanks(), h2.EulerCharacteristic())
	// Output:
	// Complex[C0=1 C1=2 C2=1] [1 1 0]
	// 0 1 []
	// 1 1 [2]
	// 2 0 []
	// [1 2 1] 0
}
