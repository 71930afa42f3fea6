// Package catalog builds the chain complexes of standard spaces over the
// integers: spheres, the torus, the Klein bottle, the real projective plane,
// lens spaces and (hollow) simplices.
//
// Cellular constructors use the minimal CW structure of the space, so their
// boundary matrices are tiny and the torsion is visible by inspection:
//
//	Klein bottle   C₀=1  C₁=2  C₂=1   ∂₂ = (2, 0)ᵀ
//	RP²            C₀=1  C₁=1  C₂=1   ∂₂ = (2)
//	L(p, 1)        C₀=…=C₃=1          ∂₂ = (p)
//
// Simplicial constructors enumerate every face of the standard simplex in
// lexicographic vertex order and use the alternating-sign boundary.
//
// A Constructor is turned into boundary matrices by Boundaries or straight
// into a checked chain.Complex by Build. WithReduced swaps the empty ∂₀ for
// the augmentation map, which yields reduced homology.
//
// Parse resolves textual names such as "torus" or "sphere:3", as used by
// the homology command.
package catalog
