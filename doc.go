// Package homology computes homology groups of chain complexes exactly:
// arbitrary-precision integers, prime fields and generic matrices over them,
// with no floating point anywhere.
//
// What is in the module?
//
//	algebra/     - capability interfaces: AdditiveGroup, Ring, EuclideanDomain, Field
//	integer/     - arbitrary-precision Integer and the Euclidean domain Z
//	field/       - prime fields Z/p, with a bit-level Z2
//	matrix/      - generic dense matrices, elementary row and column operations
//	matrix/ops/  - row-echelon reduction and Smith normal form
//	chain/       - chain complexes, the ∂∘∂ = 0 check, homology extraction
//	cubical/     - cubical complexes built from voxels
//	catalog/     - spheres, tori, lens spaces, simplices ready to use
//	render/      - plain, LaTeX, terminal table and Markdown output
//	cmd/homology - command-line front end
//
// Quick example, the Klein bottle with one vertex, two loops and one face:
//
//	C₂ ──∂₂=(2,0)ᵀ──▶ C₁ ──∂₁=0──▶ C₀
//
//	H₀ = Z,  H₁ = Z ⊕ Z/2,  H₂ = 0
//
// Over Z2 the torsion disappears and the Betti numbers become 1, 2, 1.
//
//	go install github.com/katalvlaran/homology/cmd/homology@latest
//	homology catalog klein
package homology
