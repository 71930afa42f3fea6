// Package chain models chain complexes of free modules and extracts their
// homology.
//
// A Complex is built from its boundary matrices ∂₀, ∂₁, …, ∂ₙ. New verifies
// that consecutive shapes agree and that ∂ₙ₋₁∘∂ₙ = 0; WithUnchecked skips the
// (costly) composition check for boundaries that are correct by construction.
//
// Compute returns a Homology: for every dimension n the group
//
//	Hₙ ≅ R^bₙ ⊕ R/(t₁) ⊕ … ⊕ R/(t_k)
//
// where the Betti number bₙ = nullity(∂ₙ) − rank(∂ₙ₊₁) comes from row-echelon
// ranks and the torsion coefficients tᵢ are the non-unit invariant factors of
// ∂ₙ₊₁ (Smith normal form). Over a field there is never torsion.
//
// Example (a filled triangle over Z):
//
//	c, _ := chain.New([]*matrix.Dense[integer.Integer]{d0, d1, d2})
//	h, _ := chain.Compute(c)
//	h.FreeRanks() // [1 0 0]
//
// The package performs no I/O; rendering lives in package render.
package chain
