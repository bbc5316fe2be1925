// Package schreier extracts stabilizer generators from a Schreier vector.
//
// What
//
//   - Generators(v, gens) walks every (generator σ, transporter u) pair of a
//     vector built over gens and emits Compose(w⁻¹, σu), w being the
//     transporter of the point σu sends the base to.
//   - Output order is deterministic (σ in list order, u in ascending
//     orbit-point order) and output length is always
//     len(gens) × v.Len(), duplicates included.
//
// Why
//
//   - Schreier's Lemma: when the vector is sound and complete, the emitted
//     list generates the stabilizer of the base point. Every product of
//     gens fixing the base is a product of outputs, and every output is such
//     a product. Orbit plus stabilizer is the standard decomposition behind
//     membership testing and base-and-strong-generating-set constructions,
//     which consume exactly this output.
//
// Usage
//
//	v, err := orbit.BuildClosure(gens, k)
//	if err != nil { ... }
//	stab, err := schreier.Generators(v, gens)
//	if err != nil { ... }
//	// stab generates { g ∈ ⟨gens⟩ : g(k) == k }
//
// Errors
//
//   - ErrNilVector  if the vector pointer is nil.
//
// Incomplete vectors (built with an undersized budget) are accepted: missing
// transporters default to the identity, so the call never fails on them, but
// the lemma's guarantee then covers only the discovered sub-orbit.
package schreier
