// Package schreier turns a finished Schreier vector into a generating set
// for the base point's stabilizer, by Schreier's Lemma.
package schreier

import (
	"errors"

	"github.com/katalvlaran/permgroup/orbit"
	"github.com/katalvlaran/permgroup/perm"
)

// ErrNilVector is returned when the vector pointer is nil.
var ErrNilVector = errors.New("schreier: vector is nil")

// Generators emits the Schreier generators of the stabilizer of v's base
// point: one permutation per (generator, transporter) pair, generators in
// list order, transporters in ascending orbit-point order, so the output is
// deterministic and its length is exactly len(gens) × v.Len().
//
// Each pair (σ, u) contributes Compose(w⁻¹, σu), where w is the recorded
// transporter of the point σu sends the base to. On a sound and complete
// vector every output fixes the base, and Schreier's Lemma makes the list a
// generating set: a permutation is a product of outputs exactly when it is a
// product of gens that fixes the base.
//
// Duplicates (frequently the identity) are preserved; callers wanting a lean
// set deduplicate with perm.Equal. An incomplete vector is tolerated: a
// missing transporter contributes the identity for w, degrading the lemma's
// guarantee but never crashing.
func Generators(v *orbit.Vector, gens []perm.Perm) ([]perm.Perm, error) {
	if v == nil {
		return nil, ErrNilVector
	}

	k := v.Base()
	out := make([]perm.Perm, 0, len(gens)*v.Len())
	for _, g := range gens {
		v.Each(func(_ perm.Point, u perm.Perm) {
			su := perm.Compose(g, u)
			w, _ := v.Transporter(su.Apply(k))
			out = append(out, perm.Compose(w.Invert(), su))
		})
	}

	return out, nil
}
