package word

import (
	"fmt"

	"github.com/katalvlaran/permgroup/perm"
)

// Table holds forward and inverse lookups for an ordered generator list,
// keyed by 1-based letter index, so any Letter resolves to its permutation
// in O(1). Build a Table once per generator list and share it freely: it is
// read-only after construction and safe for concurrent use.
type Table struct {
	fwd []perm.Perm
	inv []perm.Perm
}

// NewTable prepares the lookup tables for gens. Every inverse is computed
// exactly once, here.
//
// Complexity: O(Σ support sizes).
func NewTable(gens []perm.Perm) *Table {
	t := &Table{
		fwd: make([]perm.Perm, len(gens)),
		inv: make([]perm.Perm, len(gens)),
	}
	for i, g := range gens {
		t.fwd[i] = g
		t.inv[i] = g.Invert()
	}

	return t
}

// Len returns the number of generators the table was prepared from.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.fwd)
}

// Image resolves l to a permutation: the referenced generator for a forward
// letter, its precomputed inverse for an inverse letter.
// Returns ErrLetterRange when l.Gen falls outside 1..Len.
func (t *Table) Image(l Letter) (perm.Perm, error) {
	if t == nil {
		return perm.Identity(), ErrNilTable
	}
	if l.Gen < 1 || l.Gen > len(t.fwd) {
		return perm.Identity(), fmt.Errorf("%w: %s of %d generators", ErrLetterRange, l, len(t.fwd))
	}
	if l.Inv {
		return t.inv[l.Gen-1], nil
	}

	return t.fwd[l.Gen-1], nil
}

// Apply evaluates w's action on p one letter at a time, in evaluation order,
// without materializing the composed permutation.
//
// Complexity: O(|w|) lookups and point applications.
func (t *Table) Apply(w Word, p perm.Point) (perm.Point, error) {
	if t == nil {
		return p, ErrNilTable
	}
	for _, l := range w {
		img, err := t.Image(l)
		if err != nil {
			return p, err
		}
		p = img.Apply(p)
	}

	return p, nil
}

// Perm composes w into a single permutation. The first letter is the
// innermost factor, so the result acts exactly as Apply does:
// Perm(w).Apply(p) == Apply(w, p) for every p.
//
// Complexity: O(|w| · s) where s bounds the supports involved.
func (t *Table) Perm(w Word) (perm.Perm, error) {
	if t == nil {
		return perm.Identity(), ErrNilTable
	}
	res := perm.Identity()
	for _, l := range w {
		img, err := t.Image(l)
		if err != nil {
			return perm.Identity(), err
		}
		res = perm.Compose(img, res)
	}

	return res, nil
}

// Path returns the |w| points visited after each non-empty prefix of w,
// starting from start: out[i] is the image of start under w[:i+1].
//
// Complexity: O(|w|).
func (t *Table) Path(w Word, start perm.Point) ([]perm.Point, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	out := make([]perm.Point, len(w))
	p := start
	for i, l := range w {
		img, err := t.Image(l)
		if err != nil {
			return nil, err
		}
		p = img.Apply(p)
		out[i] = p
	}

	return out, nil
}
