// Package orbit implements the Schreier vector: the ordered, growing map
// from discovered orbit points to transporter permutations.
//
// This file declares Vector and its accessors; construction lives in
// build.go.
package orbit

import (
	"fmt"
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/permgroup/perm"
)

// pointComparator orders tree keys as ascending perm.Point values.
func pointComparator(a, b interface{}) int {
	x, y := a.(perm.Point), b.(perm.Point)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Vector is the Schreier vector of one base point: every discovered orbit
// point maps to a transporter, a permutation sending the base to that point
// and expressible over the generator list the vector was built from.
//
// The backing store is a red-black tree keyed by point, so enumeration is
// always ascending and independent of discovery order. A Vector only grows:
// entries are inserted at most once and never replaced or removed (first
// discovery wins). All methods are safe for concurrent use.
type Vector struct {
	mu     sync.RWMutex
	base   perm.Point
	tree   *redblacktree.Tree
	closed bool
}

// NewVector seeds a vector with the single entry {k ↦ identity}: the base
// point reaches itself by doing nothing. Returns ErrBasePoint when k is not
// a positive domain element.
func NewVector(k perm.Point) (*Vector, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBasePoint, k)
	}
	v := &Vector{base: k, tree: redblacktree.NewWith(pointComparator)}
	v.tree.Put(k, perm.Identity())

	return v, nil
}

// Base returns the base point the vector was seeded with.
func (v *Vector) Base() perm.Point { return v.base }

// Len returns the number of discovered orbit points, the base included.
func (v *Vector) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.tree.Size()
}

// Has reports whether p has been discovered.
func (v *Vector) Has(p perm.Point) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.tree.Get(p)

	return ok
}

// Transporter returns the recorded transporter for p. When p is absent it
// returns the identity and false; consumers treating the result as a group
// element must check the flag.
func (v *Vector) Transporter(p perm.Point) (perm.Perm, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	val, ok := v.tree.Get(p)
	if !ok {
		return perm.Identity(), false
	}

	return val.(perm.Perm), true
}

// Orbit returns the discovered orbit points in ascending order.
func (v *Vector) Orbit() []perm.Point {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]perm.Point, 0, v.tree.Size())
	it := v.tree.Iterator()
	for it.Next() {
		out = append(out, it.Key().(perm.Point))
	}

	return out
}

// Each calls fn once per (point, transporter) entry, in ascending point
// order. Entries are snapshotted before the first call, so fn may call back
// into the vector freely.
func (v *Vector) Each(fn func(p perm.Point, transporter perm.Perm)) {
	type entry struct {
		p perm.Point
		t perm.Perm
	}

	v.mu.RLock()
	entries := make([]entry, 0, v.tree.Size())
	it := v.tree.Iterator()
	for it.Next() {
		entries = append(entries, entry{p: it.Key().(perm.Point), t: it.Value().(perm.Perm)})
	}
	v.mu.RUnlock()

	for _, e := range entries {
		fn(e.p, e.t)
	}
}

// Closed reports whether construction observed a round that added nothing,
// i.e. verified the orbit is closed under every generator. A vector built
// with an undersized round budget may be complete yet not Closed; a budget
// of at least CompletenessBound always closes.
func (v *Vector) Closed() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.closed
}

// insert records p ↦ t unless p is already present, reporting whether the
// entry was added. The check and the write share one critical section, so
// concurrent discoveries of the same point elect exactly one winner and the
// losing transporter is dropped, never overwriting.
func (v *Vector) insert(p perm.Point, t perm.Perm) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.tree.Get(p); ok {
		return false
	}
	v.tree.Put(p, t)

	return true
}

// markClosed records that generator closure has been observed.
func (v *Vector) markClosed() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
}
