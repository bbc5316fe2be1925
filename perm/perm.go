package perm

import (
	"fmt"
	"sort"
	"strings"
)

// Apply returns the image of x under p. Points absent from the sparse
// storage are fixed, so Apply is total over all points.
//
// Complexity: O(1).
func (p Perm) Apply(x Point) Point {
	if y, ok := p.m[x]; ok {
		return y
	}

	return x
}

// Compose returns the permutation equal to "apply b, then a", the standard
// function-composition order: Compose(a, b).Apply(x) == a.Apply(b.Apply(x)).
// The result is normalized sparse: points the composition fixes are not
// stored, so Equal and IsIdentity stay semantic.
//
// Complexity: O(|support(a)| + |support(b)|).
func Compose(a, b Perm) Perm {
	m := make(map[Point]Point, len(a.m)+len(b.m))
	// Points b moves: route through b first, then a.
	for x := range b.m {
		if y := a.Apply(b.Apply(x)); y != x {
			m[x] = y
		}
	}
	// Points a moves that b fixes.
	for x := range a.m {
		if _, seen := b.m[x]; seen {
			continue
		}
		if y := a.Apply(x); y != x {
			m[x] = y
		}
	}
	if len(m) == 0 {
		return Perm{}
	}

	return Perm{m: m}
}

// Invert returns the two-sided inverse of p:
// Compose(p, p.Invert()) and Compose(p.Invert(), p) are both the identity.
//
// Complexity: O(|support(p)|).
func (p Perm) Invert() Perm {
	if len(p.m) == 0 {
		return Perm{}
	}
	m := make(map[Point]Point, len(p.m))
	for x, y := range p.m {
		m[y] = x
	}

	return Perm{m: m}
}

// Equal reports whether p and q describe the same permutation.
// Normalized storage makes this a plain map comparison.
func (p Perm) Equal(q Perm) bool {
	if len(p.m) != len(q.m) {
		return false
	}
	for x, y := range p.m {
		if q.m[x] != y {
			return false
		}
	}

	return true
}

// IsIdentity reports whether p fixes every point.
func (p Perm) IsIdentity() bool { return len(p.m) == 0 }

// Support returns the points p moves, in ascending order.
//
// Complexity: O(n log n) over the support size.
func (p Perm) Support() []Point {
	out := make([]Point, 0, len(p.m))
	for x := range p.m {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// String renders p in mapping form, e.g. "(1→2 2→1)"; the identity is "()".
// This is a diagnostic rendering, not cycle notation; parsing and printing
// of cycle notation belong to consumers of this module.
func (p Perm) String() string {
	if p.IsIdentity() {
		return "()"
	}
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range p.Support() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d→%d", x, p.m[x])
	}
	b.WriteByte(')')

	return b.String()
}
