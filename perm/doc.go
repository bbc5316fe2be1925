// Package perm provides the sparse finite-permutation value used throughout
// permgroup: a bijection on positive integer points, stored as its moved
// points only.
//
// What
//
//   - Point: a positive integer naming a domain element.
//   - Perm: an immutable permutation value; the zero value is the identity.
//   - FromPairs builds a Perm from an explicit point→image association list
//     and validates that the list really is a finite bijection.
//   - Apply / Compose / Invert / Equal / IsIdentity / Support / String.
//
// Why
//
//   - Sparse storage makes the cost of every operation proportional to the
//     number of moved points, never to the size of the ambient domain.
//   - Value semantics (no mutation anywhere) let the orbit builder and the
//     Schreier extractor share permutations freely across rounds and across
//     goroutines, without copies or locks.
//
// Conventions
//
//	Compose(a, b) means "apply b, then a":
//	    Compose(a, b).Apply(x) == a.Apply(b.Apply(x))
//	Fixed points are never stored; constructors and Compose normalize, so
//	Equal is semantic equality and IsIdentity is a length check.
//
// Complexity (s = moved points)
//
//   - Apply: O(1)
//   - Compose, Invert, Equal: O(s)
//   - Support, String: O(s log s)
//
// Usage
//
//	swap, err := perm.FromPairs([][2]perm.Point{{1, 2}, {2, 1}})
//	if err != nil { ... }
//	swap.Apply(1)                 // 2
//	swap.Apply(7)                 // 7; absent points are fixed
//	perm.Compose(swap, swap)      // identity, stored as nothing
//
// Errors
//
//   - ErrBadPoint      if an association pair holds a non-positive point.
//   - ErrNotBijective  if a source repeats, an image repeats, or the moved
//     points do not map onto themselves.
package perm
