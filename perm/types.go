// Package perm defines the sparse permutation values shared by the word,
// orbit, and schreier packages: a Point domain and an immutable Perm with
// apply/compose/invert.
//
// This file declares Point, the sentinel errors, and the constructors.
package perm

import (
	"errors"
	"fmt"
)

// Sentinel errors for permutation construction.
var (
	// ErrBadPoint indicates a non-positive point in an association list.
	ErrBadPoint = errors.New("perm: points must be positive")

	// ErrNotBijective indicates an association list that does not describe a
	// finite bijection: a source listed twice, an image repeated, or a moved
	// point whose image set does not map back onto the moved points.
	ErrNotBijective = errors.New("perm: mapping is not a bijection")
)

// Point identifies an element of the permuted domain.
// Valid points are positive integers; zero and negatives are never domain
// elements and are rejected by constructors.
type Point int

// Perm is a finite permutation stored sparsely: only moved points are
// recorded, and any point absent from storage maps to itself. The zero value
// is the identity. Perm values are immutable: every operation returns a new
// value and never mutates its receiver or arguments.
type Perm struct {
	m map[Point]Point
}

// Identity returns the identity permutation (fixes every point).
func Identity() Perm { return Perm{} }

// FromPairs builds a permutation from an explicit point→image association
// list, each pair read as source→image. Fixed-point entries (x→x) are
// accepted and normalized away, so they never occupy storage.
//
// Validation: every point must be positive (ErrBadPoint); no source may be
// listed twice, no image may repeat, and the moved points must map onto
// themselves, otherwise the list is no bijection (ErrNotBijective).
//
// Complexity: O(n) over len(pairs).
func FromPairs(pairs [][2]Point) (Perm, error) {
	m := make(map[Point]Point, len(pairs))
	for _, pr := range pairs {
		src, img := pr[0], pr[1]
		if src < 1 || img < 1 {
			return Perm{}, fmt.Errorf("%w: got %d→%d", ErrBadPoint, src, img)
		}
		if _, dup := m[src]; dup {
			return Perm{}, fmt.Errorf("%w: source %d listed twice", ErrNotBijective, src)
		}
		m[src] = img
	}

	// Normalize: fixed points are represented by absence.
	for src, img := range m {
		if src == img {
			delete(m, src)
		}
	}

	// Injectivity over the moved points.
	images := make(map[Point]struct{}, len(m))
	for _, img := range m {
		if _, dup := images[img]; dup {
			return Perm{}, fmt.Errorf("%w: image %d repeated", ErrNotBijective, img)
		}
		images[img] = struct{}{}
	}

	// A finite permutation moves its support onto itself: every image must
	// itself be a recorded source, else some point has two preimages.
	for src, img := range m {
		if _, moved := m[img]; !moved {
			return Perm{}, fmt.Errorf("%w: %d→%d leaves %d without a distinct image", ErrNotBijective, src, img, img)
		}
	}

	if len(m) == 0 {
		return Perm{}, nil
	}

	return Perm{m: m}, nil
}
