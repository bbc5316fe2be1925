package perm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permgroup/perm"
)

// pairs is shorthand for building association lists in tests.
func pairs(ps ...[2]perm.Point) [][2]perm.Point { return ps }

// cycle builds the cyclic permutation p[0]→p[1]→…→p[n-1]→p[0].
func cycle(t *testing.T, ps ...perm.Point) perm.Perm {
	t.Helper()
	assoc := make([][2]perm.Point, len(ps))
	for i, p := range ps {
		assoc[i] = [2]perm.Point{p, ps[(i+1)%len(ps)]}
	}
	g, err := perm.FromPairs(assoc)
	require.NoError(t, err)

	return g
}

func TestFromPairs_Validation(t *testing.T) {
	// non-positive points
	_, err := perm.FromPairs(pairs([2]perm.Point{0, 1}))
	assert.ErrorIs(t, err, perm.ErrBadPoint)
	_, err = perm.FromPairs(pairs([2]perm.Point{1, -2}))
	assert.ErrorIs(t, err, perm.ErrBadPoint)

	// source listed twice
	_, err = perm.FromPairs(pairs([2]perm.Point{1, 2}, [2]perm.Point{1, 3}))
	assert.ErrorIs(t, err, perm.ErrNotBijective)

	// repeated image
	_, err = perm.FromPairs(pairs([2]perm.Point{1, 3}, [2]perm.Point{2, 3}))
	assert.ErrorIs(t, err, perm.ErrNotBijective)

	// half a transposition: 1→2 with 2 unaccounted for means 2 has two preimages
	_, err = perm.FromPairs(pairs([2]perm.Point{1, 2}))
	assert.ErrorIs(t, err, perm.ErrNotBijective)
}

func TestFromPairs_NormalizesFixedPoints(t *testing.T) {
	// explicit x→x entries collapse to the identity
	p, err := perm.FromPairs(pairs([2]perm.Point{4, 4}, [2]perm.Point{9, 9}))
	require.NoError(t, err)
	assert.True(t, p.IsIdentity())
	assert.Empty(t, p.Support())
	assert.True(t, p.Equal(perm.Identity()))
}

func TestApply_AbsentPointsAreFixed(t *testing.T) {
	swap := cycle(t, 1, 2)
	assert.Equal(t, perm.Point(2), swap.Apply(1))
	assert.Equal(t, perm.Point(1), swap.Apply(2))
	assert.Equal(t, perm.Point(41), swap.Apply(41), "unmoved point must map to itself")
}

func TestCompose_Order(t *testing.T) {
	sigma := cycle(t, 1, 2) // (1 2)
	tau := cycle(t, 2, 3)   // (2 3)

	// Compose(tau, sigma) = apply sigma first, then tau: 1 → 2 → 3.
	c := perm.Compose(tau, sigma)
	assert.Equal(t, perm.Point(3), c.Apply(1))

	// The other order: 1 → 1 under tau, then → 2 under sigma.
	d := perm.Compose(sigma, tau)
	assert.Equal(t, perm.Point(2), d.Apply(1))
	assert.False(t, c.Equal(d), "composition of non-commuting transpositions must depend on order")
}

func TestCompose_NormalizesToIdentity(t *testing.T) {
	r := cycle(t, 1, 2, 3)
	assert.True(t, perm.Compose(r, r.Invert()).IsIdentity())
	assert.True(t, perm.Compose(r.Invert(), r).IsIdentity())

	// A 3-cycle composed with itself twice returns to the identity too.
	assert.True(t, perm.Compose(r, perm.Compose(r, r)).IsIdentity())
}

func TestInvert_Roundtrip(t *testing.T) {
	r := cycle(t, 2, 5, 7, 9)
	inv := r.Invert()
	for _, x := range []perm.Point{1, 2, 5, 7, 9, 12} {
		assert.Equal(t, x, inv.Apply(r.Apply(x)), "inverse must undo Apply at %d", x)
		assert.Equal(t, x, r.Apply(inv.Apply(x)), "Apply must undo inverse at %d", x)
	}
}

func TestSupport_SortedAndMinimal(t *testing.T) {
	r := cycle(t, 9, 3, 6)
	assert.Equal(t, []perm.Point{3, 6, 9}, r.Support())
	assert.Empty(t, perm.Identity().Support())
}

func TestString_Rendering(t *testing.T) {
	assert.Equal(t, "()", perm.Identity().String())
	swap := cycle(t, 1, 2)
	assert.Equal(t, "(1→2 2→1)", swap.String())
}

// TestAlgebra_RandomizedLaws checks the group laws on randomly composed
// permutations of a small domain. The RNG is seeded for reproducibility.
func TestAlgebra_RandomizedLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const domain = 12

	// randomPerm builds a uniformly random permutation of 1..domain via an
	// index shuffle, then routes it through FromPairs.
	randomPerm := func() perm.Perm {
		images := rng.Perm(domain)
		assoc := make([][2]perm.Point, domain)
		for i, img := range images {
			assoc[i] = [2]perm.Point{perm.Point(i + 1), perm.Point(img + 1)}
		}
		p, err := perm.FromPairs(assoc)
		require.NoError(t, err)

		return p
	}

	for trial := 0; trial < 200; trial++ {
		a, b, c := randomPerm(), randomPerm(), randomPerm()

		// associativity
		left := perm.Compose(perm.Compose(a, b), c)
		right := perm.Compose(a, perm.Compose(b, c))
		assert.True(t, left.Equal(right), "associativity failed on trial %d", trial)

		// inverse law
		assert.True(t, perm.Compose(a, a.Invert()).IsIdentity(), "a·a⁻¹ ≠ id on trial %d", trial)

		// anti-homomorphism of inversion: (a·b)⁻¹ == b⁻¹·a⁻¹
		ab := perm.Compose(a, b)
		assert.True(t, ab.Invert().Equal(perm.Compose(b.Invert(), a.Invert())), "(ab)⁻¹ ≠ b⁻¹a⁻¹ on trial %d", trial)

		// pointwise agreement of Compose with sequential Apply
		x := perm.Point(rng.Intn(domain) + 1)
		assert.Equal(t, a.Apply(b.Apply(x)), ab.Apply(x), "Compose disagrees with Apply chain on trial %d", trial)
	}
}
