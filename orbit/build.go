// Package orbit builds Schreier vectors by breadth-first closure: round after
// round, every generator is applied to the newest points until nothing new
// appears or the round budget runs out.
package orbit

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/permgroup/perm"
)

// builder carries construction state across rounds.
type builder struct {
	gens []perm.Perm
	vec  *Vector
	opts BuildOptions
}

// Build computes the Schreier vector of base point k under gens, running at
// most bound rounds of frontier extension and stopping early once a round
// discovers nothing.
//
// The result is always sound: every recorded transporter sends k to its key
// and is a composition of generators. It is complete whenever
// bound ≥ CompletenessBound(gens); a smaller budget silently yields the
// points reachable within bound steps. Rebuilding with a larger budget never
// shrinks or reroutes what an earlier build found, only extends it.
//
// Returns ErrBasePoint when k < 1, ErrNegativeBound when bound < 0, and
// ErrOptionViolation for invalid options.
func Build(gens []perm.Perm, k perm.Point, bound int, opts ...Option) (*Vector, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if bound < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeBound, bound)
	}

	v, err := NewVector(k)
	if err != nil {
		return nil, err
	}

	b := &builder{gens: gens, vec: v, opts: o}
	b.loop(bound)

	return v, nil
}

// BuildClosure runs Build with the budget CompletenessBound(gens), the
// smallest bound guaranteed to reach the fixpoint. The returned vector is
// sound, complete, and always reports Closed.
func BuildClosure(gens []perm.Perm, k perm.Point, opts ...Option) (*Vector, error) {
	return Build(gens, k, CompletenessBound(gens), opts...)
}

// CompletenessBound returns the round budget that guarantees Build discovers
// the full orbit of any base point: the size of the union of the generators'
// supports, plus one.
//
// Every orbit point is reachable by a loop-free connecting word (see
// word.ShortenConnecting); each of its letters moves the current point, so
// the word's length cannot exceed the union's size, and one further round
// observes the fixpoint.
func CompletenessBound(gens []perm.Perm) int {
	union := make(map[perm.Point]struct{})
	for _, g := range gens {
		for _, p := range g.Support() {
			union[p] = struct{}{}
		}
	}

	return len(union) + 1
}

// loop runs rounds until the budget is spent or a round adds nothing.
func (b *builder) loop(bound int) {
	if len(b.gens) == 0 {
		// Nothing can ever extend the frontier: the singleton orbit is
		// already closed, whatever the budget says.
		b.vec.markClosed()

		return
	}

	frontier := []perm.Point{b.vec.Base()}
	for round := 1; round <= bound; round++ {
		var next []perm.Point
		if b.opts.Workers > 1 {
			next = b.expandParallel(frontier, round)
		} else {
			next = b.extend(frontier, round)
		}
		b.opts.OnRound(round, len(next))
		if len(next) == 0 {
			b.vec.markClosed()

			return
		}
		frontier = next
	}
}

// extend applies every generator, in list order, to every frontier point, in
// FIFO order, recording each unseen image with the transporter
// Compose(generator, transporter-of-source). Returns the points this call
// added, in discovery order.
func (b *builder) extend(frontier []perm.Point, round int) []perm.Point {
	next := make([]perm.Point, 0, len(frontier))
	for _, p := range frontier {
		via, ok := b.vec.Transporter(p)
		if !ok {
			// A frontier point always carries an entry by construction;
			// anything else is a foreign point and extension ignores it.
			continue
		}
		for gi, g := range b.gens {
			j := g.Apply(p)
			if b.vec.Has(j) {
				continue
			}
			if b.vec.insert(j, perm.Compose(g, via)) {
				b.opts.OnDiscover(j, gi+1, round)
				next = append(next, j)
			}
		}
	}

	return next
}

// expandParallel splits one frontier across up to opts.Workers goroutines,
// each running extend on its chunk. The vector's locked insert elects a
// single winner per point, so the merged next slice never holds duplicates;
// which worker wins is scheduling-dependent, the resulting orbit set is not.
func (b *builder) expandParallel(frontier []perm.Point, round int) []perm.Point {
	workers := b.opts.Workers
	if workers > len(frontier) {
		workers = len(frontier)
	}
	if workers <= 1 {
		return b.extend(frontier, round)
	}

	var (
		mu   sync.Mutex
		next []perm.Point
		wg   sync.WaitGroup
	)
	chunk := (len(frontier) + workers - 1) / workers
	for start := 0; start < len(frontier); start += chunk {
		end := start + chunk
		if end > len(frontier) {
			end = len(frontier)
		}
		wg.Add(1)
		go func(part []perm.Point) {
			defer wg.Done()
			local := b.extend(part, round)
			if len(local) == 0 {
				return
			}
			mu.Lock()
			next = append(next, local...)
			mu.Unlock()
		}(frontier[start:end])
	}
	wg.Wait()

	return next
}
