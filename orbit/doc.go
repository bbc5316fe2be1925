// Package orbit provides a production-grade Schreier-vector builder: the
// orbit of a base point under a finite generator list, with a transporter
// permutation recorded for every point the closure reaches.
//
// What
//
//   - Build(gens, k, bound) runs round-based closure from k: each round
//     applies every generator to the previous round's discoveries and
//     records each unseen image j with the transporter
//     Compose(generator, transporter-of-source), so every entry sends k
//     to its key.
//   - Entries are never overwritten or removed: the first discovery of a
//     point wins and the vector only grows (rebuilding with a bigger budget
//     extends, never reroutes).
//   - Construction stops at the first empty round (the fixpoint, reported by
//     Closed) or when the round budget runs out, whichever comes first. An
//     undersized budget is not an error; it yields the sound sub-vector of
//     points reachable within bound steps.
//   - CompletenessBound(gens) computes the budget that always reaches the
//     fixpoint: |union of generator supports| + 1. BuildClosure is Build
//     with exactly that budget.
//   - Supports functional hooks (OnDiscover per new point, OnRound per
//     round) and optional parallel frontier expansion via WithWorkers.
//
// Why
//
//   - The orbit-stabilizer method runs on exactly this structure: the
//     schreier package reads the finished vector to emit stabilizer
//     generators, and any transversal or membership routine needs the
//     recorded transporters.
//   - The explicit round budget keeps termination a structural property
//     instead of a timeout: budgets come from CompletenessBound, never from
//     clocks.
//
// Determinism
//
//	Sequential construction (the default) visits frontier points FIFO and
//	generators in list order, so discovery order, transporters, and hook
//	sequences are fully reproducible. With WithWorkers(n > 1) the orbit SET
//	is unchanged and every transporter stays sound, but which of two
//	same-round discoveries records its transporter is scheduling-dependent.
//
// Complexity (n = orbit size, m = |gens|, s = max support size)
//
//   - Time:   O(n · m · (s + log n))  (each point meets each generator once;
//     tree operations are logarithmic)
//   - Memory: O(n · s)                (one sparse transporter per point)
//
// Usage
//
//	// Everything reachable, budget derived, never undersized:
//	v, err := orbit.BuildClosure(gens, 1)
//	if err != nil { ... }
//	fmt.Println(v.Orbit(), v.Closed())
//
//	// Explicit budget and hooks:
//	v, err = orbit.Build(
//	    gens, 1, orbit.CompletenessBound(gens),
//	    orbit.WithOnDiscover(func(p perm.Point, gen, round int) { /* ... */ }),
//	    orbit.WithOnRound(func(round, added int) { /* ... */ }),
//	    orbit.WithWorkers(4),
//	)
//
// Options
//
//   - DefaultOptions(): sequential, no-op hooks.
//   - WithOnDiscover(fn): hook per newly recorded point (point, 1-based
//     generator index, round). Must be concurrency-safe under WithWorkers.
//   - WithOnRound(fn):    hook per completed round (round, points added).
//   - WithWorkers(n):     expand each frontier with up to n goroutines.
//
// Errors
//
//   - ErrBasePoint        if the base point is not positive.
//   - ErrNegativeBound    if the round budget is negative.
//   - ErrOptionViolation  if an invalid Option is supplied (negative Workers).
package orbit
