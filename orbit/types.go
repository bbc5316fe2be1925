// Package orbit provides tunable options and error definitions for
// Schreier-vector orbit construction.
package orbit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/permgroup/perm"
)

// Sentinel errors for orbit construction.
var (
	// ErrBasePoint is returned when the base point is not a positive domain
	// element.
	ErrBasePoint = errors.New("orbit: base point must be positive")

	// ErrNegativeBound is returned when the round budget is negative.
	// An undersized budget is NOT an error: construction simply stops early
	// and the vector stays sound.
	ErrNegativeBound = errors.New("orbit: round bound cannot be negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("orbit: invalid option supplied")
)

// Option configures Build behavior via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced as ErrOptionViolation when Build is invoked.
type Option func(*BuildOptions)

// BuildOptions holds hooks and concurrency knobs for orbit construction.
type BuildOptions struct {
	// OnDiscover is called once per newly recorded orbit point, with the
	// point, the 1-based index of the generator that produced it, and the
	// round it was found in. The seeded base point fires no call.
	OnDiscover func(p perm.Point, gen, round int)

	// OnRound is called after each completed round with the round number
	// and how many points that round added.
	OnRound func(round, added int)

	// Workers caps the goroutines expanding a single frontier.
	// 1 keeps construction sequential and fully deterministic.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BuildOptions with sane defaults:
//   - sequential construction (Workers == 1)
//   - no-op hooks (OnDiscover, OnRound)
//   - error channel clear.
func DefaultOptions() BuildOptions {
	return BuildOptions{
		OnDiscover: func(perm.Point, int, int) {},
		OnRound:    func(int, int) {},
		Workers:    1,
		err:        nil,
	}
}

// WithOnDiscover registers a callback to run on each new orbit point.
// When Workers > 1 the callback may fire from multiple goroutines and must
// be safe for concurrent use.
func WithOnDiscover(fn func(p perm.Point, gen, round int)) Option {
	return func(o *BuildOptions) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnRound registers a callback to run after every round. Rounds are
// sequential even under WithWorkers, so this callback never runs
// concurrently with itself.
func WithOnRound(fn func(round, added int)) Option {
	return func(o *BuildOptions) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithWorkers expands each frontier with up to n goroutines.
//
//	n > 1: parallel frontier expansion
//	n == 0 or n == 1: explicit sequential construction
//	n < 0: invalid option → ErrOptionViolation
//
// Parallelism never changes the orbit set or soundness; it only leaves the
// choice of transporter for a point discovered twice in one round to the
// scheduler.
func WithWorkers(n int) Option {
	return func(o *BuildOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "sequential"
			o.Workers = 1
		default:
			o.Workers = n
		}
	}
}
