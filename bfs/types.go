// Package bfs provides tunable options and error definitions for
// breadth-first search over caller-defined state spaces.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNoPath is returned when the frontier exhausts without reaching a
	// goal state. Reachability failure is a recoverable condition — the
	// caller decides whether it is fatal.
	ErrNoPath = errors.New("bfs: no goal state reachable")

	// ErrNilSuccessor is returned if the successor function is nil.
	ErrNilSuccessor = errors.New("bfs: successor function is nil")

	// ErrNilGoal is returned if the goal predicate is nil.
	ErrNilGoal = errors.New("bfs: goal predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments. An invalid
// Option (e.g. a negative depth) is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters customizing a BFS invocation.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this many edges from the
	// start. A value of 0 explicitly disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a clear error
// state.
func DefaultOptions() Options {
	return Options{MaxDepth: 0, err: nil}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
