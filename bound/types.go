// Package bound defines the problem description and options for
// branch-and-bound maximization.
package bound

import "errors"

// Sentinel errors returned by Maximize.
var (
	// ErrNilObjective is returned if Problem.Objective is nil.
	ErrNilObjective = errors.New("bound: objective function is nil")

	// ErrNilExpand is returned if Problem.Expand is nil.
	ErrNilExpand = errors.New("bound: expand function is nil")

	// ErrNilBound is returned if Problem.Bound is nil while pruning is
	// enabled. Disable pruning explicitly (WithoutPruning) to search
	// without a bound estimator.
	ErrNilBound = errors.New("bound: bound estimator is nil")
)

// Problem describes one maximization search.
//
// States are opaque values owned by the caller; the engine copies them
// onto its stack, so small value structs are the intended shape.
type Problem[S any] struct {
	// Root is the initial state.
	Root S

	// Objective returns the realized objective value of a state — what the
	// state has already banked, independent of any further expansion.
	Objective func(S) int

	// Bound returns an optimistic estimate of the additional objective
	// still achievable from a state. It must never underestimate (an
	// admissible upper bound), or pruning may discard the optimum. The
	// estimate may be loose; looseness costs time, not correctness.
	Bound func(S) int

	// Expand emits the successor states of a state via the supplied push
	// callback. A state with no successors (e.g. exhausted budget) simply
	// emits nothing: its objective is final and it only competes for the
	// incumbent.
	Expand func(s S, push func(S))
}

// Option configures Maximize via functional arguments.
type Option func(*Options)

// Options holds parameters customizing one Maximize invocation.
type Options struct {
	// Prune enables bound-based pruning. Pruning is an optimization, not a
	// correctness requirement: disabling it must produce the identical
	// answer, only slower.
	Prune bool
}

// DefaultOptions returns Options with pruning enabled.
func DefaultOptions() Options {
	return Options{Prune: true}
}

// WithoutPruning disables bound-based pruning, turning the search into an
// exhaustive depth-first enumeration. Intended for verifying that a bound
// estimator does not affect the result.
func WithoutPruning() Option {
	return func(o *Options) {
		o.Prune = false
	}
}
