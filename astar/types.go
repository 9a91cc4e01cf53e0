// Package astar defines core types and configuration options for weighted
// and heuristic-guided shortest-path search.
package astar

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNoPath is returned when the frontier exhausts without settling a
	// goal state.
	ErrNoPath = errors.New("astar: no goal state reachable")

	// ErrNilSuccessor is returned if the successor function is nil.
	ErrNilSuccessor = errors.New("astar: successor function is nil")

	// ErrNilGoal is returned if the goal predicate is nil.
	ErrNilGoal = errors.New("astar: goal predicate is nil")

	// ErrNegativeCost is returned when a successor edge carries a negative
	// incremental cost. Both Dijkstra and A* require non-negative costs.
	ErrNegativeCost = errors.New("astar: negative edge cost encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Edge is one successor produced by the caller's successor function: the
// neighbor state and the non-negative incremental cost of moving to it.
type Edge[S comparable] struct {
	To   S
	Cost int
}

// Option configures Search via functional arguments. Options carry the
// state type because the heuristic does.
type Option[S comparable] func(*Options[S])

// Options holds parameters customizing one Search invocation.
type Options[S comparable] struct {
	// Heuristic estimates the remaining cost from a state to the nearest
	// goal. It must never overestimate the true remaining cost or
	// optimality is not guaranteed; this precondition is documented, not
	// runtime-checked. A nil Heuristic makes Search plain Dijkstra.
	Heuristic func(S) int

	// MaxCost, if set below the default, stops exploring states whose
	// accumulated cost exceeds it.
	MaxCost int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no heuristic (Dijkstra) and no cost
// cap.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{Heuristic: nil, MaxCost: math.MaxInt, err: nil}
}

// WithHeuristic sets an admissible estimate of remaining cost. Passing nil
// is an explicit request for plain Dijkstra.
func WithHeuristic[S comparable](h func(S) int) Option[S] {
	return func(o *Options[S]) {
		o.Heuristic = h
	}
}

// WithMaxCost caps the accumulated cost to explore. Must be non-negative;
// negative values cause ErrOptionViolation.
func WithMaxCost[S comparable](c int) Option[S] {
	return func(o *Options[S]) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}
