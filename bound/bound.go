// Package bound implements branch-and-bound maximization with an explicit
// depth-first stack.
//
// Rationale:
//  1. The stack is explicit, so search depth is limited by memory, not by
//     goroutine stack growth.
//  2. The incumbent (best realized objective) only ever improves; a popped
//     state first competes for the incumbent, then is expanded only if its
//     optimistic bound still lets it beat the incumbent.
//  3. Pruning compares objective+bound > incumbent strictly, so subtrees
//     that can at best tie are cut — ties never improve a maximum.
package bound

// engine holds all search data for one Maximize invocation.
type engine[S any] struct {
	problem Problem[S]
	opts    Options
	stack   []S
	best    int // incumbent, mutated monotonically upward
}

// Maximize explores the state tree of p depth-first and returns the
// maximum realized objective value over all reachable states.
//
// The root state always competes for the incumbent, so the result is at
// least p.Objective(p.Root). With pruning enabled (the default) p.Bound
// must be an admissible upper bound on the additional achievable
// objective; with WithoutPruning, p.Bound may be nil and the search is
// exhaustive.
//
// Complexity: worst case exponential in tree depth (exact search);
// practical speed comes entirely from the tightness of p.Bound.
func Maximize[S any](p Problem[S], opts ...Option) (int, error) {
	if p.Objective == nil {
		return 0, ErrNilObjective
	}
	if p.Expand == nil {
		return 0, ErrNilExpand
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Prune && p.Bound == nil {
		return 0, ErrNilBound
	}

	e := &engine[S]{problem: p, opts: o}

	return e.run(), nil
}

func (e *engine[S]) run() int {
	e.best = e.problem.Objective(e.problem.Root)
	e.stack = append(e.stack, e.problem.Root)

	push := func(s S) { e.stack = append(e.stack, s) }

	for len(e.stack) > 0 {
		n := len(e.stack) - 1
		state := e.stack[n]
		e.stack = e.stack[:n]

		realized := e.problem.Objective(state)
		if realized > e.best {
			e.best = realized
		}

		// Prune: if even the optimistic completion cannot strictly beat
		// the incumbent, the subtree is dead.
		if e.opts.Prune && realized+e.problem.Bound(state) <= e.best {
			continue
		}

		e.problem.Expand(state, push)
	}

	return e.best
}
