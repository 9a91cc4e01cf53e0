// Package bound provides branch-and-bound maximization over arbitrary
// state types.
//
// What
//
//   - Maximize: depth-first exploration of a state tree described by a
//     Problem (root state, realized-objective function, optimistic bound
//     estimator, successor generator), returning the maximum realized
//     objective value.
//   - Explicit stack, no recursion: depth is bounded by memory only.
//   - The incumbent best value is updated the moment a better state is
//     popped, tightening all later pruning decisions.
//
// Pruning contract
//
//	Problem.Bound must never underestimate the additional objective still
//	achievable (an admissible upper bound). Subject to that, pruning is an
//	optimization only: Maximize with WithoutPruning returns the identical
//	value, just slower. Several puzzle bounds in this repository are
//	heuristics validated against fixtures rather than proven — the pruning
//	invariance tests exist exactly to keep them honest.
//
// Budget exhaustion
//
//	There is no explicit budget in the engine. A state whose budget is
//	spent simply expands to nothing; its objective is final and it only
//	competes for the incumbent.
//
// Errors
//
//   - ErrNilObjective, ErrNilExpand for missing callbacks.
//   - ErrNilBound when pruning is enabled without a bound estimator.
package bound
