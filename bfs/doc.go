// Package bfs provides breadth-first search over arbitrary comparable
// state types, returning unweighted shortest-path distances.
//
// What
//
//   - Distance: minimum edge count from a start state to any state
//     satisfying a goal predicate, or ErrNoPath.
//   - Distances: depth of every reachable state (flood fill / all
//     hop-counts from one source).
//   - Adjacency generated on demand via a successor function; no stored
//     graph, no shared state between invocations.
//
// Determinism
//
//	States are enqueued in exactly the order the successor function
//	returns them, so a deterministic successor function yields a fully
//	reproducible traversal.
//
// Invariant
//
//	A state is marked visited when enqueued, so no state is ever expanded
//	twice and the depth recorded for it is final.
//
// Complexity (V = reachable states, E = successor edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue and visited set
//
// Errors
//
//   - ErrNilGoal, ErrNilSuccessor for missing callbacks.
//   - ErrOptionViolation for an invalid option (negative MaxDepth).
//   - ErrNoPath when the frontier exhausts without reaching a goal.
package bfs
