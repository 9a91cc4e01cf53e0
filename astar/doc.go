// Package astar provides weighted shortest-path search over arbitrary
// comparable state types: A* with an admissible heuristic, or plain
// Dijkstra when none is supplied.
//
// What
//
//   - Search: minimum total cost from a start state to any state
//     satisfying a goal predicate, or ErrNoPath.
//   - Successors are (state, incremental cost) pairs generated on demand;
//     costs must be non-negative.
//   - Optional WithHeuristic(h): h must never overestimate the true
//     remaining cost (documented precondition, not runtime-checked) or the
//     returned cost may not be minimal.
//   - Optional WithMaxCost(c): states costing more than c are not explored.
//
// Time-varying obstacles
//
//	Extend the state with a discrete time component and compute obstacle
//	positions as a pure function of that time inside the successor
//	function. The same spatial coordinate may then be revisited at
//	different times without collision, and the engine needs no mutable
//	obstacle state.
//
// Determinism
//
//	The frontier orders by (cost+heuristic, cost, insertion sequence), so
//	two runs over the same input visit states in the same order.
//
// Complexity (V = reachable states, E = successor edges)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) worst case under lazy decrease-key
//
// Errors
//
//   - ErrNilGoal, ErrNilSuccessor for missing callbacks.
//   - ErrNegativeCost if a successor edge has negative cost.
//   - ErrOptionViolation for an invalid option (negative MaxCost).
//   - ErrNoPath when the frontier exhausts without settling a goal.
package astar
