// Package aoc2022 holds solutions for the Advent of Code 2022 puzzles,
// built around a small reusable search toolkit.
//
// Layout:
//
//	grid/   — signed-integer lattice points (2D/3D), Manhattan distance,
//	          neighbor offsets and bounding boxes
//	bfs/    — unweighted shortest path over arbitrary comparable states
//	astar/  — weighted / heuristic shortest path (Dijkstra when no
//	          heuristic is supplied)
//	bound/  — branch-and-bound maximization with optimistic-bound pruning
//	mix/    — circular-list reordering for the grove decryption puzzle
//	snafu/  — balanced base-5 numeral codec
//	days/   — one adapter per puzzle: parse an input file, return the
//	          answers for both parts
//	cmd/aoc — command line runner selecting a day and an input file
//
// Each day adapter is independent; the search packages are the only code
// shared between them. Every search invocation owns its frontier, visited
// set and accumulators exclusively, so the packages are safe for
// concurrent use by separate callers even though nothing here spawns a
// goroutine.
package aoc2022
