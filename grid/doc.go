// Package grid provides the coordinate model shared by the puzzle
// adapters: immutable signed-integer lattice points in two or three
// dimensions, equality and hashing by value, Manhattan distance, unit
// neighbor generation, and bounding boxes.
//
// Points are plain value structs so they can be used directly as map and
// set keys. Adjacency is always generated on demand — there is no stored
// graph; a search receives a successor function that calls, for example,
// Point.Neighbors4 and filters the results against the puzzle's own
// obstacle data.
//
// Complexity: every operation in this package is O(1) and allocation-free
// except the Neighbors* helpers, which return small fixed-size arrays.
package grid
