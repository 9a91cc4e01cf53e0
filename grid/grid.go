// Package grid defines lattice point types and bounding boxes used by the
// puzzle adapters and the search packages' callers.
package grid

import "golang.org/x/exp/constraints"

// Point is an immutable 2D lattice coordinate. Equality and hashing are
// by value, so Point works as a map/set key.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Point3 is an immutable 3D lattice coordinate.
type Point3[T constraints.Signed] struct {
	X, Y, Z T
}

// XY and XYZ are the int instantiations every adapter uses.
type (
	XY  = Point[int]
	XYZ = Point3[int]
)

// Pt is shorthand for constructing a Point.
func Pt[T constraints.Signed](x, y T) Point[T] { return Point[T]{X: x, Y: y} }

// Pt3 is shorthand for constructing a Point3.
func Pt3[T constraints.Signed](x, y, z T) Point3[T] { return Point3[T]{X: x, Y: y, Z: z} }

// Add returns the component-wise sum p+q.
func (p Point[T]) Add(q Point[T]) Point[T] { return Point[T]{X: p.X + q.X, Y: p.Y + q.Y} }

// Manhattan returns the L1 distance between p and q.
func (p Point[T]) Manhattan(q Point[T]) T {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Neighbors4 returns the four orthogonal neighbors of p in a fixed order:
// up, right, down, left. The order is part of the contract — searches that
// enqueue neighbors in this order are fully deterministic.
func (p Point[T]) Neighbors4() [4]Point[T] {
	return [4]Point[T]{
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
	}
}

// Neighbors8 returns the eight orthogonal and diagonal neighbors of p,
// clockwise from up.
func (p Point[T]) Neighbors8() [8]Point[T] {
	return [8]Point[T]{
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y + 1},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y - 1},
	}
}

// Add returns the component-wise sum p+q.
func (p Point3[T]) Add(q Point3[T]) Point3[T] {
	return Point3[T]{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Manhattan returns the L1 distance between p and q.
func (p Point3[T]) Manhattan(q Point3[T]) T {
	return abs(p.X-q.X) + abs(p.Y-q.Y) + abs(p.Z-q.Z)
}

// Neighbors6 returns the six face-adjacent neighbors of p: the ±X pair,
// then ±Y, then ±Z.
func (p Point3[T]) Neighbors6() [6]Point3[T] {
	return [6]Point3[T]{
		{X: p.X - 1, Y: p.Y, Z: p.Z},
		{X: p.X + 1, Y: p.Y, Z: p.Z},
		{X: p.X, Y: p.Y - 1, Z: p.Z},
		{X: p.X, Y: p.Y + 1, Z: p.Z},
		{X: p.X, Y: p.Y, Z: p.Z - 1},
		{X: p.X, Y: p.Y, Z: p.Z + 1},
	}
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
