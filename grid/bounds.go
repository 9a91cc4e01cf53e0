package grid

import "golang.org/x/exp/constraints"

// Bounds is an inclusive 2D bounding box. The zero value is not meaningful;
// construct with NewBounds or grow an initial single-point box with Extend.
type Bounds[T constraints.Signed] struct {
	Min, Max Point[T]
}

// Bounds3 is an inclusive 3D bounding box.
type Bounds3[T constraints.Signed] struct {
	Min, Max Point3[T]
}

// NewBounds returns the degenerate box covering exactly p.
func NewBounds[T constraints.Signed](p Point[T]) Bounds[T] {
	return Bounds[T]{Min: p, Max: p}
}

// NewBounds3 returns the degenerate box covering exactly p.
func NewBounds3[T constraints.Signed](p Point3[T]) Bounds3[T] {
	return Bounds3[T]{Min: p, Max: p}
}

// Extend grows the box to include p.
func (b Bounds[T]) Extend(p Point[T]) Bounds[T] {
	return Bounds[T]{
		Min: Point[T]{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y)},
		Max: Point[T]{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y)},
	}
}

// Contains reports whether p lies inside the box (inclusive).
func (b Bounds[T]) Contains(p Point[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Grow returns the box enlarged by d in every direction.
func (b Bounds[T]) Grow(d T) Bounds[T] {
	return Bounds[T]{
		Min: Point[T]{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: Point[T]{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}

// Area returns the number of lattice points covered by the box.
func (b Bounds[T]) Area() T {
	return (b.Max.X - b.Min.X + 1) * (b.Max.Y - b.Min.Y + 1)
}

// Extend grows the box to include p.
func (b Bounds3[T]) Extend(p Point3[T]) Bounds3[T] {
	return Bounds3[T]{
		Min: Point3[T]{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)},
		Max: Point3[T]{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)},
	}
}

// Contains reports whether p lies inside the box (inclusive).
func (b Bounds3[T]) Contains(p Point3[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Grow returns the box enlarged by d in every direction.
func (b Bounds3[T]) Grow(d T) Bounds3[T] {
	return Bounds3[T]{
		Min: Point3[T]{X: b.Min.X - d, Y: b.Min.Y - d, Z: b.Min.Z - d},
		Max: Point3[T]{X: b.Max.X + d, Y: b.Max.Y + d, Z: b.Max.Z + d},
	}
}
