package grid_test

import (
	"testing"

	"github.com/adventkit/aoc2022/grid"
)

func TestManhattan(t *testing.T) {
	if got := grid.Pt(8, 7).Manhattan(grid.Pt(2, 10)); got != 9 {
		t.Errorf("Manhattan = %d; want 9", got)
	}
	if got := grid.Pt(2, 10).Manhattan(grid.Pt(8, 7)); got != 9 {
		t.Errorf("Manhattan not symmetric: got %d", got)
	}
	if got := grid.Pt3(1, 2, 3).Manhattan(grid.Pt3(-1, 2, 5)); got != 4 {
		t.Errorf("Manhattan3 = %d; want 4", got)
	}
}

func TestNeighborOrder(t *testing.T) {
	// The up, right, down, left order is relied on for deterministic
	// traversal; pin it.
	want := [4]grid.XY{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	if got := grid.Pt(0, 0).Neighbors4(); got != want {
		t.Errorf("Neighbors4 = %v; want %v", got, want)
	}
}

func TestNeighborsAreUnitDistance(t *testing.T) {
	p := grid.Pt(3, -2)
	for _, n := range p.Neighbors4() {
		if p.Manhattan(n) != 1 {
			t.Errorf("neighbor %v not at distance 1 from %v", n, p)
		}
	}
	q := grid.Pt3(0, 0, 0)
	for _, n := range q.Neighbors6() {
		if q.Manhattan(n) != 1 {
			t.Errorf("neighbor %v not at distance 1 from %v", n, q)
		}
	}
	seen := map[grid.XY]bool{}
	for _, n := range p.Neighbors8() {
		if seen[n] {
			t.Errorf("duplicate neighbor %v", n)
		}
		seen[n] = true
	}
	if len(seen) != 8 {
		t.Errorf("Neighbors8 produced %d distinct points; want 8", len(seen))
	}
}

func TestBounds(t *testing.T) {
	b := grid.NewBounds(grid.Pt(2, 3))
	b = b.Extend(grid.Pt(-1, 7))
	b = b.Extend(grid.Pt(4, 0))

	if b.Min != grid.Pt(-1, 0) || b.Max != grid.Pt(4, 7) {
		t.Fatalf("bounds = %v", b)
	}
	if !b.Contains(grid.Pt(0, 0)) || b.Contains(grid.Pt(5, 0)) {
		t.Errorf("Contains misbehaves on %v", b)
	}
	if got := b.Area(); got != 48 {
		t.Errorf("Area = %d; want 48", got)
	}
	if g := b.Grow(1); !g.Contains(grid.Pt(5, 8)) || g.Contains(grid.Pt(6, 8)) {
		t.Errorf("Grow misbehaves: %v", g)
	}
}

func TestBounds3(t *testing.T) {
	b := grid.NewBounds3(grid.Pt3(1, 1, 1)).Extend(grid.Pt3(3, 2, 6))
	if !b.Contains(grid.Pt3(2, 1, 5)) || b.Contains(grid.Pt3(0, 1, 5)) {
		t.Errorf("Contains misbehaves on %v", b)
	}
	if g := b.Grow(1); !g.Contains(grid.Pt3(0, 0, 0)) {
		t.Errorf("Grow misbehaves: %v", g)
	}
}
