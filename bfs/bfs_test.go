package bfs_test

import (
	"errors"
	"testing"

	"github.com/adventkit/aoc2022/bfs"
	"github.com/adventkit/aoc2022/grid"
)

// lineNext builds a successor function over the integer line 0..n-1.
func lineNext(n int) func(int) []int {
	return func(s int) []int {
		var out []int
		if s > 0 {
			out = append(out, s-1)
		}
		if s < n-1 {
			out = append(out, s+1)
		}

		return out
	}
}

func TestDistance_Errors(t *testing.T) {
	if _, err := bfs.Distance(0, nil, lineNext(3)); !errors.Is(err, bfs.ErrNilGoal) {
		t.Errorf("nil goal: want ErrNilGoal, got %v", err)
	}
	if _, err := bfs.Distance(0, func(int) bool { return true }, nil); !errors.Is(err, bfs.ErrNilSuccessor) {
		t.Errorf("nil successor: want ErrNilSuccessor, got %v", err)
	}
	goal := func(s int) bool { return s == 2 }
	if _, err := bfs.Distance(0, goal, lineNext(3), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

func TestDistance_StartIsGoal(t *testing.T) {
	d, err := bfs.Distance(5, func(s int) bool { return s == 5 }, lineNext(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Errorf("Distance = %d; want 0", d)
	}
}

func TestDistance_Unreachable(t *testing.T) {
	// Even numbers only; odd goal can never be hit.
	next := func(s int) []int {
		if s >= 8 {
			return nil
		}

		return []int{s + 2}
	}
	if _, err := bfs.Distance(0, func(s int) bool { return s == 3 }, next); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("want ErrNoPath, got %v", err)
	}
}

func TestDistance_MaxDepth(t *testing.T) {
	goal := func(s int) bool { return s == 4 }
	if _, err := bfs.Distance(0, goal, lineNext(10), bfs.WithMaxDepth(3)); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("depth-limited search should fail: got %v", err)
	}
	if d, err := bfs.Distance(0, goal, lineNext(10), bfs.WithMaxDepth(4)); err != nil || d != 4 {
		t.Errorf("Distance = %d, %v; want 4, nil", d, err)
	}
	// MaxDepth 0 is an explicit "no limit".
	if d, err := bfs.Distance(0, goal, lineNext(10), bfs.WithMaxDepth(0)); err != nil || d != 4 {
		t.Errorf("Distance = %d, %v; want 4, nil", d, err)
	}
}

// heightmapFixture is the 5×8 hill-climbing example: distances must match
// exhaustive search (31 from the fixed start, 29 from the best zero-height
// start).
var heightmapFixture = []string{
	"aabqponm",
	"abcryxxl",
	"accszzxk",
	"acctuvwj",
	"abdefghi",
}

func heightmapNext(heights map[grid.XY]byte) func(grid.XY) []grid.XY {
	return func(p grid.XY) []grid.XY {
		var out []grid.XY
		for _, n := range p.Neighbors4() {
			h, ok := heights[n]
			if ok && h <= heights[p]+1 {
				out = append(out, n)
			}
		}

		return out
	}
}

func parseHeightmap(lines []string) map[grid.XY]byte {
	heights := make(map[grid.XY]byte)
	for y, line := range lines {
		for x := range line {
			heights[grid.Pt(x, y)] = line[x] - 'a'
		}
	}

	return heights
}

func TestDistance_HeightmapFixture(t *testing.T) {
	heights := parseHeightmap(heightmapFixture)
	end := grid.Pt(5, 2)
	goal := func(p grid.XY) bool { return p == end }

	d, err := bfs.Distance(grid.Pt(0, 0), goal, heightmapNext(heights))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 31 {
		t.Errorf("Distance from fixed start = %d; want 31", d)
	}

	best := -1
	for p, h := range heights {
		if h != 0 {
			continue
		}
		d, err := bfs.Distance(p, goal, heightmapNext(heights))
		if err != nil {
			continue // some zero-height tiles may be cut off
		}
		if best < 0 || d < best {
			best = d
		}
	}
	if best != 29 {
		t.Errorf("best zero-height start = %d; want 29", best)
	}
}

// TestDistance_MatchesExhaustive cross-checks BFS against an independent
// exhaustive (iterative-deepening) search on the fixture's top-left corner.
func TestDistance_MatchesExhaustive(t *testing.T) {
	heights := parseHeightmap(heightmapFixture)
	next := heightmapNext(heights)
	target := grid.Pt(4, 3) // an interior tile

	got, err := bfs.Distance(grid.Pt(0, 0), func(p grid.XY) bool { return p == target }, next)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Exhaustive: smallest depth d such that a depth-limited flood reaches
	// the target.
	want := -1
	for d := 0; d < len(heights); d++ {
		depths, err := bfs.Distances(grid.Pt(0, 0), next, bfs.WithMaxDepth(d))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := depths[target]; ok {
			want = d
			break
		}
	}
	if got != want {
		t.Errorf("Distance = %d; exhaustive search says %d", got, want)
	}
}

func TestDistances_Flood(t *testing.T) {
	depths, err := bfs.Distances(0, lineNext(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for s := 0; s < 5; s++ {
		if depths[s] != s {
			t.Errorf("depth[%d] = %d; want %d", s, depths[s], s)
		}
	}
}
