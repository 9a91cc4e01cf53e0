package astar_test

import (
	"errors"
	"testing"

	"github.com/adventkit/aoc2022/astar"
	"github.com/adventkit/aoc2022/bfs"
	"github.com/adventkit/aoc2022/grid"
)

func unitLine(n int) func(int) []astar.Edge[int] {
	return func(s int) []astar.Edge[int] {
		var out []astar.Edge[int]
		if s > 0 {
			out = append(out, astar.Edge[int]{To: s - 1, Cost: 1})
		}
		if s < n-1 {
			out = append(out, astar.Edge[int]{To: s + 1, Cost: 1})
		}

		return out
	}
}

func TestSearch_Errors(t *testing.T) {
	goal := func(s int) bool { return s == 2 }
	if _, err := astar.Search(0, nil, unitLine(3)); !errors.Is(err, astar.ErrNilGoal) {
		t.Errorf("nil goal: want ErrNilGoal, got %v", err)
	}
	if _, err := astar.Search(0, goal, nil); !errors.Is(err, astar.ErrNilSuccessor) {
		t.Errorf("nil successor: want ErrNilSuccessor, got %v", err)
	}
	if _, err := astar.Search(0, goal, unitLine(3), astar.WithMaxCost[int](-1)); !errors.Is(err, astar.ErrOptionViolation) {
		t.Errorf("negative cap: want ErrOptionViolation, got %v", err)
	}
	bad := func(s int) []astar.Edge[int] { return []astar.Edge[int]{{To: s + 1, Cost: -1}} }
	if _, err := astar.Search(0, goal, bad); !errors.Is(err, astar.ErrNegativeCost) {
		t.Errorf("negative cost: want ErrNegativeCost, got %v", err)
	}
}

func TestSearch_StartIsGoal(t *testing.T) {
	c, err := astar.Search(3, func(s int) bool { return s == 3 }, unitLine(5))
	if err != nil || c != 0 {
		t.Errorf("Search = %d, %v; want 0, nil", c, err)
	}
}

func TestSearch_Unreachable(t *testing.T) {
	if _, err := astar.Search(0, func(s int) bool { return s == 99 }, unitLine(5)); !errors.Is(err, astar.ErrNoPath) {
		t.Errorf("want ErrNoPath, got %v", err)
	}
	if _, err := astar.Search(0, func(s int) bool { return s == 4 }, unitLine(5), astar.WithMaxCost[int](3)); !errors.Is(err, astar.ErrNoPath) {
		t.Errorf("capped search should fail: got %v", err)
	}
}

// TestSearch_NeverBelowBFS checks the admissibility sanity property: on a
// uniform unit-cost graph the weighted search returns exactly the BFS
// distance, with and without a heuristic.
func TestSearch_NeverBelowBFS(t *testing.T) {
	const n = 12
	bfsNext := func(s int) []int {
		var out []int
		for _, e := range unitLine(n)(s) {
			out = append(out, e.To)
		}

		return out
	}
	for target := 0; target < n; target++ {
		goalB := func(s int) bool { return s == target }
		want, err := bfs.Distance(0, goalB, bfsNext)
		if err != nil {
			t.Fatalf("bfs: %v", err)
		}

		got, err := astar.Search(0, goalB, unitLine(n))
		if err != nil {
			t.Fatalf("dijkstra: %v", err)
		}
		if got != want {
			t.Errorf("dijkstra(%d) = %d; bfs says %d", target, got, want)
		}

		h := func(s int) int { return max(target-s, s-target) } // exact, hence admissible
		got, err = astar.Search(0, goalB, unitLine(n), astar.WithHeuristic(h))
		if err != nil {
			t.Fatalf("a*: %v", err)
		}
		if got != want {
			t.Errorf("a*(%d) = %d; bfs says %d", target, got, want)
		}
	}
}

func TestSearch_WeightedShortcut(t *testing.T) {
	// 0→1→2 costs 2+2, direct 0→2 costs 5; the two-hop route must win.
	next := func(s int) []astar.Edge[int] {
		switch s {
		case 0:
			return []astar.Edge[int]{{To: 2, Cost: 5}, {To: 1, Cost: 2}}
		case 1:
			return []astar.Edge[int]{{To: 2, Cost: 2}}
		}

		return nil
	}
	c, err := astar.Search(0, func(s int) bool { return s == 2 }, next)
	if err != nil || c != 4 {
		t.Errorf("Search = %d, %v; want 4, nil", c, err)
	}
}

// timedCell is a corridor position plus a discrete minute, for the mobile
// obstacle scenario.
type timedCell struct {
	pos grid.XY
	t   int
}

// obstacleAt returns the position of a single obstacle bouncing across a
// corridor of width w with period 2(w-1), as a pure function of time.
func obstacleAt(t, w int) grid.XY {
	period := 2 * (w - 1)
	phase := t % period
	if phase < w {
		return grid.Pt(phase, 0)
	}

	return grid.Pt(period-phase, 0)
}

// TestSearch_MobileObstacle compares A* arrival time against a brute-force
// time-expanded BFS on a corridor with one cycling obstacle.
func TestSearch_MobileObstacle(t *testing.T) {
	const w = 6
	target := grid.Pt(w-1, 0)

	moves := func(s timedCell) []timedCell {
		nt := s.t + 1
		n4 := s.pos.Neighbors4()
		cand := append(n4[:], s.pos) // moving or waiting
		var out []timedCell
		for _, p := range cand {
			if p.Y != 0 || p.X < 0 || p.X >= w {
				continue
			}
			if p == obstacleAt(nt, w) {
				continue
			}
			out = append(out, timedCell{pos: p, t: nt})
		}

		return out
	}

	goal := func(s timedCell) bool { return s.pos == target }
	start := timedCell{pos: grid.Pt(0, 0), t: 0}

	// Each edge costs one minute, so total cost == arrival minute.
	edges := func(s timedCell) []astar.Edge[timedCell] {
		var out []astar.Edge[timedCell]
		for _, n := range moves(s) {
			out = append(out, astar.Edge[timedCell]{To: n, Cost: 1})
		}

		return out
	}
	h := func(s timedCell) int { return s.pos.Manhattan(target) }

	got, err := astar.Search(start, goal, edges, astar.WithHeuristic(h))
	if err != nil {
		t.Fatalf("a*: %v", err)
	}

	want, err := bfs.Distance(start, goal, moves)
	if err != nil {
		t.Fatalf("time-expanded bfs: %v", err)
	}

	if got != want {
		t.Errorf("a* arrival = %d; brute-force bfs says %d", got, want)
	}
}
