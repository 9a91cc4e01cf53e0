package days

import (
	"errors"
	"fmt"

	"github.com/adventkit/aoc2022/bfs"
	"github.com/adventkit/aoc2022/grid"
)

type heightmap struct {
	rows          []string
	width, height int
	start, target grid.XY
}

func parseHeightmap(lines []string) (heightmap, error) {
	if len(lines) == 0 {
		return heightmap{}, fmt.Errorf("%w: empty heightmap", ErrParse)
	}
	hm := heightmap{rows: lines, height: len(lines), width: len(lines[0])}
	start, target := false, false
	for y, row := range lines {
		if len(row) != hm.width {
			return heightmap{}, fmt.Errorf("%w: ragged heightmap row %q", ErrParse, row)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case 'S':
				hm.start, start = grid.Pt(x, y), true
			case 'E':
				hm.target, target = grid.Pt(x, y), true
			}
		}
	}
	if !start || !target {
		return heightmap{}, fmt.Errorf("%w: heightmap needs both S and E", ErrParse)
	}

	return hm, nil
}

func (hm heightmap) elevation(p grid.XY) byte {
	switch c := hm.rows[p.Y][p.X]; c {
	case 'S':
		return 'a'
	case 'E':
		return 'z'
	default:
		return c
	}
}

func (hm heightmap) contains(p grid.XY) bool {
	return p.X >= 0 && p.X < hm.width && p.Y >= 0 && p.Y < hm.height
}

// downhill lists moves from p in the reversed direction: q is a neighbor
// we could have climbed FROM, i.e. elevation(p) <= elevation(q)+1.
func (hm heightmap) downhill(p grid.XY) []grid.XY {
	var out []grid.XY
	for _, q := range p.Neighbors4() {
		if hm.contains(q) && hm.elevation(p) <= hm.elevation(q)+1 {
			out = append(out, q)
		}
	}

	return out
}

// Day12 finds the fewest steps from S to E, then from any lowest-elevation
// square to E. Both parts search backward from E so one traversal answers
// each goal predicate.
func Day12(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}
	hm, err := parseHeightmap(lines)
	if err != nil {
		return Result{}, err
	}

	fromStart, err := bfs.Distance(hm.target, func(p grid.XY) bool { return p == hm.start }, hm.downhill)
	if errors.Is(err, bfs.ErrNoPath) {
		return Result{}, fmt.Errorf("%w: summit unreachable from start", ErrNoSolution)
	}
	if err != nil {
		return Result{}, err
	}

	fromLowest, err := bfs.Distance(hm.target, func(p grid.XY) bool { return hm.elevation(p) == 'a' }, hm.downhill)
	if errors.Is(err, bfs.ErrNoPath) {
		return Result{}, fmt.Errorf("%w: no low square reaches the summit", ErrNoSolution)
	}
	if err != nil {
		return Result{}, err
	}

	return ints(fromStart, fromLowest), nil
}
