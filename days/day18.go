package days

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adventkit/aoc2022/bfs"
	"github.com/adventkit/aoc2022/grid"
)

func parseDroplet(lines []string) (map[grid.XYZ]bool, error) {
	lava := make(map[grid.XYZ]bool, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: cube %q", ErrParse, line)
		}
		var n [3]int
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: cube %q", ErrParse, line)
			}
			n[i] = v
		}
		lava[grid.Pt3(n[0], n[1], n[2])] = true
	}

	return lava, nil
}

// Day18 counts lava cube faces not touching another cube, then only the
// faces reachable by steam flooding around the droplet.
func Day18(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}
	lava, err := parseDroplet(lines)
	if err != nil {
		return Result{}, err
	}
	if len(lava) == 0 {
		return Result{}, fmt.Errorf("%w: empty droplet scan", ErrParse)
	}

	total := 0
	for cube := range lava {
		for _, n := range cube.Neighbors6() {
			if !lava[n] {
				total++
			}
		}
	}

	var box grid.Bounds3[int]
	first := true
	for cube := range lava {
		if first {
			box = grid.NewBounds3(cube)
			first = false
			continue
		}
		box = box.Extend(cube)
	}
	box = box.Grow(1)

	// flood the air shell around the droplet from a corner outside it
	steam := func(p grid.XYZ) []grid.XYZ {
		var out []grid.XYZ
		for _, n := range p.Neighbors6() {
			if box.Contains(n) && !lava[n] {
				out = append(out, n)
			}
		}

		return out
	}
	outside, err := bfs.Distances(grid.Pt3(box.Min.X, box.Min.Y, box.Min.Z), steam)
	if err != nil {
		return Result{}, err
	}

	exterior := 0
	for cube := range lava {
		for _, n := range cube.Neighbors6() {
			if _, ok := outside[n]; ok {
				exterior++
			}
		}
	}

	return ints(total, exterior), nil
}
