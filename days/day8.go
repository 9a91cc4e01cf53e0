package days

import (
	"fmt"

	"github.com/adventkit/aoc2022/grid"
)

// treeGrid holds tree heights as digits, row-major.
type treeGrid struct {
	heights       [][]byte
	width, height int
}

func parseTreeGrid(lines []string) (treeGrid, error) {
	if len(lines) == 0 {
		return treeGrid{}, fmt.Errorf("%w: empty height map", ErrParse)
	}
	g := treeGrid{height: len(lines), width: len(lines[0])}
	for _, line := range lines {
		if len(line) != g.width {
			return treeGrid{}, fmt.Errorf("%w: ragged row %q", ErrParse, line)
		}
		for i := 0; i < len(line); i++ {
			if line[i] < '0' || line[i] > '9' {
				return treeGrid{}, fmt.Errorf("%w: tree height %q", ErrParse, line[i])
			}
		}
		g.heights = append(g.heights, []byte(line))
	}

	return g, nil
}

func (g treeGrid) at(p grid.XY) byte { return g.heights[p.Y][p.X] }

func (g treeGrid) contains(p grid.XY) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// visible reports whether the tree is visible from outside along at least
// one of the four axis directions.
func (g treeGrid) visible(p grid.XY) bool {
	h := g.at(p)
	for _, d := range p.Neighbors4() {
		step := grid.Pt(d.X-p.X, d.Y-p.Y)
		blocked := false
		for q := d; g.contains(q); q = q.Add(step) {
			if g.at(q) >= h {
				blocked = true
				break
			}
		}
		if !blocked {
			return true
		}
	}

	return false
}

// scenicScore multiplies the viewing distances in the four directions.
func (g treeGrid) scenicScore(p grid.XY) int {
	h := g.at(p)
	score := 1
	for _, d := range p.Neighbors4() {
		step := grid.Pt(d.X-p.X, d.Y-p.Y)
		dist := 0
		for q := d; g.contains(q); q = q.Add(step) {
			dist++
			if g.at(q) >= h {
				break
			}
		}
		score *= dist
	}

	return score
}

// Day8 counts trees visible from outside the grid and finds the highest
// scenic score.
func Day8(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}
	g, err := parseTreeGrid(lines)
	if err != nil {
		return Result{}, err
	}

	visible, best := 0, 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := grid.Pt(x, y)
			if g.visible(p) {
				visible++
			}
			if s := g.scenicScore(p); s > best {
				best = s
			}
		}
	}

	return ints(visible, best), nil
}
