package days

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adventkit/aoc2022/grid"
)

// rockShapes lists the five falling rocks as offsets from their
// bottom-left corner, in drop order. Y grows upward here.
var rockShapes = [][]grid.XY{
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},                // horizontal bar
	{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}, // plus
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}, // corner
	{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},               // vertical bar
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},               // square
}

const chamberWidth = 7

type rockChamber struct {
	filled map[grid.XY]bool
	height int // highest occupied Y + 1
	jets   string
	jet    int
}

func (c *rockChamber) fits(shape []grid.XY, at grid.XY) bool {
	for _, o := range shape {
		p := at.Add(o)
		if p.X < 0 || p.X >= chamberWidth || p.Y < 0 || c.filled[p] {
			return false
		}
	}

	return true
}

// drop releases one rock and settles it.
func (c *rockChamber) drop(shape []grid.XY) {
	at := grid.Pt(2, c.height+3)
	for {
		push := grid.Pt(1, 0)
		if c.jets[c.jet] == '<' {
			push = grid.Pt(-1, 0)
		}
		c.jet = (c.jet + 1) % len(c.jets)
		if c.fits(shape, at.Add(push)) {
			at = at.Add(push)
		}
		if c.fits(shape, at.Add(grid.Pt(0, -1))) {
			at = at.Add(grid.Pt(0, -1))
			continue
		}
		break
	}
	for _, o := range shape {
		p := at.Add(o)
		c.filled[p] = true
		if p.Y+1 > c.height {
			c.height = p.Y + 1
		}
	}
}

// Day17 drops 2022 rocks into the chamber and measures the tower.
func Day17(path string) (Result, error) {
	input, err := readAll(path)
	if err != nil {
		return Result{}, err
	}
	jets := strings.TrimSpace(input)
	if jets == "" {
		return Result{}, fmt.Errorf("%w: empty jet pattern", ErrParse)
	}
	for i := 0; i < len(jets); i++ {
		if jets[i] != '<' && jets[i] != '>' {
			return Result{}, fmt.Errorf("%w: jet %q", ErrParse, jets[i])
		}
	}

	chamber := rockChamber{filled: make(map[grid.XY]bool), jets: jets}
	for i := 0; i < 2022; i++ {
		chamber.drop(rockShapes[i%len(rockShapes)])
	}

	return Result{PartA: strconv.Itoa(chamber.height)}, nil
}
