package days

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adventkit/aoc2022/grid"
)

var sandSource = grid.Pt(500, 0)

// parseRockPaths fills the occupancy set with every rock cell traced by
// the scan lines, and returns the deepest rock Y.
func parseRockPaths(lines []string) (map[grid.XY]bool, int, error) {
	rock := make(map[grid.XY]bool)
	maxY := 0
	for _, line := range lines {
		var prev grid.XY
		for i, field := range strings.Split(line, " -> ") {
			xField, yField, ok := strings.Cut(field, ",")
			if !ok {
				return nil, 0, fmt.Errorf("%w: scan point %q", ErrParse, field)
			}
			x, errX := strconv.Atoi(xField)
			y, errY := strconv.Atoi(yField)
			if errX != nil || errY != nil {
				return nil, 0, fmt.Errorf("%w: scan point %q", ErrParse, field)
			}
			cur := grid.Pt(x, y)
			if y > maxY {
				maxY = y
			}
			if i > 0 {
				if prev.X != cur.X && prev.Y != cur.Y {
					return nil, 0, fmt.Errorf("%w: diagonal rock segment %v to %v", ErrInvariant, prev, cur)
				}
				step := grid.Pt(clamp(cur.X-prev.X), clamp(cur.Y-prev.Y))
				for p := prev; p != cur; p = p.Add(step) {
					rock[p] = true
				}
				rock[cur] = true
			} else {
				rock[cur] = true
			}
			prev = cur
		}
	}

	return rock, maxY, nil
}

// dropSand releases one unit from the source and returns where it comes
// to rest. ok is false when the unit falls past the abyss line (floor < 0)
// or the source is already blocked.
func dropSand(filled map[grid.XY]bool, abyss, floor int) (grid.XY, bool) {
	if filled[sandSource] {
		return grid.XY{}, false
	}
	p := sandSource
	for {
		if floor < 0 && p.Y > abyss {
			return grid.XY{}, false
		}
		moved := false
		for _, d := range []grid.XY{{X: 0, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: 1}} {
			q := p.Add(d)
			if !filled[q] && (floor < 0 || q.Y < floor) {
				p, moved = q, true
				break
			}
		}
		if !moved {
			return p, true
		}
	}
}

// Day14 pours sand until it overflows into the abyss, then again with an
// infinite floor two below the deepest rock until the source clogs.
func Day14(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}
	rock, maxY, err := parseRockPaths(lines)
	if err != nil {
		return Result{}, err
	}

	filled := make(map[grid.XY]bool, len(rock))
	for p := range rock {
		filled[p] = true
	}
	abyssCount := 0
	for {
		p, ok := dropSand(filled, maxY, -1)
		if !ok {
			break
		}
		filled[p] = true
		abyssCount++
	}

	filled = make(map[grid.XY]bool, len(rock))
	for p := range rock {
		filled[p] = true
	}
	floorCount := 0
	for {
		p, ok := dropSand(filled, maxY, maxY+2)
		if !ok {
			break
		}
		filled[p] = true
		floorCount++
	}

	return ints(abyssCount, floorCount), nil
}
