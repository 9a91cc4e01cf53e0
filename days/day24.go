package days

import (
	"errors"
	"fmt"

	"github.com/adventkit/aoc2022/astar"
	"github.com/adventkit/aoc2022/grid"
)

// basin is the blizzard valley. Blizzards are stored at their minute-zero
// positions, one boolean grid per direction; occupancy at any minute is a
// back-shift into those grids, so the simulation never materializes future
// blizzard layouts.
type basin struct {
	width, height int // full extent including walls
	right         [][]bool
	left          [][]bool
	up            [][]bool
	down          [][]bool
	start, target grid.XY
}

func parseBasin(lines []string) (basin, error) {
	if len(lines) < 3 {
		return basin{}, fmt.Errorf("%w: valley map too small", ErrParse)
	}
	b := basin{height: len(lines), width: len(lines[0])}
	if b.width < 3 {
		return basin{}, fmt.Errorf("%w: valley map too narrow", ErrParse)
	}
	for _, dir := range []*[][]bool{&b.right, &b.left, &b.up, &b.down} {
		*dir = make([][]bool, b.height)
		for y := range *dir {
			(*dir)[y] = make([]bool, b.width)
		}
	}

	for y, line := range lines {
		if len(line) != b.width {
			return basin{}, fmt.Errorf("%w: ragged valley row %q", ErrParse, line)
		}
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '>':
				b.right[y][x] = true
			case '<':
				b.left[y][x] = true
			case '^':
				b.up[y][x] = true
			case 'v':
				b.down[y][x] = true
			case '#', '.':
			default:
				return basin{}, fmt.Errorf("%w: valley cell %q", ErrParse, line[x])
			}
		}
	}

	b.start = grid.Pt(1, 0)
	b.target = grid.Pt(b.width-2, b.height-1)
	if lines[0][b.start.X] != '.' || lines[b.height-1][b.target.X] != '.' {
		return basin{}, fmt.Errorf("%w: valley entrances not open", ErrInvariant)
	}

	return b, nil
}

// open reports whether p is inside the valley and not a wall. Only the
// two entrance gaps break the wall ring.
func (b basin) open(p grid.XY) bool {
	if p == b.start || p == b.target {
		return true
	}

	return p.X >= 1 && p.X <= b.width-2 && p.Y >= 1 && p.Y <= b.height-2
}

// blizzardAt reports whether any blizzard occupies p at the given minute.
func (b basin) blizzardAt(p grid.XY, minute int) bool {
	if p.Y < 1 || p.Y > b.height-2 {
		return false // entrance cells, blizzards never reach them
	}
	w, h := b.width-2, b.height-2
	mod := func(v, m int) int { return ((v % m) + m) % m }

	return b.right[p.Y][mod(p.X-1-minute, w)+1] ||
		b.left[p.Y][mod(p.X-1+minute, w)+1] ||
		b.up[mod(p.Y-1+minute, h)+1][p.X] ||
		b.down[mod(p.Y-1-minute, h)+1][p.X]
}

// expeditionState is one node of the time-expanded valley.
type expeditionState struct {
	pos    grid.XY
	minute int
}

// trip finds the fewest minutes from one entrance to the other, starting
// at the given minute.
func (b basin) trip(from, to grid.XY, startMinute int) (int, error) {
	next := func(s expeditionState) []astar.Edge[expeditionState] {
		minute := s.minute + 1
		n4 := s.pos.Neighbors4()
		candidates := append(n4[:], s.pos)
		var out []astar.Edge[expeditionState]
		for _, p := range candidates {
			if b.open(p) && !b.blizzardAt(p, minute) {
				out = append(out, astar.Edge[expeditionState]{
					To:   expeditionState{pos: p, minute: minute},
					Cost: 1,
				})
			}
		}

		return out
	}

	minutes, err := astar.Search(
		expeditionState{pos: from, minute: startMinute},
		func(s expeditionState) bool { return s.pos == to },
		next,
		astar.WithHeuristic(func(s expeditionState) int { return s.pos.Manhattan(to) }),
	)
	if errors.Is(err, astar.ErrNoPath) {
		return 0, fmt.Errorf("%w: expedition trapped at minute %d", ErrNoSolution, startMinute)
	}
	if err != nil {
		return 0, err
	}

	return startMinute + minutes, nil
}

// Day24 crosses the blizzard valley, then crosses back for the snacks and
// over again.
func Day24(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}
	b, err := parseBasin(lines)
	if err != nil {
		return Result{}, err
	}

	there, err := b.trip(b.start, b.target, 0)
	if err != nil {
		return Result{}, err
	}
	back, err := b.trip(b.target, b.start, there)
	if err != nil {
		return Result{}, err
	}
	again, err := b.trip(b.start, b.target, back)
	if err != nil {
		return Result{}, err
	}

	return ints(there, again), nil
}
