package days

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adventkit/aoc2022/grid"
)

func ropeStep(dir byte) (grid.XY, error) {
	switch dir {
	case 'U':
		return grid.Pt(0, -1), nil
	case 'D':
		return grid.Pt(0, 1), nil
	case 'L':
		return grid.Pt(-1, 0), nil
	case 'R':
		return grid.Pt(1, 0), nil
	default:
		return grid.XY{}, fmt.Errorf("%w: rope direction %q", ErrParse, dir)
	}
}

func clamp(v int) int {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}

	return v
}

// follow moves a knot one diagonal-capable step toward the knot ahead of
// it, or not at all when already adjacent.
func follow(head, tail grid.XY) grid.XY {
	dx, dy := head.X-tail.X, head.Y-tail.Y
	if dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
		return tail
	}

	return tail.Add(grid.Pt(clamp(dx), clamp(dy)))
}

// ropeTailVisits simulates a rope of the given number of knots and counts
// distinct positions the last knot occupies.
func ropeTailVisits(lines []string, knots int) (int, error) {
	rope := make([]grid.XY, knots)
	visited := map[grid.XY]bool{rope[knots-1]: true}

	for _, line := range lines {
		dirField, countField, ok := strings.Cut(line, " ")
		if !ok || len(dirField) != 1 {
			return 0, fmt.Errorf("%w: rope motion %q", ErrParse, line)
		}
		step, err := ropeStep(dirField[0])
		if err != nil {
			return 0, err
		}
		count, err := strconv.Atoi(countField)
		if err != nil {
			return 0, fmt.Errorf("%w: rope motion %q", ErrParse, line)
		}
		for i := 0; i < count; i++ {
			rope[0] = rope[0].Add(step)
			for k := 1; k < knots; k++ {
				rope[k] = follow(rope[k-1], rope[k])
			}
			visited[rope[knots-1]] = true
		}
	}

	return len(visited), nil
}

// Day9 simulates the rope with 2 knots, then with 10.
func Day9(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}

	short, err := ropeTailVisits(lines, 2)
	if err != nil {
		return Result{}, err
	}
	long, err := ropeTailVisits(lines, 10)
	if err != nil {
		return Result{}, err
	}

	return ints(short, long), nil
}
