package days

import (
	"fmt"
	"strconv"
	"strings"
)

// cpuTrace records the X register value during each cycle, 1-based.
func cpuTrace(lines []string) ([]int, error) {
	x := 1
	trace := []int{x}
	for _, line := range lines {
		switch {
		case line == "noop":
			trace = append(trace, x)
		case strings.HasPrefix(line, "addx "):
			v, err := strconv.Atoi(line[len("addx "):])
			if err != nil {
				return nil, fmt.Errorf("%w: instruction %q", ErrParse, line)
			}
			trace = append(trace, x, x)
			x += v
		default:
			return nil, fmt.Errorf("%w: instruction %q", ErrParse, line)
		}
	}

	return trace, nil
}

// renderCRT draws the 40x6 screen: a pixel lights when the 3-wide sprite
// centered on X overlaps the column being drawn.
func renderCRT(trace []int) string {
	var b strings.Builder
	for row := 0; row < 6; row++ {
		for col := 0; col < 40; col++ {
			cycle := row*40 + col + 1
			x := 1
			if cycle < len(trace) {
				x = trace[cycle]
			}
			if col >= x-1 && col <= x+1 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if row < 5 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Day10 sums the six signal strengths and renders the CRT image. The
// second part is the rendered screen itself.
func Day10(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}
	trace, err := cpuTrace(lines)
	if err != nil {
		return Result{}, err
	}

	strength := 0
	for cycle := 20; cycle <= 220; cycle += 40 {
		if cycle < len(trace) {
			strength += cycle * trace[cycle]
		}
	}

	return Result{PartA: strconv.Itoa(strength), PartB: renderCRT(trace)}, nil
}
