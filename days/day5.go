package days

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// crateMove is one rearrangement instruction.
type crateMove struct {
	count, from, to int
}

// crateMoveParser compiles the instruction grammar once per invocation and
// is passed down explicitly — no package-level pattern state.
type crateMoveParser struct {
	re *regexp.Regexp
}

func newCrateMoveParser() crateMoveParser {
	return crateMoveParser{re: regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)}
}

func (p crateMoveParser) parse(line string) (crateMove, error) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return crateMove{}, fmt.Errorf("%w: procedure %q", ErrParse, line)
	}
	count, _ := strconv.Atoi(m[1])
	from, _ := strconv.Atoi(m[2])
	to, _ := strconv.Atoi(m[3])

	return crateMove{count: count, from: from - 1, to: to - 1}, nil
}

// parseCrateStacks reads the drawing above the instructions: bottom line is
// stack numbers; crates sit in columns 1, 5, 9, …
func parseCrateStacks(drawing string) ([][]byte, error) {
	lines := strings.Split(strings.TrimRight(drawing, "\n"), "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no crate drawing", ErrParse)
	}
	numbers := lines[len(lines)-1]
	stacks := make([][]byte, len(strings.Fields(numbers)))

	for i := len(lines) - 2; i >= 0; i-- {
		line := lines[i]
		for s := range stacks {
			col := 1 + 4*s
			if col >= len(line) || line[col] == ' ' {
				continue
			}
			stacks[s] = append(stacks[s], line[col])
		}
	}

	return stacks, nil
}

func cloneStacks(stacks [][]byte) [][]byte {
	out := make([][]byte, len(stacks))
	for i, s := range stacks {
		out[i] = append([]byte(nil), s...)
	}

	return out
}

func topCrates(stacks [][]byte) string {
	var b strings.Builder
	for _, s := range stacks {
		if len(s) > 0 {
			b.WriteByte(s[len(s)-1])
		}
	}

	return b.String()
}

// Day5 rearranges crate stacks: one crate at a time (CrateMover 9000),
// then whole groups preserving order (CrateMover 9001).
func Day5(path string) (Result, error) {
	input, err := readAll(path)
	if err != nil {
		return Result{}, err
	}
	drawing, procedures, ok := strings.Cut(input, "\n\n")
	if !ok {
		return Result{}, fmt.Errorf("%w: no blank line between drawing and procedures", ErrParse)
	}

	stacks, err := parseCrateStacks(drawing)
	if err != nil {
		return Result{}, err
	}

	parser := newCrateMoveParser()
	var moves []crateMove
	for _, line := range strings.Split(strings.TrimRight(procedures, "\n"), "\n") {
		mv, err := parser.parse(line)
		if err != nil {
			return Result{}, err
		}
		if mv.from >= len(stacks) || mv.to >= len(stacks) {
			return Result{}, fmt.Errorf("%w: procedure references stack %d of %d", ErrInvariant, max(mv.from, mv.to)+1, len(stacks))
		}
		moves = append(moves, mv)
	}

	single := cloneStacks(stacks)
	for _, mv := range moves {
		for i := 0; i < mv.count; i++ {
			src := single[mv.from]
			if len(src) == 0 {
				return Result{}, fmt.Errorf("%w: stack %d is empty", ErrInvariant, mv.from+1)
			}
			single[mv.to] = append(single[mv.to], src[len(src)-1])
			single[mv.from] = src[:len(src)-1]
		}
	}

	grouped := cloneStacks(stacks)
	for _, mv := range moves {
		src := grouped[mv.from]
		if mv.count > len(src) {
			return Result{}, fmt.Errorf("%w: stack %d holds %d crates, need %d", ErrInvariant, mv.from+1, len(src), mv.count)
		}
		kept := len(src) - mv.count
		grouped[mv.to] = append(grouped[mv.to], src[kept:]...)
		grouped[mv.from] = src[:kept]
	}

	return Result{PartA: topCrates(single), PartB: topCrates(grouped)}, nil
}
