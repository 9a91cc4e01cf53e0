package days

import (
	"github.com/adventkit/aoc2022/snafu"
)

// Day25 sums the fuel requirements and reports the total back in SNAFU
// notation. There is no second part.
func Day25(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}

	total := 0
	for _, line := range lines {
		v, err := snafu.Parse(line)
		if err != nil {
			return Result{}, err
		}
		total += v
	}

	encoded, err := snafu.Format(total)
	if err != nil {
		return Result{}, err
	}

	return Result{PartA: encoded}, nil
}
