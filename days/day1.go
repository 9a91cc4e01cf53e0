package days

import (
	"fmt"
	"sort"
	"strconv"
)

// Day1 sums the calories carried by each elf and reports the largest load
// and the combined top three.
func Day1(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}

	loads := []int{0}
	for _, line := range lines {
		if line == "" {
			loads = append(loads, 0)
			continue
		}
		c, err := strconv.Atoi(line)
		if err != nil {
			return Result{}, fmt.Errorf("%w: calorie count %q", ErrParse, line)
		}
		loads[len(loads)-1] += c
	}

	sort.Sort(sort.Reverse(sort.IntSlice(loads)))

	topThree := 0
	for _, l := range loads[:min(3, len(loads))] {
		topThree += l
	}

	return ints(loads[0], topThree), nil
}
