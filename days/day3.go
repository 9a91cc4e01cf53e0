package days

import "fmt"

// rucksackPriorities maps each item character to its priority (a-z →
// 1..26, A-Z → 27..52).
func rucksackPriorities(line string) ([]int, error) {
	items := make([]int, len(line))
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c >= 'a' && c <= 'z':
			items[i] = int(c-'a') + 1
		case c >= 'A' && c <= 'Z':
			items[i] = int(c-'A') + 27
		default:
			return nil, fmt.Errorf("%w: item %q", ErrParse, c)
		}
	}

	return items, nil
}

func prioritySet(items []int) map[int]bool {
	set := make(map[int]bool, len(items))
	for _, p := range items {
		set[p] = true
	}

	return set
}

// Day3 sums the priorities of items shared between rucksack compartments,
// then of the badge item shared by each group of three rucksacks.
func Day3(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}

	rucksacks := make([][]int, len(lines))
	for i, line := range lines {
		if rucksacks[i], err = rucksackPriorities(line); err != nil {
			return Result{}, err
		}
	}

	sumA := 0
	for _, r := range rucksacks {
		if len(r)%2 == 1 {
			return Result{}, fmt.Errorf("%w: rucksack has an odd number of items", ErrInvariant)
		}
		first := prioritySet(r[:len(r)/2])
		second := prioritySet(r[len(r)/2:])
		for p := range first {
			if second[p] {
				sumA += p
			}
		}
	}

	sumB := 0
	for i := 0; i+3 <= len(rucksacks); i += 3 {
		a := prioritySet(rucksacks[i])
		b := prioritySet(rucksacks[i+1])
		c := prioritySet(rucksacks[i+2])
		for p := range a {
			if b[p] && c[p] {
				sumB += p
			}
		}
	}

	return ints(sumA, sumB), nil
}
