package days

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	diskTotal  = 70_000_000
	diskNeeded = 30_000_000
)

// dirSizes replays the terminal session and returns the total size of
// every directory, keyed by its slash-joined path from the root.
func dirSizes(lines []string) (map[string]int, error) {
	sizes := make(map[string]int)
	var cwd []string

	for _, line := range lines {
		switch {
		case line == "$ cd /":
			cwd = cwd[:0]
		case line == "$ cd ..":
			if len(cwd) == 0 {
				return nil, fmt.Errorf("%w: cd .. above root", ErrInvariant)
			}
			cwd = cwd[:len(cwd)-1]
		case strings.HasPrefix(line, "$ cd "):
			cwd = append(cwd, line[len("$ cd "):])
		case line == "$ ls" || strings.HasPrefix(line, "dir "):
			// directory entries contribute nothing until their files appear
		default:
			sizeField, _, ok := strings.Cut(line, " ")
			if !ok {
				return nil, fmt.Errorf("%w: terminal line %q", ErrParse, line)
			}
			size, err := strconv.Atoi(sizeField)
			if err != nil {
				return nil, fmt.Errorf("%w: file size in %q", ErrParse, line)
			}
			// a file counts toward every ancestor, root included
			sizes["/"] += size
			for i := range cwd {
				sizes["/"+strings.Join(cwd[:i+1], "/")] += size
			}
		}
	}

	return sizes, nil
}

// Day7 sums directories of at most 100000 bytes, then finds the smallest
// directory whose deletion frees enough disk for the update.
func Day7(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}
	sizes, err := dirSizes(lines)
	if err != nil {
		return Result{}, err
	}

	small := 0
	for _, size := range sizes {
		if size <= 100_000 {
			small += size
		}
	}

	shortfall := diskNeeded - (diskTotal - sizes["/"])
	best := -1
	for _, size := range sizes {
		if size >= shortfall && (best < 0 || size < best) {
			best = size
		}
	}
	if best < 0 {
		return Result{}, fmt.Errorf("%w: no directory frees %d bytes", ErrNoSolution, shortfall)
	}

	return ints(small, best), nil
}
