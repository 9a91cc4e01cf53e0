// Package days holds one adapter per Advent of Code 2022 puzzle. Every
// adapter shares the same calling convention: parse the input file at
// path, return the answers for both parts. Adapters are independent; the
// search packages (bfs, astar, bound) and the small codec packages (mix,
// snafu) are the only shared code.
package days

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Result holds the answers of one puzzle. PartB is empty for puzzles with
// only a single part (days 17 and 25).
type Result struct {
	PartA string
	PartB string
}

// Func is the common adapter signature.
type Func func(path string) (Result, error)

// Error kinds surfaced by the adapters. ErrInput wraps file access
// failures, ErrParse wraps grammar mismatches, ErrInvariant wraps
// domain-rule violations discovered in well-formed input, ErrNoSolution
// wraps search exhaustion. None are retried — inputs are static files.
var (
	ErrUnknownDay = errors.New("days: unknown day")
	ErrInput      = errors.New("days: cannot read input")
	ErrParse      = errors.New("days: malformed input")
	ErrInvariant  = errors.New("days: input violates a puzzle invariant")
	ErrNoSolution = errors.New("days: no solution found")
)

// index maps day numbers to adapters. Day 22 has no solver.
var index = map[int]Func{
	1:  Day1,
	2:  Day2,
	3:  Day3,
	4:  Day4,
	5:  Day5,
	6:  Day6,
	7:  Day7,
	8:  Day8,
	9:  Day9,
	10: Day10,
	11: Day11,
	12: Day12,
	13: Day13,
	14: Day14,
	15: Day15,
	16: Day16,
	17: Day17,
	18: Day18,
	19: Day19,
	20: Day20,
	21: Day21,
	23: Day23,
	24: Day24,
	25: Day25,
}

// Run dispatches to the adapter for day, or returns ErrUnknownDay.
func Run(day int, path string) (Result, error) {
	f, ok := index[day]
	if !ok {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return f(path)
}

// Days returns the solved day numbers in ascending order.
func Days() []int {
	out := maps.Keys(index)
	sort.Ints(out)

	return out
}

// ints packs two integer answers into a Result.
func ints(a, b int) Result {
	return Result{PartA: strconv.Itoa(a), PartB: strconv.Itoa(b)}
}

// readLines returns the input split into lines, without terminators.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}

	return lines, nil
}

// readAll returns the whole input as one string.
func readAll(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInput, err)
	}

	return string(buf), nil
}

// blocks splits the input into blank-line separated blocks.
func blocks(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n\n")
}
