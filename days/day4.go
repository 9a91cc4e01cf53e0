package days

import (
	"fmt"
	"strconv"
	"strings"
)

// span is an inclusive integer interval.
type span struct {
	lo, hi int
}

func (s span) contains(o span) bool { return s.lo <= o.lo && o.hi <= s.hi }
func (s span) overlaps(o span) bool { return s.lo <= o.hi && o.lo <= s.hi }

func parseSpan(s string) (span, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return span{}, fmt.Errorf("%w: range %q has no dash", ErrParse, s)
	}
	l, err := strconv.Atoi(lo)
	if err != nil {
		return span{}, fmt.Errorf("%w: range %q", ErrParse, s)
	}
	h, err := strconv.Atoi(hi)
	if err != nil {
		return span{}, fmt.Errorf("%w: range %q", ErrParse, s)
	}

	return span{lo: l, hi: h}, nil
}

// Day4 counts assignment pairs where one range fully contains the other,
// then pairs overlapping at all.
func Day4(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}

	contained, overlapping := 0, 0
	for _, line := range lines {
		left, right, ok := strings.Cut(line, ",")
		if !ok {
			return Result{}, fmt.Errorf("%w: pair %q has no comma", ErrParse, line)
		}
		a, err := parseSpan(left)
		if err != nil {
			return Result{}, err
		}
		b, err := parseSpan(right)
		if err != nil {
			return Result{}, err
		}

		if a.contains(b) || b.contains(a) {
			contained++
		}
		if a.overlaps(b) {
			overlapping++
		}
	}

	return ints(contained, overlapping), nil
}
