package days

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/adventkit/aoc2022/grid"
)

type sensor struct {
	pos, beacon grid.XY
	radius      int
}

type sensorParser struct {
	re *regexp.Regexp
}

func newSensorParser() sensorParser {
	return sensorParser{re: regexp.MustCompile(
		`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`)}
}

func (p sensorParser) parse(line string) (sensor, error) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return sensor{}, fmt.Errorf("%w: sensor report %q", ErrParse, line)
	}
	n := make([]int, 4)
	for i := range n {
		n[i], _ = strconv.Atoi(m[i+1])
	}
	s := sensor{pos: grid.Pt(n[0], n[1]), beacon: grid.Pt(n[2], n[3])}
	s.radius = s.pos.Manhattan(s.beacon)

	return s, nil
}

type interval struct{ lo, hi int } // inclusive

// rowCoverage returns the merged, sorted intervals of X covered by any
// sensor at the given row.
func rowCoverage(sensors []sensor, y int) []interval {
	var spans []interval
	for _, s := range sensors {
		reach := s.radius - abs(s.pos.Y-y)
		if reach < 0 {
			continue
		}
		spans = append(spans, interval{s.pos.X - reach, s.pos.X + reach})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })

	var merged []interval
	for _, sp := range spans {
		if n := len(merged); n > 0 && sp.lo <= merged[n-1].hi+1 {
			if sp.hi > merged[n-1].hi {
				merged[n-1].hi = sp.hi
			}
		} else {
			merged = append(merged, sp)
		}
	}

	return merged
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// excludedInRow counts positions in the row that cannot hold a beacon.
func excludedInRow(sensors []sensor, y int) int {
	covered := 0
	for _, sp := range rowCoverage(sensors, y) {
		covered += sp.hi - sp.lo + 1
	}
	beacons := make(map[int]bool)
	for _, s := range sensors {
		if s.beacon.Y == y {
			beacons[s.beacon.X] = true
		}
	}

	return covered - len(beacons)
}

// findDistressBeacon scans rows 0..limit for the single uncovered cell
// with both coordinates in [0, limit].
func findDistressBeacon(sensors []sensor, limit int) (grid.XY, error) {
	for y := 0; y <= limit; y++ {
		x := 0
		for _, sp := range rowCoverage(sensors, y) {
			if sp.lo > x {
				return grid.Pt(x, y), nil
			}
			if sp.hi >= x {
				x = sp.hi + 1
			}
			if x > limit {
				break
			}
		}
		if x <= limit {
			return grid.Pt(x, y), nil
		}
	}

	return grid.XY{}, fmt.Errorf("%w: no uncovered cell within %d", ErrNoSolution, limit)
}

func day15(path string, row, limit int) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}
	parser := newSensorParser()
	sensors := make([]sensor, 0, len(lines))
	for _, line := range lines {
		s, err := parser.parse(line)
		if err != nil {
			return Result{}, err
		}
		sensors = append(sensors, s)
	}

	distress, err := findDistressBeacon(sensors, limit)
	if err != nil {
		return Result{}, err
	}

	return ints(excludedInRow(sensors, row), distress.X*4_000_000+distress.Y), nil
}

// Day15 counts beacon-free positions at y=2000000, then locates the
// distress beacon inside the 4000000-square and reports its tuning
// frequency.
func Day15(path string) (Result, error) {
	return day15(path, 2_000_000, 4_000_000)
}
