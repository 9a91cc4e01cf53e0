package days

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/adventkit/aoc2022/bound"
)

// resource indices, shared by robot and stockpile vectors.
const (
	ore = iota
	clay
	obsidian
	geode
	numResources
)

type blueprint struct {
	id    int
	costs [numResources][numResources]int // costs[robot][resource]
}

type blueprintParser struct {
	re *regexp.Regexp
}

func newBlueprintParser() blueprintParser {
	return blueprintParser{re: regexp.MustCompile(
		`^Blueprint (\d+): Each ore robot costs (\d+) ore\. ` +
			`Each clay robot costs (\d+) ore\. ` +
			`Each obsidian robot costs (\d+) ore and (\d+) clay\. ` +
			`Each geode robot costs (\d+) ore and (\d+) obsidian\.$`)}
}

func (p blueprintParser) parse(line string) (blueprint, error) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return blueprint{}, fmt.Errorf("%w: blueprint %q", ErrParse, line)
	}
	n := make([]int, 7)
	for i := range n {
		n[i], _ = strconv.Atoi(m[i+1])
	}

	var b blueprint
	b.id = n[0]
	b.costs[ore][ore] = n[1]
	b.costs[clay][ore] = n[2]
	b.costs[obsidian][ore] = n[3]
	b.costs[obsidian][clay] = n[4]
	b.costs[geode][ore] = n[5]
	b.costs[geode][obsidian] = n[6]

	return b, nil
}

// robotCaps returns, per resource, the highest per-minute spend any robot
// demands. Building more robots than that wastes a build slot.
func (b blueprint) robotCaps() [numResources]int {
	var caps [numResources]int
	for robot := range b.costs {
		for res, cost := range b.costs[robot] {
			if cost > caps[res] {
				caps[res] = cost
			}
		}
	}
	caps[geode] = 1 << 30

	return caps
}

type factoryState struct {
	robots   [numResources]int
	stock    [numResources]int
	timeLeft int
}

func (s factoryState) tick() factoryState {
	next := s
	for r := range s.robots {
		next.stock[r] += s.robots[r]
	}
	next.timeLeft--

	return next
}

func (s factoryState) canAfford(costs [numResources]int) bool {
	for r, c := range costs {
		if s.stock[r] < c {
			return false
		}
	}

	return true
}

// factoryProblem frames robot scheduling for bound.Maximize. Branching is
// coarse: each minute either builds one robot type or only gathers. The
// objective counts geodes already guaranteed by built robots; the bound
// optimistically adds a new geode robot every remaining minute.
func factoryProblem(b blueprint, minutes int) bound.Problem[factoryState] {
	caps := b.robotCaps()
	root := factoryState{timeLeft: minutes}
	root.robots[ore] = 1

	return bound.Problem[factoryState]{
		Root: root,
		Objective: func(s factoryState) int {
			return s.stock[geode] + s.robots[geode]*s.timeLeft
		},
		Bound: func(s factoryState) int {
			return s.timeLeft * (s.timeLeft - 1) / 2
		},
		Expand: func(s factoryState, emit func(factoryState)) {
			if s.timeLeft == 0 {
				return
			}
			builtGeode := false
			for robot := range b.costs {
				if s.robots[robot] >= caps[robot] || !s.canAfford(b.costs[robot]) {
					continue
				}
				next := s.tick()
				for res, cost := range b.costs[robot] {
					next.stock[res] -= cost
				}
				next.robots[robot]++
				emit(next)
				if robot == geode {
					builtGeode = true
				}
			}
			// a geode robot now always dominates waiting
			if !builtGeode {
				emit(s.tick())
			}
		},
	}
}

func maxGeodes(b blueprint, minutes int) (int, error) {
	return bound.Maximize(factoryProblem(b, minutes))
}

// Day19 scores blueprints by quality level over 24 minutes, then
// multiplies the geode counts of the first three over 32.
func Day19(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}
	parser := newBlueprintParser()
	blueprints := make([]blueprint, 0, len(lines))
	for _, line := range lines {
		b, err := parser.parse(line)
		if err != nil {
			return Result{}, err
		}
		blueprints = append(blueprints, b)
	}

	quality := 0
	for _, b := range blueprints {
		geodes, err := maxGeodes(b, 24)
		if err != nil {
			return Result{}, err
		}
		quality += b.id * geodes
	}

	product := 1
	for _, b := range blueprints[:min(3, len(blueprints))] {
		geodes, err := maxGeodes(b, 32)
		if err != nil {
			return Result{}, err
		}
		product *= geodes
	}

	return ints(quality, product), nil
}
