package days

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/adventkit/aoc2022/bfs"
	"github.com/adventkit/aoc2022/bound"
)

type valve struct {
	name    string
	flow    int
	tunnels []string
}

type valveParser struct {
	re *regexp.Regexp
}

func newValveParser() valveParser {
	return valveParser{re: regexp.MustCompile(
		`^Valve ([A-Z]{2}) has flow rate=(\d+); tunnels? leads? to valves? ([A-Z, ]+)$`)}
}

func (p valveParser) parse(line string) (valve, error) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return valve{}, fmt.Errorf("%w: valve scan %q", ErrParse, line)
	}
	flow, _ := strconv.Atoi(m[2])

	return valve{name: m[1], flow: flow, tunnels: strings.Split(m[3], ", ")}, nil
}

// valveNetwork is the compacted cave: only valves with positive flow
// remain, plus travel times between them (and from AA) computed over the
// full tunnel graph.
type valveNetwork struct {
	flows []int   // flow rate per working valve
	dist  [][]int // dist[i][j], travel minutes between working valves
	from  []int   // minutes from AA to each working valve
}

func buildValveNetwork(valves map[string]valve) (valveNetwork, error) {
	if _, ok := valves["AA"]; !ok {
		return valveNetwork{}, fmt.Errorf("%w: no valve AA", ErrInvariant)
	}

	var working []string
	for name, v := range valves {
		if v.flow > 0 {
			working = append(working, name)
		}
	}
	sort.Strings(working)
	if len(working) > 63 {
		return valveNetwork{}, fmt.Errorf("%w: %d working valves exceed bitmask width", ErrInvariant, len(working))
	}

	next := func(name string) []string { return valves[name].tunnels }
	distancesFrom := func(origin string) (map[string]int, error) {
		d, err := bfs.Distances(origin, next)
		if err != nil {
			return nil, err
		}

		return d, nil
	}

	net := valveNetwork{
		flows: make([]int, len(working)),
		dist:  make([][]int, len(working)),
		from:  make([]int, len(working)),
	}
	fromAA, err := distancesFrom("AA")
	if err != nil {
		return valveNetwork{}, err
	}
	for i, name := range working {
		net.flows[i] = valves[name].flow
		d, ok := fromAA[name]
		if !ok {
			return valveNetwork{}, fmt.Errorf("%w: valve %s unreachable from AA", ErrInvariant, name)
		}
		net.from[i] = d

		all, err := distancesFrom(name)
		if err != nil {
			return valveNetwork{}, err
		}
		net.dist[i] = make([]int, len(working))
		for j, other := range working {
			dj, ok := all[other]
			if !ok {
				return valveNetwork{}, fmt.Errorf("%w: valve %s unreachable from %s", ErrInvariant, other, name)
			}
			net.dist[i][j] = dj
		}
	}

	return net, nil
}

// valveState is one node of the release search: the valve just opened
// (-1 means still at AA), minutes remaining, pressure locked in so far,
// and the set of opened valves.
type valveState struct {
	at       int
	timeLeft int
	released int
	opened   uint64
}

func (n valveNetwork) travel(s valveState, to int) int {
	if s.at < 0 {
		return n.from[to]
	}

	return n.dist[s.at][to]
}

// releaseProblem frames the search for bound.Maximize: each expansion
// walks to a closed valve and opens it, crediting its whole remaining
// contribution immediately.
func (n valveNetwork) releaseProblem(minutes int) bound.Problem[valveState] {
	return bound.Problem[valveState]{
		Root:      valveState{at: -1, timeLeft: minutes},
		Objective: func(s valveState) int { return s.released },
		Expand: func(s valveState, emit func(valveState)) {
			for v := range n.flows {
				if s.opened&(1<<v) != 0 {
					continue
				}
				left := s.timeLeft - n.travel(s, v) - 1
				if left <= 0 {
					continue
				}
				emit(valveState{
					at:       v,
					timeLeft: left,
					released: s.released + left*n.flows[v],
					opened:   s.opened | 1<<v,
				})
			}
		},
		Bound: func(s valveState) int {
			// optimistic: every closed valve opens after its direct travel
			total := 0
			for v, flow := range n.flows {
				if s.opened&(1<<v) != 0 {
					continue
				}
				if left := s.timeLeft - n.travel(s, v) - 1; left > 0 {
					total += left * flow
				}
			}

			return total
		},
	}
}

// bestPerOpenSet exhausts the 26-minute search and records, for every set
// of opened valves, the highest pressure released by a single actor.
func (n valveNetwork) bestPerOpenSet(minutes int) (map[uint64]int, error) {
	best := make(map[uint64]int)
	p := n.releaseProblem(minutes)
	record := p.Expand
	p.Expand = func(s valveState, emit func(valveState)) {
		if s.released > best[s.opened] {
			best[s.opened] = s.released
		}
		record(s, emit)
	}
	if _, err := bound.Maximize(p, bound.WithoutPruning()); err != nil {
		return nil, err
	}

	return best, nil
}

// Day16 maximizes pressure released alone in 30 minutes, then with an
// elephant partner working a disjoint valve set for 26.
func Day16(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}
	parser := newValveParser()
	valves := make(map[string]valve, len(lines))
	for _, line := range lines {
		v, err := parser.parse(line)
		if err != nil {
			return Result{}, err
		}
		valves[v.name] = v
	}
	net, err := buildValveNetwork(valves)
	if err != nil {
		return Result{}, err
	}

	alone, err := bound.Maximize(net.releaseProblem(30))
	if err != nil {
		return Result{}, err
	}

	best, err := net.bestPerOpenSet(26)
	if err != nil {
		return Result{}, err
	}
	type scored struct {
		opened   uint64
		released int
	}
	ranked := make([]scored, 0, len(best))
	for opened, released := range best {
		ranked = append(ranked, scored{opened, released})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].released > ranked[j].released })

	paired := 0
	for i, mine := range ranked {
		if mine.released*2 <= paired {
			break
		}
		for _, theirs := range ranked[i:] {
			if mine.released+theirs.released <= paired {
				break
			}
			if mine.opened&theirs.opened == 0 {
				paired = mine.released + theirs.released
				break
			}
		}
	}

	return ints(alone, paired), nil
}
