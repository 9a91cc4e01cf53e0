package days

import (
	"fmt"
	"strconv"

	"github.com/adventkit/aoc2022/grid"
)

// elfProposal pairs the three cells an elf checks with the step it takes
// when all three are clear.
type elfProposal struct {
	checks [3]grid.XY
	step   grid.XY
}

var elfProposals = [4]elfProposal{
	{checks: [3]grid.XY{{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1}}, step: grid.XY{X: 0, Y: -1}}, // north
	{checks: [3]grid.XY{{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1}}, step: grid.XY{X: 0, Y: 1}},     // south
	{checks: [3]grid.XY{{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1}}, step: grid.XY{X: -1, Y: 0}}, // west
	{checks: [3]grid.XY{{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1}}, step: grid.XY{X: 1, Y: 0}},     // east
}

func parseElves(lines []string) (map[grid.XY]bool, error) {
	elves := make(map[grid.XY]bool)
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '#':
				elves[grid.Pt(x, y)] = true
			case '.':
			default:
				return nil, fmt.Errorf("%w: scan cell %q", ErrParse, line[x])
			}
		}
	}
	if len(elves) == 0 {
		return nil, fmt.Errorf("%w: no elves in scan", ErrParse)
	}

	return elves, nil
}

// diffuseRound runs one round of the spreading dance. firstProposal
// rotates each round. Returns the new positions and whether anyone moved.
func diffuseRound(elves map[grid.XY]bool, firstProposal int) (map[grid.XY]bool, bool) {
	proposed := make(map[grid.XY]grid.XY, len(elves)) // elf -> destination
	arrivals := make(map[grid.XY]int, len(elves))

	for elf := range elves {
		crowded := false
		for _, n := range elf.Neighbors8() {
			if elves[n] {
				crowded = true
				break
			}
		}
		if !crowded {
			continue
		}
		for i := 0; i < len(elfProposals); i++ {
			p := elfProposals[(firstProposal+i)%len(elfProposals)]
			free := true
			for _, c := range p.checks {
				if elves[elf.Add(c)] {
					free = false
					break
				}
			}
			if free {
				dest := elf.Add(p.step)
				proposed[elf] = dest
				arrivals[dest]++
				break
			}
		}
	}

	moved := false
	next := make(map[grid.XY]bool, len(elves))
	for elf := range elves {
		dest, ok := proposed[elf]
		if ok && arrivals[dest] == 1 {
			next[dest] = true
			moved = true
		} else {
			next[elf] = true
		}
	}

	return next, moved
}

// Day23 runs ten rounds and counts empty ground in the elves' bounding
// rectangle, then keeps going until no elf moves.
func Day23(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}
	elves, err := parseElves(lines)
	if err != nil {
		return Result{}, err
	}

	// Once no elf moves the bounding box is final, so settling before
	// round 10 fixes the round-10 count early.
	empty := -1
	round := 0
	for {
		next, moved := diffuseRound(elves, round%len(elfProposals))
		round++
		elves = next
		if empty < 0 && (round == 10 || !moved) {
			var box grid.Bounds[int]
			first := true
			for elf := range elves {
				if first {
					box, first = grid.NewBounds(elf), false
					continue
				}
				box = box.Extend(elf)
			}
			empty = box.Area() - len(elves)
		}
		if !moved {
			break
		}
	}

	return Result{PartA: strconv.Itoa(empty), PartB: strconv.Itoa(round)}, nil
}
