package days

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

type monkeyOp struct {
	operator byte // '+' or '*'
	operand  int  // -1 means "old"
}

func (op monkeyOp) apply(old int) int {
	v := op.operand
	if v < 0 {
		v = old
	}
	if op.operator == '+' {
		return old + v
	}

	return old * v
}

type monkey struct {
	items       []int
	op          monkeyOp
	divisor     int
	ifTrue      int
	ifFalse     int
	inspections int
}

// monkeyParser holds the compiled note grammar for one invocation.
type monkeyParser struct {
	re *regexp.Regexp
}

func newMonkeyParser() monkeyParser {
	return monkeyParser{re: regexp.MustCompile(
		`Monkey \d+:\n` +
			`  Starting items: ([\d, ]+)\n` +
			`  Operation: new = old ([+*]) (old|\d+)\n` +
			`  Test: divisible by (\d+)\n` +
			`    If true: throw to monkey (\d+)\n` +
			`    If false: throw to monkey (\d+)`)}
}

func (p monkeyParser) parse(block string) (monkey, error) {
	m := p.re.FindStringSubmatch(block)
	if m == nil {
		return monkey{}, fmt.Errorf("%w: monkey note %q", ErrParse, block)
	}

	var mk monkey
	for _, field := range strings.Split(m[1], ", ") {
		item, err := strconv.Atoi(field)
		if err != nil {
			return monkey{}, fmt.Errorf("%w: starting item %q", ErrParse, field)
		}
		mk.items = append(mk.items, item)
	}
	mk.op.operator = m[2][0]
	if m[3] == "old" {
		mk.op.operand = -1
	} else {
		mk.op.operand, _ = strconv.Atoi(m[3])
	}
	mk.divisor, _ = strconv.Atoi(m[4])
	mk.ifTrue, _ = strconv.Atoi(m[5])
	mk.ifFalse, _ = strconv.Atoi(m[6])

	return mk, nil
}

// monkeyBusiness runs the keep-away rounds and multiplies the two highest
// inspection counts. When calm is true, worry divides by three after each
// inspection; otherwise it is reduced modulo the product of all divisors,
// which preserves every divisibility test.
func monkeyBusiness(monkeys []monkey, rounds int, calm bool) (int, error) {
	modulus := 1
	for _, mk := range monkeys {
		modulus *= mk.divisor
	}

	for round := 0; round < rounds; round++ {
		for i := range monkeys {
			mk := &monkeys[i]
			for _, item := range mk.items {
				mk.inspections++
				worry := mk.op.apply(item)
				if calm {
					worry /= 3
				} else {
					worry %= modulus
				}
				target := mk.ifFalse
				if worry%mk.divisor == 0 {
					target = mk.ifTrue
				}
				if target == i {
					return 0, fmt.Errorf("%w: monkey %d throws to itself", ErrInvariant, i)
				}
				monkeys[target].items = append(monkeys[target].items, worry)
			}
			mk.items = mk.items[:0]
		}
	}

	counts := make([]int, len(monkeys))
	for i, mk := range monkeys {
		counts[i] = mk.inspections
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	return counts[0] * counts[1], nil
}

// Day11 plays 20 rounds of keep-away with relief, then 10000 without.
func Day11(path string) (Result, error) {
	input, err := readAll(path)
	if err != nil {
		return Result{}, err
	}

	parser := newMonkeyParser()
	var monkeys []monkey
	for _, block := range blocks(input) {
		mk, err := parser.parse(block)
		if err != nil {
			return Result{}, err
		}
		monkeys = append(monkeys, mk)
	}
	if len(monkeys) < 2 {
		return Result{}, fmt.Errorf("%w: need at least two monkeys", ErrInvariant)
	}

	calmMonkeys := make([]monkey, len(monkeys))
	for i, mk := range monkeys {
		calmMonkeys[i] = mk
		calmMonkeys[i].items = append([]int(nil), mk.items...)
	}

	calm, err := monkeyBusiness(calmMonkeys, 20, true)
	if err != nil {
		return Result{}, err
	}
	worried, err := monkeyBusiness(monkeys, 10_000, false)
	if err != nil {
		return Result{}, err
	}

	return ints(calm, worried), nil
}
