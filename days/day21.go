package days

import (
	"fmt"
	"strconv"
	"strings"
)

// exprNode is one monkey job in the arena. Leaves hold value; branches
// hold an operator and arena indices of their operands.
type exprNode struct {
	name        string
	op          byte // 0 for leaves
	value       int
	left, right int
	needsHuman  bool
}

// exprArena stores the whole job tree in one slice, nodes addressed by
// index instead of pointers.
type exprArena struct {
	nodes []exprNode
	root  int
	human int
}

func parseJobs(lines []string) (exprArena, error) {
	byName := make(map[string]int, len(lines))
	type pending struct {
		node        int
		left, right string
	}
	var unresolved []pending

	arena := exprArena{root: -1, human: -1}
	for _, line := range lines {
		name, job, ok := strings.Cut(line, ": ")
		if !ok {
			return exprArena{}, fmt.Errorf("%w: monkey job %q", ErrParse, line)
		}
		node := exprNode{name: name, left: -1, right: -1}
		if v, err := strconv.Atoi(job); err == nil {
			node.value = v
		} else {
			fields := strings.Fields(job)
			if len(fields) != 3 || len(fields[1]) != 1 || !strings.ContainsAny(fields[1], "+-*/") {
				return exprArena{}, fmt.Errorf("%w: monkey job %q", ErrParse, line)
			}
			node.op = fields[1][0]
			unresolved = append(unresolved, pending{node: len(arena.nodes), left: fields[0], right: fields[2]})
		}
		if _, dup := byName[name]; dup {
			return exprArena{}, fmt.Errorf("%w: duplicate monkey %s", ErrInvariant, name)
		}
		byName[name] = len(arena.nodes)
		arena.nodes = append(arena.nodes, node)
	}

	for _, p := range unresolved {
		l, okL := byName[p.left]
		r, okR := byName[p.right]
		if !okL || !okR {
			return exprArena{}, fmt.Errorf("%w: monkey %s references unknown monkeys", ErrInvariant, arena.nodes[p.node].name)
		}
		arena.nodes[p.node].left, arena.nodes[p.node].right = l, r
	}

	if i, ok := byName["root"]; ok {
		arena.root = i
	} else {
		return exprArena{}, fmt.Errorf("%w: no root monkey", ErrInvariant)
	}
	if i, ok := byName["humn"]; ok {
		arena.human = i
	} else {
		return exprArena{}, fmt.Errorf("%w: no humn monkey", ErrInvariant)
	}

	return arena, nil
}

// eval computes every node value bottom-up and marks the nodes whose
// value depends on humn.
func (a *exprArena) eval() error {
	// post-order over the arena with an explicit stack
	type frame struct {
		node     int
		expanded bool
	}
	stack := []frame{{node: a.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &a.nodes[f.node]
		if n.op == 0 {
			n.needsHuman = f.node == a.human
			continue
		}
		if !f.expanded {
			stack = append(stack, frame{node: f.node, expanded: true},
				frame{node: n.left}, frame{node: n.right})
			continue
		}
		l, r := a.nodes[n.left], a.nodes[n.right]
		switch n.op {
		case '+':
			n.value = l.value + r.value
		case '-':
			n.value = l.value - r.value
		case '*':
			n.value = l.value * r.value
		case '/':
			if r.value == 0 {
				return fmt.Errorf("%w: monkey %s divides by zero", ErrInvariant, n.name)
			}
			n.value = l.value / r.value
		}
		n.needsHuman = l.needsHuman || r.needsHuman
	}

	return nil
}

// solveHuman walks from root toward humn, at each branch computing what
// the human-dependent side must equal for root's equality to hold.
func (a *exprArena) solveHuman() (int, error) {
	root := a.nodes[a.root]
	if a.nodes[root.left].needsHuman == a.nodes[root.right].needsHuman {
		return 0, fmt.Errorf("%w: humn must feed exactly one side of root", ErrInvariant)
	}

	node, want := root.left, a.nodes[root.right].value
	if a.nodes[root.right].needsHuman {
		node, want = root.right, a.nodes[root.left].value
	}

	for node != a.human {
		n := a.nodes[node]
		l, r := a.nodes[n.left], a.nodes[n.right]
		if l.needsHuman == r.needsHuman {
			return 0, fmt.Errorf("%w: humn feeds both operands of %s", ErrInvariant, n.name)
		}
		if l.needsHuman {
			// want = l op r.value, solve for l
			switch n.op {
			case '+':
				want -= r.value
			case '-':
				want += r.value
			case '*':
				want /= r.value
			case '/':
				want *= r.value
			}
			node = n.left
		} else {
			// want = l.value op r, solve for r
			switch n.op {
			case '+':
				want -= l.value
			case '-':
				want = l.value - want
			case '*':
				want /= l.value
			case '/':
				if want == 0 {
					return 0, fmt.Errorf("%w: %s yells zero on a divisor path", ErrInvariant, n.name)
				}
				want = l.value / want
			}
			node = n.right
		}
	}

	return want, nil
}

// Day21 evaluates the monkey expression tree for root, then solves for
// the humn value that makes root's two operands equal.
func Day21(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}
	arena, err := parseJobs(lines)
	if err != nil {
		return Result{}, err
	}
	if err := arena.eval(); err != nil {
		return Result{}, err
	}

	human, err := arena.solveHuman()
	if err != nil {
		return Result{}, err
	}

	return ints(arena.nodes[arena.root].value, human), nil
}
