package days

import "fmt"

// rpsMove is rock, paper or scissors, valued 1..3 as in the score sheet.
type rpsMove int

const (
	rock rpsMove = 1 + iota
	paper
	scissors
)

// beats returns the move m defeats; beatenBy the move that defeats m.
func (m rpsMove) beats() rpsMove    { return (m+1)%3 + 1 }
func (m rpsMove) beatenBy() rpsMove { return m%3 + 1 }

func rpsFromByte(c byte) (rpsMove, error) {
	switch c {
	case 'A', 'X':
		return rock, nil
	case 'B', 'Y':
		return paper, nil
	case 'C', 'Z':
		return scissors, nil
	}

	return 0, fmt.Errorf("%w: action %q", ErrParse, c)
}

func rpsScore(theirs, ours rpsMove) int {
	score := int(ours)
	switch {
	case ours.beats() == theirs:
		score += 6
	case ours == theirs:
		score += 3
	}

	return score
}

// Day2 scores the rock-paper-scissors strategy guide, first reading the
// second column as our move, then as the required outcome.
func Day2(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}

	totalA, totalB := 0, 0
	for _, line := range lines {
		if len(line) != 3 || line[1] != ' ' {
			return Result{}, fmt.Errorf("%w: round %q", ErrParse, line)
		}
		theirs, err := rpsFromByte(line[0])
		if err != nil {
			return Result{}, err
		}

		ours, err := rpsFromByte(line[2])
		if err != nil {
			return Result{}, err
		}
		totalA += rpsScore(theirs, ours)

		switch line[2] {
		case 'X': // lose
			ours = theirs.beats()
		case 'Y': // draw
			ours = theirs
		case 'Z': // win
			ours = theirs.beatenBy()
		}
		totalB += rpsScore(theirs, ours)
	}

	return ints(totalA, totalB), nil
}
