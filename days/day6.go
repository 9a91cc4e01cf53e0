package days

import (
	"fmt"
	"strings"
)

// markerEnd returns the 1-based index just past the first window of size
// n whose bytes are all distinct. Any byte value may appear in the
// datastream; the window is tracked over the full byte range.
func markerEnd(signal string, n int) (int, error) {
	var seen [256]int
	distinct := 0
	for i := 0; i < len(signal); i++ {
		if seen[signal[i]] == 0 {
			distinct++
		}
		seen[signal[i]]++
		if i >= n {
			d := signal[i-n]
			seen[d]--
			if seen[d] == 0 {
				distinct--
			}
		}
		if distinct == n {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: no %d-character marker in %d-character signal", ErrNoSolution, n, len(signal))
}

// Day6 locates the start-of-packet (4 distinct) and start-of-message
// (14 distinct) markers in the datastream.
func Day6(path string) (Result, error) {
	input, err := readAll(path)
	if err != nil {
		return Result{}, err
	}
	signal := strings.TrimSpace(input)

	packet, err := markerEnd(signal, 4)
	if err != nil {
		return Result{}, err
	}
	message, err := markerEnd(signal, 14)
	if err != nil {
		return Result{}, err
	}

	return ints(packet, message), nil
}
