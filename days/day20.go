package days

import (
	"fmt"
	"strconv"

	"github.com/adventkit/aoc2022/mix"
)

const decryptionKey = 811_589_153

// Day20 mixes the encrypted file once, then ten times with the decryption
// key applied, summing the grove coordinates each time.
func Day20(path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, err
	}
	values := make([]int, 0, len(lines))
	for _, line := range lines {
		v, err := strconv.Atoi(line)
		if err != nil {
			return Result{}, fmt.Errorf("%w: encrypted value %q", ErrParse, line)
		}
		values = append(values, v)
	}

	plain, err := mix.GroveSum(mix.Mix(values, 1))
	if err != nil {
		return Result{}, err
	}

	keyed := make([]int, len(values))
	for i, v := range values {
		keyed[i] = v * decryptionKey
	}
	decrypted, err := mix.GroveSum(mix.Mix(keyed, 10))
	if err != nil {
		return Result{}, err
	}

	return ints(plain, decrypted), nil
}
