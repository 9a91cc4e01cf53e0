// Package mix implements the circular-list reordering used by the grove
// positioning system decryption: each element relocates by an amount equal
// to its own value, wrapping around the remaining elements.
package mix

import "errors"

// ErrZeroCount is returned when GroveSum's input does not contain exactly
// one zero-valued element, the anchor the coordinates are read from.
var ErrZeroCount = errors.New("mix: sequence must contain exactly one zero")

// element pairs a value with its position in the original input, so equal
// values stay distinguishable while the list is rearranged.
type element struct {
	originalIndex int
	value         int
}

// Mix applies rounds full mixing passes to values and returns the
// resulting order. The input is not modified.
//
// Within a pass the elements move in their ORIGINAL input order, not the
// current list order, and every element of a pass moves before the next
// pass begins. A move removes the element, advances it by its own value
// modulo the reduced length (len-1), and reinserts it; untouched elements
// keep their relative order. Zero rounds returns a copy of the input
// unchanged, and single-element (or empty) sequences are returned as-is —
// the reduced-length modulus never sees a zero divisor.
func Mix(values []int, rounds int) []int {
	if len(values) < 2 || rounds <= 0 {
		return append([]int(nil), values...)
	}

	order := make([]element, len(values))
	for i, v := range values {
		order[i] = element{originalIndex: i, value: v}
	}
	list := append([]element(nil), order...)

	for round := 0; round < rounds; round++ {
		for _, e := range order {
			from := position(list, e)
			list = append(list[:from], list[from+1:]...)
			to := wrap(from+e.value, len(list))
			list = append(list, element{})
			copy(list[to+1:], list[to:])
			list[to] = e
		}
	}

	mixed := make([]int, len(list))
	for i, e := range list {
		mixed[i] = e.value
	}

	return mixed
}

// GroveSum returns the sum of the elements 1000, 2000 and 3000 positions
// after the unique zero, indices wrapping circularly.
func GroveSum(mixed []int) (int, error) {
	zero := -1
	for i, v := range mixed {
		if v != 0 {
			continue
		}
		if zero >= 0 {
			return 0, ErrZeroCount
		}
		zero = i
	}
	if zero < 0 {
		return 0, ErrZeroCount
	}

	sum := 0
	for _, offset := range []int{1000, 2000, 3000} {
		sum += mixed[(zero+offset)%len(mixed)]
	}

	return sum, nil
}

// position locates e in list. The element is known to be present; a miss
// is a programming error, not an input condition.
func position(list []element, e element) int {
	for i, x := range list {
		if x == e {
			return i
		}
	}
	panic("mix: element lost during mixing")
}

// wrap reduces i into [0, n) with Euclidean semantics, so large negative
// relocations land correctly.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}
