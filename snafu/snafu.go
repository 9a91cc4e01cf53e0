// Package snafu implements the balanced base-5 numeral system used by the
// fuel heating units: digits 2, 1, 0, - (minus one) and = (minus two),
// most significant first.
package snafu

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the codec.
var (
	// ErrBadDigit is returned when parsing meets a character outside
	// "210-=".
	ErrBadDigit = errors.New("snafu: invalid digit")

	// ErrEmpty is returned when parsing an empty string.
	ErrEmpty = errors.New("snafu: empty numeral")

	// ErrNegative is returned by Format for negative numbers, which the
	// fuel units never emit.
	ErrNegative = errors.New("snafu: negative numbers not representable")
)

// digitValues maps a SNAFU digit to its place value; formatDigits is the
// inverse for the remainder 0..4 (3 and 4 borrow from the next place).
var (
	digitValues  = map[byte]int{'=': -2, '-': -1, '0': 0, '1': 1, '2': 2}
	formatDigits = [5]byte{'0', '1', '2', '=', '-'}
)

// Parse decodes a SNAFU numeral into an integer.
func Parse(s string) (int, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	n := 0
	for i := 0; i < len(s); i++ {
		v, ok := digitValues[s[i]]
		if !ok {
			return 0, fmt.Errorf("%w: %q in %q", ErrBadDigit, s[i], s)
		}
		n = n*5 + v
	}

	return n, nil
}

// Format encodes a non-negative integer as a SNAFU numeral. For every
// valid numeral s, Format(Parse(s)) == s, and for every representable n,
// Parse(Format(n)) == n.
func Format(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegative, n)
	}
	if n == 0 {
		return "0", nil
	}

	var b strings.Builder
	for n > 0 {
		rem := n % 5
		b.WriteByte(formatDigits[rem])
		n /= 5
		if rem > 2 {
			n++ // digits = and - carry one into the next place
		}
	}

	// Digits were emitted least significant first.
	out := []byte(b.String())
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}
