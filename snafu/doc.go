// Package snafu provides the balanced base-5 numeral codec of the fuel
// heating units: place values are powers of five, digits are 2, 1, 0,
// - (minus one) and = (minus two), most significant first.
//
// What
//
//   - Parse: decode a numeral string into an int; ErrEmpty for "",
//     ErrBadDigit for characters outside "210-=".
//   - Format: encode a non-negative int; ErrNegative below zero. The
//     remainders 3 and 4 emit = and - and carry one into the next place.
//
// Round trip: Format(Parse(s)) == s for every valid numeral without
// leading zeros, and Parse(Format(n)) == n for every non-negative n.
//
// Complexity: O(digits) both ways, a handful of digits for any int.
package snafu
