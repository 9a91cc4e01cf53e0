// Package mix provides the circular-list reordering ("mixing") operation
// of the grove positioning system, plus the coordinate extraction anchored
// at the unique zero element.
//
// What
//
//   - Mix: apply N full passes; each pass relocates every element, in the
//     original input order, by its own value modulo the reduced (len-1)
//     list length.
//   - GroveSum: sum of the values 1000/2000/3000 positions after the
//     single zero, wrapping circularly; ErrZeroCount when the zero is
//     missing or duplicated.
//
// The result of Mix is a rotation-equivalent of the puzzle's published
// intermediate states — the list is circular and GroveSum anchors at the
// zero, so absolute positions are irrelevant.
//
// Complexity: O(rounds × n²) — each relocation is a linear scan plus a
// linear splice. Fine for puzzle inputs (n ≈ 5000, rounds ≤ 10).
package mix
