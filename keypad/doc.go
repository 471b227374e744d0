// Package keypad models the two physical button layouts of the keypad chain:
// the Numeric keypad on the door and the Directional keypad every controller
// above it uses.
//
// What:
//
//   - Keypad maps each button symbol to a Position (row, column) on a
//     rectangular grid and marks exactly one Gap cell that has no button.
//   - Numeric() and Directional() return the two fixed, read-only layouts:
//
//     Numeric          Directional
//     +---+---+---+    +---+---+---+
//     | 7 | 8 | 9 |    |   | ^ | A |
//     +---+---+---+    +---+---+---+
//     | 4 | 5 | 6 |    | < | v | > |
//     +---+---+---+    +---+---+---+
//     | 1 | 2 | 3 |
//     +---+---+---+
//     |   | 0 | A |
//     +---+---+---+
//
//   - New builds any other layout from text rows where '_' marks the gap.
//
// Why:
//
//   - Path enumeration and cost evaluation only ever ask two questions:
//     "where is button X" and "where is the gap". Keypad answers both in O(1).
//
// Errors:
//
//   - ErrEmptyLayout:     no rows or an empty first row.
//   - ErrNonRectangular:  rows of differing lengths.
//   - ErrGapCount:        the layout does not contain exactly one gap.
//   - ErrDuplicateSymbol: a symbol appears twice.
//   - ErrUnknownSymbol:   Locate was asked for a symbol outside the alphabet.
//     MustLocate panics with it instead; callers validate input upstream.
package keypad
