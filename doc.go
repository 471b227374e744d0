// Package padchain computes how many button presses it takes to type a door
// code through a chain of robot-operated keypads.
//
// The door has a Numeric keypad. A robot arm types on it, driven from a
// Directional keypad; that keypad is typed on by another robot, and so on,
// until the outermost Directional keypad is operated by a person. padchain
// answers: what is the fewest presses the person must make?
//
// Under the hood, everything is organized under four subpackages:
//
//	keypad/      the two button layouts, positions and the gap cell
//	paths/       every minimal gap-avoiding route between two buttons
//	presses/     memoized layered cost evaluation and its iterative fold
//	complexity/  code parsing and the press-count × value aggregate
//
// plus history/ (a SQLite ledger of solved batches) and the keypad CLI in
// cmd/keypad.
//
// Quick ASCII example:
//
//	+---+---+---+
//	| 7 | 8 | 9 |       +---+---+
//	+---+---+---+       | ^ | A |
//	| 4 | 5 | 6 |   +---+---+---+
//	+---+---+---+   | < | v | > |
//	| 1 | 2 | 3 |   +---+---+---+
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
//
// Typing 029A behind two directional controllers takes 68 presses.
//
//	go install github.com/katalvlaran/padchain/cmd/keypad@latest
package padchain
