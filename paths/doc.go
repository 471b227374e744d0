// Package paths enumerates every minimal button-to-button route on a keypad
// that never crosses the gap.
//
// What
//
//   - All(kp, from, to) returns each Path of length Manhattan(from,to)+1:
//     direction glyphs followed by the activation 'A'.
//   - Between(kp, a, b) does the same for button symbols.
//   - Replay(kp, from, p) walks a Path one move at a time and reports where it
//     ends, failing if it leaves the grid or lands on the gap.
//   - Table caches the paths for every ordered pair of buttons on one keypad.
//
// Algorithm
//
//	Breadth-first expansion from the start cell. At each frontier item up to
//	four moves toward the target are generated (in the order <, ^, v, >). A
//	move is a full run to the target's row or column: unobstructed runs in one
//	direction are interchangeable, so the whole run is enqueued as one jump.
//	A run is admissible only if the gap does not lie on it. Reaching the
//	target appends 'A' and records the path. Every jump strictly reduces the
//	Manhattan distance, so all recorded paths are minimal and the queue never
//	holds more than a handful of items: at most a row-first and a
//	column-first route exist.
//
// Complexity
//
//   - All:      O(1) jumps, O(Manhattan) per emitted path.
//   - NewTable: O(B²) for B buttons (B ≤ 11 on the keypads in use).
//
// Errors
//
//   - ErrNilKeypad          if the keypad pointer is nil.
//   - keypad.ErrUnknownSymbol from Between for symbols outside the alphabet.
//   - ErrLeavesGrid, ErrHitsGap, ErrMissingActivate, ErrBadGlyph from Replay.
package paths
