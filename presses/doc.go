// Package presses computes how many button presses the outermost controller
// of a keypad chain needs to make a given sequence appear on an inner layer.
//
// Layers
//
//	Depth 0 is the physical Numeric keypad. Depths 1..maxDepth are identical
//	Directional keypads, each driven by the one above it. The controller at
//	maxDepth is operated directly and pays one press per glyph.
//
// What
//
//   - Evaluator.Cost(seq, depth, maxDepth): minimal outermost presses that
//     make seq (ending in 'A') appear at depth. Each sequence is priced pair
//     by pair starting from an implicit leading 'A', the idle arm position.
//     For every pair all minimal routes are tried: at maxDepth the shortest
//     route length wins, below it the route cheapest to type one layer out.
//   - Memo caches results by (depth, remaining layers, sequence) and counts
//     hits and misses so callers can confirm nothing is priced twice.
//   - Fold builds the same answer bottom-up: a per-depth table of pair costs,
//     filled from the outermost layer inward without recursion.
//
// Why every route is retried at every layer
//
//	Two routes of equal length can differ in how often they change direction.
//	A repeated glyph costs one press upstream, a change of direction costs a
//	full move of the arm above. The shortest route on one layer is therefore
//	not always the cheapest after propagating outward.
//
// Complexity
//
//	Distinct memo entries are bounded by (distinct directional sub-paths) ×
//	maxDepth, independent of how many codes are priced, so maxDepth = 25 is
//	cheap once the first code has warmed the memo.
//
// Errors
//
//   - ErrNilKeypad   from New or Fold when a keypad is nil.
//   - ErrDepthRange  when depth is outside [0, maxDepth].
//   - Cost panics with keypad.ErrUnknownSymbol for a symbol outside a
//     keypad's alphabet; input must be validated upstream.
package presses
