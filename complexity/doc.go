// Package complexity sums the complexity of door codes typed through a chain
// of keypad controllers.
//
// The complexity of one code is the minimal number of presses on the
// outermost controller multiplied by the code's numeric value (its digits
// without leading zeros or the trailing 'A'). Total returns the sum over all
// codes; an empty list yields 0.
//
// Codes are validated by Parse and ParseList before they reach the
// evaluator, so pricing itself never fails on well-formed input.
//
// One Aggregator owns one presses.Evaluator: every code it prices shares the
// same memo, so a sub-path at a given depth is priced once for the whole
// batch. TotalParallel fans codes out over goroutines that share that memo.
package complexity
