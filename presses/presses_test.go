package presses_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/presses"
)

var sampleCodes = []string{"029A", "980A", "179A", "456A", "379A"}

func newEvaluator(t testing.TB, opts ...presses.Option) *presses.Evaluator {
	t.Helper()
	e, err := presses.New(opts...)
	require.NoError(t, err)
	return e
}

// TestCost_ShortChain checks the known press counts for two controllers.
func TestCost_ShortChain(t *testing.T) {
	e := newEvaluator(t)
	want := map[string]int{"029A": 68, "980A": 60, "179A": 68, "456A": 64, "379A": 64}
	for _, code := range sampleCodes {
		assert.Equal(t, want[code], e.Cost(code, 0, 2), "Cost(%s,0,2)", code)
	}
}

// TestCost_Outermost verifies the base case: the operated layer pays the
// shortest direct route length.
func TestCost_Outermost(t *testing.T) {
	e := newEvaluator(t)
	// <A ^A ^^>A vvvA
	assert.Equal(t, 12, e.Cost("029A", 0, 0))
	// v<<A >>^A
	assert.Equal(t, 8, e.Cost("<A", 2, 2))
	assert.Equal(t, 1, e.Cost("A", 3, 3))
	assert.Equal(t, 0, e.Cost("", 1, 3))
}

// TestCost_SingleDigit resolves a one-digit code through the implicit leading A.
func TestCost_SingleDigit(t *testing.T) {
	e := newEvaluator(t)
	// A→0 is "<A", 0→A is ">A" on the door keypad.
	assert.Equal(t, 4, e.Cost("0A", 0, 0))
	assert.Equal(t, e.Cost("<A", 1, 1)+e.Cost(">A", 1, 1), e.Cost("0A", 0, 1))
	// <A costs 18 and >A costs 10 behind two controllers.
	assert.Equal(t, 28, e.Cost("0A", 0, 2))
}

// TestCost_Memoized confirms repeated calls are served from the memo.
func TestCost_Memoized(t *testing.T) {
	misses := 0
	e := newEvaluator(t, presses.WithOnMiss(func(int, string) { misses++ }))

	first := e.Cost("029A", 0, 2)
	before := e.Stats()
	assert.Equal(t, uint64(misses), before.Misses)
	assert.Equal(t, before.Entries, misses, "every miss stores one entry")

	again := e.Cost("029A", 0, 2)
	after := e.Stats()
	assert.Equal(t, first, again)
	assert.Equal(t, before.Misses, after.Misses, "no recomputation")
	assert.Equal(t, before.Hits+1, after.Hits)
	assert.Equal(t, before.Entries, e.Memo().Len())
}

// TestCost_SharedAcrossCodes verifies the memo prices identical sub-paths once
// across codes: a second code only adds the entries the first lacked.
func TestCost_SharedAcrossCodes(t *testing.T) {
	e := newEvaluator(t)
	for _, code := range sampleCodes {
		e.Cost(code, 0, 25)
	}
	warm := e.Stats()
	for _, code := range sampleCodes {
		e.Cost(code, 0, 25)
	}
	assert.Equal(t, warm.Misses, e.Stats().Misses)
	assert.Less(t, warm.Entries, 2000, "entries bounded by directional sub-paths × depth")
}

// TestCost_MixedMaxDepth reuses one evaluator for chains of different length.
func TestCost_MixedMaxDepth(t *testing.T) {
	e := newEvaluator(t)
	long := e.Cost("029A", 0, 25)
	assert.Equal(t, 68, e.Cost("029A", 0, 2))

	fresh := newEvaluator(t)
	assert.Equal(t, long, fresh.Cost("029A", 0, 25))
}

// TestCost_Monotonic checks every extra controller strictly increases cost.
func TestCost_Monotonic(t *testing.T) {
	e := newEvaluator(t)
	for _, code := range sampleCodes {
		prev := 0
		for top := 0; top <= 25; top++ {
			c := e.Cost(code, 0, top)
			assert.Greater(t, c, prev, "%s at maxDepth %d", code, top)
			prev = c
		}
	}
}

// TestCost_Panics covers the fatal contract violations.
func TestCost_Panics(t *testing.T) {
	e := newEvaluator(t)
	assert.Panics(t, func() { e.Cost("029A", -1, 2) })
	assert.Panics(t, func() { e.Cost("029A", 3, 2) })
	assert.Panics(t, func() { e.Cost("02xA", 0, 2) })
	assert.Panics(t, func() { e.Cost("<A", 0, 2) }, "direction glyphs are not on the door keypad")
}

// TestNew_Errors verifies nil keypads are rejected.
func TestNew_Errors(t *testing.T) {
	_, err := presses.New(presses.WithKeypads(nil, keypad.Directional()))
	assert.ErrorIs(t, err, presses.ErrNilKeypad)
	_, err = presses.New(presses.WithKeypads(keypad.Numeric(), nil))
	assert.ErrorIs(t, err, presses.ErrNilKeypad)
}

// TestFold_AgreesWithCost checks the iterative table against recursion.
func TestFold_AgreesWithCost(t *testing.T) {
	e := newEvaluator(t)
	for _, top := range []int{0, 1, 2, 25} {
		pc, err := presses.Fold(keypad.Numeric(), keypad.Directional(), top)
		require.NoError(t, err)
		assert.Equal(t, top, pc.MaxDepth())
		for _, code := range append(sampleCodes, "0A") {
			assert.Equal(t, e.Cost(code, 0, top), pc.Cost(code, 0), "%s at maxDepth %d", code, top)
		}
		for d := 1; d <= top; d++ {
			for _, a := range keypad.Directional().Symbols() {
				seq := string(a) + "A"
				assert.Equal(t, e.Cost(seq, d, top), pc.Cost(seq, d), "%s at depth %d/%d", seq, d, top)
			}
		}
	}
}

// TestFold_Errors covers invalid arguments and lookups.
func TestFold_Errors(t *testing.T) {
	_, err := presses.Fold(nil, keypad.Directional(), 2)
	assert.ErrorIs(t, err, presses.ErrNilKeypad)
	_, err = presses.Fold(keypad.Numeric(), keypad.Directional(), -1)
	assert.ErrorIs(t, err, presses.ErrDepthRange)

	pc, err := presses.Fold(keypad.Numeric(), keypad.Directional(), 2)
	require.NoError(t, err)
	assert.Panics(t, func() { pc.Cost("029A", 3) })
	assert.Panics(t, func() { pc.Cost("9A", 1) })
}

// TestNew_OwnMemo verifies every Evaluator starts with a private, empty memo,
// so costs priced on one pair of keypads never leak into another.
func TestNew_OwnMemo(t *testing.T) {
	std := newEvaluator(t)
	tiny, err := keypad.New("tiny", []string{"_^A", "<v>"})
	require.NoError(t, err)
	custom := newEvaluator(t, presses.WithKeypads(keypad.Numeric(), tiny))

	assert.NotSame(t, std.Memo(), custom.Memo())
	assert.Zero(t, custom.Memo().Len())

	std.Cost("029A", 0, 2)
	assert.Positive(t, std.Memo().Len())
	assert.Zero(t, custom.Memo().Len(), "pricing on one evaluator leaves the other untouched")
	assert.Equal(t, presses.Stats{}, custom.Stats())
}
