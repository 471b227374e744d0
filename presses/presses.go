package presses

import (
	"fmt"
	"math"

	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/paths"
)

// Evaluator prices sequences through a chain of keypads. Its route tables are
// read-only and its Memo is locked, so one Evaluator may be shared between
// goroutines. An Evaluator's memo is never shared with another Evaluator:
// costs depend on the keypads it was built with.
type Evaluator struct {
	numeric     *paths.Table
	directional *paths.Table
	memo        *Memo
	onMiss      func(depth int, seq string)
}

// New builds an Evaluator with an empty memo.
// Returns ErrNilKeypad if WithKeypads supplied a nil keypad.
func New(opts ...Option) (*Evaluator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Numeric == nil || o.Directional == nil {
		return nil, ErrNilKeypad
	}
	num, err := paths.NewTable(o.Numeric)
	if err != nil {
		return nil, err
	}
	dir, err := paths.NewTable(o.Directional)
	if err != nil {
		return nil, err
	}

	return &Evaluator{numeric: num, directional: dir, memo: newMemo(), onMiss: o.OnMiss}, nil
}

// Cost returns the minimal number of presses the controller at maxDepth makes
// so that seq is typed on the keypad at depth. seq should end in 'A'; an
// empty seq costs 0.
//
// Panics with ErrDepthRange if depth is outside [0, maxDepth], and with
// keypad.ErrUnknownSymbol if seq holds a symbol the layer's keypad lacks.
func (e *Evaluator) Cost(seq string, depth, maxDepth int) int {
	if depth < 0 || depth > maxDepth {
		panic(fmt.Errorf("%w: depth %d, maxDepth %d", ErrDepthRange, depth, maxDepth))
	}
	return e.cost(seq, depth, maxDepth)
}

// Memo exposes the evaluator's cache for inspection.
func (e *Evaluator) Memo() *Memo { return e.memo }

// Stats is shorthand for e.Memo().Stats().
func (e *Evaluator) Stats() Stats { return e.memo.Stats() }

// table returns the route table of the keypad at depth.
func (e *Evaluator) table(depth int) *paths.Table {
	if depth == 0 {
		return e.numeric
	}
	return e.directional
}

func (e *Evaluator) cost(seq string, depth, maxDepth int) int {
	k := memoKey{depth: depth, height: maxDepth - depth, seq: seq}
	if v, ok := e.memo.get(k); ok {
		return v
	}
	e.onMiss(depth, seq)

	tbl := e.table(depth)
	total := 0
	prev := rune(keypad.Activate)
	for _, sym := range seq {
		best := math.MaxInt
		for _, p := range tbl.MustLookup(prev, sym) {
			var c int
			if depth == maxDepth {
				c = len(p)
			} else {
				c = e.cost(string(p), depth+1, maxDepth)
			}
			if c < best {
				best = c
			}
		}
		total += best
		prev = sym
	}

	e.memo.put(k, total)
	return total
}
