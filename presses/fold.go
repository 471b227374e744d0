package presses

import (
	"fmt"
	"math"

	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/paths"
)

type pair struct{ from, to rune }

// PairCosts is the depth-indexed table built by Fold: layers[d][(a,b)] is
// the outermost press count for moving from a to b and pressing b on the
// keypad at depth d.
type PairCosts struct {
	maxDepth int
	layers   []map[pair]int
}

// Fold computes pair costs for every depth from maxDepth down to 0 without
// recursion. It answers the same question as Evaluator.Cost.
// Returns ErrNilKeypad or ErrDepthRange for a negative maxDepth.
// Complexity: O(maxDepth × B² × L) for B directional buttons and route length L.
func Fold(numeric, directional *keypad.Keypad, maxDepth int) (*PairCosts, error) {
	if numeric == nil || directional == nil {
		return nil, ErrNilKeypad
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: maxDepth %d", ErrDepthRange, maxDepth)
	}
	num, err := paths.NewTable(numeric)
	if err != nil {
		return nil, err
	}
	dir, err := paths.NewTable(directional)
	if err != nil {
		return nil, err
	}

	pc := &PairCosts{maxDepth: maxDepth, layers: make([]map[pair]int, maxDepth+1)}
	for d := maxDepth; d >= 0; d-- {
		kp, tbl := directional, dir
		if d == 0 {
			kp, tbl = numeric, num
		}
		syms := kp.Symbols()
		layer := make(map[pair]int, len(syms)*len(syms))
		for _, a := range syms {
			for _, b := range syms {
				best := math.MaxInt
				for _, p := range tbl.MustLookup(a, b) {
					c := len(p)
					if d < maxDepth {
						c = pc.Cost(string(p), d+1)
					}
					best = min(best, c)
				}
				layer[pair{a, b}] = best
			}
		}
		pc.layers[d] = layer
	}

	return pc, nil
}

// MaxDepth returns the outermost depth the table was folded for.
func (pc *PairCosts) MaxDepth() int { return pc.maxDepth }

// Cost sums pair costs for seq at depth, starting from an implicit 'A'.
// Panics with ErrDepthRange or keypad.ErrUnknownSymbol on bad input.
func (pc *PairCosts) Cost(seq string, depth int) int {
	if depth < 0 || depth > pc.maxDepth {
		panic(fmt.Errorf("%w: depth %d, maxDepth %d", ErrDepthRange, depth, pc.maxDepth))
	}
	layer := pc.layers[depth]
	total := 0
	prev := rune(keypad.Activate)
	for _, sym := range seq {
		c, ok := layer[pair{prev, sym}]
		if !ok {
			panic(fmt.Errorf("%w: pair %q→%q at depth %d", keypad.ErrUnknownSymbol, prev, sym, depth))
		}
		total += c
		prev = sym
	}
	return total
}
