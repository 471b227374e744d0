package paths

import (
	"fmt"

	"github.com/katalvlaran/padchain/keypad"
)

type pair struct{ from, to rune }

// Table holds the enumerated paths for every ordered pair of buttons on one
// keypad. It is immutable after NewTable and safe for concurrent reads.
type Table struct {
	kp    *keypad.Keypad
	paths map[pair][]Path
}

// NewTable enumerates all button pairs of kp.
// Complexity: O(B²) for B buttons.
func NewTable(kp *keypad.Keypad) (*Table, error) {
	if kp == nil {
		return nil, ErrNilKeypad
	}
	syms := kp.Symbols()
	t := &Table{kp: kp, paths: make(map[pair][]Path, len(syms)*len(syms))}
	for _, a := range syms {
		for _, b := range syms {
			t.paths[pair{a, b}] = All(kp, kp.MustLocate(a), kp.MustLocate(b))
		}
	}
	return t, nil
}

// Keypad returns the keypad the table was built for.
func (t *Table) Keypad() *keypad.Keypad { return t.kp }

// Lookup returns the paths from a to b, or keypad.ErrUnknownSymbol.
// The returned slice is shared; callers must not modify it.
func (t *Table) Lookup(a, b rune) ([]Path, error) {
	ps, ok := t.paths[pair{a, b}]
	if !ok {
		return nil, fmt.Errorf("%w: pair %q→%q on %s keypad", keypad.ErrUnknownSymbol, a, b, t.kp.Name())
	}
	return ps, nil
}

// MustLookup is like Lookup but panics on an unknown symbol.
func (t *Table) MustLookup(a, b rune) []Path {
	ps, err := t.Lookup(a, b)
	if err != nil {
		panic(err)
	}
	return ps
}
