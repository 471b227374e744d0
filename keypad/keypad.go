package keypad

import (
	"fmt"
	"unicode/utf8"
)

var (
	numeric     = mustNew("numeric", []string{"789", "456", "123", "_0A"})
	directional = mustNew("directional", []string{"_^A", "<v>"})
)

// Numeric returns the door keypad: 789 / 456 / 123 / _0A, gap at (3,0).
// The returned value is shared and must be treated as read-only.
func Numeric() *Keypad { return numeric }

// Directional returns the controller keypad: _^A / <v>, gap at (0,0).
// The returned value is shared and must be treated as read-only.
func Directional() *Keypad { return directional }

// New builds a Keypad from layout rows, top row first. Each rune is one button;
// GapMark ('_') marks the single cell without a button.
// Returns ErrEmptyLayout, ErrNonRectangular, ErrGapCount or ErrDuplicateSymbol.
// Complexity: O(R×C).
func New(name string, rows []string) (*Keypad, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyLayout
	}
	w := utf8.RuneCountInString(rows[0])
	kp := &Keypad{
		name:    name,
		rows:    len(rows),
		cols:    w,
		buttons: make(map[rune]Position, len(rows)*w),
		cells:   make([][]rune, len(rows)),
	}
	gaps := 0
	for r, line := range rows {
		cells := []rune(line)
		if len(cells) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(cells), w)
		}
		kp.cells[r] = cells
		for c, sym := range cells {
			p := Position{Row: r, Col: c}
			if sym == GapMark {
				kp.gap = p
				gaps++
				continue
			}
			if _, dup := kp.buttons[sym]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, sym)
			}
			kp.buttons[sym] = p
		}
	}
	if gaps != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrGapCount, gaps)
	}

	return kp, nil
}

func mustNew(name string, rows []string) *Keypad {
	kp, err := New(name, rows)
	if err != nil {
		panic(err)
	}
	return kp
}

// Locate returns the position of sym, or ErrUnknownSymbol.
// Complexity: O(1).
func (kp *Keypad) Locate(sym rune) (Position, error) {
	p, ok := kp.buttons[sym]
	if !ok {
		return Position{}, fmt.Errorf("%w: %q on %s keypad", ErrUnknownSymbol, sym, kp.name)
	}
	return p, nil
}

// MustLocate is like Locate but panics on an unknown symbol. Asking a fixed
// keypad for a button it does not have is a programming error.
func (kp *Keypad) MustLocate(sym rune) Position {
	p, err := kp.Locate(sym)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the label given to New, e.g. "numeric".
func (kp *Keypad) Name() string { return kp.name }

// Rows returns the number of grid rows, gap row included.
func (kp *Keypad) Rows() int { return kp.rows }

// Cols returns the number of grid columns.
func (kp *Keypad) Cols() int { return kp.cols }

// Gap returns the cell that has no button.
func (kp *Keypad) Gap() Position { return kp.gap }

// Has reports whether sym is a button on kp.
func (kp *Keypad) Has(sym rune) bool {
	_, ok := kp.buttons[sym]
	return ok
}

// InBounds reports whether p lies within the grid. The gap is in bounds.
func (kp *Keypad) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < kp.rows && p.Col >= 0 && p.Col < kp.cols
}

// At returns the button at p. ok is false outside the grid and on the gap.
func (kp *Keypad) At(p Position) (sym rune, ok bool) {
	if !kp.InBounds(p) || p == kp.gap {
		return 0, false
	}
	return kp.cells[p.Row][p.Col], true
}

// Symbols lists every button in row-major order.
func (kp *Keypad) Symbols() []rune {
	out := make([]rune, 0, len(kp.buttons))
	for _, row := range kp.cells {
		for _, sym := range row {
			if sym != GapMark {
				out = append(out, sym)
			}
		}
	}
	return out
}

// String returns the layout rows joined by " / ".
func (kp *Keypad) String() string {
	s := ""
	for i, row := range kp.cells {
		if i > 0 {
			s += " / "
		}
		s += string(row)
	}
	return s
}
