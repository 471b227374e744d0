package keypad

import (
	"errors"
)

// Sentinel errors for keypad construction and lookup.
var (
	// ErrEmptyLayout indicates the layout has no rows or no columns.
	ErrEmptyLayout = errors.New("keypad: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("keypad: all layout rows must have the same length")
	// ErrGapCount indicates the layout does not mark exactly one gap cell.
	ErrGapCount = errors.New("keypad: layout must contain exactly one gap")
	// ErrDuplicateSymbol indicates a symbol is placed on two buttons.
	ErrDuplicateSymbol = errors.New("keypad: duplicate button symbol")
	// ErrUnknownSymbol indicates a lookup for a symbol the keypad does not have.
	ErrUnknownSymbol = errors.New("keypad: unknown button symbol")
)

// Button glyphs shared by both layouts.
const (
	// Activate presses the button currently targeted.
	Activate = 'A'
	// Up moves the arm one row up.
	Up = '^'
	// Down moves the arm one row down.
	Down = 'v'
	// Left moves the arm one column left.
	Left = '<'
	// Right moves the arm one column right.
	Right = '>'
	// GapMark is the layout character for the cell without a button.
	GapMark = '_'
)

// Position is a (row, column) cell on a keypad grid. Row 0 is the top row.
type Position struct {
	Row, Col int
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Step returns the position one move away from p in the direction of glyph.
// ok is false when glyph is not one of the four direction glyphs.
func Step(p Position, glyph rune) (next Position, ok bool) {
	switch glyph {
	case Up:
		return Position{p.Row - 1, p.Col}, true
	case Down:
		return Position{p.Row + 1, p.Col}, true
	case Left:
		return Position{p.Row, p.Col - 1}, true
	case Right:
		return Position{p.Row, p.Col + 1}, true
	default:
		return p, false
	}
}

// Keypad is an immutable button layout. rows and cols give the grid size,
// buttons maps each symbol to its cell, and gap is the one cell with no button.
// All fields are unexported so the shared layouts cannot be altered.
type Keypad struct {
	name       string
	rows, cols int
	buttons    map[rune]Position
	cells      [][]rune
	gap        Position
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
