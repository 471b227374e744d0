package paths

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/padchain/keypad"
)

// Sentinel errors for path enumeration and replay.
var (
	// ErrNilKeypad is returned when a nil keypad is supplied.
	ErrNilKeypad = errors.New("paths: keypad is nil")

	// ErrLeavesGrid is returned by Replay when a move exits the keypad grid.
	ErrLeavesGrid = errors.New("paths: move leaves the keypad")

	// ErrHitsGap is returned by Replay when a move lands on the gap.
	ErrHitsGap = errors.New("paths: move lands on the gap")

	// ErrMissingActivate is returned by Replay when a path does not end with
	// exactly one activation.
	ErrMissingActivate = errors.New("paths: path must end with a single activation")

	// ErrBadGlyph is returned by Replay for a symbol that is neither a
	// direction nor the activation.
	ErrBadGlyph = errors.New("paths: invalid glyph in path")
)

// Path is one minimal traversal between two buttons: direction glyphs
// terminated by keypad.Activate.
type Path string

// Moves returns the number of direction glyphs, excluding the activation.
func (p Path) Moves() int { return len(p) - 1 }

// Turns counts direction changes along p. Fewer turns are cheaper for the
// controller one layer out.
func (p Path) Turns() int {
	turns := 0
	for i := 1; i < len(p)-1; i++ {
		if p[i] != p[i-1] {
			turns++
		}
	}
	return turns
}

// Option configures enumeration hooks via functional arguments.
type Option func(*Options)

// Options holds callbacks invoked while enumerating.
type Options struct {
	// OnEnqueue is called whenever a frontier item is queued, with the
	// cell reached and the glyphs typed so far.
	OnEnqueue func(at keypad.Position, prefix string)

	// OnRecord is called for each completed path, in discovery order.
	OnRecord func(p Path)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(keypad.Position, string) {},
		OnRecord:  func(Path) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(at keypad.Position, prefix string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnRecord registers a callback to run when a path is completed.
func WithOnRecord(fn func(p Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRecord = fn
		}
	}
}

// Replay walks p from the cell from, one move per glyph, and returns the
// cell the activation presses.
func Replay(kp *keypad.Keypad, from keypad.Position, p Path) (keypad.Position, error) {
	if kp == nil {
		return keypad.Position{}, ErrNilKeypad
	}
	if len(p) == 0 || p[len(p)-1] != keypad.Activate {
		return keypad.Position{}, ErrMissingActivate
	}
	at := from
	for i, glyph := range string(p[:len(p)-1]) {
		if glyph == keypad.Activate {
			return keypad.Position{}, fmt.Errorf("%w: early activation at %d", ErrMissingActivate, i)
		}
		next, ok := keypad.Step(at, glyph)
		if !ok {
			return keypad.Position{}, fmt.Errorf("%w: %q at %d", ErrBadGlyph, glyph, i)
		}
		if !kp.InBounds(next) {
			return keypad.Position{}, fmt.Errorf("%w: %v at %d", ErrLeavesGrid, next, i)
		}
		if next == kp.Gap() {
			return keypad.Position{}, fmt.Errorf("%w: %v at %d", ErrHitsGap, next, i)
		}
		at = next
	}
	return at, nil
}
