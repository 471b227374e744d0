package presses

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/padchain/keypad"
)

// Sentinel errors for cost evaluation.
var (
	// ErrNilKeypad is returned when a nil keypad is supplied.
	ErrNilKeypad = errors.New("presses: keypad is nil")

	// ErrDepthRange indicates depth < 0 or depth > maxDepth.
	ErrDepthRange = errors.New("presses: depth out of range")
)

// Option configures an Evaluator via functional arguments.
type Option func(*Options)

// Options holds the keypads an Evaluator prices against and its hooks.
type Options struct {
	// Numeric is the keypad at depth 0.
	Numeric *keypad.Keypad

	// Directional is the keypad at every depth ≥ 1.
	Directional *keypad.Keypad

	// OnMiss is called each time a (depth, sequence) is priced rather than
	// served from the memo. It must be safe for concurrent use when the
	// Evaluator is shared between goroutines.
	OnMiss func(depth int, seq string)
}

// DefaultOptions returns the door and controller keypads with a no-op hook.
func DefaultOptions() Options {
	return Options{
		Numeric:     keypad.Numeric(),
		Directional: keypad.Directional(),
		OnMiss:      func(int, string) {},
	}
}

// WithKeypads replaces both layouts. Nil values are reported by New.
func WithKeypads(numeric, directional *keypad.Keypad) Option {
	return func(o *Options) {
		o.Numeric = numeric
		o.Directional = directional
	}
}

// WithOnMiss registers a callback for every memo miss.
func WithOnMiss(fn func(depth int, seq string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMiss = fn
		}
	}
}

// memoKey identifies one priced sequence. height is maxDepth - depth, so
// entries stay valid when one Memo serves chains of different lengths.
type memoKey struct {
	depth  int
	height int
	seq    string
}

// Stats reports memo activity.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Memo is the press-cost cache shared by every recursive call and every code
// priced through one Evaluator. It is safe for concurrent use.
type Memo struct {
	mu      sync.RWMutex
	entries map[memoKey]int
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// newMemo returns an empty Memo. Memos are only created by New, so each one
// belongs to exactly one Evaluator and its keypads.
func newMemo() *Memo {
	return &Memo{entries: make(map[memoKey]int)}
}

func (m *Memo) get(k memoKey) (int, bool) {
	m.mu.RLock()
	v, ok := m.entries[k]
	m.mu.RUnlock()
	if ok {
		m.hits.Add(1)
	} else {
		m.misses.Add(1)
	}
	return v, ok
}

func (m *Memo) put(k memoKey, v int) {
	m.mu.Lock()
	m.entries[k] = v
	m.mu.Unlock()
}

// Stats returns a snapshot of hit and miss counters and the entry count.
func (m *Memo) Stats() Stats {
	m.mu.RLock()
	n := len(m.entries)
	m.mu.RUnlock()
	return Stats{Hits: m.hits.Load(), Misses: m.misses.Load(), Entries: n}
}

// Len returns the number of cached entries.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
