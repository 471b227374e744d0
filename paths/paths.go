package paths

import (
	"strings"

	"github.com/katalvlaran/padchain/keypad"
)

// queueItem pairs a reached cell with the glyphs typed to reach it.
type queueItem struct {
	at     keypad.Position
	prefix string
}

// walker encapsulates mutable enumeration state.
type walker struct {
	gap    keypad.Position
	target keypad.Position
	opts   Options
	queue  []queueItem
	res    []Path
}

// All returns every minimal gap-avoiding path from from to to on kp, in
// discovery order. If from == to the only path is a single activation.
// Panics with ErrNilKeypad if kp is nil.
func All(kp *keypad.Keypad, from, to keypad.Position, opts ...Option) []Path {
	if kp == nil {
		panic(ErrNilKeypad)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		gap:    kp.Gap(),
		target: to,
		opts:   o,
		queue:  make([]queueItem, 0, 4),
		res:    make([]Path, 0, 2),
	}
	w.enqueue(from, "")
	w.loop()

	return w.res
}

// Between returns All for the buttons a and b of kp.
// Returns keypad.ErrUnknownSymbol if either is not on kp.
func Between(kp *keypad.Keypad, a, b rune, opts ...Option) ([]Path, error) {
	if kp == nil {
		return nil, ErrNilKeypad
	}
	from, err := kp.Locate(a)
	if err != nil {
		return nil, err
	}
	to, err := kp.Locate(b)
	if err != nil {
		return nil, err
	}
	return All(kp, from, to, opts...), nil
}

func (w *walker) enqueue(at keypad.Position, prefix string) {
	w.opts.OnEnqueue(at, prefix)
	w.queue = append(w.queue, queueItem{at: at, prefix: prefix})
}

// loop processes the queue until it drains.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if item.at == w.target {
			p := Path(item.prefix + string(keypad.Activate))
			w.res = append(w.res, p)
			w.opts.OnRecord(p)
			continue
		}
		w.expand(item)
	}
}

// expand enqueues a full run toward the target along each axis on which the
// target still lies, unless the gap sits on that run.
func (w *walker) expand(item queueItem) {
	i, j := item.at.Row, item.at.Col
	b, g := w.target, w.gap

	if b.Col < j && !(g.Row == i && g.Col < j && g.Col >= b.Col) {
		w.jump(item, keypad.Position{Row: i, Col: b.Col}, keypad.Left, j-b.Col)
	}
	if b.Row < i && !(g.Col == j && g.Row < i && g.Row >= b.Row) {
		w.jump(item, keypad.Position{Row: b.Row, Col: j}, keypad.Up, i-b.Row)
	}
	if b.Row > i && !(g.Col == j && g.Row > i && g.Row <= b.Row) {
		w.jump(item, keypad.Position{Row: b.Row, Col: j}, keypad.Down, b.Row-i)
	}
	if b.Col > j && !(g.Row == i && g.Col > j && g.Col <= b.Col) {
		w.jump(item, keypad.Position{Row: i, Col: b.Col}, keypad.Right, b.Col-j)
	}
}

func (w *walker) jump(item queueItem, to keypad.Position, glyph rune, n int) {
	w.enqueue(to, item.prefix+strings.Repeat(string(glyph), n))
}
