package complexity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/padchain/presses"
)

// ErrOverflow indicates a complexity or a sum of complexities exceeds math.MaxInt.
var ErrOverflow = errors.New("complexity: result overflows int")

// Breakdown is the priced result for one code.
type Breakdown struct {
	Code       Code
	Presses    int
	Numeric    uint64
	Complexity int
}

// Aggregator prices batches of codes through one shared Evaluator.
type Aggregator struct {
	eval *presses.Evaluator
}

// New builds an Aggregator; opts are passed to presses.New.
func New(opts ...presses.Option) (*Aggregator, error) {
	e, err := presses.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Aggregator{eval: e}, nil
}

// Total prices codes with a fresh Aggregator on the standard keypads.
// Panics with presses.ErrDepthRange if maxDepth is negative and with
// ErrOverflow if the total does not fit in an int.
func Total(codes []Code, maxDepth int) int {
	a, err := New()
	if err != nil {
		// the default keypads are never nil
		panic(err)
	}
	return a.Total(codes, maxDepth)
}

// Evaluator returns the evaluator shared by every code this Aggregator prices.
func (a *Aggregator) Evaluator() *presses.Evaluator { return a.eval }

// Total returns Σ presses(code) × numeric(code) over codes.
// Panics with presses.ErrDepthRange if maxDepth is negative and with
// ErrOverflow if a complexity or the sum does not fit in an int.
func (a *Aggregator) Total(codes []Code, maxDepth int) int {
	results := make([]int, len(codes))
	for i, c := range codes {
		results[i] = a.mustPrice(c, maxDepth).Complexity
	}
	sum, err := sumChecked(results)
	if err != nil {
		panic(err)
	}
	return sum
}

// Explain returns the per-code results Total sums, in input order.
// Panics like Total.
func (a *Aggregator) Explain(codes []Code, maxDepth int) []Breakdown {
	out := make([]Breakdown, len(codes))
	for i, c := range codes {
		out[i] = a.mustPrice(c, maxDepth)
	}
	return out
}

// TotalParallel computes Total with up to workers goroutines sharing the
// Aggregator's memo. workers < 1 means one. Returns ctx.Err() if ctx is
// cancelled before every code is priced, presses.ErrDepthRange for a
// negative maxDepth and ErrOverflow when the result does not fit in an int.
func (a *Aggregator) TotalParallel(ctx context.Context, codes []Code, maxDepth, workers int) (int, error) {
	if maxDepth < 0 {
		return 0, fmt.Errorf("%w: maxDepth %d", presses.ErrDepthRange, maxDepth)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]int, len(codes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range codes {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := a.price(c, maxDepth)
			if err != nil {
				return err
			}
			results[i] = b.Complexity
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return sumChecked(results)
}

func (a *Aggregator) price(c Code, maxDepth int) (Breakdown, error) {
	n := a.eval.Cost(c.text, 0, maxDepth)
	cx, ok := mulChecked(n, c.value)
	if !ok {
		return Breakdown{}, fmt.Errorf("%w: %s needs %d presses × %d", ErrOverflow, c, n, c.value)
	}
	return Breakdown{Code: c, Presses: n, Numeric: c.value, Complexity: cx}, nil
}

func (a *Aggregator) mustPrice(c Code, maxDepth int) Breakdown {
	b, err := a.price(c, maxDepth)
	if err != nil {
		panic(err)
	}
	return b
}

// mulChecked returns n × v for non-negative n, or false if it exceeds math.MaxInt.
func mulChecked(n int, v uint64) (int, bool) {
	hi, lo := bits.Mul64(uint64(n), v)
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// sumChecked adds non-negative values, failing once the sum exceeds math.MaxInt.
func sumChecked(xs []int) (int, error) {
	sum := 0
	for _, x := range xs {
		if x > math.MaxInt-sum {
			return 0, fmt.Errorf("%w: sum of %d complexities", ErrOverflow, len(xs))
		}
		sum += x
	}
	return sum, nil
}
