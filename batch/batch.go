package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/hupe1980/euclid"
	"golang.org/x/sync/errgroup"
)

// Pair is one pair of operands.
type Pair struct {
	A, B euclid.Vector
}

// PairError reports the pair an operation failed on.
type PairError struct {
	Index int
	Err   error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("pair %d: %v", e.Index, e.Err)
}

func (e *PairError) Unwrap() error { return e.Err }

// Evaluator runs operations over batches of pairs. It is safe for
// concurrent use.
type Evaluator struct {
	concurrency int
	logger      *euclid.Logger
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return &Evaluator{
		concurrency: o.concurrency,
		logger:      o.logger,
	}
}

// Concurrency returns the configured concurrency limit.
func (e *Evaluator) Concurrency() int {
	return e.concurrency
}

// Map applies fn to every pair and returns the results in input order.
// On the first error, or when ctx is done, the remaining pairs are skipped
// and the error is returned.
func Map[T any](ctx context.Context, e *Evaluator, op string, pairs []Pair, fn func(a, b euclid.Vector) (T, error)) ([]T, error) {
	out := make([]T, len(pairs))
	if len(pairs) == 0 {
		return out, nil
	}

	logger := e.logger.WithOp(op)
	var completed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, p := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(p.A, p.B)
			logger.WithDimension(p.A.Dimension()).LogOp(gctx, i, err)
			if err != nil {
				return &PairError{Index: i, Err: err}
			}
			out[i] = r
			completed.Add(1)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		// errgroup cancels gctx, not ctx
		err = ctx.Err()
	}
	logger.LogBatch(ctx, len(pairs), int(completed.Load()), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Dots returns A·B for every pair.
func Dots(ctx context.Context, e *Evaluator, pairs []Pair) ([]float64, error) {
	return Map(ctx, e, "dot", pairs, euclid.Vector.Dot)
}

// Angles returns the angle in radians between A and B for every pair.
func Angles(ctx context.Context, e *Evaluator, pairs []Pair) ([]float64, error) {
	return Map(ctx, e, "angle", pairs, euclid.Vector.AngleWith)
}

// Sums returns A+B for every pair.
func Sums(ctx context.Context, e *Evaluator, pairs []Pair) ([]euclid.Vector, error) {
	return Map(ctx, e, "add", pairs, euclid.Vector.Add)
}

// Crosses returns A×B for every pair.
func Crosses(ctx context.Context, e *Evaluator, pairs []Pair) ([]euclid.Vector, error) {
	return Map(ctx, e, "cross", pairs, euclid.Vector.Cross)
}

// Projections returns the projection of B onto A for every pair.
func Projections(ctx context.Context, e *Evaluator, pairs []Pair) ([]euclid.Vector, error) {
	return Map(ctx, e, "project", pairs, func(a, b euclid.Vector) (euclid.Vector, error) {
		return b.ProjectOnto(a)
	})
}
