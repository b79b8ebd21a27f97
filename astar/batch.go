package astar

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/grid"
)

// FindBatch runs Find once per (starts[i], goals[i]) pair and returns the
// paths index-aligned with the pairs. The pairs are independent, so they
// are fanned out across up to GOMAXPROCS workers, each with private
// scratch state; the shared cost field is only read.
//
// Returns nil when the two pair slices differ in length. A cancelled
// context stops scheduling further pairs; pairs not yet run are left as
// empty paths, keeping the call total.
//
// The caller must not mutate costs while the batch is in flight.
//
// Complexity: one Find per pair, divided across the worker pool.
func FindBatch(ctx context.Context, costs []float64, width, height int, starts, goals []grid.Cell, opts ...Option) [][]int {
	if len(starts) != len(goals) {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	paths := make([][]int, len(starts))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i := range starts {
		i := i
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			paths[i] = Find(costs, width, height, starts[i], goals[i], opts...)

			return nil
		})
	}

	// Failure is only ever context cancellation; the result stays total.
	_ = eg.Wait()

	return paths
}
