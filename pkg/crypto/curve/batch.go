package curve

import (
	"context"
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchWorkers is used when ScalarMultBatch is given workers <= 0
const DefaultBatchWorkers = 4

// ScalarMultBatch computes k·P for every k in scalars on a bounded pool of
// workers. Results are returned in input order. The first failure cancels the
// remaining work and is returned with the index of the failing scalar.
func ScalarMultBatch(ctx context.Context, p *Point, scalars []*big.Int, workers int) ([]*Point, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}

	results := make([]*Point, len(scalars))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, k := range scalars {
		i, k := i, k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := p.ScalarMult(k)
			if err != nil {
				return fmt.Errorf("scalar %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
