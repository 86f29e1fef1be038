package evaluator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// cancellation is checked once per this many hands
const cancelCheckInterval = 256

// ClassifyAll classifies hands across a bounded pool of workers. Results are
// returned in input order. Workers <= 0 uses GOMAXPROCS.
func ClassifyAll(ctx context.Context, hands []Hand, workers int) ([]HandRank, error) {
	if len(hands) == 0 {
		return []HandRank{}, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(hands))

	out := make([]HandRank, len(hands))
	chunk := (len(hands) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(hands); start += chunk {
		end := min(start+chunk, len(hands))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				out[i] = Classify(hands[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
