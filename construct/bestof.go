package construct

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"dualtour/matrix"
	"dualtour/search"
)

// BestOf runs the regret heuristic from `attempts` distinct start cities in
// parallel and returns the cheapest resulting solution with its total cost.
//
// Start cities are drawn as a seeded permutation prefix, and every attempt
// receives its own derived RNG stream, so results are reproducible for a
// fixed opts.Seed regardless of goroutine scheduling. Attempts share only
// the read-only distance matrix; each builds a private solution, and ties on
// cost resolve to the lowest attempt index.
func BestOf(ctx context.Context, dist matrix.Matrix, attempts int, opts Options) (*search.Solution, float64, error) {
	if attempts < 1 {
		return nil, 0, fmt.Errorf("%w: attempts must be positive", ErrBadOptions)
	}
	if err := opts.validate(); err != nil {
		return nil, 0, err
	}

	n, err := matrix.ValidateDistances(dist)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}
	if n == 0 {
		sol, err := search.NewSolution(nil, nil)
		return sol, 0, err
	}
	if attempts > n {
		attempts = n
	}

	starts, err := permRange(n, rngFromSeed(opts.Seed))
	if err != nil {
		return nil, 0, err
	}
	starts = starts[:attempts]

	type attempt struct {
		sol  *search.Solution
		cost float64
	}
	results := make([]attempt, attempts)

	g, ctx := errgroup.WithContext(ctx)
	for i := range starts {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			local := opts
			local.Start = starts[i]
			local.Seed = deriveSeed(opts.Seed, uint64(i))
			sol, err := Regret(dist, local)
			if err != nil {
				return err
			}
			cost, err := search.TotalCost(dist, sol)
			if err != nil {
				return err
			}
			results[i] = attempt{sol: sol, cost: cost}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	best := 0
	for i := 1; i < attempts; i++ {
		if results[i].cost < results[best].cost {
			best = i
		}
	}
	return results[best].sol, results[best].cost, nil
}
