package hs

import (
	"fmt"

	"github.com/sourcegraph/conc/pool"
)

//////
// Fitness evaluation.
//////

// evaluate applies the objective function independently to every harmony in
// m, preserving index order: result[i] is the fitness of m[i].
//
// Nothing is cached or memoized; every call re-invokes the objective for
// every row. Any error from the objective aborts the evaluation and is
// returned wrapped with the offending row index.
//
// When cfg.Workers > 1, rows are evaluated concurrently by a bounded worker
// pool. Each worker writes into its own pre-assigned slot of the result, so
// index alignment holds regardless of completion order and no locking is
// needed. The objective function must be safe for concurrent use in that
// mode; the search's random source is never touched here, so parallel and
// sequential evaluation produce identical results.
func evaluate(cfg Config, m []Harmony, f ObjectiveFunc) ([]float64, error) {
	fitness := make([]float64, len(m))

	if cfg.Workers > 1 {
		p := pool.New().WithErrors().WithMaxGoroutines(cfg.Workers)

		for i, h := range m {
			i, h := i, h

			p.Go(func() error {
				value, err := f(h)
				if err != nil {
					return fmt.Errorf("objective function failed for harmony %d: %w", i, err)
				}

				fitness[i] = value

				return nil
			})
		}

		if err := p.Wait(); err != nil {
			return nil, err
		}

		return fitness, nil
	}

	for i, h := range m {
		value, err := f(h)
		if err != nil {
			return nil, fmt.Errorf("objective function failed for harmony %d: %w", i, err)
		}

		fitness[i] = value
	}

	return fitness, nil
}
