package hs

//////
// Exported functionalities.
//////

// FindHarmony runs harmony search to find a minimizing input vector for your
// objective function. It is a population-based, derivative-free stochastic
// optimizer for black-box objectives over a fixed-dimensional continuous
// search space.
//
// Parameters:
// - config: Config controlling the search process (validated eagerly)
// - objective: The function whose input vector you want to minimize
//
// Returns:
// - Harmony: The best solution found (length config.Dimensions)
// - float64: The fitness of that solution
// - error: Configuration error, or any error the objective returned
//
// Usage example:
//
//	config := DefaultConfig(2)
//	config.MemorySize = 10
//	config.Iterations = 2000
//	config.Bandwidth = 0.5
//	config.Sampling = Range[float64]{Min: -10, Max: 10}
//	config.Rand = rand.New(rand.NewSource(42))
//
//	best, fitness, err := FindHarmony(config, func(v []float64) (float64, error) {
//	    return v[0]*v[0] + v[1]*v[1], nil
//	})
//
// How it works:
//  1. Generates MemorySize random harmonies in the sampling interval
//  2. For each iteration:
//     - Improvises a candidate memory by per-coordinate random replacement
//     (HMCR trials) and pitch adjustment (PAR trials, bounded by Bandwidth)
//     - Evaluates current memory and candidates
//     - Replaces the worst member with the best candidate, but only on a
//     strict fitness improvement
//  3. Returns the best harmony in the final memory
//
// Important notes:
// - Runs exactly config.Iterations rounds; there is no convergence check
// - The worst fitness in memory is non-increasing across iterations
// - Objective errors abort the search immediately and propagate
// - The result is the best sampled point, not a guaranteed global optimum
// - Deterministic for a fixed Rand seed and a deterministic objective,
//   including with Workers > 1
//
// Best practices:
// - Start with DefaultConfig() and adjust Sampling to your search space
// - Scale Bandwidth with the sampling range width (a few percent is typical)
// - Run multiple searches with different seeds and compare results
// - A caller wanting cancellation should return an error from the objective.
func FindHarmony(config Config, objective ObjectiveFunc) (Harmony, float64, error) {
	if err := config.Validate(); err != nil {
		return nil, 0, err
	}

	memory := newMemory(config)

	var fitness []float64

	for i := 0; i < config.Iterations; i++ {
		candidates := improvise(config, memory)

		// Fitness is always recomputed from the current memory before
		// selection, never carried as stale state across replacements.
		memFitness, err := evaluate(config, memory, objective)
		if err != nil {
			return nil, 0, err
		}

		candFitness, err := evaluate(config, candidates, objective)
		if err != nil {
			return nil, 0, err
		}

		var replaced bool

		memory, fitness, replaced = merge(memory, candidates, memFitness, candFitness)

		sendProgress(config, i+1, fitness, replaced)
	}

	best := bestIndex(fitness)

	return cloneHarmony(memory[best]), fitness[best], nil
}

// sendProgress emits a non-blocking progress update. Updates are dropped
// when the channel is full so a slow consumer never stalls the search.
func sendProgress(config Config, iteration int, fitness []float64, replaced bool) {
	if config.ProgressChan == nil {
		return
	}

	update := ProgressUpdate{
		Iteration:       iteration,
		TotalIterations: config.Iterations,
		BestFitness:     fitness[bestIndex(fitness)],
		WorstFitness:    fitness[worstIndex(fitness)],
		Replaced:        replaced,
	}

	select {
	case config.ProgressChan <- update:
	default:
		// Skip update if channel is full.
	}
}
