// Package hs provides black-box minimization of real-valued functions using
// the Harmony Search metaheuristic: a population-based, derivative-free
// stochastic optimizer over a fixed-dimensional continuous search space.
//
// # Features
//
// The package includes the following key features:
//
//   - Harmony Memory: Maintains a fixed-size population of candidate
//     solutions whose worst member monotonically improves over time
//   - Per-Coordinate Improvisation: Independent random-replacement (HMCR)
//     and pitch-adjustment (PAR) trials for every coordinate
//   - Injected Randomness: An explicit *rand.Rand in the configuration,
//     enabling fully deterministic, reproducible runs
//   - Parallel Evaluation: Optional bounded worker pool for objective
//     evaluation without changing results
//   - Eager Validation: Configuration errors fail fast with descriptive
//     messages before any search work starts
//   - Progress Monitoring: Per-iteration updates via a non-blocking channel
//   - Robust Numerics: NaN fitness is explicitly ordered worse than any
//     other value, so comparisons stay deterministic
//
// # Usage
//
// The sole entry point is FindHarmony:
//
//	config := hs.DefaultConfig(2)
//	config.Iterations = 2000
//	config.Bandwidth = 0.5
//	config.Sampling = hs.Range[float64]{Min: -10, Max: 10}
//
//	best, fitness, err := hs.FindHarmony(config, func(v []float64) (float64, error) {
//	    return v[0]*v[0] + v[1]*v[1], nil
//	})
//
// The objective function is an opaque collaborator: the optimizer never
// inspects it, caches its results, or recovers from its errors. Any error
// aborts the search and propagates to the caller.
//
// # Algorithm
//
// One search runs four cooperating operations in a loop with a fixed
// iteration budget:
//
//  1. Generate: fill the harmony memory with uniform random harmonies
//  2. Improvise: derive a candidate memory by perturbing the current one
//  3. Evaluate: compute index-aligned fitness for both memories
//  4. Select: replace the worst member with the best candidate on strict
//     improvement only; ties keep the incumbent
//
// The search never stops early; it always consumes the full iteration
// budget and then returns the best harmony found. Out of scope by design:
// constraint handling, multi-objective search, adaptive parameter tuning,
// and multi-population variants.
//
// # Thread Safety
//
// A single Config (and in particular its Rand) must not be shared between
// concurrent searches; give every run its own. Within one run, setting
// Workers > 1 parallelizes objective evaluation with per-slot result
// writes. The objective must then be safe for concurrent invocation, and
// results remain identical to a sequential run.
//
// # Benchmarks
//
// The bench subpackage ships classic optimization test functions (Sphere,
// Ackley, Rastrigin, Rosenbrock, Styblinski-Tang, Eggholder) with their
// bounds and known optima, plus an adapter to ObjectiveFunc. The cmd/hs
// binary runs the optimizer against them from the command line.
package hs
