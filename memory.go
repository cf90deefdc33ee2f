package hs

import "math"

//////
// Harmony memory construction and fitness ordering.
//////

// newMemory generates the initial harmony memory: MemorySize independent
// harmonies, each with Dimensions components drawn uniformly at random from
// the sampling interval.
//
// The memory is the only population state the search keeps; it is created
// once per run and individual rows are replaced by the selector, but it is
// never resized.
func newMemory(cfg Config) []Harmony {
	memory := make([]Harmony, cfg.MemorySize)
	for i := range memory {
		h := make(Harmony, cfg.Dimensions)
		for j := range h {
			h[j] = uniform(cfg.Rand, cfg.Sampling.Min, cfg.Sampling.Max)
		}

		memory[i] = h
	}

	return memory
}

// worseFitness reports whether fitness a orders strictly worse than b.
//
// NaN is defined to be worse than any other value, including +Inf, so a NaN
// member is always eligible for replacement. Two NaNs compare equal (neither
// is worse). This keeps comparisons deterministic where IEEE semantics would
// otherwise make every NaN comparison false.
func worseFitness(a, b float64) bool {
	switch {
	case math.IsNaN(a):
		return !math.IsNaN(b)
	case math.IsNaN(b):
		return false
	default:
		return a > b
	}
}

// betterFitness reports whether fitness a orders strictly better than b.
// The mirror of worseFitness: NaN is never better than anything.
func betterFitness(a, b float64) bool {
	switch {
	case math.IsNaN(a):
		return false
	case math.IsNaN(b):
		return true
	default:
		return a < b
	}
}

// bestIndex returns the index of the lowest fitness value. NaN entries are
// never selected as best unless every entry is NaN.
//
// Panics on an empty fitness vector; the search loop only ever calls it with
// exactly MemorySize entries.
func bestIndex(fitness []float64) int {
	best := 0
	for i := 1; i < len(fitness); i++ {
		if betterFitness(fitness[i], fitness[best]) {
			best = i
		}
	}

	return best
}

// worstIndex returns the index of the highest fitness value, with NaN
// ordering above everything else.
func worstIndex(fitness []float64) int {
	worst := 0
	for i := 1; i < len(fitness); i++ {
		if worseFitness(fitness[i], fitness[worst]) {
			worst = i
		}
	}

	return worst
}
