package hs

//////
// Selection: merging candidates back into the harmony memory.
//////

// merge combines the candidate memory into the current one, keeping the
// population size fixed. It finds the worst member of memory and the best
// candidate; if the best candidate has strictly lower fitness, it replaces
// the worst member. Ties keep the incumbent.
//
// memFitness and candFitness must index-align with memory and candidates.
//
// Returns a fresh memory and fitness vector rather than mutating the inputs,
// so callers never hold aliased state, plus whether a replacement happened.
//
// Guarantee: the maximum fitness of the returned memory is never higher than
// that of the input memory; the population cannot get worse. A NaN member
// orders worse than everything (see worseFitness), so it is displaced by any
// non-NaN candidate.
func merge(
	memory, candidates []Harmony,
	memFitness, candFitness []float64,
) ([]Harmony, []float64, bool) {
	worst := worstIndex(memFitness)
	best := bestIndex(candFitness)

	// Strict inequality only: equal fitness keeps the existing member.
	if !betterFitness(candFitness[best], memFitness[worst]) {
		return memory, memFitness, false
	}

	merged := cloneMemory(memory)
	merged[worst] = cloneHarmony(candidates[best])

	fitness := make([]float64, len(memFitness))
	copy(fitness, memFitness)
	fitness[worst] = candFitness[best]

	return merged, fitness, true
}
