package hs

import "math/rand"

//////
// Helper functions.
//////

// uniform draws a single value from [min, max) using the given generator.
//
// Used for memory initialization, full coordinate replacement, and (with a
// symmetric interval) pitch adjustment offsets.
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// cloneHarmony returns an independent copy of h.
//
// Important notes:
// - Creates a new slice; doesn't modify the input
// - Returns a non-nil empty harmony for empty input.
func cloneHarmony(h Harmony) Harmony {
	out := make(Harmony, len(h))
	copy(out, h)

	return out
}

// cloneMemory returns a deep, structurally independent copy of m: mutating
// any row of the result never aliases the input.
func cloneMemory(m []Harmony) []Harmony {
	out := make([]Harmony, len(m))
	for i, h := range m {
		out[i] = cloneHarmony(h)
	}

	return out
}
