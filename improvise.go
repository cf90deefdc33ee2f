package hs

//////
// Improvisation: stochastic generation of candidate harmonies.
//////

// improvise generates a new candidate memory from the current one. The input
// is never mutated; the result is structurally independent and has the same
// shape.
//
// Trials are per coordinate, independently for every row (the classic
// harmony search granularity, rather than a single trial per row):
//
//  1. Memory consideration: draw u uniform in [0,1). If u > HMCR, replace
//     the coordinate with a fresh uniform draw from the sampling interval;
//     otherwise keep the value carried from memory.
//  2. Pitch adjustment: draw an independent u uniform in [0,1). If u > PAR,
//     add a uniform offset in [-Bandwidth, Bandwidth] to the coordinate.
//
// The two decisions are independent, so a freshly replaced coordinate can
// also be pitch-adjusted in the same pass. Pitch adjustment can push a
// coordinate outside the sampling interval; objectives that care should
// penalize out-of-range inputs (e.g. return +Inf).
func improvise(cfg Config, m []Harmony) []Harmony {
	candidates := make([]Harmony, len(m))

	for i, h := range m {
		candidate := cloneHarmony(h)

		for j := range candidate {
			if cfg.Rand.Float64() > cfg.HMCR {
				candidate[j] = uniform(cfg.Rand, cfg.Sampling.Min, cfg.Sampling.Max)
			}

			if cfg.Rand.Float64() > cfg.PAR {
				candidate[j] += uniform(cfg.Rand, -cfg.Bandwidth, cfg.Bandwidth)
			}
		}

		candidates[i] = candidate
	}

	return candidates
}
