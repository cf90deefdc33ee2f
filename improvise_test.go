package hs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImproviseShapeAndNoMutation(t *testing.T) {
	config := DefaultConfig(3)
	config.MemorySize = 8
	config.Sampling = Range[float64]{Min: -1, Max: 1}
	config.Rand = rand.New(rand.NewSource(2))

	memory := newMemory(config)
	original := cloneMemory(memory)

	candidates := improvise(config, memory)

	// Same shape, structurally independent, input untouched.
	require.Len(t, candidates, len(memory))
	for i := range candidates {
		require.Len(t, candidates[i], len(memory[i]))
	}

	assert.Equal(t, original, memory)
}

func TestImproviseNoTrialsFireAtExtremeRates(t *testing.T) {
	config := DefaultConfig(4)
	config.MemorySize = 6

	// Float64 draws are in [0,1), so u > 1 never fires: with HMCR and PAR
	// both at 1, no coordinate is replaced or adjusted.
	config.HMCR = 1
	config.PAR = 1
	config.Rand = rand.New(rand.NewSource(3))

	memory := newMemory(config)

	candidates := improvise(config, memory)

	assert.Equal(t, memory, candidates)
}

func TestImproviseFullReplacementDrawsFromSampling(t *testing.T) {
	config := DefaultConfig(3)
	config.MemorySize = 10
	config.Sampling = Range[float64]{Min: 0, Max: 1}
	config.HMCR = 0 // replace (almost surely) every coordinate
	config.PAR = 1  // never pitch-adjust
	config.Rand = rand.New(rand.NewSource(6))

	// Seed the memory far outside the sampling interval so replacement is
	// observable.
	memory := make([]Harmony, config.MemorySize)
	for i := range memory {
		memory[i] = Harmony{99, 99, 99}
	}

	candidates := improvise(config, memory)

	for _, h := range candidates {
		for _, x := range h {
			assert.GreaterOrEqual(t, x, 0.0)
			assert.Less(t, x, 1.0)
		}
	}
}

func TestImprovisePitchAdjustmentBounded(t *testing.T) {
	config := DefaultConfig(2)
	config.MemorySize = 10
	config.HMCR = 1 // never replace
	config.PAR = 0  // (almost surely) always adjust
	config.Bandwidth = 0.25
	config.Rand = rand.New(rand.NewSource(13))

	memory := make([]Harmony, config.MemorySize)
	for i := range memory {
		memory[i] = Harmony{5, -5}
	}

	candidates := improvise(config, memory)

	// Every coordinate moved by at most the bandwidth.
	for _, h := range candidates {
		assert.InDelta(t, 5, h[0], 0.25)
		assert.InDelta(t, -5, h[1], 0.25)
	}
}

func TestImproviseDeterministicSeed(t *testing.T) {
	config := DefaultConfig(3)
	config.MemorySize = 5

	config.Rand = rand.New(rand.NewSource(21))
	memory := newMemory(config)

	config.Rand = rand.New(rand.NewSource(22))
	first := improvise(config, memory)

	config.Rand = rand.New(rand.NewSource(22))
	second := improvise(config, memory)

	assert.Equal(t, first, second)
}
