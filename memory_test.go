package hs

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryShapeAndRange(t *testing.T) {
	config := DefaultConfig(4)
	config.MemorySize = 25
	config.Sampling = Range[float64]{Min: -3, Max: 7}
	config.Rand = rand.New(rand.NewSource(11))

	memory := newMemory(config)

	// Exactly MemorySize harmonies of exactly Dimensions components each.
	require.Len(t, memory, 25)

	for _, h := range memory {
		require.Len(t, h, 4)

		for _, x := range h {
			assert.GreaterOrEqual(t, x, -3.0)
			assert.Less(t, x, 7.0)
		}
	}
}

func TestNewMemoryDeterministicSeed(t *testing.T) {
	config := DefaultConfig(3)
	config.MemorySize = 5

	config.Rand = rand.New(rand.NewSource(99))
	first := newMemory(config)

	config.Rand = rand.New(rand.NewSource(99))
	second := newMemory(config)

	assert.Equal(t, first, second)
}

func TestFitnessOrderingNaN(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	// NaN is worse than anything, including +Inf.
	assert.True(t, worseFitness(nan, inf))
	assert.True(t, worseFitness(nan, 1.0))
	assert.False(t, worseFitness(inf, nan))
	assert.False(t, worseFitness(nan, nan))

	// NaN is never better than anything.
	assert.False(t, betterFitness(nan, inf))
	assert.True(t, betterFitness(inf, nan))
	assert.True(t, betterFitness(1.0, nan))

	// Finite values keep their usual ordering.
	assert.True(t, worseFitness(2.0, 1.0))
	assert.False(t, worseFitness(1.0, 1.0))
	assert.True(t, betterFitness(1.0, 2.0))
	assert.False(t, betterFitness(1.0, 1.0))
}

func TestBestAndWorstIndex(t *testing.T) {
	fitness := []float64{3, 1, 4, 1.5}

	assert.Equal(t, 1, bestIndex(fitness))
	assert.Equal(t, 2, worstIndex(fitness))
}

func TestBestIndexSkipsNaN(t *testing.T) {
	fitness := []float64{math.NaN(), 5, 2}

	// NaN is never selected as best, and always selected as worst.
	assert.Equal(t, 2, bestIndex(fitness))
	assert.Equal(t, 0, worstIndex(fitness))
}

func TestBestIndexAllNaN(t *testing.T) {
	fitness := []float64{math.NaN(), math.NaN()}

	// Degenerate but deterministic: the first entry wins both ways.
	assert.Equal(t, 0, bestIndex(fitness))
	assert.Equal(t, 0, worstIndex(fitness))
}

func TestCloneMemoryIndependence(t *testing.T) {
	memory := []Harmony{{1, 2}, {3, 4}}

	clone := cloneMemory(memory)
	require.Equal(t, memory, clone)

	clone[0][0] = 99
	clone[1] = Harmony{7, 8}

	// Mutating the clone never writes through to the original.
	assert.Equal(t, []Harmony{{1, 2}, {3, 4}}, memory)
}
