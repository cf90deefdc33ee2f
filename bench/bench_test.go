package bench

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalesfsp/hs"
)

func TestOptimaEvaluate(t *testing.T) {
	for _, fn := range AllFuncs {
		t.Run(fn.Name(), func(t *testing.T) {
			for _, opt := range fn.Optima() {
				require.Len(t, opt.Pos, fn.Dims())
				assert.InDelta(t, opt.Val, fn.Eval(opt.Pos), 1e-3)
			}
		})
	}
}

func TestOutsideBoundsIsInf(t *testing.T) {
	for _, fn := range AllFuncs {
		t.Run(fn.Name(), func(t *testing.T) {
			_, up := fn.Bounds()

			v := make([]float64, fn.Dims())
			for i := range v {
				v[i] = up + 1
			}

			assert.True(t, math.IsInf(fn.Eval(v), 1))
		})
	}
}

func TestByName(t *testing.T) {
	fn, ok := ByName("rastrigin", 5)
	require.True(t, ok)
	assert.Equal(t, "Rastrigin", fn.Name())
	assert.Equal(t, 5, fn.Dims())

	_, ok = ByName("nope", 2)
	assert.False(t, ok)
}

func TestObjectiveAdapter(t *testing.T) {
	fn := Sphere{NDim: 3}
	objective := Objective(fn)

	value, err := objective([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 14.0, value)
}

func TestFindHarmonyOnAckley(t *testing.T) {
	fn := Ackley{}
	low, up := fn.Bounds()

	config := hs.DefaultConfig(fn.Dims())
	config.MemorySize = 20
	config.HMCR = 0.9
	config.PAR = 0.3
	config.Bandwidth = 0.2
	config.Iterations = 5000
	config.Sampling = hs.Range[float64]{Min: low, Max: up}
	config.Rand = rand.New(rand.NewSource(17))

	best, fitness, err := hs.FindHarmony(config, Objective(fn))
	require.NoError(t, err)
	require.Len(t, best, 2)

	// Ackley's global minimum is 0 at the origin; the search should get
	// well inside the outer ring of local minima.
	assert.Less(t, fitness, 1.0)
}
