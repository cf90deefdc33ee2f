package hs

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// ProgressUpdate represents the current state of the search process.
type ProgressUpdate struct {
	// Iteration is the current iteration number (1-based)
	Iteration int

	// TotalIterations is the total number of iterations to run
	TotalIterations int

	// BestFitness holds the lowest fitness currently in the harmony memory
	BestFitness float64

	// WorstFitness holds the highest fitness currently in the harmony memory
	WorstFitness float64

	// Replaced reports whether this iteration's best candidate displaced the
	// worst member of the memory
	Replaced bool
}

// Harmony is one candidate solution: an ordered vector of real numbers, one
// component per dimension of the search space. Lower objective values are
// better (minimization).
type Harmony []float64

// ObjectiveFunc defines the signature for the function being minimized.
// It is the task whose input vector you want to optimize.
//
// Parameters:
//   - v: A candidate solution of length Config.Dimensions. Implementations
//     must not retain or mutate the slice.
//
// Returns:
// - float64: The objective value at v (lower is better)
// - error: Return nil on success, or an error to abort the search
//
// Usage example:
//
//	// Sphere function, minimum at the origin
//	sphere := ObjectiveFunc(func(v []float64) (float64, error) {
//	    var sum float64
//	    for _, x := range v {
//	        sum += x * x
//	    }
//	    return sum, nil
//	})
//
// Important notes:
// - NaN results are treated as worse than any other fitness value
// - +Inf is a valid way to signal "out of bounds, keep searching"
// - Errors are never swallowed: they propagate out of FindHarmony
// - When Config.Workers > 1 the function must be safe to call concurrently.
type ObjectiveFunc func(v []float64) (float64, error)

// Range defines the sampling interval used both for the initial harmony
// memory and for full random replacement of a coordinate during
// improvisation.
//
// Type Parameter:
//   - T: The floating-point type for the interval bounds
//
// Validation:
// - Min must be strictly less than Max
//
// Warning:
//   - Using a very wide range may result in slower convergence as the search
//     space becomes too large to explore effectively
type Range[T constraints.Float] struct {
	// Min defines the lower bound (inclusive) of the sampling interval.
	Min T

	// Max defines the upper bound (exclusive for uniform draws) of the
	// sampling interval.
	Max T
}

// Config holds all configuration parameters for one harmony search run.
// It controls the population size, the improvisation probabilities, and the
// computational budget.
//
// Fields explanation:
// - Dimensions: Length of every harmony (candidate solution vector)
// - MemorySize: Number of harmonies kept in the harmony memory (HMS)
// - HMCR: Harmony memory considering rate, in [0,1]
// - PAR: Pitch adjustment rate, in [0,1]
// - Bandwidth: Magnitude bound of a single pitch adjustment (BW)
// - Iterations: Fixed iteration budget; the loop never stops early
// - Sampling: Interval for initialization and full coordinate replacement
// - Workers: Max concurrent objective evaluations (0 or 1 = sequential)
// - Rand: Random source driving initialization and improvisation
// - ProgressChan: Optional channel for per-iteration progress updates
//
// Usage example:
//
//	config := DefaultConfig(2)
//	config.Iterations = 2000
//	config.Sampling = Range[float64]{Min: -10, Max: 10}
//
//	best, fitness, err := FindHarmony(config, sphere)
//
// Default values recommendations:
// - MemorySize: 30 (increase for rugged, multimodal objectives)
// - HMCR: 0.8, PAR: 0.4 (the classic defaults)
// - Bandwidth: a small fraction of the sampling range width
//
// Note:
// - Create separate configs (and separate Rand sources) for parallel runs.
type Config struct {
	// Dimensions is the length d of every harmony. The objective function is
	// always invoked with a vector of exactly this length.
	Dimensions int `validate:"gt=0"`

	// MemorySize is the number of harmonies held in the harmony memory. The
	// memory never grows or shrinks after initialization.
	MemorySize int `validate:"gt=0"`

	// HMCR is the harmony memory considering rate. Per coordinate, a uniform
	// trial u is drawn; when u > HMCR the coordinate is replaced with a fresh
	// uniform draw from Sampling instead of being taken from memory.
	HMCR float64 `validate:"gte=0,lte=1"`

	// PAR is the pitch adjustment rate. Per coordinate, an independent
	// uniform trial u is drawn; when u > PAR a uniform offset in
	// [-Bandwidth, Bandwidth] is added to the coordinate.
	PAR float64 `validate:"gte=0,lte=1"`

	// Bandwidth bounds the magnitude of a single pitch adjustment.
	Bandwidth float64 `validate:"gt=0"`

	// Iterations is the fixed number of improvise/select rounds to run.
	// There is no early-stopping or convergence check.
	Iterations int `validate:"gt=0"`

	// Sampling is the interval harmonies are initialized from and fresh
	// coordinate values are drawn from during improvisation.
	Sampling Range[float64]

	// Workers caps the number of concurrent objective evaluations per
	// generation. 0 or 1 evaluates sequentially; higher values require the
	// objective function to be safe for concurrent use. The random source is
	// never shared with workers, so results are identical either way.
	Workers int `validate:"gte=0"`

	// Rand is the random number generator driving memory initialization and
	// improvisation.
	//
	// Required initialization:
	// - MUST be initialized using rand.New(rand.NewSource(seed))
	// - Use a fixed seed for reproducible runs
	// - Each search run should have its own Rand
	//
	// Warning:
	// - Do NOT share Rand between concurrent search runs
	Rand *rand.Rand `validate:"required"`

	// ProgressChan is used to send progress updates during the search.
	// If nil, no updates are sent. Sends are non-blocking: updates are
	// dropped when the channel is full.
	ProgressChan chan<- ProgressUpdate
}
