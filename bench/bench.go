// Package bench provides classic benchmark optimization functions from
// http://en.wikipedia.org/wiki/Test_functions_for_optimization for exercising
// the hs optimizer, together with their bounds and known optima.
package bench

import (
	"math"

	"github.com/thalesfsp/hs"
)

// Point is a known optimum: a position in the search space and the function
// value there.
type Point struct {
	Pos []float64
	Val float64
}

// Func is one benchmark objective. Bounds returns the scalar interval that
// applies to every dimension, matching the single sampling range the
// optimizer uses. Eval returns +Inf outside the bounds so the search is
// penalized for leaving them.
type Func interface {
	Name() string
	Dims() int
	Eval(v []float64) float64
	Bounds() (low, up float64)
	Optima() []Point
}

// AllFuncs lists every benchmark function with a representative dimension,
// for discovery by name.
var AllFuncs = []Func{
	Sphere{NDim: 2},
	Ackley{},
	Rastrigin{NDim: 2},
	Rosenbrock{NDim: 2},
	Styblinski{NDim: 2},
	Eggholder{},
}

// Objective adapts a benchmark function to the optimizer's objective
// contract. Benchmark functions never fail, so the error is always nil.
func Objective(fn Func) hs.ObjectiveFunc {
	return func(v []float64) (float64, error) {
		return fn.Eval(v), nil
	}
}

// insideBounds reports whether every component of v is within fn's bounds.
func insideBounds(v []float64, fn Func) bool {
	low, up := fn.Bounds()
	for _, x := range v {
		if x < low || x > up {
			return false
		}
	}

	return true
}

// Sphere is the convex sum-of-squares function. Unimodal; the easiest
// possible benchmark.
type Sphere struct {
	NDim int
}

func (fn Sphere) Name() string { return "Sphere" }

func (fn Sphere) Dims() int { return fn.NDim }

func (fn Sphere) Eval(v []float64) float64 {
	if !insideBounds(v, fn) {
		return math.Inf(1)
	}

	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return sum
}

func (fn Sphere) Bounds() (low, up float64) { return -10, 10 }

func (fn Sphere) Optima() []Point {
	return []Point{{Pos: make([]float64, fn.NDim), Val: 0}}
}

// Ackley is a widely used multimodal function with many local minima and a
// single global minimum at the origin. Two-dimensional.
type Ackley struct{}

func (fn Ackley) Name() string { return "Ackley" }

func (fn Ackley) Dims() int { return 2 }

func (fn Ackley) Eval(v []float64) float64 {
	if !insideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]

	return -20*math.Exp(-0.2*math.Sqrt(0.5*(x*x+y*y))) -
		math.Exp(0.5*(math.Cos(2*math.Pi*x)+math.Cos(2*math.Pi*y))) +
		20 + math.E
}

func (fn Ackley) Bounds() (low, up float64) { return -5, 5 }

func (fn Ackley) Optima() []Point {
	return []Point{{Pos: []float64{0, 0}, Val: 0}}
}

// Rastrigin is a highly multimodal function with a regular grid of local
// minima and the global minimum at the origin.
type Rastrigin struct {
	NDim int
}

func (fn Rastrigin) Name() string { return "Rastrigin" }

func (fn Rastrigin) Dims() int { return fn.NDim }

func (fn Rastrigin) Eval(v []float64) float64 {
	if !insideBounds(v, fn) {
		return math.Inf(1)
	}

	sum := 10 * float64(len(v))
	for _, x := range v {
		sum += x*x - 10*math.Cos(2*math.Pi*x)
	}

	return sum
}

func (fn Rastrigin) Bounds() (low, up float64) { return -5.12, 5.12 }

func (fn Rastrigin) Optima() []Point {
	return []Point{{Pos: make([]float64, fn.NDim), Val: 0}}
}

// Rosenbrock is the classic banana-valley function. Unimodal for NDim <= 3;
// the global minimum sits in a long, flat, curved valley that is hard to
// traverse.
type Rosenbrock struct {
	NDim int
}

func (fn Rosenbrock) Name() string { return "Rosenbrock" }

func (fn Rosenbrock) Dims() int { return fn.NDim }

func (fn Rosenbrock) Eval(v []float64) float64 {
	if !insideBounds(v, fn) {
		return math.Inf(1)
	}

	var sum float64
	for i := 0; i < len(v)-1; i++ {
		sum += 100*math.Pow(v[i+1]-v[i]*v[i], 2) + math.Pow(1-v[i], 2)
	}

	return sum
}

func (fn Rosenbrock) Bounds() (low, up float64) { return -2.048, 2.048 }

func (fn Rosenbrock) Optima() []Point {
	pos := make([]float64, fn.NDim)
	for i := range pos {
		pos[i] = 1
	}

	return []Point{{Pos: pos, Val: 0}}
}

// Styblinski is the Styblinski-Tang function: multimodal, with the global
// minimum at -2.903534 in every dimension.
type Styblinski struct {
	NDim int
}

func (fn Styblinski) Name() string { return "Styblinski" }

func (fn Styblinski) Dims() int { return fn.NDim }

func (fn Styblinski) Eval(v []float64) float64 {
	if !insideBounds(v, fn) {
		return math.Inf(1)
	}

	var sum float64
	for _, x := range v {
		sum += math.Pow(x, 4) - 16*x*x + 5*x
	}

	return sum / 2
}

func (fn Styblinski) Bounds() (low, up float64) { return -5, 5 }

func (fn Styblinski) Optima() []Point {
	pos := make([]float64, fn.NDim)
	for i := range pos {
		pos[i] = -2.9035340
	}

	return []Point{{Pos: pos, Val: -39.16616570377 * float64(fn.NDim)}}
}

// Eggholder is a difficult two-dimensional multimodal function whose global
// minimum lies near a corner of the domain.
type Eggholder struct{}

func (fn Eggholder) Name() string { return "Eggholder" }

func (fn Eggholder) Dims() int { return 2 }

func (fn Eggholder) Eval(v []float64) float64 {
	if !insideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]

	return -(y+47)*math.Sin(math.Sqrt(math.Abs(x/2+y+47))) -
		x*math.Sin(math.Sqrt(math.Abs(x-(y+47))))
}

func (fn Eggholder) Bounds() (low, up float64) { return -512, 512 }

func (fn Eggholder) Optima() []Point {
	return []Point{{Pos: []float64{512, 404.2319}, Val: -959.6407}}
}

// ByName returns the benchmark function with the given name, sized to dims
// dimensions where the function supports it. The second return is false when
// no function matches.
func ByName(name string, dims int) (Func, bool) {
	switch name {
	case "sphere", "Sphere":
		return Sphere{NDim: dims}, true
	case "ackley", "Ackley":
		return Ackley{}, true
	case "rastrigin", "Rastrigin":
		return Rastrigin{NDim: dims}, true
	case "rosenbrock", "Rosenbrock":
		return Rosenbrock{NDim: dims}, true
	case "styblinski", "Styblinski":
		return Styblinski{NDim: dims}, true
	case "eggholder", "Eggholder":
		return Eggholder{}, true
	default:
		return nil, false
	}
}
