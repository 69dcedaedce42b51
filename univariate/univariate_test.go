package univariate

import (
	"math"

	"github.com/btracey/intervalsearch/common"
)

type testFunction struct {
	f      func(float64) float64
	a, b   float64
	optLoc float64
	Name   string
}

type quadratic struct {
	b float64
	c float64
}

func (q quadratic) Obj(x float64) float64 {
	return (x-q.b)*(x-q.b) + q.c
}

func (q quadratic) OptVal() float64 {
	return q.c
}

func (q quadratic) OptLoc() float64 {
	return q.b
}

// counter counts the evaluations of the objective it wraps
type counter struct {
	f     Objective
	evals int
}

func (c *counter) Obj(x float64) float64 {
	c.evals++
	return c.f.Obj(x)
}

var testFunctions = []testFunction{
	{
		f:      func(x float64) float64 { return x*x + 2*x },
		a:      -3,
		b:      5,
		optLoc: -1,
		Name:   "shiftedSquare",
	},
	{
		f:      quadratic{b: 3, c: 5}.Obj,
		a:      -7,
		b:      13,
		optLoc: 3,
		Name:   "quadratic",
	},
	{
		f:      func(x float64) float64 { return math.Abs(x*x - 1) },
		a:      -2,
		b:      0,
		optLoc: -1,
		Name:   "absQuadratic",
	},
	{
		f:      func(x float64) float64 { return math.Exp(x) - 2*x },
		a:      0,
		b:      2,
		optLoc: math.Ln2,
		Name:   "expLinear",
	},
	{
		f:      func(x float64) float64 { return (x - 4) / (x - 9) },
		a:      -3,
		b:      0,
		optLoc: 0,
		Name:   "rationalBoundary",
	},
}

var precisions = []struct {
	eps, l float64
}{
	{0.1, 0.5},
	{0.01, 0.1},
	{0.001, 0.01},
	{1e-4, 1e-3},
}

type statusObjective struct {
	quadratic
	limit int
	evals int
	inits int
	done  bool
}

func (s *statusObjective) Obj(x float64) float64 {
	s.evals++
	return s.quadratic.Obj(x)
}

func (s *statusObjective) Init() {
	s.inits++
}

func (s *statusObjective) Status() common.Status {
	if s.evals >= s.limit {
		return common.UserFunctionError
	}
	return common.Continue
}

func (s *statusObjective) Result() {
	s.done = true
}

// converged reports whether the final bracket is shorter than l within the
// relative tolerance used by the searches
func converged(r *Result, l float64) bool {
	var tol common.IntervalToler
	tol.Init(l, common.DefaultLenRelTol, r.A, r.B)
	return tol.Converged()
}
