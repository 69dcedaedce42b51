package univariate

import (
	"math"

	"github.com/btracey/intervalsearch/common"
)

// alpha is the contraction factor of golden section search, (sqrt(5)-1)/2
const alpha = math.Phi - 1

// GoldenSection performs a golden section search. The two interior points divide
// the interval in the golden ratio, so one of them is always reused by the next
// iteration and each iteration after the first costs a single evaluation.
// Eps is not used.
type GoldenSection struct {
	tol common.IntervalToler

	a, b float64
	k    int

	lm, mu   float64
	fLm, fMu float64

	f Objective
}

func (g *GoldenSection) Name() string {
	return "golden"
}

func (g *GoldenSection) Init(f Objective, a, b float64, settings *Settings) (int, error) {
	if err := common.CheckInterval(a, b); err != nil {
		return 0, err
	}
	if err := common.CheckPrecision(settings.Eps, settings.L); err != nil {
		return 0, err
	}
	g.tol.Init(settings.L, settings.LenRelTol, a, b)
	g.a = a
	g.b = b
	g.k = 1
	g.f = f

	g.lm = a + (1-alpha)*(b-a)
	g.mu = a + alpha*(b-a)
	g.fLm = f.Obj(g.lm)
	g.fMu = f.Obj(g.mu)
	return 2, nil
}

func (g *GoldenSection) Status() common.Status {
	if g.tol.Converged() {
		return common.BoundsConverged
	}
	// Check if we're so close that a point landed on a bound
	if g.lm <= g.a || g.mu >= g.b {
		return common.LocChangeTol
	}
	return common.Continue
}

func (g *GoldenSection) record() IterationRecord {
	return IterationRecord{K: g.k, A: g.a, B: g.b, Lm: g.lm, Mu: g.mu, FLm: g.fLm, FMu: g.fMu}
}

func (g *GoldenSection) Iterate() (IterationRecord, int) {
	rec := g.record()
	if g.fLm > g.fMu {
		// Minimum is in [lm, b], mu becomes the new lm
		g.a = g.lm
		g.lm, g.fLm = g.mu, g.fMu
		g.mu = g.a + alpha*(g.b-g.a)
		g.fMu = g.f.Obj(g.mu)
	} else {
		// Minimum is in [a, mu], lm becomes the new mu
		g.b = g.mu
		g.mu, g.fMu = g.lm, g.fLm
		g.lm = g.a + (1-alpha)*(g.b-g.a)
		g.fLm = g.f.Obj(g.lm)
	}
	g.tol.Add(g.a, g.b)
	g.k++
	return rec, 1
}

// Finish records the terminal state of the search
func (g *GoldenSection) Finish() (*IterationRecord, int) {
	rec := g.record()
	return &rec, 0
}

func (g *GoldenSection) Bracket() (float64, float64) {
	return g.a, g.b
}

func (g *GoldenSection) Search(f Objective, a, b float64, settings *Settings) (*Result, error) {
	return Search(f, a, b, settings, g)
}

// GoldenSectionSearch minimizes f over [a, b] by golden section search until
// the interval is shorter than l. eps is accepted for symmetry with the other
// searches and is only checked to be non-negative.
func GoldenSectionSearch(f Func, a, b, eps, l float64) (*Result, error) {
	return Search(f, a, b, NewSettings(eps, l), &GoldenSection{})
}
