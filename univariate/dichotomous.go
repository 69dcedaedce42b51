package univariate

import (
	"github.com/btracey/intervalsearch/common"
)

// Dichotomous performs a dichotomous search. Every iteration evaluates the
// objective at two points placed eps on either side of the midpoint of the
// interval of uncertainty and keeps the half that must contain the minimum.
// Requires l > 2*eps.
type Dichotomous struct {
	eps float64
	tol common.IntervalToler

	a, b    float64
	k       int
	stalled bool

	f Objective
}

func (d *Dichotomous) Name() string {
	return "dichotomous"
}

func (d *Dichotomous) Init(f Objective, a, b float64, settings *Settings) (int, error) {
	if err := common.CheckInterval(a, b); err != nil {
		return 0, err
	}
	if err := common.CheckPrecision(settings.Eps, settings.L); err != nil {
		return 0, err
	}
	if !(settings.L > 2*settings.Eps) {
		return 0, common.PrecisionError("l = %v must be greater than 2*eps = %v", settings.L, 2*settings.Eps)
	}
	d.eps = settings.Eps
	d.tol.Init(settings.L, settings.LenRelTol, a, b)
	d.a = a
	d.b = b
	d.k = 1
	d.stalled = false
	d.f = f
	return 0, nil
}

func (d *Dichotomous) Status() common.Status {
	if d.tol.Converged() {
		return common.BoundsConverged
	}
	if d.stalled {
		return common.LocChangeTol
	}
	// At the bracket's magnitude the interior points may round onto each other or onto
	// an end point, after which narrowing would empty the bracket
	lm, mu := d.interior()
	if !(d.a < lm && lm <= mu && mu < d.b) || (d.eps > 0 && lm == mu) {
		d.stalled = true
		return common.LocChangeTol
	}
	return common.Continue
}

// interior returns the points eps on either side of the midpoint
func (d *Dichotomous) interior() (lm, mu float64) {
	m := (d.a + d.b) / 2
	return m - d.eps, m + d.eps
}

func (d *Dichotomous) Iterate() (IterationRecord, int) {
	// Offsets move with the midpoint, so neither point can be reused
	lm, mu := d.interior()
	fLm := d.f.Obj(lm)
	fMu := d.f.Obj(mu)

	rec := IterationRecord{K: d.k, A: d.a, B: d.b, Lm: lm, Mu: mu, FLm: fLm, FMu: fMu}

	a, b := d.a, d.b
	if fLm < fMu {
		d.b = mu
	} else {
		d.a = lm
	}
	d.stalled = a == d.a && b == d.b
	d.tol.Add(d.a, d.b)
	d.k++
	return rec, 2
}

func (d *Dichotomous) Finish() (*IterationRecord, int) {
	return nil, 0
}

func (d *Dichotomous) Bracket() (float64, float64) {
	return d.a, d.b
}

func (d *Dichotomous) Search(f Objective, a, b float64, settings *Settings) (*Result, error) {
	return Search(f, a, b, settings, d)
}

// DichotomousSearch minimizes f over [a, b] by dichotomous search with
// distinguishability constant eps until the interval is shorter than l.
func DichotomousSearch(f Func, a, b, eps, l float64) (*Result, error) {
	return Search(f, a, b, NewSettings(eps, l), &Dichotomous{})
}
