package univariate

import (
	"math"
	"math/big"

	"github.com/btracey/intervalsearch/common"
	"github.com/btracey/intervalsearch/fibonacci"
)

// minFibonacciBudget is the smallest number of Fibonacci steps for which two
// interior points and one ratio step exist
const minFibonacciBudget = 3

// Fibonacci performs a Fibonacci search. It is similar to golden section
// search, but the contraction ratio changes from iteration to iteration
// following the Fibonacci numbers. The number of iterations n is fixed up
// front as the smallest n with F(n) > (b-a)/l, where F(0) = F(1) = 1.
//
// The last ratio step places both points at the same point, so a final step
// compares the objective at lm and lm+eps to choose a side.
// Requires eps > 0 and l > 0.
type Fibonacci struct {
	// Sequence supplies the Fibonacci numbers. If nil the package default
	// sequence of fibonacci is used.
	Sequence *fibonacci.Sequence

	eps   float64
	n     int
	table []*big.Int

	a, b float64
	k    int
	done bool

	lm, mu   float64
	fLm, fMu float64

	f Objective
}

func (fs *Fibonacci) Name() string {
	return "fibonacci"
}

// Budget returns the number of Fibonacci steps chosen by the last Init
func (fs *Fibonacci) Budget() int {
	return fs.n
}

func (fs *Fibonacci) ratio(i, j int) float64 {
	return fibonacci.Ratio(fs.table, i, j)
}

func (fs *Fibonacci) Init(f Objective, a, b float64, settings *Settings) (int, error) {
	if err := common.CheckInterval(a, b); err != nil {
		return 0, err
	}
	if err := common.CheckPrecision(settings.Eps, settings.L); err != nil {
		return 0, err
	}
	if settings.Eps == 0 {
		return 0, common.PrecisionError("eps must be positive")
	}
	if settings.L == 0 {
		return 0, common.PrecisionError("l must be positive")
	}
	steps := (b - a) / settings.L
	if math.IsInf(steps, 0) {
		return 0, common.PrecisionError("l = %v is too small for the interval [%v, %v]", settings.L, a, b)
	}

	seq := fs.Sequence
	if seq == nil {
		seq = fibonacci.Default()
	}
	fs.n = seq.IndexAbove(steps)
	if fs.n < minFibonacciBudget {
		fs.n = minFibonacciBudget
	}
	fs.table = seq.Seq(fs.n)

	fs.eps = settings.Eps
	fs.a = a
	fs.b = b
	fs.k = 0
	fs.done = false
	fs.f = f

	n := fs.n
	fs.lm = a + fs.ratio(n-2, n)*(b-a)
	fs.mu = a + fs.ratio(n-1, n)*(b-a)
	fs.fLm = f.Obj(fs.lm)
	fs.fMu = f.Obj(fs.mu)
	return 2, nil
}

func (fs *Fibonacci) Status() common.Status {
	if fs.done {
		return common.BudgetExhausted
	}
	// Rounding has pushed an interior point onto an end point or past the other one
	if !(fs.a < fs.lm && fs.lm <= fs.mu && fs.mu < fs.b) {
		return common.LocChangeTol
	}
	return common.Continue
}

func (fs *Fibonacci) record() IterationRecord {
	return IterationRecord{K: fs.k, A: fs.a, B: fs.b, Lm: fs.lm, Mu: fs.mu, FLm: fs.fLm, FMu: fs.fMu}
}

func (fs *Fibonacci) Iterate() (IterationRecord, int) {
	fs.k++
	rec := fs.record()
	n, k := fs.n, fs.k
	last := k == n-2

	if fs.fLm > fs.fMu {
		fs.a = fs.lm
		fs.lm, fs.fLm = fs.mu, fs.fMu
		fs.mu = fs.a + fs.ratio(n-k-1, n-k)*(fs.b-fs.a)
		if last {
			fs.done = true
			return rec, 0
		}
		fs.fMu = fs.f.Obj(fs.mu)
		return rec, 1
	}

	fs.b = fs.mu
	fs.mu, fs.fMu = fs.lm, fs.fLm
	fs.lm = fs.a + fs.ratio(n-k-2, n-k)*(fs.b-fs.a)
	if last {
		// The new lm coincides with the reused point, whose value is known
		fs.lm, fs.fLm = fs.mu, fs.fMu
		fs.done = true
		return rec, 0
	}
	fs.fLm = fs.f.Obj(fs.lm)
	return rec, 1
}

// Finish performs the final refinement. It is skipped if the loop was
// stopped before the budget was used up. The bracket is only cut at lm if lm
// lies strictly inside it.
func (fs *Fibonacci) Finish() (*IterationRecord, int) {
	if !fs.done {
		return nil, 0
	}
	fs.k++
	fs.mu = fs.lm + fs.eps
	fs.fMu = fs.f.Obj(fs.mu)
	rec := fs.record()

	if !(fs.a < fs.lm && fs.lm < fs.b) {
		return &rec, 1
	}
	if fs.fLm > fs.fMu {
		fs.a = fs.lm
	} else {
		fs.b = fs.lm
	}
	return &rec, 1
}

func (fs *Fibonacci) Bracket() (float64, float64) {
	return fs.a, fs.b
}

func (fs *Fibonacci) Search(f Objective, a, b float64, settings *Settings) (*Result, error) {
	return Search(f, a, b, settings, fs)
}

// FibonacciSearch minimizes f over [a, b] by Fibonacci search with final
// length l, using eps to separate the points of the last step.
func FibonacciSearch(f Func, a, b, eps, l float64) (*Result, error) {
	return Search(f, a, b, NewSettings(eps, l), &Fibonacci{})
}
