package univariate

import (
	"math"
	"testing"

	"github.com/btracey/intervalsearch/common"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestGoldenSection(t *testing.T) {
	for _, test := range testFunctions {
		for _, p := range precisions {
			c := &counter{f: Func(test.f)}
			result, err := Search(c, test.a, test.b, NewSettings(p.eps, p.l), &GoldenSection{})
			if err != nil {
				t.Errorf("%v eps=%v l=%v: unexpected error: %v", test.Name, p.eps, p.l, err)
				continue
			}
			if !converged(result, p.l) {
				t.Errorf("%v eps=%v l=%v: final interval [%v, %v] not shorter than l", test.Name, p.eps, p.l, result.A, result.B)
			}
			if result.Loc < test.a || result.Loc > test.b {
				t.Errorf("%v: location %v outside of [%v, %v]", test.Name, result.Loc, test.a, test.b)
			}
			if math.Abs(result.Loc-test.optLoc) > p.l {
				t.Errorf("%v eps=%v l=%v: location doesn't match. Expected: %v, Found %v", test.Name, p.eps, p.l, test.optLoc, result.Loc)
			}
			if result.FunctionEvaluations != 2+(result.Iterations-1) {
				t.Errorf("%v: %v evaluations for %v iterations", test.Name, result.FunctionEvaluations, result.Iterations)
			}
			if c.evals != result.FunctionEvaluations {
				t.Errorf("%v: reported %v evaluations, objective saw %v", test.Name, result.FunctionEvaluations, c.evals)
			}
		}
	}
}

func TestGoldenSectionSearch(t *testing.T) {
	f := func(x float64) float64 { return x*x + 2*x }
	result, err := GoldenSectionSearch(f, -3, 5, 0.05, 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(result.Loc+1) > 0.2 {
		t.Errorf("location doesn't match. Expected: %v, Found %v", -1.0, result.Loc)
	}
	if result.Iterations != 9 || result.FunctionEvaluations != 10 {
		t.Errorf("expected 9 iterations and 10 evaluations, found %v and %v", result.Iterations, result.FunctionEvaluations)
	}

	first := result.Trace[0]
	if first.A != -3 || first.B != 5 {
		t.Errorf("first record has bounds [%v, %v]", first.A, first.B)
	}
	if !scalar.EqualWithinAbsOrRel(first.Lm, -3+(1-alpha)*8, 1e-14, 1e-14) || !scalar.EqualWithinAbsOrRel(first.Mu, -3+alpha*8, 1e-14, 1e-14) {
		t.Errorf("initial points %v, %v", first.Lm, first.Mu)
	}
	// One of the points of every iteration is carried over from the previous one
	for i := 1; i < len(result.Trace); i++ {
		prev, rec := result.Trace[i-1], result.Trace[i]
		if rec.Lm != prev.Mu && rec.Mu != prev.Lm {
			t.Errorf("record %v reuses no point of record %v", i+1, i)
		}
		if rec.Lm == prev.Mu && rec.FLm != prev.FMu {
			t.Errorf("record %v: reused point has a different value", i+1)
		}
		if rec.Mu == prev.Lm && rec.FMu != prev.FLm {
			t.Errorf("record %v: reused point has a different value", i+1)
		}
		if rec.K != prev.K+1 {
			t.Errorf("record %v has k = %v", i+1, rec.K)
		}
	}
	last := result.Trace[len(result.Trace)-1]
	if last.A != result.A || last.B != result.B {
		t.Errorf("last record [%v, %v] is not the final bracket [%v, %v]", last.A, last.B, result.A, result.B)
	}
}

func TestGoldenSectionZeroLength(t *testing.T) {
	q := quadratic{b: 3, c: 5}
	result, err := GoldenSectionSearch(q.Obj, 0, 10, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != common.LocChangeTol {
		t.Errorf("expected status %v, found %v", common.LocChangeTol, result.Status)
	}
	if !scalar.EqualWithinAbsOrRel(result.Loc, q.OptLoc(), 1e-7, 1e-7) {
		t.Errorf("location doesn't match. Expected: %v, Found %v", q.OptLoc(), result.Loc)
	}
}

func TestGoldenSectionPreconditions(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	if _, err := GoldenSectionSearch(f, 5, 3, 0.1, 0.1); !errors.Is(err, common.ErrInvalidInterval) {
		t.Errorf("expected invalid interval, got %v", err)
	}
	if _, err := GoldenSectionSearch(f, 0, 1, -1, 0.1); !errors.Is(err, common.ErrInvalidPrecision) {
		t.Errorf("expected invalid precision, got %v", err)
	}
	// l <= 2*eps is fine for golden section
	if _, err := GoldenSectionSearch(f, 0, 10, 0.1, 0.1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
