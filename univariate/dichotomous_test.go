package univariate

import (
	"math"
	"testing"

	"github.com/btracey/intervalsearch/common"
	"github.com/cockroachdb/errors"
)

func TestDichotomous(t *testing.T) {
	for _, test := range testFunctions {
		for _, p := range precisions {
			c := &counter{f: Func(test.f)}
			result, err := Search(c, test.a, test.b, NewSettings(p.eps, p.l), &Dichotomous{})
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
			if result.FunctionEvaluations != 2*result.Iterations {
				t.Errorf("%v: %v evaluations for %v iterations", test.Name, result.FunctionEvaluations, result.Iterations)
			}
			if c.evals != result.FunctionEvaluations {
				t.Errorf("%v: reported %v evaluations, objective saw %v", test.Name, result.FunctionEvaluations, c.evals)
			}
			if len(result.Trace) != result.Iterations {
				t.Errorf("%v: trace has %v records for %v iterations", test.Name, len(result.Trace), result.Iterations)
			}
			if result.Status != common.BoundsConverged {
				t.Errorf("%v: status %v", test.Name, result.Status)
			}
		}
	}
}

func TestDichotomousSearch(t *testing.T) {
	result, err := DichotomousSearch(func(x float64) float64 { return x*x + 2*x }, -3, 5, 0.05, 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(result.Loc+1) > 0.2 {
		t.Errorf("location doesn't match. Expected: %v, Found %v", -1.0, result.Loc)
	}
	// 8 -> 4.05 -> 2.075 -> 1.0875 -> 0.59375 -> 0.346875 -> 0.2234375 -> 0.16171875
	if result.Iterations != 7 {
		t.Errorf("expected 7 iterations, found %v", result.Iterations)
	}
	if result.FunctionEvaluations != 14 {
		t.Errorf("expected 14 evaluations, found %v", result.FunctionEvaluations)
	}
	for i, rec := range result.Trace {
		if rec.K != i+1 {
			t.Errorf("record %v has k = %v", i, rec.K)
		}
		m := (rec.A + rec.B) / 2
		if rec.Lm != m-0.05 || rec.Mu != m+0.05 {
			t.Errorf("record %v: points %v, %v not centered on %v", i, rec.Lm, rec.Mu, m)
		}
		if !(rec.B > rec.A) {
			t.Errorf("record %v: empty interval [%v, %v]", i, rec.A, rec.B)
		}
	}
}

func TestDichotomousPreconditions(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	for _, test := range []struct {
		name      string
		a, b      float64
		eps, l    float64
		errorType error
	}{
		{"reversed", 5, 3, 0.1, 0.1, common.ErrInvalidInterval},
		{"empty", 3, 3, 0.01, 0.1, common.ErrInvalidInterval},
		{"infinite", math.Inf(-1), 3, 0.01, 0.1, common.ErrInvalidInterval},
		{"tooWide", -1e308, 1e308, 0.01, 0.1, common.ErrInvalidInterval},
		{"lNotAboveTwoEps", 0, 10, 0.1, 0.1, common.ErrInvalidPrecision},
		{"lEqualsTwoEps", 0, 10, 0.05, 0.1, common.ErrInvalidPrecision},
		{"negativeEps", 0, 10, -0.1, 0.1, common.ErrInvalidPrecision},
		{"negativeL", 0, 10, 0, -0.1, common.ErrInvalidPrecision},
		{"nanEps", 0, 10, math.NaN(), 0.1, common.ErrInvalidPrecision},
	} {
		c := &counter{f: Func(f)}
		_, err := Search(c, test.a, test.b, NewSettings(test.eps, test.l), &Dichotomous{})
		if !errors.Is(err, test.errorType) {
			t.Errorf("%v: expected %v, got %v", test.name, test.errorType, err)
		}
		if c.evals != 0 {
			t.Errorf("%v: %v evaluations before failing", test.name, c.evals)
		}
	}
}

func TestDichotomousAlreadyShort(t *testing.T) {
	result, err := DichotomousSearch(func(x float64) float64 { return x * x }, 0, 0.05, 0.01, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FunctionEvaluations != 0 || len(result.Trace) != 0 {
		t.Errorf("expected no work, found %v evaluations and %v records", result.FunctionEvaluations, len(result.Trace))
	}
	if result.Loc != 0.025 {
		t.Errorf("expected the midpoint 0.025, found %v", result.Loc)
	}
}
