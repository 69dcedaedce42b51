package experiment

import (
	"math"
	"sort"

	"github.com/btracey/intervalsearch/univariate"
	"github.com/cockroachdb/errors"
)

// ErrUnknownFunction is returned for a test function name that is not registered
var ErrUnknownFunction = errors.New("unknown test function")

// Function is a named test objective
type Function struct {
	Name    string
	Formula string
	F       univariate.Func
}

// poleValue stands in for the value of rational at its pole
const poleValue = math.MaxFloat32

// Rational is (x-4)/(x-9). At the pole x = 9 it returns MaxFloat32.
func Rational(x float64) float64 {
	if math.Abs(x-9) <= 1e-8+1e-5*9 {
		return poleValue
	}
	return (x - 4) / (x - 9)
}

// AbsQuadratic is |x^2 - 1|, with minima at -1 and 1
func AbsQuadratic(x float64) float64 {
	return math.Abs(x*x - 1)
}

// ShiftedSquare is x^2 + 2x, with its minimum at -1
func ShiftedSquare(x float64) float64 {
	return x*x + 2*x
}

var functions = map[string]Function{
	"rational":  {Name: "rational", Formula: "(x-4)/(x-9)", F: Rational},
	"absquad":   {Name: "absquad", Formula: "|x^2-1|", F: AbsQuadratic},
	"quadratic": {Name: "quadratic", Formula: "x^2+2x", F: ShiftedSquare},
}

// LookupFunction returns the test function registered under name
func LookupFunction(name string) (Function, error) {
	f, ok := functions[name]
	if !ok {
		return Function{}, errors.Wrapf(ErrUnknownFunction, "%q", name)
	}
	return f, nil
}

// FunctionNames returns the registered test function names in order
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
