package experiment

import (
	"github.com/btracey/intervalsearch/fibonacci"
	"github.com/btracey/intervalsearch/univariate"
	"github.com/cockroachdb/errors"
)

// ErrUnknownMethod is returned for a search method name that is not registered
var ErrUnknownMethod = errors.New("unknown search method")

// MethodNames lists the search methods in the order they are run
var MethodNames = []string{"dichotomous", "golden", "fibonacci"}

// NewSearcher returns a fresh searcher for the method name. Fibonacci
// searchers draw from seq, which may be shared between runs.
func NewSearcher(name string, seq *fibonacci.Sequence) (univariate.Searcher, error) {
	switch name {
	case "dichotomous":
		return &univariate.Dichotomous{}, nil
	case "golden":
		return &univariate.GoldenSection{}, nil
	case "fibonacci":
		return &univariate.Fibonacci{Sequence: seq}, nil
	}
	return nil, errors.Wrapf(ErrUnknownMethod, "%q", name)
}
