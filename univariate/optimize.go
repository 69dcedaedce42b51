package univariate

import (
	"github.com/btracey/intervalsearch/common"
	"github.com/cockroachdb/errors"
)

// IntervalSearcher is an interval-reduction algorithm driven by Search
type IntervalSearcher interface {
	// Init validates the inputs and makes the initial evaluations. No
	// evaluation happens if the inputs are invalid.
	Init(f Objective, a, b float64, settings *Settings) (nFunEvals int, err error)
	// Status reports whether the algorithm has converged
	Status() common.Status
	// Iterate narrows the bracket once and returns the record of that iteration
	Iterate() (rec IterationRecord, nFunEvals int)
	// Finish is called once after the loop. It returns a closing record, or
	// nil if the algorithm has none
	Finish() (rec *IterationRecord, nFunEvals int)
	// Bracket returns the current interval of uncertainty
	Bracket() (a, b float64)
}

// Searcher is implemented by the methods of this package. It is the uniform
// contract used by callers that enumerate methods.
type Searcher interface {
	Name() string
	Search(f Objective, a, b float64, settings *Settings) (*Result, error)
}

// Wrapper is a convenience wrapper around an interval searcher that allows
// more fine-grained control over search progress. See Search for example usage
type Wrapper struct {
	searcher IntervalSearcher
	helper   *Helper
}

func NewWrapper(searcher IntervalSearcher) *Wrapper {
	return &Wrapper{
		searcher: searcher,
		helper:   NewHelper(),
	}
}

func (w *Wrapper) Init(settings *Settings, f Objective, a, b float64) error {
	w.helper.Init(settings, f, a, b)
	nFunEvals, err := w.searcher.Init(f, a, b, settings)
	if err != nil {
		return err
	}
	w.helper.Evaluated(nFunEvals)
	return nil
}

// Status checks the searcher before the caps, so a search that stops on its
// own in the same pass a cap is reached reports its own status.
func (w *Wrapper) Status() common.Status {
	return common.CheckStatus(w.searcher, w.helper)
}

func (w *Wrapper) Iterate() IterationRecord {
	rec, nFunEvals := w.searcher.Iterate()
	a, b := w.searcher.Bracket()
	w.helper.Iterate(rec, a, b, nFunEvals)
	return rec
}

func (w *Wrapper) Result(status common.Status) *Result {
	rec, nFunEvals := w.searcher.Finish()
	a, b := w.searcher.Bracket()
	if rec != nil {
		w.helper.Iterate(*rec, a, b, nFunEvals)
	} else {
		w.helper.Settle(a, b, nFunEvals)
	}
	return w.helper.Result(status)
}

// Search minimizes f over [a, b] with the given interval searcher. A nil
// settings uses DefaultSettings.
func Search(f Objective, a, b float64, settings *Settings, searcher IntervalSearcher) (*Result, error) {
	if searcher == nil {
		panic("no searcher provided")
	}
	if f == nil {
		return nil, errors.New("objective function is nil")
	}
	settings = settings.fill()

	wrapper := NewWrapper(searcher)

	if err := wrapper.Init(settings, f, a, b); err != nil {
		return nil, errors.Wrap(err, "initializing search")
	}

	var status common.Status
	for {
		status = wrapper.Status()
		if status != common.Continue {
			break
		}
		wrapper.Iterate()
	}
	return wrapper.Result(status), nil
}
