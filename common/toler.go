package common

import "gonum.org/v1/gonum/floats/scalar"

// DefaultLenRelTol is the relative tolerance used when comparing the length
// of the interval of uncertainty with the target length. Without it, rounding
// noise around b-a == l can keep a search running for extra iterations.
const DefaultLenRelTol = 1e-7

// IntervalToler checks the convergence of the length of the interval of
// uncertainty against a target length.
type IntervalToler struct {
	target float64
	relTol float64

	recent float64
}

// Init initializes the IntervalToler. If the relative tolerance is negative
// only the strict comparison is used.
func (t *IntervalToler) Init(target, relTol float64, a, b float64) {
	t.target = target
	t.relTol = relTol
	t.recent = b - a
}

// Add records the bounds after an iteration
func (t *IntervalToler) Add(a, b float64) {
	t.recent = b - a
}

// Len returns the most recently recorded length
func (t *IntervalToler) Len() float64 {
	return t.recent
}

// Converged returns true if the most recent length is below the target, or
// equal to it within the relative tolerance
func (t *IntervalToler) Converged() bool {
	if t.recent < t.target {
		return true
	}
	if t.relTol < 0 {
		return false
	}
	return scalar.EqualWithinRel(t.recent, t.target, t.relTol)
}
