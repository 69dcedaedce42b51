package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks the status of a variadic number of statusers and
// returns the first one that is not Continue
func CheckStatus(cs ...Statuser) Status {
	for _, val := range cs {
		c := val.Status()
		if c != Continue {
			return c
		}
	}
	return Continue
}

// NewStatus is used to get a unique value for Status to avoid any accidental
// collisions. NewStatus is not thread-safe as it is intended to only be used
// during initialization
func NewStatus(str string) Status {
	lastStatus++
	statusStrings[lastStatus] = str
	return Status(lastStatus)
}

var statusStrings map[Status]string

func init() {
	statusStrings = make(map[Status]string)
	statusStrings[Continue] = "Continue"
	statusStrings[BoundsConverged] = "BoundsConverged"
	statusStrings[LocChangeTol] = "LocChangeTol"
	statusStrings[BudgetExhausted] = "BudgetExhausted"

	statusStrings[UserFunctionError] = "ErrorInUserFunction"
	statusStrings[MaximumIterations] = "MaximumIterations"
	statusStrings[MaximumFunctionEvaluations] = "MaximumFunctionEvaluations"
}

// Status is a type for expressing if the search has finished or not
// Zero signifies no convergence or error so the search should continue.
// Positive values indicate successful convergence
// negative values express stopping for some other reason
//
// If a custom status value is desired, NewStatus should be called. NewStatus
// is not thread-safe as it is intended to only be used during initialization
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

// Converged reports whether the status marks a normal end of the search
func (s Status) Converged() bool {
	return s > 0
}

const (
	Continue Status = iota
	// BoundsConverged means the interval of uncertainty is shorter than the target length
	BoundsConverged
	// LocChangeTol means the bracket can no longer shrink in floating point
	LocChangeTol
	// BudgetExhausted means a fixed iteration budget (Fibonacci) has been used up
	BudgetExhausted
)

const (
	_                        = iota
	UserFunctionError Status = -1 * iota
	MaximumIterations
	MaximumFunctionEvaluations
)

var lastStatus Status = 256
