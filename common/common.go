package common

import (
	"time"

	"github.com/btracey/intervalsearch/write"
)

type Initer interface {
	Init()
}

type Resulter interface {
	Result()
}

// Helper routines for wrapping the objective function
//
// If the function is an Initer it will be called once at the start of a search.
// If the function is a Statuser it can stop the search early.
// If the function is a Resulter it is called once the search ends.
type ObjectiveWrapper struct {
	fun interface{}
}

func (o *ObjectiveWrapper) Init(objectiveFunction interface{}) {
	o.fun = objectiveFunction

	initer, ok := objectiveFunction.(Initer)
	if ok {
		initer.Init()
	}
}

func (o *ObjectiveWrapper) Status() Status {
	statuser, isStatuser := o.fun.(Statuser)
	if isStatuser {
		return statuser.Status()
	}
	return Continue
}

func (o *ObjectiveWrapper) Result() {
	resulter, ok := o.fun.(Resulter)
	if ok {
		resulter.Result()
	}
}

// PrecisionSettings holds the (eps, l) pair shared by the interval searches
type PrecisionSettings struct {
	Eps       float64 // Distinguishability constant, the minimum offset between interior points
	L         float64 // Target final length of the interval of uncertainty
	LenRelTol float64 // Relative tolerance when comparing the interval length with L. Negative disables it
}

func DefaultPrecisionSettings() *PrecisionSettings {
	return &PrecisionSettings{
		Eps:       1e-3,
		L:         1e-2,
		LenRelTol: DefaultLenRelTol,
	}
}

// CommonSettings is a set of options available to all searches
type CommonSettings struct {
	MaximumIterations          int // Sets the maximum number of iterations that can occur
	MaximumFunctionEvaluations int // Sets the maximum number of function evaluations that can occur
}

// DefaultCommonSettings returns the default settings for the common structure
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		MaximumIterations:          -1, // Defaults to no maximum iterations
		MaximumFunctionEvaluations: -1, // Defaults to no maximum function evaluations
	}
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations          int           // Total number of iterations taken by the search
	FunctionEvaluations int           // Total number of function evaluations taken by the search
	Runtime             time.Duration // Total runtime elapsed during the search
	Status              Status        // How did the search end
}

func (r *CommonResult) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Iter", Value: r.Iterations})
	v = append(v, &write.Value{Heading: "FnEval", Value: r.FunctionEvaluations})
	v = append(v, &write.Value{Heading: "Status", Value: r.Status.String()})
	return v
}

// Common provides routines for controlling the settings provided by common.
type Common struct {
	iter      int
	funEvals  int
	startTime time.Time

	settings *CommonSettings

	*ObjectiveWrapper
}

// NewCommon creates a new Common structure
func NewCommon() *Common {
	return &Common{
		ObjectiveWrapper: &ObjectiveWrapper{},
	}
}

// Init initializes all of the values in common at the start of the search
func (c *Common) Init(settings *CommonSettings, objectiveFunction interface{}) {
	c.iter = 0
	c.funEvals = 0
	c.startTime = time.Now()

	if settings == nil {
		settings = DefaultCommonSettings()
	}
	c.settings = settings

	c.ObjectiveWrapper.Init(objectiveFunction)
}

// Note: Status is not named the same as the searcher methods so that a
// searcher does not implement it by embedding common

// Status checks if any of the limits controlled by common have been reached
func (c *Common) Status() Status {
	status := c.ObjectiveWrapper.Status()
	if status != Continue {
		return status
	}

	if c.settings.MaximumIterations > -1 && c.iter >= c.settings.MaximumIterations {
		return MaximumIterations
	}
	if c.settings.MaximumFunctionEvaluations > -1 && c.funEvals >= c.settings.MaximumFunctionEvaluations {
		return MaximumFunctionEvaluations
	}
	return Continue
}

// Result returns the results from the common structure
func (c *Common) Result(status Status) *CommonResult {
	c.ObjectiveWrapper.Result()
	return &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
	}
}

// Evaluated adds function evaluations made outside of an iteration
func (c *Common) Evaluated(nFunEvals int) {
	c.funEvals += nFunEvals
}

// Iterate performs an iteration of the common structure, incrementing
// the iteration and appending the number of function evaluations
func (c *Common) Iterate(nFunEvals int) {
	c.iter++
	c.funEvals += nFunEvals
}

func (c *Common) Iterations() int {
	return c.iter
}

func (c *Common) FunctionEvaluations() int {
	return c.funEvals
}
