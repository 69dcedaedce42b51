package univariate

import (
	"github.com/btracey/intervalsearch/common"
	"github.com/btracey/intervalsearch/write"
)

// Objective is a unimodal function of one variable
type Objective interface {
	Obj(x float64) float64
}

// Func adapts an ordinary function to the Objective interface
type Func func(x float64) float64

func (f Func) Obj(x float64) float64 {
	return f(x)
}

// Settings is a structure containing settings for interval searches. Some
// settings may not apply to certain algorithms
type Settings struct {
	*common.CommonSettings
	*common.PrecisionSettings
}

// DefaultSettings returns the default settings for interval searches.
// The default behavior is to run the search until the interval of uncertainty
// is shorter than L. If it is desired that it end earlier, consider changing
// MaximumIterations and MaximumFunctionEvaluations
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings:    common.DefaultCommonSettings(),
		PrecisionSettings: common.DefaultPrecisionSettings(),
	}
}

// NewSettings returns the default settings with the given eps and l
func NewSettings(eps, l float64) *Settings {
	s := DefaultSettings()
	s.Eps = eps
	s.L = l
	return s
}

// fill replaces missing sections of s by their defaults
func (s *Settings) fill() *Settings {
	if s == nil {
		return DefaultSettings()
	}
	filled := *s
	if filled.CommonSettings == nil {
		filled.CommonSettings = common.DefaultCommonSettings()
	}
	if filled.PrecisionSettings == nil {
		filled.PrecisionSettings = common.DefaultPrecisionSettings()
	}
	return &filled
}

// Helper is a helper struct for interval searches. Not intended for use by
// callers of search functions, but exported to aid others who are building
// search algorithms
//
// Search implementers should call Init() at the beginning of a search and
// should call Status() to check the limits. Every iteration should be passed
// to Iterate()
type Helper struct {
	*common.Common

	trace Trace
	a, b  float64
}

// NewHelper creates a new Helper
func NewHelper() *Helper {
	return &Helper{
		Common: common.NewCommon(),
	}
}

func (u *Helper) Init(s *Settings, objectiveFunction interface{}, a, b float64) {
	u.Common.Init(s.CommonSettings, objectiveFunction)
	u.trace = u.trace[:0]
	u.a = a
	u.b = b
}

// Iterate records one iteration and the bracket after it
func (u *Helper) Iterate(rec IterationRecord, a, b float64, nFunEvals int) {
	u.Common.Iterate(nFunEvals)
	u.trace = append(u.trace, rec)
	u.a = a
	u.b = b
}

func (u *Helper) Status() common.Status {
	return u.Common.Status()
}

func (u *Helper) Result(status common.Status) *Result {
	trace := make(Trace, len(u.trace))
	copy(trace, u.trace)
	return &Result{
		CommonResult: u.Common.Result(status),
		Loc:          (u.a + u.b) / 2,
		A:            u.a,
		B:            u.b,
		Trace:        trace,
	}
}

type Result struct {
	*common.CommonResult
	Loc   float64 // Midpoint of the final interval of uncertainty
	A     float64 // Lower bound of the final interval of uncertainty
	B     float64 // Upper bound of the final interval of uncertainty
	Trace Trace   // State of the search at every iteration
}

func (r *Result) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "x", Value: r.Loc})
	v = append(v, &write.Value{Heading: "a", Value: r.A})
	v = append(v, &write.Value{Heading: "b", Value: r.B})
	return r.CommonResult.AppendWriteData(v)
}

// Settle records the bracket and the evaluations of a closing step that
// produced no iteration record
func (u *Helper) Settle(a, b float64, nFunEvals int) {
	u.Common.Evaluated(nFunEvals)
	u.a = a
	u.b = b
}
