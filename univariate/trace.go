package univariate

import "github.com/btracey/intervalsearch/write"

// IterationRecord is a snapshot of an interval search at one iteration
type IterationRecord struct {
	K   int     // Iteration number, starting at 1
	A   float64 // Lower bound of the interval of uncertainty
	B   float64 // Upper bound of the interval of uncertainty
	Lm  float64 // Left interior point
	Mu  float64 // Right interior point
	FLm float64 // Objective at Lm
	FMu float64 // Objective at Mu
}

func (r IterationRecord) AppendWriteData(v []*write.Value) []*write.Value {
	return append(v,
		&write.Value{Heading: "k", Value: r.K},
		&write.Value{Heading: "a", Value: r.A},
		&write.Value{Heading: "b", Value: r.B},
		&write.Value{Heading: "lm", Value: r.Lm},
		&write.Value{Heading: "mu", Value: r.Mu},
		&write.Value{Heading: "f(lm)", Value: r.FLm},
		&write.Value{Heading: "f(mu)", Value: r.FMu},
	)
}

// Trace is the ordered sequence of iteration records of one search
type Trace []IterationRecord

// Rows returns the records as rows for a write.Display
func (t Trace) Rows() []write.DataAdder {
	rows := make([]write.DataAdder, len(t))
	for i, rec := range t {
		rows[i] = rec
	}
	return rows
}
