package experiment

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/btracey/intervalsearch/fibonacci"
	"github.com/btracey/intervalsearch/univariate"
	"github.com/btracey/intervalsearch/write"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
)

// Cell is one combination of the grid
type Cell struct {
	Method   string
	Function string
	A, B     float64
	Eps, L   float64
}

// Outcome is the result of running one cell. Exactly one of Result and Err is set.
type Outcome struct {
	Cell
	Result *univariate.Result
	Err    error
}

func (o *Outcome) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v,
		&write.Value{Heading: "method", Value: o.Method},
		&write.Value{Heading: "function", Value: o.Function},
		&write.Value{Heading: "a0", Value: o.A},
		&write.Value{Heading: "b0", Value: o.B},
		&write.Value{Heading: "eps", Value: o.Eps},
		&write.Value{Heading: "l", Value: o.L},
	)
	if o.Err != nil {
		return append(v,
			&write.Value{Heading: "x", Value: ""},
			&write.Value{Heading: "a", Value: ""},
			&write.Value{Heading: "b", Value: ""},
			&write.Value{Heading: "Iter", Value: ""},
			&write.Value{Heading: "FnEval", Value: ""},
			&write.Value{Heading: "Status", Value: o.Err.Error()},
		)
	}
	return o.Result.AppendWriteData(v)
}

// Runner runs the cells of a Config, printing and saving what the config
// asks for. A failing cell is logged and the grid continues.
type Runner struct {
	cfg   *Config
	log   zerolog.Logger
	out   io.Writer
	runID ksuid.KSUID

	// Fibonacci numbers are shared by all the Fibonacci searches of a run
	seq *fibonacci.Sequence

	display *write.Display
	csvDir  string
}

// NewRunner creates a runner printing to out. The config is validated.
func NewRunner(cfg *Config, out io.Writer, log zerolog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:   cfg,
		out:   out,
		runID: ksuid.New(),
		seq:   fibonacci.New(),
	}
	r.log = log.With().Str("run_id", r.runID.String()).Logger()

	settings := &write.WriteSettings{FloatFormat: cfg.Output.FloatFormat}
	if cfg.Output.Display {
		settings.DisplayWriters = []write.Writer{{Writer: out, T: write.Displayer}}
	}
	r.display = write.NewDisplay(settings)

	if cfg.Output.CSVDir != "" {
		r.csvDir = filepath.Join(cfg.Output.CSVDir, r.runID.String())
	}
	return r, nil
}

// RunID identifies the run in logs and in the csv directory name
func (r *Runner) RunID() string {
	return r.runID.String()
}

// CSVDir returns the directory csv files are written to, or "" if none
func (r *Runner) CSVDir() string {
	return r.csvDir
}

// Cells enumerates the grid in order: function, interval, eps, l, method
func (r *Runner) Cells() []Cell {
	var cells []Cell
	for _, fc := range r.cfg.Functions {
		for _, interval := range fc.Intervals {
			for _, eps := range r.cfg.Eps {
				for _, l := range r.cfg.L {
					for _, m := range r.cfg.Methods {
						cells = append(cells, Cell{
							Method:   m,
							Function: fc.Name,
							A:        interval[0],
							B:        interval[1],
							Eps:      eps,
							L:        l,
						})
					}
				}
			}
		}
	}
	return cells
}

// Run runs every cell of the grid. It only returns an error if the context
// is done or output can not be written; failing searches are part of the
// returned outcomes.
func (r *Runner) Run(ctx context.Context) ([]*Outcome, error) {
	if r.csvDir != "" {
		if err := os.MkdirAll(r.csvDir, 0o755); err != nil {
			return nil, errors.Wrap(err, "creating csv directory")
		}
	}
	cells := r.Cells()
	r.log.Info().Int("cells", len(cells)).Msg("starting grid")

	outcomes := make([]*Outcome, 0, len(cells))
	var failed int
	for i, cell := range cells {
		if err := ctx.Err(); err != nil {
			return outcomes, errors.Wrap(err, "grid interrupted")
		}
		o, err := r.RunCell(cell)
		if err != nil {
			return outcomes, err
		}
		if o.Err != nil {
			failed++
		}
		if err := r.saveTrace(i, o); err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, o)
	}
	if err := r.saveSummary(outcomes); err != nil {
		return outcomes, err
	}
	r.log.Info().Int("cells", len(cells)).Int("failed", failed).Msg("grid finished")
	return outcomes, nil
}

// RunCell runs a single search and prints it. The returned error is only set
// when output fails.
func (r *Runner) RunCell(cell Cell) (*Outcome, error) {
	log := r.log.With().
		Str("method", cell.Method).
		Str("function", cell.Function).
		Float64("a", cell.A).
		Float64("b", cell.B).
		Float64("eps", cell.Eps).
		Float64("l", cell.L).
		Logger()

	o := &Outcome{Cell: cell}
	fn, err := LookupFunction(cell.Function)
	if err != nil {
		o.Err = err
		log.Error().Err(err).Msg("search failed")
		return o, nil
	}
	searcher, err := NewSearcher(cell.Method, r.seq)
	if err != nil {
		o.Err = err
		log.Error().Err(err).Msg("search failed")
		return o, nil
	}

	if err := r.display.WriteLine("%s for %s with a=%v, b=%v, eps=%v, l=%v", cell.Method, fn.Name, cell.A, cell.B, cell.Eps, cell.L); err != nil {
		return nil, errors.Wrap(err, "writing output")
	}

	settings := univariate.NewSettings(cell.Eps, cell.L)
	settings.MaximumIterations = r.cfg.MaximumIterations
	log.Debug().Msg("running search")
	result, err := searcher.Search(fn.F, cell.A, cell.B, settings)
	if err != nil {
		o.Err = err
		log.Error().Err(err).Msg("search failed")
		if werr := r.display.WriteLine("error: %v\n", err); werr != nil {
			return nil, errors.Wrap(werr, "writing output")
		}
		return o, nil
	}
	o.Result = result

	log.Info().
		Float64("x", result.Loc).
		Int("iterations", result.Iterations).
		Int("evaluations", result.FunctionEvaluations).
		Stringer("status", result.Status).
		Dur("runtime", result.Runtime).
		Msg("search finished")

	if err := r.display.WriteTable(result.Trace.Rows()...); err != nil {
		return nil, errors.Wrap(err, "writing trace")
	}
	if err := r.display.WriteLine("Found x=%v, func_calls=%d\n", result.Loc, result.FunctionEvaluations); err != nil {
		return nil, errors.Wrap(err, "writing output")
	}
	return o, nil
}

func (r *Runner) saveTrace(i int, o *Outcome) error {
	if r.csvDir == "" || o.Result == nil {
		return nil
	}
	name := fmt.Sprintf("%03d_%s_%s.csv", i, o.Method, o.Function)
	return r.saveCSV(name, o.Result.Trace.Rows())
}

func (r *Runner) saveSummary(outcomes []*Outcome) error {
	if r.csvDir == "" || len(outcomes) == 0 {
		return nil
	}
	rows := make([]write.DataAdder, len(outcomes))
	for i, o := range outcomes {
		rows[i] = o
	}
	return r.saveCSV("summary.csv", rows)
}

func (r *Runner) saveCSV(name string, rows []write.DataAdder) (err error) {
	path := filepath.Join(r.csvDir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()
	d := write.NewDisplay(&write.WriteSettings{DisplayWriters: []write.Writer{{Writer: f, T: write.Logger}}})
	if err := d.WriteTable(rows...); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	r.log.Debug().Str("path", path).Msg("saved csv")
	return nil
}
