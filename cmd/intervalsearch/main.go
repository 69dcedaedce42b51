package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/btracey/intervalsearch/experiment"
	"github.com/btracey/intervalsearch/fibonacci"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "intervalsearch:", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "intervalsearch",
		Usage:     "Minimize unimodal functions with dichotomous, golden section and Fibonacci search",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				EnvVars: []string{"INTERVALSEARCH_LOG_LEVEL"},
				Value:   "info",
			},
			&cli.BoolFlag{
				Name:    "log-json",
				Usage:   "Write logs as JSON instead of console text",
				EnvVars: []string{"INTERVALSEARCH_LOG_JSON"},
			},
		},
		Before: func(c *cli.Context) error {
			log, err := newLogger(stderr, c.String("log-level"), c.Bool("log-json"))
			if err != nil {
				return err
			}
			c.Context = log.WithContext(c.Context)
			return nil
		},
		Commands: []*cli.Command{
			gridCommand(),
			runCommand(),
			fibCommand(),
		},
	}
}

func newLogger(w io.Writer, level string, json bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid log level %q", level)
	}
	if !json {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func gridCommand() *cli.Command {
	return &cli.Command{
		Name:  "grid",
		Usage: "Run every method over a grid of functions, intervals, eps and l",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML grid configuration; the built-in grid is used if empty",
				EnvVars: []string{"INTERVALSEARCH_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "csv-dir",
				Usage: "Directory receiving the traces and summary as csv",
			},
			&cli.StringFlag{
				Name:  "float-format",
				Usage: "fmt verb for printed floats",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Do not print traces",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := experiment.DefaultConfig()
			if path := strings.TrimSpace(c.String("config")); path != "" {
				var err error
				if cfg, err = experiment.LoadConfig(path); err != nil {
					return err
				}
			}
			if c.IsSet("csv-dir") {
				cfg.Output.CSVDir = c.String("csv-dir")
			}
			if c.IsSet("float-format") {
				cfg.Output.FloatFormat = c.String("float-format")
			}
			if c.Bool("quiet") {
				cfg.Output.Display = false
			}

			runner, err := experiment.NewRunner(cfg, c.App.Writer, *zerolog.Ctx(c.Context))
			if err != nil {
				return err
			}
			_, err = runner.Run(c.Context)
			return err
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run a single search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "method",
				Aliases: []string{"m"},
				Usage:   "Search method: " + strings.Join(experiment.MethodNames, ", "),
				Value:   "golden",
			},
			&cli.StringFlag{
				Name:    "function",
				Aliases: []string{"f"},
				Usage:   "Test function: " + strings.Join(experiment.FunctionNames(), ", "),
				Value:   "quadratic",
			},
			&cli.Float64Flag{Name: "a", Usage: "Lower bound of the interval", Value: -3},
			&cli.Float64Flag{Name: "b", Usage: "Upper bound of the interval", Value: 5},
			&cli.Float64Flag{Name: "eps", Usage: "Distinguishability constant", Value: 0.05},
			&cli.Float64Flag{Name: "l", Usage: "Final length of the interval", Value: 0.2},
			&cli.IntFlag{Name: "max-iterations", Usage: "Cap on the number of iterations, -1 for none", Value: -1},
		},
		Action: func(c *cli.Context) error {
			cfg := experiment.DefaultConfig()
			cfg.MaximumIterations = c.Int("max-iterations")
			runner, err := experiment.NewRunner(cfg, c.App.Writer, *zerolog.Ctx(c.Context))
			if err != nil {
				return err
			}
			o, err := runner.RunCell(experiment.Cell{
				Method:   c.String("method"),
				Function: c.String("function"),
				A:        c.Float64("a"),
				B:        c.Float64("b"),
				Eps:      c.Float64("eps"),
				L:        c.Float64("l"),
			})
			if err != nil {
				return err
			}
			return o.Err
		},
	}
}

func fibCommand() *cli.Command {
	return &cli.Command{
		Name:      "fib",
		Usage:     "Print the Fibonacci numbers F(0)..F(n), with F(0) = F(1) = 1",
		ArgsUsage: "n",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("expected exactly one argument n")
			}
			var n int
			if _, err := fmt.Sscan(c.Args().First(), &n); err != nil || n < 0 {
				return errors.Newf("invalid n %q", c.Args().First())
			}
			for i, v := range fibonacci.Seq(n) {
				fmt.Fprintf(c.App.Writer, "%d\t%s\n", i, v)
			}
			return nil
		},
	}
}
