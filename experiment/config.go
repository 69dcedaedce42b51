package experiment

import (
	"os"

	"github.com/btracey/intervalsearch/write"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// FunctionConfig selects a test function and the intervals it is searched on
type FunctionConfig struct {
	Name      string      `yaml:"name"`
	Intervals [][]float64 `yaml:"intervals"`
}

type OutputConfig struct {
	Display     bool   `yaml:"display"`      // Print every trace and result
	FloatFormat string `yaml:"float_format"` // fmt verb for printed floats
	CSVDir      string `yaml:"csv_dir"`      // If set, traces and the summary are saved below it as csv
}

// Config is a grid of searches: every method is run for every function,
// interval, eps and l.
type Config struct {
	Functions []FunctionConfig `yaml:"functions"`
	Eps       []float64        `yaml:"eps"`
	L         []float64        `yaml:"l"`
	Methods   []string         `yaml:"methods"`
	// MaximumIterations caps every search. -1 means no cap.
	MaximumIterations int          `yaml:"max_iterations"`
	Output            OutputConfig `yaml:"output"`
}

// DefaultConfig returns the classic grid: two test functions on three
// intervals each, three values of eps and two values of l
func DefaultConfig() *Config {
	return &Config{
		Functions: []FunctionConfig{
			{Name: "rational", Intervals: [][]float64{{-3, 0}, {-3, 9}, {9, 15}}},
			{Name: "absquad", Intervals: [][]float64{{-10, 1}, {-2, 0}, {-2, 8}}},
		},
		Eps:               []float64{0.1, 0.01, 0.001},
		L:                 []float64{0.1, 0.01},
		Methods:           append([]string(nil), MethodNames...),
		MaximumIterations: -1,
		Output: OutputConfig{
			Display:     true,
			FloatFormat: write.DefaultFloatFormat,
		},
	}
}

// LoadConfig reads a yaml file. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the names and shapes in the config. Values of eps and l are
// left to the searches, which reject them cell by cell.
func (c *Config) Validate() error {
	if len(c.Functions) == 0 {
		return errors.New("config: no functions")
	}
	for _, fc := range c.Functions {
		if _, err := LookupFunction(fc.Name); err != nil {
			return errors.Wrap(err, "config")
		}
		for _, interval := range fc.Intervals {
			if len(interval) != 2 {
				return errors.Newf("config: function %s: interval %v must have two bounds", fc.Name, interval)
			}
		}
	}
	if len(c.Eps) == 0 || len(c.L) == 0 {
		return errors.New("config: eps and l need at least one value each")
	}
	if len(c.Methods) == 0 {
		return errors.New("config: no methods")
	}
	for _, m := range c.Methods {
		if _, err := NewSearcher(m, nil); err != nil {
			return errors.Wrap(err, "config")
		}
	}
	return nil
}
