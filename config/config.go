// Package config loads the run configuration of the solver from YAML.
//
// The file mirrors evolution.Options plus the experiment-level settings used by
// the command line tool. Operator fields accept the short identifiers ("pmx",
// "single-swap", "weakest", ...) or the long report labels; they are resolved
// to closed enumerations once, at load time. Unknown keys are rejected.
//
// Example:
//
//	populationSize: 200
//	tournamentSize: 8
//	crossover: ox
//	mutation: inversion
//	replacement: first-weaker
//	rounds: 10000
//	seed: 7
//	timeLimit: 30s
//	experiments: 30
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/evolution"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"
)

// ErrBadExperiments indicates Experiments < 1.
var ErrBadExperiments = errors.New("config: experiments must be positive")

// Config is the on-disk run configuration.
type Config struct {
	PopulationSize int                   `json:"populationSize"`
	TournamentSize int                   `json:"tournamentSize"`
	Crossover      tsp.CrossoverOperator `json:"crossover"`
	Mutation       tsp.MutationOperator  `json:"mutation"`
	Replacement    evolution.Replacement `json:"replacement"`
	Rounds         int                   `json:"rounds"`
	Seed           int64                 `json:"seed"`
	TimeLimit      metav1.Duration       `json:"timeLimit,omitempty"`

	// Experiments is the number of independent runs; each gets its own derived RNG stream.
	Experiments int `json:"experiments"`
	// Randomize draws population size, tournament size and operators per experiment.
	Randomize bool `json:"randomize,omitempty"`
	// Exploit seeds each run from the routes of a previous summary file.
	Exploit bool `json:"exploit,omitempty"`
	// Data is the path of the instance file (.xml or TSPLIB text).
	Data string `json:"data,omitempty"`
	// ReportDir receives per-round CSVs, the summary and charts.
	ReportDir string `json:"reportDir,omitempty"`
}

// Default returns the configuration equivalent to evolution.DefaultOptions
// with a single experiment.
func Default() Config {
	o := evolution.DefaultOptions()
	return Config{
		PopulationSize: o.PopulationSize,
		TournamentSize: o.TournamentSize,
		Crossover:      o.Crossover,
		Mutation:       o.Mutation,
		Replacement:    o.Replacement,
		Rounds:         o.Rounds,
		Seed:           o.Seed,
		Experiments:    1,
		ReportDir:      "report",
	}
}

// Parse decodes YAML over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Write encodes c as YAML into path.
func (c Config) Write(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the experiment settings and the evolution options.
func (c Config) Validate() error {
	if c.Experiments < 1 {
		return ErrBadExperiments
	}
	if err := c.Options().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Options converts c to evolution.Options; logger and observers are left to the caller.
func (c Config) Options() evolution.Options {
	o := evolution.DefaultOptions()
	o.PopulationSize = c.PopulationSize
	o.TournamentSize = c.TournamentSize
	o.Crossover = c.Crossover
	o.Mutation = c.Mutation
	o.Replacement = c.Replacement
	o.Rounds = c.Rounds
	o.Seed = c.Seed
	o.TimeLimit = c.TimeLimit.Duration
	return o
}
