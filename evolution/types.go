package evolution

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
	"github.com/go-logr/logr"
)

// Sentinel errors returned by the evolution package.
var (
	// ErrNilDistance indicates that a run was requested without a distance table.
	ErrNilDistance = errors.New("evolution: nil distance matrix")

	// ErrEmptyPopulation indicates that selection was attempted on an empty population.
	ErrEmptyPopulation = errors.New("evolution: population is empty")

	// ErrInsufficientSampleSize indicates a tournament size outside [1, population size].
	ErrInsufficientSampleSize = errors.New("evolution: tournament size exceeds population")

	// ErrBadPopulationSize indicates PopulationSize < 1 for a random population.
	ErrBadPopulationSize = errors.New("evolution: population size must be positive")

	// ErrBadTournamentSize indicates TournamentSize < 1.
	ErrBadTournamentSize = errors.New("evolution: tournament size must be positive")

	// ErrBadRounds indicates Rounds < 0.
	ErrBadRounds = errors.New("evolution: rounds must be non-negative")

	// ErrBadTimeLimit indicates TimeLimit < 0.
	ErrBadTimeLimit = errors.New("evolution: time limit must be non-negative")

	// ErrUnknownReplacement indicates a replacement strategy outside the closed enumeration.
	ErrUnknownReplacement = errors.New("evolution: unknown replacement strategy")

	// ErrNoSeedRoutes indicates that a seeded population was requested from an empty list.
	ErrNoSeedRoutes = errors.New("evolution: no seed routes")

	// ErrTerminated indicates that Step was called after the run finished.
	ErrTerminated = errors.New("evolution: engine terminated")

	// ErrTimeLimit indicates that the wall-clock budget ran out before Rounds were done.
	ErrTimeLimit = errors.New("evolution: time limit reached")
)

// Replacement selects how a new tour enters the population.
type Replacement int

const (
	// ReplaceWeakest overwrites the first worst member, unconditionally.
	ReplaceWeakest Replacement = iota
	// ReplaceFirstWeaker overwrites the first member strictly worse than the newcomer.
	ReplaceFirstWeaker
)

var replacementNames = map[Replacement][]string{
	ReplaceWeakest:     {"Replace Weakest", "weakest", "replace-weakest"},
	ReplaceFirstWeaker: {"Replace First Weakest", "first-weaker", "replace-first-weaker", "first-weakest"},
}

// Replacements lists every strategy in declaration order.
func Replacements() []Replacement { return []Replacement{ReplaceWeakest, ReplaceFirstWeaker} }

// String returns the long label used in reports.
func (r Replacement) String() string {
	if n, ok := replacementNames[r]; ok {
		return n[0]
	}
	return fmt.Sprintf("Replacement(%d)", int(r))
}

// ID returns the short identifier.
func (r Replacement) ID() string {
	if n, ok := replacementNames[r]; ok {
		return n[1]
	}
	return ""
}

// ParseReplacement resolves a short id or long label, ignoring case.
func ParseReplacement(s string) (Replacement, error) {
	s = strings.TrimSpace(s)
	for _, r := range Replacements() {
		for _, name := range replacementNames[r] {
			if strings.EqualFold(s, name) {
				return r, nil
			}
		}
	}
	return 0, fmt.Errorf("replacement %q: %w", s, ErrUnknownReplacement)
}

// MarshalText implements encoding.TextMarshaler using the short id.
func (r Replacement) MarshalText() ([]byte, error) {
	if _, ok := replacementNames[r]; !ok {
		return nil, fmt.Errorf("replacement %d: %w", int(r), ErrUnknownReplacement)
	}
	return []byte(r.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseReplacement.
func (r *Replacement) UnmarshalText(b []byte) error {
	v, err := ParseReplacement(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// State is the lifecycle stage of an Engine.
type State int

const (
	// Initialized: population built, record 0 captured.
	Initialized State = iota
	// Running: at least one round has started.
	Running
	// Terminated: the run is over; the last record is authoritative.
	Terminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Initialized:
		return "Initialized"
	case Running:
		return "Running"
	case Terminated:
		return "Terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// DefaultRounds is the round budget used when none is configured.
const DefaultRounds = 10000

// Options configures one evolutionary run.
//
// PopulationSize  – number of random tours (ignored by NewSeeded, which uses len(routes)).
// TournamentSize  – k; larger than the population means no offspring each round.
// Crossover       – recombination operator.
// Mutation        – mutation operator applied to each child.
// Replacement     – how mutants enter the population.
// Rounds          – number of rounds (generations 1..Rounds).
// Seed            – RNG seed; 0 selects the fixed default seed.
// TimeLimit       – optional wall-clock budget checked between rounds (0 disables).
// Logger          – structured logger; defaults to logr.Discard().
// Observers       – receive one RoundReport per round, in order.
type Options struct {
	PopulationSize int
	TournamentSize int
	Crossover      tsp.CrossoverOperator
	Mutation       tsp.MutationOperator
	Replacement    Replacement
	Rounds         int
	Seed           int64
	TimeLimit      time.Duration
	Logger         logr.Logger
	Observers      []Observer
}

// DefaultOptions returns population 100, tournament 10, PMX, single swap,
// replace weakest, 10 000 rounds and the default seed.
func DefaultOptions() Options {
	return Options{
		PopulationSize: 100,
		TournamentSize: 10,
		Crossover:      tsp.PMX,
		Mutation:       tsp.SingleSwap,
		Replacement:    ReplaceWeakest,
		Rounds:         DefaultRounds,
		Seed:           0,
		Logger:         logr.Discard(),
	}
}

// Validate checks every field that can make a run meaningless.
func (o Options) Validate() error {
	if o.PopulationSize < 1 {
		return ErrBadPopulationSize
	}
	return o.validateOperators()
}

// validateOperators checks everything except PopulationSize (seeded runs ignore it).
func (o Options) validateOperators() error {
	if o.TournamentSize < 1 {
		return ErrBadTournamentSize
	}
	if o.Rounds < 0 {
		return ErrBadRounds
	}
	if o.TimeLimit < 0 {
		return ErrBadTimeLimit
	}
	if _, err := o.Crossover.MarshalText(); err != nil {
		return err
	}
	if _, err := o.Mutation.MarshalText(); err != nil {
		return err
	}
	if _, err := o.Replacement.MarshalText(); err != nil {
		return err
	}
	return nil
}

// Outcome is the result of one replacement. Index is meaningful only when Replaced.
type Outcome struct {
	Index    int
	Replaced bool
}

// String renders the slot or "none".
func (o Outcome) String() string {
	if !o.Replaced {
		return "none"
	}
	return fmt.Sprintf("%d", o.Index)
}

// Record is one entry of the record-best sequence.
// Generation is the round at which Tour was found; Elapsed is cumulative run time.
type Record struct {
	Generation int
	Tour       *tsp.Tour
	Elapsed    time.Duration
}

// RoundReport is the per-round telemetry handed to observers.
// When Produced is false, selection failed and every offspring field is nil.
type RoundReport struct {
	Generation int
	Produced   bool
	ParentA    *tsp.Tour
	ParentB    *tsp.Tour
	ChildC     *tsp.Tour
	ChildD     *tsp.Tour
	MutantE    *tsp.Tour
	MutantF    *tsp.Tour
	OutcomeE   Outcome
	OutcomeF   Outcome
	Best       *tsp.Tour
	Record     Record
}

// Summary echoes the configuration and the final record of a run.
type Summary struct {
	PopulationSize int
	TournamentSize int
	Crossover      tsp.CrossoverOperator
	Mutation       tsp.MutationOperator
	Replacement    Replacement
	Rounds         int
	Seed           int64
	Generations    int
	Best           *tsp.Tour
	BestGeneration int
	// Elapsed is the cumulative run time at the last completed round, not the
	// time at which Best was found.
	Elapsed       time.Duration
	SeedFallbacks int
}

// Result is everything an external reporter needs after a run.
type Result struct {
	Population []*tsp.Tour
	Records    []Record
	Summary    Summary
}
