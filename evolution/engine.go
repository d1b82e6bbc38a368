// Package evolution - Engine: the steady-state evolutionary loop.
//
// Lifecycle:
//   - Initialized → Running on the first Step or Run; Running → Terminated after
//     round Rounds, on context cancellation, on TimeLimit, or on an operator error.
//
// Design:
//   - One round: two tournaments, one crossover, two mutations, two replacements.
//   - The record-best sequence gets one entry per round; it only changes when the
//     population holds a strictly better tour.
//   - The engine owns the run's only *rand.Rand; a fixed Seed replays a run exactly.
//
// Complexity:
//   - Step: O(k + V + N) for tournament size k, V cities and population N.
package evolution

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/matrix"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
	"github.com/go-logr/logr"
)

// Engine drives the evolutionary loop for one run. It is not safe for
// concurrent use; one goroutine owns it from New to Run's return.
type Engine struct {
	dist      *matrix.Distance
	opts      Options
	log       logr.Logger
	rng       *rand.Rand
	pop       *Population
	state     State
	gen       int
	records   []Record
	started   time.Time
	deadline  time.Time
	fallbacks int
	now       func() time.Time
}

// New validates opts and builds an engine over a random population.
func New(dist *matrix.Distance, opts Options) (*Engine, error) {
	if dist == nil {
		return nil, ErrNilDistance
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	e := newEngine(dist, opts)
	pop, err := NewRandomPopulation(dist, opts.PopulationSize, e.rng)
	if err != nil {
		return nil, err
	}
	e.init(pop)
	return e, nil
}

// NewSeeded builds an engine whose population is seeded from routes; invalid
// routes become random tours. opts.PopulationSize is ignored.
func NewSeeded(dist *matrix.Distance, routes [][]int, opts Options) (*Engine, error) {
	if dist == nil {
		return nil, ErrNilDistance
	}
	if err := opts.validateOperators(); err != nil {
		return nil, err
	}
	e := newEngine(dist, opts)
	pop, fallbacks, err := NewSeededPopulation(dist, routes, e.rng)
	if err != nil {
		return nil, err
	}
	e.opts.PopulationSize = pop.Len()
	e.fallbacks = fallbacks
	if fallbacks > 0 {
		e.log.Info("replaced invalid seed routes with random tours", "fallbacks", fallbacks, "seeds", len(routes))
	}
	e.init(pop)
	return e, nil
}

func newEngine(dist *matrix.Distance, opts Options) *Engine {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Engine{
		dist:  dist,
		opts:  opts,
		log:   log.WithName("evolution"),
		rng:   tsp.NewRNG(opts.Seed),
		state: Initialized,
		now:   time.Now,
	}
}

// init captures record 0 from the fresh population.
func (e *Engine) init(pop *Population) {
	e.pop = pop
	best, _, _ := pop.Best()
	e.records = []Record{{Generation: 0, Tour: best}}
	e.log.Info("population initialized",
		"vertices", e.dist.N(),
		"population", pop.Len(),
		"tournament", e.opts.TournamentSize,
		"crossover", e.opts.Crossover.String(),
		"mutation", e.opts.Mutation.String(),
		"replacement", e.opts.Replacement.String(),
		"rounds", e.opts.Rounds,
		"bestFitness", best.Fitness(),
	)
}

// State returns the lifecycle stage.
func (e *Engine) State() State { return e.state }

// Generation returns the number of rounds performed so far.
func (e *Engine) Generation() int { return e.gen }

// Population returns the live population. Callers must not Replace into it.
func (e *Engine) Population() *Population { return e.pop }

// Records returns a copy of the record-best sequence.
func (e *Engine) Records() []Record {
	out := make([]Record, len(e.records))
	copy(out, e.records)
	return out
}

// Best returns the last record entry.
func (e *Engine) Best() Record { return e.records[len(e.records)-1] }

// elapsed is the time since the loop entered Running.
func (e *Engine) elapsed() time.Duration {
	if e.started.IsZero() {
		return 0
	}
	return e.now().Sub(e.started)
}

// start moves Initialized → Running.
func (e *Engine) start() {
	e.state = Running
	e.started = e.now()
	if e.opts.TimeLimit > 0 {
		e.deadline = e.started.Add(e.opts.TimeLimit)
	}
}

// Step performs one round and returns its telemetry. The engine terminates
// itself after round Rounds.
//
// Errors: ErrTerminated, or a wrapped operator error (which also terminates).
func (e *Engine) Step() (RoundReport, error) {
	switch e.state {
	case Terminated:
		return RoundReport{}, ErrTerminated
	case Initialized:
		e.start()
	}
	if e.gen >= e.opts.Rounds {
		e.terminate("round budget exhausted")
		return RoundReport{}, ErrTerminated
	}

	e.gen++
	rep := RoundReport{Generation: e.gen}
	if err := e.reproduce(&rep); err != nil {
		e.terminate("operator failure")
		return rep, fmt.Errorf("evolution: generation %d: %w", e.gen, err)
	}

	best, _, _ := e.pop.Best()
	prev := e.records[len(e.records)-1]
	rec := Record{Generation: prev.Generation, Tour: prev.Tour, Elapsed: e.elapsed()}
	if best.Fitness() < prev.Tour.Fitness() {
		rec.Generation, rec.Tour = e.gen, best
		e.log.V(1).Info("new best", "generation", e.gen, "fitness", best.Fitness())
	}
	e.records = append(e.records, rec)
	rep.Best, rep.Record = best, rec

	for _, o := range e.opts.Observers {
		o.ObserveRound(rep)
	}
	if e.gen >= e.opts.Rounds {
		e.terminate("round budget exhausted")
	}
	return rep, nil
}

// reproduce runs select → crossover → mutate → replace and fills rep.
// A selection failure is not an error: rep.Produced stays false.
func (e *Engine) reproduce(rep *RoundReport) error {
	a, b, err := e.pop.Tournament(e.opts.TournamentSize, e.rng)
	if err != nil {
		e.log.V(4).Info("no offspring this round", "generation", e.gen, "reason", err.Error())
		return nil
	}
	c, d, err := tsp.Crossover(a, b, e.opts.Crossover, e.rng)
	if err != nil {
		return err
	}
	m1, err := tsp.Mutate(c, e.opts.Mutation, e.rng)
	if err != nil {
		return err
	}
	m2, err := tsp.Mutate(d, e.opts.Mutation, e.rng)
	if err != nil {
		return err
	}
	o1, err := e.pop.Replace(m1, e.opts.Replacement)
	if err != nil {
		return err
	}
	o2, err := e.pop.Replace(m2, e.opts.Replacement)
	if err != nil {
		return err
	}

	rep.Produced = true
	rep.ParentA, rep.ParentB = a, b
	rep.ChildC, rep.ChildD = c, d
	rep.MutantE, rep.MutantF = m1, m2
	rep.OutcomeE, rep.OutcomeF = o1, o2
	e.log.V(4).Info("round", "generation", e.gen,
		"parentA", a.Fitness(), "parentB", b.Fitness(),
		"mutantE", m1.Fitness(), "replacedE", o1.String(),
		"mutantF", m2.Fitness(), "replacedF", o2.String())
	return nil
}

func (e *Engine) terminate(reason string) {
	if e.state == Terminated {
		return
	}
	e.state = Terminated
	best := e.Best()
	e.log.Info("run terminated", "reason", reason,
		"generations", e.gen,
		"bestFitness", best.Tour.Fitness(),
		"bestGeneration", best.Generation,
		"elapsed", best.Elapsed.String())
}

// Run performs rounds until the budget is spent. ctx and TimeLimit are checked
// between rounds; on either, Run terminates early and returns the partial
// result together with the context error or ErrTimeLimit.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if e.state == Initialized {
		e.start()
	}
	for e.state != Terminated {
		if err := ctx.Err(); err != nil {
			e.terminate("cancelled")
			return e.Result(), fmt.Errorf("evolution: stopped at generation %d: %w", e.gen, err)
		}
		if !e.deadline.IsZero() && !e.now().Before(e.deadline) {
			e.terminate("time limit")
			return e.Result(), fmt.Errorf("evolution: stopped at generation %d: %w", e.gen, ErrTimeLimit)
		}
		if e.gen >= e.opts.Rounds {
			e.terminate("round budget exhausted")
			break
		}
		if _, err := e.Step(); err != nil {
			return e.Result(), err
		}
	}
	return e.Result(), nil
}

// Result snapshots the population, the records and the summary.
func (e *Engine) Result() *Result {
	return &Result{
		Population: e.pop.Tours(),
		Records:    e.Records(),
		Summary:    e.Summary(),
	}
}

// Summary echoes the configuration together with the current record.
func (e *Engine) Summary() Summary {
	best := e.Best()
	return Summary{
		PopulationSize: e.pop.Len(),
		TournamentSize: e.opts.TournamentSize,
		Crossover:      e.opts.Crossover,
		Mutation:       e.opts.Mutation,
		Replacement:    e.opts.Replacement,
		Rounds:         e.opts.Rounds,
		Seed:           e.opts.Seed,
		Generations:    e.gen,
		Best:           best.Tour,
		BestGeneration: best.Generation,
		Elapsed:        best.Elapsed,
		SeedFallbacks:  e.fallbacks,
	}
}
