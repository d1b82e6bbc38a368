package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/config"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/evolution"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/metrics"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/report"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsplib"
	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Bounds of the randomized experiment parameters.
const (
	minRandomPopulation = 100
	maxRandomPopulation = 10000
	minTournamentRatio  = 4
	maxTournamentRatio  = 100
)

// session is the shared state of one invocation of the run command.
type session struct {
	out      io.Writer
	log      logr.Logger
	cfg      config.Config
	inst     *tsplib.Instance
	dir      string
	seeds    [][]int
	recorder *metrics.Recorder
}

// runExperiments loads the instance, runs cfg.Experiments engines one after
// another and merges the recorded ones into the summary of the instance.
func runExperiments(ctx context.Context, out io.Writer, logger logr.Logger, cfg config.Config, metricsAddr string) error {
	inst, err := tsplib.Load(cfg.Data)
	if err != nil {
		return err
	}
	s := &session{
		out:  out,
		log:  logger.WithValues("instance", inst.Name),
		cfg:  cfg,
		inst: inst,
		dir:  filepath.Join(cfg.ReportDir, inst.Name),
	}
	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("report dir: %w", err)
	}

	summaryPath := filepath.Join(cfg.ReportDir, "report_"+inst.Name+".csv")
	existing, err := report.LoadSummary(summaryPath)
	if err != nil {
		return err
	}
	if cfg.Exploit {
		if s.seeds, err = report.LoadSeedRoutes(summaryPath); err != nil {
			return fmt.Errorf("exploit: %w", err)
		}
		s.log.Info("seeding from previous summary", "path", summaryPath, "routes", len(s.seeds))
	}

	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		if s.recorder, err = metrics.NewRecorder(reg); err != nil {
			return err
		}
		stop := serveMetrics(s.log, metricsAddr, reg)
		defer stop()
	}

	var (
		next = nextExperimentNo(existing)
		rows []report.SummaryRow
	)
	for _, opts := range planExperiments(cfg, len(s.seeds)) {
		row, recorded, runErr := s.runOne(ctx, next, opts)
		if runErr != nil {
			err = runErr
			break
		}
		if recorded {
			rows = append(rows, row)
			next++
		}
	}
	if len(rows) == 0 {
		return err
	}

	all, sumErr := report.AppendSummary(summaryPath, rows)
	if sumErr != nil {
		return errors.Join(err, sumErr)
	}
	for _, chart := range []struct {
		prefix string
		render func(io.Writer, string, []report.SummaryRow) error
	}{
		{"operators_comparison_", report.RenderOperatorComparison},
		{"summary_graph_", report.RenderSummary},
		{"population_and_tournament_size_comparison_", report.RenderSizeTradeoff},
	} {
		path := filepath.Join(cfg.ReportDir, chart.prefix+inst.Name+".html")
		if chartErr := writeFile(path, func(w io.Writer) error {
			return chart.render(w, inst.Name, all)
		}); chartErr != nil {
			return errors.Join(err, chartErr)
		}
	}
	s.log.Info("summary written", "path", summaryPath, "recorded", len(rows), "total", len(all))
	return err
}

// planExperiments resolves the options of every experiment. Each experiment
// draws from its own stream derived from cfg.Seed, so experiment i is
// reproducible regardless of how many others run.
//
// seeded is the number of seed routes of an exploit run (0 otherwise). The
// seeded population has exactly that many members, so the tournament size is
// derived from it (randomized) or clamped to it (configured).
func planExperiments(cfg config.Config, seeded int) []evolution.Options {
	var (
		base  = tsp.NewRNG(cfg.Seed)
		plans = make([]evolution.Options, cfg.Experiments)
		i     int
	)
	for i = range plans {
		rng := tsp.DeriveRNG(base, uint64(i))
		o := cfg.Options()
		o.Seed = rng.Int63()
		switch {
		case cfg.Randomize:
			o = randomizeOptions(o, rng, seeded)
		case seeded > 0:
			o.PopulationSize = seeded
			o.TournamentSize = min(o.TournamentSize, seeded)
		}
		plans[i] = o
	}
	return plans
}

// randomizeOptions draws population size in [100, 10000], tournament size as
// population over an integer ratio in [4, 100], and the operators. When seeded
// is positive the population is the seed count and only the ratio is drawn.
func randomizeOptions(o evolution.Options, rng *rand.Rand, seeded int) evolution.Options {
	o.PopulationSize = minRandomPopulation + rng.Intn(maxRandomPopulation-minRandomPopulation+1)
	if seeded > 0 {
		o.PopulationSize = seeded
	}
	ratio := minTournamentRatio + rng.Intn(maxTournamentRatio-minTournamentRatio+1)
	o.TournamentSize = tournamentSize(o.PopulationSize, ratio)

	crossovers := tsp.CrossoverOperators()
	mutations := tsp.MutationOperators()
	replacements := evolution.Replacements()
	o.Crossover = crossovers[rng.Intn(len(crossovers))]
	o.Mutation = mutations[rng.Intn(len(mutations))]
	o.Replacement = replacements[rng.Intn(len(replacements))]
	return o
}

// tournamentSize is round(population / ratio), at least 1. With ratio >= 4 it
// never exceeds the population.
func tournamentSize(population, ratio int) int {
	return max(1, int(math.Round(float64(population)/float64(ratio))))
}

func nextExperimentNo(rows []report.SummaryRow) int {
	next := 1
	for _, r := range rows {
		if r.No >= next {
			next = r.No + 1
		}
	}
	return next
}

// runOne runs experiment no and writes its round CSV and convergence chart.
// recorded is false when an exploit run never improved on its seeds.
func (s *session) runOne(ctx context.Context, no int, opts evolution.Options) (row report.SummaryRow, recorded bool, err error) {
	var (
		started = time.Now()
		id      = strconv.Itoa(no)
		log     = s.log.WithValues("experiment", no)
	)

	f, err := os.Create(filepath.Join(s.dir, "experiment_"+id+".csv"))
	if err != nil {
		return row, false, fmt.Errorf("experiment %d: %w", no, err)
	}
	defer f.Close()
	rounds, err := report.NewRoundWriter(f)
	if err != nil {
		return row, false, fmt.Errorf("experiment %d: %w", no, err)
	}

	opts.Logger = log
	opts.Observers = append(opts.Observers, rounds)
	if s.recorder != nil {
		opts.Observers = append(opts.Observers, s.recorder.Observer(id))
	}

	var eng *evolution.Engine
	if s.cfg.Exploit {
		eng, err = evolution.NewSeeded(s.inst.Distance, s.seeds, opts)
	} else {
		eng, err = evolution.New(s.inst.Distance, opts)
	}
	if err != nil {
		return row, false, fmt.Errorf("experiment %d: %w", no, err)
	}
	s.printPlan(no, eng.Population().Len(), opts)

	res, runErr := eng.Run(ctx)
	if err = rounds.Flush(); err != nil {
		return row, false, fmt.Errorf("experiment %d: %w", no, err)
	}
	switch {
	case errors.Is(runErr, evolution.ErrTimeLimit):
		log.Info("time limit reached, keeping partial result", "generations", res.Summary.Generations)
	case runErr != nil:
		return row, false, fmt.Errorf("experiment %d: %w", no, runErr)
	}

	if s.cfg.Exploit && res.Summary.BestGeneration == 0 {
		log.Info("no improvement over the seeded population, not recorded")
		fmt.Fprintf(s.out, "--> No improvement over the seeded population\n")
		return row, false, nil
	}

	title := fmt.Sprintf("%s experiment %d", s.inst.Name, no)
	if err = writeFile(filepath.Join(s.dir, "experiment_"+id+".html"), func(w io.Writer) error {
		return report.RenderConvergence(w, title, res.Records)
	}); err != nil {
		return row, false, fmt.Errorf("experiment %d: %w", no, err)
	}

	row = report.NewSummaryRow(no, res.Summary)
	row.ExecutionTime = time.Since(started)
	s.printResult(res, row.ExecutionTime)
	return row, true, nil
}

func (s *session) printPlan(no, population int, o evolution.Options) {
	fmt.Fprintf(s.out, "\nExperiment %d\n", no)
	fmt.Fprintf(s.out, "Instance: %s (%d cities)\n", s.inst.Name, s.inst.Distance.N())
	fmt.Fprintf(s.out, "Population size: %s, tournament size: %s\n",
		humanize.Comma(int64(population)), humanize.Comma(int64(o.TournamentSize)))
	fmt.Fprintf(s.out, "Crossover: %s, mutation: %s, replacement: %s\n", o.Crossover, o.Mutation, o.Replacement)
}

func (s *session) printResult(res *evolution.Result, took time.Duration) {
	var (
		sum       = res.Summary
		fitnesses = make([]float64, len(res.Population))
	)
	for i, t := range res.Population {
		fitnesses[i] = t.Fitness()
	}
	st := report.FitnessStats(fitnesses)

	fmt.Fprintf(s.out, "--> Best solution: %s\n", humanize.CommafWithDigits(sum.Best.Fitness(), 2))
	fmt.Fprintf(s.out, "--> Route: %s\n", tsp.FormatRoute(sum.Best.Route()))
	fmt.Fprintf(s.out, "--> Get the best fitness at generation: %s of %s\n",
		humanize.Comma(int64(sum.BestGeneration)), humanize.Comma(int64(sum.Rounds)))
	fmt.Fprintf(s.out, "--> Final population: mean %s, median %s, stddev %s\n",
		humanize.CommafWithDigits(st.Mean, 2), humanize.CommafWithDigits(st.Median, 2), humanize.CommafWithDigits(st.StdDev, 2))
	if sum.SeedFallbacks > 0 {
		fmt.Fprintf(s.out, "--> %s seed routes replaced by random tours\n", humanize.Comma(int64(sum.SeedFallbacks)))
	}
	fmt.Fprintf(s.out, "--> Finished in %s\n", took.Round(time.Millisecond))
}

// writeFile creates path and hands it to render.
func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
