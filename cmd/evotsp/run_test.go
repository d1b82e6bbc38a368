package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/config"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/evolution"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/report"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// writeInstance writes an n-city XML instance where cost(i,j) = 1 + |i-j|*(i+1).
func writeInstance(t *testing.T, dir, name string, n int) string {
	t.Helper()
	var b strings.Builder
	fmt.Fprintf(&b, "<travellingSalesmanProblemInstance><name>%s</name><graph>\n", name)
	for i := 0; i < n; i++ {
		b.WriteString("<vertex>")
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := j - i
			if d < 0 {
				d = -d
			}
			fmt.Fprintf(&b, `<edge cost="%d">%d</edge>`, 1+d*(i+1), j)
		}
		b.WriteString("</vertex>\n")
	}
	b.WriteString("</graph></travellingSalesmanProblemInstance>\n")

	path := filepath.Join(dir, name+".xml")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rounds: 100\ncrossover: pmx\nexperiments: 3\n"), 0o644))

	var (
		fs = pflag.NewFlagSet("run", pflag.ContinueOnError)
		f  runFlags
	)
	bindFlags(fs, &f)
	require.NoError(t, fs.Parse([]string{"--config", path, "--crossover", "ox", "--rounds", "7"}))

	cfg, err := resolveConfig(fs, f)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Rounds)
	require.Equal(t, tsp.OX, cfg.Crossover)
	require.Equal(t, 3, cfg.Experiments)
	require.Equal(t, "datasets/burma14.xml", cfg.Data)
	require.Equal(t, tsp.SingleSwap, cfg.Mutation)
}

func TestResolveConfig_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"--mutation", "bogus"},
		{"--replacement", "strongest"},
		{"--experiments", "0"},
		{"--tournament", "0"},
	} {
		var (
			fs = pflag.NewFlagSet("run", pflag.ContinueOnError)
			f  runFlags
		)
		bindFlags(fs, &f)
		require.NoError(t, fs.Parse(args))
		_, err := resolveConfig(fs, f)
		require.Error(t, err, "%v", args)
	}
}

func TestRandomizeOptions_Bounds(t *testing.T) {
	rng := tsp.NewRNG(3)
	seen := map[tsp.CrossoverOperator]bool{}
	for i := 0; i < 1000; i++ {
		o := randomizeOptions(evolution.DefaultOptions(), rng, 0)
		require.GreaterOrEqual(t, o.PopulationSize, minRandomPopulation)
		require.LessOrEqual(t, o.PopulationSize, maxRandomPopulation)
		require.GreaterOrEqual(t, o.TournamentSize, 1)
		require.LessOrEqual(t, o.TournamentSize, o.PopulationSize/4+1)
		require.NoError(t, o.Validate())
		seen[o.Crossover] = true
	}
	require.Len(t, seen, len(tsp.CrossoverOperators()))
}

func TestPlanExperiments_Deterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Experiments = 4
	cfg.Randomize = true
	cfg.Seed = 11

	a, b := planExperiments(cfg, 0), planExperiments(cfg, 0)
	require.Len(t, a, 4)
	seeds := map[int64]bool{}
	for i := range a {
		require.Equal(t, a[i].Seed, b[i].Seed)
		require.Equal(t, a[i].PopulationSize, b[i].PopulationSize)
		require.Equal(t, a[i].Crossover, b[i].Crossover)
		seeds[a[i].Seed] = true
	}
	require.Len(t, seeds, 4)
}

func TestRunExperiments_WritesReports(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Data = writeInstance(t, dir, "five", 5)
	cfg.ReportDir = filepath.Join(dir, "report")
	cfg.PopulationSize = 8
	cfg.TournamentSize = 3
	cfg.Rounds = 200
	cfg.Experiments = 2

	var out bytes.Buffer
	require.NoError(t, runExperiments(context.Background(), &out, logr.Discard(), cfg, ""))
	require.Contains(t, out.String(), "Experiment 1")
	require.Contains(t, out.String(), "--> Best solution:")

	summaryPath := filepath.Join(cfg.ReportDir, "report_five.csv")
	rows, err := report.LoadSummary(summaryPath)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.LessOrEqual(t, rows[0].Fitness, rows[1].Fitness)

	for _, name := range []string{
		"five/experiment_1.csv",
		"five/experiment_1.html",
		"five/experiment_2.csv",
		"five/experiment_2.html",
		"operators_comparison_five.html",
		"summary_graph_five.html",
		"population_and_tournament_size_comparison_five.html",
	} {
		require.FileExists(t, filepath.Join(cfg.ReportDir, name))
	}

	// Two seeds with a configured tournament of three: the tournament is
	// clamped to the seeded population, so every round produces offspring.
	cfg.Exploit = true
	cfg.Experiments = 1
	out.Reset()
	require.NoError(t, runExperiments(context.Background(), &out, logr.Discard(), cfg, ""))
	requireOffspring(t, filepath.Join(cfg.ReportDir, "five", "experiment_3.csv"))
}

// requireOffspring asserts that every round in the CSV at path selected parents.
func requireOffspring(t *testing.T, path string) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Greater(t, len(records), 1)
	for _, rec := range records[1:] {
		require.NotEmpty(t, rec[1], "generation %s selected no parents", rec[0])
	}
}

func TestPlanExperiments_ExploitTournamentFitsSeeds(t *testing.T) {
	cfg := config.Default()
	cfg.Experiments = 50
	cfg.Exploit = true
	cfg.TournamentSize = 40

	for _, seeded := range []int{1, 2, 12, 30} {
		for _, randomize := range []bool{false, true} {
			cfg.Randomize = randomize
			for _, o := range planExperiments(cfg, seeded) {
				require.Equal(t, seeded, o.PopulationSize)
				require.GreaterOrEqual(t, o.TournamentSize, 1)
				require.LessOrEqual(t, o.TournamentSize, seeded, "seeded=%d randomize=%v", seeded, randomize)
			}
		}
	}
}

func TestTournamentSize(t *testing.T) {
	require.Equal(t, 1, tournamentSize(1, 4))
	require.Equal(t, 1, tournamentSize(2, 4))
	require.Equal(t, 3, tournamentSize(12, 4))
	require.Equal(t, 1, tournamentSize(12, 100))
	require.Equal(t, 100, tournamentSize(10000, 100))
}

func TestRunExperiments_ExploitRandomizedProducesOffspring(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Data = writeInstance(t, dir, "seven", 7)
	cfg.ReportDir = filepath.Join(dir, "report")
	cfg.PopulationSize = 8
	cfg.TournamentSize = 3
	cfg.Rounds = 30
	cfg.Experiments = 12
	require.NoError(t, runExperiments(context.Background(), &bytes.Buffer{}, logr.Discard(), cfg, ""))

	cfg.Exploit = true
	cfg.Randomize = true
	cfg.Rounds = 100
	cfg.Experiments = 10
	for _, o := range planExperiments(cfg, 12) {
		require.LessOrEqual(t, o.TournamentSize, 12)
	}
	require.NoError(t, runExperiments(context.Background(), &bytes.Buffer{}, logr.Discard(), cfg, ""))
	// Unrecorded runs reuse the next experiment number; the last exploit run
	// is the highest-numbered CSV either way.
	rows, err := report.LoadSummary(filepath.Join(cfg.ReportDir, "report_seven.csv"))
	require.NoError(t, err)
	last := filepath.Join(cfg.ReportDir, "seven", "experiment_"+strconv.Itoa(len(rows)+1)+".csv")
	if _, err = os.Stat(last); err != nil {
		last = filepath.Join(cfg.ReportDir, "seven", "experiment_"+strconv.Itoa(len(rows))+".csv")
	}
	requireOffspring(t, last)
}

func TestRunExperiments_MissingInstance(t *testing.T) {
	cfg := config.Default()
	cfg.Data = filepath.Join(t.TempDir(), "missing.xml")
	err := runExperiments(context.Background(), &bytes.Buffer{}, logr.Discard(), cfg, "")
	require.Error(t, err)
}

func TestRunExperiments_Cancelled(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Data = writeInstance(t, dir, "four", 4)
	cfg.ReportDir = filepath.Join(dir, "report")
	cfg.PopulationSize = 4
	cfg.TournamentSize = 2

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := runExperiments(ctx, &bytes.Buffer{}, logr.Discard(), cfg, "")
	require.ErrorIs(t, err, context.Canceled)
	require.NoFileExists(t, filepath.Join(cfg.ReportDir, "report_four.csv"))
}
