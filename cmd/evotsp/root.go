package main

import (
	goflag "flag"
	"fmt"
	"time"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/config"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/evolution"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

// runFlags holds the command line overrides of config.Config. A flag only
// replaces the file value when it was set explicitly.
type runFlags struct {
	configPath  string
	data        string
	reportDir   string
	metricsAddr string
	experiments int
	seed        int64
	randomize   bool
	exploit     bool
	population  int
	tournament  int
	rounds      int
	crossover   string
	mutation    string
	replacement string
	timeLimit   time.Duration
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "evotsp",
		Short:         "Steady-state evolutionary algorithm for the asymmetric TSP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)

	root.AddCommand(newRunCommand(), newConfigCommand())
	return root
}

func newRunCommand() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run experiments and write reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd.Flags(), f)
			if err != nil {
				return err
			}
			logger := klog.Background().WithName("evotsp")
			err = runExperiments(cmd.Context(), cmd.OutOrStdout(), logger, cfg, f.metricsAddr)
			if err != nil {
				logger.Error(err, "run failed")
			}
			return err
		},
	}
	bindFlags(cmd.Flags(), &f)
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running (empty disables)")
	return cmd
}

func newConfigCommand() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd.Flags(), f)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	bindFlags(cmd.Flags(), &f)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, f *runFlags) {
	d := config.Default()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&f.data, "data", "d", "datasets/burma14.xml", "instance file (.xml or TSPLIB explicit matrix)")
	fs.StringVar(&f.reportDir, "report-dir", d.ReportDir, "directory for CSV and HTML reports")
	fs.IntVarP(&f.experiments, "experiments", "e", d.Experiments, "number of independent experiments")
	fs.Int64Var(&f.seed, "seed", d.Seed, "base RNG seed (0 selects the default seed)")
	fs.BoolVar(&f.randomize, "randomize", false, "draw population size, tournament size and operators per experiment")
	fs.BoolVar(&f.exploit, "exploit", false, "seed the population from the routes of the previous summary")
	fs.IntVar(&f.population, "population", d.PopulationSize, "population size")
	fs.IntVar(&f.tournament, "tournament", d.TournamentSize, "tournament size")
	fs.IntVar(&f.rounds, "rounds", d.Rounds, "rounds per experiment")
	fs.StringVar(&f.crossover, "crossover", d.Crossover.ID(), "crossover operator (pmx, ox, scx)")
	fs.StringVar(&f.mutation, "mutation", d.Mutation.ID(), "mutation operator (single-swap, multiple-swap, inversion)")
	fs.StringVar(&f.replacement, "replacement", d.Replacement.ID(), "replacement strategy (weakest, first-weaker)")
	fs.DurationVar(&f.timeLimit, "time-limit", 0, "wall-clock budget per experiment (0 disables)")
}

// resolveConfig loads the file named by --config (or the defaults) and applies
// the flags that were set explicitly.
func resolveConfig(fs *pflag.FlagSet, f runFlags) (config.Config, error) {
	var (
		cfg = config.Default()
		err error
	)
	if f.configPath != "" {
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if cfg.Data == "" || fs.Changed("data") {
		cfg.Data = f.data
	}
	if fs.Changed("report-dir") {
		cfg.ReportDir = f.reportDir
	}
	if fs.Changed("experiments") {
		cfg.Experiments = f.experiments
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("randomize") {
		cfg.Randomize = f.randomize
	}
	if fs.Changed("exploit") {
		cfg.Exploit = f.exploit
	}
	if fs.Changed("population") {
		cfg.PopulationSize = f.population
	}
	if fs.Changed("tournament") {
		cfg.TournamentSize = f.tournament
	}
	if fs.Changed("rounds") {
		cfg.Rounds = f.rounds
	}
	if fs.Changed("time-limit") {
		cfg.TimeLimit.Duration = f.timeLimit
	}
	if fs.Changed("crossover") {
		if cfg.Crossover, err = tsp.ParseCrossover(f.crossover); err != nil {
			return config.Config{}, fmt.Errorf("--crossover: %w", err)
		}
	}
	if fs.Changed("mutation") {
		if cfg.Mutation, err = tsp.ParseMutation(f.mutation); err != nil {
			return config.Config{}, fmt.Errorf("--mutation: %w", err)
		}
	}
	if fs.Changed("replacement") {
		if cfg.Replacement, err = evolution.ParseReplacement(f.replacement); err != nil {
			return config.Config{}, fmt.Errorf("--replacement: %w", err)
		}
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
