package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/satsp/internal/config"
	"github.com/katalvlaran/satsp/internal/report"
	"github.com/katalvlaran/satsp/internal/runner"
	"github.com/spf13/cobra"
)

// rootFlags holds the raw flag values; only flags the user actually set
// override the config file.
type rootFlags struct {
	configPath string
	tMax       float64
	tMin       float64
	kMax       int
	runs       int
	seed       int64
	parallel   bool
	workers    int
	format     string
	logLevel   string
	traceEvery int
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "satsp",
		Short: "Find a short closed tour through 2-D points with simulated annealing",
		Long: `satsp runs a simulated-annealing optimizer over a fixed set of cities.

Each run starts hot (t_max), proposes segment-reversal moves, accepts worse
tours with probability exp(-Δ/t), and cools as t = 0.1·t_max/k until t ≤ t_min
or k ≥ k_max. Chained runs keep refining one tour; --parallel runs independent
optimizations concurrently.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := run(cmd, f)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			}

			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML config file (cities, t_max, t_min, k_max, runs, seed, parallel, format)")
	fl.Float64Var(&f.tMax, "t-max", def.TMax, "initial temperature")
	fl.Float64Var(&f.tMin, "t-min", def.TMin, "temperature floor")
	fl.IntVar(&f.kMax, "k-max", def.KMax, "iteration cap per run")
	fl.IntVarP(&f.runs, "runs", "n", def.Runs, "number of runs")
	fl.Int64Var(&f.seed, "seed", 0, "random seed (0 = derive from the clock)")
	fl.BoolVar(&f.parallel, "parallel", false, "run independent optimizations concurrently")
	fl.IntVar(&f.workers, "workers", 0, "max concurrent runs with --parallel (0 = GOMAXPROCS)")
	fl.StringVarP(&f.format, "format", "o", def.Format, "output format: text, yaml or json")
	fl.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fl.IntVar(&f.traceEvery, "trace-every", 0, "log progress every N iterations at debug level (0 = off)")

	return cmd
}

// run wires config → runner → report.
func run(cmd *cobra.Command, f rootFlags) error {
	logger, err := newLogger(cmd.ErrOrStderr(), f.logLevel)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		logger.Info("seed derived from clock", "seed", cfg.Seed)
	}

	r := runner.New(logger,
		runner.WithTraceEvery(f.traceEvery),
		runner.WithWorkers(f.workers),
	)
	batch, err := r.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), batch, cfg.Format)
}

// resolveConfig layers defaults, the optional file, and explicitly set flags.
func resolveConfig(cmd *cobra.Command, f rootFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("t-max") {
		cfg.TMax = f.tMax
	}
	if fl.Changed("t-min") {
		cfg.TMin = f.tMin
	}
	if fl.Changed("k-max") {
		cfg.KMax = f.kMax
	}
	if fl.Changed("runs") {
		cfg.Runs = f.runs
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("parallel") {
		cfg.Parallel = f.parallel
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}

	return cfg, nil
}

// newLogger builds a text slog.Logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
