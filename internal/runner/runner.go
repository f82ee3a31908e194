// Package runner executes a batch of annealing runs described by a config.
//
// Two modes are supported:
//
//   - chained:  one tour model; every run continues from the previous run's
//     final tour, sharing one random stream.
//   - parallel: independent runs, each from its own random start and with its
//     own derived random stream, executed concurrently.
//
// A single run is never split across goroutines. Context cancellation is
// observed between runs only.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/satsp/anneal"
	"github.com/katalvlaran/satsp/internal/config"
	"golang.org/x/sync/errgroup"
)

// Mode names how the runs of a batch relate to each other.
type Mode string

const (
	ModeChained  Mode = "chained"
	ModeParallel Mode = "parallel"
)

// Outcome is the result of one run in a batch.
type Outcome struct {
	Index      int           `json:"index" yaml:"index"`
	Tour       []int         `json:"tour" yaml:"tour"`
	Distance   float64       `json:"distance" yaml:"distance"`
	Iterations int           `json:"iterations" yaml:"iterations"`
	Elapsed    time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Batch collects every run of one invocation.
type Batch struct {
	ID   uuid.UUID `json:"id" yaml:"id"`
	Seed int64     `json:"seed" yaml:"seed"`
	Mode Mode      `json:"mode" yaml:"mode"`

	// InitialTour and InitialDistance describe the shared starting tour of a
	// chained batch. They are empty in parallel mode.
	InitialTour     []int   `json:"initial_tour,omitempty" yaml:"initial_tour,omitempty"`
	InitialDistance float64 `json:"initial_distance,omitempty" yaml:"initial_distance,omitempty"`

	Runs []Outcome `json:"runs" yaml:"runs"`
}

// Best returns the shortest run. ok is false for an empty batch.
func (b Batch) Best() (best Outcome, ok bool) {
	for i, o := range b.Runs {
		if i == 0 || o.Distance < best.Distance {
			best = o
			ok = true
		}
	}

	return best, ok
}

// Runner executes batches. It holds no per-batch state and may be reused.
type Runner struct {
	logger     *slog.Logger
	traceEvery int
	workers    int
}

// Option configures a Runner.
type Option func(*Runner)

// WithTraceEvery logs a debug progress line every n iterations of each run.
// n ≤ 0 disables tracing.
func WithTraceEvery(n int) Option {
	return func(r *Runner) { r.traceEvery = n }
}

// WithWorkers bounds the number of concurrent runs in parallel mode.
// n ≤ 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// New returns a Runner logging to logger (nil ⇒ slog.Default()).
func New(logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.GOMAXPROCS(0)
	}

	return r
}

// Run validates cfg and executes its batch. cfg.Seed is used as given
// (0 ⇒ the anneal package's fixed default seed).
func (r *Runner) Run(ctx context.Context, cfg config.Config) (Batch, error) {
	if err := cfg.Validate(); err != nil {
		return Batch{}, fmt.Errorf("runner: invalid config: %w", err)
	}

	batch := Batch{
		ID:   uuid.New(),
		Seed: cfg.Seed,
		Mode: ModeChained,
	}
	if cfg.Parallel {
		batch.Mode = ModeParallel
	}
	log := r.logger.With("batch", batch.ID.String())
	log.Info("batch started",
		"mode", batch.Mode,
		"cities", len(cfg.Cities),
		"runs", cfg.Runs,
		"t_max", cfg.TMax,
		"t_min", cfg.TMin,
		"k_max", cfg.KMax,
		"seed", cfg.Seed,
	)

	var err error
	if cfg.Parallel {
		err = r.runParallel(ctx, log, cfg, &batch)
	} else {
		err = r.runChained(ctx, log, cfg, &batch)
	}
	if err != nil {
		return Batch{}, err
	}

	if best, ok := batch.Best(); ok {
		log.Info("batch finished", "best_run", best.Index, "best_distance", best.Distance)
	}

	return batch, nil
}

// runChained refines one model run after run.
func (r *Runner) runChained(ctx context.Context, log *slog.Logger, cfg config.Config, batch *Batch) error {
	rng := anneal.NewSource(cfg.Seed)
	model, err := anneal.NewModel(cfg.AnnealCities(), rng)
	if err != nil {
		return fmt.Errorf("runner: build model: %w", err)
	}
	batch.InitialTour = model.Tour()
	batch.InitialDistance = model.Length()
	log.Info("initial tour", "distance", batch.InitialDistance)

	batch.Runs = make([]Outcome, 0, cfg.Runs)
	for i := 1; i <= cfg.Runs; i++ {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("runner: run %d: %w", i, err)
		}
		opts := cfg.Options()
		opts.Rand = rng
		opts.Observer = r.tracer(log, i)

		start := time.Now()
		res, err := model.Minimize(opts)
		if err != nil {
			return fmt.Errorf("runner: run %d: %w", i, err)
		}
		batch.Runs = append(batch.Runs, r.record(log, i, res, time.Since(start)))
	}

	return nil
}

// runParallel executes independent runs concurrently. Random streams are
// derived up front, in index order, so the batch is reproducible for a seed.
func (r *Runner) runParallel(ctx context.Context, log *slog.Logger, cfg config.Config, batch *Batch) error {
	base := anneal.NewSource(cfg.Seed)
	sources := make([]anneal.Source, cfg.Runs)
	for i := range sources {
		sources[i] = anneal.DeriveSource(base, uint64(i+1))
	}
	cities := cfg.AnnealCities()
	outcomes := make([]Outcome, cfg.Runs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := range sources {
		idx := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("runner: run %d: %w", idx+1, err)
			}
			opts := cfg.Options()
			opts.Rand = sources[idx]
			opts.Observer = r.tracer(log, idx+1)

			start := time.Now()
			res, err := anneal.Minimize(cities, opts)
			if err != nil {
				return fmt.Errorf("runner: run %d: %w", idx+1, err)
			}
			outcomes[idx] = r.record(log, idx+1, res, time.Since(start))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	batch.Runs = outcomes

	return nil
}

// record logs a finished run and converts it into an Outcome.
func (r *Runner) record(log *slog.Logger, idx int, res anneal.Result, elapsed time.Duration) Outcome {
	log.Info("run finished",
		"run", idx,
		"distance", res.Distance,
		"iterations", res.Iterations,
		"elapsed", elapsed,
	)

	return Outcome{
		Index:      idx,
		Tour:       res.Tour,
		Distance:   res.Distance,
		Iterations: res.Iterations,
		Elapsed:    elapsed,
	}
}

// tracer returns an Observer emitting debug progress, or nil when tracing is
// off or debug logging is disabled.
func (r *Runner) tracer(log *slog.Logger, idx int) func(anneal.State) {
	if r.traceEvery <= 0 || !log.Enabled(context.Background(), slog.LevelDebug) {
		return nil
	}
	every := r.traceEvery

	return func(s anneal.State) {
		if s.K%every != 0 {
			return
		}
		log.Debug("annealing progress",
			"run", idx,
			"k", s.K,
			"temperature", s.Temperature,
			"distance", s.Energy,
		)
	}
}
