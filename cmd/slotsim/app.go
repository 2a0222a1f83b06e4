package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/osse101/CarloSlots_Go/internal/config"
	"github.com/osse101/CarloSlots_Go/internal/logger"
	"github.com/osse101/CarloSlots_Go/internal/metrics"
	"github.com/osse101/CarloSlots_Go/internal/scenario"
	"github.com/osse101/CarloSlots_Go/internal/scheduler"
	"github.com/osse101/CarloSlots_Go/internal/server"
	"github.com/osse101/CarloSlots_Go/internal/worker"
)

const shutdownTimeout = 5 * time.Second

// app wires configuration, catalog and engine for every command
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	catalog  *scenario.Catalog
	registry *scenario.Registry
	engine   *scenario.Engine
}

func newApp(cfg *config.Config, log *slog.Logger) (*app, error) {
	var (
		catalog *scenario.Catalog
		err     error
	)
	if cfg.ScenarioFile != "" {
		catalog, err = scenario.LoadFile(cfg.ScenarioFile)
	} else {
		catalog, err = scenario.DefaultCatalog()
	}
	if err != nil {
		return nil, err
	}

	opts := []scenario.EngineOption{
		scenario.WithLogger(log),
		scenario.WithWorkers(cfg.Workers, cfg.QueueSize),
		scenario.WithCache(cfg.CacheSize, cfg.CacheTTL),
	}
	if cfg.MetricsAddr != "" {
		opts = append(opts, scenario.WithObserver(metrics.NewSpinRecorder()))
	}

	return &app{
		cfg:      cfg,
		log:      log,
		catalog:  catalog,
		registry: catalog.Registry(),
		engine:   scenario.NewEngine(opts...),
	}, nil
}

// seed resolves a flag value against the configured default
func (a *app) seed(flagSeed uint64) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return a.cfg.Seed
}

// recordResults exports finished runs when the metrics server is enabled
func (a *app) recordResults(results ...scenario.Result) {
	if a.cfg.MetricsAddr == "" {
		return
	}
	for _, r := range results {
		if !r.Cached {
			metrics.RecordRun(r.ScenarioID, r.Analysis, r.CompletedAt.Sub(r.StartedAt))
		}
	}
}

// startBackground serves metrics and reports sweep progress until the
// returned stop function is called. Without a metrics address it only logs
// progress.
func (a *app) startBackground(ctx context.Context) func() {
	var srv *server.Server
	if a.cfg.MetricsAddr != "" {
		srv = server.NewServer(a.cfg.MetricsAddr, a.registry, a.engine)
		go func() {
			if err := srv.Start(); err != nil {
				a.log.Error("Metrics server failed", "error", err)
			}
		}()
	}

	pool := worker.NewPool(1, 1)
	pool.Start(ctx)
	sched := scheduler.New(pool)
	progress := a.engine.Progress()
	sched.Schedule(ctx, a.cfg.ProgressInterval, worker.JobFunc(func(ctx context.Context) error {
		done, total := progress.Done(), progress.Total()
		metrics.RecordSweepProgress(done, total)
		logger.FromContext(ctx).Info("Sweep progress", "done", done, "total", total)
		return nil
	}))

	return func() {
		sched.Stop()
		if err := pool.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Warn("Progress reporter failed", "error", err)
		}
		if srv != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				a.log.Warn("Metrics server shutdown failed", "error", err)
			}
		}
	}
}
