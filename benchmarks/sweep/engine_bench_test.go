package sweep_bench

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/osse101/CarloSlots_Go/internal/metrics"
	"github.com/osse101/CarloSlots_Go/internal/scenario"
	"github.com/osse101/CarloSlots_Go/internal/slots"
	"github.com/osse101/CarloSlots_Go/internal/stats"
)

// --- Stubs (zero-overhead observer for benchmarking) ---

type StubObserver struct{}

func (StubObserver) ObserveSpin(string, slots.SpinResult) {}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func liveScenario(b *testing.B) scenario.Scenario {
	catalog, err := scenario.DefaultCatalog()
	if err != nil {
		b.Fatalf("DefaultCatalog failed: %v", err)
	}
	sc, err := catalog.Registry().Get("live")
	if err != nil {
		b.Fatalf("live scenario missing: %v", err)
	}
	return sc
}

// BenchmarkRun_Uncached measures a full scenario run including analysis.
// Caching is disabled so every iteration simulates.
func BenchmarkRun_Uncached(b *testing.B) {
	sc := liveScenario(b)
	engine := scenario.NewEngine(
		scenario.WithLogger(quietLogger()),
		scenario.WithCache(0, 0),
		scenario.WithObserver(StubObserver{}),
	)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Run(ctx, sc, 20, 1000, uint64(i+1)); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_Cached measures the result cache hit path
func BenchmarkRun_Cached(b *testing.B) {
	sc := liveScenario(b)
	engine := scenario.NewEngine(scenario.WithLogger(quietLogger()))
	ctx := context.Background()
	if _, err := engine.Run(ctx, sc, 20, 1000, 7); err != nil {
		b.Fatalf("warmup failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Run(ctx, sc, 20, 1000, 7); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_MetricsObserver adds the Prometheus spin recorder to each run
func BenchmarkRun_MetricsObserver(b *testing.B) {
	sc := liveScenario(b)
	engine := scenario.NewEngine(
		scenario.WithLogger(quietLogger()),
		scenario.WithCache(0, 0),
		scenario.WithObserver(metrics.NewSpinRecorder()),
	)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Run(ctx, sc, 20, 1000, uint64(i+1)); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkSweep_HighVolumeCells simulates a stress sweep across the worker pool
func BenchmarkSweep_HighVolumeCells(b *testing.B) {
	sc := liveScenario(b)
	engine := scenario.NewEngine(
		scenario.WithLogger(quietLogger()),
		scenario.WithCache(0, 0),
	)
	ctx := context.Background()
	scenarios := []scenario.Scenario{sc}
	players := []int{5, 10, 25, 50}
	spins := []int{300}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		results, err := engine.Sweep(ctx, scenarios, players, spins, uint64(i+1))
		if err != nil {
			b.Fatalf("Sweep failed: %v", err)
		}
		if len(results) != len(players) {
			b.Fatalf("expected %d results, got %d", len(players), len(results))
		}
	}
}

// BenchmarkAnalyze isolates the fairness and rate analysis of a long run
func BenchmarkAnalyze(b *testing.B) {
	rep, err := slots.Simulate(slots.DefaultConfig(), 20, 10000, slots.WithSeed(1), slots.WithLogger(quietLogger()))
	if err != nil {
		b.Fatalf("Simulate failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stats.Analyze(rep)
	}
}
