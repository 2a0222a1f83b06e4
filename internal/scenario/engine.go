package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CarloSlots_Go/internal/domain"
	"github.com/osse101/CarloSlots_Go/internal/slots"
	"github.com/osse101/CarloSlots_Go/internal/stats"
	"github.com/osse101/CarloSlots_Go/internal/worker"
)

// cancelCheckInterval is how many spins run between context checks
const cancelCheckInterval = 1024

type cacheKey struct {
	scenario string
	players  int
	spins    int
	seed     uint64
}

// Progress counts sweep runs. It is safe to read while a sweep is running.
type Progress struct {
	total atomic.Int64
	done  atomic.Int64
}

// Total returns the number of runs scheduled so far
func (p *Progress) Total() int64 { return p.total.Load() }

// Done returns the number of finished runs
func (p *Progress) Done() int64 { return p.done.Load() }

// Engine runs scenarios and sweeps. Seeded runs are deterministic, so their
// results are memoized.
type Engine struct {
	workers   int
	queueSize int
	cache     *expirable.LRU[cacheKey, Result]
	log       *slog.Logger
	observer  slots.Observer
	progress  *Progress
}

// EngineOption customizes an Engine
type EngineOption func(*Engine)

// WithWorkers sets the sweep pool size. workers <= 0 uses one per CPU.
func WithWorkers(workers, queueSize int) EngineOption {
	return func(e *Engine) {
		e.workers = workers
		e.queueSize = queueSize
	}
}

// WithCache sets the result cache size and TTL. A size <= 0 disables caching.
func WithCache(size int, ttl time.Duration) EngineOption {
	return func(e *Engine) {
		if size <= 0 {
			e.cache = nil
			return
		}
		e.cache = expirable.NewLRU[cacheKey, Result](size, nil, ttl)
	}
}

// WithLogger sets the engine logger
func WithLogger(log *slog.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// WithObserver attaches a per-spin observer to every run
func WithObserver(obs slots.Observer) EngineOption {
	return func(e *Engine) { e.observer = obs }
}

// WithProgress reports sweep progress into p
func WithProgress(p *Progress) EngineOption {
	return func(e *Engine) { e.progress = p }
}

// NewEngine creates a scenario engine
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		queueSize: 64,
		cache:     expirable.NewLRU[cacheKey, Result](DefaultCacheSize, nil, DefaultCacheTTL),
		log:       slog.Default(),
		progress:  &Progress{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Progress returns the engine's sweep progress counters
func (e *Engine) Progress() *Progress {
	return e.progress
}

// Run simulates sc with the given table size. A zero seed draws a fresh one,
// which is recorded in the result so the run can be replayed. Step failures
// end the run early and mark the result failed; only cancellation and
// malformed configuration return an error.
func (e *Engine) Run(ctx context.Context, sc Scenario, players, spins int, seed uint64) (Result, error) {
	if seed == 0 {
		s, err := slots.NewSeed()
		if err != nil {
			return Result{}, err
		}
		seed = s
	}

	key := cacheKey{scenario: sc.ID, players: players, spins: spins, seed: seed}
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			e.log.Debug(LogMsgScenarioCached, "scenario", sc.ID, "players", players, "spins", spins)
			cached.Cached = true
			return cached, nil
		}
	}

	result := newResult(sc, players, spins, seed)
	log := e.log.With("scenario", sc.ID, "players", players, "spins", spins)
	log.Debug(LogMsgScenarioStarted, "seed", seed)

	opts := []slots.Option{slots.WithSeed(seed), slots.WithLogger(log)}
	if e.observer != nil {
		opts = append(opts, slots.WithObserver(e.observer))
	}
	run, err := slots.NewRun(players, sc.Economy, opts...)
	if err != nil {
		return Result{}, err
	}

	steps := make([]Step, len(sc.Steps))
	copy(steps, sc.Steps)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].AtSpin < steps[j].AtSpin })

	next := 0
	for i := 0; i < spins && result.Success; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		for next < len(steps) && steps[next].AtSpin <= i {
			sr := e.applyStep(run, steps[next], next)
			result.AddStepResult(sr)
			if !sr.Success {
				result.Error = sr.Error
				break
			}
			log.Debug(LogMsgStepApplied, "step", next, "action", steps[next].Action, "spin", i)
			next++
		}
		if result.Success {
			run.Step()
		}
	}

	result.Report = run.Snapshot()
	result.Analysis = stats.Analyze(result.Report)

	if result.Success && len(sc.Assertions) > 0 {
		doc, err := document(result)
		if err != nil {
			return Result{}, err
		}
		for _, a := range sc.Assertions {
			result.AddAssertionResult(checkAssertion(a, doc))
		}
	}

	result.Complete()
	log.Debug(LogMsgScenarioCompleted, "success", result.Success, "wins", result.Report.TotalWins, "duration_ms", result.DurationMS)

	if e.cache != nil {
		e.cache.Add(key, *result)
	}
	return *result, nil
}

func (e *Engine) applyStep(run *slots.Run, step Step, index int) StepResult {
	sr := StepResult{StepIndex: index, AtSpin: step.AtSpin, Action: step.Action, PlayerID: step.PlayerID, Success: true}

	var err error
	switch step.Action {
	case ActionDeactivate:
		err = run.SetPlayerStatus(step.PlayerID, domain.PlayerStatusInactive)
	case ActionActivate:
		err = run.SetPlayerStatus(step.PlayerID, domain.PlayerStatusActive)
	case ActionAddPlayer:
		sr.PlayerID = run.AddPlayer(step.Name).ID
	default:
		err = fmt.Errorf("%w: unknown action %q", ErrInvalidScenario, step.Action)
	}
	if err != nil {
		sr.Success = false
		sr.Error = NewStepError(step, index, err).Error()
	}
	return sr
}

// Sweep runs every scenario at every player count and spin count over a
// worker pool. A non-zero seed makes the whole grid reproducible: each cell
// gets seed plus its grid position. Results come back in grid order; cells
// that did not complete are omitted and their errors joined.
func (e *Engine) Sweep(ctx context.Context, scenarios []Scenario, playerCounts, spinCounts []int, seed uint64) ([]Result, error) {
	type cell struct {
		sc      Scenario
		players int
		spins   int
	}
	var cells []cell
	for _, sc := range scenarios {
		for _, spins := range spinCounts {
			for _, players := range playerCounts {
				cells = append(cells, cell{sc: sc, players: players, spins: spins})
			}
		}
	}

	e.progress.total.Add(int64(len(cells)))
	e.log.Info(LogMsgSweepStarted, "runs", len(cells), "scenarios", len(scenarios))

	results := make([]Result, len(cells))
	completed := make([]bool, len(cells))
	var mu sync.Mutex

	pool := worker.NewPool(e.workers, e.queueSize)
	pool.Start(ctx)

	var enqueueErr error
	for i, c := range cells {
		cellSeed := uint64(0)
		if seed != 0 {
			cellSeed = seed + uint64(i)
		}
		job := worker.JobFunc(func(ctx context.Context) error {
			res, err := e.Run(ctx, c.sc, c.players, c.spins, cellSeed)
			if err != nil {
				return fmt.Errorf("%s (players=%d spins=%d): %w", c.sc.ID, c.players, c.spins, err)
			}
			mu.Lock()
			results[i] = res
			completed[i] = true
			mu.Unlock()
			e.progress.done.Add(1)
			return nil
		})
		if err := pool.Enqueue(job); err != nil {
			enqueueErr = fmt.Errorf("%s: %w", ErrContextEnqueueRun, err)
			break
		}
	}

	err := pool.Wait()
	if enqueueErr != nil {
		err = enqueueErr
	}
	if ctxErr := ctx.Err(); ctxErr != nil && err == nil {
		err = fmt.Errorf("%s: %w", ErrContextSweepCancelled, ctxErr)
	}

	out := make([]Result, 0, len(cells))
	for i, ok := range completed {
		if ok {
			out = append(out, results[i])
		}
	}
	e.log.Info(LogMsgSweepCompleted, "runs", len(out), "failed", pool.Failed())
	return out, err
}

// RunSweep resolves a catalog preset and runs it
func (e *Engine) RunSweep(ctx context.Context, reg *Registry, sw Sweep, seed uint64) ([]Result, error) {
	scenarios, err := reg.Lookup(sw.Scenarios...)
	if err != nil {
		return nil, err
	}
	return e.Sweep(ctx, scenarios, sw.PlayerCounts, sw.SpinCounts, seed)
}
