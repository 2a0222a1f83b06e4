package scenario

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarloSlots_Go/internal/domain"
	"github.com/osse101/CarloSlots_Go/internal/slots"
	"github.com/osse101/CarloSlots_Go/internal/testing/leaktest"
)

func quietEngine(opts ...EngineOption) *Engine {
	base := []EngineOption{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), WithWorkers(2, 4)}
	return NewEngine(append(base, opts...)...)
}

func liveScenario() Scenario {
	return Scenario{ID: "test-live", Name: "Test live", Economy: slots.DefaultConfig()}
}

// withoutRunID blanks the per-run id so reports from equal seeds compare equal
func withoutRunID(r Result) slots.Report {
	rep := r.Report
	rep.RunID = ""
	return rep
}

type countingObserver struct {
	spins int
}

func (o *countingObserver) ObserveSpin(string, slots.SpinResult) {
	o.spins++
}

// TestEngine_Run verifies a plain run reports every spin
func TestEngine_Run(t *testing.T) {
	obs := &countingObserver{}
	e := quietEngine(WithObserver(obs))

	res, err := e.Run(context.Background(), liveScenario(), 10, 200, 42)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.False(t, res.Cached)
	assert.Equal(t, uint64(42), res.Seed)
	assert.Equal(t, 200, res.Report.TotalSpins)
	assert.Equal(t, res.Report.TotalSpins, res.Report.TotalWins+res.Report.DeadSpins)
	assert.Len(t, res.Report.Players, 10)
	assert.Equal(t, 200, obs.spins)
	assert.NotEmpty(t, res.Analysis.Verdict)
}

// TestEngine_Run_Deterministic verifies equal seeds reproduce a run
func TestEngine_Run_Deterministic(t *testing.T) {
	e := quietEngine(WithCache(0, 0))
	sc := liveScenario()

	a, err := e.Run(context.Background(), sc, 8, 500, 7)
	require.NoError(t, err)
	b, err := e.Run(context.Background(), sc, 8, 500, 7)
	require.NoError(t, err)

	assert.False(t, b.Cached)
	assert.Equal(t, withoutRunID(a), withoutRunID(b))
}

// TestEngine_Run_RandomSeedRecorded verifies a zero seed is replaced and replayable
func TestEngine_Run_RandomSeedRecorded(t *testing.T) {
	e := quietEngine(WithCache(0, 0))
	sc := liveScenario()

	first, err := e.Run(context.Background(), sc, 5, 300, 0)
	require.NoError(t, err)

	replay, err := e.Run(context.Background(), sc, 5, 300, first.Seed)
	require.NoError(t, err)
	assert.Equal(t, withoutRunID(first), withoutRunID(replay))
}

// TestEngine_Run_Cached verifies seeded results are memoized
func TestEngine_Run_Cached(t *testing.T) {
	e := quietEngine()
	sc := liveScenario()

	first, err := e.Run(context.Background(), sc, 5, 100, 99)
	require.NoError(t, err)
	second, err := e.Run(context.Background(), sc, 5, 100, 99)
	require.NoError(t, err)

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Report, second.Report)

	other, err := e.Run(context.Background(), sc, 6, 100, 99)
	require.NoError(t, err)
	assert.False(t, other.Cached)
}

// TestEngine_Run_Steps verifies scheduled table changes are applied
func TestEngine_Run_Steps(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	churn, err := c.Registry().Get("churn")
	require.NoError(t, err)

	res, err := quietEngine().Run(context.Background(), churn, 5, 200, 3)
	require.NoError(t, err)

	require.True(t, res.Success, res.Error)
	require.Len(t, res.Steps, 3)
	for _, s := range res.Steps {
		assert.True(t, s.Success)
	}
	assert.Equal(t, 6, res.Steps[1].PlayerID)

	require.Len(t, res.Report.Players, 6)
	assert.Equal(t, "Latecomer", res.Report.Players[5].Name)
	assert.Equal(t, domain.PlayerStatusActive, res.Report.Players[0].Status)
	assert.Equal(t, 6, res.Report.ActivePlayers)
}

// TestEngine_Run_StepFailure verifies a failing step ends the run early
func TestEngine_Run_StepFailure(t *testing.T) {
	sc := liveScenario()
	sc.Steps = []Step{{AtSpin: 10, Action: ActionDeactivate, PlayerID: 99}}
	sc.Assertions = []Assertion{{Type: AssertGreaterThan, Path: "report.total_spins", Value: 0}}

	res, err := quietEngine().Run(context.Background(), sc, 3, 100, 1)
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "step 0")
	assert.Contains(t, res.Error, domain.ErrMsgPlayerNotFound)
	assert.Equal(t, 10, res.Report.TotalSpins)
	assert.Empty(t, res.Assertions)
}

// TestEngine_Run_Assertions verifies assertions read the report and analysis
func TestEngine_Run_Assertions(t *testing.T) {
	sc := liveScenario()
	sc.Assertions = []Assertion{
		{Type: AssertEquals, Path: "report.total_spins", Value: 150},
		{Type: AssertEquals, Path: "report.players.0.id", Value: 1},
		{Type: AssertBetween, Path: "analysis.win_rate", Min: 0, Max: 100},
		{Type: AssertLessThan, Path: "report.active_players", Value: 5},
	}

	res, err := quietEngine().Run(context.Background(), sc, 4, 150, 11)
	require.NoError(t, err)

	require.Len(t, res.Assertions, 4)
	assert.True(t, res.Success)
	assert.Equal(t, 4, res.PassedAssertions())

	sc.Assertions = append(sc.Assertions, Assertion{Type: AssertEquals, Path: "report.nope", Value: 1})
	res, err = quietEngine().Run(context.Background(), sc, 4, 150, 11)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.FailedAssertions())
}

// TestEngine_Run_Errors verifies configuration and cancellation errors
func TestEngine_Run_Errors(t *testing.T) {
	e := quietEngine()

	bad := liveScenario()
	bad.Economy.TicketCap = 0
	_, err := e.Run(context.Background(), bad, 5, 10, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = e.Run(context.Background(), liveScenario(), -1, 10, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidPlayerCount)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Run(ctx, liveScenario(), 5, 10, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestEngine_Sweep verifies the grid runs in order and reports progress
func TestEngine_Sweep(t *testing.T) {
	progress := &Progress{}
	e := quietEngine(WithProgress(progress), WithCache(0, 0))

	other := liveScenario()
	other.ID = "test-halve"
	other.Economy.DeadSpinBehavior = slots.BehaviorHalvePlusOne

	results, err := e.Sweep(context.Background(), []Scenario{liveScenario(), other}, []int{2, 6}, []int{50}, 5)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "test-live", results[0].ScenarioID)
	assert.Equal(t, 2, results[0].Players)
	assert.Equal(t, 6, results[1].Players)
	assert.Equal(t, "test-halve", results[2].ScenarioID)
	for i, r := range results {
		assert.Equal(t, uint64(5+i), r.Seed)
		assert.Equal(t, 50, r.Report.TotalSpins)
	}
	assert.Equal(t, int64(4), progress.Total())
	assert.Equal(t, int64(4), progress.Done())

	again, err := e.Sweep(context.Background(), []Scenario{liveScenario(), other}, []int{2, 6}, []int{50}, 5)
	require.NoError(t, err)
	for i := range results {
		assert.Equal(t, withoutRunID(results[i]), withoutRunID(again[i]))
	}
}

// TestEngine_Sweep_Cancelled verifies a cancelled sweep returns no results
func TestEngine_Sweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := quietEngine().Sweep(ctx, []Scenario{liveScenario()}, []int{5, 10}, []int{100}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

// TestEngine_Sweep_NoLeak verifies the sweep pool exits with the sweep
func TestEngine_Sweep_NoLeak(t *testing.T) {
	// The result cache owns a janitor goroutine for its lifetime.
	e := quietEngine()
	leaktest.CheckNoGoroutineLeak(t, func() {
		_, err := e.Sweep(context.Background(), []Scenario{liveScenario()}, []int{1, 2, 3}, []int{20}, 1)
		require.NoError(t, err)
	})
}

// TestEngine_RunSweep verifies catalog presets resolve through the registry
func TestEngine_RunSweep(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	reg := c.Registry()

	results, err := quietEngine().RunSweep(context.Background(), reg, Sweep{
		ID:           "tiny",
		Scenarios:    []string{"live", "adaptive-half"},
		PlayerCounts: []int{3},
		SpinCounts:   []int{30},
	}, 9)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	_, err = quietEngine().RunSweep(context.Background(), reg, Sweep{Scenarios: []string{"missing"}}, 9)
	assert.ErrorIs(t, err, domain.ErrScenarioNotFound)
}
