package slots

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/osse101/CarloSlots_Go/internal/domain"
)

// SpinResult is everything that happened during one spin
type SpinResult struct {
	Index              int            `json:"index"`
	Reels              domain.Reels   `json:"reels"`
	Outcome            domain.Outcome `json:"outcome"`
	Balance            Balance        `json:"balance"`
	Drawn              bool           `json:"drawn"` // false when an ignition release skipped the draw
	GuaranteeRequested bool           `json:"guarantee_requested"`
	ForceDeadRequested bool           `json:"force_dead_requested"`
	Attempts           int            `json:"attempts"`
	Fallback           bool           `json:"fallback"`
}

//go:generate mockery --name=Observer --inpackage --testonly --exported --with-expecter=false --filename=mock_observer_test.go --output=.

// Observer is notified after every spin. Implementations must not mutate the run.
type Observer interface {
	ObserveSpin(runID string, result SpinResult)
}

type runOptions struct {
	rng      RNG
	seed     *uint64
	log      *slog.Logger
	observer Observer
	runID    string
}

// Option customizes a run
type Option func(*runOptions)

// WithRNG injects the randomness source
func WithRNG(rng RNG) Option {
	return func(o *runOptions) { o.rng = rng }
}

// WithSeed seeds a deterministic PCG generator
func WithSeed(seed uint64) Option {
	return func(o *runOptions) { o.seed = &seed }
}

// WithLogger sets the run logger
func WithLogger(log *slog.Logger) Option {
	return func(o *runOptions) { o.log = log }
}

// WithObserver registers a per-spin observer
func WithObserver(obs Observer) Option {
	return func(o *runOptions) { o.observer = obs }
}

// WithRunID overrides the generated run id
func WithRunID(id string) Option {
	return func(o *runOptions) { o.runID = id }
}

// Run is one simulation: state, economy and counters. A Run is not safe for
// concurrent use; parallelize across runs instead.
type Run struct {
	id        string
	cfg       EconomyConfig
	state     *State
	rng       RNG
	generator *Generator
	economy   *Economy
	log       *slog.Logger
	observer  Observer
	tally     *tally
}

// NewRun creates a run with playerCount active players. Only malformed
// configuration is rejected.
func NewRun(playerCount int, cfg EconomyConfig, opts ...Option) (*Run, error) {
	if playerCount < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPlayerCount, playerCount)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := runOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}
	if o.rng == nil {
		seed := uint64(0)
		if o.seed != nil {
			seed = *o.seed
		} else {
			s, err := NewSeed()
			if err != nil {
				return nil, err
			}
			seed = s
		}
		o.rng = NewRNG(seed)
	}

	log := o.log.With("run_id", o.runID)
	r := &Run{
		id:        o.runID,
		cfg:       cfg,
		state:     NewState(playerCount),
		rng:       o.rng,
		generator: NewGenerator(o.rng, log),
		economy:   NewEconomy(cfg),
		log:       log,
		observer:  o.observer,
		tally:     newTally(),
	}
	log.Debug(LogMsgRunCreated, "players", playerCount, "accumulator_cap", cfg.AccumulatorCap.String())
	return r, nil
}

// ID returns the run id
func (r *Run) ID() string {
	return r.id
}

// Config returns the run's economy config
func (r *Run) Config() EconomyConfig {
	return r.cfg
}

// State exposes the live state for inspection in tests and reports
func (r *Run) State() *State {
	return r.state
}

// Advance performs the given number of spins
func (r *Run) Advance(spins int) {
	for i := 0; i < spins; i++ {
		r.Step()
	}
}

// Step performs a single spin:
// check guarantee -> check back-to-back -> draw -> classify -> apply.
func (r *Run) Step() SpinResult {
	st := r.state
	balance := BalanceFor(st.ActiveCount())
	accCap := r.cfg.AccumulatorCap.For(balance.ActivePlayers)
	st.clampAccumulators(accCap)

	if r.cfg.SnapshotInterval > 0 && st.SpinIndex%r.cfg.SnapshotInterval == 0 {
		r.tally.snapshot(st)
	}

	res := SpinResult{Index: st.SpinIndex, Balance: balance}

	// Guaranteed release short-circuits the draw entirely.
	st.Ignition.Refresh(st.Players, accCap)
	if st.Ignition.CanRelease(st.SpinIndex, balance.IgnitionCooldown) {
		if p := st.Ignition.Release(st.SpinIndex, st, accCap); p != nil {
			r.log.Debug(LogMsgIgnitionReleased, "spin", st.SpinIndex, "player_id", p.ID, "queued", st.Ignition.Len())
			r.economy.ApplyRelease(st.Players, p.ID, accCap)
			res.Outcome = domain.Outcome{Category: domain.CategoryGuaranteedRelease, PlayerID: p.ID, WindowStart: -1}
			return r.finish(res)
		}
	}

	forceDead := false
	if st.LastSpinWasWin && r.cfg.BackToBackOdds > 0 {
		if r.rng.IntN(r.cfg.BackToBackOdds) != 0 {
			forceDead = true
		} else {
			r.tally.backToBackAllowed++
			r.log.Debug(LogMsgBackToBackAllowed, "spin", st.SpinIndex)
		}
	}

	// The guardrail wins over back-to-back suppression. An empty table has
	// nobody to guarantee a win for.
	guarantee := balance.ActivePlayers > 0 && st.DeadStreak >= balance.MaxDeadStreak
	if guarantee {
		forceDead = false
		r.tally.guaranteeTriggers++
		r.log.Debug(LogMsgGuardrailTriggered, "spin", st.SpinIndex, "streak", st.DeadStreak, "max", balance.MaxDeadStreak)
	}
	if forceDead {
		r.tally.forcedDead++
	}

	draw := r.generator.Draw(st, balance, guarantee, forceDead)
	if draw.Fallback {
		r.tally.fallbacks++
	}

	res.Reels = draw.Reels
	res.Drawn = true
	res.GuaranteeRequested = guarantee
	res.ForceDeadRequested = forceDead
	res.Attempts = draw.Attempts
	res.Fallback = draw.Fallback
	res.Outcome = Classify(draw.Reels, st)

	r.economy.ApplySpin(st.Players, draw.Reels, res.Outcome, accCap)
	return r.finish(res)
}

// finish updates streaks and counters and advances the spin index
func (r *Run) finish(res SpinResult) SpinResult {
	st := r.state
	r.tally.record(res.Outcome)

	if res.Outcome.IsWin() {
		st.DeadStreak = 0
		st.LastSpinWasWin = true
	} else {
		st.DeadStreak++
		st.LastSpinWasWin = false
		r.tally.recordStreak(st.DeadStreak)
	}
	st.SpinIndex++

	if r.observer != nil {
		r.observer.ObserveSpin(r.id, res)
	}
	return res
}

// AddPlayer joins a new active player with base tickets
func (r *Run) AddPlayer(name string) *domain.Player {
	p := r.state.addPlayer(name)
	r.log.Debug(LogMsgPlayerAdded, "player_id", p.ID, "name", p.Name)
	return p
}

// SetPlayerStatus activates or deactivates a player. The record persists either way.
func (r *Run) SetPlayerStatus(id int, status domain.PlayerStatus) error {
	if status != domain.PlayerStatusActive && status != domain.PlayerStatusInactive {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	p := r.state.Player(id)
	if p == nil {
		return fmt.Errorf("%w: %d", domain.ErrPlayerNotFound, id)
	}
	p.Status = status
	// A formula cap follows the active count, so it may just have shrunk
	r.state.clampAccumulators(r.cfg.AccumulatorCap.For(r.state.ActiveCount()))
	r.log.Debug(LogMsgPlayerStatusSet, "player_id", id, "status", status)
	return nil
}

// Simulate runs a fresh simulation to completion and returns its report.
// It shares nothing with other runs, so callers may run many in parallel.
func Simulate(cfg EconomyConfig, playerCount, spins int, opts ...Option) (Report, error) {
	run, err := NewRun(playerCount, cfg, opts...)
	if err != nil {
		return Report{}, err
	}
	run.Advance(spins)
	return run.Snapshot(), nil
}
