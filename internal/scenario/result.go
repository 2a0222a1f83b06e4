package scenario

import (
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/osse101/CarloSlots_Go/internal/slots"
	"github.com/osse101/CarloSlots_Go/internal/stats"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Result is the outcome of running one scenario at one table size
type Result struct {
	ScenarioID  string            `json:"scenario_id"`
	Name        string            `json:"name"`
	Players     int               `json:"players"`
	Spins       int               `json:"spins"`
	Seed        uint64            `json:"seed"`
	Success     bool              `json:"success"`
	Cached      bool              `json:"cached"`
	DurationMS  int64             `json:"duration_ms"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at"`
	Report      slots.Report      `json:"report"`
	Analysis    stats.Analysis    `json:"analysis"`
	Steps       []StepResult      `json:"steps,omitempty"`
	Assertions  []AssertionResult `json:"assertions,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// StepResult records a scheduled table change
type StepResult struct {
	StepIndex int        `json:"step_index"`
	AtSpin    int        `json:"at_spin"`
	Action    ActionType `json:"action"`
	PlayerID  int        `json:"player_id,omitempty"`
	Success   bool       `json:"success"`
	Error     string     `json:"error,omitempty"`
}

// AssertionResult represents the result of a single assertion
type AssertionResult struct {
	Type     AssertionType `json:"type"`
	Path     string        `json:"path"`
	Expected interface{}   `json:"expected,omitempty"`
	Actual   interface{}   `json:"actual,omitempty"`
	Passed   bool          `json:"passed"`
	Reason   string        `json:"reason,omitempty"`
	Error    string        `json:"error,omitempty"`
}

func newResult(sc Scenario, players, spins int, seed uint64) *Result {
	return &Result{
		ScenarioID: sc.ID,
		Name:       sc.Name,
		Players:    players,
		Spins:      spins,
		Seed:       seed,
		Success:    true, // Assume success until proven otherwise
		StartedAt:  time.Now(),
	}
}

// Complete marks the run as complete and calculates duration
func (r *Result) Complete() {
	r.CompletedAt = time.Now()
	r.DurationMS = r.CompletedAt.Sub(r.StartedAt).Milliseconds()
}

// AddStepResult adds a step result and updates overall success
func (r *Result) AddStepResult(step StepResult) {
	r.Steps = append(r.Steps, step)
	if !step.Success {
		r.Success = false
	}
}

// AddAssertionResult adds an assertion result and updates overall success
func (r *Result) AddAssertionResult(a AssertionResult) {
	r.Assertions = append(r.Assertions, a)
	if !a.Passed {
		r.Success = false
	}
}

// PassedAssertions returns the number of passed assertions
func (r *Result) PassedAssertions() int {
	passed := 0
	for _, a := range r.Assertions {
		if a.Passed {
			passed++
		}
	}
	return passed
}

// FailedAssertions returns the number of failed assertions
func (r *Result) FailedAssertions() int {
	return len(r.Assertions) - r.PassedAssertions()
}
