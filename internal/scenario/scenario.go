package scenario

import (
	"github.com/osse101/CarloSlots_Go/internal/slots"
)

// ActionType defines what a scheduled step does to the table
type ActionType string

const (
	ActionDeactivate ActionType = "deactivate"
	ActionActivate   ActionType = "activate"
	ActionAddPlayer  ActionType = "add_player"
)

// AssertionType defines the type of assertion
type AssertionType string

const (
	AssertEquals      AssertionType = "equals"
	AssertGreaterThan AssertionType = "greater_than"
	AssertLessThan    AssertionType = "less_than"
	AssertBetween     AssertionType = "between"
	AssertTrue        AssertionType = "true"
	AssertFalse       AssertionType = "false"
	AssertNotEmpty    AssertionType = "not_empty"
)

// Scenario is a named economy configuration, optionally with table changes
// scheduled mid-run and assertions checked against the final report.
type Scenario struct {
	ID          string              `yaml:"id" json:"id" validate:"required"`
	Name        string              `yaml:"name" json:"name" validate:"required"`
	Description string              `yaml:"description,omitempty" json:"description,omitempty"`
	Economy     slots.EconomyConfig `yaml:"economy" json:"economy"`
	Steps       []Step              `yaml:"steps,omitempty" json:"steps,omitempty" validate:"dive"`
	Assertions  []Assertion         `yaml:"assertions,omitempty" json:"assertions,omitempty" validate:"dive"`
}

// Step changes the table before the spin with index AtSpin
type Step struct {
	AtSpin   int        `yaml:"at_spin" json:"at_spin" validate:"gte=0"`
	Action   ActionType `yaml:"action" json:"action" validate:"required,oneof=deactivate activate add_player"`
	PlayerID int        `yaml:"player_id,omitempty" json:"player_id,omitempty"`
	Name     string     `yaml:"name,omitempty" json:"name,omitempty"`
}

// Assertion defines an expected property of the final report
type Assertion struct {
	Type   AssertionType `yaml:"type" json:"type" validate:"required"`
	Path   string        `yaml:"path" json:"path" validate:"required"` // dotted path into the report or analysis
	Value  interface{}   `yaml:"value,omitempty" json:"value,omitempty"`
	Min    interface{}   `yaml:"min,omitempty" json:"min,omitempty"` // For between assertions
	Max    interface{}   `yaml:"max,omitempty" json:"max,omitempty"` // For between assertions
	Reason string        `yaml:"reason,omitempty" json:"reason,omitempty"`
}

// Sweep is a preset grid of player counts and spin counts
type Sweep struct {
	ID           string   `yaml:"id" json:"id" validate:"required"`
	Name         string   `yaml:"name" json:"name"`
	Scenarios    []string `yaml:"scenarios" json:"scenarios" validate:"min=1"`
	PlayerCounts []int    `yaml:"player_counts" json:"player_counts" validate:"min=1,dive,min=0,max=75"`
	SpinCounts   []int    `yaml:"spin_counts" json:"spin_counts" validate:"min=1,dive,min=1"`
}

// Summary provides a brief overview of a scenario for listing
type Summary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	AccumulatorCap string `json:"accumulator_cap"`
	DeadSpin       string `json:"dead_spin"`
	Divisor        int    `json:"overflow_divisor"`
	StepCount      int    `json:"step_count"`
}

// ToSummary converts a Scenario to a Summary
func (s *Scenario) ToSummary() Summary {
	return Summary{
		ID:             s.ID,
		Name:           s.Name,
		Description:    s.Description,
		AccumulatorCap: s.Economy.AccumulatorCap.String(),
		DeadSpin:       string(s.Economy.DeadSpinBehavior),
		Divisor:        s.Economy.OverflowDivisor,
		StepCount:      len(s.Steps),
	}
}
