package slots

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CarloSlots_Go/internal/domain"
)

// Behavior selects how an untouched player's tickets move after a spin
type Behavior string

const (
	BehaviorDouble       Behavior = "double"
	BehaviorHalvePlusOne Behavior = "halve_plus_one"
	BehaviorNone         Behavior = "none"
)

// AccumulatorCap is either a fixed spark ceiling or a formula of the active player count
type AccumulatorCap struct {
	Formula string `yaml:"formula" json:"formula" validate:"required,oneof=fixed base5 half"`
	Fixed   int    `yaml:"fixed,omitempty" json:"fixed,omitempty" validate:"gte=0"`
}

// FixedCap returns a constant accumulator cap
func FixedCap(n int) AccumulatorCap {
	return AccumulatorCap{Formula: CapFormulaFixed, Fixed: n}
}

// For evaluates the cap for the current active player count
func (c AccumulatorCap) For(activePlayers int) int {
	switch c.Formula {
	case CapFormulaBase5:
		return CapBase5Offset + activePlayers
	case CapFormulaHalf:
		return CapHalfOffset + activePlayers/CapHalfDivisor
	default:
		return c.Fixed
	}
}

func (c AccumulatorCap) String() string {
	switch c.Formula {
	case CapFormulaBase5:
		return "5+players"
	case CapFormulaHalf:
		return "7+players/2"
	default:
		return fmt.Sprintf("%d", c.Fixed)
	}
}

// EconomyConfig is the immutable per-run economy configuration
type EconomyConfig struct {
	AccumulatorCap   AccumulatorCap `yaml:"accumulator_cap" json:"accumulator_cap"`
	DeadSpinBehavior Behavior       `yaml:"dead_spin" json:"dead_spin" validate:"required,oneof=double halve_plus_one"`
	WinSpinBehavior  Behavior       `yaml:"win_spin" json:"win_spin" validate:"required,oneof=double none"`
	ReentryBehavior  Behavior       `yaml:"reentry" json:"reentry" validate:"required,oneof=double none"`

	// ReleaseReentryBehavior overrides ReentryBehavior after guaranteed releases.
	// Empty follows ReentryBehavior.
	ReleaseReentryBehavior Behavior `yaml:"release_reentry,omitempty" json:"release_reentry,omitempty" validate:"omitempty,oneof=double none"`

	TicketCap       int `yaml:"ticket_cap" json:"ticket_cap" validate:"min=1"`
	OverflowDivisor int `yaml:"overflow_divisor" json:"overflow_divisor" validate:"min=1"`

	// BackToBackOdds is N in the 1-in-N chance that a win may follow a win.
	// Zero disables the suppression entirely.
	BackToBackOdds   int `yaml:"back_to_back_odds" json:"back_to_back_odds" validate:"gte=0"`
	SnapshotInterval int `yaml:"snapshot_interval" json:"snapshot_interval" validate:"gte=0"`
}

// releaseReentry resolves the behavior applied after a guaranteed release
func (c EconomyConfig) releaseReentry() Behavior {
	if c.ReleaseReentryBehavior == "" {
		return c.ReentryBehavior
	}
	return c.ReleaseReentryBehavior
}

// DefaultConfig returns the live-table economy
func DefaultConfig() EconomyConfig {
	return EconomyConfig{
		AccumulatorCap:   FixedCap(DefaultAccumulatorCap),
		DeadSpinBehavior: BehaviorDouble,
		WinSpinBehavior:  BehaviorDouble,
		ReentryBehavior:  BehaviorNone,
		TicketCap:        DefaultTicketCap,
		OverflowDivisor:  DefaultOverflowDivisor,
		BackToBackOdds:   DefaultBackToBackOdds,
		SnapshotInterval: DefaultSnapshotInterval,
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterStructValidation(validateAccumulatorCap, AccumulatorCap{})
	})
	return validate
}

func validateAccumulatorCap(sl validator.StructLevel) {
	c := sl.Current().Interface().(AccumulatorCap)
	if c.Formula == CapFormulaFixed && c.Fixed < 1 {
		sl.ReportError(c.Fixed, "Fixed", "fixed", "min", "1")
	}
}

// Validate checks the config for malformed values. It is the only hard
// failure the engine reports.
func (c EconomyConfig) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, ErrContextValidateConfig, err)
	}
	return nil
}
