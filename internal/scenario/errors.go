package scenario

import (
	"fmt"

	"github.com/osse101/CarloSlots_Go/internal/domain"
)

// Common errors for the scenario engine
var (
	// ErrScenarioNotFound indicates the requested scenario was not found
	ErrScenarioNotFound = domain.ErrScenarioNotFound

	// ErrInvalidScenario indicates a scenario or sweep definition is malformed
	ErrInvalidScenario = domain.ErrInvalidScenario
)

// StepError represents an error that occurred while applying a scheduled step
type StepError struct {
	StepIndex int
	Step      Step
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (action: %s at spin %d): %v", e.StepIndex, e.Step.Action, e.Step.AtSpin, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// NewStepError creates a new StepError
func NewStepError(step Step, index int, err error) *StepError {
	return &StepError{
		StepIndex: index,
		Step:      step,
		Err:       err,
	}
}
