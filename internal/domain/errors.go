package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgInvalidConfig      = "invalid economy config"
	ErrMsgInvalidPlayerCount = "invalid player count"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgInvalidStatus  = "invalid player status"

	// Scenario errors
	ErrMsgScenarioNotFound = "scenario not found"
	ErrMsgInvalidScenario  = "invalid scenario"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidConfig      = errors.New(ErrMsgInvalidConfig)
	ErrInvalidPlayerCount = errors.New(ErrMsgInvalidPlayerCount)

	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrInvalidStatus  = errors.New(ErrMsgInvalidStatus)

	ErrScenarioNotFound = errors.New(ErrMsgScenarioNotFound)
	ErrInvalidScenario  = errors.New(ErrMsgInvalidScenario)
)
