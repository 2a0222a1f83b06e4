package scenario

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarloSlots_Go/internal/domain"
	"github.com/osse101/CarloSlots_Go/internal/slots"
)

// TestDefaultCatalog verifies the embedded catalog parses and merges anchors
func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	assert.Len(t, c.Scenarios, 14)

	reg := c.Registry()

	live, err := reg.Get("live")
	require.NoError(t, err)
	assert.Equal(t, slots.DefaultConfig(), live.Economy)

	cap12, err := reg.Get("cap12-no-release-double")
	require.NoError(t, err)
	assert.Equal(t, slots.FixedCap(12), cap12.Economy.AccumulatorCap)
	assert.Equal(t, slots.BehaviorDouble, cap12.Economy.ReentryBehavior)
	assert.Equal(t, slots.BehaviorNone, cap12.Economy.ReleaseReentryBehavior)
	assert.Equal(t, 500, cap12.Economy.OverflowDivisor)

	halve, err := reg.Get("halve-cap12")
	require.NoError(t, err)
	assert.Equal(t, slots.BehaviorHalvePlusOne, halve.Economy.DeadSpinBehavior)
	assert.Equal(t, 12, halve.Economy.AccumulatorCap.For(20))

	aggressive, err := reg.Get("aggressive")
	require.NoError(t, err)
	assert.Equal(t, 750, aggressive.Economy.OverflowDivisor)
	assert.Equal(t, slots.BehaviorHalvePlusOne, aggressive.Economy.DeadSpinBehavior)

	adaptive, err := reg.Get("adaptive-half")
	require.NoError(t, err)
	assert.Equal(t, 17, adaptive.Economy.AccumulatorCap.For(20))

	churn, err := reg.Get("churn")
	require.NoError(t, err)
	assert.Len(t, churn.Steps, 3)

	compare, ok := c.Sweep("compare")
	require.True(t, ok)
	assert.Len(t, compare.Scenarios, 12)

	_, ok = c.Sweep("missing")
	assert.False(t, ok)
}

// TestLoadCatalog_Invalid verifies malformed catalogs are rejected
func TestLoadCatalog_Invalid(t *testing.T) {
	const economy = `
    economy:
      accumulator_cap: {formula: fixed, fixed: 12}
      dead_spin: double
      win_spin: double
      reentry: none
      ticket_cap: 500
      overflow_divisor: 500`

	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "scenarios: [unclosed"},
		{"no scenarios", "scenarios: []"},
		{"missing name", "scenarios:\n  - id: a" + economy},
		{"duplicate id", "scenarios:\n  - id: a\n    name: A" + economy + "\n  - id: a\n    name: B" + economy},
		{"bad economy", "scenarios:\n  - id: a\n    name: A" + strings.Replace(economy, "ticket_cap: 500", "ticket_cap: 0", 1)},
		{"unknown sweep scenario", "scenarios:\n  - id: a\n    name: A" + economy + "\nsweeps:\n  - id: s\n    scenarios: [b]\n    player_counts: [5]\n    spin_counts: [10]"},
		{"bad step action", "scenarios:\n  - id: a\n    name: A" + economy + "\n    steps:\n      - {at_spin: 1, action: explode}"},
		{"misspelled economy key", "scenarios:\n  - id: a\n    name: A" + strings.Replace(economy, "dead_spin", "dead_spn", 1)},
		{"unknown top-level key", "scenarios:\n  - id: a\n    name: A" + economy + "\nsweps: []"},
		{"empty document", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidScenario)
		})
	}
}

// TestLoadCatalog_ExtensionKeys verifies x- prefixed blocks can hold shared anchors
func TestLoadCatalog_ExtensionKeys(t *testing.T) {
	const doc = `
x-economies:
  base: &base
    accumulator_cap: {formula: base5}
    dead_spin: halve_plus_one
    win_spin: double
    reentry: none
    ticket_cap: 500
    overflow_divisor: 600
scenarios:
  - id: shared
    name: Shared economy
    economy:
      <<: *base
      back_to_back_odds: 100
`
	c, err := LoadCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, c.Scenarios, 1)

	econ := c.Scenarios[0].Economy
	assert.Equal(t, 600, econ.OverflowDivisor)
	assert.Equal(t, 100, econ.BackToBackOdds)
	assert.Equal(t, 25, econ.AccumulatorCap.For(20))
}

// TestLoadFile_Missing verifies a missing catalog file surfaces the path
func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("/nonexistent/catalog.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/catalog.yaml")
}

// TestRegistry verifies lookup, ordering and summaries
func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Scenario{ID: "b", Name: "B", Economy: slots.DefaultConfig()})
	reg.Register(Scenario{ID: "a", Name: "A", Economy: slots.DefaultConfig(), Steps: []Step{{AtSpin: 1, Action: ActionAddPlayer}}})

	_, err := reg.Get("zzz")
	assert.ErrorIs(t, err, domain.ErrScenarioNotFound)

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)

	found, err := reg.Lookup("b", "a")
	require.NoError(t, err)
	assert.Equal(t, "b", found[0].ID)

	_, err = reg.Lookup("a", "missing")
	assert.ErrorIs(t, err, ErrScenarioNotFound)

	summaries := reg.Summaries()
	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].StepCount)
	assert.Equal(t, "12", summaries[0].AccumulatorCap)
	assert.Equal(t, "double", summaries[0].DeadSpin)
}
