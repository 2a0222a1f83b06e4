package scenario

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages the scenarios available to the engine
type Registry struct {
	mu        sync.RWMutex
	scenarios map[string]Scenario
}

// NewRegistry creates an empty scenario registry
func NewRegistry() *Registry {
	return &Registry{
		scenarios: make(map[string]Scenario),
	}
}

// Register adds or replaces a scenario
func (r *Registry) Register(s Scenario) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scenarios[s.ID] = s
}

// Get retrieves a scenario by id
func (r *Registry) Get(id string) (Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.scenarios[id]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %s", ErrScenarioNotFound, id)
	}
	return s, nil
}

// Lookup resolves several ids in order
func (r *Registry) Lookup(ids ...string) ([]Scenario, error) {
	out := make([]Scenario, 0, len(ids))
	for _, id := range ids {
		s, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// List returns every scenario sorted by id
func (r *Registry) List() []Scenario {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scenarios := make([]Scenario, 0, len(r.scenarios))
	for _, s := range r.scenarios {
		scenarios = append(scenarios, s)
	}
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].ID < scenarios[j].ID })
	return scenarios
}

// Summaries returns summaries of all scenarios
func (r *Registry) Summaries() []Summary {
	scenarios := r.List()
	summaries := make([]Summary, len(scenarios))
	for i := range scenarios {
		summaries[i] = scenarios[i].ToSummary()
	}
	return summaries
}
