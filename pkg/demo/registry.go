package demo

import (
	"context"
	"fmt"
)

// Runner runs a single scenario
type Runner func(ctx context.Context, env Env) error

// Scenario is a named, runnable demo
type Scenario struct {
	Name        string
	Description string
	Run         Runner
}

// Registry holds scenarios in a fixed order
type Registry struct {
	scenarios []Scenario
	byName    map[string]Scenario
}

// NewRegistry creates a registry from scenarios, keeping their order.
// The first scenario with a given name wins; later duplicates are dropped.
func NewRegistry(scenarios ...Scenario) *Registry {
	r := &Registry{byName: make(map[string]Scenario, len(scenarios))}
	for _, s := range scenarios {
		if _, ok := r.byName[s.Name]; ok {
			continue
		}
		r.scenarios = append(r.scenarios, s)
		r.byName[s.Name] = s
	}
	return r
}

// DefaultRegistry returns every built-in scenario
func DefaultRegistry() *Registry {
	return NewRegistry(
		Scenario{Name: "notification", Description: "factory + bridge", Run: Notification},
		Scenario{Name: "decorator", Description: "service decorator", Run: Decorator},
		Scenario{Name: "chain", Description: "chain of responsibility", Run: Chain},
		Scenario{Name: "dispatcher", Description: "re-routable handler dispatcher", Run: Dispatcher},
		Scenario{Name: "command", Description: "command + invoker", Run: Command},
		Scenario{Name: "mediator", Description: "mediator", Run: Mediator},
		Scenario{Name: "memento", Description: "memento + caretaker", Run: Memento},
		Scenario{Name: "observer", Description: "observer", Run: Observer},
		Scenario{Name: "state", Description: "state", Run: State},
	)
}

// All returns scenario names in registration order
func (r *Registry) All() []string {
	names := make([]string, 0, len(r.scenarios))
	for _, s := range r.scenarios {
		names = append(names, s.Name)
	}
	return names
}

// Get looks up a scenario by name
func (r *Registry) Get(name string) (Scenario, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Run runs the named scenario
func (r *Registry) Run(ctx context.Context, name string, env Env) error {
	s, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}
	env.Logger.Debug("Running scenario", "scenario", name)
	if err := s.Run(ctx, env); err != nil {
		return fmt.Errorf("scenario %s: %w", name, err)
	}
	return nil
}
