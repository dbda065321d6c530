// Package mediator routes events between components that never reference
// each other directly. Each component knows only the mediator; the mediator
// owns the routing table.
package mediator

import (
	"context"
	"log/slog"

	"github.com/amirasaad/patterns/pkg/eventbus"
)

// Event names emitted by the components
const (
	EventA = "A"
	EventD = "D"
)

// Mediator receives named events from components.
type Mediator interface {
	Notify(ctx context.Context, sender Component, event string)
}

// Component is a participant that reports events to a mediator.
type Component interface {
	SetMediator(m Mediator)
}

// Notified is the bus event published for every Notify call. Routes check
// Sender so that an event only fires from the component that owns it.
type Notified struct {
	Name   string
	Sender Component
}

// Type implements eventbus.Event
func (e Notified) Type() string { return e.Name }

// ConcreteMediator routes "A" from Component1 to Component2.DoC and
// "D" from Component2 to Component1.DoB.
type ConcreteMediator struct {
	component1 *Component1
	component2 *Component2
	bus        eventbus.Bus
	logger     *slog.Logger
}

// NewConcreteMediator wires both components to a new mediator and
// registers the fixed routes on a private event bus.
func NewConcreteMediator(c1 *Component1, c2 *Component2, logger *slog.Logger) *ConcreteMediator {
	return NewConcreteMediatorWithBus(c1, c2, eventbus.NewSimpleEventBus(logger), logger)
}

// NewConcreteMediatorWithBus is like NewConcreteMediator but registers the
// routes on bus.
func NewConcreteMediatorWithBus(c1 *Component1, c2 *Component2, bus eventbus.Bus, logger *slog.Logger) *ConcreteMediator {
	m := &ConcreteMediator{
		component1: c1,
		component2: c2,
		bus:        bus,
		logger:     logger,
	}
	c1.SetMediator(m)
	c2.SetMediator(m)

	m.bus.Subscribe(EventA, func(ctx context.Context, e eventbus.Event) error {
		if sender, ok := senderOf(e).(*Component1); !ok || sender != m.component1 {
			m.logger.Debug("Mediator: ignoring A from another sender")
			return nil
		}
		m.logger.Info("Mediator reacts on A and triggers following operations")
		return m.component2.DoC(ctx)
	})
	m.bus.Subscribe(EventD, func(ctx context.Context, e eventbus.Event) error {
		if sender, ok := senderOf(e).(*Component2); !ok || sender != m.component2 {
			m.logger.Debug("Mediator: ignoring D from another sender")
			return nil
		}
		m.logger.Info("Mediator reacts on D and triggers following operations")
		return m.component1.DoB(ctx)
	})

	return m
}

func senderOf(e eventbus.Event) Component {
	if n, ok := e.(Notified); ok {
		return n.Sender
	}
	return nil
}

// Notify routes event to its recipient. Events without a route are ignored.
func (m *ConcreteMediator) Notify(ctx context.Context, sender Component, event string) {
	logger := m.logger.With("event", event)
	if m.bus.Subscribers(event) == 0 {
		logger.Debug("Mediator: no route for event")
		return
	}
	if err := m.bus.Publish(ctx, Notified{Name: event, Sender: sender}); err != nil {
		logger.Error("Mediator: routed task failed", "error", err)
	}
}
