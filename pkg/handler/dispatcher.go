package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

var (
	// ErrUnknownHandler is returned when a route names an unregistered step
	ErrUnknownHandler = errors.New("unknown handler")
	// ErrDuplicateHandler is returned when a step id is registered twice
	ErrDuplicateHandler = errors.New("handler already registered")
)

// Step is a unit of work addressed by id rather than linked to a successor.
type Step interface {
	Process(ctx context.Context, req *Request) error
}

// StepFunc is an adapter to allow the use of ordinary functions as Step.
type StepFunc func(ctx context.Context, req *Request) error

// Process implements the Step interface.
func (f StepFunc) Process(ctx context.Context, req *Request) error {
	return f(ctx, req)
}

// Dispatcher runs registered steps in an explicit, re-routable order.
// Steps hold no references to each other, so a route can be changed at
// runtime without rebuilding any of them.
type Dispatcher struct {
	steps  map[string]Step
	route  []string
	logger *slog.Logger
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		steps:  make(map[string]Step),
		logger: logger,
	}
}

// Register adds a step under id
func (d *Dispatcher) Register(id string, step Step) error {
	if _, ok := d.steps[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateHandler, id)
	}
	d.steps[id] = step
	return nil
}

// Route replaces the dispatch order. Every id must already be registered.
func (d *Dispatcher) Route(ids ...string) error {
	for _, id := range ids {
		if _, ok := d.steps[id]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownHandler, id)
		}
	}
	d.route = slices.Clone(ids)
	d.logger.Debug("Dispatcher: route updated", "route", ids)
	return nil
}

// Routes returns a copy of the current dispatch order
func (d *Dispatcher) Routes() []string {
	return slices.Clone(d.route)
}

// Dispatch runs each routed step once, in order, stopping at the first error
func (d *Dispatcher) Dispatch(ctx context.Context, req *Request) error {
	logger := d.logger.With("requestID", req.ID)
	for _, id := range d.route {
		logger.Debug("Dispatcher: running step", "step", id)
		if err := d.steps[id].Process(ctx, req); err != nil {
			logger.Error("Dispatcher: step failed", "step", id, "error", err)
			return fmt.Errorf("%s: %w", id, err)
		}
	}
	return nil
}
