// Package state lets a Context change its behavior by swapping the State it
// delegates to.
package state

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// State is one behavior a Context can delegate to.
type State interface {
	SetContext(c *Context)
	Handle1(ctx context.Context)
	Handle2(ctx context.Context)
	Name() string
}

// Context delegates its requests to the current State.
type Context struct {
	state  State
	out    io.Writer
	logger *slog.Logger
}

// NewContext creates a context starting in initial
func NewContext(initial State, out io.Writer, logger *slog.Logger) *Context {
	c := &Context{out: out, logger: logger}
	c.TransitionTo(initial)
	return c
}

// State returns the active state
func (c *Context) State() State {
	return c.state
}

// TransitionTo replaces the active state
func (c *Context) TransitionTo(s State) {
	from := "none"
	if c.state != nil {
		from = c.state.Name()
	}
	c.logger.Info("Context: transition", "from", from, "to", s.Name())
	c.say("Context: Transition to " + s.Name() + ".")
	c.state = s
	s.SetContext(c)
}

func (c *Context) say(line string) {
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		c.logger.Error("Context: failed to write output", "error", err)
	}
}

// Request1 delegates to the active state's Handle1
func (c *Context) Request1(ctx context.Context) {
	c.state.Handle1(ctx)
}

// Request2 delegates to the active state's Handle2
func (c *Context) Request2(ctx context.Context) {
	c.state.Handle2(ctx)
}

// BaseState holds the back reference to the owning Context
type BaseState struct {
	context *Context
}

// SetContext implements State
func (s *BaseState) SetContext(c *Context) {
	s.context = c
}

// ConcreteStateA handles request 1 by moving to B
type ConcreteStateA struct {
	BaseState
}

// Name implements State
func (s *ConcreteStateA) Name() string { return "ConcreteStateA" }

// Handle1 implements State
func (s *ConcreteStateA) Handle1(_ context.Context) {
	s.context.say("ConcreteStateA handles request1.")
	s.context.say("ConcreteStateA wants to change the state of the context.")
	s.context.TransitionTo(&ConcreteStateB{})
}

// Handle2 implements State
func (s *ConcreteStateA) Handle2(_ context.Context) {
	s.context.say("ConcreteStateA handles request2.")
}

// ConcreteStateB handles request 2 by moving to A
type ConcreteStateB struct {
	BaseState
}

// Name implements State
func (s *ConcreteStateB) Name() string { return "ConcreteStateB" }

// Handle1 implements State
func (s *ConcreteStateB) Handle1(_ context.Context) {
	s.context.say("ConcreteStateB handles request1.")
}

// Handle2 implements State
func (s *ConcreteStateB) Handle2(_ context.Context) {
	s.context.say("ConcreteStateB handles request2.")
	s.context.say("ConcreteStateB wants to change the state of the context.")
	s.context.TransitionTo(&ConcreteStateA{})
}
