package mediator

import (
	"context"
	"fmt"
	"io"
)

// BaseComponent holds the mediator reference shared by all components
type BaseComponent struct {
	mediator Mediator
}

// SetMediator implements Component
func (c *BaseComponent) SetMediator(m Mediator) {
	c.mediator = m
}

func (c *BaseComponent) notify(ctx context.Context, sender Component, event string) {
	if c.mediator != nil {
		c.mediator.Notify(ctx, sender, event)
	}
}

// Component1 performs tasks A and B.
type Component1 struct {
	BaseComponent
	out io.Writer
}

// NewComponent1 creates a component writing to out
func NewComponent1(out io.Writer) *Component1 {
	return &Component1{out: out}
}

// DoA performs task A and reports it to the mediator
func (c *Component1) DoA(ctx context.Context) error {
	if _, err := fmt.Fprintln(c.out, "Component 1 does A."); err != nil {
		return err
	}
	c.notify(ctx, c, EventA)
	return nil
}

// DoB performs task B
func (c *Component1) DoB(_ context.Context) error {
	_, err := fmt.Fprintln(c.out, "Component 1 does B.")
	return err
}

// Component2 performs tasks C and D.
type Component2 struct {
	BaseComponent
	out io.Writer
}

// NewComponent2 creates a component writing to out
func NewComponent2(out io.Writer) *Component2 {
	return &Component2{out: out}
}

// DoC performs task C
func (c *Component2) DoC(_ context.Context) error {
	_, err := fmt.Fprintln(c.out, "Component 2 does C.")
	return err
}

// DoD performs task D and reports it to the mediator
func (c *Component2) DoD(ctx context.Context) error {
	if _, err := fmt.Fprintln(c.out, "Component 2 does D."); err != nil {
		return err
	}
	c.notify(ctx, c, EventD)
	return nil
}
