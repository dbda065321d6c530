// Package commands wraps requests into standalone objects that capture their
// parameters at construction and run later.
package commands

import (
	"context"
	"fmt"
	"io"
)

// Command is a request packaged for later execution.
type Command interface {
	Execute(ctx context.Context) error
}

// SimpleCommand does its work on its own
type SimpleCommand struct {
	Payload string
	out     io.Writer
}

// NewSimpleCommand captures payload for later execution
func NewSimpleCommand(payload string, out io.Writer) *SimpleCommand {
	return &SimpleCommand{Payload: payload, out: out}
}

// Execute implements Command
func (c *SimpleCommand) Execute(_ context.Context) error {
	_, err := fmt.Fprintf(c.out, "SimpleCommand: See, I can do simple things like printing (%s)\n", c.Payload)
	return err
}

// ComplexCommand delegates its work to a receiver
type ComplexCommand struct {
	receiver *Receiver
	A        string
	B        string
	out      io.Writer
}

// NewComplexCommand captures the receiver and both operation arguments
func NewComplexCommand(receiver *Receiver, a, b string, out io.Writer) *ComplexCommand {
	return &ComplexCommand{
		receiver: receiver,
		A:        a,
		B:        b,
		out:      out,
	}
}

// Execute runs both receiver operations in order
func (c *ComplexCommand) Execute(ctx context.Context) error {
	if _, err := fmt.Fprintln(c.out, "ComplexCommand: Complex stuff should be done by a receiver object."); err != nil {
		return err
	}
	if err := c.receiver.DoSomething(ctx, c.A); err != nil {
		return fmt.Errorf("receiver DoSomething: %w", err)
	}
	if err := c.receiver.DoSomethingElse(ctx, c.B); err != nil {
		return fmt.Errorf("receiver DoSomethingElse: %w", err)
	}
	return nil
}

// Receiver holds the business logic commands delegate to
type Receiver struct {
	out io.Writer
}

// NewReceiver creates a receiver writing to out
func NewReceiver(out io.Writer) *Receiver {
	return &Receiver{out: out}
}

// DoSomething works on a
func (r *Receiver) DoSomething(_ context.Context, a string) error {
	_, err := fmt.Fprintf(r.out, "Receiver: Working on (%s.)\n", a)
	return err
}

// DoSomethingElse also works on b
func (r *Receiver) DoSomethingElse(_ context.Context, b string) error {
	_, err := fmt.Fprintf(r.out, "Receiver: Also working on (%s.)\n", b)
	return err
}
