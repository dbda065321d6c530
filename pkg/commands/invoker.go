package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Invoker runs optional commands around its own work
type Invoker struct {
	onStart  Command
	onFinish Command
	out      io.Writer
	logger   *slog.Logger
}

// NewInvoker creates an invoker with no commands set
func NewInvoker(out io.Writer, logger *slog.Logger) *Invoker {
	return &Invoker{out: out, logger: logger}
}

// SetOnStart sets the command run before the invoker's work
func (i *Invoker) SetOnStart(c Command) {
	i.onStart = c
}

// SetOnFinish sets the command run after the invoker's work
func (i *Invoker) SetOnFinish(c Command) {
	i.onFinish = c
}

// DoSomethingImportant runs onStart, then its own work, then onFinish.
// Unset commands are skipped.
func (i *Invoker) DoSomethingImportant(ctx context.Context) error {
	if i.onStart != nil {
		if err := i.run(ctx, "onStart", i.onStart); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(i.out, "Invoker: ...doing something really important..."); err != nil {
		return err
	}

	if i.onFinish != nil {
		if err := i.run(ctx, "onFinish", i.onFinish); err != nil {
			return err
		}
	}
	return nil
}

func (i *Invoker) run(ctx context.Context, slot string, c Command) error {
	i.logger.Debug("Invoker: executing command", "slot", slot, "command", fmt.Sprintf("%T", c))
	if err := c.Execute(ctx); err != nil {
		i.logger.Error("Invoker: command failed", "slot", slot, "error", err)
		return fmt.Errorf("%s command: %w", slot, err)
	}
	return nil
}
