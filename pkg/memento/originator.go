package memento

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
)

const stateAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Originator owns some state it can snapshot and restore.
type Originator struct {
	state  string
	out    io.Writer
	logger *slog.Logger
}

// NewOriginator creates an originator with an initial state
func NewOriginator(state string, out io.Writer, logger *slog.Logger) *Originator {
	o := &Originator{state: state, out: out, logger: logger}
	o.printf("Originator: My initial state is: %s\n", state)
	return o
}

// State returns the current state
func (o *Originator) State() string {
	return o.state
}

// DoSomething replaces the state with a fresh random value
func (o *Originator) DoSomething() {
	o.printf("Originator: I'm doing something important.\n")
	o.state = randomState(30)
	o.printf("Originator: and my state has changed to: %s\n", o.state)
}

// Save snapshots the current state
func (o *Originator) Save() (*Memento, error) {
	return newMemento(o.state)
}

// Restore replaces the current state with the one in m
func (o *Originator) Restore(m *Memento) error {
	if m == nil {
		return ErrNilMemento
	}
	state, err := m.state()
	if err != nil {
		return err
	}
	o.state = state
	o.printf("Originator: My state has changed to: %s\n", o.state)
	return nil
}

func (o *Originator) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(o.out, format, args...); err != nil {
		o.logger.Error("Originator: failed to write output", "error", err)
	}
}

func randomState(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = stateAlphabet[rand.IntN(len(stateAlphabet))]
	}
	return string(b)
}
