package memento

import (
	"fmt"
	"io"
	"log/slog"
)

// Caretaker keeps a stack of snapshots for an originator. It never looks
// inside a snapshot.
type Caretaker struct {
	mementos   []*Memento
	originator *Originator
	out        io.Writer
	logger     *slog.Logger
}

// NewCaretaker creates a caretaker with an empty history
func NewCaretaker(originator *Originator, out io.Writer, logger *slog.Logger) *Caretaker {
	return &Caretaker{originator: originator, out: out, logger: logger}
}

// Backup pushes a snapshot of the originator's current state
func (c *Caretaker) Backup() error {
	fmt.Fprintln(c.out, "Caretaker: Saving Originator's state...") //nolint:errcheck
	m, err := c.originator.Save()
	if err != nil {
		c.logger.Error("Caretaker: backup failed", "error", err)
		return err
	}
	c.mementos = append(c.mementos, m)
	c.logger.Debug("Caretaker: snapshot saved", "mementoID", m.ID(), "depth", len(c.mementos))
	return nil
}

// Undo pops the most recent snapshot and restores it
func (c *Caretaker) Undo() error {
	if len(c.mementos) == 0 {
		return ErrNoSnapshots
	}
	last := len(c.mementos) - 1
	m := c.mementos[last]
	c.mementos = c.mementos[:last]

	fmt.Fprintf(c.out, "Caretaker: Restoring state to: %s\n", m.Name()) //nolint:errcheck
	if err := c.originator.Restore(m); err != nil {
		c.logger.Error("Caretaker: restore failed", "mementoID", m.ID(), "error", err)
		return err
	}
	return nil
}

// History lists snapshot names, oldest first
func (c *Caretaker) History() []string {
	names := make([]string, 0, len(c.mementos))
	for _, m := range c.mementos {
		names = append(names, m.Name())
	}
	return names
}

// ShowHistory writes the snapshot names to the caretaker's output
func (c *Caretaker) ShowHistory() {
	fmt.Fprintln(c.out, "Caretaker: Here's the list of mementos:") //nolint:errcheck
	for _, name := range c.History() {
		fmt.Fprintln(c.out, name) //nolint:errcheck
	}
}
