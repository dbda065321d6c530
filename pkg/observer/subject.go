package observer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"reflect"
	"slices"
)

// StateSubject holds an integer state and notifies observers when it changes.
type StateSubject struct {
	state     int
	observers []Observer[int]
	next      func() int
	out       io.Writer
	logger    *slog.Logger
}

// NewStateSubject creates a subject whose business logic draws states in [0, 10)
func NewStateSubject(out io.Writer, logger *slog.Logger) *StateSubject {
	return &StateSubject{
		next:   func() int { return rand.IntN(10) },
		out:    out,
		logger: logger,
	}
}

// State returns the current state
func (s *StateSubject) State() int {
	return s.state
}

// Attach implements Subject. Any observer can be attached, but only
// observers of a comparable type (pointers, for instance) can be detached.
func (s *StateSubject) Attach(o Observer[int]) {
	if o == nil {
		s.logger.Debug("Subject: ignoring nil observer")
		return
	}
	fmt.Fprintln(s.out, "Subject: Attached an observer.") //nolint:errcheck
	s.observers = append(s.observers, o)
}

// Detach implements Subject. Observers are matched with ==; an observer of
// an uncomparable type, such as a func, is never found and stays attached.
func (s *StateSubject) Detach(o Observer[int]) {
	if o == nil || !reflect.TypeOf(o).Comparable() {
		s.logger.Warn("Subject: observer cannot be detached", "type", fmt.Sprintf("%T", o))
		return
	}
	// == between different dynamic types is false, so only entries of o's
	// own comparable type are ever compared.
	i := slices.Index(s.observers, o)
	if i < 0 {
		s.logger.Debug("Subject: observer not attached")
		return
	}
	s.observers = slices.Delete(s.observers, i, i+1)
	fmt.Fprintln(s.out, "Subject: Detached an observer.") //nolint:errcheck
}

// Notify implements Subject
func (s *StateSubject) Notify(ctx context.Context) {
	fmt.Fprintln(s.out, "Subject: Notifying observers...") //nolint:errcheck
	s.logger.Debug("Subject: notifying", "observers", len(s.observers), "state", s.state)
	for _, o := range slices.Clone(s.observers) {
		o.Update(ctx, s.state)
	}
}

// SetState replaces the state and notifies observers
func (s *StateSubject) SetState(ctx context.Context, state int) {
	s.state = state
	fmt.Fprintf(s.out, "Subject: My state has just changed to: %d\n", s.state) //nolint:errcheck
	s.Notify(ctx)
}

// SomeBusinessLogic changes the state and notifies observers
func (s *StateSubject) SomeBusinessLogic(ctx context.Context) {
	fmt.Fprintln(s.out, "Subject: I'm doing something important.") //nolint:errcheck
	s.SetState(ctx, s.next())
}
