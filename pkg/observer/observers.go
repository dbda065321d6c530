package observer

import (
	"context"
	"fmt"
	"io"
)

// ConcreteObserverA reacts to small states
type ConcreteObserverA struct {
	out io.Writer
}

// NewConcreteObserverA creates an observer writing to out
func NewConcreteObserverA(out io.Writer) *ConcreteObserverA {
	return &ConcreteObserverA{out: out}
}

// Update implements Observer
func (o *ConcreteObserverA) Update(_ context.Context, state int) {
	if state < 3 {
		fmt.Fprintln(o.out, "ConcreteObserverA: Reacted to the event.") //nolint:errcheck
	}
}

// ConcreteObserverB reacts to zero and to states of two or more
type ConcreteObserverB struct {
	out io.Writer
}

// NewConcreteObserverB creates an observer writing to out
func NewConcreteObserverB(out io.Writer) *ConcreteObserverB {
	return &ConcreteObserverB{out: out}
}

// Update implements Observer
func (o *ConcreteObserverB) Update(_ context.Context, state int) {
	if state == 0 || state >= 2 {
		fmt.Fprintln(o.out, "ConcreteObserverB: Reacted to the event.") //nolint:errcheck
	}
}
