// Package observer provides synchronous fan-out of state changes to every
// attached observer.
package observer

import (
	"context"
)

// Observer defines the interface for observers that want to be notified of state changes
type Observer[T any] interface {
	// Update is called with the subject's new state
	Update(ctx context.Context, state T)
}

// Subject defines the interface for subjects that can be observed
type Subject[T any] interface {
	// Attach adds an observer to the list of observers
	Attach(observer Observer[T])

	// Detach removes an observer from the list of observers
	Detach(observer Observer[T])

	// Notify notifies all attached observers of the current state
	Notify(ctx context.Context)
}
