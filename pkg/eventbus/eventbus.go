// Package eventbus provides a synchronous, in-process publish/subscribe bus.
package eventbus

import (
	"context"
)

// Event is anything that can be routed by its type name.
type Event interface {
	Type() string
}

// HandlerFunc receives a published event.
type HandlerFunc func(ctx context.Context, event Event) error

// Bus defines the contract for publishing and subscribing to events.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType string, handler HandlerFunc)
	// Subscribers reports how many handlers eventType currently has.
	Subscribers(eventType string) int
}
