package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

var _ Bus = (*SimpleEventBus)(nil)

// SimpleEventBus delivers each event to the handlers subscribed to its type,
// in subscription order, on the caller's goroutine.
type SimpleEventBus struct {
	handlers map[string][]HandlerFunc
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewSimpleEventBus creates an empty bus
func NewSimpleEventBus(logger *slog.Logger) *SimpleEventBus {
	return &SimpleEventBus{
		handlers: make(map[string][]HandlerFunc),
		logger:   logger,
	}
}

// Publish calls every handler for event.Type(). All handlers run even if one
// fails; their errors are joined.
func (b *SimpleEventBus) Publish(ctx context.Context, event Event) error {
	b.logger.Debug("EventBus.Publish", "event_type", event.Type(), "concrete_type", fmt.Sprintf("%T", event))
	b.mu.RLock()
	handlers := slices.Clone(b.handlers[event.Type()])
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.logger.Debug("EventBus.Publish: no subscribers", "event_type", event.Type())
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Subscribe registers handler for eventType
func (b *SimpleEventBus) Subscribe(eventType string, handler HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Subscribers returns how many handlers are registered for eventType
func (b *SimpleEventBus) Subscribers(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
