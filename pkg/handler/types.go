package handler

import (
	"context"

	"github.com/google/uuid"
)

// Handler defines the interface for a node in a chain of responsibility.
type Handler interface {
	Handle(ctx context.Context, req *Request) error
	// SetNext replaces the successor. It fails if the successor would
	// lead back to this handler.
	SetNext(handler Handler) error
	// Next returns the successor, if any. The terminal node reports false.
	Next() (Handler, bool)
}

// Request is the payload every handler in a chain agrees to accept.
// Handlers read it; none of them mutate it.
type Request struct {
	ID   uuid.UUID
	Data string
}

// NewRequest creates a request with a fresh correlation id
func NewRequest(data string) *Request {
	return &Request{
		ID:   uuid.New(),
		Data: data,
	}
}

// Action is the work a single node contributes before forwarding.
type Action func(ctx context.Context, name string, req *Request) error
