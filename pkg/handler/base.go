package handler

import (
	"context"
	"errors"
)

var (
	// ErrCycle is returned when a successor would lead back to the handler
	ErrCycle = errors.New("successor would create a cycle")
	// ErrNilHandler is returned when a successor is a typed nil pointer
	ErrNilHandler = errors.New("successor must not be a nil handler")
)

// linked is implemented by handlers that embed BaseHandler. It lets SetNext
// recognise nodes without comparing interface values.
type linked interface {
	link() *BaseHandler
	isNil() bool
}

// BaseHandler provides the forward link shared by all handlers
type BaseHandler struct {
	next Handler
}

func (h *BaseHandler) link() *BaseHandler { return h }

func (h *BaseHandler) isNil() bool { return h == nil }

// SetNext sets the next handler in the chain. Passing nil makes the handler
// terminal; a typed nil pointer is rejected with ErrNilHandler. A successor
// whose chain reaches back to h is rejected with ErrCycle. The walk stops at
// the first handler that does not embed BaseHandler.
func (h *BaseHandler) SetNext(handler Handler) error {
	if handler == nil {
		h.next = nil
		return nil
	}

	if l, ok := handler.(linked); ok && l.isNil() {
		return ErrNilHandler
	}

	seen := map[*BaseHandler]struct{}{}
	for node, ok := handler, true; ok; node, ok = node.Next() {
		l, linkable := node.(linked)
		if !linkable || l.isNil() {
			break
		}
		base := l.link()
		if base == h {
			return ErrCycle
		}
		if _, dup := seen[base]; dup {
			break
		}
		seen[base] = struct{}{}
	}

	h.next = handler
	return nil
}

// Next returns the successor and whether one exists
func (h *BaseHandler) Next() (Handler, bool) {
	if h.next == nil {
		return nil, false
	}
	return h.next, true
}

// Handle passes the request to the next handler in the chain.
// Reaching the end of the chain is not an error.
func (h *BaseHandler) Handle(ctx context.Context, req *Request) error {
	next, ok := h.Next()
	if !ok {
		return nil
	}
	return next.Handle(ctx, req)
}
