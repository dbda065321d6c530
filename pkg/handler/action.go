package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// ActionHandler performs its own action and then forwards the request.
type ActionHandler struct {
	BaseHandler
	name   string
	action Action
}

// New creates a named handler. The successor is supplied at creation, so
// chains are assembled terminal first; pass nil for the terminal node.
func New(name string, action Action, next Handler) (*ActionHandler, error) {
	h := &ActionHandler{
		name:   name,
		action: action,
	}
	if err := h.SetNext(next); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return h, nil
}

// isNil is declared here because the promoted BaseHandler method would
// dereference a nil *ActionHandler.
func (h *ActionHandler) isNil() bool { return h == nil }

// Name returns the handler name
func (h *ActionHandler) Name() string {
	return h.name
}

// Handle runs the node's action, then forwards iff a successor exists
func (h *ActionHandler) Handle(ctx context.Context, req *Request) error {
	if h.action != nil {
		if err := h.action(ctx, h.name, req); err != nil {
			return fmt.Errorf("%s: %w", h.name, err)
		}
	}
	return h.BaseHandler.Handle(ctx, req)
}

// LoggingAction returns the demo action: a structured log entry plus a
// human-readable line on w.
func LoggingAction(logger *slog.Logger, w io.Writer) Action {
	return func(ctx context.Context, name string, req *Request) error {
		logger.InfoContext(ctx, "handler: processing request",
			"handler", name, "requestID", req.ID, "data", req.Data)
		_, err := fmt.Fprintf(w, "%s handled: %s\n", name, req.Data)
		return err
	}
}
