package handler

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrEmptyChain is returned when a chain is built without any handler names
var ErrEmptyChain = errors.New("chain must contain at least one handler")

// ChainBuilder builds chains of ActionHandlers sharing one action
type ChainBuilder struct {
	action Action
	logger *slog.Logger
}

// NewChainBuilder creates a new chain builder
func NewChainBuilder(action Action, logger *slog.Logger) *ChainBuilder {
	return &ChainBuilder{
		action: action,
		logger: logger,
	}
}

// Build wires the named handlers front to back and returns the head.
// Nodes are created bottom-up so each constructor receives its successor.
func (b *ChainBuilder) Build(names ...string) (Handler, error) {
	if len(names) == 0 {
		return nil, ErrEmptyChain
	}

	var next Handler
	for i := len(names) - 1; i >= 0; i-- {
		h, err := New(names[i], b.action, next)
		if err != nil {
			return nil, err
		}
		next = h
	}

	b.logger.Debug("ChainBuilder: chain built", "handlers", names)
	return next, nil
}

// BuildN builds a chain of n handlers named handler-1 .. handler-n
func (b *ChainBuilder) BuildN(n int) (Handler, error) {
	if n < 1 {
		return nil, ErrEmptyChain
	}
	names := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		names = append(names, fmt.Sprintf("handler-%d", i))
	}
	return b.Build(names...)
}
