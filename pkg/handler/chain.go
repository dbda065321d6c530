package handler

import (
	"context"
	"log/slog"
)

// Chain provides a simplified interface for dispatching payloads through a chain
type Chain struct {
	head   Handler
	logger *slog.Logger
}

// NewChain wraps the head of an existing chain
func NewChain(head Handler, logger *slog.Logger) *Chain {
	return &Chain{
		head:   head,
		logger: logger,
	}
}

// Dispatch wraps data in a new request and hands it to the head of the chain
func (c *Chain) Dispatch(ctx context.Context, data string) (*Request, error) {
	req := NewRequest(data)
	logger := c.logger.With("requestID", req.ID)
	logger.Info("Chain: dispatching request")

	if err := c.head.Handle(ctx, req); err != nil {
		logger.Error("Chain: dispatch failed", "error", err)
		return req, err
	}

	logger.Info("Chain: request reached end of chain")
	return req, nil
}
