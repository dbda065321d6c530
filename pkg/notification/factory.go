package notification

import (
	"context"
	"io"
	"log/slog"
)

// Factory creates notifications that write to a shared output
type Factory struct {
	out    io.Writer
	logger *slog.Logger
}

// NewFactory creates a new notification factory
func NewFactory(out io.Writer, logger *slog.Logger) *Factory {
	return &Factory{
		out:    out,
		logger: logger,
	}
}

// Create returns the email variant for "email" and the SMS variant for
// anything else, including unknown and empty names.
func (f *Factory) Create(kind string) Notification {
	switch Kind(kind) {
	case KindEmail:
		return &EmailNotification{out: f.out, logger: f.logger}
	case KindSMS:
	default:
		f.logger.Debug("Factory: unrecognized kind, falling back to sms", "kind", kind)
	}
	return &SMSNotification{out: f.out, logger: f.logger}
}

// Service is the abstraction side of the bridge; it delegates delivery to
// the notification it was built with.
type Service struct {
	notification Notification
}

// NewService creates a service bound to one delivery channel
func NewService(n Notification) *Service {
	return &Service{notification: n}
}

// Send delivers through the bound channel
func (s *Service) Send(ctx context.Context) error {
	return s.notification.Send(ctx)
}
