// Package notification separates what a notification service does from how a
// message is delivered. A Factory picks the delivery channel by name and a
// Service bridges to whichever channel it was given.
package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Kind names a delivery channel
type Kind string

// Supported delivery channels
const (
	KindEmail Kind = "email"
	KindSMS   Kind = "sms"
)

// Notification sends a message over one channel.
type Notification interface {
	Send(ctx context.Context) error
	Kind() Kind
}

// EmailNotification delivers by email.
type EmailNotification struct {
	out    io.Writer
	logger *slog.Logger
}

// Send implements Notification
func (n *EmailNotification) Send(ctx context.Context) error {
	n.logger.InfoContext(ctx, "EmailNotification: sending")
	_, err := fmt.Fprintln(n.out, "EMAIL Notification sent!!!")
	return err
}

// Kind implements Notification
func (n *EmailNotification) Kind() Kind { return KindEmail }

// SMSNotification delivers by SMS.
type SMSNotification struct {
	out    io.Writer
	logger *slog.Logger
}

// Send implements Notification
func (n *SMSNotification) Send(ctx context.Context) error {
	n.logger.InfoContext(ctx, "SMSNotification: sending")
	_, err := fmt.Fprintln(n.out, "SMS Notification sent!!!")
	return err
}

// Kind implements Notification
func (n *SMSNotification) Kind() Kind { return KindSMS }
