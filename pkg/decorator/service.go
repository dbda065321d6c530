// Package decorator provides a service decorator that post-processes the
// output of any wrapped Service. Services that report a basic operation are
// upgraded to the advance operation; anything else passes through.
package decorator

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	basicMarker   = "basic"
	advanceMarker = "advance"
)

// Service defines a single operation over a statement.
type Service interface {
	PerformOperation(statement string) string
}

// BasicService implements the basic operation
type BasicService struct{}

// PerformOperation implements Service
func (BasicService) PerformOperation(statement string) string {
	return "This is logged using basic operation -> " + statement
}

// AdvanceService implements the advance operation
type AdvanceService struct{}

// PerformOperation implements Service
func (AdvanceService) PerformOperation(statement string) string {
	return "This is logged using advance operation -> " + statement
}

// ServiceDecorator wraps a Service and post-processes its output.
//
// When the wrapped output mentions the basic operation, the decorator logs
// the conversion and replaces the first occurrence of "basic" with
// "advance". The converted text is both written to out and returned to the
// caller. Output that does not mention the basic operation is written and
// returned unchanged.
//
// Example:
//
//	svc := decorator.NewServiceDecorator(decorator.BasicService{}, os.Stdout, logger)
//	svc.PerformOperation("Hi there")
//	// "This is logged using advance operation -> Hi there"
type ServiceDecorator struct {
	service Service
	out     io.Writer
	logger  *slog.Logger
}

// NewServiceDecorator creates a new ServiceDecorator around service.
func NewServiceDecorator(service Service, out io.Writer, logger *slog.Logger) *ServiceDecorator {
	return &ServiceDecorator{
		service: service,
		out:     out,
		logger:  logger,
	}
}

// PerformOperation implements Service
func (d *ServiceDecorator) PerformOperation(statement string) string {
	data := d.service.PerformOperation(statement)
	if strings.Contains(data, basicMarker) {
		d.logger.Info("Basic operation identified, converting to advance operation")
		data = strings.Replace(data, basicMarker, advanceMarker, 1)
	}
	if _, err := fmt.Fprintln(d.out, data); err != nil {
		d.logger.Error("ServiceDecorator: failed to write output", "error", err)
	}
	return data
}
