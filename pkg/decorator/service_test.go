package decorator

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockService struct {
	mock.Mock
}

func (m *MockService) PerformOperation(statement string) string {
	return m.Called(statement).String(0)
}

func TestServiceDecorator_BasicIsConvertedAndReturned(t *testing.T) {
	var out bytes.Buffer
	d := NewServiceDecorator(BasicService{}, &out, newTestLogger())

	got := d.PerformOperation("Hi there")

	want := "This is logged using advance operation -> Hi there"
	assert.Equal(t, want, got, "decorator returns the transformed value")
	assert.Equal(t, want+"\n", out.String())
}

func TestServiceDecorator_AdvancePassesThrough(t *testing.T) {
	var out bytes.Buffer
	d := NewServiceDecorator(AdvanceService{}, &out, newTestLogger())

	got := d.PerformOperation("Hi there")

	want := "This is logged using advance operation -> Hi there"
	assert.Equal(t, want, got)
	assert.Equal(t, want+"\n", out.String())
}

func TestServiceDecorator_OnlyFirstOccurrenceReplaced(t *testing.T) {
	var out bytes.Buffer
	inner := &MockService{}
	inner.On("PerformOperation", "x").Return("basic and basic").Once()

	got := NewServiceDecorator(inner, &out, newTestLogger()).PerformOperation("x")

	assert.Equal(t, "advance and basic", got)
	inner.AssertExpectations(t)
}

func TestServiceDecorator_Stacked(t *testing.T) {
	var out bytes.Buffer
	logger := newTestLogger()
	d := NewServiceDecorator(NewServiceDecorator(BasicService{}, io.Discard, logger), &out, logger)

	assert.Equal(t, "This is logged using advance operation -> s", d.PerformOperation("s"))
}

func TestServices_Undecorated(t *testing.T) {
	assert.Equal(t, "This is logged using basic operation -> s", BasicService{}.PerformOperation("s"))
	assert.Equal(t, "This is logged using advance operation -> s", AdvanceService{}.PerformOperation("s"))
}
