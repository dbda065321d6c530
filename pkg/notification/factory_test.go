package notification

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFactory(out io.Writer) *Factory {
	return NewFactory(out, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFactory_Create(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		wantKind Kind
		wantOut  string
	}{
		{name: "email", kind: "email", wantKind: KindEmail, wantOut: "EMAIL Notification sent!!!\n"},
		{name: "sms", kind: "sms", wantKind: KindSMS, wantOut: "SMS Notification sent!!!\n"},
		{name: "unknown falls back to sms", kind: "pigeon", wantKind: KindSMS, wantOut: "SMS Notification sent!!!\n"},
		{name: "empty falls back to sms", kind: "", wantKind: KindSMS, wantOut: "SMS Notification sent!!!\n"},
		{name: "case sensitive", kind: "EMAIL", wantKind: KindSMS, wantOut: "SMS Notification sent!!!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			n := newTestFactory(&out).Create(tt.kind)
			assert.Equal(t, tt.wantKind, n.Kind())

			require.NoError(t, NewService(n).Send(context.Background()))
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

type MockNotification struct {
	mock.Mock
}

func (m *MockNotification) Send(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockNotification) Kind() Kind {
	return m.Called().Get(0).(Kind)
}

func TestService_Send_Delegates(t *testing.T) {
	n := &MockNotification{}
	n.On("Send", mock.Anything).Return(assert.AnError).Once()

	err := NewService(n).Send(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	n.AssertExpectations(t)
}
