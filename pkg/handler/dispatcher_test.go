package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T, calls *[]string, ids ...string) *Dispatcher {
	t.Helper()
	d := NewDispatcher(newTestLogger())
	for _, id := range ids {
		require.NoError(t, d.Register(id, StepFunc(func(_ context.Context, _ *Request) error {
			*calls = append(*calls, id)
			return nil
		})))
	}
	return d
}

func TestDispatcher_Dispatch_InRouteOrder(t *testing.T) {
	var calls []string
	d := newTestDispatcher(t, &calls, "a", "b", "c")
	require.NoError(t, d.Route("a", "b", "c"))

	require.NoError(t, d.Dispatch(context.Background(), NewRequest("x")))
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestDispatcher_Route_Reconfigure(t *testing.T) {
	var calls []string
	d := newTestDispatcher(t, &calls, "a", "b", "c")
	require.NoError(t, d.Route("a", "b", "c"))
	require.NoError(t, d.Route("c", "a"))

	require.NoError(t, d.Dispatch(context.Background(), NewRequest("x")))
	assert.Equal(t, []string{"c", "a"}, calls)
	assert.Equal(t, []string{"c", "a"}, d.Routes())
}

func TestDispatcher_Route_UnknownHandler(t *testing.T) {
	var calls []string
	d := newTestDispatcher(t, &calls, "a")
	require.NoError(t, d.Route("a"))

	err := d.Route("a", "missing")
	require.ErrorIs(t, err, ErrUnknownHandler)
	assert.Equal(t, []string{"a"}, d.Routes(), "failed route must not replace the current one")
}

func TestDispatcher_Register_Duplicate(t *testing.T) {
	var calls []string
	d := newTestDispatcher(t, &calls, "a")
	err := d.Register("a", StepFunc(func(context.Context, *Request) error { return nil }))
	require.ErrorIs(t, err, ErrDuplicateHandler)
}

func TestDispatcher_Dispatch_StopsOnError(t *testing.T) {
	var calls []string
	d := newTestDispatcher(t, &calls, "a", "c")
	boom := errors.New("boom")
	require.NoError(t, d.Register("b", StepFunc(func(context.Context, *Request) error { return boom })))
	require.NoError(t, d.Route("a", "b", "c"))

	err := d.Dispatch(context.Background(), NewRequest("x"))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a"}, calls)
}

func TestDispatcher_Dispatch_EmptyRoute(t *testing.T) {
	d := NewDispatcher(newTestLogger())
	require.NoError(t, d.Dispatch(context.Background(), NewRequest("x")))
}
