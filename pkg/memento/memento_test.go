package memento

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOriginator_SaveMutateRestore(t *testing.T) {
	for _, mutations := range []int{0, 1, 5, 50} {
		o := NewOriginator("Super-duper-super-puper-super.", io.Discard, newTestLogger())
		saved := o.State()
		m, err := o.Save()
		require.NoError(t, err)

		for i := 0; i < mutations; i++ {
			o.DoSomething()
		}

		require.NoError(t, o.Restore(m))
		assert.Equal(t, saved, o.State())
	}
}

func TestOriginator_RestoreIsExactForArbitraryBytes(t *testing.T) {
	original := "caf\xc3\xa9 \xff\xfe \x00 tail"
	o := NewOriginator(original, io.Discard, newTestLogger())
	m, err := o.Save()
	require.NoError(t, err)

	o.DoSomething()
	require.NoError(t, o.Restore(m))
	assert.Equal(t, []byte(original), []byte(o.State()))
}

func TestOriginator_RestoreNil(t *testing.T) {
	o := NewOriginator("s", io.Discard, newTestLogger())
	require.ErrorIs(t, o.Restore(nil), ErrNilMemento)
	assert.Equal(t, "s", o.State())
}

func TestOriginator_RestoreInvalidData(t *testing.T) {
	o := NewOriginator("s", io.Discard, newTestLogger())
	err := o.Restore(&Memento{data: []byte("{not json")})
	require.ErrorIs(t, err, ErrInvalidMementoData)
	assert.Equal(t, "s", o.State())
}

func TestOriginator_DoSomethingChangesState(t *testing.T) {
	o := NewOriginator("s", io.Discard, newTestLogger())
	o.DoSomething()
	assert.Len(t, o.State(), 30)
	assert.NotEqual(t, "s", o.State())
}

func TestCaretaker_UndoIsLIFO(t *testing.T) {
	o := NewOriginator("first", io.Discard, newTestLogger())
	c := NewCaretaker(o, io.Discard, newTestLogger())

	require.NoError(t, c.Backup())
	o.DoSomething()
	second := o.State()
	require.NoError(t, c.Backup())
	o.DoSomething()
	assert.Len(t, c.History(), 2)

	require.NoError(t, c.Undo())
	assert.Equal(t, second, o.State())
	require.NoError(t, c.Undo())
	assert.Equal(t, "first", o.State())

	require.ErrorIs(t, c.Undo(), ErrNoSnapshots)
	assert.Empty(t, c.History())
}

func TestMemento_Metadata(t *testing.T) {
	o := NewOriginator("s", io.Discard, newTestLogger())
	a, err := o.Save()
	require.NoError(t, err)
	b, err := o.Save()
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.False(t, a.CreatedAt().IsZero())
	assert.Contains(t, a.Name(), a.ID().String())
}
