// Package memento captures and restores an originator's state without
// exposing it. Snapshots are opaque to everyone but the originator, and the
// stack that holds them is managed by the caller.
package memento

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrNilMemento is returned when restoring from a nil snapshot.
	ErrNilMemento = errors.New("memento must not be nil")

	// ErrInvalidMementoData is returned when snapshot data is malformed.
	ErrInvalidMementoData = errors.New("memento data is not valid")

	// ErrNoSnapshots is returned when undoing with an empty history.
	ErrNoSnapshots = errors.New("no snapshots to restore")
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// snapshotState is the encoded form of the originator's state. Bytes are
// stored rather than a string so the round trip is exact for any input.
type snapshotState struct {
	State []byte `json:"state"`
}

// Memento is an opaque snapshot of an originator's state.
type Memento struct {
	id        uuid.UUID
	data      json.RawMessage
	createdAt time.Time
}

func newMemento(state string) (*Memento, error) {
	data, err := codec.Marshal(snapshotState{State: []byte(state)})
	if err != nil {
		return nil, fmt.Errorf("encoding memento: %w", err)
	}
	return &Memento{
		id:        uuid.New(),
		data:      data,
		createdAt: time.Now(),
	}, nil
}

// ID returns the snapshot id
func (m *Memento) ID() uuid.UUID { return m.id }

// CreatedAt returns when the snapshot was taken
func (m *Memento) CreatedAt() time.Time { return m.createdAt }

// Name describes the snapshot without revealing its state
func (m *Memento) Name() string {
	return fmt.Sprintf("%s / %s", m.createdAt.Format(time.DateTime), m.id)
}

func (m *Memento) state() (string, error) {
	if !codec.Valid(m.data) {
		return "", ErrInvalidMementoData
	}
	var s snapshotState
	if err := codec.Unmarshal(m.data, &s); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidMementoData, err)
	}
	return string(s.State), nil
}
