package audit

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRecorderPersistsEvents(t *testing.T) {
	store := NewInMemoryStore()
	rec := NewRecorder(store, discardLogger(), 8)

	rec.Emit(context.Background(), Event{
		Email:  "asha@example.com",
		Action: ActionSubmissionAccepted,
	})
	rec.Close()

	events := store.Events()
	require.Len(t, events, 1)
	assert.Equal(t, ActionSubmissionAccepted, events[0].Action)
	assert.NotEqual(t, uuid.Nil, events[0].ID)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestRecorderDrainsOnClose(t *testing.T) {
	store := NewInMemoryStore()
	rec := NewRecorder(store, discardLogger(), 32)

	for range 10 {
		rec.Emit(context.Background(), Event{Action: ActionSubmissionRejected, Reason: "duplicate email"})
	}
	rec.Close()

	assert.Len(t, store.Events(), 10, "all buffered events should be drained on close")
}
