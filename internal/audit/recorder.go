package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Recorder buffers events on a channel and persists them from a background
// worker. Emit never blocks the caller: when the buffer is full the event is
// dropped and logged, which is acceptable for operational events.
type Recorder struct {
	store  Store
	logger *slog.Logger
	inbox  chan Event
	done   chan struct{}
}

// NewRecorder starts a recorder draining into store. Close flushes the
// buffer and stops the worker.
func NewRecorder(store Store, logger *slog.Logger, buffer int) *Recorder {
	if buffer <= 0 {
		buffer = 64
	}
	r := &Recorder{
		store:  store,
		logger: logger,
		inbox:  make(chan Event, buffer),
		done:   make(chan struct{}),
	}
	go r.run()
	return r
}

// Emit queues an event for persistence, stamping ID and timestamp when unset.
func (r *Recorder) Emit(_ context.Context, event Event) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case r.inbox <- event:
	default:
		r.logger.Warn("audit buffer full, dropping event", "action", string(event.Action))
	}
}

func (r *Recorder) run() {
	defer close(r.done)
	for event := range r.inbox {
		if err := r.store.Append(context.Background(), event); err != nil {
			r.logger.Error("append audit event", "action", string(event.Action), "error", err)
		}
	}
}

// Close drains buffered events and stops the worker.
func (r *Recorder) Close() {
	close(r.inbox)
	<-r.done
}
