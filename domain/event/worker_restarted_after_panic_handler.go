package event

import (
	"fmt"
	"log/slog"
	"room-bot/errors"
	"sync"
)

// WorkerRestartedAfterPanicHandler handles events when a worker panics and is restarted.
// It is triggered by the Supervisor when a worker recovers from a panic.
// Useful for monitoring reliability and resilience of the system.
type WorkerRestartedAfterPanicHandler struct {
	log      *slog.Logger
	mu       sync.Mutex
	recorder Recorder
	total    uint64
}

func NewWorkerRestartedAfterPanicHandler(log *slog.Logger, recorder Recorder) *WorkerRestartedAfterPanicHandler {
	return &WorkerRestartedAfterPanicHandler{
		log:      log,
		recorder: recorder,
	}
}

func (h *WorkerRestartedAfterPanicHandler) Handle(event Event) {
	switch event.Type {
	case RestartedAfterPanicType:
		payload, ok := event.Payload.(WorkerRestartedAfterPanic)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "event", event.Type)
			return
		}
		h.mu.Lock()
		defer h.mu.Unlock()
		h.total++
		h.recorder.ObserveWorkerRestart(payload.WorkerName)
		h.log.Debug(fmt.Sprintf("Worker %s restarted after panic, total: %d", payload.WorkerName, h.total))
	}
}
