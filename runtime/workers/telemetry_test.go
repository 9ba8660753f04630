package workers

import (
	"context"
	"log/slog"
	"room-bot/domain/event"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type collectingHandler struct {
	mu     sync.Mutex
	events []event.Type
}

func (h *collectingHandler) Handle(evt event.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, evt.Type)
}

func (h *collectingHandler) seen() []event.Type {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]event.Type(nil), h.events...)
}

func TestTelemetryWorker_DispatchesToEveryHandler(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	telemetry := make(chan event.Event, 2)
	first, second := &collectingHandler{}, &collectingHandler{}
	worker := NewTelemetryWorker(log, telemetry, []event.Handler{first, second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- worker.Run(ctx) }()

	// When two events are published
	telemetry <- event.New(event.MessageReceivedType, nil)
	telemetry <- event.New(event.HandlerFailedType, nil)

	// Then both handlers see both events in order
	req.Eventually(func() bool { return len(second.seen()) == 2 }, time.Second, 5*time.Millisecond)
	req.Equal([]event.Type{event.MessageReceivedType, event.HandlerFailedType}, first.seen())

	// And the worker stops with its context
	cancel()
	req.ErrorIs(<-done, context.Canceled)
}
