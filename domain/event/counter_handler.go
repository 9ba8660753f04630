package event

import (
	"log/slog"
	"room-bot/errors"
)

// CounterHandler counts every platform event the router accepted or rejected.
type CounterHandler struct {
	log      *slog.Logger
	recorder Recorder
}

func NewCounterHandler(log *slog.Logger, recorder Recorder) *CounterHandler {
	return &CounterHandler{log: log, recorder: recorder}
}

func (h *CounterHandler) Handle(event Event) {
	switch event.Type {
	case SessionEstablishedType, SessionEndedType, SessionErrorType,
		MessageReceivedType, MembershipJoinedType, MembershipLeftType, TopicChangedType:
		h.recorder.ObserveEvent(event.Type, event.Scope)
	case MalformedType:
		payload, ok := event.Payload.(Malformed)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "event", event.Type)
			return
		}
		h.recorder.ObserveMalformed(payload.Original)
	}
}

// HandlerFailedHandler counts handler runs that ended in an error or a panic.
type HandlerFailedHandler struct {
	log      *slog.Logger
	recorder Recorder
}

func NewHandlerFailedHandler(log *slog.Logger, recorder Recorder) *HandlerFailedHandler {
	return &HandlerFailedHandler{log: log, recorder: recorder}
}

func (h *HandlerFailedHandler) Handle(event Event) {
	switch event.Type {
	case HandlerFailedType:
		payload, ok := event.Payload.(HandlerFailed)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "event", event.Type)
			return
		}
		h.recorder.ObserveHandlerFailure(payload.Job)
	}
}
