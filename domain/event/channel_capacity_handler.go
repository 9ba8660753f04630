package event

import (
	"fmt"
	"log/slog"
	"room-bot/errors"
)

// ChannelCapacityHandler records how full the internal channels are and
// warns when a buffered one is close to dropping.
type ChannelCapacityHandler struct {
	log                  *slog.Logger
	recorder             Recorder
	lowCapacityThreshold int
}

func NewChannelCapacityHandler(log *slog.Logger, recorder Recorder, lowCapacityThreshold int) *ChannelCapacityHandler {
	return &ChannelCapacityHandler{log: log, recorder: recorder, lowCapacityThreshold: lowCapacityThreshold}
}

func (h *ChannelCapacityHandler) Handle(event Event) {
	switch event.Type {
	case ChannelCapacityType:
		payload, ok := event.Payload.(ChannelCapacity)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "event", event.Type)
			return
		}
		h.recorder.ObserveChannelCapacity(payload.ChannelName, payload.Capacity, payload.Length)
		if payload.Capacity <= 0 {
			return
		}
		capacityLeft := payload.Capacity - payload.Length
		if capacityLeft <= h.lowCapacityThreshold {
			h.log.Warn(fmt.Sprintf("Channel %s capacity left : %d", payload.ChannelName, capacityLeft))
		}
	}
}
