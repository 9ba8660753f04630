package services

import (
	"context"
	"fmt"
	"log/slog"
	"room-bot/contract"
	"room-bot/domain"
	"room-bot/errors"
	"room-bot/observability"

	"github.com/google/uuid"
)

var _ contract.IMessageDispatcher = (*MessageDispatcher)(nil)

// MessageDispatcher is the single send primitive of the bot.
// There is no retry: a failed send is returned and counted, nothing more.
type MessageDispatcher struct {
	log      *slog.Logger
	platform contract.Platform
	metrics  *observability.Metrics
}

func NewMessageDispatcher(log *slog.Logger, platform contract.Platform, metrics *observability.Metrics) *MessageDispatcher {
	return &MessageDispatcher{log: log, platform: platform, metrics: metrics}
}

func (d *MessageDispatcher) Send(ctx context.Context, content string, to *domain.Contact, room *domain.RoomID) error {
	msg := domain.Message{
		ID:      uuid.New(),
		Content: content,
		Room:    room,
	}
	if to != nil {
		id := to.ID
		msg.To = &id
	}

	err := d.platform.Send(ctx, msg)
	d.metrics.MessageSent(err)
	if err != nil {
		return fmt.Errorf("%w: message %s: %w", errors.ErrSendFailed, msg.ID, err)
	}
	d.log.Debug("Message sent", "message_id", msg.ID, "content", content, "direct", msg.Direct())
	return nil
}
