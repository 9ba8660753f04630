package event

import (
	"fmt"
	"room-bot/domain"
	"room-bot/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks that the payload matches the event type and carries every
// reference the handlers rely on. Failures wrap errors.ErrMalformedEvent.
func (e Event) Validate() error {
	if e.Payload == nil {
		return fmt.Errorf("%w: %s without payload", errors.ErrMalformedEvent, e.Type)
	}
	if !e.payloadMatchesType() {
		return fmt.Errorf("%w: %w: %s carries %T", errors.ErrMalformedEvent, errors.ErrInvalidPayload, e.Type, e.Payload)
	}
	if err := validate.Struct(e.Payload); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrMalformedEvent, e.Type, err)
	}
	return nil
}

func (e Event) payloadMatchesType() bool {
	switch e.Type {
	case SessionEstablishedType:
		_, ok := e.Payload.(SessionEstablished)
		return ok
	case SessionEndedType:
		_, ok := e.Payload.(SessionEnded)
		return ok
	case SessionErrorType:
		_, ok := e.Payload.(SessionError)
		return ok
	case MessageReceivedType:
		_, ok := e.Payload.(MessageReceived)
		return ok
	case MembershipJoinedType:
		_, ok := e.Payload.(MembershipJoined)
		return ok
	case MembershipLeftType:
		_, ok := e.Payload.(MembershipLeft)
		return ok
	case TopicChangedType:
		_, ok := e.Payload.(TopicChanged)
		return ok
	default:
		return false
	}
}

// Attrs returns slog attributes describing the event with whatever identifiers
// the payload carries, including partially filled ones.
func (e Event) Attrs() []any {
	attrs := []any{"event", e.Type, "scope", e.Scope, "event_id", e.ID}
	switch p := e.Payload.(type) {
	case MessageReceived:
		attrs = appendContact(attrs, "from", p.From)
		attrs = appendRoom(attrs, p.Room)
	case MembershipJoined:
		attrs = appendRoom(attrs, p.Room)
		attrs = appendContact(attrs, "invitee", p.Invitee)
		attrs = appendContact(attrs, "inviter", p.Inviter)
	case MembershipLeft:
		attrs = appendRoom(attrs, p.Room)
		attrs = appendContact(attrs, "leaver", p.Leaver)
	case TopicChanged:
		attrs = appendRoom(attrs, p.Room)
		attrs = appendContact(attrs, "changer", p.Changer)
	}
	return attrs
}

func appendContact(attrs []any, key string, c *domain.Contact) []any {
	if c == nil {
		return append(attrs, key, nil)
	}
	return append(attrs, key, c.Name, key+"_id", c.ID)
}

func appendRoom(attrs []any, r *domain.Room) []any {
	if r == nil {
		return attrs
	}
	return append(attrs, "room_id", r.ID, "room_topic", r.Topic)
}
