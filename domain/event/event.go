// Package event defines the platform events the bot reacts to.
// Each kind is a tagged variant with a fixed payload type that is validated
// before any handler sees it.
package event

import (
	"room-bot/domain"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	SessionEstablishedType Type = "SESSION_ESTABLISHED"
	SessionEndedType       Type = "SESSION_ENDED"
	SessionErrorType       Type = "SESSION_ERROR"
	MessageReceivedType    Type = "MESSAGE_RECEIVED"
	MembershipJoinedType   Type = "MEMBERSHIP_JOINED"
	MembershipLeftType     Type = "MEMBERSHIP_LEFT"
	TopicChangedType       Type = "TOPIC_CHANGED"
)

// Scope tells whether an event comes from the global subscription or from
// an observer attached to a single room.
type Scope string

const (
	GlobalScope Scope = "global"
	RoomScope   Scope = "room"
)

type Event struct {
	ID        uuid.UUID
	Type      Type
	Scope     Scope
	CreatedAt time.Time
	Payload   any
}

func New(t Type, payload any) Event {
	return Event{
		ID:        uuid.New(),
		Type:      t,
		Scope:     GlobalScope,
		CreatedAt: time.Now().UTC(),
		Payload:   payload,
	}
}

// RoomScoped returns a copy of the event as delivered by a room observer.
func (e Event) RoomScoped() Event {
	e.ID = uuid.New()
	e.Scope = RoomScope
	return e
}

type SessionEstablished struct {
	Session *domain.Session `validate:"required"`
}

type SessionEnded struct {
	Session *domain.Session `validate:"required"`
}

type SessionError struct {
	Err error `validate:"required"`
}

// MessageReceived carries an inbound message. Room is nil for direct messages.
type MessageReceived struct {
	From    *domain.Contact `validate:"required"`
	Room    *domain.Room
	Content string
}

type MembershipJoined struct {
	Room    *domain.Room    `validate:"required"`
	Invitee *domain.Contact `validate:"required"`
	Inviter *domain.Contact `validate:"required"`
}

type MembershipLeft struct {
	Room   *domain.Room    `validate:"required"`
	Leaver *domain.Contact `validate:"required"`
}

type TopicChanged struct {
	Room     *domain.Room    `validate:"required"`
	Topic    string
	OldTopic string
	Changer  *domain.Contact `validate:"required"`
}
