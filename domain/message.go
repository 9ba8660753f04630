// Package domain contains core concepts of the room bot.
// This file defines outbound Messages.
// Messages are constructed and handed to the platform immediately, never retained.
package domain

import (
	"github.com/google/uuid"
)

// Message is an outbound unit of communication.
// Room scopes it to a group, To names the addressee.
type Message struct {
	ID      uuid.UUID
	Content string
	Room    *RoomID
	To      *ContactID
}

// Direct reports whether the message goes to a single contact outside any room.
func (m Message) Direct() bool {
	return m.Room == nil
}
