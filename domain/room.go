package domain

import (
	"strings"

	"github.com/samber/lo"
)

type RoomID string

// Room is a snapshot of a platform group. On the platform a room is named by its topic.
type Room struct {
	ID      RoomID `validate:"required"`
	Topic   string
	Members []ContactID
}

func (r Room) Has(id ContactID) bool {
	return lo.Contains(r.Members, id)
}

func (r Room) String() string {
	return r.Topic + "<" + string(r.ID) + ">"
}

// NamePattern matches room names by case-insensitive prefix.
type NamePattern struct {
	Prefix string
}

func NewNamePattern(prefix string) NamePattern {
	return NamePattern{Prefix: prefix}
}

func (p NamePattern) Match(name string) bool {
	if len(name) < len(p.Prefix) {
		return false
	}
	return strings.EqualFold(name[:len(p.Prefix)], p.Prefix)
}

func (p NamePattern) String() string {
	return "/^" + p.Prefix + "/i"
}

// EvictionKey identifies a deferred removal of one contact from one room.
type EvictionKey struct {
	Room    RoomID
	Contact ContactID
}
