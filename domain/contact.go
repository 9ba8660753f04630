// Package domain contains core concepts of the room bot.
// This file defines Contact entities, read-only directory entries of the platform.
// No runtime, network, or UI logic should be added here.
package domain

type ContactID string

// Contact is a platform user as resolved by the directory.
// Ready reports whether the platform finished loading the profile.
type Contact struct {
	ID    ContactID `validate:"required"`
	Name  string
	Ready bool
}

// Mention renders the @-style attribution used at the start of addressed messages.
func (c Contact) Mention() string {
	return "@" + c.Name
}

func (c Contact) String() string {
	return c.Name + "<" + string(c.ID) + ">"
}
