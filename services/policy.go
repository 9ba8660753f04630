package services

import (
	"fmt"
	"room-bot/domain"
	"time"
)

const ownerOnlyRule = "RULE1: Invitation is limited to me, the owner only. Please do not invite people without notify me."

// Policy holds the words and delays the bot reacts with.
type Policy struct {
	TriggerWord   string
	RoomPrefix    string
	HelperName    string
	EvictionGrace time.Duration
}

func (p Policy) Pattern() domain.NamePattern {
	return domain.NewNamePattern(p.RoomPrefix)
}

func (p Policy) createdTopic() string {
	return p.RoomPrefix + " - created"
}

func (p Policy) welcomeTopic(invitee domain.Contact) string {
	return p.RoomPrefix + " - welcome " + invitee.Name
}

func (p Policy) warnTopic(inviter domain.Contact) string {
	return p.RoomPrefix + " - warn " + inviter.Name
}

func (p Policy) inviterWarning(inviter domain.Contact) string {
	return inviter.Mention() + " " + ownerOnlyRule
}

func (p Policy) inviteeNotice(invitee domain.Contact) string {
	return fmt.Sprintf("%s Please contact me: by send %q to me, I will re-send you a invitation. Now I will remove you out, sorry.",
		invitee.Mention(), p.TriggerWord)
}

func (p Policy) ownerWelcome(invitee domain.Contact) string {
	return invitee.Mention() + " Welcome to my room! :)"
}

func (p Policy) alreadyMember() string {
	return fmt.Sprintf("no need to %s again, because you are already in %s room", p.TriggerWord, p.RoomPrefix)
}

func (p Policy) addedWelcome(contact domain.Contact) string {
	return "Welcome " + contact.Name
}

func (p Policy) misuseNotice(sender domain.Contact) string {
	return fmt.Sprintf("%s You said %q in my room, I will remove you out.", sender.Mention(), p.TriggerWord)
}
