// Package local is an in-memory chat platform. It keeps a contact directory,
// rooms named by their topic and one event stream, so the bot runs without a
// real network. Contacts act through the console or directly from tests.
package local

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"room-bot/contract"
	"room-bot/domain"
	"room-bot/domain/event"
	"room-bot/errors"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var _ contract.Platform = (*Platform)(nil)

type room struct {
	id      domain.RoomID
	topic   string
	members []domain.ContactID
}

func (r *room) snapshot() domain.Room {
	return domain.Room{ID: r.id, Topic: r.topic, Members: slices.Clone(r.members)}
}

type Platform struct {
	log    *slog.Logger
	events chan event.Event

	mu       sync.Mutex
	self     domain.Contact
	contacts []domain.Contact
	rooms    []*room
	watched  map[domain.RoomID]struct{}
	sent     []domain.Message
	session  *domain.Session
	nextRoom int
}

func NewPlatform(log *slog.Logger, cfg Config) *Platform {
	self := domain.Contact{ID: domain.ContactID(uuid.NewString()), Name: cfg.BotName, Ready: true}
	contacts := lo.Map(lo.Uniq(cfg.Contacts), func(name string, _ int) domain.Contact {
		return domain.Contact{ID: domain.ContactID(uuid.NewString()), Name: name, Ready: true}
	})
	return &Platform{
		log:      log,
		events:   make(chan event.Event, cfg.EventBuffer),
		self:     self,
		contacts: contacts,
		watched:  make(map[domain.RoomID]struct{}),
	}
}

func (p *Platform) Events() <-chan event.Event {
	return p.events
}

// Self is the bot account.
func (p *Platform) Self() domain.Contact {
	return p.self
}

// Login opens a session for the bot account and announces it.
func (p *Platform) Login(ctx context.Context) error {
	p.mu.Lock()
	session := domain.Session{Account: p.self, StartedAt: time.Now().UTC()}
	p.session = &session
	p.mu.Unlock()

	return p.emit(ctx, event.New(event.SessionEstablishedType, event.SessionEstablished{Session: &session}))
}

func (p *Platform) Logout(ctx context.Context) error {
	p.mu.Lock()
	session := p.session
	p.session = nil
	p.mu.Unlock()

	if session == nil {
		return errors.ErrLoggedOut
	}
	return p.emit(ctx, event.New(event.SessionEndedType, event.SessionEnded{Session: session}))
}

// Fail reports a transport failure without ending the session.
func (p *Platform) Fail(ctx context.Context, err error) error {
	return p.emit(ctx, event.New(event.SessionErrorType, event.SessionError{Err: err}))
}

func (p *Platform) FindRoom(_ context.Context, pattern domain.NamePattern) (*domain.Room, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkSession(); err != nil {
		return nil, err
	}
	r, ok := lo.Find(p.rooms, func(r *room) bool { return pattern.Match(r.topic) })
	if !ok {
		return nil, nil
	}
	found := r.snapshot()
	return &found, nil
}

func (p *Platform) FindContact(_ context.Context, name string) (*domain.Contact, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkSession(); err != nil {
		return nil, err
	}
	c, ok := lo.Find(p.contacts, func(c domain.Contact) bool { return c.Name == name })
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (p *Platform) IsMember(_ context.Context, roomID domain.RoomID, contactID domain.ContactID) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkSession(); err != nil {
		return false, err
	}
	r, err := p.room(roomID)
	if err != nil {
		return false, err
	}
	return lo.Contains(r.members, contactID), nil
}

// CreateRoom follows the platform rule that a group needs the bot plus at
// least two other contacts.
func (p *Platform) CreateRoom(_ context.Context, contacts []domain.Contact, nameHint string) (*domain.Room, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkSession(); err != nil {
		return nil, err
	}
	ids := lo.Uniq(lo.FilterMap(contacts, func(c domain.Contact, _ int) (domain.ContactID, bool) {
		return c.ID, c.ID != p.self.ID
	}))
	if len(ids) < 2 {
		return nil, fmt.Errorf("%w: got %d", errors.ErrRoomTooSmall, len(ids))
	}
	for _, id := range ids {
		if _, err := p.contact(id); err != nil {
			return nil, err
		}
	}

	p.nextRoom++
	r := &room{
		id:      domain.RoomID("room-" + strconv.Itoa(p.nextRoom)),
		topic:   nameHint,
		members: append([]domain.ContactID{p.self.ID}, ids...),
	}
	p.rooms = append(p.rooms, r)
	p.log.Debug("Room created", "room_id", r.id, "topic", r.topic, "members", len(r.members))
	created := r.snapshot()
	return &created, nil
}

func (p *Platform) SetTopic(ctx context.Context, roomID domain.RoomID, topic string) error {
	p.mu.Lock()
	if err := p.checkSession(); err != nil {
		p.mu.Unlock()
		return err
	}
	evts, err := p.changeTopic(p.self.ID, roomID, topic)
	p.mu.Unlock()
	if err != nil {
		return err
	}
	return p.emit(ctx, evts...)
}

func (p *Platform) AddMember(ctx context.Context, roomID domain.RoomID, contactID domain.ContactID) error {
	p.mu.Lock()
	if err := p.checkSession(); err != nil {
		p.mu.Unlock()
		return err
	}
	evts, err := p.join(p.self.ID, roomID, contactID)
	p.mu.Unlock()
	if err != nil {
		return err
	}
	return p.emit(ctx, evts...)
}

func (p *Platform) RemoveMember(ctx context.Context, roomID domain.RoomID, contactID domain.ContactID) error {
	p.mu.Lock()
	if err := p.checkSession(); err != nil {
		p.mu.Unlock()
		return err
	}
	evts, err := p.leave(roomID, contactID)
	p.mu.Unlock()
	if err != nil {
		return err
	}
	return p.emit(ctx, evts...)
}

// Send records the message and echoes it back on the stream as every
// platform does with the account's own messages.
func (p *Platform) Send(ctx context.Context, message domain.Message) error {
	p.mu.Lock()
	if err := p.checkSession(); err != nil {
		p.mu.Unlock()
		return err
	}
	var scope *domain.Room
	if message.Room != nil {
		r, err := p.room(*message.Room)
		if err != nil {
			p.mu.Unlock()
			return err
		}
		snapshot := r.snapshot()
		scope = &snapshot
	} else if message.To == nil {
		p.mu.Unlock()
		return fmt.Errorf("%w: message without room nor addressee", errors.ErrInvalidPayload)
	}
	p.sent = append(p.sent, message)
	self := p.self
	p.mu.Unlock()

	return p.emit(ctx, event.New(event.MessageReceivedType, event.MessageReceived{
		From: &self, Room: scope, Content: message.Content,
	}))
}

func (p *Platform) WatchRoom(_ context.Context, roomID domain.RoomID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkSession(); err != nil {
		return err
	}
	if _, err := p.room(roomID); err != nil {
		return err
	}
	p.watched[roomID] = struct{}{}
	return nil
}

// DirectMessage delivers content from a contact to the bot.
func (p *Platform) DirectMessage(ctx context.Context, from domain.ContactID, content string) error {
	p.mu.Lock()
	sender, err := p.contact(from)
	p.mu.Unlock()
	if err != nil {
		return err
	}
	return p.emit(ctx, event.New(event.MessageReceivedType, event.MessageReceived{From: &sender, Content: content}))
}

// Say posts content from a member into a room.
func (p *Platform) Say(ctx context.Context, from domain.ContactID, roomID domain.RoomID, content string) error {
	p.mu.Lock()
	sender, err := p.contact(from)
	if err != nil {
		p.mu.Unlock()
		return err
	}
	r, err := p.room(roomID)
	if err != nil {
		p.mu.Unlock()
		return err
	}
	if !lo.Contains(r.members, from) {
		p.mu.Unlock()
		return fmt.Errorf("%w: %s in %s", errors.ErrNotMember, sender.Name, roomID)
	}
	snapshot := r.snapshot()
	p.mu.Unlock()

	return p.emit(ctx, event.New(event.MessageReceivedType, event.MessageReceived{
		From: &sender, Room: &snapshot, Content: content,
	}))
}

// Invite adds invitee to the room on behalf of a member.
func (p *Platform) Invite(ctx context.Context, inviter domain.ContactID, roomID domain.RoomID, invitee domain.ContactID) error {
	p.mu.Lock()
	r, err := p.room(roomID)
	if err == nil && !lo.Contains(r.members, inviter) {
		err = fmt.Errorf("%w: inviter %s in %s", errors.ErrNotMember, inviter, roomID)
	}
	var evts []event.Event
	if err == nil {
		evts, err = p.join(inviter, roomID, invitee)
	}
	p.mu.Unlock()
	if err != nil {
		return err
	}
	return p.emit(ctx, evts...)
}

// Leave lets a member quit a room.
func (p *Platform) Leave(ctx context.Context, contactID domain.ContactID, roomID domain.RoomID) error {
	p.mu.Lock()
	evts, err := p.leave(roomID, contactID)
	p.mu.Unlock()
	if err != nil {
		return err
	}
	return p.emit(ctx, evts...)
}

// ChangeTopic renames a room on behalf of a member.
func (p *Platform) ChangeTopic(ctx context.Context, changer domain.ContactID, roomID domain.RoomID, topic string) error {
	p.mu.Lock()
	evts, err := p.changeTopic(changer, roomID, topic)
	p.mu.Unlock()
	if err != nil {
		return err
	}
	return p.emit(ctx, evts...)
}

func (p *Platform) Contacts() []domain.Contact {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.contacts)
}

func (p *Platform) Rooms() []domain.Room {
	p.mu.Lock()
	defer p.mu.Unlock()
	return lo.Map(p.rooms, func(r *room, _ int) domain.Room { return r.snapshot() })
}

// Room returns a snapshot of one room.
func (p *Platform) Room(roomID domain.RoomID) (domain.Room, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, err := p.room(roomID)
	if err != nil {
		return domain.Room{}, err
	}
	return r.snapshot(), nil
}

// Sent lists the messages the bot sent, oldest first.
func (p *Platform) Sent() []domain.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.sent)
}

func (p *Platform) Watched() []domain.RoomID {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := lo.Keys(p.watched)
	slices.SortFunc(ids, func(a, b domain.RoomID) int { return cmp.Compare(a, b) })
	return ids
}

// ContactByName resolves a display name, the bot included.
func (p *Platform) ContactByName(name string) (domain.Contact, error) {
	if name == p.self.Name {
		return p.self, nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := lo.Find(p.contacts, func(c domain.Contact) bool { return c.Name == name })
	if !ok {
		return domain.Contact{}, fmt.Errorf("%w: %q", errors.ErrUnknownContact, name)
	}
	return c, nil
}

func (p *Platform) join(inviterID domain.ContactID, roomID domain.RoomID, inviteeID domain.ContactID) ([]event.Event, error) {
	r, err := p.room(roomID)
	if err != nil {
		return nil, err
	}
	inviter, err := p.contact(inviterID)
	if err != nil {
		return nil, err
	}
	invitee, err := p.contact(inviteeID)
	if err != nil {
		return nil, err
	}
	if lo.Contains(r.members, inviteeID) {
		return nil, fmt.Errorf("%w: %s in %s", errors.ErrAlreadyMember, invitee.Name, roomID)
	}
	r.members = append(r.members, inviteeID)
	snapshot := r.snapshot()
	return p.scoped(roomID, event.New(event.MembershipJoinedType, event.MembershipJoined{
		Room: &snapshot, Invitee: &invitee, Inviter: &inviter,
	})), nil
}

func (p *Platform) leave(roomID domain.RoomID, contactID domain.ContactID) ([]event.Event, error) {
	r, err := p.room(roomID)
	if err != nil {
		return nil, err
	}
	leaver, err := p.contact(contactID)
	if err != nil {
		return nil, err
	}
	if !lo.Contains(r.members, contactID) {
		return nil, fmt.Errorf("%w: %s in %s", errors.ErrNotMember, leaver.Name, roomID)
	}
	r.members = lo.Without(r.members, contactID)
	snapshot := r.snapshot()
	return p.scoped(roomID, event.New(event.MembershipLeftType, event.MembershipLeft{
		Room: &snapshot, Leaver: &leaver,
	})), nil
}

func (p *Platform) changeTopic(changerID domain.ContactID, roomID domain.RoomID, topic string) ([]event.Event, error) {
	r, err := p.room(roomID)
	if err != nil {
		return nil, err
	}
	changer, err := p.contact(changerID)
	if err != nil {
		return nil, err
	}
	if !lo.Contains(r.members, changerID) {
		return nil, fmt.Errorf("%w: %s in %s", errors.ErrNotMember, changer.Name, roomID)
	}
	old := r.topic
	r.topic = topic
	snapshot := r.snapshot()
	return p.scoped(roomID, event.New(event.TopicChangedType, event.TopicChanged{
		Room: &snapshot, Topic: topic, OldTopic: old, Changer: &changer,
	})), nil
}

// scoped adds the room-scoped copy when the room is watched.
func (p *Platform) scoped(roomID domain.RoomID, evt event.Event) []event.Event {
	if _, ok := p.watched[roomID]; ok {
		return []event.Event{evt, evt.RoomScoped()}
	}
	return []event.Event{evt}
}

func (p *Platform) checkSession() error {
	if p.session == nil {
		return errors.ErrLoggedOut
	}
	return nil
}

func (p *Platform) room(id domain.RoomID) (*room, error) {
	r, ok := lo.Find(p.rooms, func(r *room) bool { return r.id == id })
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownRoom, id)
	}
	return r, nil
}

func (p *Platform) contact(id domain.ContactID) (domain.Contact, error) {
	if id == p.self.ID {
		return p.self, nil
	}
	c, ok := lo.Find(p.contacts, func(c domain.Contact) bool { return c.ID == id })
	if !ok {
		return domain.Contact{}, fmt.Errorf("%w: %s", errors.ErrUnknownContact, id)
	}
	return c, nil
}

// emit must be called without p.mu held: the router may be waiting on a
// handler that calls back into the platform.
func (p *Platform) emit(ctx context.Context, evts ...event.Event) error {
	for _, evt := range evts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p.events <- evt:
		}
	}
	return nil
}
