package domain

import (
	"sync"
	"time"
)

// Session is the authenticated bot identity.
type Session struct {
	Account   Contact `validate:"required"`
	StartedAt time.Time
}

// State holds the only cross-event shared references: the live Session
// and the managed Room. Both are replaced wholesale, never mutated in place.
type State struct {
	mu      sync.RWMutex
	session *Session
	room    *Room
}

func NewState() *State {
	return &State{}
}

// Login replaces the live session. The managed room is kept: its observers
// stay attached for the whole process and only a locate or a creation
// replaces it.
func (s *State) Login(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
}

func (s *State) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

func (s *State) Session() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

func (s *State) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

// IsSelf reports whether the contact is the bot's own account.
func (s *State) IsSelf(id ContactID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil && s.session.Account.ID == id
}

func (s *State) ManagedRoom() (Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.room == nil {
		return Room{}, false
	}
	return *s.room, true
}

func (s *State) SetManagedRoom(room Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.room = &room
}

// Provision is the outcome of a find-or-create of the managed room.
type Provision struct {
	Room    Room
	Created bool
}
