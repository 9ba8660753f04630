package runtime

import (
	"room-bot/contract"
	"room-bot/domain"
	"slices"
	"sync"

	"github.com/samber/lo"
)

var _ contract.IRegistry = (*Registry)(nil)

type Set map[domain.RoomID]struct{}

// Registry remembers the rooms whose join, leave and topic observers are
// attached, so a room is never watched twice in the same process.
type Registry struct {
	mu       sync.RWMutex
	observed Set
}

func NewRegistry() *Registry {
	return &Registry{observed: make(Set)}
}

// Observe marks the room as watched.
// It returns false when the room was already watched, in which case the
// caller must not attach its observers again.
func (r *Registry) Observe(roomID domain.RoomID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.observed[roomID]; ok {
		return false
	}
	r.observed[roomID] = struct{}{}
	return true
}

func (r *Registry) IsObserved(roomID domain.RoomID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.observed[roomID]
	return ok
}

// Forget releases a room, typically after attaching its observers failed.
func (r *Registry) Forget(roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.observed, roomID)
}

// Observed returns the watched rooms sorted by id.
func (r *Registry) Observed() []domain.RoomID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := lo.Keys(r.observed)
	slices.Sort(ids)
	return ids
}
