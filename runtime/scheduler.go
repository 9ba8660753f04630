package runtime

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"room-bot/contract"
	"room-bot/domain"
	"room-bot/observability"
	"slices"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

var (
	_ contract.IEvictionScheduler = (*EvictionScheduler)(nil)
	_ contract.Worker             = (*EvictionScheduler)(nil)
)

const defaultEvictionTimeout = 30 * time.Second

type pendingEviction struct {
	timer      clock.Timer
	generation uint64
}

// EvictionScheduler removes an invitee from a room once a grace period has
// elapsed. There is at most one pending eviction per room and contact: a new
// schedule replaces the pending one.
type EvictionScheduler struct {
	log      *slog.Logger
	clock    clock.WithDelayedExecution
	platform contract.Platform
	metrics  *observability.Metrics
	timeout  time.Duration

	mu         sync.Mutex
	ctx        context.Context
	generation uint64
	pending    map[domain.EvictionKey]pendingEviction
}

func NewEvictionScheduler(log *slog.Logger, clk clock.WithDelayedExecution,
	platform contract.Platform, metrics *observability.Metrics, timeout time.Duration) *EvictionScheduler {
	if timeout <= 0 {
		timeout = defaultEvictionTimeout
	}
	return &EvictionScheduler{
		log:      log,
		clock:    clk,
		platform: platform,
		metrics:  metrics,
		timeout:  timeout,
		pending:  make(map[domain.EvictionKey]pendingEviction),
	}
}

func (s *EvictionScheduler) Schedule(room domain.Room, invitee domain.Contact, after time.Duration) domain.EvictionKey {
	key := domain.EvictionKey{Room: room.ID, Contact: invitee.ID}

	// The entry is recorded before the timer exists so that a callback
	// firing immediately always finds it.
	s.mu.Lock()
	s.generation++
	generation := s.generation
	previous, replaced := s.pending[key]
	s.pending[key] = pendingEviction{generation: generation}
	s.mu.Unlock()

	if replaced {
		stopTimer(previous.timer)
		s.metrics.Eviction(observability.EvictionRescheduled)
		s.log.Debug("Eviction rescheduled", "room_id", room.ID, "invitee", invitee.Name)
	}

	// The clock is never called with s.mu held: a fake clock may run the
	// callback synchronously and the callback takes s.mu.
	timer := s.clock.AfterFunc(after, func() {
		s.fire(key, generation, room, invitee)
	})

	s.mu.Lock()
	entry, ok := s.pending[key]
	current := ok && entry.generation == generation
	if current {
		entry.timer = timer
		s.pending[key] = entry
	}
	s.mu.Unlock()
	if !current {
		// Fired already, cancelled or replaced in the meantime.
		timer.Stop()
	}

	s.log.Info(fmt.Sprintf("%s will be removed from %q in %s", invitee.Name, room.Topic, after),
		"room_id", room.ID, "invitee_id", invitee.ID)
	return key
}

// Run ties evictions to ctx: a running removal sees ctx cancelled and the
// pending ones are dropped once ctx is done.
func (s *EvictionScheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	<-ctx.Done()

	s.mu.Lock()
	dropped := s.pending
	s.pending = make(map[domain.EvictionKey]pendingEviction)
	s.mu.Unlock()
	for _, entry := range dropped {
		stopTimer(entry.timer)
	}
	s.log.Info("Eviction scheduler stopped", "dropped", len(dropped))
	return ctx.Err()
}

func (s *EvictionScheduler) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

// Cancel stops a pending eviction. It returns false when nothing was pending.
func (s *EvictionScheduler) Cancel(key domain.EvictionKey) bool {
	s.mu.Lock()
	entry, ok := s.pending[key]
	delete(s.pending, key)
	s.mu.Unlock()

	if !ok {
		return false
	}
	stopTimer(entry.timer)
	s.metrics.Eviction(observability.EvictionCancelled)
	return true
}

// Pending returns the keys of the evictions not yet fired, sorted.
func (s *EvictionScheduler) Pending() []domain.EvictionKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]domain.EvictionKey, 0, len(s.pending))
	for key := range s.pending {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b domain.EvictionKey) int {
		return cmp.Or(cmp.Compare(a.Room, b.Room), cmp.Compare(a.Contact, b.Contact))
	})
	return keys
}

func (s *EvictionScheduler) fire(key domain.EvictionKey, generation uint64, room domain.Room, invitee domain.Contact) {
	s.mu.Lock()
	entry, ok := s.pending[key]
	if !ok || entry.generation != generation {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(s.context(), s.timeout)
	defer cancel()
	log := s.log.With("room_id", room.ID, "room_topic", room.Topic, "invitee", invitee.Name, "invitee_id", invitee.ID)
	if ctx.Err() != nil {
		log.Warn("Eviction skipped, scheduler is stopping")
		return
	}

	member, err := s.platform.IsMember(ctx, room.ID, invitee.ID)
	if err != nil {
		s.metrics.Eviction(observability.EvictionFailed)
		log.Error("Eviction aborted, membership lookup failed", "error", err)
		return
	}
	if !member {
		s.metrics.Eviction(observability.EvictionAlreadyGone)
		log.Info(fmt.Sprintf("%s already left, nothing to remove", invitee.Name))
		return
	}
	if err := s.platform.RemoveMember(ctx, room.ID, invitee.ID); err != nil {
		s.metrics.Eviction(observability.EvictionFailed)
		log.Error("Eviction failed", "error", err)
		return
	}
	s.metrics.Eviction(observability.EvictionRemoved)
	log.Info(fmt.Sprintf("%s removed from %q", invitee.Name, room.Topic))
}

// stopTimer tolerates the entry of a Schedule call that has not armed its timer yet.
func stopTimer(timer clock.Timer) {
	if timer != nil {
		timer.Stop()
	}
}
