package services

import (
	"context"
	"fmt"
	"log/slog"
	"room-bot/contract"
	"room-bot/domain"
	"room-bot/errors"
	"room-bot/observability"

	"golang.org/x/sync/singleflight"
)

var _ contract.IRoomService = (*RoomService)(nil)

const findOrCreateKey = "managed-room"

// RoomService locates the managed room, creates it on demand and attaches
// its observers.
type RoomService struct {
	log        *slog.Logger
	platform   contract.Platform
	state      *domain.State
	registry   contract.IRegistry
	dispatcher contract.IMessageDispatcher
	metrics    *observability.Metrics
	policy     Policy
	flight     singleflight.Group
}

type flightResult struct {
	provision domain.Provision
	requester domain.ContactID
}

func NewRoomService(log *slog.Logger, platform contract.Platform, state *domain.State,
	registry contract.IRegistry, dispatcher contract.IMessageDispatcher,
	metrics *observability.Metrics, policy Policy) *RoomService {
	return &RoomService{
		log:        log,
		platform:   platform,
		state:      state,
		registry:   registry,
		dispatcher: dispatcher,
		metrics:    metrics,
		policy:     policy,
	}
}

// LocateOrObserve finds the managed room and attaches its observers once.
// A missing room is not an error: it is created on the first request.
func (s *RoomService) LocateOrObserve(ctx context.Context) (*domain.Room, error) {
	pattern := s.policy.Pattern()
	room, err := s.platform.FindRoom(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: find room %s: %w", errors.ErrLookupFailed, pattern, err)
	}
	if room == nil {
		s.log.Warn(fmt.Sprintf("There is no room named %s (yet)", s.policy.RoomPrefix), "pattern", pattern.String())
		return nil, nil
	}
	return room, s.observe(ctx, *room)
}

func (s *RoomService) observe(ctx context.Context, room domain.Room) error {
	s.state.SetManagedRoom(room)
	if !s.registry.Observe(room.ID) {
		s.log.Debug("Observers already attached", "room_id", room.ID)
		return nil
	}
	if err := s.platform.WatchRoom(ctx, room.ID); err != nil {
		s.registry.Forget(room.ID)
		return fmt.Errorf("%w: watch room %s: %w", errors.ErrLookupFailed, room.ID, err)
	}
	s.log.Info(fmt.Sprintf("Start monitoring %q join/leave/topic events", room.Topic), "room_id", room.ID)
	return nil
}

// CreateManagedRoom creates the room with the requester and the helper
// contact, since the platform refuses a group with fewer than two other
// members. Topic and confirmation failures are logged, the room exists anyway.
func (s *RoomService) CreateManagedRoom(ctx context.Context, requester domain.Contact) (*domain.Room, error) {
	// 1. Resolve the helper contact
	helper, err := s.platform.FindContact(ctx, s.policy.HelperName)
	if err != nil {
		return nil, fmt.Errorf("%w: find contact %q: %w", errors.ErrLookupFailed, s.policy.HelperName, err)
	}
	if helper == nil {
		return nil, fmt.Errorf("%w: %q", errors.ErrHelperNotFound, s.policy.HelperName)
	}
	if helper.Ready {
		s.log.Info(fmt.Sprintf("Helper contact ok, got %s", helper.Name))
	} else {
		s.log.Warn(fmt.Sprintf("Helper contact %s is not ready yet", helper.Name))
	}

	// 2. Create the room
	room, err := s.platform.CreateRoom(ctx, []domain.Contact{requester, *helper}, s.policy.RoomPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrCreationFailed, err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: platform returned no room", errors.ErrCreationFailed)
	}
	s.metrics.Decision(observability.OutcomeRoomCreated)
	s.log.Info(fmt.Sprintf("New %s room created: %s", s.policy.RoomPrefix, room), "requester", requester.Name)

	// 3. Mark it and confirm
	topic := s.policy.createdTopic()
	if err := s.platform.SetTopic(ctx, room.ID, topic); err != nil {
		s.log.Error("Setting created topic failed", "room_id", room.ID, "error", err)
	} else {
		room.Topic = topic
	}
	if err := s.dispatcher.Send(ctx, topic, nil, &room.ID); err != nil {
		s.log.Error("Creation confirmation failed", "room_id", room.ID, "error", err)
	}
	return room, nil
}

// FindOrCreate returns the managed room, creating it when absent.
// Concurrent callers share one sequence. Only the caller that triggered the
// creation sees Created, the others get the room as found so they go
// through the membership check.
func (s *RoomService) FindOrCreate(ctx context.Context, requester domain.Contact) (domain.Provision, error) {
	v, err, shared := s.flight.Do(findOrCreateKey, func() (any, error) {
		provision, err := s.findOrCreate(ctx, requester)
		return flightResult{provision: provision, requester: requester.ID}, err
	})
	if err != nil {
		return domain.Provision{}, err
	}
	result := v.(flightResult)
	provision := result.provision
	if shared && provision.Created && result.requester != requester.ID {
		provision.Created = false
	}
	return provision, nil
}

func (s *RoomService) findOrCreate(ctx context.Context, requester domain.Contact) (domain.Provision, error) {
	pattern := s.policy.Pattern()
	room, err := s.platform.FindRoom(ctx, pattern)
	if err != nil {
		return domain.Provision{}, fmt.Errorf("%w: find room %s: %w", errors.ErrLookupFailed, pattern, err)
	}
	if room != nil {
		s.log.Debug(fmt.Sprintf("Got %s room", s.policy.RoomPrefix), "room_id", room.ID)
		return domain.Provision{Room: *room}, nil
	}

	s.log.Info(fmt.Sprintf("%s room not found, try to create one", s.policy.RoomPrefix), "requester", requester.Name)
	created, err := s.CreateManagedRoom(ctx, requester)
	if err != nil {
		return domain.Provision{}, err
	}

	located, err := s.LocateOrObserve(ctx)
	if err != nil {
		s.log.Error("Locating the new room failed", "room_id", created.ID, "error", err)
	}
	if located == nil {
		// The directory may not list the new room yet.
		if err := s.observe(ctx, *created); err != nil {
			s.log.Error("Observing the new room failed", "room_id", created.ID, "error", err)
		}
	}
	return domain.Provision{Room: *created, Created: true}, nil
}
