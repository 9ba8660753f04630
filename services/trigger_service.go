package services

import (
	"context"
	"fmt"
	"log/slog"
	"room-bot/contract"
	"room-bot/domain"
	"room-bot/domain/event"
	"room-bot/errors"
	"room-bot/observability"

	"github.com/hashicorp/go-multierror"
)

var _ contract.ITriggerService = (*TriggerService)(nil)

// TriggerService reacts to the trigger word: sent directly it requests an
// invitation, said inside a matching room it gets the sender removed.
type TriggerService struct {
	log        *slog.Logger
	platform   contract.Platform
	rooms      contract.IRoomService
	dispatcher contract.IMessageDispatcher
	metrics    *observability.Metrics
	policy     Policy
}

func NewTriggerService(log *slog.Logger, platform contract.Platform, rooms contract.IRoomService,
	dispatcher contract.IMessageDispatcher, metrics *observability.Metrics, policy Policy) *TriggerService {
	return &TriggerService{
		log:        log,
		platform:   platform,
		rooms:      rooms,
		dispatcher: dispatcher,
		metrics:    metrics,
		policy:     policy,
	}
}

func (s *TriggerService) OnMessage(ctx context.Context, evt event.MessageReceived) error {
	if evt.Content != s.policy.TriggerWord {
		return nil
	}
	sender := *evt.From
	if evt.Room != nil {
		// Matched on topic text, so any room named like the managed one counts.
		if !s.policy.Pattern().Match(evt.Room.Topic) {
			return nil
		}
		return s.evictForMisuse(ctx, *evt.Room, sender)
	}
	return s.requestInvitation(ctx, sender)
}

func (s *TriggerService) evictForMisuse(ctx context.Context, room domain.Room, sender domain.Contact) error {
	s.log.Info(fmt.Sprintf("%s said %q in %q, removing", sender.Name, s.policy.TriggerWord, room.Topic),
		"room_id", room.ID)
	s.metrics.Decision(observability.OutcomeMisuseEvicted)

	var result *multierror.Error
	if err := s.dispatcher.Send(ctx, s.policy.misuseNotice(sender), &sender, &room.ID); err != nil {
		result = multierror.Append(result, err)
	}
	if err := s.platform.RemoveMember(ctx, room.ID, sender.ID); err != nil {
		result = multierror.Append(result, fmt.Errorf("%w: remove %s: %w", errors.ErrMembershipMutationFailed, sender.Name, err))
	}
	return result.ErrorOrNil()
}

func (s *TriggerService) requestInvitation(ctx context.Context, sender domain.Contact) error {
	// 1. Find or create the managed room
	provision, err := s.rooms.FindOrCreate(ctx, sender)
	if err != nil {
		return err
	}
	room := provision.Room
	if provision.Created {
		s.log.Info(fmt.Sprintf("%s room created for %s", s.policy.RoomPrefix, sender.Name), "room_id", room.ID)
		return nil
	}

	// 2. Check membership
	member, err := s.platform.IsMember(ctx, room.ID, sender.ID)
	if err != nil {
		return fmt.Errorf("%w: membership of %s: %w", errors.ErrLookupFailed, sender.Name, err)
	}
	if member {
		s.log.Info(fmt.Sprintf("%s is already in the %s room", sender.Name, s.policy.RoomPrefix))
		s.metrics.Decision(observability.OutcomeAlreadyMember)
		return s.dispatcher.Send(ctx, s.policy.alreadyMember(), &sender, nil)
	}

	// 3. Add and welcome
	if err := s.platform.AddMember(ctx, room.ID, sender.ID); err != nil {
		return fmt.Errorf("%w: add %s: %w", errors.ErrMembershipMutationFailed, sender.Name, err)
	}
	s.metrics.Decision(observability.OutcomeMemberAdded)
	s.log.Info(fmt.Sprintf("%s added to %q", sender.Name, room.Topic), "room_id", room.ID)
	return s.dispatcher.Send(ctx, s.policy.addedWelcome(sender), &sender, &room.ID)
}
