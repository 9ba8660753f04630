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

var _ contract.IMembershipService = (*MembershipService)(nil)

// JoinState is a step of the join policy.
type JoinState string

const (
	JoinStart          JoinState = "START"
	JoinOwnerInvited   JoinState = "OWNER_INVITED"
	JoinForeignInvited JoinState = "FOREIGN_INVITED"
	JoinTerminal       JoinState = "TERMINAL"
)

// MembershipService enforces that only the bot's own account invites
// members into the managed room.
type MembershipService struct {
	log        *slog.Logger
	state      *domain.State
	dispatcher contract.IMessageDispatcher
	platform   contract.Platform
	scheduler  contract.IEvictionScheduler
	metrics    *observability.Metrics
	policy     Policy
}

func NewMembershipService(log *slog.Logger, state *domain.State, dispatcher contract.IMessageDispatcher,
	platform contract.Platform, scheduler contract.IEvictionScheduler,
	metrics *observability.Metrics, policy Policy) *MembershipService {
	return &MembershipService{
		log:        log,
		state:      state,
		dispatcher: dispatcher,
		platform:   platform,
		scheduler:  scheduler,
		metrics:    metrics,
		policy:     policy,
	}
}

// OnJoin runs the join policy until Terminal. Every step of a branch is
// attempted even when an earlier one failed; the failures come back together.
func (s *MembershipService) OnJoin(ctx context.Context, evt event.MembershipJoined) error {
	room, invitee, inviter := *evt.Room, *evt.Invitee, *evt.Inviter
	log := s.log.With("room_id", room.ID, "invitee", invitee.Name, "inviter", inviter.Name)

	managed, ok := s.state.ManagedRoom()
	if !ok || managed.ID != room.ID {
		s.metrics.Decision(observability.OutcomeIgnored)
		log.Debug("Join on an unmanaged room, ignored")
		return nil
	}
	log.Info(fmt.Sprintf("%s joined, invited by %s", invitee.Name, inviter.Name))

	var result *multierror.Error
	current := JoinStart
	for current != JoinTerminal {
		next, err := s.step(ctx, current, room, invitee, inviter)
		if err != nil {
			result = multierror.Append(result, err)
		}
		log.Debug("Join policy transition", "from", current, "to", next)
		current = next
	}
	return result.ErrorOrNil()
}

func (s *MembershipService) step(ctx context.Context, current JoinState,
	room domain.Room, invitee, inviter domain.Contact) (JoinState, error) {
	switch current {
	case JoinStart:
		// The owner is read from the live session on every join.
		session, ok := s.state.Session()
		if !ok {
			return JoinTerminal, fmt.Errorf("%w: join of %s", errors.ErrNoSession, invitee.Name)
		}
		if inviter.ID == session.Account.ID {
			return JoinOwnerInvited, nil
		}
		return JoinForeignInvited, nil
	case JoinOwnerInvited:
		s.metrics.Decision(observability.OutcomeOwnerInvited)
		return JoinTerminal, s.welcome(ctx, room, invitee)
	case JoinForeignInvited:
		s.metrics.Decision(observability.OutcomeForeignInvited)
		return JoinTerminal, s.warnAndEvict(ctx, room, invitee, inviter)
	}
	return JoinTerminal, nil
}

func (s *MembershipService) welcome(ctx context.Context, room domain.Room, invitee domain.Contact) error {
	var result *multierror.Error
	if err := s.dispatcher.Send(ctx, s.policy.ownerWelcome(invitee), &invitee, &room.ID); err != nil {
		result = multierror.Append(result, err)
	}
	if err := s.setTopic(ctx, room, s.policy.welcomeTopic(invitee)); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

func (s *MembershipService) warnAndEvict(ctx context.Context, room domain.Room, invitee, inviter domain.Contact) error {
	var result *multierror.Error
	if err := s.dispatcher.Send(ctx, s.policy.inviterWarning(inviter), &inviter, &room.ID); err != nil {
		result = multierror.Append(result, err)
	}
	if err := s.dispatcher.Send(ctx, s.policy.inviteeNotice(invitee), &invitee, &room.ID); err != nil {
		result = multierror.Append(result, err)
	}
	if err := s.setTopic(ctx, room, s.policy.warnTopic(inviter)); err != nil {
		result = multierror.Append(result, err)
	}
	s.scheduler.Schedule(room, invitee, s.policy.EvictionGrace)
	return result.ErrorOrNil()
}

func (s *MembershipService) setTopic(ctx context.Context, room domain.Room, topic string) error {
	if err := s.platform.SetTopic(ctx, room.ID, topic); err != nil {
		return fmt.Errorf("%w: set topic %q: %w", errors.ErrMembershipMutationFailed, topic, err)
	}
	return nil
}

func (s *MembershipService) OnLeave(_ context.Context, evt event.MembershipLeft) error {
	s.log.Info(fmt.Sprintf("%s left %q, byebye", evt.Leaver.Name, evt.Room.Topic), "room_id", evt.Room.ID)
	return nil
}

func (s *MembershipService) OnTopic(_ context.Context, evt event.TopicChanged) error {
	s.log.Info(fmt.Sprintf("Topic changed from %q to %q by member %s", evt.OldTopic, evt.Topic, evt.Changer.Name),
		"room_id", evt.Room.ID)
	return nil
}
