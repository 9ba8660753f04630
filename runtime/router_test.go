package runtime

import (
	"context"
	"log/slog"
	"room-bot/domain"
	"room-bot/domain/event"
	"room-bot/mocks"
	"room-bot/runtime/workers"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	clocktesting "k8s.io/utils/clock/testing"
)

const warmup = 3 * time.Second

var (
	bot   = domain.Contact{ID: "bot", Name: "ding-bot"}
	alice = domain.Contact{ID: "alice", Name: "Alice"}
)

type routerFixture struct {
	router     *Router
	state      *domain.State
	clock      *clocktesting.FakeClock
	jobs       chan workers.Job
	telemetry  chan event.Event
	rooms      *mocks.MockIRoomService
	membership *mocks.MockIMembershipService
	trigger    *mocks.MockITriggerService
}

func newRouterFixture(t *testing.T) routerFixture {
	ctrl := gomock.NewController(t)
	f := routerFixture{
		state:      domain.NewState(),
		clock:      clocktesting.NewFakeClock(time.Now()),
		jobs:       make(chan workers.Job, 8),
		telemetry:  make(chan event.Event, 32),
		rooms:      mocks.NewMockIRoomService(ctrl),
		membership: mocks.NewMockIMembershipService(ctrl),
		trigger:    mocks.NewMockITriggerService(ctrl),
	}
	f.router = NewRouter(logs.GetLoggerFromLevel(slog.LevelDebug), RouterConfig{
		Platform:   mocks.NewMockPlatform(ctrl),
		State:      f.state,
		Rooms:      f.rooms,
		Membership: f.membership,
		Trigger:    f.trigger,
		Clock:      f.clock,
		Warmup:     warmup,
		Jobs:       f.jobs,
		Telemetry:  f.telemetry,
	})
	return f
}

func (f routerFixture) login(ctx context.Context) {
	f.router.Route(ctx, event.New(event.SessionEstablishedType, event.SessionEstablished{
		Session: &domain.Session{Account: bot},
	}))
}

// runNext executes the next queued job the way a pool worker would.
func (f routerFixture) runNext(t *testing.T, ctx context.Context) workers.Job {
	select {
	case job := <-f.jobs:
		require.NoError(t, job.Run(ctx))
		return job
	default:
		require.Fail(t, "expected a queued job")
		return workers.Job{}
	}
}

func TestRouter_SessionEstablished_LocatesAfterWarmup(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newRouterFixture(t)

	// When the bot logs in
	f.login(ctx)

	// Then the session is stored at once
	session, ok := f.state.Session()
	req.True(ok)
	req.Equal(bot, session.Account)

	// And the managed room is only located after the warm-up delay
	f.clock.Step(warmup - time.Millisecond)
	req.Empty(f.jobs)

	f.rooms.EXPECT().LocateOrObserve(gomock.Any()).Return(&domain.Room{ID: "r1", Topic: "ding"}, nil)
	f.clock.Step(time.Millisecond)
	job := f.runNext(t, ctx)
	req.Equal("room.locate", job.Name)
}

func TestRouter_SessionEnded_StopsWarmup(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newRouterFixture(t)
	f.rooms.EXPECT().LocateOrObserve(gomock.Any()).Times(0)

	// Given a login whose warm-up is pending
	f.login(ctx)
	req.True(f.clock.HasWaiters())

	// When the session ends before the delay
	f.router.Route(ctx, event.New(event.SessionEndedType, event.SessionEnded{
		Session: &domain.Session{Account: bot},
	}))

	// Then no lookup is ever queued
	req.False(f.clock.HasWaiters())
	f.clock.Step(warmup)
	req.Empty(f.jobs)
	req.False(f.state.Active())

	// And later events are no-ops
	f.router.Route(ctx, event.New(event.MessageReceivedType, event.MessageReceived{From: &alice, Content: "ding"}))
	req.Empty(f.jobs)
}

func TestRouter_SecondLoginReplacesWarmup(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newRouterFixture(t)

	f.login(ctx)
	f.clock.Step(2 * time.Second)
	f.login(ctx)

	// Then only the latest warm-up fires
	f.clock.Step(time.Second)
	req.Empty(f.jobs)

	f.rooms.EXPECT().LocateOrObserve(gomock.Any()).Return(nil, nil).Times(1)
	f.clock.Step(2 * time.Second)
	f.runNext(t, ctx)
	req.Empty(f.jobs)
}

func TestRouter_Message(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newRouterFixture(t)
	f.login(ctx)

	// When the bot receives its own message
	f.router.Route(ctx, event.New(event.MessageReceivedType, event.MessageReceived{From: &bot, Content: "ding"}))

	// Then no handler is involved
	req.Empty(f.jobs)

	// When Alice sends a direct message
	msg := event.MessageReceived{From: &alice, Content: "ding"}
	f.trigger.EXPECT().OnMessage(gomock.Any(), msg).Return(nil)
	f.router.Route(ctx, event.New(event.MessageReceivedType, msg))

	// Then the trigger-word handler gets it
	job := f.runNext(t, ctx)
	req.Equal("trigger.message", job.Name)
}

func TestRouter_Membership_ScopedToObservers(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newRouterFixture(t)
	f.login(ctx)
	room := &domain.Room{ID: "r1", Topic: "ding"}
	joined := event.MembershipJoined{Room: room, Invitee: &alice, Inviter: &bot}
	left := event.MembershipLeft{Room: room, Leaver: &alice}
	topic := event.TopicChanged{Room: room, Topic: "ding - x", OldTopic: "ding", Changer: &alice}

	// When the global subscription reports membership changes
	f.router.Route(ctx, event.New(event.MembershipJoinedType, joined))
	f.router.Route(ctx, event.New(event.MembershipLeftType, left))
	f.router.Route(ctx, event.New(event.TopicChangedType, topic))

	// Then they are only logged
	req.Empty(f.jobs)

	// When the room observers report them
	f.membership.EXPECT().OnJoin(gomock.Any(), joined).Return(nil)
	f.membership.EXPECT().OnLeave(gomock.Any(), left).Return(nil)
	f.membership.EXPECT().OnTopic(gomock.Any(), topic).Return(nil)
	f.router.Route(ctx, event.New(event.MembershipJoinedType, joined).RoomScoped())
	f.router.Route(ctx, event.New(event.MembershipLeftType, left).RoomScoped())
	f.router.Route(ctx, event.New(event.TopicChangedType, topic).RoomScoped())

	// Then each one reaches exactly one handler
	req.Equal("membership.join", f.runNext(t, ctx).Name)
	req.Equal("membership.leave", f.runNext(t, ctx).Name)
	req.Equal("membership.topic", f.runNext(t, ctx).Name)
}

func TestRouter_MalformedEvent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newRouterFixture(t)
	f.login(ctx)
	<-f.telemetry

	// When a join arrives without inviter
	f.router.Route(ctx, event.New(event.MembershipJoinedType, event.MembershipJoined{
		Room:    &domain.Room{ID: "r1", Topic: "ding"},
		Invitee: &alice,
	}).RoomScoped())

	// Then it is dropped and reported
	req.Empty(f.jobs)
	evt := <-f.telemetry
	req.Equal(event.MalformedType, evt.Type)
	req.Equal(event.MembershipJoinedType, evt.Payload.(event.Malformed).Original)
}

func TestRouter_EventsBeforeLoginAreIgnored(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	f.router.Route(context.Background(), event.New(event.MessageReceivedType, event.MessageReceived{From: &alice, Content: "ding"}))

	req.Empty(f.jobs)
}

func TestDigest(t *testing.T) {
	req := require.New(t)

	req.Equal("<Alice>:ding", digest(event.MessageReceived{From: &alice, Content: "ding"}))
	req.Equal("[ding]<Alice>:hi", digest(event.MessageReceived{From: &alice, Room: &domain.Room{Topic: "ding"}, Content: "hi"}))
}
