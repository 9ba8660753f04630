package services

import (
	"context"
	"fmt"
	"room-bot/domain"
	"room-bot/domain/event"
	"room-bot/errors"
	"room-bot/mocks"
	"room-bot/observability"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type membershipFixture struct {
	service    *MembershipService
	state      *domain.State
	platform   *mocks.MockPlatform
	dispatcher *mocks.MockIMessageDispatcher
	scheduler  *mocks.MockIEvictionScheduler
	metrics    *observability.Metrics
	room       domain.Room
}

func newMembershipFixture(t *testing.T) membershipFixture {
	ctrl := gomock.NewController(t)
	f := membershipFixture{
		state:      loggedIn(bot),
		platform:   mocks.NewMockPlatform(ctrl),
		dispatcher: mocks.NewMockIMessageDispatcher(ctrl),
		scheduler:  mocks.NewMockIEvictionScheduler(ctrl),
		metrics:    observability.NewMetrics(),
		room:       domain.Room{ID: dingID, Topic: "ding"},
	}
	f.state.SetManagedRoom(f.room)
	f.service = NewMembershipService(testLogger(), f.state, f.dispatcher, f.platform, f.scheduler, f.metrics, testPolicy())
	return f
}

func (f membershipFixture) join(invitee, inviter domain.Contact) event.MembershipJoined {
	room := f.room
	return event.MembershipJoined{Room: &room, Invitee: &invitee, Inviter: &inviter}
}

func TestMembershipService_OnJoin_OwnerInvited(t *testing.T) {
	req := require.New(t)
	f := newMembershipFixture(t)

	// Then the invitee is welcomed and no eviction is scheduled
	f.dispatcher.EXPECT().Send(gomock.Any(), "@Alice Welcome to my room! :)", &alice, &f.room.ID).Return(nil)
	f.platform.EXPECT().SetTopic(gomock.Any(), dingID, "ding - welcome Alice").Return(nil)
	f.scheduler.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// When the bot invites Alice
	err := f.service.OnJoin(context.Background(), f.join(alice, bot))

	req.NoError(err)
	req.Equal(1.0, testutil.ToFloat64(f.metrics.Decisions().WithLabelValues(observability.OutcomeOwnerInvited)))
}

func TestMembershipService_OnJoin_ForeignInvited(t *testing.T) {
	req := require.New(t)
	f := newMembershipFixture(t)

	// Then Carol and Dave get distinct warnings, the topic flags Carol
	// and Dave's eviction is scheduled after the grace period
	gomock.InOrder(
		f.dispatcher.EXPECT().Send(gomock.Any(),
			"@Carol RULE1: Invitation is limited to me, the owner only. Please do not invite people without notify me.",
			&carol, &f.room.ID).Return(nil),
		f.dispatcher.EXPECT().Send(gomock.Any(),
			`@Dave Please contact me: by send "ding" to me, I will re-send you a invitation. Now I will remove you out, sorry.`,
			&dave, &f.room.ID).Return(nil),
		f.platform.EXPECT().SetTopic(gomock.Any(), dingID, "ding - warn Carol").Return(nil),
		f.scheduler.EXPECT().Schedule(f.room, dave, 10*time.Second).
			Return(domain.EvictionKey{Room: dingID, Contact: dave.ID}),
	)

	// When Carol invites Dave
	err := f.service.OnJoin(context.Background(), f.join(dave, carol))

	req.NoError(err)
	req.Equal(1.0, testutil.ToFloat64(f.metrics.Decisions().WithLabelValues(observability.OutcomeForeignInvited)))
}

func TestMembershipService_OnJoin_ForeignInvited_ContinuesPastFailures(t *testing.T) {
	req := require.New(t)
	f := newMembershipFixture(t)

	// Given every message and the topic update fail
	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.ErrSendFailed).Times(2)
	f.platform.EXPECT().SetTopic(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("rejected"))

	// Then the eviction is still scheduled
	f.scheduler.EXPECT().Schedule(f.room, dave, 10*time.Second).Times(1)

	err := f.service.OnJoin(context.Background(), f.join(dave, carol))

	// And the three failures come back together
	var merr *multierror.Error
	req.ErrorAs(err, &merr)
	req.Len(merr.Errors, 3)
	req.ErrorIs(err, errors.ErrSendFailed)
	req.ErrorIs(err, errors.ErrMembershipMutationFailed)
}

func TestMembershipService_OnJoin_OwnerReadFromLiveSession(t *testing.T) {
	req := require.New(t)
	f := newMembershipFixture(t)

	// Given the bot logged in again under another account
	other := domain.Contact{ID: "bot-2", Name: "ding-bot-2"}
	f.state.Login(domain.Session{Account: other})
	f.state.SetManagedRoom(f.room)

	// Then an invitation by the former account is foreign
	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.platform.EXPECT().SetTopic(gomock.Any(), dingID, "ding - warn ding-bot").Return(nil)
	f.scheduler.EXPECT().Schedule(f.room, alice, gomock.Any())

	req.NoError(f.service.OnJoin(context.Background(), f.join(alice, bot)))
}

func TestMembershipService_OnJoin_IgnoresOtherRooms(t *testing.T) {
	req := require.New(t)
	f := newMembershipFixture(t)
	other := domain.Room{ID: "r2", Topic: "ding too"}

	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.scheduler.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := f.service.OnJoin(context.Background(), event.MembershipJoined{Room: &other, Invitee: &dave, Inviter: &carol})

	req.NoError(err)
	req.Equal(1.0, testutil.ToFloat64(f.metrics.Decisions().WithLabelValues(observability.OutcomeIgnored)))
}

func TestMembershipService_OnJoin_NoSession(t *testing.T) {
	req := require.New(t)
	f := newMembershipFixture(t)
	f.state.Logout()

	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := f.service.OnJoin(context.Background(), f.join(dave, carol))

	req.ErrorIs(err, errors.ErrNoSession)
}

func TestMembershipService_OnLeaveAndTopic(t *testing.T) {
	req := require.New(t)
	f := newMembershipFixture(t)
	room := f.room

	req.NoError(f.service.OnLeave(context.Background(), event.MembershipLeft{Room: &room, Leaver: &dave}))
	req.NoError(f.service.OnTopic(context.Background(), event.TopicChanged{
		Room: &room, Topic: "ding - x", OldTopic: "ding", Changer: &carol,
	}))
}
