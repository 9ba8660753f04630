package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"room-bot/domain"
	"room-bot/mocks"
	"room-bot/observability"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/clock"
	clocktesting "k8s.io/utils/clock/testing"
)

var (
	dingRoom = domain.Room{ID: "r1", Topic: "ding"}
	dave     = domain.Contact{ID: "dave", Name: "Dave"}
)

func newTestScheduler(t *testing.T) (*EvictionScheduler, *mocks.MockPlatform, *clocktesting.FakeClock, *observability.Metrics) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)
	fakeClock := clocktesting.NewFakeClock(time.Now())
	metrics := observability.NewMetrics()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewEvictionScheduler(log, fakeClock, platform, metrics, time.Second), platform, fakeClock, metrics
}

func TestEvictionScheduler_RemovesAfterGrace(t *testing.T) {
	req := require.New(t)
	scheduler, platform, fakeClock, metrics := newTestScheduler(t)

	// Given Dave is still a member when the grace period ends
	platform.EXPECT().IsMember(gomock.Any(), dingRoom.ID, dave.ID).Return(true, nil)
	platform.EXPECT().RemoveMember(gomock.Any(), dingRoom.ID, dave.ID).Return(nil)

	// When his eviction is scheduled
	key := scheduler.Schedule(dingRoom, dave, 10*time.Second)
	req.Equal(domain.EvictionKey{Room: "r1", Contact: "dave"}, key)
	req.Equal([]domain.EvictionKey{key}, scheduler.Pending())

	// Then nothing happens before the grace period
	fakeClock.Step(9 * time.Second)
	req.Len(scheduler.Pending(), 1)

	// And he is removed once it elapsed
	fakeClock.Step(time.Second)
	req.Empty(scheduler.Pending())
	req.Equal(1.0, testutil.ToFloat64(metrics.Evictions().WithLabelValues(observability.EvictionRemoved)))
}

func TestEvictionScheduler_AlreadyGoneIsNoop(t *testing.T) {
	req := require.New(t)
	scheduler, platform, fakeClock, metrics := newTestScheduler(t)

	// Given Dave left on his own before the grace period ended
	platform.EXPECT().IsMember(gomock.Any(), dingRoom.ID, dave.ID).Return(false, nil)
	platform.EXPECT().RemoveMember(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	scheduler.Schedule(dingRoom, dave, 10*time.Second)
	fakeClock.Step(10 * time.Second)

	req.Equal(1.0, testutil.ToFloat64(metrics.Evictions().WithLabelValues(observability.EvictionAlreadyGone)))
}

func TestEvictionScheduler_NewerScheduleReplacesPending(t *testing.T) {
	req := require.New(t)
	scheduler, platform, fakeClock, metrics := newTestScheduler(t)

	// Given a single removal is expected
	platform.EXPECT().IsMember(gomock.Any(), dingRoom.ID, dave.ID).Return(true, nil).Times(1)
	platform.EXPECT().RemoveMember(gomock.Any(), dingRoom.ID, dave.ID).Return(nil).Times(1)

	// When Dave is scheduled twice, five seconds apart
	scheduler.Schedule(dingRoom, dave, 10*time.Second)
	fakeClock.Step(5 * time.Second)
	scheduler.Schedule(dingRoom, dave, 10*time.Second)

	// Then the first deadline passes without a removal
	fakeClock.Step(5 * time.Second)
	req.Len(scheduler.Pending(), 1)

	// And the newer one removes him
	fakeClock.Step(5 * time.Second)
	req.Empty(scheduler.Pending())
	req.Equal(1.0, testutil.ToFloat64(metrics.Evictions().WithLabelValues(observability.EvictionRescheduled)))
}

func TestEvictionScheduler_Cancel(t *testing.T) {
	req := require.New(t)
	scheduler, platform, fakeClock, _ := newTestScheduler(t)
	platform.EXPECT().IsMember(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	key := scheduler.Schedule(dingRoom, dave, 10*time.Second)

	req.True(scheduler.Cancel(key))
	req.False(scheduler.Cancel(key))
	fakeClock.Step(time.Minute)
	req.Empty(scheduler.Pending())
	req.False(fakeClock.HasWaiters())
}

func TestEvictionScheduler_RemovalFailure(t *testing.T) {
	req := require.New(t)
	scheduler, platform, fakeClock, metrics := newTestScheduler(t)

	platform.EXPECT().IsMember(gomock.Any(), dingRoom.ID, dave.ID).Return(true, nil)
	platform.EXPECT().RemoveMember(gomock.Any(), dingRoom.ID, dave.ID).Return(fmt.Errorf("rejected"))

	scheduler.Schedule(dingRoom, dave, 10*time.Second)
	fakeClock.Step(10 * time.Second)

	req.Equal(1.0, testutil.ToFloat64(metrics.Evictions().WithLabelValues(observability.EvictionFailed)))
}

func TestEvictionScheduler_ImmediateEvictionOnRealClock(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)
	metrics := observability.NewMetrics()
	scheduler := NewEvictionScheduler(logs.GetLoggerFromLevel(slog.LevelDebug), clock.RealClock{}, platform, metrics, time.Second)

	// Given a grace period of zero, so the timer may fire before Schedule returns
	platform.EXPECT().IsMember(gomock.Any(), dingRoom.ID, dave.ID).Return(true, nil)
	platform.EXPECT().RemoveMember(gomock.Any(), dingRoom.ID, dave.ID).Return(nil)

	// When Dave is scheduled
	scheduler.Schedule(dingRoom, dave, 0)

	// Then he is removed and no stale entry is left behind
	req.Eventually(func() bool {
		return testutil.ToFloat64(metrics.Evictions().WithLabelValues(observability.EvictionRemoved)) == 1
	}, time.Second, time.Millisecond)
	req.Empty(scheduler.Pending())
}

func waitRunning(t *testing.T, scheduler *EvictionScheduler) {
	require.Eventually(t, func() bool {
		scheduler.mu.Lock()
		defer scheduler.mu.Unlock()
		return scheduler.ctx != nil
	}, time.Second, time.Millisecond)
}

func TestEvictionScheduler_Run_CancelsRunningRemoval(t *testing.T) {
	req := require.New(t)
	scheduler, platform, fakeClock, metrics := newTestScheduler(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- scheduler.Run(ctx) }()
	waitRunning(t, scheduler)

	// Given the removal is still in flight when shutdown starts
	var seen error
	platform.EXPECT().IsMember(gomock.Any(), dingRoom.ID, dave.ID).Return(true, nil)
	platform.EXPECT().RemoveMember(gomock.Any(), dingRoom.ID, dave.ID).
		DoAndReturn(func(ctx context.Context, _ domain.RoomID, _ domain.ContactID) error {
			cancel()
			<-ctx.Done()
			seen = ctx.Err()
			return seen
		})

	// When the grace period elapses
	scheduler.Schedule(dingRoom, dave, 10*time.Second)
	fakeClock.Step(10 * time.Second)

	// Then the removal observes the shutdown instead of its own timeout
	req.ErrorIs(seen, context.Canceled)
	req.Equal(1.0, testutil.ToFloat64(metrics.Evictions().WithLabelValues(observability.EvictionFailed)))
	req.ErrorIs(<-done, context.Canceled)
}

func TestEvictionScheduler_Run_DropsPendingOnStop(t *testing.T) {
	req := require.New(t)
	scheduler, platform, fakeClock, _ := newTestScheduler(t)
	platform.EXPECT().IsMember(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- scheduler.Run(ctx) }()
	waitRunning(t, scheduler)

	// Given an eviction is pending
	scheduler.Schedule(dingRoom, dave, 10*time.Second)
	req.Len(scheduler.Pending(), 1)

	// When the scheduler stops
	cancel()
	req.ErrorIs(<-done, context.Canceled)

	// Then the eviction never fires
	req.Empty(scheduler.Pending())
	req.False(fakeClock.HasWaiters())
	fakeClock.Step(time.Minute)
}

func TestEvictionScheduler_SkipsAfterStop(t *testing.T) {
	scheduler, platform, fakeClock, _ := newTestScheduler(t)
	platform.EXPECT().IsMember(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- scheduler.Run(ctx) }()
	waitRunning(t, scheduler)
	cancel()
	<-done

	// Given a late schedule after shutdown
	scheduler.Schedule(dingRoom, dave, time.Second)

	// Then firing it does not touch the platform
	fakeClock.Step(time.Second)
}
