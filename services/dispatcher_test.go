package services

import (
	"context"
	"fmt"
	"room-bot/domain"
	"room-bot/errors"
	"room-bot/mocks"
	"room-bot/observability"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMessageDispatcher_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)
	metrics := observability.NewMetrics()
	dispatcher := NewMessageDispatcher(testLogger(), platform, metrics)

	t.Run("should hand one message scoped to the room and addressed to the contact", func(t *testing.T) {
		req := require.New(t)
		roomID := dingID

		platform.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg domain.Message) error {
				req.NotEmpty(msg.ID)
				req.Equal("hello", msg.Content)
				req.Equal(dingID, *msg.Room)
				req.Equal(alice.ID, *msg.To)
				return nil
			}).
			Times(1)

		req.NoError(dispatcher.Send(context.Background(), "hello", &alice, &roomID))
	})

	t.Run("should send a direct message without room", func(t *testing.T) {
		req := require.New(t)

		platform.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg domain.Message) error {
				req.True(msg.Direct())
				return nil
			})

		req.NoError(dispatcher.Send(context.Background(), "no need to ding again", &alice, nil))
	})

	t.Run("should wrap and count a failed send", func(t *testing.T) {
		req := require.New(t)

		platform.EXPECT().Send(gomock.Any(), gomock.Any()).Return(fmt.Errorf("offline"))

		err := dispatcher.Send(context.Background(), "hello", nil, nil)

		req.ErrorIs(err, errors.ErrSendFailed)
		req.Equal(1.0, testutil.ToFloat64(metrics.Messages().WithLabelValues("failed")))
		req.Equal(2.0, testutil.ToFloat64(metrics.Messages().WithLabelValues("ok")))
	})
}
