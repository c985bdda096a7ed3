//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"activity-booking/internal/usecase/commands"
	"activity-booking/internal/usecase/shared"
	commandsmock "activity-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDispatchDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	notifier := commandsmock.NewMockNotifier(ctrl)
	uc := commands.NewNotificationUseCase(m.uow, notifier, 10, m.clock)

	ok := shared.NotificationJob{ID: uuid.New(), Kind: "email", Topic: commands.TopicOrderPaid, Payload: []byte(`{"a":1}`)}
	flaky := shared.NotificationJob{ID: uuid.New(), Kind: "email", Topic: commands.TopicOrderCancelled, Payload: []byte(`{}`), Attempts: 2}

	m.notifications.EXPECT().ClaimDue(gomock.Any(), fixedNow, int32(5), int32(10)).
		Return([]shared.NotificationJob{ok, flaky}, nil)
	notifier.EXPECT().Notify(gomock.Any(), commands.TopicOrderPaid, ok.Payload).Return(nil)
	notifier.EXPECT().Notify(gomock.Any(), commands.TopicOrderCancelled, flaky.Payload).Return(errors.New("broker down"))
	m.notifications.EXPECT().MarkSent(gomock.Any(), ok.ID, fixedNow).Return(nil)
	// third attempt backs off 2m
	m.notifications.EXPECT().MarkFailed(gomock.Any(), flaky.ID, "broker down", fixedNow.Add(2*time.Minute), fixedNow).Return(nil)

	res, err := uc.DispatchDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &commands.DispatchResult{Sent: 1, Failed: 1}, res)
}

func TestDispatchDue_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	uc := commands.NewNotificationUseCase(m.uow, commandsmock.NewMockNotifier(ctrl), 0, m.clock)

	m.notifications.EXPECT().ClaimDue(gomock.Any(), fixedNow, int32(5), int32(50)).Return(nil, nil)

	res, err := uc.DispatchDue(context.Background())

	require.NoError(t, err)
	assert.Zero(t, res.Sent)
}
