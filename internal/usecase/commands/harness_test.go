//go:build unit

package commands_test

import (
	"context"
	"time"

	"activity-booking/internal/infra"
	"activity-booking/internal/pkg/clock"
	"activity-booking/internal/pkg/config"
	"activity-booking/internal/usecase/shared"
	sharedmock "activity-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

// txMocks runs every Within callback against one MockTx whose repositories are mocks.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	resources     *sharedmock.MockResourceRepository
	holds         *sharedmock.MockHoldRepository
	cart          *sharedmock.MockCartRepository
	vouchers      *sharedmock.MockVoucherRepository
	orders        *sharedmock.MockOrderRepository
	payments      *sharedmock.MockPaymentRepository
	bookings      *sharedmock.MockBookingRepository
	customers     *sharedmock.MockCustomerRepository
	webhookEvents *sharedmock.MockWebhookEventRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	clock         *clock.MockClock
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		resources:     sharedmock.NewMockResourceRepository(ctrl),
		holds:         sharedmock.NewMockHoldRepository(ctrl),
		cart:          sharedmock.NewMockCartRepository(ctrl),
		vouchers:      sharedmock.NewMockVoucherRepository(ctrl),
		orders:        sharedmock.NewMockOrderRepository(ctrl),
		payments:      sharedmock.NewMockPaymentRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		customers:     sharedmock.NewMockCustomerRepository(ctrl),
		webhookEvents: sharedmock.NewMockWebhookEventRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		clock:         clock.NewMockClock(fixedNow),
	}

	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Resources().Return(m.resources).AnyTimes()
	m.tx.EXPECT().Holds().Return(m.holds).AnyTimes()
	m.tx.EXPECT().Cart().Return(m.cart).AnyTimes()
	m.tx.EXPECT().Vouchers().Return(m.vouchers).AnyTimes()
	m.tx.EXPECT().Orders().Return(m.orders).AnyTimes()
	m.tx.EXPECT().Payments().Return(m.payments).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Customers().Return(m.customers).AnyTimes()
	m.tx.EXPECT().WebhookEvents().Return(m.webhookEvents).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()

	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	return m
}

func bookingConfig() config.BookingConfig {
	return config.NewTestConfig().Booking
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}
