//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"activity-booking/internal/domain/order"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/tests/common/builder"
	repositorymock "activity-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: items written in position order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		o, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Seats = 2
			b.VoucherAmount = 5000
		}).BuildDomain()
		require.NoError(t, err)

		var positions []int32
		var types []string
		gomock.InOrder(
			mockQueries.EXPECT().CreateOrder(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderParams) error {
					assert.Equal(t, o.ID(), arg.ID)
					assert.Equal(t, order.StatusPending.String(), arg.Status)
					return nil
				}),
			mockQueries.EXPECT().CreateOrderItem(ctx, mockDB, gomock.Any()).Times(3).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderItemParams) error {
					assert.Equal(t, o.ID(), arg.OrderID)
					positions = append(positions, arg.Position)
					types = append(types, arg.ItemType)
					return nil
				}),
		)

		require.NoError(t, repo.Create(ctx, o))
		assert.Equal(t, []int32{0, 1, 2}, positions)
		assert.Equal(t, order.ItemVoucherPurchase.String(), types[2])
	})

	t.Run("error: duplicate order number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateOrder(ctx, mockDB, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "orders_order_number_key"})

		err = repo.Create(ctx, o)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: second pending order for the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateOrder(ctx, mockDB, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "orders_pending_session_key"})

		err = repo.Create(ctx, o)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestOrderRepository_LockByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "error: order not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: lock timeout", err: errors.New("canceling statement due to lock timeout"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOrderRepository(mockQueries, mockDB)
			id := uuid.New()

			mockQueries.EXPECT().GetOrderByIDForUpdate(ctx, mockDB, id).Return(sqlc.Orders{}, tc.err)

			o, err := repo.LockByID(ctx, id)
			assert.Nil(t, o)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestOrderRepository_PendingIDBySession(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns the pending order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)
		id := uuid.New()

		mockQueries.EXPECT().GetPendingOrderIDBySession(ctx, mockDB, "sess-1").Return(id, nil)

		got, err := repo.PendingIDBySession(ctx, "sess-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, id, *got)
	})

	t.Run("success: nil when the session has no pending order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetPendingOrderIDBySession(ctx, mockDB, "sess-1").Return(uuid.Nil, pgx.ErrNoRows)

		got, err := repo.PendingIDBySession(ctx, "sess-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("error: query failure is a db failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetPendingOrderIDBySession(ctx, mockDB, "sess-1").Return(uuid.Nil, errors.New("connection reset"))

		got, err := repo.PendingIDBySession(ctx, "sess-1")
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
