//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/voucher"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/tests/common/builder"
	repositorymock "activity-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVoucherRepository_LockByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row mapped to domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockVoucherWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewVoucherRepository(mockQueries, mockDB)

		row := builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) {
			b.RemainingCents = 5000
		}).BuildInfra()
		mockQueries.EXPECT().GetVoucherByCodeForUpdate(ctx, mockDB, row.Code).Return(row, nil)

		v, err := repo.LockByCode(ctx, voucher.Code(row.Code))
		require.NoError(t, err)
		assert.Equal(t, row.ID, v.ID())
		assert.Equal(t, money.Cents(5000), v.Remaining())
		assert.Equal(t, money.Cents(20000), v.OriginalAmount())
	})

	t.Run("error: unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockVoucherWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewVoucherRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetVoucherByCodeForUpdate(ctx, mockDB, "SCP-NOPE-0000").Return(sqlc.Vouchers{}, pgx.ErrNoRows)

		v, err := repo.LockByCode(ctx, voucher.Code("SCP-NOPE-0000"))
		assert.Nil(t, v)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestVoucherRepository_Insert(t *testing.T) {
	ctx := context.Background()
	v := builder.NewVoucherBuilder().BuildDomain()

	testCases := []struct {
		name       string
		err        error
		want       bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: inserted", want: true},
		{name: "success: code or source item already taken", err: pgx.ErrNoRows, want: false},
		{name: "error: unexpected unique violation", err: pgErr("23505"), expectKind: infra.KindDuplicateKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockVoucherWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewVoucherRepository(mockQueries, mockDB)

			mockQueries.EXPECT().InsertVoucher(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertVoucherParams) (uuid.UUID, error) {
					assert.Equal(t, v.Code().String(), arg.Code)
					assert.Equal(t, arg.OriginalCents, arg.RemainingCents)
					return arg.ID, tc.err
				})

			ok, err := repo.Insert(ctx, v)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestVoucherRepository_CreateApplications(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	orderID := uuid.New()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockVoucherWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewVoucherRepository(mockQueries, mockDB)

	apps := []voucher.Application{
		{VoucherID: uuid.New(), Code: "SCP-A-0001", UsedAmount: money.Cents(10000)},
		{VoucherID: uuid.New(), Code: "SCP-B-0002", UsedAmount: money.Cents(2500)},
	}
	var seen []int64
	mockQueries.EXPECT().CreateVoucherApplication(ctx, mockDB, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateVoucherApplicationParams) error {
			assert.Equal(t, orderID, arg.OrderID)
			assert.NotEqual(t, uuid.Nil, arg.ID)
			seen = append(seen, arg.UsedCents)
			return nil
		})

	require.NoError(t, repo.CreateApplications(ctx, orderID, apps, now))
	assert.Equal(t, []int64{10000, 2500}, seen)
}

func TestVoucherRepository_ListOpenApplications(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockVoucherWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewVoucherRepository(mockQueries, mockDB)

	row := sqlc.VoucherApplications{ID: uuid.New(), OrderID: orderID, VoucherID: uuid.New(), UsedCents: 4200}
	mockQueries.EXPECT().ListOpenApplicationsByOrder(ctx, mockDB, orderID).Return([]sqlc.VoucherApplications{row}, nil)

	got, err := repo.ListOpenApplications(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, row.VoucherID, got[0].VoucherID)
	assert.Equal(t, money.Cents(4200), got[0].Used)
}
