//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"activity-booking/internal/domain/hold"
	"activity-booking/internal/domain/resource"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	repositorymock "activity-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pgTime(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TestHoldRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	h, err := hold.NewHold("sess-1", uuid.New(), resource.KindSingleSlot, 2, 15*time.Minute, now)
	require.NoError(t, err)

	t.Run("success: returns stored hold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockHoldWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewHoldRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpsertHold(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertHoldParams) (sqlc.TemporaryHolds, error) {
				assert.Equal(t, "sess-1", arg.CheckoutSessionID)
				assert.Equal(t, int32(2), arg.Quantity)
				assert.Equal(t, now.Add(15*time.Minute), arg.ExpiresAt.Time)
				return sqlc.TemporaryHolds{
					ID:                arg.ID,
					CheckoutSessionID: arg.CheckoutSessionID,
					ResourceID:        arg.ResourceID,
					ResourceKind:      arg.ResourceKind,
					Quantity:          arg.Quantity,
					ExpiresAt:         arg.ExpiresAt,
					CreatedAt:         arg.CreatedAt,
				}, nil
			})

		stored, err := repo.Upsert(ctx, h)
		require.NoError(t, err)
		assert.Equal(t, h.ID(), stored.ID())
		assert.Equal(t, resource.KindSingleSlot, stored.Kind())
		assert.True(t, stored.IsActive(now))
	})

	t.Run("error: foreign key violation when resource vanished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockHoldWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewHoldRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpsertHold(ctx, mockDB, gomock.Any()).Return(sqlc.TemporaryHolds{}, pgErr("23503"))

		_, err := repo.Upsert(ctx, h)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestHoldRepository_LockActive(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	resourceID := uuid.New()

	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: active hold found"},
		{name: "error: no active hold", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", err: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockHoldWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewHoldRepository(mockQueries, mockDB)

			row := sqlc.TemporaryHolds{
				ID:                uuid.New(),
				CheckoutSessionID: "sess-1",
				ResourceID:        resourceID,
				ResourceKind:      "multi_day_session",
				Quantity:          1,
				ExpiresAt:         pgTime(now.Add(time.Minute)),
				CreatedAt:         pgTime(now),
			}
			mockQueries.EXPECT().GetActiveHoldForUpdate(ctx, mockDB, sqlc.GetActiveHoldForUpdateParams{
				CheckoutSessionID: "sess-1",
				ResourceID:        resourceID,
				Now:               pgTime(now),
			}).Return(row, tc.err)

			h, err := repo.LockActive(ctx, "sess-1", resourceID, now)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, h.ID())
		})
	}
}

func TestHoldRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockHoldWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewHoldRepository(mockQueries, mockDB)

	mockQueries.EXPECT().DeleteExpiredHolds(ctx, mockDB, pgTime(now)).Return(int64(3), nil)

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
