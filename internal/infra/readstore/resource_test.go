//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"activity-booking/internal/infra"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockResourceReadQueries struct {
	mock.Mock
}

func (m *MockResourceReadQueries) GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Resources), args.Error(1)
}

func (m *MockResourceReadQueries) CountBookingsByResource(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, resourceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResourceReadQueries) SumActiveHoldsByResource(ctx context.Context, db sqlc.DBTX, arg sqlc.SumActiveHoldsByResourceParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestFindCapacity(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	row := builder.NewResourceBuilder().BuildInfra()

	tests := []struct {
		name     string
		setup    func(m *MockResourceReadQueries)
		want     *resourceCounts
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "success - counts combined",
			setup: func(m *MockResourceReadQueries) {
				m.On("GetResourceByID", ctx, mock.Anything, row.ID).Return(row, nil)
				m.On("CountBookingsByResource", ctx, mock.Anything, row.ID).Return(int64(5), nil)
				m.On("SumActiveHoldsByResource", ctx, mock.Anything, sqlc.SumActiveHoldsByResourceParams{
					ResourceID: row.ID,
					Now:        ts(now),
				}).Return(int64(1), nil)
			},
			want: &resourceCounts{Total: 6, Confirmed: 5, Held: 1},
		},
		{
			name: "resource not found",
			setup: func(m *MockResourceReadQueries) {
				m.On("GetResourceByID", ctx, mock.Anything, row.ID).Return(sqlc.Resources{}, pgx.ErrNoRows)
			},
			wantKind: infra.KindNotFound,
		},
		{
			name: "hold sum fails",
			setup: func(m *MockResourceReadQueries) {
				m.On("GetResourceByID", ctx, mock.Anything, row.ID).Return(row, nil)
				m.On("CountBookingsByResource", ctx, mock.Anything, row.ID).Return(int64(0), nil)
				m.On("SumActiveHoldsByResource", ctx, mock.Anything, mock.Anything).Return(int64(0), assert.AnError)
			},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockResourceReadQueries)
			tt.setup(mockQueries)
			store := NewResourceReadStore(mockQueries)

			got, err := store.FindCapacity(ctx, nil, row.ID, now)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.Kind, got.Kind)
			assert.Equal(t, tt.want.Total, got.Total)
			assert.Equal(t, tt.want.Confirmed, got.Confirmed)
			assert.Equal(t, tt.want.Held, got.Held)
			mockQueries.AssertExpectations(t)
		})
	}
}

type resourceCounts struct {
	Total, Confirmed, Held int
}

func TestIdempotencyReadStore_Get(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	orderID := uuid.New()

	tests := []struct {
		name      string
		row       sqlc.IdempotencyKeys
		err       error
		wantFound bool
	}{
		{
			name: "live key",
			row: sqlc.IdempotencyKeys{
				Key:           "k1",
				Scope:         "sess-1",
				Status:        "completed",
				RequestHash:   "h",
				ResultOrderID: pgtype.UUID{Bytes: orderID, Valid: true},
				ExpiresAt:     ts(now.Add(time.Hour)),
			},
			wantFound: true,
		},
		{
			name: "expired key is absent",
			row: sqlc.IdempotencyKeys{
				Key:         "k1",
				Scope:       "sess-1",
				Status:      "processing",
				RequestHash: "h",
				ExpiresAt:   ts(now.Add(-time.Minute)),
			},
		},
		{
			name: "missing key",
			err:  pgx.ErrNoRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockIdempotencyReadQueries)
			mockQueries.On("GetIdempotencyKey", ctx, mock.Anything, sqlc.GetIdempotencyKeyParams{Key: "k1", Scope: "sess-1"}).Return(tt.row, tt.err)
			store := NewIdempotencyReadStore(mockQueries)
			store.now = func() time.Time { return now }

			rec, err := store.Get(ctx, nil, "k1", "sess-1")
			if !tt.wantFound {
				assert.True(t, infra.IsKind(err, infra.KindNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &orderID, rec.ResultOrderID)
		})
	}
}

type MockIdempotencyReadQueries struct {
	mock.Mock
}

func (m *MockIdempotencyReadQueries) GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.IdempotencyKeys), args.Error(1)
}
