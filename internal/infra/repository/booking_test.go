//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"activity-booking/internal/domain/booking"
	"activity-booking/internal/domain/order"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository"
	"activity-booking/tests/common/builder"
	repositorymock "activity-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	item, err := order.NewBookingItem(builder.NewResourceBuilder().BuildDomain(), builder.Participant())
	require.NoError(t, err)
	b, err := booking.FromOrderItem(item, uuid.New(), uuid.New(), time.Now())
	require.NoError(t, err)
	return b
}

func TestBookingRepository_Insert(t *testing.T) {
	ctx := context.Background()
	existingID := uuid.New()

	testCases := []struct {
		name         string
		setupMock    func(*repositorymock.MockBookingWriteQueries, *mockDBTX, *booking.Booking)
		wantCreated  bool
		wantExisting bool
		expectKind   infra.RepositoryErrorKind
	}{
		{
			name: "success: new booking",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db *mockDBTX, b *booking.Booking) {
				m.EXPECT().InsertBooking(ctx, db, gomock.Any()).Return(b.ID(), nil)
			},
			wantCreated: true,
		},
		{
			name: "success: replay returns the existing booking",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db *mockDBTX, b *booking.Booking) {
				m.EXPECT().InsertBooking(ctx, db, gomock.Any()).Return(uuid.Nil, pgx.ErrNoRows)
				m.EXPECT().GetBookingIDByOrderItem(ctx, db, b.OrderItemID()).Return(existingID, nil)
			},
			wantExisting: true,
		},
		{
			name: "error: insert fails",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db *mockDBTX, _ *booking.Booking) {
				m.EXPECT().InsertBooking(ctx, db, gomock.Any()).Return(uuid.Nil, errors.New("broken pipe"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: customer missing",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db *mockDBTX, _ *booking.Booking) {
				m.EXPECT().InsertBooking(ctx, db, gomock.Any()).Return(uuid.Nil, pgErr("23503"))
			},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			b := newTestBooking(t)
			tc.setupMock(mockQueries, mockDB, b)

			id, created, err := repo.Insert(ctx, b)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCreated, created)
			if tc.wantExisting {
				assert.Equal(t, existingID, id)
			} else {
				assert.Equal(t, b.ID(), id)
			}
		})
	}
}
