//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"activity-booking/internal/domain/capacity"
	"activity-booking/internal/domain/voucher"
	"activity-booking/internal/infra"
	"activity-booking/internal/pkg/clock"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/queries"
	queriesmock "activity-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func notFound() error {
	return infra.WrapRepoErr("lookup", nil, infra.KindNotFound)
}

func TestAvailabilityQueries_Check(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		kind     string
		quantity int
		row      *queries.ResourceCapacityRow
		storeErr error
		want     queries.AvailabilityView
	}{
		{
			name:     "free places",
			kind:     "stage",
			quantity: 2,
			row:      &queries.ResourceCapacityRow{ID: id, Kind: "multi_day_session", Total: 6, Confirmed: 1, Held: 1},
			want: queries.AvailabilityView{
				ResourceID: id, Kind: "multi_day_session", Available: true,
				AvailablePlaces: 4, TotalPlaces: 6, ConfirmedCount: 1, HeldCount: 1,
			},
		},
		{
			name:     "exact fit leaves nothing",
			kind:     "single_slot",
			quantity: 1,
			row:      &queries.ResourceCapacityRow{ID: id, Kind: "single_slot", Total: 6, Confirmed: 4, Held: 2},
			want: queries.AvailabilityView{
				ResourceID: id, Kind: "single_slot", Available: false,
				AvailablePlaces: 0, TotalPlaces: 6, ConfirmedCount: 4, HeldCount: 2,
				Reason: capacity.ReasonInsufficient,
			},
		},
		{
			name:     "unknown kind",
			kind:     "kayak",
			quantity: 1,
			want:     queries.AvailabilityView{ResourceID: id, Kind: "kayak", Reason: capacity.ReasonInvalidType},
		},
		{
			name:     "unknown resource",
			kind:     "stage",
			quantity: 0,
			storeErr: notFound(),
			want:     queries.AvailabilityView{ResourceID: id, Kind: "multi_day_session", Reason: "multi-day session not found"},
		},
		{
			name:     "resource of another kind",
			kind:     "stage",
			quantity: 1,
			row:      &queries.ResourceCapacityRow{ID: id, Kind: "single_slot", Total: 6},
			want:     queries.AvailabilityView{ResourceID: id, Kind: "multi_day_session", Reason: "multi-day session not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockAvailabilityReadStore(ctrl)
			if tt.row != nil || tt.storeErr != nil {
				store.EXPECT().FindCapacity(gomock.Any(), id, fixedNow).Return(tt.row, tt.storeErr)
			}
			q := queries.NewAvailabilityQueries(store, clock.NewMockClock(fixedNow))

			got, err := q.Check(context.Background(), tt.kind, id, tt.quantity)

			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, *got); diff != "" {
				t.Errorf("availability mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("infrastructure failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAvailabilityReadStore(ctrl)
		store.EXPECT().FindCapacity(gomock.Any(), id, fixedNow).Return(nil, errors.New("conn reset"))

		_, err := queries.NewAvailabilityQueries(store, clock.NewMockClock(fixedNow)).Check(context.Background(), "stage", id, 1)

		assert.Error(t, err)
	})
}

func TestVoucherQueries_Validate(t *testing.T) {
	issued := fixedNow.AddDate(0, -1, 0)

	tests := []struct {
		name       string
		code       string
		row        *queries.VoucherView
		storeErr   error
		wantValid  bool
		wantReason string
		wantRemain int64
	}{
		{
			name:       "valid voucher",
			code:       " scp-abc-1234 ",
			row:        &queries.VoucherView{ID: uuid.New(), Code: "SCP-ABC-1234", Original: 11000, Remaining: 3000, IssuedAt: issued},
			wantValid:  true,
			wantRemain: 3000,
		},
		{
			name:       "exhausted",
			code:       "SCP-ABC-1234",
			row:        &queries.VoucherView{ID: uuid.New(), Code: "SCP-ABC-1234", Original: 11000, Remaining: 0, IssuedAt: issued},
			wantReason: voucher.ReasonExhausted,
		},
		{
			name:       "expired",
			code:       "SCP-ABC-1234",
			row:        &queries.VoucherView{ID: uuid.New(), Code: "SCP-ABC-1234", Original: 11000, Remaining: 500, IssuedAt: fixedNow.AddDate(-2, 0, 0)},
			wantReason: voucher.ReasonExpired,
			wantRemain: 500,
		},
		{
			name:       "unknown",
			code:       "SCP-NOPE-0000",
			storeErr:   notFound(),
			wantReason: voucher.ReasonUnknownCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockVoucherReadStore(ctrl)
			store.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(tt.row, tt.storeErr)

			got, err := queries.NewVoucherQueries(store, clock.NewMockClock(fixedNow)).Validate(context.Background(), tt.code)

			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantReason, got.Reason)
			assert.Equal(t, tt.wantRemain, got.Remaining)
		})
	}

	t.Run("blank code never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockVoucherReadStore(ctrl)

		got, err := queries.NewVoucherQueries(store, clock.NewMockClock(fixedNow)).Validate(context.Background(), "  ")

		require.NoError(t, err)
		assert.False(t, got.Valid)
		assert.Equal(t, voucher.ReasonUnknownCode, got.Reason)
	})
}

func TestOrderQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockOrderReadStore(ctrl)
	q := queries.NewOrderQueries(store)
	id := uuid.New()

	store.EXPECT().FindByID(gomock.Any(), id).Return(&queries.OrderView{ID: id, Status: "PENDING"}, nil)
	view, err := q.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", view.Status)

	store.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound())
	_, err = q.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, queries.ErrOrderNotFound)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCartQueries_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCartReadStore(ctrl)
	q := queries.NewCartQueries(store, clock.NewMockClock(fixedNow))

	items := []*queries.CartItemView{{ID: uuid.New(), Type: "voucher"}}
	holds := []*queries.HoldView{{ResourceID: uuid.New(), Quantity: 2, ExpiresAt: fixedNow.Add(time.Minute)}}
	store.EXPECT().FindItems(gomock.Any(), "sess-1").Return(items, nil)
	store.EXPECT().FindActiveHolds(gomock.Any(), "sess-1", fixedNow).Return(holds, nil)

	view, err := q.Get(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Equal(t, "sess-1", view.SessionID)
	assert.Len(t, view.Items, 1)
	assert.Len(t, view.Holds, 1)

	_, err = q.Get(context.Background(), "")
	assert.ErrorIs(t, err, errs.ErrValidation)
}
