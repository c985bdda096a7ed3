//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"activity-booking/internal/domain/capacity"
	"activity-booking/internal/domain/cart"
	"activity-booking/internal/domain/hold"
	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/order"
	"activity-booking/internal/domain/resource"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/commands"
	"activity-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	m    *txMocks
	uc   commands.CartCommands
	res  *resource.Resource
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.uc = commands.NewCartUseCase(s.m.uow, bookingConfig(), s.m.clock)
	s.res = builder.NewResourceBuilder().BuildDomain()
}

func (s *CartCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func (s *CartCommandsTestSuite) existingSeat() *cart.Item {
	item, err := cart.NewBookingItem("sess-1", s.res, builder.Participant(), fixedNow)
	s.Require().NoError(err)
	return item
}

func (s *CartCommandsTestSuite) TestAddItem_Booking() {
	ctx := context.Background()
	resID := s.res.ID()
	p := builder.Participant()
	req := commands.AddCartItemRequest{SessionID: "sess-1", ResourceKind: "stage", ResourceID: &resID, Participant: &p}

	s.Run("success: the hold covers every seat of the resource in the cart", func() {
		s.m.resources.EXPECT().LockByID(gomock.Any(), resID).Return(s.res, nil)
		s.m.reads.EXPECT().CartItems(gomock.Any(), "sess-1").Return([]*cart.Item{s.existingSeat()}, nil)
		s.m.resources.EXPECT().Counts(gomock.Any(), s.res, fixedNow, "sess-1").
			Return(capacity.Counts{Total: 6, Confirmed: 3, Held: 1}, nil)
		s.m.cart.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
		s.m.holds.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, h *hold.Hold) (*hold.Hold, error) { return h, nil })

		res, err := s.uc.AddItem(ctx, req)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), order.ItemMultiDaySessionBooking, res.Item.Type())
		require.NotNil(s.T(), res.Hold)
		assert.Equal(s.T(), 2, res.Hold.Quantity())
		assert.Equal(s.T(), fixedNow.Add(15*time.Minute), res.Hold.ExpiresAt())
	})

	s.Run("error: no seat left for one more participant", func() {
		s.m.resources.EXPECT().LockByID(gomock.Any(), resID).Return(s.res, nil)
		s.m.reads.EXPECT().CartItems(gomock.Any(), "sess-1").Return([]*cart.Item{s.existingSeat()}, nil)
		s.m.resources.EXPECT().Counts(gomock.Any(), s.res, fixedNow, "sess-1").
			Return(capacity.Counts{Total: 6, Confirmed: 4, Held: 1}, nil)

		_, err := s.uc.AddItem(ctx, req)

		assert.True(s.T(), errors.Is(err, errs.ErrCapacityExceeded))
	})

	s.Run("error: invalid participant", func() {
		bad := builder.Participant()
		bad.WeightKg = 130
		r := req
		r.Participant = &bad
		s.m.resources.EXPECT().LockByID(gomock.Any(), resID).Return(s.res, nil)

		_, err := s.uc.AddItem(ctx, r)

		assert.True(s.T(), errors.Is(err, errs.ErrValidation))
		assert.True(s.T(), errors.Is(err, order.ErrParticipantWeight))
	})
}

func (s *CartCommandsTestSuite) TestAddItem_Voucher() {
	s.m.cart.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.uc.AddItem(context.Background(), commands.AddCartItemRequest{
		SessionID: "sess-1",
		Voucher:   &order.VoucherPurchase{Amount: money.Euros(50), RecipientName: "Camille"},
	})

	require.NoError(s.T(), err)
	assert.Equal(s.T(), order.ItemVoucherPurchase, res.Item.Type())
	assert.Nil(s.T(), res.Hold)
}

func (s *CartCommandsTestSuite) TestAddItem_Ambiguous() {
	resID := s.res.ID()
	p := builder.Participant()

	_, err := s.uc.AddItem(context.Background(), commands.AddCartItemRequest{
		SessionID:   "sess-1",
		ResourceID:  &resID,
		Participant: &p,
		Voucher:     &order.VoucherPurchase{Amount: money.Euros(50)},
	})

	assert.True(s.T(), errors.Is(err, commands.ErrInvalidCartItem))
}

func (s *CartCommandsTestSuite) TestRemoveItem() {
	ctx := context.Background()
	resID := s.res.ID()

	s.Run("success: last seat drops the hold", func() {
		itemID := uuid.New()
		s.m.cart.EXPECT().Remove(gomock.Any(), "sess-1", itemID).Return(&resID, nil)
		s.m.reads.EXPECT().CartItems(gomock.Any(), "sess-1").Return(nil, nil)
		s.m.holds.EXPECT().Delete(gomock.Any(), "sess-1", resID).Return(int64(1), nil)

		res, err := s.uc.RemoveItem(ctx, "sess-1", itemID)

		require.NoError(s.T(), err)
		assert.Nil(s.T(), res.Hold)
	})

	s.Run("success: remaining seats shrink the hold", func() {
		itemID := uuid.New()
		s.m.cart.EXPECT().Remove(gomock.Any(), "sess-1", itemID).Return(&resID, nil)
		s.m.reads.EXPECT().CartItems(gomock.Any(), "sess-1").Return([]*cart.Item{s.existingSeat()}, nil)
		s.m.resources.EXPECT().LockByID(gomock.Any(), resID).Return(s.res, nil)
		s.m.holds.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, h *hold.Hold) (*hold.Hold, error) { return h, nil })

		res, err := s.uc.RemoveItem(ctx, "sess-1", itemID)

		require.NoError(s.T(), err)
		require.NotNil(s.T(), res.Hold)
		assert.Equal(s.T(), 1, res.Hold.Quantity())
	})

	s.Run("error: unknown item", func() {
		itemID := uuid.New()
		s.m.cart.EXPECT().Remove(gomock.Any(), "sess-1", itemID).Return(nil, notFound("cart item not found"))

		_, err := s.uc.RemoveItem(ctx, "sess-1", itemID)

		assert.True(s.T(), errors.Is(err, commands.ErrCartItemNotFound))
	})
}
