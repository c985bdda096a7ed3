//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"activity-booking/internal/domain/capacity"
	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/resource"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/commands"
	"activity-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResourceCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	m    *txMocks
	uc   commands.ResourceCommands
}

func (s *ResourceCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.uc = commands.NewResourceUseCase(s.m.uow, s.m.clock)
}

func (s *ResourceCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestResourceCommandsSuite(t *testing.T) {
	suite.Run(t, new(ResourceCommandsTestSuite))
}

func ptr[T any](v T) *T { return &v }

func (s *ResourceCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	req := commands.CreateResourceRequest{
		Kind:           "multi_day_session",
		Title:          "  Stage perfectionnement ",
		StartsAt:       fixedNow.Add(30 * 24 * time.Hour),
		Capacity:       8,
		FullPriceCents: 79000,
		DepositCents:   ptr(int64(20000)),
	}

	s.Run("success", func() {
		s.m.resources.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		r, err := s.uc.Create(ctx, req)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "Stage perfectionnement", r.Title())
		assert.Equal(s.T(), money.Cents(20000), r.DepositPrice())
	})

	s.Run("error: multi-day session without deposit", func() {
		r := req
		r.DepositCents = nil

		_, err := s.uc.Create(ctx, r)

		assert.True(s.T(), errors.Is(err, errs.ErrValidation))
		assert.True(s.T(), errors.Is(err, resource.ErrDepositRequired))
	})

	s.Run("error: deposit above the full price", func() {
		r := req
		r.DepositCents = ptr(int64(80000))

		_, err := s.uc.Create(ctx, r)

		assert.True(s.T(), errors.Is(err, resource.ErrInvalidDeposit))
	})
}

func (s *ResourceCommandsTestSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("success: capacity and price change together", func() {
		r := builder.NewResourceBuilder().BuildDomain()
		s.m.resources.EXPECT().LockByID(gomock.Any(), r.ID()).Return(r, nil)
		s.m.resources.EXPECT().Counts(gomock.Any(), r, fixedNow, "").Return(capacity.Counts{Total: 6, Confirmed: 3}, nil)
		s.m.resources.EXPECT().Update(gomock.Any(), r).Return(nil)

		got, err := s.uc.Update(ctx, r.ID(), commands.UpdateResourceRequest{
			Capacity:       ptr(4),
			FullPriceCents: ptr(int64(72000)),
		})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), 4, got.Capacity())
		assert.Equal(s.T(), int64(72000), got.FullPrice().Amount())
		assert.Equal(s.T(), money.Cents(15000), got.DepositPrice())
	})

	s.Run("error: capacity below confirmed bookings", func() {
		r := builder.NewResourceBuilder().BuildDomain()
		s.m.resources.EXPECT().LockByID(gomock.Any(), r.ID()).Return(r, nil)
		s.m.resources.EXPECT().Counts(gomock.Any(), r, fixedNow, "").Return(capacity.Counts{Total: 6, Confirmed: 5}, nil)

		_, err := s.uc.Update(ctx, r.ID(), commands.UpdateResourceRequest{Capacity: ptr(4)})

		assert.True(s.T(), errors.Is(err, resource.ErrCapacityBelowConfirmed))
	})

	s.Run("success: unchanged title skips validation", func() {
		r := builder.NewResourceBuilder().BuildDomain()
		s.m.resources.EXPECT().LockByID(gomock.Any(), r.ID()).Return(r, nil)
		s.m.resources.EXPECT().Update(gomock.Any(), r).Return(nil)

		_, err := s.uc.Update(ctx, r.ID(), commands.UpdateResourceRequest{Title: ptr(r.Title())})

		require.NoError(s.T(), err)
	})
}
