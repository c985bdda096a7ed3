//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"activity-booking/internal/domain/hold"
	"activity-booking/internal/handler/api"
	resdto "activity-booking/internal/handler/dto/response"
	"activity-booking/internal/usecase/commands"
	"activity-booking/tests/common/builder"
	"activity-booking/tests/common/httptest"
	"activity-booking/tests/common/testutil"
	commandsmock "activity-booking/tests/mock/commands"
	queriesmock "activity-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockHolds   *commandsmock.MockHoldCommands
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockHolds = commandsmock.NewMockHoldCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockHolds, s.mockQueries)

	s.router.GET("/availability/:kind/:id", s.handler.Check)
	s.router.POST("/holds", s.handler.Reserve)
	s.router.DELETE("/holds", s.handler.Release)
	s.router.POST("/holds/extend", s.handler.Extend)
	s.router.POST("/admin/holds/sweep", s.handler.Sweep)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

// ================================================================================
// TestCheck
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestCheck() {
	b := builder.NewResourceBuilder()
	url := "/availability/" + b.Kind.String() + "/" + b.ID.String()

	s.Run("success: defaults quantity to one", func() {
		s.mockQueries.EXPECT().Check(gomock.Any(), b.Kind.String(), b.ID, 1).
			Return(b.BuildAvailabilityView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Equal(b.Capacity, body.AvailablePlaces)
	})

	s.Run("success: unavailable is still 200", func() {
		view := b.BuildAvailabilityView()
		view.Available = false
		view.AvailablePlaces = 0
		view.Reason = "Not enough places available"
		s.mockQueries.EXPECT().Check(gomock.Any(), gomock.Any(), b.ID, 4).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?quantity=4", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Equal(view.Reason, body.Reason)
	})

	s.Run("error: 400 Bad Request on bad input", func() {
		for _, path := range []string{
			url + "?quantity=0",
			url + "?quantity=abc",
			"/availability/" + b.Kind.String() + "/not-a-uuid",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid")
		}
	})
}

// ================================================================================
// TestReserve
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestReserve() {
	url := "/holds"
	b := builder.NewResourceBuilder()
	reqBody := b.BuildHoldRequestDTO(2)

	testCases := []testCaseOrder{
		{name: "missing field: checkout_session_id (required)", mutate: testutil.Field("checkout_session_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: resource_id (required)", mutate: testutil.Field("resource_id", nil), expectCode: http.StatusBadRequest},
		{name: "invalid value: quantity 0", mutate: testutil.Field("quantity", 0), expectCode: http.StatusBadRequest},
		{name: "invalid value: negative ttl", mutate: testutil.Field("ttl_seconds", -1), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created", func() {
		held := b.BuildHold(2, time.Now())
		s.mockHolds.EXPECT().Create(gomock.Any(), reqBody.ToCommand()).Return(held, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(held.ID(), body.ID)
		s.Equal(2, body.Quantity)
	})

	s.Run("success: zero ttl is accepted", func() {
		zero := 0
		req := reqBody
		req.TTLSeconds = &zero
		s.mockHolds.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd commands.CreateHoldRequest) (*hold.Hold, error) {
				s.Require().NotNil(cmd.TTL)
				s.Equal(time.Duration(0), *cmd.TTL)
				return b.BuildHold(2, time.Now().Add(-time.Hour)), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 409 Conflict with capacity detail", func() {
		capErr := &commands.CapacityError{ResourceID: b.ID}
		capErr.Snapshot.TotalPlaces = 6
		capErr.Snapshot.ConfirmedCount = 5
		capErr.Snapshot.AvailablePlaces = 1
		capErr.Snapshot.Requested = 2
		s.mockHolds.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, capErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.MessageInsufficientCapacity)
		s.Contains(rec.Body.String(), `"available_places":1`)
		s.Contains(rec.Body.String(), `"requested":2`)
	})

	s.Run("error: 404 Not Found for unknown resource", func() {
		s.mockHolds.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, commands.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "resource not found")
	})
}

// ================================================================================
// TestReleaseExtendSweep
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestRelease() {
	s.Run("success: releases every hold of the session", func() {
		s.mockHolds.EXPECT().Release(gomock.Any(), commands.ReleaseHoldRequest{SessionID: builder.TestSessionID}).
			Return(int64(3), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/holds",
			map[string]any{"checkout_session_id": builder.TestSessionID}, "")

		var body resdto.ReleaseHoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3), body.Released)
	})

	s.Run("success: releasing nothing is not an error", func() {
		s.mockHolds.EXPECT().Release(gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/holds",
			map[string]any{"checkout_session_id": builder.TestSessionID, "resource_id": uuid.NewString()}, "")

		var body resdto.ReleaseHoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Zero(body.Released)
	})
}

func (s *AvailabilityHandlerTestSuite) TestExtend() {
	b := builder.NewResourceBuilder()
	reqBody := map[string]any{
		"checkout_session_id": builder.TestSessionID,
		"resource_kind":       b.Kind.String(),
		"resource_id":         b.ID.String(),
	}

	s.Run("success: returns the extended hold", func() {
		held := b.BuildHold(1, time.Now())
		s.mockHolds.EXPECT().Extend(gomock.Any(), commands.ExtendHoldRequest{
			SessionID:    builder.TestSessionID,
			ResourceKind: b.Kind.String(),
			ResourceID:   b.ID,
		}).Return(held, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/holds/extend", reqBody, "")

		var body resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(held.ExpiresAt().Unix(), body.ExpiresAt.Unix())
	})

	s.Run("error: 404 when no active hold exists", func() {
		s.mockHolds.EXPECT().Extend(gomock.Any(), gomock.Any()).Return(nil, commands.ErrHoldNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/holds/extend", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "hold not found")
	})

	s.Run("error: 400 on zero extension", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/holds/extend",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("extension_seconds", 0)), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AvailabilityHandlerTestSuite) TestSweep() {
	s.mockHolds.EXPECT().SweepExpired(gomock.Any()).
		Return(&commands.SweepResult{HoldsRemoved: 4, IdempotencyKeysRemoved: 1}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/holds/sweep", nil, "")

	var body resdto.SweepResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(4), body.HoldsRemoved)
	s.Equal(int64(1), body.IdempotencyKeysRemoved)
}
