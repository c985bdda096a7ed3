//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/voucher"
	"activity-booking/internal/handler/api"
	resdto "activity-booking/internal/handler/dto/response"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/commands"
	"activity-booking/internal/usecase/queries"
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

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/orders", s.handler.Create)
	s.router.GET("/orders/:id", s.handler.Get)
	s.router.POST("/admin/orders/:id/cancel", s.handler.Cancel)
	s.router.POST("/admin/orders/:id/refund", s.handler.Refund)
	s.router.POST("/admin/orders/:id/confirm", s.handler.Confirm)
	s.router.POST("/admin/orders/:id/payments/manual", s.handler.RecordManualPayment)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

type testCaseOrder struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreate() {
	url := "/orders"

	b := builder.NewOrderBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildViewQuery()
	created := &commands.CreateOrderResult{
		Order: view,
		Intent: &commands.PayableIntent{
			IntentID:     *view.Payment.IntentID,
			ClientSecret: view.Payment.ClientSecret,
			Amount:       money.Cents(view.Deposit),
			Currency:     "eur",
		},
	}

	missing := []testCaseOrder{
		{name: "missing field: checkout_session_id (required)", mutate: testutil.Field("checkout_session_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: contact (required)", mutate: testutil.Field("contact", nil), expectCode: http.StatusBadRequest},
	}
	invalid := []testCaseOrder{
		{name: "contact without email", mutate: testutil.Field("contact", map[string]any{"first_name": "Marc", "last_name": "Durand"}), expectCode: http.StatusBadRequest},
		{name: "too many voucher codes", mutate: testutil.Field("voucher_codes", []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with the payment intent", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToCommand(), "").
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.Order.ID)
		s.Require().NotNil(body.PaymentIntent)
		s.Equal(view.Payment.ClientSecret, body.PaymentIntent.ClientSecret)
		s.Equal(view.Deposit, body.PaymentIntent.Amount)
		s.False(body.Replayed)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/orders/" + view.ID.String()})
	})

	s.Run("success: replay returns 200 with the stored order", func() {
		replayed := *created
		replayed.IsReplayed = true
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), "key-1").
			Return(&replayed, nil).Times(1)

		rec := performWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, map[string]string{api.HeaderIdempotencyKey: "key-1"})

		var body resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Replayed)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.HeaderReplayed: "true"})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseOrder{missing, invalid} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				})
			}
		}
	})

	domainErrors := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"empty cart", commands.ErrEmptyCart, http.StatusBadRequest, "cart is empty"},
		{"capacity exceeded", &commands.CapacityError{ResourceID: uuid.New()}, http.StatusConflict, commands.MessageInsufficientCapacity},
		{"idempotency in progress", errs.ErrIdempotencyInProgress, http.StatusConflict, ""},
		{"idempotency mismatch", errs.ErrIdempotencyMismatch, http.StatusUnprocessableEntity, ""},
		{"database failure", errs.Mark(errors.New("conn reset"), errs.ErrDatabaseOperationFailed), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range domainErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: 422 with voucher detail", func() {
		invalidVoucher := errs.Mark(&voucher.InvalidError{Code: "SCP-OLD-0001", Reason: voucher.ErrExpired}, errs.ErrVoucherInvalid)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, invalidVoucher).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO("scp-old-0001"), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "expired")
		s.Contains(rec.Body.String(), `"code":"SCP-OLD-0001"`)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *OrderHandlerTestSuite) TestGet() {
	view := builder.NewOrderBuilder().BuildViewQuery()

	s.Run("success: returns the order without the client secret", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+view.ID.String(), nil, "")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.OrderNumber, body.OrderNumber)
		s.NotContains(rec.Body.String(), "client_secret")
	})

	s.Run("error: 404 for unknown order", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, queries.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+uuid.NewString(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "order not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *OrderHandlerTestSuite) TestTransitions() {
	view := builder.NewOrderBuilder().BuildViewQuery()
	base := "/admin/orders/" + view.ID.String()

	s.Run("success: cancel returns the updated order", func() {
		cancelled := *view
		cancelled.Status = "CANCELLED"
		s.mockCommands.EXPECT().Cancel(gomock.Any(), view.ID).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(&cancelled, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/cancel", nil, "")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELLED", body.Status)
	})

	s.Run("error: 409 when refunding a pending order", func() {
		s.mockCommands.EXPECT().Refund(gomock.Any(), view.ID).Return(commands.ErrOrderStateConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/refund", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "order status does not allow this operation")
	})

	s.Run("error: 404 when confirming an unknown order", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), view.ID).Return(commands.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/confirm", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestRecordManualPayment
// ================================================================================

func (s *OrderHandlerTestSuite) TestRecordManualPayment() {
	id := uuid.New()
	url := "/admin/orders/" + id.String() + "/payments/manual"
	reqBody := map[string]any{"amount_cents": 15000, "note": "paid by cheque"}

	s.Run("success: returns materialization counts", func() {
		s.mockCommands.EXPECT().RecordManualPayment(gomock.Any(), id, commands.ManualPaymentRequest{AmountCents: 15000, Note: "paid by cheque"}).
			Return(&commands.MaterializeResult{BookingsCreated: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.MaterializeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.BookingsCreated)
	})

	s.Run("error: 400 on non-positive amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, testutil.Field("amount_cents", 0)), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
