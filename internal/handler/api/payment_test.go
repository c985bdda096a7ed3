//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"activity-booking/internal/domain/order"
	"activity-booking/internal/domain/payment"
	"activity-booking/internal/handler/api"
	resdto "activity-booking/internal/handler/dto/response"
	"activity-booking/internal/infra/processor"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/commands"
	"activity-booking/tests/common/httptest"
	commandsmock "activity-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSignatureHeader = "Test-Signature"

var errBadSignature = errs.Define(errs.ErrValidation, "invalid webhook signature")

// fakeParser accepts payloads signed "good" and reports the preset event.
type fakeParser struct {
	event   commands.ProcessorEvent
	handled bool
}

func (p *fakeParser) Parse(_ []byte, signature string) (commands.ProcessorEvent, bool, error) {
	if signature != "good" {
		return commands.ProcessorEvent{}, false, errBadSignature
	}
	return p.event, p.handled, nil
}

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSettlementCommands
	parser       *fakeParser
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSettlementCommands(s.mockCtrl)
	s.parser = &fakeParser{}
	s.handler = api.NewPaymentHandler(s.mockCommands, s.parser, testSignatureHeader, processor.IsLocalIntent)

	s.router.POST("/payments/callback", s.handler.Callback)
	s.router.POST("/webhooks/stripe", s.handler.StripeWebhook)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

// ================================================================================
// TestCallback
// ================================================================================

func (s *PaymentHandlerTestSuite) TestCallback() {
	url := "/payments/callback"
	orderID := uuid.New()

	s.Run("success: succeeded outcome materializes the order", func() {
		s.mockCommands.EXPECT().HandlePaymentOutcome(gomock.Any(), "pi_local_123", payment.OutcomeSucceeded).
			Return(&commands.PaymentOutcomeResult{
				OrderID:      orderID,
				Status:       order.StatusPaid,
				Materialized: commands.MaterializeResult{BookingsCreated: 2},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"payment_intent_id": "pi_local_123", "status": "succeeded"}, "")

		var body resdto.PaymentOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.CallbackProcessed, body.Status)
		s.Equal(string(order.StatusPaid), body.OrderStatus)
		s.Require().NotNil(body.Materialized)
		s.Equal(2, body.Materialized.BookingsCreated)
	})

	s.Run("success: unknown intent is acknowledged as ignored", func() {
		s.mockCommands.EXPECT().HandlePaymentOutcome(gomock.Any(), "pi_local_missing", payment.OutcomeFailed).
			Return(nil, commands.ErrPaymentIntentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"payment_intent_id": "pi_local_missing", "status": "FAILED"}, "")

		var body resdto.PaymentOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.CallbackIgnored, body.Status)
	})

	s.Run("success: a verdict on a cancelled order is ignored", func() {
		s.mockCommands.EXPECT().HandlePaymentOutcome(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrOrderStateConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"payment_intent_id": "pi_local_123", "status": "SUCCEEDED"}, "")

		var body resdto.PaymentOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.CallbackIgnored, body.Status)
	})

	s.Run("error: 403 for an intent issued by the processor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"payment_intent_id": "pi_3StripeIntent", "status": "SUCCEEDED"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "intent settles through the processor webhook")
	})

	s.Run("error: 400 for an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"payment_intent_id": "pi_local_123", "status": "MAYBE"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 500 hides infrastructure failures", func() {
		s.mockCommands.EXPECT().HandlePaymentOutcome(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("deadlock"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"payment_intent_id": "pi_local_123", "status": "SUCCEEDED"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "deadlock")
	})
}

// ================================================================================
// TestStripeWebhook
// ================================================================================

func (s *PaymentHandlerTestSuite) TestStripeWebhook() {
	url := "/webhooks/stripe"
	payload := []byte(`{"id":"evt_1"}`)
	signed := map[string]string{testSignatureHeader: "good"}

	s.Run("success: handled event is settled", func() {
		s.parser.handled = true
		s.parser.event = commands.ProcessorEvent{ID: "evt_1", Type: "payment_intent.succeeded", IntentID: "pi_1", Outcome: payment.OutcomeSucceeded}
		s.mockCommands.EXPECT().HandleProcessorEvent(gomock.Any(), s.parser.event).
			Return(&commands.PaymentOutcomeResult{OrderID: uuid.New(), Status: order.StatusPaid}, nil).Times(1)

		rec := performRaw(s.T(), s.router, http.MethodPost, url, payload, signed)

		var body resdto.PaymentOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.CallbackProcessed, body.Status)
	})

	s.Run("success: redelivery reports the replay", func() {
		s.parser.handled = true
		s.mockCommands.EXPECT().HandleProcessorEvent(gomock.Any(), gomock.Any()).
			Return(&commands.PaymentOutcomeResult{Replayed: true}, nil).Times(1)

		rec := performRaw(s.T(), s.router, http.MethodPost, url, payload, signed)

		var body resdto.PaymentOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Replayed)
	})

	s.Run("success: unrelated event types are ignored", func() {
		s.parser.handled = false

		rec := performRaw(s.T(), s.router, http.MethodPost, url, payload, signed)

		var body resdto.PaymentOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.CallbackIgnored, body.Status)
	})

	s.Run("error: 400 on a bad signature", func() {
		rec := performRaw(s.T(), s.router, http.MethodPost, url, payload, map[string]string{testSignatureHeader: "forged"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid webhook signature")
	})
}
