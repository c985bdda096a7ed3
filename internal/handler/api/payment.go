package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"activity-booking/internal/domain/payment"
	reqdto "activity-booking/internal/handler/dto/request"
	resdto "activity-booking/internal/handler/dto/response"
	"activity-booking/internal/handler/httperr"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 64 << 10

// WebhookParser verifies a processor delivery. ok is false for events settlement ignores.
type WebhookParser interface {
	Parse(payload []byte, signature string) (event commands.ProcessorEvent, ok bool, err error)
}

type PaymentHandler struct {
	cmds            commands.SettlementCommands
	webhook         WebhookParser
	signatureHeader string
	// callbackIntent reports whether the unsigned callback may settle an intent.
	callbackIntent func(intentID string) bool
}

func NewPaymentHandler(cmds commands.SettlementCommands, webhook WebhookParser, signatureHeader string, callbackIntent func(intentID string) bool) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, webhook: webhook, signatureHeader: signatureHeader, callbackIntent: callbackIntent}
}

// @Summary Payment callback
// @Description Operator verdict for a locally issued intent. Unknown intents and settled orders are acknowledged and ignored.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PaymentCallbackRequest true "Payment outcome"
// @Success 200 {object} resdto.PaymentOutcomeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/payments/callback [post]
func (h *PaymentHandler) Callback(c *gin.Context) {
	var req reqdto.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	outcome, ok := payment.ParseOutcome(req.Status)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidOutcome, errInvalidOutcome.Error(), nil)
		return
	}
	if !h.callbackIntent(req.IntentID) {
		slog.Warn("payment callback refused for processor intent", "intent_id", req.IntentID)
		httperr.AbortWithError(c, http.StatusForbidden, errWebhookIntent, errWebhookIntent.Error(), nil)
		return
	}

	result, err := h.cmds.HandlePaymentOutcome(c.Request.Context(), req.IntentID, outcome)
	h.respond(c, result, err, "intent_id", req.IntentID)
}

// @Summary Stripe webhook
// @Description Signed Stripe deliveries for payment_intent.succeeded and payment_intent.payment_failed
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} resdto.PaymentOutcomeResponse
// @Failure 400 {object} httperr.Response
// @Router /payments/stripe/webhook [post]
func (h *PaymentHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid webhook body", nil)
		return
	}
	event, ok, err := h.webhook.Parse(payload, c.GetHeader(h.signatureHeader))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, resdto.PaymentOutcomeResponse{Status: resdto.CallbackIgnored})
		return
	}

	result, err := h.cmds.HandleProcessorEvent(c.Request.Context(), event)
	h.respond(c, result, err, "event_id", event.ID)
}

// respond acknowledges verdicts that cannot apply, so the processor stops retrying them.
func (h *PaymentHandler) respond(c *gin.Context, result *commands.PaymentOutcomeResult, err error, logKey, logValue string) {
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrStateConflict) {
			slog.Info("payment outcome ignored", logKey, logValue, "reason", errs.Message(err))
			c.JSON(http.StatusOK, resdto.PaymentOutcomeResponse{Status: resdto.CallbackIgnored})
			return
		}
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentOutcome(result))
}
