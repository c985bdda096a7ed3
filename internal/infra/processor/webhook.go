package processor

import (
	"encoding/json"

	"activity-booking/internal/domain/payment"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/commands"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	SignatureHeader = "Stripe-Signature"

	eventIntentSucceeded = "payment_intent.succeeded"
	eventIntentFailed    = "payment_intent.payment_failed"
)

var (
	ErrInvalidSignature = errs.Define(errs.ErrValidation, "invalid webhook signature")
	ErrMalformedEvent   = errs.Define(errs.ErrValidation, "malformed webhook event")
	ErrWebhookDisabled  = errs.Define(errs.ErrValidation, "webhook secret is not configured")
)

type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

// Parse verifies the signature and maps payment intent events to an outcome.
// ok is false for event types settlement does not act on.
func (v *WebhookVerifier) Parse(payload []byte, signature string) (event commands.ProcessorEvent, ok bool, err error) {
	if v.secret == "" {
		return commands.ProcessorEvent{}, false, ErrWebhookDisabled
	}
	ev, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return commands.ProcessorEvent{}, false, errs.Mark(err, ErrInvalidSignature)
	}

	var outcome payment.Outcome
	switch string(ev.Type) {
	case eventIntentSucceeded:
		outcome = payment.OutcomeSucceeded
	case eventIntentFailed:
		outcome = payment.OutcomeFailed
	default:
		return commands.ProcessorEvent{ID: ev.ID, Type: string(ev.Type)}, false, nil
	}

	var pi stripe.PaymentIntent
	if ev.Data == nil || json.Unmarshal(ev.Data.Raw, &pi) != nil || pi.ID == "" {
		return commands.ProcessorEvent{}, false, ErrMalformedEvent
	}
	return commands.ProcessorEvent{
		ID:       ev.ID,
		Type:     string(ev.Type),
		IntentID: pi.ID,
		Outcome:  outcome,
	}, true, nil
}
