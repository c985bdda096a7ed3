package processor

import (
	"context"
	"errors"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/commands"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeProcessor opens deposit intents through the Stripe PaymentIntents API.
type StripeProcessor struct {
	intents paymentintent.Client
}

func NewStripeProcessor(secretKey string, backend stripe.Backend) *StripeProcessor {
	if backend == nil {
		backend = stripe.GetBackend(stripe.APIBackend)
	}
	return &StripeProcessor{intents: paymentintent.Client{B: backend, Key: secretKey}}
}

func (p *StripeProcessor) CreatePayableIntent(ctx context.Context, amount money.Money, currency string, metadata map[string]string, idempotencyKey string) (*commands.PayableIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount.Amount()),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	pi, err := p.intents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: create payment intent")
	}
	return &commands.PayableIntent{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       money.Cents(pi.Amount),
		Currency:     string(pi.Currency),
	}, nil
}

// CancelIntent treats an intent that can no longer be cancelled as already settled.
func (p *StripeProcessor) CancelIntent(ctx context.Context, intentID string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	_, err := p.intents.Cancel(intentID, params)
	if err == nil {
		return nil
	}
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodePaymentIntentUnexpectedState {
		return nil
	}
	return errs.Wrapf(err, "stripe: cancel payment intent %s", intentID)
}
