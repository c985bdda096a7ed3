package processor

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/pkg/config"
	"activity-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

const localIntentPrefix = "pi_local_"

// IsLocalIntent reports whether intentID was issued by LocalProcessor. Only such intents
// may be settled through the operator callback; processor intents settle through the
// signed webhook.
func IsLocalIntent(intentID string) bool {
	return strings.HasPrefix(intentID, localIntentPrefix)
}

// LocalProcessor issues intents without a processor account. Settlement then happens
// through the operator payment callback only.
type LocalProcessor struct {
	mu    sync.Mutex
	byKey map[string]*commands.PayableIntent
}

func NewLocalProcessor() *LocalProcessor {
	return &LocalProcessor{byKey: make(map[string]*commands.PayableIntent)}
}

func (p *LocalProcessor) CreatePayableIntent(_ context.Context, amount money.Money, currency string, _ map[string]string, idempotencyKey string) (*commands.PayableIntent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.byKey[idempotencyKey]; ok && idempotencyKey != "" {
		return existing, nil
	}
	id := localIntentPrefix + uuid.NewString()
	intent := &commands.PayableIntent{
		IntentID:     id,
		ClientSecret: id + "_secret",
		Amount:       amount,
		Currency:     currency,
	}
	if idempotencyKey != "" {
		p.byKey[idempotencyKey] = intent
	}
	return intent, nil
}

func (p *LocalProcessor) CancelIntent(_ context.Context, intentID string) error {
	slog.Debug("local payment intent cancelled", "intent_id", intentID)
	return nil
}

// New picks Stripe when a secret key is configured.
func New(cfg config.StripeConfig) commands.PaymentProcessor {
	if cfg.SecretKey == "" {
		slog.Warn("STRIPE_SECRET_KEY is empty, using the local payment processor")
		return NewLocalProcessor()
	}
	return NewStripeProcessor(cfg.SecretKey, nil)
}
