package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"

	"activity-booking/internal/domain/money"
)

// PayableIntent is what the buyer's browser needs to complete the deposit payment.
type PayableIntent struct {
	IntentID     string
	ClientSecret string
	Amount       money.Money
	Currency     string
}

type PaymentProcessor interface {
	// CreatePayableIntent must be idempotent on idempotencyKey.
	CreatePayableIntent(ctx context.Context, amount money.Money, currency string, metadata map[string]string, idempotencyKey string) (*PayableIntent, error)
	CancelIntent(ctx context.Context, intentID string) error
}

type Notifier interface {
	Notify(ctx context.Context, topic string, payload []byte) error
}

// Outbox job addressing.
const (
	NotificationKindEmail = "email"
	TopicOrderPaid        = "order_paid"
	TopicOrderCancelled   = "order_cancelled"
)
