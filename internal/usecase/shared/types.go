package shared

import (
	"time"

	"activity-booking/internal/domain/money"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key           string
	Scope         string
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}

// AppliedVoucher is a voucher application that has not been restored yet.
type AppliedVoucher struct {
	ID        uuid.UUID
	VoucherID uuid.UUID
	Used      money.Money
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
}
