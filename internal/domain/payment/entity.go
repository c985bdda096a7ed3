package payment

import (
	"errors"
	"strings"
	"time"

	"activity-booking/internal/domain/money"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
)

type Method string

const (
	MethodOnline  Method = "ONLINE"
	MethodManual  Method = "MANUAL"
	MethodVoucher Method = "VOUCHER"
)

const DefaultCurrency = "eur"

var (
	ErrNotPending      = errors.New("payment is not pending")
	ErrMissingIntentID = errors.New("online payment requires an intent id")
	ErrInvalidAmount   = errors.New("payment amount must be positive")
)

// Outcome is what the processor reports for an intent.
type Outcome string

const (
	OutcomeSucceeded Outcome = "SUCCEEDED"
	OutcomeFailed    Outcome = "FAILED"
)

func ParseOutcome(s string) (Outcome, bool) {
	switch Outcome(strings.ToUpper(strings.TrimSpace(s))) {
	case OutcomeSucceeded:
		return OutcomeSucceeded, true
	case OutcomeFailed:
		return OutcomeFailed, true
	default:
		return "", false
	}
}

type Payment struct {
	id           uuid.UUID
	orderID      uuid.UUID
	intentID     *string
	clientSecret string
	status       Status
	method       Method
	amount       money.Money
	currency     string
	note         *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewOnlinePayment(orderID uuid.UUID, intentID, clientSecret string, amount money.Money, currency string, now time.Time) (*Payment, error) {
	if intentID == "" {
		return nil, ErrMissingIntentID
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		id:           uuid.New(),
		orderID:      orderID,
		intentID:     &intentID,
		clientSecret: clientSecret,
		status:       StatusPending,
		method:       MethodOnline,
		amount:       amount,
		currency:     currencyOrDefault(currency),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewVoucherPayment records an order fully covered by vouchers. It is settled on creation.
func NewVoucherPayment(orderID uuid.UUID, currency string, now time.Time) *Payment {
	return &Payment{
		id:        uuid.New(),
		orderID:   orderID,
		status:    StatusSucceeded,
		method:    MethodVoucher,
		amount:    money.Zero(),
		currency:  currencyOrDefault(currency),
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructPayment(
	id, orderID uuid.UUID,
	intentID *string,
	clientSecret string,
	status Status,
	method Method,
	amount money.Money,
	currency string,
	note *string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:           id,
		orderID:      orderID,
		intentID:     intentID,
		clientSecret: clientSecret,
		status:       status,
		method:       method,
		amount:       amount,
		currency:     currency,
		note:         note,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Payment) MarkSucceeded(now time.Time) error {
	if p.status != StatusPending {
		return ErrNotPending
	}
	p.status = StatusSucceeded
	p.updatedAt = now
	return nil
}

func (p *Payment) MarkFailed(now time.Time) error {
	if p.status != StatusPending {
		return ErrNotPending
	}
	p.status = StatusFailed
	p.updatedAt = now
	return nil
}

// RecordManual settles a pending payment outside the processor, e.g. cash or bank transfer.
func (p *Payment) RecordManual(amount money.Money, note string, now time.Time) error {
	if p.status != StatusPending {
		return ErrNotPending
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	p.status = StatusSucceeded
	p.method = MethodManual
	p.amount = amount
	if n := strings.TrimSpace(note); n != "" {
		p.note = &n
	}
	p.updatedAt = now
	return nil
}

func currencyOrDefault(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return DefaultCurrency
	}
	return c
}

func (p *Payment) ID() uuid.UUID        { return p.id }
func (p *Payment) OrderID() uuid.UUID   { return p.orderID }
func (p *Payment) IntentID() *string    { return p.intentID }
func (p *Payment) ClientSecret() string { return p.clientSecret }
func (p *Payment) Status() Status       { return p.status }
func (p *Payment) Method() Method       { return p.method }
func (p *Payment) Amount() money.Money  { return p.amount }
func (p *Payment) Currency() string     { return p.currency }
func (p *Payment) Note() *string        { return p.note }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }
