package voucher

import (
	"errors"
	"strings"
	"time"

	"activity-booking/internal/domain/money"

	"github.com/google/uuid"
)

const ValidityMonths = 12

// Reasons reported to the buyer when a code cannot be used.
const (
	ReasonUnknownCode = "invalid code"
	ReasonExpired     = "expired"
	ReasonExhausted   = "already used"
)

var (
	ErrUnknownCode   = errors.New(ReasonUnknownCode)
	ErrExpired       = errors.New(ReasonExpired)
	ErrExhausted     = errors.New(ReasonExhausted)
	ErrEmptyCode     = errors.New("voucher code cannot be empty")
	ErrInvalidAmount = errors.New("voucher amount must be positive")
	ErrOverDebit     = errors.New("debit exceeds voucher balance")
	ErrOverRestore   = errors.New("restore exceeds voucher original amount")
)

type Code string

// NormalizeCode trims and upper-cases a code as typed by a buyer.
func NormalizeCode(raw string) (Code, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", ErrEmptyCode
	}
	return Code(s), nil
}

func (c Code) String() string { return string(c) }

// Voucher is a prepaid monetary balance that can be consumed across many orders.
type Voucher struct {
	id                uuid.UUID
	code              Code
	originalAmount    money.Money
	remaining         money.Money
	issuedAt          time.Time
	isUsed            bool
	lastOrderID       *uuid.UUID
	sourceOrderItemID *uuid.UUID
	recipientName     string
	recipientEmail    string
}

type Recipient struct {
	Name  string
	Email string
}

func Issue(code Code, amount money.Money, issuedAt time.Time, sourceOrderItemID *uuid.UUID, recipient Recipient) (*Voucher, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Voucher{
		id:                uuid.New(),
		code:              code,
		originalAmount:    amount,
		remaining:         amount,
		issuedAt:          issuedAt,
		sourceOrderItemID: sourceOrderItemID,
		recipientName:     strings.TrimSpace(recipient.Name),
		recipientEmail:    strings.ToLower(strings.TrimSpace(recipient.Email)),
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	code Code,
	originalAmount, remaining money.Money,
	issuedAt time.Time,
	isUsed bool,
	lastOrderID, sourceOrderItemID *uuid.UUID,
	recipient Recipient,
) *Voucher {
	return &Voucher{
		id:                id,
		code:              code,
		originalAmount:    originalAmount,
		remaining:         remaining,
		issuedAt:          issuedAt,
		isUsed:            isUsed,
		lastOrderID:       lastOrderID,
		sourceOrderItemID: sourceOrderItemID,
		recipientName:     recipient.Name,
		recipientEmail:    recipient.Email,
	}
}

func (v *Voucher) ExpiresAt() time.Time {
	return v.issuedAt.AddDate(0, ValidityMonths, 0)
}

// Redeemable returns ErrExpired or ErrExhausted when the voucher cannot contribute.
func (v *Voucher) Redeemable(now time.Time) error {
	if now.After(v.ExpiresAt()) {
		return ErrExpired
	}
	if !v.remaining.IsPositive() {
		return ErrExhausted
	}
	return nil
}

func (v *Voucher) Debit(amount money.Money, orderID uuid.UUID) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(v.remaining) {
		return ErrOverDebit
	}
	v.remaining = v.remaining.Sub(amount)
	v.isUsed = v.remaining.IsZero()
	id := orderID
	v.lastOrderID = &id
	return nil
}

// Restore gives back a previously debited amount.
func (v *Voucher) Restore(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if v.remaining.Add(amount).GreaterThan(v.originalAmount) {
		return ErrOverRestore
	}
	v.remaining = v.remaining.Add(amount)
	v.isUsed = false
	return nil
}

type Validation struct {
	Valid     bool
	Reason    string
	Remaining money.Money
	ExpiresAt time.Time
}

func (v *Voucher) Validate(now time.Time) Validation {
	out := Validation{Valid: true, Remaining: v.remaining, ExpiresAt: v.ExpiresAt()}
	if err := v.Redeemable(now); err != nil {
		out.Valid = false
		out.Reason = err.Error()
	}
	return out
}

func (v *Voucher) ID() uuid.UUID                 { return v.id }
func (v *Voucher) Code() Code                    { return v.code }
func (v *Voucher) OriginalAmount() money.Money   { return v.originalAmount }
func (v *Voucher) Remaining() money.Money        { return v.remaining }
func (v *Voucher) IssuedAt() time.Time           { return v.issuedAt }
func (v *Voucher) IsUsed() bool                  { return v.isUsed }
func (v *Voucher) LastOrderID() *uuid.UUID       { return v.lastOrderID }
func (v *Voucher) SourceOrderItemID() *uuid.UUID { return v.sourceOrderItemID }
func (v *Voucher) Recipient() Recipient {
	return Recipient{Name: v.recipientName, Email: v.recipientEmail}
}
