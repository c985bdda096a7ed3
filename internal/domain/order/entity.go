package order

import (
	"errors"
	"fmt"
	"time"

	"activity-booking/internal/domain/hold"
	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/voucher"
	"activity-booking/internal/pkg/randstr"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidTransition = errors.New("order status transition not allowed")
	ErrDiscountTooLarge  = errors.New("discount exceeds order subtotal")
)

type Number string

// GenerateNumber yields ORD-{yyyy}-{last 6 digits of unix millis}{3 random A-Z}.
func GenerateNumber(now time.Time) Number {
	return Number(fmt.Sprintf("ORD-%d-%06d%s", now.Year(), now.UnixMilli()%1_000_000, randstr.String(randstr.Upper, 3)))
}

func (n Number) String() string { return string(n) }

type Order struct {
	id           uuid.UUID
	number       Number
	status       Status
	sessionID    string
	subtotal     money.Money
	discount     money.Money
	total        money.Money
	deposit      money.Money
	contact      Contact
	customerID   *uuid.UUID
	items        []*Item
	applications []voucher.Application
	createdAt    time.Time
	updatedAt    time.Time
}

// NewOrder prices items and derives the deposit due. The discount is spread over the
// deposit pro rata: depositDue = depositGross - floor(discount*depositGross/subtotal).
func NewOrder(
	id uuid.UUID,
	number Number,
	sessionID string,
	contact Contact,
	items []*Item,
	allocation voucher.Allocation,
	now time.Time,
) (*Order, error) {
	sessionID, err := hold.NormalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	subtotal := Subtotal(items)
	discount := allocation.TotalDiscount
	if discount.GreaterThan(subtotal) {
		return nil, ErrDiscountTooLarge
	}
	total := subtotal.Sub(discount)

	return &Order{
		id:           id,
		number:       number,
		status:       StatusPending,
		sessionID:    sessionID,
		subtotal:     subtotal,
		discount:     discount,
		total:        total,
		deposit:      DepositDue(items, subtotal, discount),
		contact:      contact,
		items:        items,
		applications: allocation.Applications,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func Subtotal(items []*Item) money.Money {
	var sum money.Money
	for _, it := range items {
		sum = sum.Add(it.TotalPrice())
	}
	return sum
}

func DepositDue(items []*Item, subtotal, discount money.Money) money.Money {
	var gross money.Money
	for _, it := range items {
		gross = gross.Add(it.Deposit())
	}
	due := gross.Sub(discount.MulDiv(gross, subtotal))
	return money.Min(due, subtotal.Sub(discount))
}

func ReconstructOrder(
	id uuid.UUID,
	number Number,
	status Status,
	sessionID string,
	subtotal, discount, total, deposit money.Money,
	contact Contact,
	customerID *uuid.UUID,
	items []*Item,
	applications []voucher.Application,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:           id,
		number:       number,
		status:       status,
		sessionID:    sessionID,
		subtotal:     subtotal,
		discount:     discount,
		total:        total,
		deposit:      deposit,
		contact:      contact,
		customerID:   customerID,
		items:        items,
		applications: applications,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (o *Order) transition(next Status, now time.Time) error {
	if !o.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, next)
	}
	o.status = next
	o.updatedAt = now
	return nil
}

func (o *Order) MarkPaid(customerID uuid.UUID, now time.Time) error {
	if err := o.transition(StatusPaid, now); err != nil {
		return err
	}
	o.customerID = &customerID
	return nil
}

func (o *Order) Confirm(now time.Time) error {
	return o.transition(StatusConfirmed, now)
}

// Cancel returns the status the order was cancelled from.
func (o *Order) Cancel(now time.Time) (Status, error) {
	prev := o.status
	if err := o.transition(StatusCancelled, now); err != nil {
		return prev, err
	}
	return prev, nil
}

func (o *Order) Refund(now time.Time) error {
	return o.transition(StatusRefunded, now)
}

func (o *Order) IsExpired(ttl time.Duration, now time.Time) bool {
	return o.status == StatusPending && !now.Before(o.createdAt.Add(ttl))
}

func (o *Order) ID() uuid.UUID                       { return o.id }
func (o *Order) Number() Number                      { return o.number }
func (o *Order) Status() Status                      { return o.status }
func (o *Order) SessionID() string                   { return o.sessionID }
func (o *Order) Subtotal() money.Money               { return o.subtotal }
func (o *Order) Discount() money.Money               { return o.discount }
func (o *Order) Total() money.Money                  { return o.total }
func (o *Order) DepositAmount() money.Money          { return o.deposit }
func (o *Order) Contact() Contact                    { return o.contact }
func (o *Order) CustomerID() *uuid.UUID              { return o.customerID }
func (o *Order) Items() []*Item                      { return o.items }
func (o *Order) Applications() []voucher.Application { return o.applications }
func (o *Order) CreatedAt() time.Time                { return o.createdAt }
func (o *Order) UpdatedAt() time.Time                { return o.updatedAt }
