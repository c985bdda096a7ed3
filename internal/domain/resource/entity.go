package resource

import (
	"errors"
	"strings"
	"time"

	"activity-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle             = errors.New("resource title cannot be empty")
	ErrTitleTooLong           = errors.New("resource title is too long (max 255 characters)")
	ErrInvalidCapacity        = errors.New("capacity must be at least 1")
	ErrCapacityBelowConfirmed = errors.New("capacity cannot be reduced below confirmed bookings")
	ErrInvalidPrice           = errors.New("full price must be positive")
	ErrDepositRequired        = errors.New("deposit price is required for multi-day sessions")
	ErrInvalidDeposit         = errors.New("deposit price must be positive and not exceed the full price")
	ErrMissingStartTime       = errors.New("start time is required")
)

const MaxTitleLength = 255

type Resource struct {
	id        uuid.UUID
	variant   Variant
	title     string
	startsAt  time.Time
	capacity  int
	fullPrice money.Money
	createdAt time.Time
	updatedAt time.Time
}

func NewResource(variant Variant, title string, startsAt time.Time, capacity int, fullPrice money.Money, now time.Time) (*Resource, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if startsAt.IsZero() {
		return nil, ErrMissingStartTime
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if err := validatePricing(variant, fullPrice); err != nil {
		return nil, err
	}

	return &Resource{
		id:        uuid.New(),
		variant:   variant,
		title:     title,
		startsAt:  startsAt,
		capacity:  capacity,
		fullPrice: fullPrice,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructResource(
	id uuid.UUID,
	variant Variant,
	title string,
	startsAt time.Time,
	capacity int,
	fullPrice money.Money,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:        id,
		variant:   variant,
		title:     title,
		startsAt:  startsAt,
		capacity:  capacity,
		fullPrice: fullPrice,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ChangeCapacity never lets capacity drop below the confirmed booking count.
func (r *Resource) ChangeCapacity(capacity, confirmed int, now time.Time) error {
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	if capacity < confirmed {
		return ErrCapacityBelowConfirmed
	}
	r.capacity = capacity
	r.updatedAt = now
	return nil
}

// Reprice changes the full price and, for multi-day sessions, the deposit price.
func (r *Resource) Reprice(fullPrice money.Money, depositPrice *money.Money, now time.Time) error {
	variant := r.variant
	if m, ok := variant.(MultiDaySession); ok && depositPrice != nil {
		m.depositPrice = *depositPrice
		variant = m
	}
	if err := validatePricing(variant, fullPrice); err != nil {
		return err
	}
	r.variant = variant
	r.fullPrice = fullPrice
	r.updatedAt = now
	return nil
}

func (r *Resource) Rename(title string, now time.Time) error {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return err
	}
	r.title = title
	r.updatedAt = now
	return nil
}

func (r *Resource) DepositPrice() money.Money {
	return r.variant.Deposit(r.fullPrice)
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validatePricing(variant Variant, fullPrice money.Money) error {
	if !fullPrice.IsPositive() {
		return ErrInvalidPrice
	}
	switch v := variant.(type) {
	case MultiDaySession:
		if !v.depositPrice.IsPositive() || v.depositPrice.GreaterThan(fullPrice) {
			return ErrInvalidDeposit
		}
	case SingleSlot:
	default:
		return ErrInvalidKind
	}
	return nil
}

func (r *Resource) ID() uuid.UUID          { return r.id }
func (r *Resource) Variant() Variant       { return r.variant }
func (r *Resource) Kind() Kind             { return r.variant.Kind() }
func (r *Resource) Title() string          { return r.title }
func (r *Resource) StartsAt() time.Time    { return r.startsAt }
func (r *Resource) Capacity() int          { return r.capacity }
func (r *Resource) FullPrice() money.Money { return r.fullPrice }
func (r *Resource) CreatedAt() time.Time   { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time   { return r.updatedAt }
