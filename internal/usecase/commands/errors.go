package commands

import (
	"errors"

	"activity-booking/internal/domain/capacity"
	"activity-booking/internal/domain/cart"
	"activity-booking/internal/domain/customer"
	"activity-booking/internal/domain/hold"
	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/order"
	"activity-booking/internal/domain/payment"
	"activity-booking/internal/domain/resource"
	"activity-booking/internal/domain/voucher"
	"activity-booking/internal/infra"
	"activity-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound      = errs.Define(errs.ErrNotFound, "resource not found")
	ErrHoldNotFound          = errs.Define(errs.ErrNotFound, "hold not found")
	ErrCartItemNotFound      = errs.Define(errs.ErrNotFound, "cart item not found")
	ErrOrderNotFound         = errs.Define(errs.ErrNotFound, "order not found")
	ErrPaymentNotFound       = errs.Define(errs.ErrNotFound, "payment not found")
	ErrPaymentIntentNotFound = errs.Define(errs.ErrNotFound, "payment intent not found")

	ErrEmptyCart       = errs.Define(errs.ErrValidation, "cart is empty")
	ErrInvalidCartItem = errs.Define(errs.ErrValidation, "cart item must be a booking or a voucher purchase")

	ErrOrderStateConflict   = errs.Define(errs.ErrStateConflict, "order status does not allow this operation")
	ErrPaymentStateConflict = errs.Define(errs.ErrStateConflict, "payment is no longer pending")
	ErrPendingOrderExists   = errs.Define(errs.ErrStateConflict, "checkout session already has a pending order")

	ErrVoucherCodeSpace = errs.Define(errs.ErrDatabaseOperationFailed, "could not generate a unique voucher code")
)

const MessageInsufficientCapacity = "Not enough places available"

// CapacityError reports the capacity picture at the moment a writer was refused.
type CapacityError struct {
	ResourceID uuid.UUID
	Snapshot   capacity.Snapshot
}

func (e *CapacityError) Error() string { return MessageInsufficientCapacity }

func (e *CapacityError) Is(target error) bool { return target == errs.ErrCapacityExceeded }

type CapacityDetail struct {
	ResourceID      uuid.UUID `json:"resource_id"`
	AvailablePlaces int       `json:"available_places"`
	TotalPlaces     int       `json:"total_places"`
	ConfirmedCount  int       `json:"confirmed_count"`
	HeldCount       int       `json:"held_count"`
	Requested       int       `json:"requested"`
}

func (e *CapacityError) Detail() any {
	return CapacityDetail{
		ResourceID:      e.ResourceID,
		AvailablePlaces: e.Snapshot.AvailablePlaces,
		TotalPlaces:     e.Snapshot.TotalPlaces,
		ConfirmedCount:  e.Snapshot.ConfirmedCount,
		HeldCount:       e.Snapshot.HeldCount,
		Requested:       e.Snapshot.Requested,
	}
}

func newCapacityError(resourceID uuid.UUID, counts capacity.Counts, requested int) error {
	return &CapacityError{ResourceID: resourceID, Snapshot: capacity.Evaluate(counts, requested)}
}

// resourceNotFound keeps the kind specific reason in the message.
func resourceNotFound(kind resource.Kind) error {
	if !kind.IsValid() {
		return ErrResourceNotFound
	}
	return errs.Wrap(ErrResourceNotFound, kind.NotFoundReason())
}

func repoErr(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

var validationErrors = []error{
	resource.ErrInvalidKind,
	resource.ErrEmptyTitle,
	resource.ErrTitleTooLong,
	resource.ErrInvalidCapacity,
	resource.ErrCapacityBelowConfirmed,
	resource.ErrInvalidPrice,
	resource.ErrDepositRequired,
	resource.ErrInvalidDeposit,
	resource.ErrMissingStartTime,
	hold.ErrInvalidQuantity,
	hold.ErrInvalidSessionID,
	hold.ErrInvalidTTL,
	cart.ErrMissingResource,
	order.ErrEmptyOrder,
	order.ErrDiscountTooLarge,
	order.ErrParticipantName,
	order.ErrParticipantEmail,
	order.ErrParticipantPhone,
	order.ErrParticipantWeight,
	order.ErrParticipantHeight,
	order.ErrContactName,
	order.ErrContactEmail,
	order.ErrVoucherAmount,
	order.ErrRecipientEmail,
	customer.ErrInvalidEmail,
	payment.ErrInvalidAmount,
	money.ErrNegativeAmount,
}

// domainErr marks domain sentinels with the class the HTTP layer maps.
func domainErr(err error) error {
	if err == nil {
		return nil
	}
	var invalid *voucher.InvalidError
	switch {
	case errors.As(err, &invalid):
		return errs.Mark(err, errs.ErrVoucherInvalid)
	case errors.Is(err, order.ErrInvalidTransition):
		return errs.Mark(err, ErrOrderStateConflict)
	case errors.Is(err, payment.ErrNotPending):
		return errs.Mark(err, ErrPaymentStateConflict)
	case errs.ClassOf(err, validationErrors...) != nil:
		return errs.Mark(err, errs.ErrValidation)
	}
	return err
}
