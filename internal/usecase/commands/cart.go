package commands

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/cart_mock.go -package=commandsmock

import (
	"context"
	"time"

	"activity-booking/internal/domain/capacity"
	"activity-booking/internal/domain/cart"
	"activity-booking/internal/domain/hold"
	"activity-booking/internal/domain/order"
	"activity-booking/internal/domain/resource"
	"activity-booking/internal/pkg/clock"
	"activity-booking/internal/pkg/config"
	"activity-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// AddCartItemRequest carries either a booking (ResourceID + Participant) or a voucher purchase.
type AddCartItemRequest struct {
	SessionID    string
	ResourceKind string
	ResourceID   *uuid.UUID
	Participant  *order.Participant
	Voucher      *order.VoucherPurchase
}

type CartItemResult struct {
	Item *cart.Item
	// Hold is the refreshed hold of the booked resource, nil for vouchers or when no seat is left in the cart.
	Hold *hold.Hold
}

type CartCommands interface {
	AddItem(ctx context.Context, req AddCartItemRequest) (*CartItemResult, error)
	RemoveItem(ctx context.Context, sessionID string, itemID uuid.UUID) (*CartItemResult, error)
}

type cartUseCaseImpl struct {
	uow   shared.UnitOfWork
	cfg   config.BookingConfig
	clock clock.Clock
}

func NewCartUseCase(uow shared.UnitOfWork, cfg config.BookingConfig, clk clock.Clock) CartCommands {
	return &cartUseCaseImpl{uow: uow, cfg: cfg, clock: clk}
}

func (uc *cartUseCaseImpl) AddItem(ctx context.Context, req AddCartItemRequest) (*CartItemResult, error) {
	now := uc.clock.Now()

	switch {
	case req.Voucher != nil && req.ResourceID == nil:
		item, err := cart.NewVoucherItem(req.SessionID, *req.Voucher, now)
		if err != nil {
			return nil, domainErr(err)
		}
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return addCartItem(ctx, tx, item)
		})
		if err != nil {
			return nil, err
		}
		return &CartItemResult{Item: item}, nil

	case req.ResourceID != nil && req.Participant != nil && req.Voucher == nil:
		return uc.addBooking(ctx, req, now)

	default:
		return nil, ErrInvalidCartItem
	}
}

func (uc *cartUseCaseImpl) addBooking(ctx context.Context, req AddCartItemRequest, now time.Time) (*CartItemResult, error) {
	kind, err := resource.ParseKind(req.ResourceKind)
	if err != nil {
		return nil, domainErr(err)
	}
	sessionID, err := hold.NormalizeSessionID(req.SessionID)
	if err != nil {
		return nil, domainErr(err)
	}

	result := &CartItemResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := lockResource(ctx, tx, *req.ResourceID, kind)
		if err != nil {
			return err
		}

		item, err := cart.NewBookingItem(sessionID, r, *req.Participant, now)
		if err != nil {
			return domainErr(err)
		}

		items, err := tx.Reads().CartItems(ctx, sessionID)
		if err != nil {
			return repoErr(err, nil)
		}
		seats := cart.CountFor(items, r.ID()) + 1

		counts, err := tx.Resources().Counts(ctx, r, now, sessionID)
		if err != nil {
			return repoErr(err, nil)
		}
		if !capacity.Fits(counts, seats) {
			return newCapacityError(r.ID(), counts, seats)
		}

		if err := addCartItem(ctx, tx, item); err != nil {
			return err
		}
		h, err := uc.refreshHold(ctx, tx, sessionID, r, seats, now)
		if err != nil {
			return err
		}
		result.Item = item
		result.Hold = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *cartUseCaseImpl) RemoveItem(ctx context.Context, sessionID string, itemID uuid.UUID) (*CartItemResult, error) {
	sessionID, err := hold.NormalizeSessionID(sessionID)
	if err != nil {
		return nil, domainErr(err)
	}

	now := uc.clock.Now()
	result := &CartItemResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resourceID, err := tx.Cart().Remove(ctx, sessionID, itemID)
		if err != nil {
			return repoErr(err, ErrCartItemNotFound)
		}
		if resourceID == nil {
			return nil
		}

		items, err := tx.Reads().CartItems(ctx, sessionID)
		if err != nil {
			return repoErr(err, nil)
		}
		seats := cart.CountFor(items, *resourceID)
		if seats == 0 {
			if _, err := tx.Holds().Delete(ctx, sessionID, *resourceID); err != nil {
				return repoErr(err, nil)
			}
			return nil
		}

		// shrinking a hold never needs a capacity check
		r, err := lockResource(ctx, tx, *resourceID, "")
		if err != nil {
			return err
		}
		result.Hold, err = uc.refreshHold(ctx, tx, sessionID, r, seats, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *cartUseCaseImpl) refreshHold(ctx context.Context, tx shared.Tx, sessionID string, r *resource.Resource, seats int, now time.Time) (*hold.Hold, error) {
	h, err := hold.NewHold(sessionID, r.ID(), r.Kind(), seats, uc.cfg.HoldTTL, now)
	if err != nil {
		return nil, domainErr(err)
	}
	saved, err := tx.Holds().Upsert(ctx, h)
	if err != nil {
		return nil, repoErr(err, nil)
	}
	return saved, nil
}

func addCartItem(ctx context.Context, tx shared.Tx, item *cart.Item) error {
	if err := tx.Cart().Add(ctx, item); err != nil {
		return repoErr(err, nil)
	}
	return nil
}
