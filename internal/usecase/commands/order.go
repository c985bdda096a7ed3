package commands

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order_mock.go -package=commandsmock

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"activity-booking/internal/domain/capacity"
	"activity-booking/internal/domain/cart"
	"activity-booking/internal/domain/hold"
	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/order"
	"activity-booking/internal/domain/payment"
	"activity-booking/internal/domain/resource"
	"activity-booking/internal/domain/voucher"
	"activity-booking/internal/infra"
	"activity-booking/internal/pkg/clock"
	"activity-booking/internal/pkg/config"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/queries"
	"activity-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const expireBatchSize = 100

type ContactInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type CreateOrderRequest struct {
	SessionID    string       `json:"checkout_session_id"`
	VoucherCodes []string     `json:"voucher_codes"`
	Contact      ContactInput `json:"contact"`
}

type CreateOrderResult struct {
	Order *queries.OrderView
	// Intent is nil when vouchers cover the whole deposit.
	Intent     *PayableIntent
	IsReplayed bool
}

type ManualPaymentRequest struct {
	AmountCents int64
	Note        string
}

type OrderCommands interface {
	Create(ctx context.Context, req CreateOrderRequest, idempotencyKey string) (*CreateOrderResult, error)
	Cancel(ctx context.Context, orderID uuid.UUID) error
	Refund(ctx context.Context, orderID uuid.UUID) error
	Confirm(ctx context.Context, orderID uuid.UUID) error
	RecordManualPayment(ctx context.Context, orderID uuid.UUID, req ManualPaymentRequest) (*MaterializeResult, error)
	// ExpirePending cancels PENDING orders older than the pending TTL, one transaction each.
	ExpirePending(ctx context.Context) (int, error)
}

type orderUseCaseImpl struct {
	uow       shared.UnitOfWork
	settler   *settler
	processor PaymentProcessor
	orders    queries.OrderQueries
	cfg       config.BookingConfig
	currency  string
	clock     clock.Clock
}

func NewOrderUseCase(
	uow shared.UnitOfWork,
	processor PaymentProcessor,
	codes voucher.CodeGenerator,
	orders queries.OrderQueries,
	cfg config.BookingConfig,
	stripeCfg config.StripeConfig,
	clk clock.Clock,
) OrderCommands {
	return &orderUseCaseImpl{
		uow:       uow,
		settler:   newSettler(codes),
		processor: processor,
		orders:    orders,
		cfg:       cfg,
		currency:  stripeCfg.Currency,
		clock:     clk,
	}
}

func (uc *orderUseCaseImpl) Create(ctx context.Context, req CreateOrderRequest, idempotencyKey string) (*CreateOrderResult, error) {
	contact, err := order.NewContact(req.Contact.Email, req.Contact.FirstName, req.Contact.LastName, req.Contact.Phone)
	if err != nil {
		return nil, domainErr(err)
	}
	req.SessionID, err = normalizeSession(req.SessionID)
	if err != nil {
		return nil, err
	}

	if idempotencyKey == "" {
		return uc.createNewOrder(ctx, req, contact, "")
	}

	replay, err := uc.handleIdempotency(ctx, idempotencyKey, req)
	if err != nil {
		return nil, err
	}
	if replay != nil {
		return replay, nil
	}

	result, err := uc.createNewOrder(ctx, req, contact, idempotencyKey)
	if err != nil {
		uc.releaseIdempotencyKey(ctx, idempotencyKey, req.SessionID)
		return nil, err
	}
	return result, nil
}

func (uc *orderUseCaseImpl) createNewOrder(ctx context.Context, req CreateOrderRequest, contact order.Contact, idempotencyKey string) (*CreateOrderResult, error) {
	now := uc.clock.Now()
	// generated once so a retried transaction reuses the processor idempotency key
	orderID := uuid.New()
	number := order.GenerateNumber(now)

	var intent *PayableIntent
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		intent = nil

		items, err := tx.Reads().CartItems(ctx, req.SessionID)
		if err != nil {
			return repoErr(err, nil)
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		resources, err := lockCartResources(ctx, tx, req.SessionID, items, now)
		if err != nil {
			return err
		}
		// the session's holds are counted once, by the open order
		pending, err := tx.Orders().PendingIDBySession(ctx, req.SessionID)
		if err != nil {
			return repoErr(err, nil)
		}
		if pending != nil {
			return errs.Wrapf(ErrPendingOrderExists, "order %s", *pending)
		}
		orderItems, err := buildOrderItems(items, resources)
		if err != nil {
			return err
		}

		allocation, vouchers, err := applyVouchers(ctx, tx, req.VoucherCodes, order.Subtotal(orderItems), orderID, now)
		if err != nil {
			return err
		}

		o, err := order.NewOrder(orderID, number, req.SessionID, contact, orderItems, allocation, now)
		if err != nil {
			return domainErr(err)
		}
		if err := tx.Orders().Create(ctx, o); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrPendingOrderExists)
			}
			return repoErr(err, nil)
		}
		for _, v := range vouchers {
			if err := tx.Vouchers().SaveBalance(ctx, v, now); err != nil {
				return repoErr(err, nil)
			}
		}
		if len(allocation.Applications) > 0 {
			if err := tx.Vouchers().CreateApplications(ctx, o.ID(), allocation.Applications, now); err != nil {
				return repoErr(err, nil)
			}
		}
		if _, err := tx.Holds().ExtendSession(ctx, req.SessionID, now.Add(uc.cfg.PaymentHoldTTL), now); err != nil {
			return repoErr(err, nil)
		}

		if o.DepositAmount().IsZero() {
			if err := tx.Payments().Create(ctx, payment.NewVoucherPayment(o.ID(), uc.currency, now)); err != nil {
				return repoErr(err, nil)
			}
			if _, err := uc.settler.settle(ctx, tx, o, now); err != nil {
				return err
			}
		} else {
			intent, err = uc.openIntent(ctx, tx, o, now)
			if err != nil {
				return err
			}
		}

		if idempotencyKey != "" {
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, idempotencyKey, req.SessionID, o.ID()); err != nil {
				return repoErr(err, nil)
			}
		}
		return nil
	})
	if err != nil {
		if intent != nil {
			cancelIntent(ctx, uc.processor, intent.IntentID)
		}
		return nil, err
	}

	view, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &CreateOrderResult{Order: view, Intent: intent}, nil
}

func (uc *orderUseCaseImpl) openIntent(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) (*PayableIntent, error) {
	metadata := map[string]string{
		"orderId":           o.ID().String(),
		"orderNumber":       o.Number().String(),
		"checkoutSessionId": o.SessionID(),
		"customerEmail":     o.Contact().Email,
	}
	intent, err := uc.processor.CreatePayableIntent(ctx, o.DepositAmount(), uc.currency, metadata, "order-"+o.ID().String())
	if err != nil {
		return nil, errs.Wrap(err, "create payable intent")
	}

	p, err := payment.NewOnlinePayment(o.ID(), intent.IntentID, intent.ClientSecret, o.DepositAmount(), intent.Currency, now)
	if err != nil {
		return intent, domainErr(err)
	}
	if err := tx.Payments().Create(ctx, p); err != nil {
		return intent, repoErr(err, nil)
	}
	return intent, nil
}

// lockCartResources locks every booked resource in id order and re-checks capacity against
// the other sessions' holds.
func lockCartResources(ctx context.Context, tx shared.Tx, sessionID string, items []*cart.Item, now time.Time) (map[uuid.UUID]*resource.Resource, error) {
	var ids []uuid.UUID
	for _, it := range items {
		if it.ResourceID() != nil && !slices.Contains(ids, *it.ResourceID()) {
			ids = append(ids, *it.ResourceID())
		}
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })

	locked := make(map[uuid.UUID]*resource.Resource, len(ids))
	for _, id := range ids {
		r, err := lockResource(ctx, tx, id, "")
		if err != nil {
			return nil, err
		}
		counts, err := tx.Resources().Counts(ctx, r, now, sessionID)
		if err != nil {
			return nil, repoErr(err, nil)
		}
		seats := cart.CountFor(items, id)
		if !capacity.Fits(counts, seats) {
			return nil, newCapacityError(id, counts, seats)
		}
		locked[id] = r
	}
	return locked, nil
}

func buildOrderItems(items []*cart.Item, resources map[uuid.UUID]*resource.Resource) ([]*order.Item, error) {
	out := make([]*order.Item, 0, len(items))
	for _, it := range items {
		var oi *order.Item
		var err error
		switch {
		case it.Type().IsBooking() && it.ResourceID() != nil && it.Participant() != nil:
			oi, err = order.NewBookingItem(resources[*it.ResourceID()], *it.Participant())
		case it.Type() == order.ItemVoucherPurchase && it.VoucherPurchase() != nil:
			oi, err = order.NewVoucherPurchaseItem(*it.VoucherPurchase())
		default:
			return nil, ErrInvalidCartItem
		}
		if err != nil {
			return nil, domainErr(err)
		}
		out = append(out, oi)
	}
	return out, nil
}

// applyVouchers locks codes in the given order until the target is covered; codes past that
// point are not looked up.
func applyVouchers(ctx context.Context, tx shared.Tx, rawCodes []string, target money.Money, orderID uuid.UUID, now time.Time) (voucher.Allocation, []*voucher.Voucher, error) {
	var locked []*voucher.Voucher
	covered := money.Zero()

	for _, code := range voucher.DedupeCodes(rawCodes) {
		if !covered.LessThan(target) {
			break
		}
		v, err := tx.Vouchers().LockByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return voucher.Allocation{}, nil, domainErr(&voucher.InvalidError{Code: code, Reason: voucher.ErrUnknownCode})
			}
			return voucher.Allocation{}, nil, repoErr(err, nil)
		}
		if err := v.Redeemable(now); err != nil {
			return voucher.Allocation{}, nil, domainErr(&voucher.InvalidError{Code: code, Reason: err})
		}
		locked = append(locked, v)
		covered = covered.Add(v.Remaining())
	}

	allocation, err := voucher.Allocate(locked, target, orderID, now)
	if err != nil {
		return voucher.Allocation{}, nil, domainErr(err)
	}

	debited := make([]*voucher.Voucher, 0, len(allocation.Applications))
	for _, app := range allocation.Applications {
		for _, v := range locked {
			if v.ID() == app.VoucherID {
				debited = append(debited, v)
			}
		}
	}
	return allocation, debited, nil
}

func (uc *orderUseCaseImpl) Cancel(ctx context.Context, orderID uuid.UUID) error {
	var intentID *string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		intentID = nil
		o, err := tx.Orders().LockByID(ctx, orderID)
		if err != nil {
			return repoErr(err, ErrOrderNotFound)
		}
		intentID, err = uc.cancelOrder(ctx, tx, o, uc.clock.Now())
		return err
	})
	if err != nil {
		return err
	}
	if intentID != nil {
		cancelIntent(ctx, uc.processor, *intentID)
	}
	return nil
}

// cancelOrder fails a still pending payment and returns its intent for cancellation at the processor.
func (uc *orderUseCaseImpl) cancelOrder(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) (*string, error) {
	if err := uc.settler.cancel(ctx, tx, o, now); err != nil {
		return nil, err
	}

	p, err := tx.Payments().LockByOrderID(ctx, o.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, repoErr(err, nil)
	}
	if p.Status() != payment.StatusPending {
		return nil, nil
	}
	if err := p.MarkFailed(now); err != nil {
		return nil, domainErr(err)
	}
	if err := tx.Payments().Update(ctx, p); err != nil {
		return nil, repoErr(err, nil)
	}
	return p.IntentID(), nil
}

func (uc *orderUseCaseImpl) Refund(ctx context.Context, orderID uuid.UUID) error {
	return uc.transition(ctx, orderID, func(o *order.Order, now time.Time) error {
		return o.Refund(now)
	})
}

func (uc *orderUseCaseImpl) Confirm(ctx context.Context, orderID uuid.UUID) error {
	return uc.transition(ctx, orderID, func(o *order.Order, now time.Time) error {
		return o.Confirm(now)
	})
}

func (uc *orderUseCaseImpl) transition(ctx context.Context, orderID uuid.UUID, apply func(o *order.Order, now time.Time) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().LockByID(ctx, orderID)
		if err != nil {
			return repoErr(err, ErrOrderNotFound)
		}
		if err := apply(o, uc.clock.Now()); err != nil {
			return domainErr(err)
		}
		if err := tx.Orders().UpdateStatus(ctx, o); err != nil {
			return repoErr(err, nil)
		}
		return nil
	})
}

func (uc *orderUseCaseImpl) RecordManualPayment(ctx context.Context, orderID uuid.UUID, req ManualPaymentRequest) (*MaterializeResult, error) {
	amount, err := money.FromCents(req.AmountCents)
	if err != nil {
		return nil, domainErr(err)
	}

	var result *MaterializeResult
	var intentID *string
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		o, err := tx.Orders().LockByID(ctx, orderID)
		if err != nil {
			return repoErr(err, ErrOrderNotFound)
		}
		if o.Status() != order.StatusPending {
			return errs.Wrapf(ErrOrderStateConflict, "order is %s", o.Status())
		}

		p, err := tx.Payments().LockByOrderID(ctx, orderID)
		if err != nil {
			return repoErr(err, ErrPaymentNotFound)
		}
		intentID = p.IntentID()
		if err := p.RecordManual(amount, req.Note, now); err != nil {
			return domainErr(err)
		}
		if err := tx.Payments().Update(ctx, p); err != nil {
			return repoErr(err, nil)
		}

		result, err = uc.settler.settle(ctx, tx, o, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	if intentID != nil {
		cancelIntent(ctx, uc.processor, *intentID)
	}
	return result, nil
}

func (uc *orderUseCaseImpl) ExpirePending(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	var ids []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Orders().ListExpiredPendingIDs(ctx, now.Add(-uc.cfg.PendingOrderTTL), expireBatchSize)
		return repoErr(err, nil)
	})
	if err != nil {
		return 0, err
	}

	expired := 0
	var failures []error
	for _, id := range ids {
		var intentID *string
		var cancelled bool
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			intentID, cancelled = nil, false
			o, err := tx.Orders().LockByID(ctx, id)
			if err != nil {
				return repoErr(err, ErrOrderNotFound)
			}
			// paid or cancelled since the listing
			if !o.IsExpired(uc.cfg.PendingOrderTTL, now) {
				return nil
			}
			intentID, err = uc.cancelOrder(ctx, tx, o, now)
			cancelled = err == nil
			return err
		})
		if err != nil {
			slog.Error("failed to expire pending order", "order_id", id, "error", err)
			failures = append(failures, err)
			continue
		}
		if cancelled {
			expired++
		}
		if intentID != nil {
			cancelIntent(ctx, uc.processor, *intentID)
		}
	}

	if expired > 0 {
		slog.Info("pending orders expired", "count", expired)
	}
	return expired, errors.Join(failures...)
}

func normalizeSession(sessionID string) (string, error) {
	s, err := hold.NormalizeSessionID(sessionID)
	if err != nil {
		return "", domainErr(err)
	}
	return s, nil
}
