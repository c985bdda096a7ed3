package commands

//go:generate mockgen -source=settlement.go -destination=../../../tests/mock/commands/settlement_mock.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"activity-booking/internal/domain/booking"
	"activity-booking/internal/domain/customer"
	"activity-booking/internal/domain/order"
	"activity-booking/internal/domain/payment"
	"activity-booking/internal/domain/voucher"
	"activity-booking/internal/infra"
	"activity-booking/internal/pkg/clock"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxVoucherCodeAttempts = 5

type MaterializeResult struct {
	BookingsCreated     int
	VouchersMinted      int
	AlreadyMaterialized int
}

type PaymentOutcomeResult struct {
	OrderID      uuid.UUID
	Status       order.Status
	Replayed     bool
	Materialized MaterializeResult
}

// ProcessorEvent is a verified webhook delivery reduced to what settlement needs.
type ProcessorEvent struct {
	ID       string
	Type     string
	IntentID string
	Outcome  payment.Outcome
}

type SettlementCommands interface {
	// HandlePaymentOutcome applies a processor verdict for an intent. Repeated deliveries are
	// reported as Replayed and change nothing.
	HandlePaymentOutcome(ctx context.Context, intentID string, outcome payment.Outcome) (*PaymentOutcomeResult, error)
	// HandleProcessorEvent records the event id in the same transaction, so a redelivered
	// event is a no-op.
	HandleProcessorEvent(ctx context.Context, event ProcessorEvent) (*PaymentOutcomeResult, error)
}

// settler holds the transitions shared by callbacks, manual payments and admin actions.
type settler struct {
	codes voucher.CodeGenerator
}

func newSettler(codes voucher.CodeGenerator) *settler {
	return &settler{codes: codes}
}

type settlementUseCaseImpl struct {
	uow       shared.UnitOfWork
	settler   *settler
	processor PaymentProcessor
	clock     clock.Clock
}

func NewSettlementUseCase(uow shared.UnitOfWork, processor PaymentProcessor, codes voucher.CodeGenerator, clk clock.Clock) SettlementCommands {
	return &settlementUseCaseImpl{
		uow:       uow,
		settler:   newSettler(codes),
		processor: processor,
		clock:     clk,
	}
}

func (uc *settlementUseCaseImpl) HandlePaymentOutcome(ctx context.Context, intentID string, outcome payment.Outcome) (*PaymentOutcomeResult, error) {
	if intentID == "" {
		return nil, ErrPaymentIntentNotFound
	}

	var result *PaymentOutcomeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		result, err = uc.apply(ctx, tx, intentID, outcome, uc.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.afterOutcome(ctx, intentID, outcome, result)
	return result, nil
}

func (uc *settlementUseCaseImpl) HandleProcessorEvent(ctx context.Context, event ProcessorEvent) (*PaymentOutcomeResult, error) {
	if event.ID == "" {
		return nil, errs.Mark(errs.New("processor event id is required"), errs.ErrValidation)
	}
	if event.IntentID == "" {
		return nil, ErrPaymentIntentNotFound
	}

	var (
		result    *PaymentOutcomeResult
		duplicate bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, duplicate = nil, false
		now := uc.clock.Now()

		fresh, err := tx.WebhookEvents().MarkProcessed(ctx, event.ID, event.Type, now)
		if err != nil {
			return repoErr(err, nil)
		}
		if !fresh {
			duplicate = true
			return nil
		}
		result, err = uc.apply(ctx, tx, event.IntentID, event.Outcome, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	if duplicate {
		slog.Info("duplicate processor event ignored", "event_id", event.ID, "event_type", event.Type)
		return &PaymentOutcomeResult{Replayed: true}, nil
	}

	uc.afterOutcome(ctx, event.IntentID, event.Outcome, result)
	return result, nil
}

func (uc *settlementUseCaseImpl) apply(ctx context.Context, tx shared.Tx, intentID string, outcome payment.Outcome, now time.Time) (*PaymentOutcomeResult, error) {
	p, err := tx.Payments().LockByIntentID(ctx, intentID)
	if err != nil {
		return nil, repoErr(err, ErrPaymentIntentNotFound)
	}
	o, err := tx.Orders().LockByID(ctx, p.OrderID())
	if err != nil {
		return nil, repoErr(err, ErrOrderNotFound)
	}

	switch outcome {
	case payment.OutcomeSucceeded:
		return uc.succeed(ctx, tx, o, p, intentID, now)
	case payment.OutcomeFailed:
		return uc.fail(ctx, tx, o, p, now)
	default:
		return nil, errs.Mark(errs.New("unknown payment outcome "+string(outcome)), errs.ErrValidation)
	}
}

func (uc *settlementUseCaseImpl) afterOutcome(ctx context.Context, intentID string, outcome payment.Outcome, result *PaymentOutcomeResult) {
	if outcome == payment.OutcomeFailed && !result.Replayed {
		cancelIntent(ctx, uc.processor, intentID)
	}
}

// cancelIntent runs after commit; a failure leaves the intent to expire at the processor.
func cancelIntent(ctx context.Context, processor PaymentProcessor, intentID string) {
	if err := processor.CancelIntent(ctx, intentID); err != nil {
		slog.Warn("failed to cancel payment intent", "intent_id", intentID, "error", err)
	}
}

func (uc *settlementUseCaseImpl) succeed(ctx context.Context, tx shared.Tx, o *order.Order, p *payment.Payment, intentID string, now time.Time) (*PaymentOutcomeResult, error) {
	if o.Status().IsSettled() && p.Status() == payment.StatusSucceeded {
		m, err := uc.settler.materialize(ctx, tx, o, now)
		if err != nil {
			return nil, err
		}
		return &PaymentOutcomeResult{OrderID: o.ID(), Status: o.Status(), Replayed: true, Materialized: *m}, nil
	}
	if o.Status() != order.StatusPending {
		// the processor holds the buyer's money; an operator has to refund it
		slog.Error("payment captured for an order that is no longer pending, refund required",
			"intent_id", intentID,
			"order_id", o.ID(),
			"order_status", o.Status(),
			"amount_cents", p.Amount().Amount())
		return nil, errs.Wrapf(ErrOrderStateConflict, "order is %s", o.Status())
	}

	if err := p.MarkSucceeded(now); err != nil {
		return nil, domainErr(err)
	}
	if err := tx.Payments().Update(ctx, p); err != nil {
		return nil, repoErr(err, nil)
	}

	m, err := uc.settler.settle(ctx, tx, o, now)
	if err != nil {
		return nil, err
	}
	return &PaymentOutcomeResult{OrderID: o.ID(), Status: o.Status(), Materialized: *m}, nil
}

func (uc *settlementUseCaseImpl) fail(ctx context.Context, tx shared.Tx, o *order.Order, p *payment.Payment, now time.Time) (*PaymentOutcomeResult, error) {
	if p.Status() == payment.StatusFailed && o.Status() == order.StatusCancelled {
		return &PaymentOutcomeResult{OrderID: o.ID(), Status: o.Status(), Replayed: true}, nil
	}
	if o.Status() != order.StatusPending {
		return nil, errs.Wrapf(ErrOrderStateConflict, "order is %s", o.Status())
	}

	if err := p.MarkFailed(now); err != nil {
		return nil, domainErr(err)
	}
	if err := tx.Payments().Update(ctx, p); err != nil {
		return nil, repoErr(err, nil)
	}
	if err := uc.settler.cancel(ctx, tx, o, now); err != nil {
		return nil, err
	}
	return &PaymentOutcomeResult{OrderID: o.ID(), Status: o.Status()}, nil
}

// settle moves a PENDING order whose payment succeeded to PAID and materializes it.
func (s *settler) settle(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) (*MaterializeResult, error) {
	contact := o.Contact()
	c, err := customer.NewCustomer(contact.Email, contact.FirstName, contact.LastName, contact.Phone, now)
	if err != nil {
		return nil, domainErr(err)
	}
	customerID, err := tx.Customers().FindOrCreate(ctx, c)
	if err != nil {
		return nil, repoErr(err, nil)
	}

	if err := o.MarkPaid(customerID, now); err != nil {
		return nil, domainErr(err)
	}
	if err := tx.Orders().UpdateStatus(ctx, o); err != nil {
		return nil, repoErr(err, nil)
	}

	m, err := s.materialize(ctx, tx, o, now)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Holds().DeleteBySession(ctx, o.SessionID()); err != nil {
		return nil, repoErr(err, nil)
	}
	if _, err := tx.Cart().Clear(ctx, o.SessionID()); err != nil {
		return nil, repoErr(err, nil)
	}
	if err := s.enqueue(ctx, tx, TopicOrderPaid, o, now); err != nil {
		return nil, err
	}
	return m, nil
}

// cancel moves the order to CANCELLED, releasing the session's holds. Vouchers are given back
// only when the order had not been paid.
func (s *settler) cancel(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) error {
	prev, err := o.Cancel(now)
	if err != nil {
		return domainErr(err)
	}
	if err := tx.Orders().UpdateStatus(ctx, o); err != nil {
		return repoErr(err, nil)
	}
	if prev == order.StatusPending {
		if err := s.restoreVouchers(ctx, tx, o.ID(), now); err != nil {
			return err
		}
	}
	if _, err := tx.Holds().DeleteBySession(ctx, o.SessionID()); err != nil {
		return repoErr(err, nil)
	}
	return s.enqueue(ctx, tx, TopicOrderCancelled, o, now)
}

func (s *settler) restoreVouchers(ctx context.Context, tx shared.Tx, orderID uuid.UUID, now time.Time) error {
	apps, err := tx.Vouchers().ListOpenApplications(ctx, orderID)
	if err != nil {
		return repoErr(err, nil)
	}
	for _, app := range apps {
		v, err := tx.Vouchers().LockByID(ctx, app.VoucherID)
		if err != nil {
			return repoErr(err, nil)
		}
		if err := v.Restore(app.Used); err != nil {
			return errs.Wrapf(err, "restore voucher %s", v.Code())
		}
		if err := tx.Vouchers().SaveBalance(ctx, v, now); err != nil {
			return repoErr(err, nil)
		}
		if err := tx.Vouchers().MarkRestored(ctx, app.ID, now); err != nil {
			return repoErr(err, nil)
		}
	}
	return nil
}

// materialize turns paid items into bookings and minted vouchers. Running it again for the
// same order creates nothing.
func (s *settler) materialize(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) (*MaterializeResult, error) {
	if o.CustomerID() == nil {
		return nil, errs.Wrapf(ErrOrderStateConflict, "order %s has no customer", o.ID())
	}

	result := &MaterializeResult{}
	for _, item := range o.Items() {
		var created bool
		var err error
		switch {
		case item.Type().IsBooking():
			created, err = s.materializeBooking(ctx, tx, o, item, now)
		case item.Type() == order.ItemVoucherPurchase:
			created, err = s.materializeVoucher(ctx, tx, item, now)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}

		switch {
		case !created:
			result.AlreadyMaterialized++
		case item.Type().IsBooking():
			result.BookingsCreated++
		default:
			result.VouchersMinted++
		}
	}
	return result, nil
}

func (s *settler) materializeBooking(ctx context.Context, tx shared.Tx, o *order.Order, item *order.Item, now time.Time) (bool, error) {
	b, err := booking.FromOrderItem(item, o.ID(), *o.CustomerID(), now)
	if err != nil {
		return false, domainErr(err)
	}
	id, created, err := tx.Bookings().Insert(ctx, b)
	if err != nil {
		return false, repoErr(err, nil)
	}
	if item.BookingID() == nil || *item.BookingID() != id {
		if err := tx.Orders().LinkBooking(ctx, item.ID(), id); err != nil {
			return false, repoErr(err, nil)
		}
		if err := item.LinkBooking(id); err != nil {
			return false, domainErr(err)
		}
	}
	return created, nil
}

func (s *settler) materializeVoucher(ctx context.Context, tx shared.Tx, item *order.Item, now time.Time) (bool, error) {
	if item.VoucherID() != nil {
		return false, nil
	}
	if existing, err := s.mintedFor(ctx, tx, item); err != nil || existing != nil {
		return false, s.link(ctx, tx, item, existing, err)
	}

	purchase := item.VoucherPurchase()
	recipient := voucher.Recipient{}
	if purchase != nil {
		recipient = voucher.Recipient{Name: purchase.RecipientName, Email: purchase.RecipientEmail}
	}
	itemID := item.ID()

	for range maxVoucherCodeAttempts {
		v, err := voucher.Issue(s.codes.Generate(now), item.UnitPrice(), now, &itemID, recipient)
		if err != nil {
			return false, domainErr(err)
		}
		inserted, err := tx.Vouchers().Insert(ctx, v)
		if err != nil {
			return false, repoErr(err, nil)
		}
		if inserted {
			return true, s.link(ctx, tx, item, v, nil)
		}

		// either the item was minted concurrently or the code collided
		existing, err := s.mintedFor(ctx, tx, item)
		if err != nil || existing != nil {
			return false, s.link(ctx, tx, item, existing, err)
		}
	}
	return false, ErrVoucherCodeSpace
}

func (s *settler) mintedFor(ctx context.Context, tx shared.Tx, item *order.Item) (*voucher.Voucher, error) {
	v, err := tx.Vouchers().FindBySourceItem(ctx, item.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, repoErr(err, nil)
	}
	return v, nil
}

func (s *settler) link(ctx context.Context, tx shared.Tx, item *order.Item, v *voucher.Voucher, err error) error {
	if err != nil {
		return err
	}
	if err := tx.Orders().LinkVoucher(ctx, item.ID(), v.ID()); err != nil {
		return repoErr(err, nil)
	}
	return domainErr(item.LinkVoucher(v.ID()))
}

type orderNotification struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	Total       int64     `json:"total"`
	Deposit     int64     `json:"deposit"`
}

func (s *settler) enqueue(ctx context.Context, tx shared.Tx, topic string, o *order.Order, now time.Time) error {
	payload, err := json.Marshal(orderNotification{
		OrderID:     o.ID(),
		OrderNumber: o.Number().String(),
		Status:      o.Status().String(),
		Email:       o.Contact().Email,
		FirstName:   o.Contact().FirstName,
		Total:       o.Total().Amount(),
		Deposit:     o.DepositAmount().Amount(),
	})
	if err != nil {
		return errs.Wrap(err, "encode notification payload")
	}
	if err := tx.Notifications().CreateJob(ctx, NotificationKindEmail, topic, payload, now); err != nil {
		return repoErr(err, nil)
	}
	return nil
}
