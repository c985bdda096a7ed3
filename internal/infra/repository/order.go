package repository

//go:generate mockgen -source=order.go -destination=../../../tests/mock/repository/order_mock.go -package=repositorymock

import (
	"context"
	"time"

	"activity-booking/internal/domain/order"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository/converter"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// at most one PENDING order per checkout session
const pendingSessionConstraint = "orders_pending_session_key"

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error
	GetOrderByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderItemsByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) error
	LinkOrderItemBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.LinkOrderItemBookingParams) error
	LinkOrderItemVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.LinkOrderItemVoucherParams) error
	ListExpiredPendingOrderIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiredPendingOrderIDsParams) ([]uuid.UUID, error)
	GetPendingOrderIDBySession(ctx context.Context, db sqlc.DBTX, checkoutSessionID string) (uuid.UUID, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

// Create persists the order and its items in position order. Only a second PENDING
// order for the session is reported as KindDuplicateKey.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, r.db, converter.OrderToCreateParams(o)); err != nil {
		if infra.ConstraintName(err) == pendingSessionConstraint {
			return infra.WrapRepoErr("checkout session already has a pending order", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create order", err, infra.KindDBFailure)
	}

	for i, item := range o.Items() {
		params, err := converter.OrderItemToParams(o, i, item)
		if err != nil {
			return infra.WrapRepoErr("failed to encode order item", err, infra.KindDBFailure)
		}
		if err := r.queries.CreateOrderItem(ctx, r.db, params); err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}

func (r *OrderRepository) LockByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}

	items, err := r.queries.ListOrderItemsByOrder(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	o, err := converter.OrderFromRows(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert order rows", err, infra.KindDBFailure)
	}
	return o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	err := r.queries.UpdateOrderStatus(ctx, r.db, sqlc.UpdateOrderStatusParams{
		ID:         o.ID(),
		Status:     o.Status().String(),
		CustomerID: pgconv.UUIDPtrToPgtype(o.CustomerID()),
		UpdatedAt:  pgconv.TimeToPgtype(o.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	return nil
}

func (r *OrderRepository) LinkBooking(ctx context.Context, itemID, bookingID uuid.UUID) error {
	err := r.queries.LinkOrderItemBooking(ctx, r.db, sqlc.LinkOrderItemBookingParams{
		ID:        itemID,
		BookingID: pgconv.UUIDToPgtype(bookingID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to link booking to order item", err)
	}
	return nil
}

func (r *OrderRepository) LinkVoucher(ctx context.Context, itemID, voucherID uuid.UUID) error {
	err := r.queries.LinkOrderItemVoucher(ctx, r.db, sqlc.LinkOrderItemVoucherParams{
		ID:        itemID,
		VoucherID: pgconv.UUIDToPgtype(voucherID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to link voucher to order item", err)
	}
	return nil
}

func (r *OrderRepository) ListExpiredPendingIDs(ctx context.Context, createdBefore time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListExpiredPendingOrderIDs(ctx, r.db, sqlc.ListExpiredPendingOrderIDsParams{
		CreatedBefore: pgconv.TimeToPgtype(createdBefore),
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired pending orders", err)
	}
	return ids, nil
}

// PendingIDBySession returns the PENDING order of the session, or nil when there is none.
func (r *OrderRepository) PendingIDBySession(ctx context.Context, sessionID string) (*uuid.UUID, error) {
	id, err := r.queries.GetPendingOrderIDBySession(ctx, r.db, sessionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find pending order", err)
	}
	return &id, nil
}
