package readstore

import (
	"context"

	"activity-booking/internal/domain/order"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository/converter"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"
	"activity-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderViewQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderItemsByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	ListApplicationsWithCodeByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.ListApplicationsWithCodeByOrderRow, error)
	GetPaymentByOrderID(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.Payments, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries *sqlc.Queries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID assembles the order with its items, voucher applications and payment.
// An order without a payment row yet is returned with Payment nil.
func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	itemRows, err := r.queries.ListOrderItemsByOrder(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	apps, err := r.queries.ListApplicationsWithCodeByOrder(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list voucher applications", err)
	}

	view := rowToOrderView(row)
	view.Items = make([]*queries.OrderItemView, 0, len(itemRows))
	for _, ir := range itemRows {
		item, err := converter.OrderItemFromRow(ir)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert order item row", err, infra.KindDBFailure)
		}
		view.Items = append(view.Items, toOrderItemView(item))
	}
	view.Vouchers = make([]*queries.AppliedVoucherView, len(apps))
	for i, a := range apps {
		view.Vouchers[i] = &queries.AppliedVoucherView{
			VoucherID: a.VoucherID,
			Code:      a.Code,
			Used:      a.UsedCents,
			Restored:  a.RestoredAt.Valid,
		}
	}

	p, err := r.queries.GetPaymentByOrderID(ctx, r.db, id)
	switch {
	case err == nil:
		view.Payment = rowToPaymentView(p)
	case pgconv.IsNoRows(err):
	default:
		return nil, infra.WrapRepoErr("failed to find payment for order", err)
	}

	return view, nil
}

func rowToOrderView(row sqlc.Orders) *queries.OrderView {
	return &queries.OrderView{
		ID:                row.ID,
		OrderNumber:       row.OrderNumber,
		Status:            row.Status,
		CheckoutSessionID: row.CheckoutSessionID,
		Subtotal:          row.SubtotalCents,
		Discount:          row.DiscountCents,
		Total:             row.TotalCents,
		Deposit:           row.DepositCents,
		ContactEmail:      row.ContactEmail,
		ContactFirstName:  row.ContactFirstName,
		ContactLastName:   row.ContactLastName,
		ContactPhone:      row.ContactPhone,
		CustomerID:        pgconv.UUIDPtrFromPgtype(row.CustomerID),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toOrderItemView(item *order.Item) *queries.OrderItemView {
	view := &queries.OrderItemView{
		ID:          item.ID(),
		Type:        item.Type().String(),
		Quantity:    item.Quantity(),
		UnitPrice:   item.UnitPrice().Amount(),
		TotalPrice:  item.TotalPrice().Amount(),
		Deposit:     item.Deposit().Amount(),
		ResourceID:  item.ResourceID(),
		Participant: toParticipantView(item.Participant()),
		BookingID:   item.BookingID(),
		VoucherID:   item.VoucherID(),
	}
	if v := item.VoucherPurchase(); v != nil {
		view.RecipientName = &v.RecipientName
		view.RecipientEmail = &v.RecipientEmail
	}
	return view
}

func toParticipantView(p *order.Participant) *queries.ParticipantView {
	if p == nil {
		return nil
	}
	return &queries.ParticipantView{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		WeightKg:  p.WeightKg,
		HeightCm:  p.HeightCm,
		BirthDate: p.BirthDate,
	}
}

func rowToPaymentView(row sqlc.Payments) *queries.PaymentView {
	return &queries.PaymentView{
		IntentID:     pgconv.StringPtrFromPgtype(row.IntentID),
		ClientSecret: row.ClientSecret,
		Status:       row.Status,
		Method:       row.Method,
		Amount:       row.AmountCents,
		Currency:     row.Currency,
		Note:         pgconv.StringPtrFromPgtype(row.Note),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
