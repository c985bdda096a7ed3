package converter

import (
	"fmt"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/order"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	contact := o.Contact()
	return sqlc.CreateOrderParams{
		ID:                o.ID(),
		OrderNumber:       o.Number().String(),
		Status:            o.Status().String(),
		CheckoutSessionID: o.SessionID(),
		SubtotalCents:     o.Subtotal().Amount(),
		DiscountCents:     o.Discount().Amount(),
		TotalCents:        o.Total().Amount(),
		DepositCents:      o.DepositAmount().Amount(),
		ContactEmail:      contact.Email,
		ContactFirstName:  contact.FirstName,
		ContactLastName:   contact.LastName,
		ContactPhone:      contact.Phone,
		CustomerID:        pgconv.UUIDPtrToPgtype(o.CustomerID()),
		CreatedAt:         pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OrderItemToParams(o *order.Order, position int, item *order.Item) (sqlc.CreateOrderItemParams, error) {
	participant, err := participantColumn(item.Participant())
	if err != nil {
		return sqlc.CreateOrderItemParams{}, err
	}

	params := sqlc.CreateOrderItemParams{
		ID:              item.ID(),
		OrderID:         o.ID(),
		Position:        capacityToInt32(position),
		ItemType:        item.Type().String(),
		Quantity:        capacityToInt32(item.Quantity()),
		UnitPriceCents:  item.UnitPrice().Amount(),
		TotalPriceCents: item.TotalPrice().Amount(),
		DepositCents:    item.Deposit().Amount(),
		ResourceID:      pgconv.UUIDPtrToPgtype(item.ResourceID()),
		Participant:     participant,
		BookingID:       pgconv.UUIDPtrToPgtype(item.BookingID()),
		VoucherID:       pgconv.UUIDPtrToPgtype(item.VoucherID()),
	}
	if v := item.VoucherPurchase(); v != nil {
		params.VoucherAmountCents = pgtype.Int8{Int64: v.Amount.Amount(), Valid: true}
		params.RecipientName = pgconv.OptionalStringToPgtype(v.RecipientName)
		params.RecipientEmail = pgconv.OptionalStringToPgtype(v.RecipientEmail)
	}
	return params, nil
}

func OrderItemFromRow(row sqlc.OrderItems) (*order.Item, error) {
	participant, err := participantFromColumn(row.Participant)
	if err != nil {
		return nil, fmt.Errorf("order item %s: %w", row.ID, err)
	}
	return order.ReconstructItem(
		row.ID,
		order.ItemType(row.ItemType),
		money.Cents(row.UnitPriceCents),
		money.Cents(row.DepositCents),
		pgconv.UUIDPtrFromPgtype(row.ResourceID),
		participant,
		voucherPurchaseFromColumns(row.VoucherAmountCents, row.RecipientName, row.RecipientEmail),
		pgconv.UUIDPtrFromPgtype(row.BookingID),
		pgconv.UUIDPtrFromPgtype(row.VoucherID),
	), nil
}

// OrderFromRows rebuilds an order without its voucher applications.
func OrderFromRows(row sqlc.Orders, itemRows []sqlc.OrderItems) (*order.Order, error) {
	items := make([]*order.Item, 0, len(itemRows))
	for _, ir := range itemRows {
		item, err := OrderItemFromRow(ir)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	contact := order.Contact{
		Email:     row.ContactEmail,
		FirstName: row.ContactFirstName,
		LastName:  row.ContactLastName,
		Phone:     row.ContactPhone,
	}

	return order.ReconstructOrder(
		row.ID,
		order.Number(row.OrderNumber),
		order.Status(row.Status),
		row.CheckoutSessionID,
		money.Cents(row.SubtotalCents),
		money.Cents(row.DiscountCents),
		money.Cents(row.TotalCents),
		money.Cents(row.DepositCents),
		contact,
		pgconv.UUIDPtrFromPgtype(row.CustomerID),
		items,
		nil,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
