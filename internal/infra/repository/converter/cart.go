package converter

import (
	"encoding/json"
	"fmt"

	"activity-booking/internal/domain/cart"
	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/order"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func CartItemToParams(item *cart.Item) (sqlc.CreateCartItemParams, error) {
	participant, err := participantColumn(item.Participant())
	if err != nil {
		return sqlc.CreateCartItemParams{}, err
	}

	params := sqlc.CreateCartItemParams{
		ID:                item.ID(),
		CheckoutSessionID: item.SessionID(),
		ItemType:          item.Type().String(),
		ResourceID:        pgconv.UUIDPtrToPgtype(item.ResourceID()),
		Participant:       participant,
		CreatedAt:         pgconv.TimeToPgtype(item.CreatedAt()),
	}
	if v := item.VoucherPurchase(); v != nil {
		params.VoucherAmountCents = pgtype.Int8{Int64: v.Amount.Amount(), Valid: true}
		params.RecipientName = pgconv.OptionalStringToPgtype(v.RecipientName)
		params.RecipientEmail = pgconv.OptionalStringToPgtype(v.RecipientEmail)
	}
	return params, nil
}

func CartItemFromRow(row sqlc.CartItems) (*cart.Item, error) {
	participant, err := participantFromColumn(row.Participant)
	if err != nil {
		return nil, fmt.Errorf("cart item %s: %w", row.ID, err)
	}
	return cart.ReconstructItem(
		row.ID,
		row.CheckoutSessionID,
		order.ItemType(row.ItemType),
		pgconv.UUIDPtrFromPgtype(row.ResourceID),
		participant,
		voucherPurchaseFromColumns(row.VoucherAmountCents, row.RecipientName, row.RecipientEmail),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func participantColumn(p *order.Participant) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func participantFromColumn(raw []byte) (*order.Participant, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var p order.Participant
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func voucherPurchaseFromColumns(amount pgtype.Int8, name, email pgtype.Text) *order.VoucherPurchase {
	if !amount.Valid {
		return nil
	}
	return &order.VoucherPurchase{
		Amount:         money.Cents(amount.Int64),
		RecipientName:  pgconv.StringFromPgtype(name),
		RecipientEmail: pgconv.StringFromPgtype(email),
	}
}
