package converter

import (
	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/voucher"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"
)

func VoucherToInsertParams(v *voucher.Voucher) sqlc.InsertVoucherParams {
	recipient := v.Recipient()
	return sqlc.InsertVoucherParams{
		ID:                v.ID(),
		Code:              v.Code().String(),
		OriginalCents:     v.OriginalAmount().Amount(),
		RemainingCents:    v.Remaining().Amount(),
		IssuedAt:          pgconv.TimeToPgtype(v.IssuedAt()),
		SourceOrderItemID: pgconv.UUIDPtrToPgtype(v.SourceOrderItemID()),
		RecipientName:     recipient.Name,
		RecipientEmail:    recipient.Email,
	}
}

func VoucherFromRow(row sqlc.Vouchers) *voucher.Voucher {
	return voucher.Reconstruct(
		row.ID,
		voucher.Code(row.Code),
		money.Cents(row.OriginalCents),
		money.Cents(row.RemainingCents),
		pgconv.TimeFromPgtype(row.IssuedAt),
		row.IsUsed,
		pgconv.UUIDPtrFromPgtype(row.LastOrderID),
		pgconv.UUIDPtrFromPgtype(row.SourceOrderItemID),
		voucher.Recipient{Name: row.RecipientName, Email: row.RecipientEmail},
	)
}
