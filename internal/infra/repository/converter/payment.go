package converter

import (
	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/payment"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:           p.ID(),
		OrderID:      p.OrderID(),
		IntentID:     pgconv.StringPtrToPgtype(p.IntentID()),
		ClientSecret: p.ClientSecret(),
		Status:       string(p.Status()),
		Method:       string(p.Method()),
		AmountCents:  p.Amount().Amount(),
		Currency:     p.Currency(),
		Note:         pgconv.StringPtrToPgtype(p.Note()),
		CreatedAt:    pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentToUpdateParams(p *payment.Payment) sqlc.UpdatePaymentParams {
	return sqlc.UpdatePaymentParams{
		ID:          p.ID(),
		Status:      string(p.Status()),
		Method:      string(p.Method()),
		AmountCents: p.Amount().Amount(),
		Note:        pgconv.StringPtrToPgtype(p.Note()),
		UpdatedAt:   pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentFromRow(row sqlc.Payments) *payment.Payment {
	return payment.ReconstructPayment(
		row.ID,
		row.OrderID,
		pgconv.StringPtrFromPgtype(row.IntentID),
		row.ClientSecret,
		payment.Status(row.Status),
		payment.Method(row.Method),
		money.Cents(row.AmountCents),
		row.Currency,
		pgconv.StringPtrFromPgtype(row.Note),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
