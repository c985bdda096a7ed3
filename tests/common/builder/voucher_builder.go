//go:build unit || e2e

package builder

import (
	"time"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/voucher"
	sqlc "activity-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VoucherBuilder struct {
	ID             uuid.UUID
	Code           string
	OriginalCents  int64
	RemainingCents int64
	IssuedAt       time.Time
	RecipientName  string
	RecipientEmail string
}

func NewVoucherBuilder() *VoucherBuilder {
	return &VoucherBuilder{
		ID:             uuid.New(),
		Code:           "SCP-TEST-" + uuid.NewString()[:4],
		OriginalCents:  20000,
		RemainingCents: 20000,
		IssuedAt:       time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Second),
		RecipientName:  "Camille Martin",
		RecipientEmail: "camille@example.com",
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

func (b *VoucherBuilder) BuildDomain() *voucher.Voucher {
	return voucher.Reconstruct(
		b.ID,
		voucher.Code(b.Code),
		money.Cents(b.OriginalCents),
		money.Cents(b.RemainingCents),
		b.IssuedAt,
		b.RemainingCents == 0,
		nil,
		nil,
		voucher.Recipient{Name: b.RecipientName, Email: b.RecipientEmail},
	)
}

func (b *VoucherBuilder) BuildInfra() sqlc.Vouchers {
	return sqlc.Vouchers{
		ID:             b.ID,
		Code:           b.Code,
		OriginalCents:  b.OriginalCents,
		RemainingCents: b.RemainingCents,
		IssuedAt:       pgtype.Timestamptz{Time: b.IssuedAt, Valid: true},
		IsUsed:         b.RemainingCents == 0,
		RecipientName:  b.RecipientName,
		RecipientEmail: b.RecipientEmail,
		CreatedAt:      pgtype.Timestamptz{Time: b.IssuedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.IssuedAt, Valid: true},
	}
}
