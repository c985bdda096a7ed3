package queries

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/queries/voucher_mock.go -package=queriesmock

import (
	"context"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/voucher"
	"activity-booking/internal/infra"
	"activity-booking/internal/pkg/clock"
)

type VoucherReadStore interface {
	FindByCode(ctx context.Context, code string) (*VoucherView, error)
}

type VoucherQueries interface {
	Validate(ctx context.Context, rawCode string) (*VoucherValidationView, error)
}

type voucherQueriesImpl struct {
	store VoucherReadStore
	clock clock.Clock
}

func NewVoucherQueries(store VoucherReadStore, clk clock.Clock) VoucherQueries {
	return &voucherQueriesImpl{store: store, clock: clk}
}

// Validate never mutates the balance. An unknown or blank code is reported as invalid.
func (q *voucherQueriesImpl) Validate(ctx context.Context, rawCode string) (*VoucherValidationView, error) {
	code, err := voucher.NormalizeCode(rawCode)
	if err != nil {
		return &VoucherValidationView{Code: rawCode, Reason: voucher.ReasonUnknownCode}, nil
	}

	row, err := q.store.FindByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &VoucherValidationView{Code: code.String(), Reason: voucher.ReasonUnknownCode}, nil
		}
		return nil, err
	}

	v := voucher.Reconstruct(
		row.ID,
		code,
		money.Cents(row.Original),
		money.Cents(row.Remaining),
		row.IssuedAt,
		row.Remaining == 0,
		nil,
		nil,
		voucher.Recipient{},
	)
	result := v.Validate(q.clock.Now())
	expiresAt := result.ExpiresAt
	return &VoucherValidationView{
		Code:      code.String(),
		Valid:     result.Valid,
		Reason:    result.Reason,
		Remaining: result.Remaining.Amount(),
		ExpiresAt: &expiresAt,
	}, nil
}
