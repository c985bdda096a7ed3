package readstore

import (
	"context"

	"activity-booking/internal/infra"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"
	"activity-booking/internal/usecase/queries"
)

type VoucherReadQueries interface {
	GetVoucherByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Vouchers, error)
}

type VoucherReadStore struct {
	queries VoucherReadQueries
	db      sqlc.DBTX
}

func NewVoucherReadStore(queries *sqlc.Queries, db sqlc.DBTX) *VoucherReadStore {
	return &VoucherReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherReadStore) FindByCode(ctx context.Context, code string) (*queries.VoucherView, error) {
	row, err := r.queries.GetVoucherByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by code", err)
	}

	return &queries.VoucherView{
		ID:        row.ID,
		Code:      row.Code,
		Original:  row.OriginalCents,
		Remaining: row.RemainingCents,
		IssuedAt:  pgconv.TimeFromPgtype(row.IssuedAt),
	}, nil
}
