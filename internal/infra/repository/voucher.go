package repository

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/repository/voucher_mock.go -package=repositorymock

import (
	"context"
	"time"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/voucher"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository/converter"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"
	"activity-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VoucherWriteQueries interface {
	GetVoucherByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Vouchers, error)
	GetVoucherByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vouchers, error)
	GetVoucherBySourceOrderItem(ctx context.Context, db sqlc.DBTX, sourceOrderItemID pgtype.UUID) (sqlc.Vouchers, error)
	InsertVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertVoucherParams) (uuid.UUID, error)
	UpdateVoucherBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVoucherBalanceParams) error
	CreateVoucherApplication(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVoucherApplicationParams) error
	ListOpenApplicationsByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.VoucherApplications, error)
	MarkApplicationRestored(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkApplicationRestoredParams) error
}

type VoucherRepository struct {
	queries VoucherWriteQueries
	db      sqlc.DBTX
}

func NewVoucherRepository(queries VoucherWriteQueries, db sqlc.DBTX) *VoucherRepository {
	return &VoucherRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherRepository) LockByCode(ctx context.Context, code voucher.Code) (*voucher.Voucher, error) {
	row, err := r.queries.GetVoucherByCodeForUpdate(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock voucher by code", err)
	}
	return converter.VoucherFromRow(row), nil
}

func (r *VoucherRepository) LockByID(ctx context.Context, id uuid.UUID) (*voucher.Voucher, error) {
	row, err := r.queries.GetVoucherByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock voucher", err)
	}
	return converter.VoucherFromRow(row), nil
}

func (r *VoucherRepository) FindBySourceItem(ctx context.Context, orderItemID uuid.UUID) (*voucher.Voucher, error) {
	row, err := r.queries.GetVoucherBySourceOrderItem(ctx, r.db, pgconv.UUIDToPgtype(orderItemID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher for order item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by order item", err)
	}
	return converter.VoucherFromRow(row), nil
}

// Insert is ON CONFLICT DO NOTHING; false means either the code or the source item was taken.
func (r *VoucherRepository) Insert(ctx context.Context, v *voucher.Voucher) (bool, error) {
	_, err := r.queries.InsertVoucher(ctx, r.db, converter.VoucherToInsertParams(v))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert voucher", err)
	}
	return true, nil
}

func (r *VoucherRepository) SaveBalance(ctx context.Context, v *voucher.Voucher, now time.Time) error {
	err := r.queries.UpdateVoucherBalance(ctx, r.db, sqlc.UpdateVoucherBalanceParams{
		ID:             v.ID(),
		RemainingCents: v.Remaining().Amount(),
		IsUsed:         v.IsUsed(),
		LastOrderID:    pgconv.UUIDPtrToPgtype(v.LastOrderID()),
		UpdatedAt:      pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update voucher balance", err)
	}
	return nil
}

func (r *VoucherRepository) CreateApplications(ctx context.Context, orderID uuid.UUID, apps []voucher.Application, now time.Time) error {
	for _, app := range apps {
		err := r.queries.CreateVoucherApplication(ctx, r.db, sqlc.CreateVoucherApplicationParams{
			ID:        uuid.New(),
			OrderID:   orderID,
			VoucherID: app.VoucherID,
			UsedCents: app.UsedAmount.Amount(),
			CreatedAt: pgconv.TimeToPgtype(now),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create voucher application", err)
		}
	}
	return nil
}

func (r *VoucherRepository) ListOpenApplications(ctx context.Context, orderID uuid.UUID) ([]shared.AppliedVoucher, error) {
	rows, err := r.queries.ListOpenApplicationsByOrder(ctx, r.db, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list voucher applications", err)
	}

	result := make([]shared.AppliedVoucher, len(rows))
	for i, row := range rows {
		result[i] = shared.AppliedVoucher{
			ID:        row.ID,
			VoucherID: row.VoucherID,
			Used:      money.Cents(row.UsedCents),
		}
	}
	return result, nil
}

func (r *VoucherRepository) MarkRestored(ctx context.Context, applicationID uuid.UUID, now time.Time) error {
	err := r.queries.MarkApplicationRestored(ctx, r.db, sqlc.MarkApplicationRestoredParams{
		ID:         applicationID,
		RestoredAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark voucher application restored", err)
	}
	return nil
}
