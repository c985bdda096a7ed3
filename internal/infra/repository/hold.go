package repository

//go:generate mockgen -source=hold.go -destination=../../../tests/mock/repository/hold_mock.go -package=repositorymock

import (
	"context"
	"time"

	"activity-booking/internal/domain/hold"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository/converter"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HoldWriteQueries interface {
	UpsertHold(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertHoldParams) (sqlc.TemporaryHolds, error)
	GetActiveHoldForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActiveHoldForUpdateParams) (sqlc.TemporaryHolds, error)
	UpdateHoldExpiry(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHoldExpiryParams) error
	DeleteHold(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteHoldParams) (int64, error)
	DeleteHoldsBySession(ctx context.Context, db sqlc.DBTX, checkoutSessionID string) (int64, error)
	DeleteExpiredHolds(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
	ExtendSessionHolds(ctx context.Context, db sqlc.DBTX, arg sqlc.ExtendSessionHoldsParams) (int64, error)
}

type HoldRepository struct {
	queries HoldWriteQueries
	db      sqlc.DBTX
}

func NewHoldRepository(queries HoldWriteQueries, db sqlc.DBTX) *HoldRepository {
	return &HoldRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert replaces any existing hold of the same session on the same resource.
func (r *HoldRepository) Upsert(ctx context.Context, h *hold.Hold) (*hold.Hold, error) {
	row, err := r.queries.UpsertHold(ctx, r.db, converter.HoldToUpsertParams(h))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert hold", err)
	}
	return converter.HoldFromRow(row), nil
}

func (r *HoldRepository) LockActive(ctx context.Context, sessionID string, resourceID uuid.UUID, now time.Time) (*hold.Hold, error) {
	row, err := r.queries.GetActiveHoldForUpdate(ctx, r.db, sqlc.GetActiveHoldForUpdateParams{
		CheckoutSessionID: sessionID,
		ResourceID:        resourceID,
		Now:               pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active hold not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock hold", err)
	}
	return converter.HoldFromRow(row), nil
}

func (r *HoldRepository) UpdateExpiry(ctx context.Context, h *hold.Hold) error {
	err := r.queries.UpdateHoldExpiry(ctx, r.db, sqlc.UpdateHoldExpiryParams{
		ID:        h.ID(),
		ExpiresAt: pgconv.TimeToPgtype(h.ExpiresAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update hold expiry", err)
	}
	return nil
}

func (r *HoldRepository) Delete(ctx context.Context, sessionID string, resourceID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteHold(ctx, r.db, sqlc.DeleteHoldParams{
		CheckoutSessionID: sessionID,
		ResourceID:        resourceID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete hold", err)
	}
	return n, nil
}

func (r *HoldRepository) DeleteBySession(ctx context.Context, sessionID string) (int64, error) {
	n, err := r.queries.DeleteHoldsBySession(ctx, r.db, sessionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete session holds", err)
	}
	return n, nil
}

func (r *HoldRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredHolds(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired holds", err)
	}
	return n, nil
}

// ExtendSession pushes every active hold of the session to at least until.
func (r *HoldRepository) ExtendSession(ctx context.Context, sessionID string, until, now time.Time) (int64, error) {
	n, err := r.queries.ExtendSessionHolds(ctx, r.db, sqlc.ExtendSessionHoldsParams{
		CheckoutSessionID: sessionID,
		ExpiresAt:         pgconv.TimeToPgtype(until),
		Now:               pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to extend session holds", err)
	}
	return n, nil
}
