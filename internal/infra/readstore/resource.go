package readstore

import (
	"context"
	"time"

	"activity-booking/internal/domain/resource"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository/converter"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"
	"activity-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceReadQueries interface {
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	CountBookingsByResource(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) (int64, error)
	SumActiveHoldsByResource(ctx context.Context, db sqlc.DBTX, arg sqlc.SumActiveHoldsByResourceParams) (int64, error)
}

// ResourceReadStore runs on whatever DBTX it is handed, so command reads can use it
// inside a transaction.
type ResourceReadStore struct {
	queries ResourceReadQueries
}

func NewResourceReadStore(queries ResourceReadQueries) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
	}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	res, err := converter.ResourceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert resource row", err, infra.KindDBFailure)
	}
	return res, nil
}

// FindCapacity reads the row and both counters without locking anything.
func (r *ResourceReadStore) FindCapacity(ctx context.Context, db sqlc.DBTX, id uuid.UUID, now time.Time) (*queries.ResourceCapacityRow, error) {
	row, err := r.queries.GetResourceByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	confirmed, err := r.queries.CountBookingsByResource(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}
	held, err := r.queries.SumActiveHoldsByResource(ctx, db, sqlc.SumActiveHoldsByResourceParams{
		ResourceID: id,
		Now:        pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum active holds", err)
	}

	return &queries.ResourceCapacityRow{
		ID:        row.ID,
		Kind:      row.Kind,
		Title:     row.Title,
		Total:     int(row.Capacity),
		Confirmed: int(confirmed),
		Held:      int(held),
	}, nil
}

// AvailabilityReadStore binds ResourceReadStore to the pool for the query side.
type AvailabilityReadStore struct {
	resources *ResourceReadStore
	db        sqlc.DBTX
}

func NewAvailabilityReadStore(queries *sqlc.Queries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		resources: NewResourceReadStore(queries),
		db:        db,
	}
}

func (s *AvailabilityReadStore) FindCapacity(ctx context.Context, id uuid.UUID, now time.Time) (*queries.ResourceCapacityRow, error) {
	return s.resources.FindCapacity(ctx, s.db, id, now)
}
