package repository

//go:generate mockgen -source=resource.go -destination=../../../tests/mock/repository/resource_mock.go -package=repositorymock

import (
	"context"
	"time"

	"activity-booking/internal/domain/capacity"
	"activity-booking/internal/domain/resource"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository/converter"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ResourceWriteQueries interface {
	CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) (uuid.UUID, error)
	GetResourceByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	UpdateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateResourceParams) error
	CountBookingsByResource(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) (int64, error)
	SumActiveHoldsByResource(ctx context.Context, db sqlc.DBTX, arg sqlc.SumActiveHoldsByResourceParams) (int64, error)
	SumActiveHoldsByResourceExcludingSession(ctx context.Context, db sqlc.DBTX, arg sqlc.SumActiveHoldsByResourceExcludingSessionParams) (int64, error)
}

type ResourceRepository struct {
	queries ResourceWriteQueries
	db      sqlc.DBTX
}

func NewResourceRepository(queries ResourceWriteQueries, db sqlc.DBTX) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	if _, err := r.queries.CreateResource(ctx, r.db, converter.ResourceToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create resource", err)
	}
	return nil
}

// LockByID takes the row lock that serializes capacity writers on this resource.
func (r *ResourceRepository) LockByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock resource", err)
	}

	res, err := converter.ResourceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert resource row", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ResourceRepository) Update(ctx context.Context, res *resource.Resource) error {
	if err := r.queries.UpdateResource(ctx, r.db, converter.ResourceToUpdateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to update resource", err)
	}
	return nil
}

func (r *ResourceRepository) Counts(ctx context.Context, res *resource.Resource, now time.Time, excludeSession string) (capacity.Counts, error) {
	confirmed, err := r.queries.CountBookingsByResource(ctx, r.db, res.ID())
	if err != nil {
		return capacity.Counts{}, infra.WrapRepoErr("failed to count bookings", err)
	}

	var held int64
	if excludeSession == "" {
		held, err = r.queries.SumActiveHoldsByResource(ctx, r.db, sqlc.SumActiveHoldsByResourceParams{
			ResourceID: res.ID(),
			Now:        pgconv.TimeToPgtype(now),
		})
	} else {
		held, err = r.queries.SumActiveHoldsByResourceExcludingSession(ctx, r.db, sqlc.SumActiveHoldsByResourceExcludingSessionParams{
			ResourceID:        res.ID(),
			Now:               pgconv.TimeToPgtype(now),
			CheckoutSessionID: excludeSession,
		})
	}
	if err != nil {
		return capacity.Counts{}, infra.WrapRepoErr("failed to sum active holds", err)
	}

	return capacity.Counts{
		Total:     res.Capacity(),
		Confirmed: int(confirmed),
		Held:      int(held),
	}, nil
}
