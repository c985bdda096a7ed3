package repository

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking_mock.go -package=repositorymock

import (
	"context"

	"activity-booking/internal/domain/booking"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository/converter"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingParams) (uuid.UUID, error)
	GetBookingIDByOrderItem(ctx context.Context, db sqlc.DBTX, orderItemID uuid.UUID) (uuid.UUID, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Insert relies on the order_item_id unique key: a replay reads back the existing id.
func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) (uuid.UUID, bool, error) {
	params, err := converter.BookingToInsertParams(b)
	if err != nil {
		return uuid.Nil, false, infra.WrapRepoErr("failed to encode booking", err, infra.KindDBFailure)
	}

	id, err := r.queries.InsertBooking(ctx, r.db, params)
	if err == nil {
		return id, true, nil
	}
	if !pgconv.IsNoRows(err) {
		return uuid.Nil, false, infra.WrapRepoErr("failed to insert booking", err)
	}

	existing, err := r.queries.GetBookingIDByOrderItem(ctx, r.db, b.OrderItemID())
	if err != nil {
		return uuid.Nil, false, infra.WrapRepoErr("failed to read back booking", err)
	}
	return existing, false, nil
}
