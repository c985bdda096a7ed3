package converter

import (
	"encoding/json"

	"activity-booking/internal/domain/booking"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"
)

func BookingToInsertParams(b *booking.Booking) (sqlc.InsertBookingParams, error) {
	participant, err := json.Marshal(b.Participant())
	if err != nil {
		return sqlc.InsertBookingParams{}, err
	}
	return sqlc.InsertBookingParams{
		ID:          b.ID(),
		ResourceID:  b.ResourceID(),
		CustomerID:  b.CustomerID(),
		OrderID:     b.OrderID(),
		OrderItemID: b.OrderItemID(),
		Participant: participant,
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
	}, nil
}
