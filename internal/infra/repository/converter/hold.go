package converter

import (
	"activity-booking/internal/domain/hold"
	"activity-booking/internal/domain/resource"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"
)

func HoldToUpsertParams(h *hold.Hold) sqlc.UpsertHoldParams {
	return sqlc.UpsertHoldParams{
		ID:                h.ID(),
		CheckoutSessionID: h.SessionID(),
		ResourceID:        h.ResourceID(),
		ResourceKind:      h.Kind().String(),
		Quantity:          capacityToInt32(h.Quantity()),
		ExpiresAt:         pgconv.TimeToPgtype(h.ExpiresAt()),
		CreatedAt:         pgconv.TimeToPgtype(h.CreatedAt()),
	}
}

func HoldFromRow(row sqlc.TemporaryHolds) *hold.Hold {
	return hold.ReconstructHold(
		row.ID,
		row.CheckoutSessionID,
		row.ResourceID,
		resource.Kind(row.ResourceKind),
		int(row.Quantity),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
