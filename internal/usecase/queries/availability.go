package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

import (
	"context"
	"time"

	"activity-booking/internal/domain/capacity"
	"activity-booking/internal/domain/resource"
	"activity-booking/internal/infra"
	"activity-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type AvailabilityReadStore interface {
	FindCapacity(ctx context.Context, id uuid.UUID, now time.Time) (*ResourceCapacityRow, error)
}

type AvailabilityQueries interface {
	Check(ctx context.Context, rawKind string, resourceID uuid.UUID, quantity int) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(store AvailabilityReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, clock: clk}
}

// Check takes no locks. Only infrastructure failures are returned as errors.
func (q *availabilityQueriesImpl) Check(ctx context.Context, rawKind string, resourceID uuid.UUID, quantity int) (*AvailabilityView, error) {
	if quantity < 1 {
		quantity = 1
	}
	view := &AvailabilityView{ResourceID: resourceID, Kind: rawKind}

	kind, err := resource.ParseKind(rawKind)
	if err != nil {
		return fromSnapshot(view, capacity.Unavailable(capacity.ReasonInvalidType, quantity)), nil
	}
	view.Kind = kind.String()

	row, err := q.store.FindCapacity(ctx, resourceID, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return fromSnapshot(view, capacity.Unavailable(kind.NotFoundReason(), quantity)), nil
		}
		return nil, err
	}
	// a resource reached through the wrong route tag does not exist for that kind
	if row.Kind != kind.String() {
		return fromSnapshot(view, capacity.Unavailable(kind.NotFoundReason(), quantity)), nil
	}

	snap := capacity.Evaluate(capacity.Counts{
		Total:     row.Total,
		Confirmed: row.Confirmed,
		Held:      row.Held,
	}, quantity)
	return fromSnapshot(view, snap), nil
}

func fromSnapshot(view *AvailabilityView, s capacity.Snapshot) *AvailabilityView {
	view.Available = s.Available
	view.AvailablePlaces = s.AvailablePlaces
	view.TotalPlaces = s.TotalPlaces
	view.ConfirmedCount = s.ConfirmedCount
	view.HeldCount = s.HeldCount
	view.Reason = s.Reason
	return view
}
