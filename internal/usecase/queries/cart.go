package queries

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/queries/cart_mock.go -package=queriesmock

import (
	"context"
	"time"

	"activity-booking/internal/domain/hold"
	"activity-booking/internal/pkg/clock"
	"activity-booking/internal/pkg/errs"
)

type CartReadStore interface {
	FindItems(ctx context.Context, sessionID string) ([]*CartItemView, error)
	FindActiveHolds(ctx context.Context, sessionID string, now time.Time) ([]*HoldView, error)
}

type CartQueries interface {
	Get(ctx context.Context, sessionID string) (*CartView, error)
}

type cartQueriesImpl struct {
	store CartReadStore
	clock clock.Clock
}

func NewCartQueries(store CartReadStore, clk clock.Clock) CartQueries {
	return &cartQueriesImpl{store: store, clock: clk}
}

func (q *cartQueriesImpl) Get(ctx context.Context, sessionID string) (*CartView, error) {
	sessionID, err := hold.NormalizeSessionID(sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	items, err := q.store.FindItems(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	holds, err := q.store.FindActiveHolds(ctx, sessionID, q.clock.Now())
	if err != nil {
		return nil, err
	}
	return &CartView{SessionID: sessionID, Items: items, Holds: holds}, nil
}
