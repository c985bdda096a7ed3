package readstore

import (
	"context"
	"time"

	"activity-booking/internal/domain/cart"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository/converter"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"
	"activity-booking/internal/usecase/queries"
)

type CartReadQueries interface {
	ListCartItemsBySession(ctx context.Context, db sqlc.DBTX, checkoutSessionID string) ([]sqlc.CartItems, error)
	ListActiveHoldsBySession(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveHoldsBySessionParams) ([]sqlc.TemporaryHolds, error)
}

type CartReadStore struct {
	queries CartReadQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries *sqlc.Queries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *CartReadStore) FindItems(ctx context.Context, sessionID string) ([]*queries.CartItemView, error) {
	items, err := ListCartItems(ctx, s.queries, s.db, sessionID)
	if err != nil {
		return nil, err
	}

	result := make([]*queries.CartItemView, len(items))
	for i, item := range items {
		view := &queries.CartItemView{
			ID:          item.ID(),
			Type:        item.Type().String(),
			ResourceID:  item.ResourceID(),
			Participant: toParticipantView(item.Participant()),
			CreatedAt:   item.CreatedAt(),
		}
		if v := item.VoucherPurchase(); v != nil {
			amount := v.Amount.Amount()
			view.VoucherAmount = &amount
			view.RecipientName = &v.RecipientName
			view.RecipientEmail = &v.RecipientEmail
		}
		result[i] = view
	}
	return result, nil
}

func (s *CartReadStore) FindActiveHolds(ctx context.Context, sessionID string, now time.Time) ([]*queries.HoldView, error) {
	rows, err := s.queries.ListActiveHoldsBySession(ctx, s.db, sqlc.ListActiveHoldsBySessionParams{
		CheckoutSessionID: sessionID,
		Now:               pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active holds", err)
	}

	result := make([]*queries.HoldView, len(rows))
	for i, row := range rows {
		result[i] = &queries.HoldView{
			ResourceID:   row.ResourceID,
			ResourceKind: row.ResourceKind,
			Quantity:     int(row.Quantity),
			ExpiresAt:    pgconv.TimeFromPgtype(row.ExpiresAt),
		}
	}
	return result, nil
}

type CartItemsQueries interface {
	ListCartItemsBySession(ctx context.Context, db sqlc.DBTX, checkoutSessionID string) ([]sqlc.CartItems, error)
}

// ListCartItems is shared by the cart view and the command-side reads.
func ListCartItems(ctx context.Context, q CartItemsQueries, db sqlc.DBTX, sessionID string) ([]*cart.Item, error) {
	rows, err := q.ListCartItemsBySession(ctx, db, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}

	items := make([]*cart.Item, 0, len(rows))
	for _, row := range rows {
		item, err := converter.CartItemFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert cart item row", err, infra.KindDBFailure)
		}
		items = append(items, item)
	}
	return items, nil
}
