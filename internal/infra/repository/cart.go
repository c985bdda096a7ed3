package repository

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/repository/cart_mock.go -package=repositorymock

import (
	"context"

	"activity-booking/internal/domain/cart"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository/converter"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CartWriteQueries interface {
	CreateCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCartItemParams) error
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartItemParams) (pgtype.UUID, error)
	DeleteCartItemsBySession(ctx context.Context, db sqlc.DBTX, checkoutSessionID string) (int64, error)
}

type CartRepository struct {
	queries CartWriteQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartWriteQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CartRepository) Add(ctx context.Context, item *cart.Item) error {
	params, err := converter.CartItemToParams(item)
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart item", err, infra.KindDBFailure)
	}
	if err := r.queries.CreateCartItem(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create cart item", err)
	}
	return nil
}

func (r *CartRepository) Remove(ctx context.Context, sessionID string, itemID uuid.UUID) (*uuid.UUID, error) {
	resourceID, err := r.queries.DeleteCartItem(ctx, r.db, sqlc.DeleteCartItemParams{
		ID:                itemID,
		CheckoutSessionID: sessionID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to delete cart item", err)
	}
	return pgconv.UUIDPtrFromPgtype(resourceID), nil
}

func (r *CartRepository) Clear(ctx context.Context, sessionID string) (int64, error) {
	n, err := r.queries.DeleteCartItemsBySession(ctx, r.db, sessionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear cart", err)
	}
	return n, nil
}
