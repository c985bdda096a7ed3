package repository

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/repository/customer_mock.go -package=repositorymock

import (
	"context"

	"activity-booking/internal/domain/customer"
	"activity-booking/internal/infra"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CustomerWriteQueries interface {
	GetCustomerByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Customers, error)
	InsertCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCustomerParams) (uuid.UUID, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) FindOrCreate(ctx context.Context, c *customer.Customer) (uuid.UUID, error) {
	id, err := r.queries.InsertCustomer(ctx, r.db, sqlc.InsertCustomerParams{
		ID:        c.ID(),
		Email:     c.Email(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Phone:     c.Phone(),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	})
	if err == nil {
		return id, nil
	}
	if !pgconv.IsNoRows(err) {
		return uuid.Nil, infra.WrapRepoErr("failed to insert customer", err)
	}

	existing, err := r.queries.GetCustomerByEmail(ctx, r.db, c.Email())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to find customer by email", err)
	}
	return existing.ID, nil
}
