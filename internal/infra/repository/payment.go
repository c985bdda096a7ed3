package repository

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/repository/payment_mock.go -package=repositorymock

import (
	"context"

	"activity-booking/internal/domain/payment"
	"activity-booking/internal/infra"
	"activity-booking/internal/infra/repository/converter"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	GetPaymentByIntentIDForUpdate(ctx context.Context, db sqlc.DBTX, intentID pgtype.Text) (sqlc.Payments, error)
	GetPaymentByOrderIDForUpdate(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.Payments, error)
	UpdatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentParams) error
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, r.db, converter.PaymentToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

// LockByIntentID serializes concurrent deliveries of the same processor callback.
func (r *PaymentRepository) LockByIntentID(ctx context.Context, intentID string) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByIntentIDForUpdate(ctx, r.db, pgconv.StringToPgtype(intentID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment intent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment by intent", err)
	}
	return converter.PaymentFromRow(row), nil
}

func (r *PaymentRepository) LockByOrderID(ctx context.Context, orderID uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByOrderIDForUpdate(ctx, r.db, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment by order", err)
	}
	return converter.PaymentFromRow(row), nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	if err := r.queries.UpdatePayment(ctx, r.db, converter.PaymentToUpdateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	return nil
}
