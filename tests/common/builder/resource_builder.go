//go:build unit || e2e

package builder

import (
	"time"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/resource"
	sqlc "activity-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceBuilder struct {
	ID             uuid.UUID
	Kind           resource.Kind
	Title          string
	StartsAt       time.Time
	Capacity       int
	FullPriceCents int64
	DepositCents   int64
	CreatedAt      time.Time
}

// NewResourceBuilder defaults to a six-seat multi-day session.
func NewResourceBuilder() *ResourceBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &ResourceBuilder{
		ID:             uuid.New(),
		Kind:           resource.KindMultiDaySession,
		Title:          "Stage initiation",
		StartsAt:       now.Add(14 * 24 * time.Hour),
		Capacity:       6,
		FullPriceCents: 69000,
		DepositCents:   15000,
		CreatedAt:      now,
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

func (b *ResourceBuilder) AsSingleSlot() *ResourceBuilder {
	b.Kind = resource.KindSingleSlot
	b.Title = "Tandem AVENTURE"
	b.FullPriceCents = 11000
	b.DepositCents = 0
	return b
}

func (b *ResourceBuilder) variant() resource.Variant {
	if b.Kind == resource.KindSingleSlot {
		return resource.SingleSlot{}
	}
	return resource.NewMultiDaySession(money.Cents(b.DepositCents))
}

func (b *ResourceBuilder) BuildDomain() *resource.Resource {
	return resource.ReconstructResource(
		b.ID,
		b.variant(),
		b.Title,
		b.StartsAt,
		b.Capacity,
		money.Cents(b.FullPriceCents),
		b.CreatedAt,
		b.CreatedAt,
	)
}

func (b *ResourceBuilder) BuildInfra() sqlc.Resources {
	row := sqlc.Resources{
		ID:             b.ID,
		Kind:           b.Kind.String(),
		Title:          b.Title,
		StartsAt:       pgtype.Timestamptz{Time: b.StartsAt, Valid: true},
		Capacity:       int32(b.Capacity),
		FullPriceCents: b.FullPriceCents,
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.Kind == resource.KindMultiDaySession {
		row.DepositPriceCents = pgtype.Int8{Int64: b.DepositCents, Valid: true}
	}
	return row
}
