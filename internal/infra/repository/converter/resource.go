package converter

import (
	"fmt"
	"math"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/resource"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ResourceToCreateParams(r *resource.Resource) sqlc.CreateResourceParams {
	return sqlc.CreateResourceParams{
		ID:                r.ID(),
		Kind:              r.Kind().String(),
		Title:             r.Title(),
		StartsAt:          pgconv.TimeToPgtype(r.StartsAt()),
		Capacity:          capacityToInt32(r.Capacity()),
		FullPriceCents:    r.FullPrice().Amount(),
		DepositPriceCents: depositColumn(r.Variant()),
		CreatedAt:         pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ResourceToUpdateParams(r *resource.Resource) sqlc.UpdateResourceParams {
	return sqlc.UpdateResourceParams{
		ID:                r.ID(),
		Title:             r.Title(),
		Capacity:          capacityToInt32(r.Capacity()),
		FullPriceCents:    r.FullPrice().Amount(),
		DepositPriceCents: depositColumn(r.Variant()),
		UpdatedAt:         pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ResourceFromRow(row sqlc.Resources) (*resource.Resource, error) {
	kind, err := resource.ParseKind(row.Kind)
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", row.ID, err)
	}
	variant, err := resource.NewVariant(kind, pgconv.Int8PtrFromPgtype(row.DepositPriceCents))
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", row.ID, err)
	}
	return resource.ReconstructResource(
		row.ID,
		variant,
		row.Title,
		pgconv.TimeFromPgtype(row.StartsAt),
		int(row.Capacity),
		money.Cents(row.FullPriceCents),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// single slots store no deposit; theirs is the full price
func depositColumn(v resource.Variant) pgtype.Int8 {
	if m, ok := v.(resource.MultiDaySession); ok {
		return pgtype.Int8{Int64: m.DepositPrice().Amount(), Valid: true}
	}
	return pgtype.Int8{Valid: false}
}

func capacityToInt32(n int) int32 {
	if n > math.MaxInt32 || n < 0 {
		panic(fmt.Sprintf("capacity out of int32 range: %d", n))
	}
	return int32(n)
}
