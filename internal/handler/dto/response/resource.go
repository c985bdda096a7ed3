package response

import (
	"time"

	"activity-booking/internal/domain/resource"

	"github.com/google/uuid"
)

type ResourceResponse struct {
	ID             uuid.UUID `json:"id"`
	Kind           string    `json:"kind"`
	Title          string    `json:"title"`
	StartsAt       time.Time `json:"starts_at"`
	Capacity       int       `json:"capacity"`
	FullPriceCents int64     `json:"full_price_cents"`
	DepositCents   int64     `json:"deposit_cents"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromResource(r *resource.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:             r.ID(),
		Kind:           r.Kind().String(),
		Title:          r.Title(),
		StartsAt:       r.StartsAt(),
		Capacity:       r.Capacity(),
		FullPriceCents: r.FullPrice().Amount(),
		DepositCents:   r.DepositPrice().Amount(),
		UpdatedAt:      r.UpdatedAt(),
	}
}
