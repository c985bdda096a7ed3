package request

import (
	"time"

	"activity-booking/internal/usecase/commands"
)

type CreateResourceRequest struct {
	Kind           string    `json:"kind" binding:"required"`
	Title          string    `json:"title" binding:"required"`
	StartsAt       time.Time `json:"starts_at" binding:"required"`
	Capacity       int       `json:"capacity" binding:"required,min=1"`
	FullPriceCents int64     `json:"full_price_cents" binding:"min=0"`
	DepositCents   *int64    `json:"deposit_cents,omitempty" binding:"omitempty,min=0"`
}

func (r CreateResourceRequest) ToCommand() commands.CreateResourceRequest {
	return commands.CreateResourceRequest{
		Kind:           r.Kind,
		Title:          r.Title,
		StartsAt:       r.StartsAt,
		Capacity:       r.Capacity,
		FullPriceCents: r.FullPriceCents,
		DepositCents:   r.DepositCents,
	}
}

// UpdateResourceRequest is a partial update; absent fields are left untouched.
type UpdateResourceRequest struct {
	Title          *string `json:"title,omitempty"`
	Capacity       *int    `json:"capacity,omitempty" binding:"omitempty,min=1"`
	FullPriceCents *int64  `json:"full_price_cents,omitempty" binding:"omitempty,min=0"`
	DepositCents   *int64  `json:"deposit_cents,omitempty" binding:"omitempty,min=0"`
}

func (r UpdateResourceRequest) ToCommand() commands.UpdateResourceRequest {
	return commands.UpdateResourceRequest{
		Title:          r.Title,
		Capacity:       r.Capacity,
		FullPriceCents: r.FullPriceCents,
		DepositCents:   r.DepositCents,
	}
}
