package response

import (
	"time"

	"activity-booking/internal/domain/hold"
	"activity-booking/internal/usecase/commands"
	"activity-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AvailabilityResponse struct {
	ResourceID      uuid.UUID `json:"resource_id"`
	Kind            string    `json:"kind"`
	Available       bool      `json:"available"`
	AvailablePlaces int       `json:"available_places"`
	TotalPlaces     int       `json:"total_places"`
	ConfirmedCount  int       `json:"confirmed_count"`
	HeldCount       int       `json:"held_count"`
	Reason          string    `json:"reason,omitempty"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	var resp AvailabilityResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

type HoldResponse struct {
	ID           uuid.UUID `json:"id"`
	SessionID    string    `json:"checkout_session_id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceKind string    `json:"resource_kind"`
	Quantity     int       `json:"quantity"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func FromHold(h *hold.Hold) *HoldResponse {
	if h == nil {
		return nil
	}
	return &HoldResponse{
		ID:           h.ID(),
		SessionID:    h.SessionID(),
		ResourceID:   h.ResourceID(),
		ResourceKind: h.Kind().String(),
		Quantity:     h.Quantity(),
		ExpiresAt:    h.ExpiresAt(),
	}
}

type ReleaseHoldResponse struct {
	Released int64 `json:"released"`
}

type SweepResponse struct {
	HoldsRemoved           int64 `json:"holds_removed"`
	IdempotencyKeysRemoved int64 `json:"idempotency_keys_removed"`
}

func FromSweepResult(r *commands.SweepResult) *SweepResponse {
	var resp SweepResponse
	_ = copier.Copy(&resp, r)
	return &resp
}
