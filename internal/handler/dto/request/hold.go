package request

import (
	"time"

	"activity-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateHoldRequest struct {
	SessionID    string    `json:"checkout_session_id" binding:"required,max=255"`
	ResourceKind string    `json:"resource_kind" binding:"required"`
	ResourceID   uuid.UUID `json:"resource_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"required,min=1"`
	// TTLSeconds overrides the default hold lifetime. 0 is accepted and yields an expired hold.
	TTLSeconds *int `json:"ttl_seconds,omitempty" binding:"omitempty,min=0,max=86400"`
}

func (r CreateHoldRequest) ToCommand() commands.CreateHoldRequest {
	return commands.CreateHoldRequest{
		SessionID:    r.SessionID,
		ResourceKind: r.ResourceKind,
		ResourceID:   r.ResourceID,
		Quantity:     r.Quantity,
		TTL:          seconds(r.TTLSeconds),
	}
}

type ReleaseHoldRequest struct {
	SessionID    string     `json:"checkout_session_id" binding:"required,max=255"`
	ResourceKind *string    `json:"resource_kind,omitempty"`
	ResourceID   *uuid.UUID `json:"resource_id,omitempty"`
}

func (r ReleaseHoldRequest) ToCommand() commands.ReleaseHoldRequest {
	return commands.ReleaseHoldRequest{
		SessionID:    r.SessionID,
		ResourceKind: r.ResourceKind,
		ResourceID:   r.ResourceID,
	}
}

type ExtendHoldRequest struct {
	SessionID        string    `json:"checkout_session_id" binding:"required,max=255"`
	ResourceKind     string    `json:"resource_kind" binding:"required"`
	ResourceID       uuid.UUID `json:"resource_id" binding:"required"`
	ExtensionSeconds *int      `json:"extension_seconds,omitempty" binding:"omitempty,min=1,max=86400"`
}

func (r ExtendHoldRequest) ToCommand() commands.ExtendHoldRequest {
	return commands.ExtendHoldRequest{
		SessionID:    r.SessionID,
		ResourceKind: r.ResourceKind,
		ResourceID:   r.ResourceID,
		Extension:    seconds(r.ExtensionSeconds),
	}
}

func seconds(v *int) *time.Duration {
	if v == nil {
		return nil
	}
	d := time.Duration(*v) * time.Second
	return &d
}
