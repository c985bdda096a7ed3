package request

import (
	"time"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/order"
	"activity-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type ParticipantRequest struct {
	FirstName string     `json:"first_name" binding:"required"`
	LastName  string     `json:"last_name" binding:"required"`
	Email     string     `json:"email" binding:"required"`
	Phone     string     `json:"phone" binding:"required"`
	WeightKg  int        `json:"weight_kg" binding:"required"`
	HeightCm  int        `json:"height_cm" binding:"required"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

type VoucherPurchaseRequest struct {
	AmountCents    int64  `json:"amount_cents" binding:"required"`
	RecipientName  string `json:"recipient_name,omitempty"`
	RecipientEmail string `json:"recipient_email,omitempty"`
}

// AddCartItemRequest is either a booking (resource + participant) or a voucher purchase.
type AddCartItemRequest struct {
	SessionID    string                  `json:"checkout_session_id" binding:"required,max=255"`
	ResourceKind string                  `json:"resource_kind,omitempty"`
	ResourceID   *uuid.UUID              `json:"resource_id,omitempty"`
	Participant  *ParticipantRequest     `json:"participant,omitempty"`
	Voucher      *VoucherPurchaseRequest `json:"voucher,omitempty"`
}

func (r AddCartItemRequest) ToCommand() commands.AddCartItemRequest {
	cmd := commands.AddCartItemRequest{
		SessionID:    r.SessionID,
		ResourceKind: r.ResourceKind,
		ResourceID:   r.ResourceID,
	}
	if p := r.Participant; p != nil {
		cmd.Participant = &order.Participant{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Phone:     p.Phone,
			WeightKg:  p.WeightKg,
			HeightCm:  p.HeightCm,
			BirthDate: p.BirthDate,
		}
	}
	if v := r.Voucher; v != nil {
		cmd.Voucher = &order.VoucherPurchase{
			Amount:         money.Cents(v.AmountCents),
			RecipientName:  v.RecipientName,
			RecipientEmail: v.RecipientEmail,
		}
	}
	return cmd
}
