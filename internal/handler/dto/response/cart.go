package response

import (
	"time"

	"activity-booking/internal/domain/cart"
	"activity-booking/internal/usecase/commands"
	"activity-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ParticipantResponse struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	WeightKg  int        `json:"weight_kg"`
	HeightCm  int        `json:"height_cm"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

type CartItemResponse struct {
	ID             uuid.UUID            `json:"id"`
	Type           string               `json:"type"`
	ResourceID     *uuid.UUID           `json:"resource_id,omitempty"`
	Participant    *ParticipantResponse `json:"participant,omitempty"`
	VoucherAmount  *int64               `json:"voucher_amount_cents,omitempty"`
	RecipientName  *string              `json:"recipient_name,omitempty"`
	RecipientEmail *string              `json:"recipient_email,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

type CartHoldResponse struct {
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceKind string    `json:"resource_kind"`
	Quantity     int       `json:"quantity"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type CartResponse struct {
	SessionID string              `json:"session_id"`
	Items     []*CartItemResponse `json:"items"`
	Holds     []*CartHoldResponse `json:"holds"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	var resp CartResponse
	_ = copier.CopyWithOption(&resp, v, copier.Option{DeepCopy: true})
	if resp.Items == nil {
		resp.Items = []*CartItemResponse{}
	}
	if resp.Holds == nil {
		resp.Holds = []*CartHoldResponse{}
	}
	return &resp
}

type CartMutationResponse struct {
	Item *CartItemResponse `json:"item,omitempty"`
	Hold *HoldResponse     `json:"hold,omitempty"`
}

func FromCartItemResult(r *commands.CartItemResult) *CartMutationResponse {
	return &CartMutationResponse{Item: fromCartItem(r.Item), Hold: FromHold(r.Hold)}
}

func fromCartItem(i *cart.Item) *CartItemResponse {
	if i == nil {
		return nil
	}
	resp := &CartItemResponse{
		ID:         i.ID(),
		Type:       string(i.Type()),
		ResourceID: i.ResourceID(),
		CreatedAt:  i.CreatedAt(),
	}
	if p := i.Participant(); p != nil {
		resp.Participant = &ParticipantResponse{}
		_ = copier.Copy(resp.Participant, p)
	}
	if v := i.VoucherPurchase(); v != nil {
		amount := v.Amount.Amount()
		resp.VoucherAmount = &amount
		resp.RecipientName = &v.RecipientName
		resp.RecipientEmail = &v.RecipientEmail
	}
	return resp
}
