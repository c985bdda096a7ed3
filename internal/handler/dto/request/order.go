package request

import (
	"activity-booking/internal/usecase/commands"
)

type ContactRequest struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone,omitempty"`
}

type CreateOrderRequest struct {
	SessionID    string         `json:"checkout_session_id" binding:"required,max=255"`
	VoucherCodes []string       `json:"voucher_codes,omitempty" binding:"max=10"`
	Contact      ContactRequest `json:"contact" binding:"required"`
}

func (r CreateOrderRequest) ToCommand() commands.CreateOrderRequest {
	return commands.CreateOrderRequest{
		SessionID:    r.SessionID,
		VoucherCodes: r.VoucherCodes,
		Contact: commands.ContactInput{
			Email:     r.Contact.Email,
			FirstName: r.Contact.FirstName,
			LastName:  r.Contact.LastName,
			Phone:     r.Contact.Phone,
		},
	}
}

type ValidateVoucherRequest struct {
	Code string `json:"code" binding:"required"`
}

type PaymentCallbackRequest struct {
	IntentID string `json:"payment_intent_id" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

type ManualPaymentRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,min=1"`
	Note        string `json:"note,omitempty" binding:"max=500"`
}

func (r ManualPaymentRequest) ToCommand() commands.ManualPaymentRequest {
	return commands.ManualPaymentRequest{AmountCents: r.AmountCents, Note: r.Note}
}
